package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core/pyq"
)

type pyqApi struct {
	svc      *pyq.Service
	validate *validator.Validate
}

func registerPyqAPI(g *echo.Group, svc *pyq.Service, validate *validator.Validate) {
	api := pyqApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("", api.query)
	g.POST("/create", api.create)
	g.GET("/course/:course_id", api.queryByCourse)
	g.GET("/course/:course_id/year/:year", api.retrieveByYear)
}

// Handlers

func (api *pyqApi) create(ctx echo.Context) error {
	var data pyq.NewPyq
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewPyq")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	created, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating pyq")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *pyqApi) query(ctx echo.Context) error {
	all, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying pyqs")
	}
	if all == nil {
		all = []pyq.Pyq{}
	}
	return ctx.JSON(http.StatusOK, all)
}

func (api *pyqApi) queryByCourse(ctx echo.Context) error {
	courseID, err := int64Param(ctx, "course_id")
	if err != nil {
		return err
	}

	all, err := api.svc.QueryByCourse(ctx.Request().Context(), courseID)
	if err != nil {
		return errors.Wrap(err, "querying pyqs")
	}
	if all == nil {
		all = []pyq.Pyq{}
	}
	return ctx.JSON(http.StatusOK, all)
}

func (api *pyqApi) retrieveByYear(ctx echo.Context) error {
	courseID, err := int64Param(ctx, "course_id")
	if err != nil {
		return err
	}
	year, err := int64Param(ctx, "year")
	if err != nil {
		return err
	}

	ref, err := api.svc.GetByYear(ctx.Request().Context(), courseID, year)
	if err != nil {
		return errors.Wrap(err, "finding pyq by year")
	}
	return ctx.JSON(http.StatusOK, ref)
}
