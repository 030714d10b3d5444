package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core/syllabus"
)

type syllabusApi struct {
	svc      *syllabus.Service
	validate *validator.Validate
}

func registerSyllabusAPI(g *echo.Group, svc *syllabus.Service, validate *validator.Validate) {
	api := syllabusApi{
		svc:      svc,
		validate: validate,
	}

	g.GET("", api.query)
	g.POST("/create", api.create)
	g.GET("/course/:course_id", api.queryByCourse)
	g.PUT("/:id", api.update)
}

// Handlers

func (api *syllabusApi) create(ctx echo.Context) error {
	var data syllabus.Input
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to syllabus Input")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	created, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating syllabus")
	}
	return ctx.JSON(http.StatusCreated, created)
}

func (api *syllabusApi) query(ctx echo.Context) error {
	all, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying syllabi")
	}
	if all == nil {
		all = []syllabus.Syllabus{}
	}
	return ctx.JSON(http.StatusOK, all)
}

func (api *syllabusApi) queryByCourse(ctx echo.Context) error {
	courseID, err := int64Param(ctx, "course_id")
	if err != nil {
		return err
	}

	all, err := api.svc.QueryByCourse(ctx.Request().Context(), courseID)
	if err != nil {
		return errors.Wrap(err, "querying syllabi")
	}
	if all == nil {
		all = []syllabus.Syllabus{}
	}
	return ctx.JSON(http.StatusOK, all)
}

func (api *syllabusApi) update(ctx echo.Context) error {
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	var data syllabus.Input
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to syllabus Input")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	ref, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating syllabus")
	}
	return ctx.JSON(http.StatusOK, ref)
}
