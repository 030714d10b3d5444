package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core/course"
)

type cmsApi struct {
	svc      *course.Service
	validate *validator.Validate
}

func registerCmsAPI(g *echo.Group, svc *course.Service, validate *validator.Validate) {
	api := cmsApi{
		svc:      svc,
		validate: validate,
	}

	cg := g.Group("/courses")
	cg.POST("", api.create)
	cg.GET("", api.query)

	// detail endpoints
	cg.GET("/:id", api.retrieve)
	cg.PUT("/:id", api.update)
	cg.DELETE("/:id", api.destroy)
}

// Handlers

func (api *cmsApi) create(ctx echo.Context) error {
	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	crs, err := api.svc.Create(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "creating course")
	}
	return ctx.JSON(http.StatusCreated, crs)
}

func (api *cmsApi) query(ctx echo.Context) error {
	courses, err := api.svc.QueryAll(ctx.Request().Context())
	if err != nil {
		return errors.Wrap(err, "querying courses")
	}
	if courses == nil {
		courses = []course.Course{}
	}
	return ctx.JSON(http.StatusOK, courses)
}

func (api *cmsApi) retrieve(ctx echo.Context) error {
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	sum, err := api.svc.GetByID(ctx.Request().Context(), id)
	if err != nil {
		return errors.Wrap(err, "finding course by ID")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *cmsApi) update(ctx echo.Context) error {
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	var data course.NewCourse
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewCourse")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sum, err := api.svc.Update(ctx.Request().Context(), id, data)
	if err != nil {
		return errors.Wrap(err, "updating course")
	}
	return ctx.JSON(http.StatusOK, sum)
}

func (api *cmsApi) destroy(ctx echo.Context) error {
	id, err := int64Param(ctx, "id")
	if err != nil {
		return err
	}

	if err := api.svc.Delete(ctx.Request().Context(), id); err != nil {
		return errors.Wrap(err, "deleting course")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Course deleted successfully"})
}
