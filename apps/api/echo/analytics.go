package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core"
	"github.com/trezcool/lms/core/analytics"
)

type analyticsApi struct {
	svc      *analytics.Service
	validate *validator.Validate
}

func registerAnalyticsAPI(g *echo.Group, svc *analytics.Service, validate *validator.Validate) {
	api := analyticsApi{
		svc:      svc,
		validate: validate,
	}

	g.POST("/track", api.track)
	g.GET("/progress/:user_id/:course_id", api.progress)
	g.GET("/course/:course_id", api.courseStats)
}

// Handlers

func (api *analyticsApi) track(ctx echo.Context) error {
	var data analytics.Activity
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Activity")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if err := api.svc.Track(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "tracking activity")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Activity tracked"})
}

func (api *analyticsApi) progress(ctx echo.Context) error {
	userID := ctx.Param("user_id")
	if userID == "" {
		return core.InvalidValue("user_id")
	}
	courseID, err := int64Param(ctx, "course_id")
	if err != nil {
		return err
	}

	prog, err := api.svc.Progress(ctx.Request().Context(), userID, courseID)
	if err != nil {
		return errors.Wrap(err, "getting progress")
	}
	return ctx.JSON(http.StatusOK, prog)
}

func (api *analyticsApi) courseStats(ctx echo.Context) error {
	courseID, err := int64Param(ctx, "course_id")
	if err != nil {
		return err
	}

	stats, err := api.svc.CourseStats(ctx.Request().Context(), courseID)
	if err != nil {
		return errors.Wrap(err, "getting course analytics")
	}
	return ctx.JSON(http.StatusOK, stats)
}
