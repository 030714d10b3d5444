package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/trezcool/lms/core/auth"
)

type authApi struct {
	svc      *auth.Service
	validate *validator.Validate
}

func registerAuthAPI(g *echo.Group, svc *auth.Service, validate *validator.Validate) {
	api := authApi{
		svc:      svc,
		validate: validate,
	}

	g.POST("/register", api.register)
	g.POST("/login", api.login)
	g.POST("/logout", api.logout)
}

// Handlers

func (api *authApi) register(ctx echo.Context) error {
	var data auth.NewUser
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to NewUser")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	if _, err := api.svc.Register(ctx.Request().Context(), data); err != nil {
		return errors.Wrap(err, "registering user")
	}
	return ctx.JSON(http.StatusCreated, MessageResponse{Message: "User registered successfully"})
}

func (api *authApi) login(ctx echo.Context) error {
	var data auth.Credentials
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Credentials")
	}
	if err := data.Validate(api.validate); err != nil {
		return err
	}

	sess, err := api.svc.Login(ctx.Request().Context(), data)
	if err != nil {
		return errors.Wrap(err, "logging in")
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *authApi) logout(ctx echo.Context) error {
	if err := api.svc.Logout(ctx.Request().Context()); err != nil {
		return errors.Wrap(err, "logging out")
	}
	return ctx.JSON(http.StatusOK, MessageResponse{Message: "Logged out successfully"})
}
