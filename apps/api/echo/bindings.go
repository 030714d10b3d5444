package echoapi

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/trezcool/lms/core"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// int64Param parses the path parameter `name` as a base 10 integer.
func int64Param(ctx echo.Context, name string) (int64, error) {
	val, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil {
		return 0, core.InvalidValue(name)
	}
	return val, nil
}
