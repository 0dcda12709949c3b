package controller

import (
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetModules(ctx echo.Context) error {
	modules, err := c.surveys.ListModules(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ok(ctx, modules)
}
