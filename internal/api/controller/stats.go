package controller

import (
	"github.com/labstack/echo/v4"
)

func (c *Controller) GetStats(ctx echo.Context) error {
	stats, err := c.surveys.PlatformStats(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ok(ctx, stats)
}
