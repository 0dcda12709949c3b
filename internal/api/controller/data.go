package controller

import (
	"github.com/labstack/echo/v4"
)

type updateTrendValueRequest struct {
	IndicatorID string  `json:"indicatorId" validate:"required"`
	Value       float64 `json:"value"`
}

func (c *Controller) UpdateTrendValue(ctx echo.Context) error {
	req := new(updateTrendValueRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	err := c.admin.UpdateTrendValue(ctx.Request().Context(), ctx.Param("id"), req.IndicatorID, req.Value)
	if err != nil {
		return err
	}

	return ok(ctx, nil)
}
