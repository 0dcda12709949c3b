package controller

import (
	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/pkg/constants"
)

func (c *Controller) GetStateData(ctx echo.Context) error {
	moduleID := ctx.QueryParam("module")
	year := ctx.QueryParam("year")
	category := ctx.QueryParam("category")
	indicator := ctx.QueryParam("indicator")

	if moduleID == "" || year == "" || category == "" || indicator == "" {
		return constants.NewCodedError("missing required parameters", 400)
	}

	data, err := c.surveys.StateDataForIndicator(ctx.Request().Context(), moduleID, year, category, indicator)
	if err != nil {
		return err
	}

	return ok(ctx, data)
}
