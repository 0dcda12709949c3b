package controller

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/service/exporter"
)

func (c *Controller) ExportIndicators(ctx echo.Context) error {
	export, err := c.exporter.ExportIndicators(ctx.Request().Context())
	if err != nil {
		return err
	}

	return attach(ctx, export)
}

func (c *Controller) ExportTrendData(ctx echo.Context) error {
	export, err := c.exporter.ExportTrendData(ctx.Request().Context())
	if err != nil {
		return err
	}

	return attach(ctx, export)
}

func attach(ctx echo.Context, export *exporter.Export) error {
	ctx.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`attachment; filename=%q`, export.Filename))
	return ctx.Blob(http.StatusOK, "text/csv", export.Body)
}
