package controller

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/niepng/niep-backend/internal/pkg/constants"
)

type backfillRequest struct {
	ModuleID string `json:"moduleId" validate:"required"`
	Year     string `json:"year" validate:"required,len=4,numeric"`
	URL      string `json:"url" validate:"omitempty,url"`
}

func (c *Controller) Backfill(ctx echo.Context) error {
	req := new(backfillRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	url := req.URL
	if url == "" {
		url = viper.GetString(constants.ViperBackfillURL)
	}
	if url == "" {
		return constants.NewCodedError("no backfill source configured", 400)
	}

	result, err := c.ingest.Backfill(ctx.Request().Context(), url, req.ModuleID, req.Year)
	if err != nil {
		return err
	}

	return ok(ctx, result)
}
