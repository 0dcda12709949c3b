package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/pkg/constants"
)

func (c *Controller) ImportCSV(ctx echo.Context) error {
	email, _ := ctx.Get(constants.CtxKeyAdminEmail).(string)
	if email == "" {
		email = "unknown"
	}

	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		return constants.NewCodedError("No file provided", http.StatusBadRequest)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return constants.NewCodedError("Failed to read file", http.StatusBadRequest)
	}
	defer func() { _ = file.Close() }()

	result := c.importer.Import(ctx.Request().Context(), email, fileHeader.Filename, fileHeader.Size, file)

	// Partial success still reports 200; the result body carries the
	// outcome and the capped row errors.
	return ctx.JSON(http.StatusOK, result)
}
