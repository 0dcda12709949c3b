package controller

import (
	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/sanitize"
)

type surveyDataResponse struct {
	Module string `json:"module"`
	Year   string `json:"year"`
	domain.SurveyData
}

func (c *Controller) GetIndicators(ctx echo.Context) error {
	moduleID := ctx.Param("moduleId")
	year := ctx.Param("year")

	if moduleID == "" {
		return constants.ErrBadRequest
	}
	if _, ok := sanitize.Year(year); !ok {
		return constants.NewCodedError("year must be 4 digits", 400)
	}

	surveyData, err := c.surveys.GetModuleYearData(ctx.Request().Context(), moduleID, year)
	if err != nil {
		return err
	}
	if surveyData == nil {
		return constants.NewCodedError("Data not found", 404)
	}

	return ok(ctx, surveyDataResponse{
		Module:     moduleID,
		Year:       year,
		SurveyData: *surveyData,
	})
}
