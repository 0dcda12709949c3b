package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/service/admin"
	"github.com/niepng/niep-backend/internal/service/exporter"
	"github.com/niepng/niep-backend/internal/service/importer"
	"github.com/niepng/niep-backend/internal/service/ingest"
	"github.com/niepng/niep-backend/internal/service/survey"
)

type Controller struct {
	surveys  *survey.Service
	admin    *admin.Service
	importer *importer.Service
	exporter *exporter.Service
	ingest   *ingest.Service
}

func NewController(
	surveys *survey.Service,
	admin *admin.Service,
	importer *importer.Service,
	exporter *exporter.Service,
	ingest *ingest.Service,
) *Controller {
	return &Controller{
		surveys:  surveys,
		admin:    admin,
		importer: importer,
		exporter: exporter,
		ingest:   ingest,
	}
}

func ok(ctx echo.Context, data interface{}) error {
	return ctx.JSON(http.StatusOK, domain.Envelope{Success: true, Data: data})
}
