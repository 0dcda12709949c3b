package api

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/viper"

	"github.com/niepng/niep-backend/internal/api/controller"
	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/logger"
	"github.com/niepng/niep-backend/internal/pkg/store"
	"github.com/niepng/niep-backend/internal/service/admin"
	"github.com/niepng/niep-backend/internal/service/exporter"
	"github.com/niepng/niep-backend/internal/service/importer"
	"github.com/niepng/niep-backend/internal/service/ingest"
	"github.com/niepng/niep-backend/internal/service/survey"
)

type APIService struct {
	router *echo.Echo
}

func (svc *APIService) Serve(addr string) {
	logger.Fatal(context.Background(), svc.router.Start(addr))
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

// Router is exposed for handler tests.
func (svc *APIService) Router() *echo.Echo {
	return svc.router
}

func NewAPIService(st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.JSONSerializer = sonicSerializer{}
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(middleware.Recover())
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     []string{viper.GetString(constants.ViperCORSOrigin)},
		AllowMethods:     []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Admin-Key"},
		AllowCredentials: true,
	}))

	cntrl := controller.NewController(
		survey.NewService(st),
		admin.NewService(st),
		importer.NewService(st),
		exporter.NewService(st),
		ingest.NewService(st),
	)

	api := svc.router.Group("/api")

	api.GET("/modules", cntrl.GetModules)
	api.GET("/indicators/:moduleId/:year", cntrl.GetIndicators)
	api.GET("/data/state", cntrl.GetStateData)
	api.GET("/stats", cntrl.GetStats)

	adm := api.Group("/admin")
	adm.POST("/login", cntrl.Login)
	adm.DELETE("/logout", cntrl.Logout)
	adm.GET("/module-status", cntrl.GetModuleStatus, svc.AdminKeyMiddleware)

	protected := adm.Group("", svc.AdminMiddleware)
	protected.POST("/modules/:id/toggle", cntrl.ToggleModule)
	protected.PUT("/modules/:id", cntrl.UpdateModule)
	protected.PUT("/data/trend/:id", cntrl.UpdateTrendValue)
	protected.POST("/import/csv", cntrl.ImportCSV)
	protected.DELETE("/categories/empty", cntrl.CleanupEmptyCategories)
	protected.GET("/audit", cntrl.GetAudit)
	protected.GET("/export/indicators", cntrl.ExportIndicators)
	protected.GET("/export/data", cntrl.ExportTrendData)
	protected.POST("/backfill", cntrl.Backfill)

	return svc, nil
}
