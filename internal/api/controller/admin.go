package controller

import (
	"github.com/labstack/echo/v4"
)

type toggleModuleRequest struct {
	Enabled bool `json:"enabled"`
}

func (c *Controller) ToggleModule(ctx echo.Context) error {
	req := new(toggleModuleRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	if err := c.admin.ToggleModule(ctx.Request().Context(), ctx.Param("id"), req.Enabled); err != nil {
		return err
	}

	return ok(ctx, nil)
}

type updateModuleRequest struct {
	Name        string `json:"name" validate:"required,max=200"`
	Description string `json:"description" validate:"max=2000"`
}

func (c *Controller) UpdateModule(ctx echo.Context) error {
	req := new(updateModuleRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	if err := c.admin.UpdateModuleDetails(ctx.Request().Context(), ctx.Param("id"), req.Name, req.Description); err != nil {
		return err
	}

	return ok(ctx, nil)
}

func (c *Controller) CleanupEmptyCategories(ctx echo.Context) error {
	count, err := c.admin.CleanupEmptyCategories(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ok(ctx, map[string]int64{"count": count})
}

func (c *Controller) GetAudit(ctx echo.Context) error {
	report, err := c.admin.RunAudit(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ok(ctx, report)
}

func (c *Controller) GetModuleStatus(ctx echo.Context) error {
	statuses, err := c.admin.ModuleStatus(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ok(ctx, statuses)
}
