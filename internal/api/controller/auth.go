package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/utils"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

func (c *Controller) Login(ctx echo.Context) error {
	req := new(loginRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}

	token, err := c.admin.Login(ctx.Request().Context(), req.Email, req.Password)
	if err != nil {
		return err
	}

	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    token,
		Path:     "/",
		MaxAge:   int(utils.SessionTTL.Seconds()),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ok(ctx, map[string]string{"email": req.Email})
}

func (c *Controller) Logout(ctx echo.Context) error {
	ctx.SetCookie(&http.Cookie{
		Name:     constants.CookieKeySecretToken,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ok(ctx, nil)
}
