package api

import (
	"github.com/labstack/echo/v4"
	"github.com/spf13/viper"

	"github.com/niepng/niep-backend/internal/pkg/constants"
	"github.com/niepng/niep-backend/internal/pkg/utils"
)

// AdminMiddleware gates a route behind the admin session cookie. The
// token's embedded secret is compared against the configured one, so
// rotating the secret invalidates existing sessions.
func (svc *APIService) AdminMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeySecretToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		if token.Secret != viper.GetString(constants.ViperSecretKey) {
			return constants.ErrUnauthorized
		}

		ctx.Set(constants.CtxKeyAdminEmail, token.Email)

		return next(ctx)
	}
}

// AdminKeyMiddleware gates a route behind the static x-admin-key header.
func (svc *APIService) AdminKeyMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		secret := viper.GetString(constants.ViperSecretKey)
		if secret == "" || ctx.Request().Header.Get("X-Admin-Key") != secret {
			return constants.ErrUnauthorized
		}

		return next(ctx)
	}
}
