package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/niepng/niep-backend/internal/domain"
	"github.com/niepng/niep-backend/internal/pkg/constants"
)

func httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	msg := err.Error()
	code := http.StatusInternalServerError

	for e := err; e != nil; e = errors.Unwrap(e) {
		if ce, ok := e.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := e.(*echo.HTTPError); ok {
			code = he.Code
			msg = http.StatusText(he.Code)
			break
		}
	}

	// Internal details stay server-side.
	if code == http.StatusInternalServerError {
		msg = "Internal Server Error"
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Success: false,
		Error:   msg,
		Code:    code,
	})
}
