package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ougirez/gerencia/internal/domain"
	"github.com/ougirez/gerencia/internal/pkg/constants"
	"github.com/ougirez/gerencia/internal/pkg/logger"
)

const internalErrorMessage = "error interno del servidor"

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
		if be, ok := e.(*echo.BindingError); ok {
			code = be.Code
			msg = fmt.Sprintf("%s %v inválido", be.Field, be.Values)
			break
		}
		if he, ok := e.(*echo.HTTPError); ok {
			code = he.Code
			msg = fmt.Sprint(he.Message)
			break
		}
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %v", c.Request().Method, c.Path(), err)
		msg = internalErrorMessage
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
