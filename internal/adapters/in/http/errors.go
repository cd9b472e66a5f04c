package http

import (
	"errors"
	"net/http"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// errorResponse maps an application error to an HTTP status and writes the
// JSON error body.
func errorResponse(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, commands.ErrPaymentDeclined):
		code = http.StatusPaymentRequired
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, errs.ErrObjectAlreadyExists):
		code = http.StatusConflict
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: err.Error(),
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
