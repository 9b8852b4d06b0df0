package api

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	"sauna-booking/internal/handler/httperr"
	"sauna-booking/internal/handler/middleware"
	"sauna-booking/internal/pkg/errs"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

const stackLinesLogged = 12

// abortWithUsecaseError maps error classes to statuses. Validation, conflict
// and not-found messages are written for end users and passed through; any
// other failure is logged and hidden behind a generic 500.
func abortWithUsecaseError(c *gin.Context, err error, op string) {
	switch {
	case errs.Is(err, errs.ErrValidation):
		httperr.AbortWithError(c, http.StatusBadRequest, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, errs.Message(err), nil)
	case errs.Is(err, errs.ErrNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, errs.Message(err), nil)
	default:
		slog.Error(op+" failed",
			"request_id", middleware.GetRequestID(c),
			"error", err.Error(),
			"stack", errs.ExtractStackLines(err, stackLinesLogged))
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

// requiredFieldErrors is implemented by request DTOs whose `required` fields
// should fail with the same error the domain returns for them.
type requiredFieldErrors interface {
	RequiredFieldError(field string) error
}

// bindJSON reports false after aborting with 400 when the body is absent,
// not valid JSON for dst or missing a required field.
func bindJSON(c *gin.Context, dst any) bool {
	err := c.ShouldBindJSON(dst)
	if err == nil {
		return true
	}

	msg := "Invalid JSON payload"
	var fieldErrs validator.ValidationErrors
	switch {
	case errors.Is(err, io.EOF):
		msg = "Missing request body"
	case errors.As(err, &fieldErrs) && len(fieldErrs) > 0:
		msg = "Invalid request"
		if r, ok := dst.(requiredFieldErrors); ok {
			msg = errs.Message(r.RequiredFieldError(fieldErrs[0].Field()))
		}
	}
	httperr.AbortWithError(c, http.StatusBadRequest, err, msg, nil)
	return false
}

// parseDays falls back to a single day; the usecase clamps the upper bound.
func parseDays(raw string) int {
	days, err := strconv.Atoi(raw)
	if err != nil {
		return 1
	}
	return days
}
