package response

import (
	"net/http"
	"strings"

	deliverycontext "autobid/internal/delivery/context"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/errors"

	"github.com/labstack/echo/v4"
)

// Page wraps one page of a list together with the total row count
type Page struct {
	Items any   `json:"items"`
	Total int64 `json:"total"`
}

// Success returns a successful response
func Success(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, domainerrors.SuccessResponse{
		Data: data,
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// Error returns an error response
func Error(c echo.Context, statusCode int, errorCode string, message string, details any) error {
	// Details should not be included for 5xx errors or authentication/authorization errors
	if statusCode >= 500 || statusCode == http.StatusUnauthorized || statusCode == http.StatusForbidden {
		details = nil
	}

	return c.JSON(statusCode, domainerrors.ErrorResponse{
		Error: &domainerrors.ErrorInfo{
			Code:    errorCode,
			Message: message,
			Details: details,
		},
		Meta: &domainerrors.MetaInfo{
			RequestID: deliverycontext.GetRequestID(c),
		},
	})
}

// BadRequest returns a 400 error
func BadRequest(c echo.Context, errorCode string, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, nil)
}

// BadRequestWithDetails returns a 400 error with details
func BadRequestWithDetails(c echo.Context, errorCode string, message string, details any) error {
	return Error(c, http.StatusBadRequest, errorCode, message, details)
}

// BindingError returns a binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "INVALID_INPUT", message, nil)
}

// Action renders the result of a mutating operation as {success, error?, data?}.
// A failed action takes its status from the domain error; unknown errors propagate
// to the HTTP error handler.
func Action(c echo.Context, data any, err error) error {
	if err == nil {
		return c.JSON(http.StatusOK, domainerrors.ActionResponse{Success: true, Data: data})
	}

	appErr, ok := errors.AsAppError[domainerrors.AppError](err)
	if !ok {
		return errors.WithStack(err)
	}

	message := appErr.Message()
	if appErr.HTTPCode() < http.StatusInternalServerError {
		if details := detailOf(err, appErr); details != "" {
			message = details
		}
	}

	return c.JSON(appErr.HTTPCode(), domainerrors.ActionResponse{Success: false, Error: message})
}

// detailOf returns the innermost context wrapped around a validation error, so the
// caller sees "single scope requires exactly one id" rather than the generic message.
func detailOf(err error, appErr domainerrors.AppError) string {
	if appErr.Details() != "" {
		return appErr.Details()
	}
	if appErr.ErrorCode() != "VALIDATION_FAILED" && appErr.ErrorCode() != "INVALID_FILE" {
		return ""
	}

	wrapped, found := strings.CutSuffix(err.Error(), ": "+appErr.Message())
	if !found {
		return ""
	}
	if idx := strings.LastIndex(wrapped, ": "); idx >= 0 {
		return wrapped[idx+2:]
	}

	return wrapped
}

// HandleAppError handles application errors, converting domain errors to appropriate HTTP responses
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsAppError[domainerrors.AppError](err); ok {
		return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), nonEmpty(appErr.Details()))
	}

	return errors.WithStack(err)
}

func nonEmpty(s string) any {
	if s == "" {
		return nil
	}

	return s
}
