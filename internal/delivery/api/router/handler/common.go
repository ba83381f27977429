// Package handler contains the echo handlers of the admin API.
package handler

import (
	"net/http"
	"strconv"

	"autobid/internal/delivery/api/middleware"
	"autobid/internal/delivery/api/response"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// ScopeBody selects the targets of a bulk operation
type ScopeBody struct {
	Scope entity.DeleteScope `json:"scope" validate:"required"`
	IDs   []uuid.UUID        `json:"ids"`
}

// DeleteRequestBody is the body of a bulk delete whose type is chosen by the caller
type DeleteRequestBody struct {
	ScopeBody
	Type entity.DeleteType `json:"type" validate:"required"`
}

func (b *ScopeBody) toEntity(deleteType entity.DeleteType) entity.DeleteRequest {
	return entity.DeleteRequest{Scope: b.Scope, Type: deleteType, IDs: b.IDs}
}

// ToggleRequest flips a boolean flag
type ToggleRequest struct {
	Value *bool `json:"value" validate:"required"`
}

// HealthCheck answers liveness probes
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}

// bindAndValidate decodes the request body and runs the struct validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return domainerrors.ErrValidationFailed.WrapMessage("malformed request body")
	}

	return c.Validate(req)
}

func pathID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return id, nil
}

func optionalQueryID(c echo.Context, name string) (*uuid.UUID, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return &id, nil
}

func optionalQueryBool(c echo.Context, name string) (*bool, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return nil, nil
	}

	value, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("invalid " + name)
	}

	return &value, nil
}

// pagination reads limit/offset, clamping the page size.
func pagination(c echo.Context) (limit, offset int) {
	limit, err := strconv.Atoi(c.QueryParam("limit"))
	if err != nil || limit <= 0 {
		limit = defaultPageSize
	}
	if limit > maxPageSize {
		limit = maxPageSize
	}

	offset, err = strconv.Atoi(c.QueryParam("offset"))
	if err != nil || offset < 0 {
		offset = 0
	}

	return limit, offset
}

func callerID(c echo.Context) (uuid.UUID, error) {
	id, ok := middleware.AdminID(c)
	if !ok {
		return uuid.Nil, domainerrors.ErrUnauthorized
	}

	return id, nil
}
