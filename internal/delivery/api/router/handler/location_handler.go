package handler

import (
	"io"
	"mime"
	"net/http"

	"autobid/internal/delivery/api/response"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/errors"
	"autobid/internal/infra/loader"
	"autobid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const importFileField = "file"

// LocationHandlerParams holds dependencies for LocationHandler, injected by Fx.
type LocationHandlerParams struct {
	fx.In

	LocationUC usecase.LocationUsecase
}

// LocationHandler holds dependencies for location-related handlers
type LocationHandler struct {
	locationUC usecase.LocationUsecase
}

// NewLocationHandler is the constructor for LocationHandler
func NewLocationHandler(params LocationHandlerParams) *LocationHandler {
	return &LocationHandler{
		locationUC: params.LocationUC,
	}
}

func locationLevel(c echo.Context) (entity.LocationLevel, error) {
	level := entity.LocationLevel(c.Param("level"))
	if !level.IsValid() {
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(level))
	}

	return level, nil
}

// ListLocations lists the nodes of one level under an optional parent.
func (h *LocationHandler) ListLocations(c echo.Context) error {
	level, err := locationLevel(c)
	if err != nil {
		return err
	}
	parentID, err := optionalQueryID(c, "parent_id")
	if err != nil {
		return err
	}
	includeInactive, err := optionalQueryBool(c, "include_inactive")
	if err != nil {
		return err
	}

	nodes, err := h.locationUC.ListLocations(c.Request().Context(), level, parentID, includeInactive != nil && *includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nodes)
}

// CountLocations returns node totals per level.
func (h *LocationHandler) CountLocations(c echo.Context) error {
	counts, err := h.locationUC.CountLocations(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, counts)
}

// CreateLocation adds a node to the hierarchy.
func (h *LocationHandler) CreateLocation(c echo.Context) error {
	var input usecase.CreateLocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	node, err := h.locationUC.CreateLocation(c.Request().Context(), &input)

	return response.Action(c, node, err)
}

// UpdateLocation edits a node.
func (h *LocationHandler) UpdateLocation(c echo.Context) error {
	level, err := locationLevel(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.UpdateLocationInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	node, err := h.locationUC.UpdateLocation(c.Request().Context(), level, id, &input)

	return response.Action(c, node, err)
}

// DeleteLocation removes a node without children.
func (h *LocationHandler) DeleteLocation(c echo.Context) error {
	level, err := locationLevel(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return response.Action(c, nil, h.locationUC.DeleteLocation(c.Request().Context(), level, id))
}

// ImportLocations bulk-loads region,province,city,barangay rows from a multipart
// "file" field or a raw text/csv body.
func (h *LocationHandler) ImportLocations(c echo.Context) error {
	body, closeBody, err := importSource(c)
	if err != nil {
		return err
	}
	defer closeBody()

	rows, err := loader.ParseLocationCSV(body)
	if err != nil {
		return domainerrors.ErrInvalidFile.WrapMessage(err.Error())
	}
	if len(rows) == 0 {
		return response.Action(c, nil, domainerrors.ErrInvalidFile.WrapMessage("no location rows found"))
	}

	summary, err := h.locationUC.ImportLocations(c.Request().Context(), rows)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Action(c, summary, nil)
}

func importSource(c echo.Context) (io.Reader, func(), error) {
	mediaType, _, _ := mime.ParseMediaType(c.Request().Header.Get(echo.HeaderContentType))
	if mediaType != echo.MIMEMultipartForm {
		return c.Request().Body, func() {}, nil
	}

	header, err := c.FormFile(importFileField)
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidFile.WrapMessage("missing file field")
	}
	file, err := header.Open()
	if err != nil {
		return nil, nil, domainerrors.ErrInvalidFile.WrapMessage(err.Error())
	}

	return file, func() { _ = file.Close() }, nil
}
