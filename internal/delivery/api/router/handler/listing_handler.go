package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"autobid/internal/delivery/api/response"
	"autobid/internal/domain/entity"
	"autobid/internal/errors"
	"autobid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ListingHandlerParams holds dependencies for ListingHandler, injected by Fx.
type ListingHandlerParams struct {
	fx.In

	ListingUC usecase.ListingUsecase
	Logger    *slog.Logger
}

// ListingHandler serves listing moderation and lifecycle endpoints
type ListingHandler struct {
	listingUC usecase.ListingUsecase
	logger    *slog.Logger
}

// NewListingHandler is the constructor for ListingHandler
func NewListingHandler(params ListingHandlerParams) *ListingHandler {
	return &ListingHandler{
		listingUC: params.ListingUC,
		logger:    params.Logger,
	}
}

// ListListings returns one page of listings, optionally filtered by status.
func (h *ListingHandler) ListListings(c echo.Context) error {
	limit, offset := pagination(c)
	filter := &entity.AuctionFilter{
		StatusName: entity.AuctionStatusName(c.QueryParam("status")),
		Search:     c.QueryParam("search"),
		Limit:      limit,
		Offset:     offset,
	}

	auctions, total, err := h.listingUC.ListListings(c.Request().Context(), filter)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{Items: auctions, Total: total})
}

// GetListing returns one listing with its photos.
func (h *ListingHandler) GetListing(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	auction, err := h.listingUC.GetListing(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, auction)
}

// ListStatuses returns the auction status lookup.
func (h *ListingHandler) ListStatuses(c echo.Context) error {
	statuses, err := h.listingUC.ListStatuses(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, statuses)
}

// ListBids returns the newest bids of an auction.
func (h *ListingHandler) ListBids(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	bids, err := h.listingUC.ListBids(c.Request().Context(), id, limit)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, bids)
}

// DeleteListings soft- or hard-deletes listings over a scope.
func (h *ListingHandler) DeleteListings(c echo.Context) error {
	var body DeleteRequestBody
	if err := bindAndValidate(c, &body); err != nil {
		return err
	}

	result, err := h.listingUC.DeleteListings(c.Request().Context(), body.toEntity(body.Type))

	return response.Action(c, result, err)
}

// ModerateListing approves or rejects a pending listing.
func (h *ListingHandler) ModerateListing(c echo.Context) error {
	moderatorID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var input usecase.ModerateListingInput
	if err := bindAndValidate(c, &input); err != nil {
		return err
	}

	return response.Action(c, nil, h.listingUC.ModerateListing(c.Request().Context(), moderatorID, id, &input))
}

// ToggleListingActive sets the is_active flag of a listing.
func (h *ListingHandler) ToggleListingActive(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ToggleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	err = h.listingUC.SetListingActive(c.Request().Context(), id, *req.Value)

	return response.Action(c, map[string]bool{"is_active": *req.Value}, err)
}
