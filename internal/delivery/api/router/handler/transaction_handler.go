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

// ReviewTransactionRequest carries the admin notes of a verdict
type ReviewTransactionRequest struct {
	Notes *string `json:"notes,omitempty" validate:"omitempty,max=2000"`
}

// TransactionHandlerParams holds dependencies for TransactionHandler, injected by Fx.
type TransactionHandlerParams struct {
	fx.In

	TransactionUC usecase.TransactionUsecase
	Logger        *slog.Logger
}

// TransactionHandler serves the post-auction deal review
type TransactionHandler struct {
	transactionUC usecase.TransactionUsecase
	logger        *slog.Logger
}

// NewTransactionHandler is the constructor for TransactionHandler
func NewTransactionHandler(params TransactionHandlerParams) *TransactionHandler {
	return &TransactionHandler{
		transactionUC: params.TransactionUC,
		logger:        params.Logger,
	}
}

// ListTransactions lists deals, optionally only those awaiting review.
func (h *TransactionHandler) ListTransactions(c echo.Context) error {
	pendingReview, _ := strconv.ParseBool(c.QueryParam("pending_review"))
	limit, offset := pagination(c)

	transactions, err := h.transactionUC.ListTransactions(c.Request().Context(), &entity.TransactionFilter{
		Status:        entity.TransactionStatus(c.QueryParam("status")),
		PendingReview: pendingReview,
		Limit:         limit,
		Offset:        offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, transactions)
}

// GetTransactionStats counts deals per review state.
func (h *TransactionHandler) GetTransactionStats(c echo.Context) error {
	stats, err := h.transactionUC.GetTransactionStats(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, stats)
}

// GetTransaction returns a deal with forms, timeline and chat.
func (h *TransactionHandler) GetTransaction(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.transactionUC.GetTransaction(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, detail)
}

// ApproveTransaction marks a confirmed deal sold.
func (h *TransactionHandler) ApproveTransaction(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return response.Action(c, nil, h.transactionUC.ApproveTransaction(c.Request().Context(), adminID, id, req.Notes))
}

// RejectTransaction fails an open deal.
func (h *TransactionHandler) RejectTransaction(c echo.Context) error {
	adminID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ReviewTransactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	notes := ""
	if req.Notes != nil {
		notes = *req.Notes
	}

	return response.Action(c, nil, h.transactionUC.RejectTransaction(c.Request().Context(), adminID, id, notes))
}
