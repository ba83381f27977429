package handler

import (
	"log/slog"
	"net/http"

	"autobid/internal/delivery/api/response"
	"autobid/internal/domain/entity"
	"autobid/internal/errors"
	"autobid/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RejectKycRequest carries the reason shown to the applicant
type RejectKycRequest struct {
	Reason string `json:"reason" validate:"required,max=1000"`
}

// KycHandlerParams holds dependencies for KycHandler, injected by Fx.
type KycHandlerParams struct {
	fx.In

	KycUC  usecase.KycUsecase
	Logger *slog.Logger
}

// KycHandler serves KYC review endpoints
type KycHandler struct {
	kycUC  usecase.KycUsecase
	logger *slog.Logger
}

// NewKycHandler is the constructor for KycHandler
func NewKycHandler(params KycHandlerParams) *KycHandler {
	return &KycHandler{
		kycUC:  params.KycUC,
		logger: params.Logger,
	}
}

// ListKyc returns one page of submissions.
func (h *KycHandler) ListKyc(c echo.Context) error {
	limit, offset := pagination(c)
	docs, total, err := h.kycUC.ListKyc(c.Request().Context(), &entity.KycFilter{
		StatusName: entity.KycStatusName(c.QueryParam("status")),
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, response.Page{Items: docs, Total: total})
}

// GetKyc returns a submission with signed image links.
func (h *KycHandler) GetKyc(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	review, err := h.kycUC.GetKyc(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, review)
}

// ApproveKyc approves a submission.
func (h *KycHandler) ApproveKyc(c echo.Context) error {
	reviewerID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	return response.Action(c, nil, h.kycUC.ApproveKyc(c.Request().Context(), reviewerID, id))
}

// RejectKyc rejects a submission.
func (h *KycHandler) RejectKyc(c echo.Context) error {
	reviewerID, err := callerID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req RejectKycRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	return response.Action(c, nil, h.kycUC.RejectKyc(c.Request().Context(), reviewerID, id, req.Reason))
}
