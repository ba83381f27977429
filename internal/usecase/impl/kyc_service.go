package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"autobid/config"
	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/domain/service"
	"autobid/internal/usecase"
	"autobid/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultSignedURLExpiry = time.Hour

// kycService implements the KycUsecase interface.
type kycService struct {
	txManager   repository.TransactionManager
	kycRepo     repository.KycRepository
	storage     service.ObjectStorage
	urlExpiry   time.Duration
	invalidator *invalidator
	logger      *slog.Logger
}

// KycServiceParams holds dependencies for KycService, injected by Fx.
type KycServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	KycRepo   repository.KycRepository
	Storage   service.ObjectStorage
	Publisher service.EventPublisher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewKycService creates a new KYC review service.
func NewKycService(params KycServiceParams) usecase.KycUsecase {
	expiry := defaultSignedURLExpiry
	if params.Config != nil && params.Config.Storage != nil && params.Config.Storage.SignedURLExpiry > 0 {
		expiry = params.Config.Storage.SignedURLExpiry
	}

	return &kycService{
		txManager:   params.TxManager,
		kycRepo:     params.KycRepo,
		storage:     params.Storage,
		urlExpiry:   expiry,
		invalidator: &invalidator{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *kycService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListKyc returns one page of submissions.
func (srv *kycService) ListKyc(ctx context.Context, filter *entity.KycFilter) ([]*entity.KycDocument, int64, error) {
	docs, total, err := srv.kycRepo.List(ctx, filter)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to list kyc documents")
	}

	return docs, total, nil
}

// GetKyc returns a submission and a signed link per stored image. An image that
// is missing or cannot be signed is reported as nil.
func (srv *kycService) GetKyc(ctx context.Context, id uuid.UUID) (*entity.KycReview, error) {
	doc, err := srv.kycRepo.FindByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get kyc document")
	}

	review := &entity.KycReview{
		KycDocument: doc,
		SignedURLs:  make(map[string]*string, len(entity.KycDocumentFields)),
	}
	for _, field := range entity.KycDocumentFields {
		review.SignedURLs[field] = srv.signedURL(ctx, field, doc.Files[field])
	}

	return review, nil
}

func (srv *kycService) signedURL(ctx context.Context, field string, stored *string) *string {
	if stored == nil || strings.TrimSpace(*stored) == "" {
		return nil
	}

	key := util.ObjectKey(*stored, constants.BucketKycDocuments)
	if key == "" {
		return nil
	}

	url, err := srv.storage.SignedURL(ctx, constants.BucketKycDocuments, key, srv.urlExpiry)
	if err != nil {
		srv.log(ctx).Warn("Failed to sign kyc document url", slog.String("field", field), slog.Any("error", err))

		return nil
	}

	return &url
}

// ApproveKyc approves the submission and verifies its owner in one transaction.
func (srv *kycService) ApproveKyc(ctx context.Context, reviewerID, id uuid.UUID) error {
	decision := &entity.KycDecision{
		DocumentID: id,
		ReviewerID: reviewerID,
		StatusName: entity.KycApproved,
		ReviewedAt: time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		doc, err := srv.review(ctx, repoFactory.NewKycRepository(), decision)
		if err != nil {
			return err
		}

		return repoFactory.NewUserRepository().SetFlag(ctx, doc.UserID, entity.UserFlagVerified, true)
	})
	if err != nil {
		return errors.Wrap(err, "failed to approve kyc document")
	}

	srv.log(ctx).Info("KYC approved", slog.Any("documentID", id), slog.Any("reviewerID", reviewerID))
	srv.invalidator.publish(ctx, "kyc approved", entity.ViewKyc, entity.ViewUsers, entity.ViewDashboard)

	return nil
}

// RejectKyc rejects the submission with a reason.
func (srv *kycService) RejectKyc(ctx context.Context, reviewerID, id uuid.UUID, reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return domainerrors.ErrReasonRequired
	}

	decision := &entity.KycDecision{
		DocumentID:      id,
		ReviewerID:      reviewerID,
		StatusName:      entity.KycRejected,
		RejectionReason: &reason,
		ReviewedAt:      time.Now(),
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		_, err := srv.review(ctx, repoFactory.NewKycRepository(), decision)

		return err
	})
	if err != nil {
		return errors.Wrap(err, "failed to reject kyc document")
	}

	srv.log(ctx).Info("KYC rejected", slog.Any("documentID", id), slog.Any("reviewerID", reviewerID))
	srv.invalidator.publish(ctx, "kyc rejected", entity.ViewKyc, entity.ViewDashboard)

	return nil
}

// review writes the decision while the document is still reviewable.
func (srv *kycService) review(ctx context.Context, kycRepo repository.KycRepository, decision *entity.KycDecision) (*entity.KycDocument, error) {
	doc, err := kycRepo.FindByID(ctx, decision.DocumentID)
	if err != nil {
		return nil, err
	}

	status, err := kycRepo.FindStatusByName(ctx, decision.StatusName)
	if err != nil {
		return nil, err
	}

	reviewed, err := kycRepo.Review(ctx, decision, status.ID)
	if err != nil {
		return nil, err
	}
	if !reviewed {
		return nil, domainerrors.ErrKycNotReviewable
	}

	return doc, nil
}
