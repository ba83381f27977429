package postgres

import (
	"context"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// kycRepository implements the repository.KycRepository interface.
type kycRepository struct {
	db *gorm.DB
}

// NewKycRepository is the constructor for kycRepository.
func NewKycRepository(db *gorm.DB) repository.KycRepository {
	return &kycRepository{
		db: db,
	}
}

// List returns one page of submissions with status and user summary.
func (repo *kycRepository) List(ctx context.Context, filter *entity.KycFilter) ([]*entity.KycDocument, int64, error) {
	if filter == nil {
		filter = &entity.KycFilter{}
	}

	query := repo.db.WithContext(ctx).Model(&model.KycDocumentModel{})
	if filter.StatusName != "" {
		query = query.Where("status_id IN (?)",
			repo.db.Model(&model.KycStatusModel{}).Select("id").Where("status_name = ?", string(filter.StatusName)))
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count kyc documents")
	}

	var documentModels []*model.KycDocumentModel
	if err := query.Session(&gorm.Session{}).
		Preload("Status").
		Preload("User").
		Order("created_at DESC").
		Limit(pageSize(filter.Limit)).
		Offset(filter.Offset).
		Find(&documentModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list kyc documents")
	}

	documents := make([]*entity.KycDocument, 0, len(documentModels))
	for _, documentM := range documentModels {
		documents = append(documents, toKycDocumentDomain(documentM))
	}

	return documents, total, nil
}

// FindByID returns a single submission.
func (repo *kycRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.KycDocument, error) {
	var documentM model.KycDocumentModel
	if err := repo.db.WithContext(ctx).
		Preload("Status").
		Preload("User").
		Where("id = ?", id).
		First(&documentM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrKycNotFound
		}

		return nil, errors.Wrap(err, "failed to find kyc document by ID")
	}

	return toKycDocumentDomain(&documentM), nil
}

// FindStatusByName resolves a status lookup row.
func (repo *kycRepository) FindStatusByName(ctx context.Context, name entity.KycStatusName) (*entity.KycStatus, error) {
	var statusM model.KycStatusModel
	if err := repo.db.WithContext(ctx).Where("status_name = ?", string(name)).First(&statusM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrKycStatusNotFound
		}

		return nil, errors.Wrap(err, "failed to find kyc status")
	}

	return &entity.KycStatus{
		ID:          statusM.ID,
		Name:        entity.KycStatusName(statusM.StatusName),
		DisplayName: statusM.DisplayName,
	}, nil
}

// Review records a decision while the submission is still pending or under review.
func (repo *kycRepository) Review(ctx context.Context, decision *entity.KycDecision, statusID uuid.UUID) (bool, error) {
	reviewable := make([]string, 0, len(entity.ReviewableKycStatuses))
	for _, status := range entity.ReviewableKycStatuses {
		reviewable = append(reviewable, string(status))
	}

	result := repo.db.WithContext(ctx).
		Model(&model.KycDocumentModel{}).
		Where("id = ?", decision.DocumentID).
		Where("status_id IN (?)",
			repo.db.Model(&model.KycStatusModel{}).Select("id").Where("status_name IN ?", reviewable)).
		Updates(map[string]any{
			"status_id":        statusID,
			"reviewed_at":      decision.ReviewedAt,
			"reviewed_by":      decision.ReviewerID,
			"rejection_reason": decision.RejectionReason,
			"updated_at":       time.Now(),
		})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to review kyc document")
	}

	return result.RowsAffected > 0, nil
}

// --- Mapper Functions ---

func toKycDocumentDomain(data *model.KycDocumentModel) *entity.KycDocument {
	if data == nil {
		return nil
	}

	document := &entity.KycDocument{
		ID:           data.ID,
		UserID:       data.UserID,
		StatusID:     data.StatusID,
		DocumentType: data.DocumentType,
		Files: map[string]*string{
			entity.KycFieldNationalIDFront:     data.NationalIDFrontURL,
			entity.KycFieldNationalIDBack:      data.NationalIDBackURL,
			entity.KycFieldSecondaryGovIDFront: data.SecondaryGovIDFrontURL,
			entity.KycFieldSecondaryGovIDBack:  data.SecondaryGovIDBackURL,
			entity.KycFieldProofOfAddress:      data.ProofOfAddressURL,
			entity.KycFieldSelfieWithID:        data.SelfieWithIDURL,
		},
		SubmittedAt:     data.SubmittedAt,
		ReviewedAt:      data.ReviewedAt,
		ReviewedBy:      data.ReviewedBy,
		RejectionReason: data.RejectionReason,
		CreatedAt:       data.CreatedAt,
		User:            toUserSummary(data.User),
	}

	if data.Status != nil {
		document.Status = &entity.KycStatus{
			ID:          data.Status.ID,
			Name:        entity.KycStatusName(data.Status.StatusName),
			DisplayName: data.Status.DisplayName,
		}
	}

	return document
}
