package impl

import (
	"context"
	"errors"
	"testing"
	"time"

	"autobid/config"
	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockRepo "autobid/internal/mocks/repository"
	mockService "autobid/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKycService_GetKyc_SignsStoredImages(t *testing.T) {
	ctx := context.Background()
	kycRepo := mockRepo.NewMockKycRepository(t)
	storage := mockService.NewMockObjectStorage(t)
	srv := NewKycService(KycServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		KycRepo:   kycRepo,
		Storage:   storage,
		Publisher: newPublisher(t),
		Config:    &config.Config{Storage: &config.StorageConfig{SignedURLExpiry: 15 * time.Minute}},
		Logger:    newDiscardLogger(),
	})

	id := uuid.New()
	front := "https://storage.example.com/kyc-documents/u1/front.jpg?token=abc"
	back := "u1/back.jpg"
	blank := "  "
	kycRepo.EXPECT().FindByID(ctx, id).Return(&entity.KycDocument{
		ID: id,
		Files: map[string]*string{
			entity.KycFieldNationalIDFront: &front,
			entity.KycFieldNationalIDBack:  &back,
			entity.KycFieldSelfieWithID:    &blank,
		},
	}, nil)
	storage.EXPECT().
		SignedURL(ctx, constants.BucketKycDocuments, "u1/front.jpg", 15*time.Minute).
		Return("https://signed/front", nil)
	storage.EXPECT().
		SignedURL(ctx, constants.BucketKycDocuments, "u1/back.jpg", 15*time.Minute).
		Return("", errors.New("object not found"))

	review, err := srv.GetKyc(ctx, id)
	require.NoError(t, err)
	require.Len(t, review.SignedURLs, len(entity.KycDocumentFields))
	require.NotNil(t, review.SignedURLs[entity.KycFieldNationalIDFront])
	assert.Equal(t, "https://signed/front", *review.SignedURLs[entity.KycFieldNationalIDFront])
	assert.Nil(t, review.SignedURLs[entity.KycFieldNationalIDBack], "signing failures are reported as nil")
	assert.Nil(t, review.SignedURLs[entity.KycFieldSelfieWithID])
	assert.Nil(t, review.SignedURLs[entity.KycFieldProofOfAddress])
}

func TestKycService_DefaultExpiry(t *testing.T) {
	srv := NewKycService(KycServiceParams{Logger: newDiscardLogger()})

	assert.Equal(t, defaultSignedURLExpiry, srv.(*kycService).urlExpiry)
}

func TestKycService_RejectKyc_RequiresReason(t *testing.T) {
	srv := NewKycService(KycServiceParams{
		TxManager: mockRepo.NewMockTransactionManager(t),
		KycRepo:   mockRepo.NewMockKycRepository(t),
		Logger:    newDiscardLogger(),
	})

	err := srv.RejectKyc(context.Background(), uuid.New(), uuid.New(), " \n ")
	assert.ErrorIs(t, err, domainerrors.ErrReasonRequired)
}
