package impl

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	mockRepo "autobid/internal/mocks/repository"
	mockService "autobid/internal/mocks/service"
	"autobid/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVehicleFixture(t *testing.T) (usecase.VehicleUsecase, *mockRepo.MockVehicleRepository, *mockService.MockObjectStorage) {
	vehicleRepo := mockRepo.NewMockVehicleRepository(t)
	storage := mockService.NewMockObjectStorage(t)
	srv := NewVehicleService(VehicleServiceParams{
		VehicleRepo: vehicleRepo,
		Storage:     storage,
		Publisher:   newPublisher(t),
		Logger:      newDiscardLogger(),
	})

	return srv, vehicleRepo, storage
}

func TestVehicleService_UploadBrandLogo(t *testing.T) {
	srv, vehicleRepo, storage := newVehicleFixture(t)
	ctx := context.Background()
	id := uuid.New()
	keyPattern := regexp.MustCompile(`^\d+-toyotalogo\.png$`)

	vehicleRepo.EXPECT().FindBrandByID(ctx, id).Return(&entity.VehicleBrand{ID: id, Name: "Toyota", IsActive: true}, nil)
	storage.EXPECT().
		Upload(ctx, constants.BucketVehicleLogos, mock.MatchedBy(keyPattern.MatchString), []byte("png"), "image/png").
		Return("https://cdn.example.com/vehicle-logos/1-toyota_logo.png", nil)
	vehicleRepo.EXPECT().
		UpdateBrand(ctx, mock.MatchedBy(func(brand *entity.VehicleBrand) bool {
			return brand.LogoURL != nil && *brand.LogoURL == "https://cdn.example.com/vehicle-logos/1-toyota_logo.png"
		})).
		Return(nil)

	brand, err := srv.UploadBrandLogo(ctx, id, &usecase.LogoUpload{
		FileName:    "toyota logo.png",
		ContentType: "image/png",
		Data:        []byte("png"),
	})
	require.NoError(t, err)
	assert.True(t, brand.IsActive)
}

func TestVehicleService_UploadBrandLogo_Rejects(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		upload *usecase.LogoUpload
	}{
		{name: "nil upload", upload: nil},
		{name: "empty file", upload: &usecase.LogoUpload{FileName: "a.png", ContentType: "image/png"}},
		{name: "too large", upload: &usecase.LogoUpload{FileName: "a.png", ContentType: "image/png", Data: make([]byte, maxLogoSize+1)}},
		{name: "not an image", upload: &usecase.LogoUpload{FileName: "a.pdf", ContentType: "application/pdf", Data: []byte("%PDF")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _, _ := newVehicleFixture(t)

			_, err := srv.UploadBrandLogo(ctx, uuid.New(), tt.upload)
			assert.ErrorIs(t, err, domainerrors.ErrInvalidFile)
		})
	}
}

func TestVehicleService_UploadBrandLogo_StorageFailure(t *testing.T) {
	srv, vehicleRepo, storage := newVehicleFixture(t)
	ctx := context.Background()
	id := uuid.New()

	vehicleRepo.EXPECT().FindBrandByID(ctx, id).Return(&entity.VehicleBrand{ID: id}, nil)
	storage.EXPECT().Upload(ctx, mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", errors.New("bucket missing"))

	_, err := srv.UploadBrandLogo(ctx, id, &usecase.LogoUpload{FileName: "a.png", Data: []byte("x")})
	assert.ErrorIs(t, err, domainerrors.ErrStorageFailed)
}

func TestVehicleService_UpdateBrand_KeepsActiveFlag(t *testing.T) {
	srv, vehicleRepo, _ := newVehicleFixture(t)
	ctx := context.Background()
	id := uuid.New()

	vehicleRepo.EXPECT().FindBrandByID(ctx, id).Return(&entity.VehicleBrand{ID: id, Name: "Toyta", IsActive: false}, nil)
	vehicleRepo.EXPECT().
		UpdateBrand(ctx, mock.MatchedBy(func(brand *entity.VehicleBrand) bool {
			return brand.Name == "Toyota" && !brand.IsActive
		})).
		Return(nil)

	_, err := srv.UpdateBrand(ctx, id, &usecase.BrandInput{Name: " Toyota "})
	require.NoError(t, err)
}

func TestVehicleService_DeleteModel_InUse(t *testing.T) {
	srv, vehicleRepo, _ := newVehicleFixture(t)
	ctx := context.Background()
	id := uuid.New()

	vehicleRepo.EXPECT().DeleteModel(ctx, id).Return(domainerrors.ErrVehicleInUse)

	err := srv.DeleteModel(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrVehicleInUse)
}
