package impl

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

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

const maxLogoSize = 2 << 20

// vehicleService implements the VehicleUsecase interface.
type vehicleService struct {
	vehicleRepo repository.VehicleRepository
	storage     service.ObjectStorage
	invalidator *invalidator
	logger      *slog.Logger
}

// VehicleServiceParams holds dependencies for VehicleService, injected by Fx.
type VehicleServiceParams struct {
	fx.In

	VehicleRepo repository.VehicleRepository
	Storage     service.ObjectStorage
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

// NewVehicleService creates a new vehicle taxonomy service.
func NewVehicleService(params VehicleServiceParams) usecase.VehicleUsecase {
	return &vehicleService{
		vehicleRepo: params.VehicleRepo,
		storage:     params.Storage,
		invalidator: &invalidator{publisher: params.Publisher, logger: params.Logger},
		logger:      params.Logger,
	}
}

func (srv *vehicleService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *vehicleService) changed(ctx context.Context, reason string) {
	srv.invalidator.publish(ctx, reason, entity.ViewVehicles)
}

// ListBrands returns every brand.
func (srv *vehicleService) ListBrands(ctx context.Context) ([]*entity.VehicleBrand, error) {
	brands, err := srv.vehicleRepo.ListBrands(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list brands")
	}

	return brands, nil
}

// CreateBrand adds a brand.
func (srv *vehicleService) CreateBrand(ctx context.Context, input *usecase.BrandInput) (*entity.VehicleBrand, error) {
	brand := &entity.VehicleBrand{
		Name:     strings.TrimSpace(input.Name),
		IsActive: boolOr(input.IsActive, true),
	}
	if err := srv.vehicleRepo.CreateBrand(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to create brand")
	}

	srv.changed(ctx, "brand created")

	return brand, nil
}

// UpdateBrand renames a brand or flips its active flag.
func (srv *vehicleService) UpdateBrand(ctx context.Context, id uuid.UUID, input *usecase.BrandInput) (*entity.VehicleBrand, error) {
	brand, err := srv.vehicleRepo.FindBrandByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand")
	}

	brand.Name = strings.TrimSpace(input.Name)
	brand.IsActive = boolOr(input.IsActive, brand.IsActive)
	if err := srv.vehicleRepo.UpdateBrand(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to update brand")
	}

	srv.changed(ctx, "brand updated")

	return brand, nil
}

// DeleteBrand removes a brand without models.
func (srv *vehicleService) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	if err := srv.vehicleRepo.DeleteBrand(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete brand")
	}

	srv.changed(ctx, "brand deleted")

	return nil
}

// UploadBrandLogo stores the logo under a timestamped key and saves its public URL.
func (srv *vehicleService) UploadBrandLogo(ctx context.Context, id uuid.UUID, upload *usecase.LogoUpload) (*entity.VehicleBrand, error) {
	if upload == nil || len(upload.Data) == 0 {
		return nil, domainerrors.ErrInvalidFile.WrapMessage("logo file is empty")
	}
	if len(upload.Data) > maxLogoSize {
		return nil, domainerrors.ErrInvalidFile.WrapMessage("logo exceeds " + util.FormatBytes(maxLogoSize))
	}
	if upload.ContentType != "" && !strings.HasPrefix(upload.ContentType, "image/") {
		return nil, domainerrors.ErrInvalidFile.WrapMessage("logo must be an image")
	}

	brand, err := srv.vehicleRepo.FindBrandByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find brand")
	}

	key := fmt.Sprintf("%d-%s", time.Now().UnixMilli(), util.SanitizeFileName(upload.FileName))
	url, err := srv.storage.Upload(ctx, constants.BucketVehicleLogos, key, upload.Data, upload.ContentType)
	if err != nil {
		return nil, domainerrors.ErrStorageFailed.WrapMessage(err.Error())
	}

	brand.LogoURL = &url
	if err := srv.vehicleRepo.UpdateBrand(ctx, brand); err != nil {
		return nil, errors.Wrap(err, "failed to save brand logo")
	}

	srv.log(ctx).Info("Brand logo uploaded",
		slog.Any("brandID", id),
		slog.String("key", key),
		slog.String("size", util.FormatBytes(int64(len(upload.Data)))),
	)
	srv.changed(ctx, "brand logo uploaded")

	return brand, nil
}

// ListModels returns models, optionally of one brand.
func (srv *vehicleService) ListModels(ctx context.Context, brandID *uuid.UUID) ([]*entity.VehicleModel, error) {
	models, err := srv.vehicleRepo.ListModels(ctx, brandID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list models")
	}

	return models, nil
}

// CreateModel adds a model under its brand.
func (srv *vehicleService) CreateModel(ctx context.Context, input *usecase.ModelInput) (*entity.VehicleModel, error) {
	vehicleModel := &entity.VehicleModel{
		BrandID:  input.BrandID,
		Name:     strings.TrimSpace(input.Name),
		BodyType: strings.TrimSpace(input.BodyType),
		IsActive: boolOr(input.IsActive, true),
	}
	if err := srv.vehicleRepo.CreateModel(ctx, vehicleModel); err != nil {
		return nil, errors.Wrap(err, "failed to create model")
	}

	srv.changed(ctx, "model created")

	return vehicleModel, nil
}

// UpdateModel edits a model.
func (srv *vehicleService) UpdateModel(ctx context.Context, id uuid.UUID, input *usecase.ModelInput) (*entity.VehicleModel, error) {
	vehicleModel, err := srv.vehicleRepo.FindModelByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find model")
	}

	vehicleModel.BrandID = input.BrandID
	vehicleModel.Name = strings.TrimSpace(input.Name)
	vehicleModel.BodyType = strings.TrimSpace(input.BodyType)
	vehicleModel.IsActive = boolOr(input.IsActive, vehicleModel.IsActive)
	if err := srv.vehicleRepo.UpdateModel(ctx, vehicleModel); err != nil {
		return nil, errors.Wrap(err, "failed to update model")
	}

	srv.changed(ctx, "model updated")

	return vehicleModel, nil
}

// DeleteModel removes a model without variants.
func (srv *vehicleService) DeleteModel(ctx context.Context, id uuid.UUID) error {
	if err := srv.vehicleRepo.DeleteModel(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete model")
	}

	srv.changed(ctx, "model deleted")

	return nil
}

// ListVariants returns variants, optionally of one model.
func (srv *vehicleService) ListVariants(ctx context.Context, modelID *uuid.UUID) ([]*entity.VehicleVariant, error) {
	variants, err := srv.vehicleRepo.ListVariants(ctx, modelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list variants")
	}

	return variants, nil
}

// CreateVariant adds a variant under its model.
func (srv *vehicleService) CreateVariant(ctx context.Context, input *usecase.VariantInput) (*entity.VehicleVariant, error) {
	variant := &entity.VehicleVariant{
		ModelID:      input.ModelID,
		Name:         strings.TrimSpace(input.Name),
		Transmission: strings.TrimSpace(input.Transmission),
		FuelType:     strings.TrimSpace(input.FuelType),
		IsActive:     boolOr(input.IsActive, true),
	}
	if err := srv.vehicleRepo.CreateVariant(ctx, variant); err != nil {
		return nil, errors.Wrap(err, "failed to create variant")
	}

	srv.changed(ctx, "variant created")

	return variant, nil
}

// UpdateVariant edits a variant.
func (srv *vehicleService) UpdateVariant(ctx context.Context, id uuid.UUID, input *usecase.VariantInput) (*entity.VehicleVariant, error) {
	variant, err := srv.vehicleRepo.FindVariantByID(ctx, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find variant")
	}

	variant.ModelID = input.ModelID
	variant.Name = strings.TrimSpace(input.Name)
	variant.Transmission = strings.TrimSpace(input.Transmission)
	variant.FuelType = strings.TrimSpace(input.FuelType)
	variant.IsActive = boolOr(input.IsActive, variant.IsActive)
	if err := srv.vehicleRepo.UpdateVariant(ctx, variant); err != nil {
		return nil, errors.Wrap(err, "failed to update variant")
	}

	srv.changed(ctx, "variant updated")

	return variant, nil
}

// DeleteVariant removes a variant.
func (srv *vehicleService) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	if err := srv.vehicleRepo.DeleteVariant(ctx, id); err != nil {
		return errors.Wrap(err, "failed to delete variant")
	}

	srv.changed(ctx, "variant deleted")

	return nil
}
