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

// vehicleRepository implements the repository.VehicleRepository interface.
type vehicleRepository struct {
	db *gorm.DB
}

// NewVehicleRepository is the constructor for vehicleRepository.
func NewVehicleRepository(db *gorm.DB) repository.VehicleRepository {
	return &vehicleRepository{
		db: db,
	}
}

// translateVehicleWriteError maps constraint failures of the taxonomy tables.
func translateVehicleWriteError(err error, details string) error {
	if isUniqueConstraintViolation(err) {
		return domainerrors.ErrVehicleNameTaken
	}
	if isForeignKeyConstraintViolation(err) {
		return domainerrors.ErrVehicleNotFound.WrapMessage("parent entry does not exist")
	}

	return domainerrors.NewDatabaseExecuteError(err, details)
}

// deleteVehicleRow removes one taxonomy row. Children reference their parent with ON DELETE RESTRICT.
func (repo *vehicleRepository) deleteVehicleRow(ctx context.Context, row any, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(row)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrVehicleInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete vehicle entry")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVehicleNotFound
	}

	return nil
}

// updateVehicleRow writes updates onto one taxonomy row.
func (repo *vehicleRepository) updateVehicleRow(ctx context.Context, row any, id uuid.UUID, updates map[string]any) error {
	updates["updated_at"] = time.Now()

	result := repo.db.WithContext(ctx).Model(row).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return translateVehicleWriteError(result.Error, "failed to update vehicle entry")
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrVehicleNotFound
	}

	return nil
}

// ListBrands returns every brand ordered by name.
func (repo *vehicleRepository) ListBrands(ctx context.Context) ([]*entity.VehicleBrand, error) {
	var brandModels []*model.VehicleBrandModel
	if err := repo.db.WithContext(ctx).Order("name ASC").Find(&brandModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle brands")
	}

	brands := make([]*entity.VehicleBrand, 0, len(brandModels))
	for _, brandM := range brandModels {
		brands = append(brands, toBrandDomain(brandM))
	}

	return brands, nil
}

// FindBrandByID retrieves a brand.
func (repo *vehicleRepository) FindBrandByID(ctx context.Context, id uuid.UUID) (*entity.VehicleBrand, error) {
	var brandM model.VehicleBrandModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&brandM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle brand")
	}

	return toBrandDomain(&brandM), nil
}

// CreateBrand inserts a brand.
func (repo *vehicleRepository) CreateBrand(ctx context.Context, brand *entity.VehicleBrand) error {
	brandM := &model.VehicleBrandModel{ID: brand.ID, Name: brand.Name, LogoURL: brand.LogoURL, IsActive: brand.IsActive}
	if err := repo.db.WithContext(ctx).Create(brandM).Error; err != nil {
		return translateVehicleWriteError(err, "failed to create vehicle brand")
	}

	brand.ID, brand.CreatedAt, brand.UpdatedAt = brandM.ID, brandM.CreatedAt, brandM.UpdatedAt

	return nil
}

// UpdateBrand writes name, logo and active flag of a brand.
func (repo *vehicleRepository) UpdateBrand(ctx context.Context, brand *entity.VehicleBrand) error {
	return repo.updateVehicleRow(ctx, &model.VehicleBrandModel{}, brand.ID, map[string]any{
		"name":      brand.Name,
		"logo_url":  brand.LogoURL,
		"is_active": brand.IsActive,
	})
}

// DeleteBrand removes a brand without models.
func (repo *vehicleRepository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return repo.deleteVehicleRow(ctx, &model.VehicleBrandModel{}, id)
}

// ListModels returns models, optionally only those of one brand.
func (repo *vehicleRepository) ListModels(ctx context.Context, brandID *uuid.UUID) ([]*entity.VehicleModel, error) {
	query := repo.db.WithContext(ctx).Preload("Brand")
	if brandID != nil {
		query = query.Where("brand_id = ?", *brandID)
	}

	var modelModels []*model.VehicleModelModel
	if err := query.Order("name ASC").Find(&modelModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle models")
	}

	models := make([]*entity.VehicleModel, 0, len(modelModels))
	for _, modelM := range modelModels {
		models = append(models, toVehicleModelDomain(modelM))
	}

	return models, nil
}

// FindModelByID retrieves a model.
func (repo *vehicleRepository) FindModelByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error) {
	var modelM model.VehicleModelModel
	if err := repo.db.WithContext(ctx).Preload("Brand").Where("id = ?", id).First(&modelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle model")
	}

	return toVehicleModelDomain(&modelM), nil
}

// CreateModel inserts a model under its brand.
func (repo *vehicleRepository) CreateModel(ctx context.Context, vehicleModel *entity.VehicleModel) error {
	modelM := &model.VehicleModelModel{
		ID:       vehicleModel.ID,
		BrandID:  vehicleModel.BrandID,
		Name:     vehicleModel.Name,
		BodyType: vehicleModel.BodyType,
		IsActive: vehicleModel.IsActive,
	}
	if err := repo.db.WithContext(ctx).Create(modelM).Error; err != nil {
		return translateVehicleWriteError(err, "failed to create vehicle model")
	}

	vehicleModel.ID, vehicleModel.CreatedAt, vehicleModel.UpdatedAt = modelM.ID, modelM.CreatedAt, modelM.UpdatedAt

	return nil
}

// UpdateModel writes the editable fields of a model.
func (repo *vehicleRepository) UpdateModel(ctx context.Context, vehicleModel *entity.VehicleModel) error {
	return repo.updateVehicleRow(ctx, &model.VehicleModelModel{}, vehicleModel.ID, map[string]any{
		"brand_id":  vehicleModel.BrandID,
		"name":      vehicleModel.Name,
		"body_type": vehicleModel.BodyType,
		"is_active": vehicleModel.IsActive,
	})
}

// DeleteModel removes a model without variants.
func (repo *vehicleRepository) DeleteModel(ctx context.Context, id uuid.UUID) error {
	return repo.deleteVehicleRow(ctx, &model.VehicleModelModel{}, id)
}

// ListVariants returns variants, optionally only those of one model.
func (repo *vehicleRepository) ListVariants(ctx context.Context, modelID *uuid.UUID) ([]*entity.VehicleVariant, error) {
	query := repo.db.WithContext(ctx).Preload("Model")
	if modelID != nil {
		query = query.Where("model_id = ?", *modelID)
	}

	var variantModels []*model.VehicleVariantModel
	if err := query.Order("name ASC").Find(&variantModels).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list vehicle variants")
	}

	variants := make([]*entity.VehicleVariant, 0, len(variantModels))
	for _, variantM := range variantModels {
		variants = append(variants, toVariantDomain(variantM))
	}

	return variants, nil
}

// FindVariantByID retrieves a variant.
func (repo *vehicleRepository) FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.VehicleVariant, error) {
	var variantM model.VehicleVariantModel
	if err := repo.db.WithContext(ctx).Preload("Model").Where("id = ?", id).First(&variantM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrVehicleNotFound
		}

		return nil, errors.Wrap(err, "failed to find vehicle variant")
	}

	return toVariantDomain(&variantM), nil
}

// CreateVariant inserts a variant under its model.
func (repo *vehicleRepository) CreateVariant(ctx context.Context, variant *entity.VehicleVariant) error {
	variantM := &model.VehicleVariantModel{
		ID:           variant.ID,
		ModelID:      variant.ModelID,
		Name:         variant.Name,
		Transmission: variant.Transmission,
		FuelType:     variant.FuelType,
		IsActive:     variant.IsActive,
	}
	if err := repo.db.WithContext(ctx).Create(variantM).Error; err != nil {
		return translateVehicleWriteError(err, "failed to create vehicle variant")
	}

	variant.ID, variant.CreatedAt, variant.UpdatedAt = variantM.ID, variantM.CreatedAt, variantM.UpdatedAt

	return nil
}

// UpdateVariant writes the editable fields of a variant.
func (repo *vehicleRepository) UpdateVariant(ctx context.Context, variant *entity.VehicleVariant) error {
	return repo.updateVehicleRow(ctx, &model.VehicleVariantModel{}, variant.ID, map[string]any{
		"model_id":     variant.ModelID,
		"name":         variant.Name,
		"transmission": variant.Transmission,
		"fuel_type":    variant.FuelType,
		"is_active":    variant.IsActive,
	})
}

// DeleteVariant removes a variant.
func (repo *vehicleRepository) DeleteVariant(ctx context.Context, id uuid.UUID) error {
	return repo.deleteVehicleRow(ctx, &model.VehicleVariantModel{}, id)
}

// --- Mapper Functions ---

func toBrandDomain(data *model.VehicleBrandModel) *entity.VehicleBrand {
	return &entity.VehicleBrand{
		ID:        data.ID,
		Name:      data.Name,
		LogoURL:   data.LogoURL,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

func toVehicleModelDomain(data *model.VehicleModelModel) *entity.VehicleModel {
	vehicleModel := &entity.VehicleModel{
		ID:        data.ID,
		BrandID:   data.BrandID,
		Name:      data.Name,
		BodyType:  data.BodyType,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
	if data.Brand != nil {
		vehicleModel.BrandName = data.Brand.Name
	}

	return vehicleModel
}

func toVariantDomain(data *model.VehicleVariantModel) *entity.VehicleVariant {
	variant := &entity.VehicleVariant{
		ID:           data.ID,
		ModelID:      data.ModelID,
		Name:         data.Name,
		Transmission: data.Transmission,
		FuelType:     data.FuelType,
		IsActive:     data.IsActive,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
	if data.Model != nil {
		variant.ModelName = data.Model.Name
	}

	return variant
}
