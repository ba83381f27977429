package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// VehicleRepository defines the database operations on the brand/model/variant taxonomy.
type VehicleRepository interface {
	ListBrands(ctx context.Context) ([]*entity.VehicleBrand, error)
	FindBrandByID(ctx context.Context, id uuid.UUID) (*entity.VehicleBrand, error)
	CreateBrand(ctx context.Context, brand *entity.VehicleBrand) error
	UpdateBrand(ctx context.Context, brand *entity.VehicleBrand) error
	DeleteBrand(ctx context.Context, id uuid.UUID) error

	// ListModels returns every model, or only those of brandID when it is set.
	ListModels(ctx context.Context, brandID *uuid.UUID) ([]*entity.VehicleModel, error)
	FindModelByID(ctx context.Context, id uuid.UUID) (*entity.VehicleModel, error)
	CreateModel(ctx context.Context, model *entity.VehicleModel) error
	UpdateModel(ctx context.Context, model *entity.VehicleModel) error
	DeleteModel(ctx context.Context, id uuid.UUID) error

	// ListVariants returns every variant, or only those of modelID when it is set.
	ListVariants(ctx context.Context, modelID *uuid.UUID) ([]*entity.VehicleVariant, error)
	FindVariantByID(ctx context.Context, id uuid.UUID) (*entity.VehicleVariant, error)
	CreateVariant(ctx context.Context, variant *entity.VehicleVariant) error
	UpdateVariant(ctx context.Context, variant *entity.VehicleVariant) error
	DeleteVariant(ctx context.Context, id uuid.UUID) error
}
