package usecase

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// BrandInput represents a brand create or update
type BrandInput struct {
	Name     string `json:"name" validate:"required,max=100"`
	IsActive *bool  `json:"is_active,omitempty"`
}

// ModelInput represents a model create or update
type ModelInput struct {
	BrandID  uuid.UUID `json:"brand_id" validate:"required"`
	Name     string    `json:"name" validate:"required,max=100"`
	BodyType string    `json:"body_type" validate:"max=50"`
	IsActive *bool     `json:"is_active,omitempty"`
}

// VariantInput represents a variant create or update
type VariantInput struct {
	ModelID      uuid.UUID `json:"model_id" validate:"required"`
	Name         string    `json:"name" validate:"required,max=100"`
	Transmission string    `json:"transmission" validate:"max=50"`
	FuelType     string    `json:"fuel_type" validate:"max=50"`
	IsActive     *bool     `json:"is_active,omitempty"`
}

// LogoUpload is an uploaded brand logo file
type LogoUpload struct {
	FileName    string
	ContentType string
	Data        []byte
}

// VehicleUsecase defines the interface for vehicle taxonomy maintenance
type VehicleUsecase interface {
	ListBrands(ctx context.Context) ([]*entity.VehicleBrand, error)
	CreateBrand(ctx context.Context, input *BrandInput) (*entity.VehicleBrand, error)
	UpdateBrand(ctx context.Context, id uuid.UUID, input *BrandInput) (*entity.VehicleBrand, error)
	DeleteBrand(ctx context.Context, id uuid.UUID) error

	// UploadBrandLogo stores the file in the public logo bucket and saves its URL on the brand.
	UploadBrandLogo(ctx context.Context, id uuid.UUID, upload *LogoUpload) (*entity.VehicleBrand, error)

	ListModels(ctx context.Context, brandID *uuid.UUID) ([]*entity.VehicleModel, error)
	CreateModel(ctx context.Context, input *ModelInput) (*entity.VehicleModel, error)
	UpdateModel(ctx context.Context, id uuid.UUID, input *ModelInput) (*entity.VehicleModel, error)
	DeleteModel(ctx context.Context, id uuid.UUID) error

	ListVariants(ctx context.Context, modelID *uuid.UUID) ([]*entity.VehicleVariant, error)
	CreateVariant(ctx context.Context, input *VariantInput) (*entity.VehicleVariant, error)
	UpdateVariant(ctx context.Context, id uuid.UUID, input *VariantInput) (*entity.VehicleVariant, error)
	DeleteVariant(ctx context.Context, id uuid.UUID) error
}
