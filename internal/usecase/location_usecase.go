package usecase

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateLocationInput represents the input for adding a node to the hierarchy
type CreateLocationInput struct {
	Level    entity.LocationLevel `json:"level" validate:"required,oneof=region province city barangay"`
	ParentID *uuid.UUID           `json:"parent_id,omitempty"`
	Name     string               `json:"name" validate:"required,max=255"`
	Code     *string              `json:"code,omitempty" validate:"omitempty,max=32"`
	IsActive *bool                `json:"is_active,omitempty"`
}

// UpdateLocationInput represents the input for editing a node. Nil fields are left untouched.
type UpdateLocationInput struct {
	Name     *string `json:"name,omitempty" validate:"omitempty,min=1,max=255"`
	Code     *string `json:"code,omitempty" validate:"omitempty,max=32"`
	IsActive *bool   `json:"is_active,omitempty"`
}

// LocationUsecase defines the interface for geographic reference data management
type LocationUsecase interface {
	// ImportLocations resolves every row onto the hierarchy, creating missing nodes.
	// Rows are independent: a failing row is reported in the summary and the import continues.
	ImportLocations(ctx context.Context, rows []entity.LocationRow) (*entity.ImportSummary, error)

	ListLocations(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, includeInactive bool) ([]*entity.LocationNode, error)
	CreateLocation(ctx context.Context, input *CreateLocationInput) (*entity.LocationNode, error)
	UpdateLocation(ctx context.Context, level entity.LocationLevel, id uuid.UUID, input *UpdateLocationInput) (*entity.LocationNode, error)
	DeleteLocation(ctx context.Context, level entity.LocationLevel, id uuid.UUID) error
	CountLocations(ctx context.Context) (*entity.LocationCounts, error)
}
