// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// LocationRepository stores the four levels of the geographic hierarchy.
// Every method takes the level it operates on; parentID is nil only for regions.
type LocationRepository interface {
	// FindByName returns the node of the given level whose name equals name ignoring case,
	// scoped to parentID. It returns errors.ErrLocationNotFound when there is none.
	FindByName(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, name string) (*entity.LocationNode, error)

	// FindByID retrieves a single node.
	FindByID(ctx context.Context, level entity.LocationLevel, id uuid.UUID) (*entity.LocationNode, error)

	// Create inserts a node. A name clash within the parent yields errors.ErrLocationNameTaken.
	Create(ctx context.Context, node *entity.LocationNode) error

	// Update writes name, code and active flag of an existing node.
	Update(ctx context.Context, node *entity.LocationNode) error

	// Delete removes a node. It yields errors.ErrLocationInUse while children reference it.
	Delete(ctx context.Context, level entity.LocationLevel, id uuid.UUID) error

	// ListChildren lists the nodes of level under parentID ordered by name.
	ListChildren(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, includeInactive bool) ([]*entity.LocationNode, error)

	// Count returns the number of rows per level.
	Count(ctx context.Context) (*entity.LocationCounts, error)
}
