package impl

import (
	"context"
	"fmt"
	"log/slog"

	deliverycontext "autobid/internal/delivery/context"
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

// locationService implements the LocationUsecase interface.
type locationService struct {
	locationRepo repository.LocationRepository
	metrics      service.MetricsRecorder
	invalidator  *invalidator
	logger       *slog.Logger
}

// LocationServiceParams holds dependencies for LocationService, injected by Fx.
type LocationServiceParams struct {
	fx.In

	LocationRepo repository.LocationRepository
	Publisher    service.EventPublisher
	Metrics      service.MetricsRecorder
	Logger       *slog.Logger
}

// NewLocationService creates a new location service.
func NewLocationService(params LocationServiceParams) usecase.LocationUsecase {
	return &locationService{
		locationRepo: params.LocationRepo,
		metrics:      params.Metrics,
		invalidator:  &invalidator{publisher: params.Publisher, logger: params.Logger},
		logger:       params.Logger,
	}
}

func (srv *locationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ImportLocations resolves every row top-down. Nodes created for a row that later
// fails stay in place; the next import reuses them.
func (srv *locationService) ImportLocations(ctx context.Context, rows []entity.LocationRow) (*entity.ImportSummary, error) {
	summary := &entity.ImportSummary{Errors: []string{}}

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return summary, errors.Wrap(err, "import interrupted")
		}

		err := srv.importRow(ctx, row)
		srv.metrics.RecordImportRow(err)
		if err != nil {
			summary.Errors = append(summary.Errors, fmt.Sprintf("Row %s: %s", row.Barangay, err.Error()))

			continue
		}
		summary.SuccessCount++
	}

	srv.log(ctx).Info("Location import finished",
		slog.Int("rows", len(rows)),
		slog.Int("succeeded", summary.SuccessCount),
		slog.Int("failed", len(summary.Errors)),
	)

	if summary.SuccessCount > 0 {
		srv.invalidator.publish(ctx, "locations imported", entity.ViewLocations)
	}

	return summary, nil
}

func (srv *locationService) importRow(ctx context.Context, row entity.LocationRow) error {
	names := map[entity.LocationLevel]string{
		entity.LevelRegion:   row.Region,
		entity.LevelProvince: row.Province,
		entity.LevelCity:     row.City,
		entity.LevelBarangay: row.Barangay,
	}

	var parentID *uuid.UUID
	for _, level := range entity.LocationLevels {
		name := util.NormalizeName(names[level])
		if name == "" {
			return errors.Errorf("missing %s name", level)
		}

		node, err := srv.findOrCreate(ctx, level, parentID, name)
		if err != nil {
			return err
		}

		id := node.ID
		parentID = &id
	}

	return nil
}

// findOrCreate matches name case-insensitively within the parent. A concurrent
// import that wins the insert race is picked up by the second lookup.
func (srv *locationService) findOrCreate(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, name string) (*entity.LocationNode, error) {
	node, err := srv.locationRepo.FindByName(ctx, level, parentID, name)
	if err == nil {
		return node, nil
	}
	if !errors.Is(err, domainerrors.ErrLocationNotFound) {
		return nil, errors.Wrapf(err, "failed to look up %s", level)
	}

	node = &entity.LocationNode{
		Level:    level,
		ParentID: parentID,
		Name:     name,
		IsActive: true,
	}
	err = srv.locationRepo.Create(ctx, node)
	if errors.Is(err, domainerrors.ErrLocationNameTaken) {
		return srv.locationRepo.FindByName(ctx, level, parentID, name)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to create %s", level)
	}

	srv.log(ctx).Debug("Location created", slog.String("level", string(level)), slog.String("name", name))

	return node, nil
}

// ListLocations lists the nodes of a level under a parent.
func (srv *locationService) ListLocations(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, includeInactive bool) ([]*entity.LocationNode, error) {
	if !level.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(level))
	}
	if _, hasParent := level.Parent(); !hasParent {
		parentID = nil
	}

	nodes, err := srv.locationRepo.ListChildren(ctx, level, parentID, includeInactive)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list locations")
	}

	return nodes, nil
}

// CreateLocation adds a single node under its parent.
func (srv *locationService) CreateLocation(ctx context.Context, input *usecase.CreateLocationInput) (*entity.LocationNode, error) {
	if !input.Level.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(input.Level))
	}

	name := util.NormalizeName(input.Name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("name is required")
	}

	node := &entity.LocationNode{
		Level:    input.Level,
		Name:     name,
		IsActive: boolOr(input.IsActive, true),
	}
	if parentLevel, hasParent := input.Level.Parent(); hasParent {
		if input.ParentID == nil {
			return nil, domainerrors.ErrLocationParentRequired.WrapMessage(string(parentLevel) + " id is required")
		}
		node.ParentID = input.ParentID
	}
	if input.Level.HasCode() {
		node.Code = input.Code
	}

	if err := srv.locationRepo.Create(ctx, node); err != nil {
		return nil, errors.Wrap(err, "failed to create location")
	}

	srv.log(ctx).Info("Location created", slog.String("level", string(node.Level)), slog.Any("id", node.ID))
	srv.invalidator.publish(ctx, "location created", entity.ViewLocations)

	return node, nil
}

// UpdateLocation edits name, code and active flag of a node.
func (srv *locationService) UpdateLocation(ctx context.Context, level entity.LocationLevel, id uuid.UUID, input *usecase.UpdateLocationInput) (*entity.LocationNode, error) {
	if !level.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(level))
	}

	node, err := srv.locationRepo.FindByID(ctx, level, id)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find location")
	}

	if input.Name != nil {
		name := util.NormalizeName(*input.Name)
		if name == "" {
			return nil, domainerrors.ErrValidationFailed.WrapMessage("name must not be empty")
		}
		node.Name = name
	}
	if input.Code != nil && level.HasCode() {
		node.Code = input.Code
	}
	if input.IsActive != nil {
		node.IsActive = *input.IsActive
	}

	if err := srv.locationRepo.Update(ctx, node); err != nil {
		return nil, errors.Wrap(err, "failed to update location")
	}

	srv.invalidator.publish(ctx, "location updated", entity.ViewLocations)

	return node, nil
}

// DeleteLocation removes a node that no longer has children.
func (srv *locationService) DeleteLocation(ctx context.Context, level entity.LocationLevel, id uuid.UUID) error {
	if !level.IsValid() {
		return domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(level))
	}

	if err := srv.locationRepo.Delete(ctx, level, id); err != nil {
		srv.log(ctx).Warn("Failed to delete location", slog.String("level", string(level)), slog.Any("id", id), slog.Any("error", err))

		return errors.Wrap(err, "failed to delete location")
	}

	srv.invalidator.publish(ctx, "location deleted", entity.ViewLocations)

	return nil
}

// CountLocations returns the node totals per level.
func (srv *locationService) CountLocations(ctx context.Context) (*entity.LocationCounts, error) {
	counts, err := srv.locationRepo.Count(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count locations")
	}

	return counts, nil
}
