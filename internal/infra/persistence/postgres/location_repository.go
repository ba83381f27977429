package postgres

import (
	"context"
	"strings"
	"time"

	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/repository"
	"autobid/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// locationTable maps a hierarchy level to its table and parent column.
type locationTable struct {
	name         string
	parentColumn string
}

var locationTables = map[entity.LocationLevel]locationTable{
	entity.LevelRegion:   {name: "regions"},
	entity.LevelProvince: {name: "provinces", parentColumn: "region_id"},
	entity.LevelCity:     {name: "cities", parentColumn: "province_id"},
	entity.LevelBarangay: {name: "barangays", parentColumn: "city_id"},
}

// locationRecord is the common projection of every level table.
type locationRecord struct {
	ID        uuid.UUID
	ParentID  *uuid.UUID
	Name      string
	Code      *string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// locationRepository implements the repository.LocationRepository interface.
type locationRepository struct {
	db *gorm.DB
}

// NewLocationRepository is the constructor for locationRepository.
func NewLocationRepository(db *gorm.DB) repository.LocationRepository {
	return &locationRepository{
		db: db,
	}
}

func tableFor(level entity.LocationLevel) (locationTable, error) {
	table, ok := locationTables[level]
	if !ok {
		return locationTable{}, domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(level))
	}

	return table, nil
}

func (repo *locationRepository) selectNodes(ctx context.Context, level entity.LocationLevel) (*gorm.DB, error) {
	table, err := tableFor(level)
	if err != nil {
		return nil, err
	}

	columns := []string{"id", "name", "is_active", "created_at", "updated_at"}
	if table.parentColumn != "" {
		columns = append(columns, table.parentColumn+" AS parent_id")
	}
	if level.HasCode() {
		columns = append(columns, "code")
	}

	return repo.db.WithContext(ctx).Table(table.name).Select(columns), nil
}

// scopeParent restricts a query to the children of parentID.
func scopeParent(query *gorm.DB, table locationTable, parentID *uuid.UUID) *gorm.DB {
	if table.parentColumn == "" {
		return query
	}
	if parentID == nil {
		return query.Where(table.parentColumn + " IS NULL")
	}

	return query.Where(table.parentColumn+" = ?", *parentID)
}

// FindByName returns the node of the given level matching name case-insensitively within parentID.
func (repo *locationRepository) FindByName(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, name string) (*entity.LocationNode, error) {
	query, err := repo.selectNodes(ctx, level)
	if err != nil {
		return nil, err
	}

	var record locationRecord
	result := scopeParent(query, locationTables[level], parentID).
		Where("LOWER(name) = LOWER(?)", strings.TrimSpace(name)).
		Order("created_at ASC").
		Limit(1).
		Scan(&record)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to find "+string(level)+" by name")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrLocationNotFound
	}

	return toLocationDomain(level, &record), nil
}

// FindByID retrieves a single node.
func (repo *locationRepository) FindByID(ctx context.Context, level entity.LocationLevel, id uuid.UUID) (*entity.LocationNode, error) {
	query, err := repo.selectNodes(ctx, level)
	if err != nil {
		return nil, err
	}

	var record locationRecord
	result := query.Where("id = ?", id).Limit(1).Scan(&record)
	if result.Error != nil {
		return nil, domainerrors.NewDatabaseExecuteError(result.Error, "failed to find "+string(level)+" by ID")
	}
	if result.RowsAffected == 0 {
		return nil, domainerrors.ErrLocationNotFound
	}

	return toLocationDomain(level, &record), nil
}

// Create inserts a node into the table of its level.
func (repo *locationRepository) Create(ctx context.Context, node *entity.LocationNode) error {
	row, err := fromLocationDomain(node)
	if err != nil {
		return err
	}

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrLocationNameTaken
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrLocationParentRequired.WrapMessage("parent " + string(node.Level) + " does not exist")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create "+string(node.Level))
	}

	applyGeneratedLocation(node, row)

	return nil
}

// Update writes name, code and active flag of an existing node.
func (repo *locationRepository) Update(ctx context.Context, node *entity.LocationNode) error {
	table, err := tableFor(node.Level)
	if err != nil {
		return err
	}

	updates := map[string]any{
		"name":       node.Name,
		"is_active":  node.IsActive,
		"updated_at": time.Now(),
	}
	if node.Level.HasCode() {
		updates["code"] = node.Code
	}

	result := repo.db.WithContext(ctx).Table(table.name).Where("id = ?", node.ID).Updates(updates)
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return domainerrors.ErrLocationNameTaken
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to update "+string(node.Level))
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLocationNotFound
	}

	return nil
}

// Delete removes a node. Children reference their parent with ON DELETE RESTRICT.
func (repo *locationRepository) Delete(ctx context.Context, level entity.LocationLevel, id uuid.UUID) error {
	table, err := tableFor(level)
	if err != nil {
		return err
	}

	result := repo.db.WithContext(ctx).Exec("DELETE FROM "+table.name+" WHERE id = ?", id)
	if result.Error != nil {
		if isForeignKeyConstraintViolation(result.Error) {
			return domainerrors.ErrLocationInUse
		}

		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete "+string(level))
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrLocationNotFound
	}

	return nil
}

// ListChildren lists the nodes of level under parentID ordered by name.
func (repo *locationRepository) ListChildren(ctx context.Context, level entity.LocationLevel, parentID *uuid.UUID, includeInactive bool) ([]*entity.LocationNode, error) {
	query, err := repo.selectNodes(ctx, level)
	if err != nil {
		return nil, err
	}

	query = scopeParent(query, locationTables[level], parentID)
	if !includeInactive {
		query = query.Where("is_active = ?", true)
	}

	var records []*locationRecord
	if err := query.Order("name ASC").Scan(&records).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list "+string(level))
	}

	nodes := make([]*entity.LocationNode, 0, len(records))
	for _, record := range records {
		nodes = append(nodes, toLocationDomain(level, record))
	}

	return nodes, nil
}

// Count returns the number of rows per level.
func (repo *locationRepository) Count(ctx context.Context) (*entity.LocationCounts, error) {
	counts := &entity.LocationCounts{}
	targets := map[entity.LocationLevel]*int64{
		entity.LevelRegion:   &counts.Regions,
		entity.LevelProvince: &counts.Provinces,
		entity.LevelCity:     &counts.Cities,
		entity.LevelBarangay: &counts.Barangays,
	}

	for _, level := range entity.LocationLevels {
		if err := repo.db.WithContext(ctx).Table(locationTables[level].name).Count(targets[level]).Error; err != nil {
			return nil, errors.Wrap(err, "failed to count "+string(level))
		}
	}

	return counts, nil
}

// --- Mapper Functions ---

func toLocationDomain(level entity.LocationLevel, data *locationRecord) *entity.LocationNode {
	if data == nil {
		return nil
	}

	return &entity.LocationNode{
		ID:        data.ID,
		Level:     level,
		ParentID:  data.ParentID,
		Name:      data.Name,
		Code:      data.Code,
		IsActive:  data.IsActive,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromLocationDomain builds the model of the node's level.
func fromLocationDomain(node *entity.LocationNode) (any, error) {
	if node.Level != entity.LevelRegion && node.ParentID == nil {
		return nil, domainerrors.ErrLocationParentRequired
	}

	switch node.Level {
	case entity.LevelRegion:
		return &model.RegionModel{ID: node.ID, Name: node.Name, Code: node.Code, IsActive: node.IsActive}, nil
	case entity.LevelProvince:
		return &model.ProvinceModel{ID: node.ID, RegionID: *node.ParentID, Name: node.Name, IsActive: node.IsActive}, nil
	case entity.LevelCity:
		return &model.CityModel{ID: node.ID, ProvinceID: *node.ParentID, Name: node.Name, IsActive: node.IsActive}, nil
	case entity.LevelBarangay:
		return &model.BarangayModel{ID: node.ID, CityID: *node.ParentID, Name: node.Name, IsActive: node.IsActive}, nil
	default:
		return nil, domainerrors.ErrValidationFailed.WrapMessage("unknown location level " + string(node.Level))
	}
}

// applyGeneratedLocation copies generated values back onto the node.
func applyGeneratedLocation(node *entity.LocationNode, row any) {
	switch m := row.(type) {
	case *model.RegionModel:
		node.ID, node.CreatedAt, node.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	case *model.ProvinceModel:
		node.ID, node.CreatedAt, node.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	case *model.CityModel:
		node.ID, node.CreatedAt, node.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	case *model.BarangayModel:
		node.ID, node.CreatedAt, node.UpdatedAt = m.ID, m.CreatedAt, m.UpdatedAt
	}
}
