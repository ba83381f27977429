package entity

import (
	"time"

	"github.com/google/uuid"
)

// LocationLevel identifies one tier of the geographic hierarchy.
type LocationLevel string

const (
	LevelRegion   LocationLevel = "region"
	LevelProvince LocationLevel = "province"
	LevelCity     LocationLevel = "city"
	LevelBarangay LocationLevel = "barangay"
)

// LocationLevels lists the hierarchy from root to leaf.
var LocationLevels = []LocationLevel{LevelRegion, LevelProvince, LevelCity, LevelBarangay}

// IsValid reports whether l is one of the four known levels.
func (l LocationLevel) IsValid() bool {
	switch l {
	case LevelRegion, LevelProvince, LevelCity, LevelBarangay:
		return true
	default:
		return false
	}
}

// Parent returns the level above l. Regions have no parent.
func (l LocationLevel) Parent() (LocationLevel, bool) {
	switch l {
	case LevelProvince:
		return LevelRegion, true
	case LevelCity:
		return LevelProvince, true
	case LevelBarangay:
		return LevelCity, true
	default:
		return "", false
	}
}

// HasCode reports whether nodes on this level carry an optional code.
func (l LocationLevel) HasCode() bool {
	return l == LevelRegion
}

// LocationNode is a single node of the Region → Province → City → Barangay tree.
type LocationNode struct {
	ID        uuid.UUID     `json:"id"`
	Level     LocationLevel `json:"level"`
	ParentID  *uuid.UUID    `json:"parent_id,omitempty"` // nil for regions
	Name      string        `json:"name"`
	Code      *string       `json:"code,omitempty"` // regions only
	IsActive  bool          `json:"is_active"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// LocationRow is one denormalised import record.
type LocationRow struct {
	Region   string
	Province string
	City     string
	Barangay string
}

// ImportSummary reports the outcome of a hierarchy import.
type ImportSummary struct {
	SuccessCount int      `json:"success_count"`
	Errors       []string `json:"errors"`
}

// LocationCounts holds node totals per level.
type LocationCounts struct {
	Regions   int64 `json:"regions"`
	Provinces int64 `json:"provinces"`
	Cities    int64 `json:"cities"`
	Barangays int64 `json:"barangays"`
}
