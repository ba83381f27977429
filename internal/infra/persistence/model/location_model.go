package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RegionModel mirrors the 'regions' table, the root of the hierarchy.
type RegionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(150);not null"`
	Code      *string   `gorm:"type:varchar(20)"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (RegionModel) TableName() string {
	return "regions"
}

// BeforeCreate assigns the primary key.
func (m *RegionModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// ProvinceModel mirrors the 'provinces' table. A region cannot be deleted while provinces reference it.
type ProvinceModel struct {
	ID        uuid.UUID    `gorm:"type:uuid;primaryKey"`
	RegionID  uuid.UUID    `gorm:"type:uuid;not null;index"`
	Region    *RegionModel `gorm:"foreignKey:RegionID;constraint:OnDelete:RESTRICT"`
	Name      string       `gorm:"type:varchar(150);not null"`
	IsActive  bool         `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProvinceModel) TableName() string {
	return "provinces"
}

// BeforeCreate assigns the primary key.
func (m *ProvinceModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// CityModel mirrors the 'cities' table.
type CityModel struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	ProvinceID uuid.UUID      `gorm:"type:uuid;not null;index"`
	Province   *ProvinceModel `gorm:"foreignKey:ProvinceID;constraint:OnDelete:RESTRICT"`
	Name       string         `gorm:"type:varchar(150);not null"`
	IsActive   bool           `gorm:"not null"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (CityModel) TableName() string {
	return "cities"
}

// BeforeCreate assigns the primary key.
func (m *CityModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// BarangayModel mirrors the 'barangays' table, the leaves of the hierarchy.
type BarangayModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	CityID    uuid.UUID  `gorm:"type:uuid;not null;index"`
	City      *CityModel `gorm:"foreignKey:CityID;constraint:OnDelete:RESTRICT"`
	Name      string     `gorm:"type:varchar(150);not null"`
	IsActive  bool       `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BarangayModel) TableName() string {
	return "barangays"
}

// BeforeCreate assigns the primary key.
func (m *BarangayModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
