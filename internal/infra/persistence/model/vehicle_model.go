package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// VehicleBrandModel mirrors the 'vehicle_brands' table.
type VehicleBrandModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null;unique"`
	LogoURL   *string   `gorm:"type:text"`
	IsActive  bool      `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleBrandModel) TableName() string {
	return "vehicle_brands"
}

// BeforeCreate assigns the primary key.
func (m *VehicleBrandModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// VehicleModelModel mirrors the 'vehicle_models' table. A brand with models cannot be deleted.
type VehicleModelModel struct {
	ID        uuid.UUID          `gorm:"type:uuid;primaryKey"`
	BrandID   uuid.UUID          `gorm:"type:uuid;not null;index"`
	Brand     *VehicleBrandModel `gorm:"foreignKey:BrandID;constraint:OnDelete:RESTRICT"`
	Name      string             `gorm:"type:varchar(100);not null"`
	BodyType  string             `gorm:"type:varchar(50)"`
	IsActive  bool               `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleModelModel) TableName() string {
	return "vehicle_models"
}

// BeforeCreate assigns the primary key.
func (m *VehicleModelModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// VehicleVariantModel mirrors the 'vehicle_variants' table.
type VehicleVariantModel struct {
	ID           uuid.UUID          `gorm:"type:uuid;primaryKey"`
	ModelID      uuid.UUID          `gorm:"type:uuid;not null;index"`
	Model        *VehicleModelModel `gorm:"foreignKey:ModelID;constraint:OnDelete:RESTRICT"`
	Name         string             `gorm:"type:varchar(100);not null"`
	Transmission string             `gorm:"type:varchar(50)"`
	FuelType     string             `gorm:"type:varchar(50)"`
	IsActive     bool               `gorm:"not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (VehicleVariantModel) TableName() string {
	return "vehicle_variants"
}

// BeforeCreate assigns the primary key.
func (m *VehicleVariantModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
