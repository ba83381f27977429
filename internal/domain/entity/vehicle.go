package entity

import (
	"time"

	"github.com/google/uuid"
)

// VehicleBrand is a manufacturer in the vehicle taxonomy.
type VehicleBrand struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	LogoURL   *string   `json:"logo_url,omitempty"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleModel belongs to a brand.
type VehicleModel struct {
	ID        uuid.UUID `json:"id"`
	BrandID   uuid.UUID `json:"brand_id"`
	Name      string    `json:"name"`
	BodyType  string    `json:"body_type"`
	IsActive  bool      `json:"is_active"`
	BrandName string    `json:"brand_name,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// VehicleVariant belongs to a model.
type VehicleVariant struct {
	ID           uuid.UUID `json:"id"`
	ModelID      uuid.UUID `json:"model_id"`
	Name         string    `json:"name"`
	Transmission string    `json:"transmission"`
	FuelType     string    `json:"fuel_type"`
	IsActive     bool      `json:"is_active"`
	ModelName    string    `json:"model_name,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
