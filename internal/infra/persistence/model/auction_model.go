package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuctionStatusModel mirrors the 'auction_statuses' lookup table.
type AuctionStatusModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatusName  string    `gorm:"type:varchar(30);not null;unique"`
	DisplayName string    `gorm:"type:varchar(60);not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuctionStatusModel) TableName() string {
	return "auction_statuses"
}

// BeforeCreate assigns the primary key.
func (m *AuctionStatusModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AuctionCategoryModel mirrors the 'auction_categories' lookup table.
type AuctionCategoryModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	CategoryName string    `gorm:"type:varchar(60);not null;unique"`
	DisplayName  string    `gorm:"type:varchar(100);not null"`
	IsActive     bool      `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuctionCategoryModel) TableName() string {
	return "auction_categories"
}

// BeforeCreate assigns the primary key.
func (m *AuctionCategoryModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AuctionModel mirrors the 'auctions' table, one row per listing.
type AuctionModel struct {
	ID            uuid.UUID             `gorm:"type:uuid;primaryKey"`
	SellerID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	Seller        *UserModel            `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	CategoryID    *uuid.UUID            `gorm:"type:uuid"`
	Category      *AuctionCategoryModel `gorm:"foreignKey:CategoryID;constraint:OnDelete:SET NULL"`
	StatusID      uuid.UUID             `gorm:"type:uuid;not null;index"`
	Status        *AuctionStatusModel   `gorm:"foreignKey:StatusID"`
	Title         string                `gorm:"type:varchar(255);not null"`
	Description   *string               `gorm:"type:text"`
	StartingPrice float64               `gorm:"type:numeric(14,2);not null"`
	ReservePrice  *float64              `gorm:"type:numeric(14,2)"`
	CurrentPrice  float64               `gorm:"type:numeric(14,2);not null"`
	BidIncrement  float64               `gorm:"type:numeric(14,2);not null"`
	TotalBids     int                   `gorm:"not null"`
	ViewCount     int                   `gorm:"not null"`
	IsFeatured    bool                  `gorm:"not null"`
	IsActive      bool                  `gorm:"not null"`
	StartTime     *time.Time
	EndTime       *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuctionModel) TableName() string {
	return "auctions"
}

// BeforeCreate assigns the primary key.
func (m *AuctionModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AuctionVehicleModel mirrors the 'auction_vehicles' table, the vehicle spec of a listing.
type AuctionVehicleModel struct {
	AuctionID     uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Auction       *AuctionModel `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
	Brand         *string       `gorm:"type:varchar(100)"`
	Model         *string       `gorm:"type:varchar(100)"`
	Variant       *string       `gorm:"type:varchar(100)"`
	Year          *int
	Mileage       *int
	Condition     *string `gorm:"type:varchar(50)"`
	ExteriorColor *string `gorm:"type:varchar(50)"`
	Transmission  *string `gorm:"type:varchar(50)"`
	FuelType      *string `gorm:"type:varchar(50)"`
}

// TableName explicitly sets the table name for GORM.
func (AuctionVehicleModel) TableName() string {
	return "auction_vehicles"
}

// AuctionPhotoModel mirrors the 'auction_photos' table.
type AuctionPhotoModel struct {
	ID           uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AuctionID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Auction      *AuctionModel `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
	PhotoURL     string        `gorm:"type:text;not null"`
	Category     string        `gorm:"type:varchar(50)"`
	DisplayOrder int           `gorm:"not null"`
	IsPrimary    bool          `gorm:"not null"`
}

// TableName explicitly sets the table name for GORM.
func (AuctionPhotoModel) TableName() string {
	return "auction_photos"
}

// BeforeCreate assigns the primary key.
func (m *AuctionPhotoModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// BidModel mirrors the 'bids' table.
type BidModel struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AuctionID uuid.UUID     `gorm:"type:uuid;not null;index"`
	Auction   *AuctionModel `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
	BidderID  uuid.UUID     `gorm:"type:uuid;not null;index"`
	Bidder    *UserModel    `gorm:"foreignKey:BidderID;constraint:OnDelete:CASCADE"`
	BidAmount float64       `gorm:"type:numeric(14,2);not null"`
	IsAutoBid bool          `gorm:"not null"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (BidModel) TableName() string {
	return "bids"
}

// BeforeCreate assigns the primary key.
func (m *BidModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// AuctionModerationModel mirrors the 'auction_moderation' audit table.
type AuctionModerationModel struct {
	ID          uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AuctionID   uuid.UUID     `gorm:"type:uuid;not null;index"`
	Auction     *AuctionModel `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
	ModeratorID *uuid.UUID    `gorm:"type:uuid"`
	Moderator   *UserModel    `gorm:"foreignKey:ModeratorID;constraint:OnDelete:SET NULL"`
	Action      string        `gorm:"type:varchar(20);not null"`
	Reason      *string       `gorm:"type:text"`
	Notes       *string       `gorm:"type:text"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuctionModerationModel) TableName() string {
	return "auction_moderation"
}

// BeforeCreate assigns the primary key.
func (m *AuctionModerationModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// PaymentModel mirrors the 'payments' table. verified_by is not cascaded.
type PaymentModel struct {
	ID         uuid.UUID     `gorm:"type:uuid;primaryKey"`
	BuyerID    uuid.UUID     `gorm:"type:uuid;not null;index"`
	Buyer      *UserModel    `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	AuctionID  *uuid.UUID    `gorm:"type:uuid"`
	Auction    *AuctionModel `gorm:"foreignKey:AuctionID;constraint:OnDelete:SET NULL"`
	Amount     float64       `gorm:"type:numeric(14,2);not null"`
	VerifiedBy *uuid.UUID    `gorm:"type:uuid"`
	Verifier   *UserModel    `gorm:"foreignKey:VerifiedBy"`
	CreatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (PaymentModel) TableName() string {
	return "payments"
}

// BeforeCreate assigns the primary key.
func (m *PaymentModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
