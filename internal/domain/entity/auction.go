package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuctionStatusName is the status_name of a row in auction_statuses.
type AuctionStatusName string

const (
	AuctionDraft           AuctionStatusName = "draft"
	AuctionPendingApproval AuctionStatusName = "pending_approval"
	AuctionScheduled       AuctionStatusName = "scheduled"
	AuctionLive            AuctionStatusName = "live"
	AuctionEnded           AuctionStatusName = "ended"
	AuctionCancelled       AuctionStatusName = "cancelled"
	AuctionSold            AuctionStatusName = "sold"
	AuctionUnsold          AuctionStatusName = "unsold"
)

// AuctionStatus is a lookup row joined to auctions by status_id.
type AuctionStatus struct {
	ID          uuid.UUID         `json:"id"`
	Name        AuctionStatusName `json:"status_name"`
	DisplayName string            `json:"display_name"`
}

// AuctionCategory is a lookup row joined to auctions by category_id.
type AuctionCategory struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"category_name"`
	DisplayName string    `json:"display_name"`
}

// Auction is a seller's listing. "Listing" and "auction" name the same row in different screens.
type Auction struct {
	ID            uuid.UUID        `json:"id"`
	SellerID      uuid.UUID        `json:"seller_id"`
	StatusID      uuid.UUID        `json:"status_id"`
	CategoryID    *uuid.UUID       `json:"category_id,omitempty"`
	Title         string           `json:"title"`
	Description   *string          `json:"description,omitempty"`
	StartingPrice float64          `json:"starting_price"`
	ReservePrice  *float64         `json:"reserve_price,omitempty"`
	CurrentPrice  float64          `json:"current_price"`
	BidIncrement  float64          `json:"bid_increment"`
	TotalBids     int              `json:"total_bids"`
	ViewCount     int              `json:"view_count"`
	IsFeatured    bool             `json:"is_featured"`
	IsActive      bool             `json:"is_active"`
	StartTime     *time.Time       `json:"start_time,omitempty"`
	EndTime       *time.Time       `json:"end_time,omitempty"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
	Status        *AuctionStatus   `json:"status,omitempty"`
	Category      *AuctionCategory `json:"category,omitempty"`
	Vehicle       *AuctionVehicle  `json:"vehicle,omitempty"`
	Photos        []AuctionPhoto   `json:"photos,omitempty"`
	Seller        *UserSummary     `json:"seller,omitempty"`
}

// AuctionVehicle is the vehicle specification attached one-to-one to an auction.
type AuctionVehicle struct {
	Brand         *string `json:"brand,omitempty"`
	Model         *string `json:"model,omitempty"`
	Variant       *string `json:"variant,omitempty"`
	Year          *int    `json:"year,omitempty"`
	Mileage       *int    `json:"mileage,omitempty"`
	Condition     *string `json:"condition,omitempty"`
	ExteriorColor *string `json:"exterior_color,omitempty"`
	Transmission  *string `json:"transmission,omitempty"`
	FuelType      *string `json:"fuel_type,omitempty"`
}

// AuctionPhoto is one picture of the listed vehicle.
type AuctionPhoto struct {
	ID           uuid.UUID `json:"id"`
	PhotoURL     string    `json:"photo_url"`
	Category     string    `json:"category"`
	DisplayOrder int       `json:"display_order"`
	IsPrimary    bool      `json:"is_primary"`
}

// Bid is a single offer on an auction.
type Bid struct {
	ID        uuid.UUID    `json:"id"`
	AuctionID uuid.UUID    `json:"auction_id"`
	BidderID  uuid.UUID    `json:"bidder_id"`
	Amount    float64      `json:"bid_amount"`
	IsAutoBid bool         `json:"is_auto_bid"`
	CreatedAt time.Time    `json:"created_at"`
	Bidder    *UserSummary `json:"bidder,omitempty"`
}

// AuctionFilter narrows listing queries.
type AuctionFilter struct {
	StatusName AuctionStatusName
	Search     string
	Limit      int
	Offset     int
}

// ModerationAction is the verdict recorded in the moderation audit trail.
type ModerationAction string

const (
	ModerationApprove ModerationAction = "approve"
	ModerationReject  ModerationAction = "reject"
)

// IsValid reports whether a is approve or reject.
func (a ModerationAction) IsValid() bool {
	return a == ModerationApprove || a == ModerationReject
}

// TargetStatus is the auction status a moderation verdict moves a listing to.
func (a ModerationAction) TargetStatus() AuctionStatusName {
	if a == ModerationApprove {
		return AuctionScheduled
	}

	return AuctionCancelled
}

// AuctionModeration is an audit row written for every moderation verdict.
type AuctionModeration struct {
	ID          uuid.UUID        `json:"id"`
	AuctionID   uuid.UUID        `json:"auction_id"`
	ModeratorID *uuid.UUID       `json:"moderator_id,omitempty"`
	Action      ModerationAction `json:"action"`
	Reason      *string          `json:"reason,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
