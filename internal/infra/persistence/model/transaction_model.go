package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AuctionTransactionModel mirrors the 'auction_transactions' table.
type AuctionTransactionModel struct {
	ID                  uuid.UUID     `gorm:"type:uuid;primaryKey"`
	AuctionID           uuid.UUID     `gorm:"type:uuid;not null;index"`
	Auction             *AuctionModel `gorm:"foreignKey:AuctionID;constraint:OnDelete:CASCADE"`
	SellerID            uuid.UUID     `gorm:"type:uuid;not null;index"`
	Seller              *UserModel    `gorm:"foreignKey:SellerID;constraint:OnDelete:CASCADE"`
	BuyerID             uuid.UUID     `gorm:"type:uuid;not null;index"`
	Buyer               *UserModel    `gorm:"foreignKey:BuyerID;constraint:OnDelete:CASCADE"`
	AgreedPrice         float64       `gorm:"type:numeric(14,2);not null"`
	Status              string        `gorm:"type:varchar(30);not null;index"`
	SellerFormSubmitted bool          `gorm:"not null"`
	BuyerFormSubmitted  bool          `gorm:"not null"`
	SellerConfirmed     bool          `gorm:"not null"`
	BuyerConfirmed      bool          `gorm:"not null"`
	AdminApproved       bool          `gorm:"not null"`
	AdminApprovedBy     *uuid.UUID    `gorm:"type:uuid"`
	AdminNotes          *string       `gorm:"type:text"`
	CreatedAt           time.Time
	CompletedAt         *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuctionTransactionModel) TableName() string {
	return "auction_transactions"
}

// BeforeCreate assigns the primary key.
func (m *AuctionTransactionModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// TransactionFormModel mirrors the 'transaction_forms' table. The six booleans form the legal checklist.
type TransactionFormModel struct {
	ID                       uuid.UUID                `gorm:"type:uuid;primaryKey"`
	TransactionID            uuid.UUID                `gorm:"type:uuid;not null;index"`
	Transaction              *AuctionTransactionModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	Role                     string                   `gorm:"type:varchar(10);not null"`
	Status                   string                   `gorm:"type:varchar(30);not null"`
	AgreedPrice              float64                  `gorm:"type:numeric(14,2);not null"`
	PaymentMethod            *string                  `gorm:"type:varchar(50)"`
	DeliveryDate             *time.Time
	DeliveryLocation         *string `gorm:"type:text"`
	OrCrVerified             bool    `gorm:"not null"`
	DeedsOfSaleReady         bool    `gorm:"not null"`
	PlateNumberConfirmed     bool    `gorm:"not null"`
	RegistrationValid        bool    `gorm:"not null"`
	NoOutstandingLoans       bool    `gorm:"not null"`
	MechanicalInspectionDone bool    `gorm:"not null"`
	AdditionalTerms          *string `gorm:"type:text"`
	ReviewNotes              *string `gorm:"type:text"`
	SubmittedAt              *time.Time
	CreatedAt                time.Time
	UpdatedAt                time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionFormModel) TableName() string {
	return "transaction_forms"
}

// BeforeCreate assigns the primary key.
func (m *TransactionFormModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// TransactionTimelineModel mirrors the append-only 'transaction_timeline' table. actor_id is not cascaded.
type TransactionTimelineModel struct {
	ID            uuid.UUID                `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Transaction   *AuctionTransactionModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	Title         string                   `gorm:"type:varchar(255);not null"`
	Description   *string                  `gorm:"type:text"`
	EventType     string                   `gorm:"type:varchar(50);not null"`
	ActorID       *uuid.UUID               `gorm:"type:uuid"`
	Actor         *UserModel               `gorm:"foreignKey:ActorID"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionTimelineModel) TableName() string {
	return "transaction_timeline"
}

// BeforeCreate assigns the primary key.
func (m *TransactionTimelineModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// TransactionChatMessageModel mirrors the 'transaction_chat_messages' table.
type TransactionChatMessageModel struct {
	ID            uuid.UUID                `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID                `gorm:"type:uuid;not null;index"`
	Transaction   *AuctionTransactionModel `gorm:"foreignKey:TransactionID;constraint:OnDelete:CASCADE"`
	SenderID      uuid.UUID                `gorm:"type:uuid;not null"`
	Sender        *UserModel               `gorm:"foreignKey:SenderID;constraint:OnDelete:CASCADE"`
	Message       string                   `gorm:"type:text;not null"`
	CreatedAt     time.Time
}

// TableName explicitly sets the table name for GORM.
func (TransactionChatMessageModel) TableName() string {
	return "transaction_chat_messages"
}

// BeforeCreate assigns the primary key.
func (m *TransactionChatMessageModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
