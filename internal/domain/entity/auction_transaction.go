package entity

import (
	"time"

	"github.com/google/uuid"
)

// TransactionStatus is the state of a post-auction deal.
type TransactionStatus string

const (
	TransactionInProgress TransactionStatus = "in_transaction"
	TransactionSold       TransactionStatus = "sold"
	TransactionDealFailed TransactionStatus = "deal_failed"
)

// AuctionTransaction is the deal between the winning buyer and the seller of an auction.
type AuctionTransaction struct {
	ID                  uuid.UUID         `json:"id"`
	AuctionID           uuid.UUID         `json:"auction_id"`
	SellerID            uuid.UUID         `json:"seller_id"`
	BuyerID             uuid.UUID         `json:"buyer_id"`
	AgreedPrice         float64           `json:"agreed_price"`
	Status              TransactionStatus `json:"status"`
	SellerFormSubmitted bool              `json:"seller_form_submitted"`
	BuyerFormSubmitted  bool              `json:"buyer_form_submitted"`
	SellerConfirmed     bool              `json:"seller_confirmed"`
	BuyerConfirmed      bool              `json:"buyer_confirmed"`
	AdminApproved       bool              `json:"admin_approved"`
	AdminApprovedBy     *uuid.UUID        `json:"admin_approved_by,omitempty"`
	AdminNotes          *string           `json:"admin_notes,omitempty"`
	CreatedAt           time.Time         `json:"created_at"`
	CompletedAt         *time.Time        `json:"completed_at,omitempty"`
	AuctionTitle        string            `json:"auction_title,omitempty"`
	Seller              *UserSummary      `json:"seller,omitempty"`
	Buyer               *UserSummary      `json:"buyer,omitempty"`
}

// CanApprove reports whether the deal may be marked sold: both parties confirmed,
// no admin approval yet, and the deal is still open.
func (t *AuctionTransaction) CanApprove() bool {
	return t != nil &&
		t.Status == TransactionInProgress &&
		t.SellerConfirmed &&
		t.BuyerConfirmed &&
		!t.AdminApproved
}

// CanReject reports whether the deal may still be failed.
func (t *AuctionTransaction) CanReject() bool {
	return t != nil && t.Status == TransactionInProgress
}

// FormRole identifies which party filled a transaction form.
type FormRole string

const (
	FormRoleSeller FormRole = "seller"
	FormRoleBuyer  FormRole = "buyer"
)

// LegalChecklist holds the six confirmations each party ticks on its form.
type LegalChecklist struct {
	OrCrVerified             bool `json:"or_cr_verified"`
	DeedsOfSaleReady         bool `json:"deeds_of_sale_ready"`
	PlateNumberConfirmed     bool `json:"plate_number_confirmed"`
	RegistrationValid        bool `json:"registration_valid"`
	NoOutstandingLoans       bool `json:"no_outstanding_loans"`
	MechanicalInspectionDone bool `json:"mechanical_inspection_done"`
}

// Complete reports whether every checklist item is ticked.
func (c LegalChecklist) Complete() bool {
	return c.OrCrVerified && c.DeedsOfSaleReady && c.PlateNumberConfirmed &&
		c.RegistrationValid && c.NoOutstandingLoans && c.MechanicalInspectionDone
}

// TransactionForm is one party's side of the deal paperwork.
type TransactionForm struct {
	ID               uuid.UUID      `json:"id"`
	TransactionID    uuid.UUID      `json:"transaction_id"`
	Role             FormRole       `json:"role"`
	Status           string         `json:"status"`
	AgreedPrice      float64        `json:"agreed_price"`
	PaymentMethod    *string        `json:"payment_method,omitempty"`
	DeliveryDate     *time.Time     `json:"delivery_date,omitempty"`
	DeliveryLocation *string        `json:"delivery_location,omitempty"`
	Checklist        LegalChecklist `json:"checklist"`
	AdditionalTerms  *string        `json:"additional_terms,omitempty"`
	ReviewNotes      *string        `json:"review_notes,omitempty"`
	SubmittedAt      *time.Time     `json:"submitted_at,omitempty"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// Timeline event types written by the back-office.
const (
	TimelineAdminApproved = "admin_approved"
	TimelineCancelled     = "cancelled"
)

// TimelineEvent is an append-only log entry of a transaction.
type TimelineEvent struct {
	ID            uuid.UUID  `json:"id"`
	TransactionID uuid.UUID  `json:"transaction_id"`
	Title         string     `json:"title"`
	Description   *string    `json:"description,omitempty"`
	EventType     string     `json:"event_type"`
	ActorID       *uuid.UUID `json:"actor_id,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ChatMessage is a message exchanged between the parties of a transaction.
type ChatMessage struct {
	ID            uuid.UUID `json:"id"`
	TransactionID uuid.UUID `json:"transaction_id"`
	SenderID      uuid.UUID `json:"sender_id"`
	Message       string    `json:"message"`
	CreatedAt     time.Time `json:"created_at"`
}

// TransactionDetail bundles a deal with its forms, timeline and chat.
// CanApprove and CanReject tell a client which review actions to offer.
type TransactionDetail struct {
	Transaction *AuctionTransaction `json:"transaction"`
	CanApprove  bool                `json:"can_approve"`
	CanReject   bool                `json:"can_reject"`
	SellerForm  *TransactionForm    `json:"seller_form,omitempty"`
	BuyerForm   *TransactionForm    `json:"buyer_form,omitempty"`
	Timeline    []*TimelineEvent    `json:"timeline"`
	Chat        []*ChatMessage      `json:"chat"`
}

// TransactionStats counts deals per review state.
type TransactionStats struct {
	PendingReview int64 `json:"pending_review"`
	InProgress    int64 `json:"in_progress"`
	Completed     int64 `json:"completed"`
	Failed        int64 `json:"failed"`
}

// TransactionFilter narrows transaction queries. PendingReview selects deals
// confirmed by both parties that still await admin approval.
type TransactionFilter struct {
	Status        TransactionStatus
	PendingReview bool
	Limit         int
	Offset        int
}
