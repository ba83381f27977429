package entity

import (
	"time"

	"github.com/google/uuid"
)

// KycStatusName is the status_name of a row in kyc_statuses.
type KycStatusName string

const (
	KycPending     KycStatusName = "pending"
	KycUnderReview KycStatusName = "under_review"
	KycApproved    KycStatusName = "approved"
	KycRejected    KycStatusName = "rejected"
	KycExpired     KycStatusName = "expired"
)

// ReviewableKycStatuses are the statuses from which a document may still be approved or rejected.
var ReviewableKycStatuses = []KycStatusName{KycPending, KycUnderReview}

// KycStatus is a lookup row joined to kyc_documents by status_id.
type KycStatus struct {
	ID          uuid.UUID     `json:"id"`
	Name        KycStatusName `json:"status_name"`
	DisplayName string        `json:"display_name"`
}

// Document image fields stored on a KYC submission.
const (
	KycFieldNationalIDFront     = "national_id_front_url"
	KycFieldNationalIDBack      = "national_id_back_url"
	KycFieldSecondaryGovIDFront = "secondary_gov_id_front_url"
	KycFieldSecondaryGovIDBack  = "secondary_gov_id_back_url"
	KycFieldProofOfAddress      = "proof_of_address_url"
	KycFieldSelfieWithID        = "selfie_with_id_url"
)

// KycDocumentFields lists every image field resolved to a signed URL for review.
var KycDocumentFields = []string{
	KycFieldNationalIDFront,
	KycFieldNationalIDBack,
	KycFieldSecondaryGovIDFront,
	KycFieldSecondaryGovIDBack,
	KycFieldProofOfAddress,
	KycFieldSelfieWithID,
}

// KycDocument is a user's identity verification submission.
type KycDocument struct {
	ID              uuid.UUID          `json:"id"`
	UserID          uuid.UUID          `json:"user_id"`
	StatusID        uuid.UUID          `json:"status_id"`
	DocumentType    string             `json:"document_type"`
	Files           map[string]*string `json:"files"`
	SubmittedAt     *time.Time         `json:"submitted_at,omitempty"`
	ReviewedAt      *time.Time         `json:"reviewed_at,omitempty"`
	ReviewedBy      *uuid.UUID         `json:"reviewed_by,omitempty"`
	RejectionReason *string            `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time          `json:"created_at"`
	Status          *KycStatus         `json:"status,omitempty"`
	User            *UserSummary       `json:"user,omitempty"`
}

// KycReview is the detail view of a submission with time-boxed links to every stored image.
type KycReview struct {
	*KycDocument
	SignedURLs map[string]*string `json:"signed_urls"`
}

// KycFilter narrows KYC document queries.
type KycFilter struct {
	StatusName KycStatusName
	Limit      int
	Offset     int
}

// KycDecision records an admin verdict on a submission.
type KycDecision struct {
	DocumentID      uuid.UUID
	ReviewerID      uuid.UUID
	StatusName      KycStatusName
	RejectionReason *string
	ReviewedAt      time.Time
}
