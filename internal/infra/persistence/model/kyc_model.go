package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// KycStatusModel mirrors the 'kyc_statuses' lookup table.
type KycStatusModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StatusName  string    `gorm:"type:varchar(30);not null;unique"`
	DisplayName string    `gorm:"type:varchar(60);not null"`
}

// TableName explicitly sets the table name for GORM.
func (KycStatusModel) TableName() string {
	return "kyc_statuses"
}

// BeforeCreate assigns the primary key.
func (m *KycStatusModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}

// KycDocumentModel mirrors the 'kyc_documents' table. reviewed_by is not cascaded.
type KycDocumentModel struct {
	ID                     uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	User                   *UserModel      `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	StatusID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	Status                 *KycStatusModel `gorm:"foreignKey:StatusID"`
	DocumentType           string          `gorm:"type:varchar(50);not null"`
	NationalIDFrontURL     *string         `gorm:"column:national_id_front_url;type:text"`
	NationalIDBackURL      *string         `gorm:"column:national_id_back_url;type:text"`
	SecondaryGovIDFrontURL *string         `gorm:"column:secondary_gov_id_front_url;type:text"`
	SecondaryGovIDBackURL  *string         `gorm:"column:secondary_gov_id_back_url;type:text"`
	ProofOfAddressURL      *string         `gorm:"column:proof_of_address_url;type:text"`
	SelfieWithIDURL        *string         `gorm:"column:selfie_with_id_url;type:text"`
	SubmittedAt            *time.Time
	ReviewedAt             *time.Time
	ReviewedBy             *uuid.UUID `gorm:"type:uuid"`
	Reviewer               *UserModel `gorm:"foreignKey:ReviewedBy"`
	RejectionReason        *string    `gorm:"type:text"`
	CreatedAt              time.Time
	UpdatedAt              time.Time
}

// TableName explicitly sets the table name for GORM.
func (KycDocumentModel) TableName() string {
	return "kyc_documents"
}

// BeforeCreate assigns the primary key.
func (m *KycDocumentModel) BeforeCreate(_ *gorm.DB) error {
	ensureID(&m.ID)

	return nil
}
