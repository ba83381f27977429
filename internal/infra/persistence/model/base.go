// Package model holds the GORM mappings of the back-office tables.
// Primary keys are generated in BeforeCreate hooks so the same models run on
// PostgreSQL and on the in-memory SQLite databases used by tests.
package model

import (
	"github.com/google/uuid"
)

func ensureID(id *uuid.UUID) {
	if *id == uuid.Nil {
		*id = uuid.New()
	}
}

// All lists every model in dependency order for schema creation in tests.
func All() []any {
	return []any{
		&RegionModel{}, &ProvinceModel{}, &CityModel{}, &BarangayModel{},
		&UserRoleModel{}, &UserModel{}, &AdminRoleModel{}, &AdminUserModel{}, &IdentityModel{},
		&AuctionStatusModel{}, &AuctionCategoryModel{}, &AuctionModel{}, &AuctionVehicleModel{},
		&AuctionPhotoModel{}, &BidModel{}, &AuctionModerationModel{}, &PaymentModel{},
		&KycStatusModel{}, &KycDocumentModel{},
		&AuctionTransactionModel{}, &TransactionFormModel{}, &TransactionTimelineModel{}, &TransactionChatMessageModel{},
		&VehicleBrandModel{}, &VehicleModelModel{}, &VehicleVariantModel{},
	}
}
