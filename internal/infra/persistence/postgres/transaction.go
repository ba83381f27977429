// Package postgres implements the admin repositories on GORM and PostgreSQL.
package postgres

import (
	"context"

	"autobid/internal/domain/repository"
	"autobid/internal/errors"

	"gorm.io/gorm"
)

type transactionManager struct {
	db *gorm.DB
}

// NewTransactionManager returns the TransactionManager used by the review and
// lifecycle flows.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &transactionManager{db: db}
}

// Execute runs fn in one transaction. GORM commits when fn returns nil and rolls
// back on an error or a panic; the error of fn is returned unwrapped so domain
// errors keep their identity.
func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	var fnErr error
	err := tm.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(txRepositories{tx: tx})

		return fnErr
	})
	if fnErr != nil {
		return fnErr
	}

	return errors.Wrap(err, "failed to commit transaction")
}

// txRepositories hands out repositories bound to one open transaction.
type txRepositories struct {
	tx *gorm.DB
}

func (f txRepositories) NewLocationRepository() repository.LocationRepository {
	return NewLocationRepository(f.tx)
}

func (f txRepositories) NewAuctionRepository() repository.AuctionRepository {
	return NewAuctionRepository(f.tx)
}

func (f txRepositories) NewUserRepository() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f txRepositories) NewKycRepository() repository.KycRepository {
	return NewKycRepository(f.tx)
}

func (f txRepositories) NewAuctionTransactionRepository() repository.AuctionTransactionRepository {
	return NewAuctionTransactionRepository(f.tx)
}
