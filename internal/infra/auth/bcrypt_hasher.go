// Package auth holds the password and token primitives of the local identity provider.
package auth

import (
	"autobid/config"
	"autobid/internal/domain/service"
	"autobid/internal/errors"

	"golang.org/x/crypto/bcrypt"
)

type bcryptHasher struct {
	cost int
}

// NewBcryptHasher uses identity.bcryptCost, or bcrypt's default below the minimum.
func NewBcryptHasher(cfg *config.Config) service.PasswordHasher {
	cost := bcrypt.DefaultCost
	if cfg != nil && cfg.Identity != nil && cfg.Identity.BcryptCost >= bcrypt.MinCost && cfg.Identity.BcryptCost <= bcrypt.MaxCost {
		cost = cfg.Identity.BcryptCost
	}

	return &bcryptHasher{cost: cost}
}

// Hash fails for passwords longer than 72 bytes; bcrypt would silently ignore the rest.
func (h *bcryptHasher) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.cost)
	if err != nil {
		return "", errors.Wrap(err, "bcrypt")
	}

	return string(hash), nil
}

func (h *bcryptHasher) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

func (h *bcryptHasher) NeedsRehash(hash string) bool {
	cost, err := bcrypt.Cost([]byte(hash))

	return err != nil || cost != h.cost
}
