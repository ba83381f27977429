package auth

import (
	"strings"
	"testing"

	"autobid/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func hasherWithCost(cost int) *bcryptHasher {
	return NewBcryptHasher(&config.Config{Identity: &config.IdentityConfig{BcryptCost: cost}}).(*bcryptHasher)
}

func TestBcryptHasher_HashAndVerify(t *testing.T) {
	hasher := hasherWithCost(bcrypt.MinCost)

	hash, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)

	assert.True(t, hasher.Verify("correct horse battery", hash))
	assert.False(t, hasher.Verify("wrong password", hash))
	assert.False(t, hasher.Verify("correct horse battery", "not-a-hash"))
}

func TestBcryptHasher_RejectsOverlongPassword(t *testing.T) {
	_, err := hasherWithCost(bcrypt.MinCost).Hash(strings.Repeat("a", 73))

	assert.Error(t, err)
}

func TestNewBcryptHasher_Cost(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.Config
		want int
	}{
		{name: "configured", cfg: &config.Config{Identity: &config.IdentityConfig{BcryptCost: 5}}, want: 5},
		{name: "below minimum", cfg: &config.Config{Identity: &config.IdentityConfig{BcryptCost: 2}}, want: bcrypt.DefaultCost},
		{name: "missing identity config", cfg: &config.Config{}, want: bcrypt.DefaultCost},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewBcryptHasher(tt.cfg).(*bcryptHasher).cost)
		})
	}
}

func TestBcryptHasher_NeedsRehash(t *testing.T) {
	old, err := hasherWithCost(bcrypt.MinCost).Hash("rotate me")
	require.NoError(t, err)

	assert.False(t, hasherWithCost(bcrypt.MinCost).NeedsRehash(old))
	assert.True(t, hasherWithCost(bcrypt.MinCost+1).NeedsRehash(old))
	assert.True(t, hasherWithCost(bcrypt.MinCost).NeedsRehash("garbage"))
}
