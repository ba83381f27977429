package postgres

import (
	"context"
	"testing"

	"autobid/internal/domain/entity"
	"autobid/internal/domain/repository"
	"autobid/internal/errors"
	"autobid/internal/infra/persistence/model"
	"autobid/internal/infra/persistence/sqlitetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransactionManager_Execute(t *testing.T) {
	errGate := errors.New("gate closed")

	tests := []struct {
		name         string
		fail         bool
		wantVerified bool
	}{
		{name: "commits on success", wantVerified: true},
		{name: "rolls back and keeps the domain error", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := sqlitetest.Open(t)
			user := sqlitetest.CreateUser(t, db, "buyer@autobid.ph")
			tm := NewTransactionManager(db)

			err := tm.Execute(context.Background(), func(repoFactory repository.RepositoryFactory) error {
				if err := repoFactory.NewUserRepository().SetFlag(context.Background(), user.ID, entity.UserFlagVerified, true); err != nil {
					return err
				}
				if tt.fail {
					return errGate
				}

				return nil
			})

			if tt.fail {
				assert.ErrorIs(t, err, errGate)
			} else {
				require.NoError(t, err)
			}

			var got model.UserModel
			require.NoError(t, db.First(&got, "id = ?", user.ID).Error)
			assert.Equal(t, tt.wantVerified, got.IsVerified)
		})
	}
}
