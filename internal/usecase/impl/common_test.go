package impl

import (
	"context"
	"errors"
	"testing"

	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/service"
	mockService "autobid/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestValidateDeleteRequest(t *testing.T) {
	id := uuid.New()

	tests := []struct {
		name    string
		req     entity.DeleteRequest
		wantErr bool
	}{
		{"single with one id", entity.DeleteRequest{Scope: entity.ScopeSingle, Type: entity.DeleteSoft, IDs: []uuid.UUID{id}}, false},
		{"single without id", entity.DeleteRequest{Scope: entity.ScopeSingle, Type: entity.DeleteSoft}, true},
		{"single with two ids", entity.DeleteRequest{Scope: entity.ScopeSingle, Type: entity.DeleteHard, IDs: []uuid.UUID{id, uuid.New()}}, true},
		{"selected with ids", entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteHard, IDs: []uuid.UUID{id}}, false},
		{"selected empty", entity.DeleteRequest{Scope: entity.ScopeSelected, Type: entity.DeleteHard}, true},
		{"all ignores ids", entity.DeleteRequest{Scope: entity.ScopeAll, Type: entity.DeleteSoft, IDs: []uuid.UUID{id}}, false},
		{"unknown scope", entity.DeleteRequest{Scope: "some", Type: entity.DeleteSoft}, true},
		{"unknown type", entity.DeleteRequest{Scope: entity.ScopeAll, Type: "purge"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateDeleteRequest(tt.req)
			if tt.wantErr {
				assert.ErrorIs(t, err, domainerrors.ErrInvalidDeleteRequest)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	a, b := uuid.New(), uuid.New()

	assert.Equal(t, []uuid.UUID{a, b}, uniqueIDs([]uuid.UUID{a, b, a, b}))
	assert.Empty(t, uniqueIDs(nil))
}

func TestInvalidator_PublishCarriesRequestID(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	inv := &invalidator{publisher: publisher, logger: newDiscardLogger()}
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	publisher.EXPECT().
		PublishViewInvalidated(ctx, mock.MatchedBy(func(event *service.ViewInvalidatedEvent) bool {
			return event.RequestID == "req-42" &&
				event.Reason == "listings deleted" &&
				assert.ObjectsAreEqual([]entity.View{entity.ViewListings, entity.ViewAuctions}, event.Views) &&
				!event.OccurredAt.IsZero()
		})).
		Return(nil)

	inv.publish(ctx, "listings deleted", entity.ViewListings, entity.ViewAuctions)
}

func TestInvalidator_PublishFailureIsSwallowed(t *testing.T) {
	publisher := mockService.NewMockEventPublisher(t)
	inv := &invalidator{publisher: publisher, logger: newDiscardLogger()}

	publisher.EXPECT().
		PublishViewInvalidated(mock.Anything, mock.Anything).
		Return(errors.New("broker down"))

	assert.NotPanics(t, func() {
		inv.publish(context.Background(), "users deleted", entity.ViewUsers)
	})
}

func TestInvalidator_NilPublisher(t *testing.T) {
	inv := &invalidator{logger: newDiscardLogger()}

	assert.NotPanics(t, func() {
		inv.publish(context.Background(), "noop", entity.ViewDashboard)
	})
}
