// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "autobid/internal/delivery/context"
	"autobid/internal/domain/entity"
	domainerrors "autobid/internal/domain/errors"
	"autobid/internal/domain/service"

	"github.com/google/uuid"
)

// validateDeleteRequest checks the id count required by each scope.
func validateDeleteRequest(req entity.DeleteRequest) error {
	if req.Type != entity.DeleteSoft && req.Type != entity.DeleteHard {
		return domainerrors.ErrInvalidDeleteRequest.WrapMessage("type must be soft or hard")
	}

	switch req.Scope {
	case entity.ScopeSingle:
		if len(req.IDs) != 1 {
			return domainerrors.ErrInvalidDeleteRequest.WrapMessage("single scope needs exactly one id")
		}
	case entity.ScopeSelected:
		if len(req.IDs) == 0 {
			return domainerrors.ErrInvalidDeleteRequest.WrapMessage("selected scope needs at least one id")
		}
	case entity.ScopeAll:
	default:
		return domainerrors.ErrInvalidDeleteRequest.WrapMessage("scope must be single, selected or all")
	}

	return nil
}

// uniqueIDs drops repeated ids keeping the first occurrence.
func uniqueIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}

// invalidator announces changed views after a successful mutation.
type invalidator struct {
	publisher service.EventPublisher
	logger    *slog.Logger
}

// publish never fails the calling operation; a publish error is only logged.
func (inv *invalidator) publish(ctx context.Context, reason string, views ...entity.View) {
	if inv.publisher == nil {
		return
	}

	event := &service.ViewInvalidatedEvent{
		RequestID:  deliverycontext.GetRequestIDFromContext(ctx),
		Views:      views,
		Reason:     reason,
		OccurredAt: time.Now().UTC(),
	}

	if err := inv.publisher.PublishViewInvalidated(ctx, event); err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, inv.logger).Warn("Failed to publish view invalidation",
			slog.String("reason", reason),
			slog.Any("views", views),
			slog.Any("error", err),
		)
	}
}

func boolOr(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}
