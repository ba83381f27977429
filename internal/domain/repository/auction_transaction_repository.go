package repository

import (
	"context"
	"time"

	"autobid/internal/domain/entity"

	"github.com/google/uuid"
)

// AuctionTransactionRepository defines the database operations on post-auction deals.
type AuctionTransactionRepository interface {
	// List returns deals with auction title and party summaries, newest first.
	List(ctx context.Context, filter *entity.TransactionFilter) ([]*entity.AuctionTransaction, error)

	// FindByID retrieves a single deal.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.AuctionTransaction, error)

	// Stats counts deals per review state.
	Stats(ctx context.Context) (*entity.TransactionStats, error)

	// Approve marks the deal sold only while it passes the approval gate
	// and reports whether a row was updated.
	Approve(ctx context.Context, id, adminID uuid.UUID, notes *string, at time.Time) (bool, error)

	// Reject fails the deal only while it is in progress and reports whether a row was updated.
	Reject(ctx context.Context, id, adminID uuid.UUID, notes string, at time.Time) (bool, error)

	// ListForms returns the party forms of a deal.
	ListForms(ctx context.Context, transactionID uuid.UUID) ([]*entity.TransactionForm, error)

	// ListTimeline returns the timeline of a deal in chronological order.
	ListTimeline(ctx context.Context, transactionID uuid.UUID) ([]*entity.TimelineEvent, error)

	// ListChat returns the chat of a deal in chronological order.
	ListChat(ctx context.Context, transactionID uuid.UUID) ([]*entity.ChatMessage, error)

	// AppendTimeline inserts a timeline event.
	AppendTimeline(ctx context.Context, event *entity.TimelineEvent) error
}
