package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// FeedEventType is the kind of an event fanned out to live subscribers.
type FeedEventType string

const (
	FeedBidPlaced       FeedEventType = "bid.placed"
	FeedViewInvalidated FeedEventType = "view.invalidated"
)

// FeedEvent is delivered to every subscriber whose filter matches.
type FeedEvent struct {
	Type       FeedEventType   `json:"type"`
	AuctionID  *uuid.UUID      `json:"auction_id,omitempty"`
	Data       json.RawMessage `json:"data"`
	ReceivedAt time.Time       `json:"received_at"`
}

// FeedFilter restricts a subscription to one auction. A nil AuctionID receives everything.
type FeedFilter struct {
	AuctionID *uuid.UUID
}

// Matches reports whether the event passes the filter.
func (f FeedFilter) Matches(e *FeedEvent) bool {
	if f.AuctionID == nil {
		return true
	}

	return e.AuctionID != nil && *e.AuctionID == *f.AuctionID
}

// BidPlaced is the payload of a bid.placed event.
type BidPlaced struct {
	AuctionID uuid.UUID `json:"auction_id"`
	BidID     uuid.UUID `json:"bid_id"`
	BidderID  uuid.UUID `json:"bidder_id"`
	Amount    float64   `json:"amount"`
	PlacedAt  time.Time `json:"placed_at"`
}
