package service

import (
	"autobid/internal/domain/entity"
)

// FeedBroadcaster fans live events out to in-process subscribers.
type FeedBroadcaster interface {
	// Publish delivers the event to every matching subscriber without blocking.
	Publish(event *entity.FeedEvent)

	// Subscribe registers a subscriber. The returned cancel func must be called to release it.
	Subscribe(filter entity.FeedFilter) (<-chan *entity.FeedEvent, func())
}
