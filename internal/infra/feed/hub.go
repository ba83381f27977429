// Package feed fans live events out to in-process subscribers.
package feed

import (
	"log/slog"
	"sync"

	"autobid/config"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"
	"autobid/internal/infra/metrics"
)

const defaultBufferSize = 32

type subscriber struct {
	filter entity.FeedFilter
	ch     chan *entity.FeedEvent
}

// Hub delivers events in arrival order. A subscriber whose buffer is full misses the event.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]*subscriber
	nextID      uint64
	bufferSize  int
	metrics     *metrics.Metrics
	logger      *slog.Logger
}

// NewHub creates the broadcaster with the configured per-subscriber buffer.
func NewHub(cfg *config.Config, m *metrics.Metrics, logger *slog.Logger) *Hub {
	bufferSize := defaultBufferSize
	if cfg != nil && cfg.Feed != nil && cfg.Feed.BufferSize > 0 {
		bufferSize = cfg.Feed.BufferSize
	}

	return &Hub{
		subscribers: make(map[uint64]*subscriber),
		bufferSize:  bufferSize,
		metrics:     m,
		logger:      logger,
	}
}

// NewBroadcaster exposes the hub as a service.FeedBroadcaster.
func NewBroadcaster(hub *Hub) service.FeedBroadcaster {
	return hub
}

// Publish hands the event to every matching subscriber without blocking.
func (h *Hub) Publish(event *entity.FeedEvent) {
	h.metrics.FeedPublished(event.Type)

	h.mu.RLock()
	defer h.mu.RUnlock()

	for id, sub := range h.subscribers {
		if !sub.filter.Matches(event) {
			continue
		}

		select {
		case sub.ch <- event:
		default:
			h.metrics.FeedDropped()
			h.logger.Warn("Feed subscriber buffer full, dropping event",
				slog.Uint64("subscriber_id", id),
				slog.String("event_type", string(event.Type)),
			)
		}
	}
}

// Subscribe registers a subscriber. Calling the returned func unregisters it and closes the channel.
func (h *Hub) Subscribe(filter entity.FeedFilter) (<-chan *entity.FeedEvent, func()) {
	sub := &subscriber{
		filter: filter,
		ch:     make(chan *entity.FeedEvent, h.bufferSize),
	}

	h.mu.Lock()
	h.nextID++
	id := h.nextID
	h.subscribers[id] = sub
	h.mu.Unlock()
	h.metrics.FeedSubscribed(1)

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			delete(h.subscribers, id)
			h.mu.Unlock()
			close(sub.ch)
			h.metrics.FeedSubscribed(-1)
		})
	}

	return sub.ch, cancel
}

// SubscriberCount returns the number of registered subscribers.
func (h *Hub) SubscriberCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.subscribers)
}
