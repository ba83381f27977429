package feed

import (
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	"autobid/config"
	"autobid/internal/domain/entity"
	"autobid/internal/infra/metrics"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub(bufferSize int) (*Hub, *metrics.Metrics) {
	m := metrics.New(&config.Config{})
	cfg := &config.Config{Feed: &config.FeedConfig{BufferSize: bufferSize}}

	return NewHub(cfg, m, slog.New(slog.NewTextHandler(io.Discard, nil))), m
}

func bidEvent(auctionID uuid.UUID) *entity.FeedEvent {
	return &entity.FeedEvent{
		Type:       entity.FeedBidPlaced,
		AuctionID:  &auctionID,
		ReceivedAt: time.Now(),
	}
}

func TestHub_FilterByAuction(t *testing.T) {
	hub, _ := newTestHub(4)
	auctionA := uuid.New()
	auctionB := uuid.New()

	onlyA, cancelA := hub.Subscribe(entity.FeedFilter{AuctionID: &auctionA})
	defer cancelA()
	everything, cancelAll := hub.Subscribe(entity.FeedFilter{})
	defer cancelAll()

	hub.Publish(bidEvent(auctionA))
	hub.Publish(bidEvent(auctionB))
	hub.Publish(&entity.FeedEvent{Type: entity.FeedViewInvalidated})

	require.Len(t, onlyA, 1)
	got := <-onlyA
	assert.Equal(t, auctionA, *got.AuctionID)

	assert.Len(t, everything, 3)
}

func TestHub_PreservesArrivalOrder(t *testing.T) {
	hub, _ := newTestHub(8)
	auctionID := uuid.New()
	ch, cancel := hub.Subscribe(entity.FeedFilter{AuctionID: &auctionID})
	defer cancel()

	var sent []time.Time
	for i := 0; i < 5; i++ {
		event := bidEvent(auctionID)
		event.ReceivedAt = time.Unix(int64(i), 0)
		sent = append(sent, event.ReceivedAt)
		hub.Publish(event)
	}

	for _, want := range sent {
		got := <-ch
		assert.Equal(t, want, got.ReceivedAt)
	}
}

func TestHub_DropsWhenBufferFull(t *testing.T) {
	hub, m := newTestHub(1)
	auctionID := uuid.New()
	ch, cancel := hub.Subscribe(entity.FeedFilter{})
	defer cancel()

	hub.Publish(bidEvent(auctionID))
	hub.Publish(bidEvent(auctionID))
	hub.Publish(bidEvent(auctionID))

	assert.Len(t, ch, 1)

	expected := `
# HELP autobid_feed_dropped_events_total Feed events dropped because a subscriber buffer was full
# TYPE autobid_feed_dropped_events_total counter
autobid_feed_dropped_events_total 2
`
	require.NoError(t, testutil.GatherAndCompare(m.Registry(), strings.NewReader(expected), "autobid_feed_dropped_events_total"))
}

func TestHub_CancelClosesChannelOnce(t *testing.T) {
	hub, _ := newTestHub(1)
	ch, cancel := hub.Subscribe(entity.FeedFilter{})
	assert.Equal(t, 1, hub.SubscriberCount())

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.SubscriberCount())

	assert.NotPanics(t, func() { hub.Publish(bidEvent(uuid.New())) })
}

func TestHub_ConcurrentPublishAndSubscribe(t *testing.T) {
	hub, _ := newTestHub(16)
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			ch, cancel := hub.Subscribe(entity.FeedFilter{})
			for j := 0; j < 10; j++ {
				select {
				case <-ch:
				default:
				}
			}
			cancel()
		}()
		go func() {
			defer wg.Done()
			for j := 0; j < 10; j++ {
				hub.Publish(bidEvent(uuid.New()))
			}
		}()
	}

	wg.Wait()
	assert.Equal(t, 0, hub.SubscriberCount())
}
