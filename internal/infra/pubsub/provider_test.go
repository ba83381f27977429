package pubsub

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"autobid/config"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

type recordingFeed struct {
	events []*entity.FeedEvent
}

func (f *recordingFeed) Subscribe(entity.FeedFilter) (<-chan *entity.FeedEvent, func()) {
	return nil, func() {}
}

func (f *recordingFeed) Publish(event *entity.FeedEvent) {
	f.events = append(f.events, event)
}

func newPublisher(t *testing.T, cfg *config.Config, feed service.FeedBroadcaster) (service.EventPublisher, error) {
	t.Helper()

	return NewEventPublisher(PublisherParams{
		Lc:     fxtest.NewLifecycle(t),
		Ctx:    context.Background(),
		Config: cfg,
		Feed:   feed,
		Logger: discardLogger(),
	})
}

func TestNewEventPublisher_InProcessFeed(t *testing.T) {
	feed := &recordingFeed{}
	publisher, err := newPublisher(t, &config.Config{}, feed)
	require.NoError(t, err)

	err = publisher.PublishViewInvalidated(context.Background(), &service.ViewInvalidatedEvent{
		Views:      []entity.View{entity.ViewListings},
		Reason:     "listings soft deleted",
		OccurredAt: time.Now(),
	})
	require.NoError(t, err)

	require.Len(t, feed.events, 1)
	assert.Equal(t, entity.FeedViewInvalidated, feed.events[0].Type)

	var got service.ViewInvalidatedEvent
	require.NoError(t, json.Unmarshal(feed.events[0].Data, &got))
	assert.Equal(t, []entity.View{entity.ViewListings}, got.Views)
}

func TestNewEventPublisher_WithoutFeed(t *testing.T) {
	publisher, err := newPublisher(t, &config.Config{}, nil)
	require.NoError(t, err)

	assert.NoError(t, publisher.PublishViewInvalidated(context.Background(), &service.ViewInvalidatedEvent{}))
}

func TestNewEventPublisher_InvalidProvider(t *testing.T) {
	tests := []struct {
		name string
		cfg  *config.PubSubConfig
		want string
	}{
		{name: "local without endpoint", cfg: &config.PubSubConfig{Provider: "local"}, want: "local endpoint is required"},
		{name: "google without topic", cfg: &config.PubSubConfig{Provider: "google", ProjectID: "autobid"}, want: "topic ID are required"},
		{name: "unknown", cfg: &config.PubSubConfig{Provider: "kafka"}, want: "unknown pubsub provider: kafka"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := newPublisher(t, &config.Config{PubSub: tt.cfg}, nil)

			assert.ErrorContains(t, err, tt.want)
		})
	}
}
