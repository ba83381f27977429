package pubsub

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"autobid/internal/domain/service"

	"cloud.google.com/go/pubsub/v2"
	pubsubpb "cloud.google.com/go/pubsub/v2/apiv1/pubsubpb"
	"github.com/pkg/errors"
)

// Invalidations are tiny and latency matters more than batching.
const publishDelayThreshold = 10 * time.Millisecond

// googlePublisher publishes invalidations to a Pub/Sub topic whose push
// subscription targets the worker.
type googlePublisher struct {
	client    *pubsub.Client
	publisher *pubsub.Publisher
	pending   sync.WaitGroup
	logger    *slog.Logger
}

// NewGooglePubSubPublisher verifies the topic exists before accepting events.
func NewGooglePubSubPublisher(ctx context.Context, projectID, topicID string, logger *slog.Logger) (service.EventPublisher, error) {
	client, err := pubsub.NewClient(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pubsub client")
	}

	topicName := "projects/" + projectID + "/topics/" + topicID
	if _, err := client.TopicAdminClient.GetTopic(ctx, &pubsubpb.GetTopicRequest{Topic: topicName}); err != nil {
		_ = client.Close()

		return nil, errors.Wrapf(err, "failed to get topic %s", topicName)
	}

	publisher := client.Publisher(topicID)
	publisher.PublishSettings.DelayThreshold = publishDelayThreshold

	return &googlePublisher{client: client, publisher: publisher, logger: logger}, nil
}

// PublishViewInvalidated hands the event to the batching publisher and returns.
// The server acknowledgement is awaited in the background so an admin action
// never waits on the broker; a lost invalidation only delays a screen refresh.
func (p *googlePublisher) PublishViewInvalidated(ctx context.Context, event *service.ViewInvalidatedEvent) error {
	data, attributes, err := encodeInvalidation(event)
	if err != nil {
		return err
	}

	result := p.publisher.Publish(ctx, &pubsub.Message{Data: data, Attributes: attributes})

	p.pending.Add(1)
	go func() {
		defer p.pending.Done()

		if _, err := result.Get(context.WithoutCancel(ctx)); err != nil {
			p.logger.Warn("View invalidation not published",
				slog.Any("views", event.Views),
				slog.String("request_id", event.RequestID),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Close flushes buffered messages and waits for their acknowledgements.
func (p *googlePublisher) Close() error {
	p.publisher.Stop()
	p.pending.Wait()

	return errors.WithStack(p.client.Close())
}
