package pubsub

import (
	"context"
	"log/slog"
	"time"

	"autobid/config"
	"autobid/internal/domain/constants"
	"autobid/internal/domain/entity"
	"autobid/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// feedPublisher skips the broker and hands invalidations straight to the
// in-process feed. It serves single-instance deployments without Pub/Sub.
type feedPublisher struct {
	feed   service.FeedBroadcaster
	logger *slog.Logger
}

func (p *feedPublisher) PublishViewInvalidated(_ context.Context, event *service.ViewInvalidatedEvent) error {
	data, _, err := encodeInvalidation(event)
	if err != nil {
		return err
	}

	p.feed.Publish(&entity.FeedEvent{
		Type:       entity.FeedViewInvalidated,
		Data:       data,
		ReceivedAt: time.Now(),
	})
	p.logger.Debug("View invalidation delivered in process", slog.Any("views", event.Views))

	return nil
}

func (p *feedPublisher) Close() error {
	return nil
}

// droppingPublisher serves one-shot commands, which have neither a broker nor
// subscribers to notify.
type droppingPublisher struct{}

func (droppingPublisher) PublishViewInvalidated(context.Context, *service.ViewInvalidatedEvent) error {
	return nil
}

func (droppingPublisher) Close() error {
	return nil
}

// PublisherParams holds dependencies for EventPublisher, injected by Fx
type PublisherParams struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Feed   service.FeedBroadcaster `optional:"true"`
	Logger *slog.Logger
}

// NewEventPublisher picks the invalidation transport: the in-process feed when no
// provider is configured, otherwise the local push endpoint or Google Pub/Sub.
func NewEventPublisher(params PublisherParams) (service.EventPublisher, error) {
	cfg := params.Config.PubSub
	logger := params.Logger

	if cfg == nil || cfg.Provider == "" {
		if params.Feed == nil {
			logger.Warn("PubSub not configured and no feed in process, view invalidations are dropped")

			return droppingPublisher{}, nil
		}
		logger.Info("PubSub not configured, delivering invalidations in process")

		return &feedPublisher{feed: params.Feed, logger: logger}, nil
	}

	publisher, err := newBrokerPublisher(params.Ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	params.Lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			logger.Info("Closing EventPublisher")

			return publisher.Close()
		},
	})

	return publisher, nil
}

func newBrokerPublisher(ctx context.Context, cfg *config.PubSubConfig, logger *slog.Logger) (service.EventPublisher, error) {
	switch cfg.Provider {
	case constants.PubSubProviderLocal:
		if cfg.LocalEndpoint == "" {
			return nil, errors.New("local endpoint is required for local provider")
		}
		logger.Info("Publishing invalidations to local push endpoint", slog.String("endpoint", cfg.LocalEndpoint))

		return NewLocalHTTPPublisher(cfg.LocalEndpoint, logger), nil
	case constants.PubSubProviderGoogle:
		if cfg.ProjectID == "" || cfg.TopicID == "" {
			return nil, errors.New("project ID and topic ID are required for google provider")
		}
		logger.Info("Publishing invalidations to Google Pub/Sub",
			slog.String("project_id", cfg.ProjectID),
			slog.String("topic_id", cfg.TopicID),
		)

		return NewGooglePubSubPublisher(ctx, cfg.ProjectID, cfg.TopicID, logger)
	default:
		return nil, errors.Errorf("unknown pubsub provider: %s", cfg.Provider)
	}
}

// Module provides the Pub/Sub FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewEventPublisher),
)
