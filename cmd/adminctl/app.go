package main

import (
	"context"

	"autobid/config"
	"autobid/internal/domain/service"
	logs "autobid/internal/infra/log"
	"autobid/internal/infra/metrics"
	"autobid/internal/infra/persistence/postgres"
	"autobid/internal/infra/pubsub"
	"autobid/internal/usecase/impl"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// startApp builds the subset of the admin graph a command needs and fills targets
// from it. The returned stop func releases the database and publisher.
func startApp(ctx context.Context, targets ...any) (func(), error) {
	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			config.New,
			logs.New,
			func() context.Context { return ctx },
			postgres.New,
			metrics.New,
			fx.Annotate(
				func(m *metrics.Metrics) *metrics.Metrics { return m },
				fx.As(new(service.MetricsRecorder)),
			),
			postgres.NewLocationRepository,
			impl.NewLocationService,
		),
		pubsub.Module,
		fx.Populate(targets...),
	)

	if err := app.Start(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to start")
	}

	return func() {
		_ = app.Stop(context.WithoutCancel(ctx))
	}, nil
}
