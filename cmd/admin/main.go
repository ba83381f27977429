package main

import (
	"context"
	"log/slog"
	"os"

	"autobid/config"
	"autobid/internal/delivery"
	"autobid/internal/delivery/api"
	"autobid/internal/delivery/api/middleware"
	"autobid/internal/delivery/api/router/handler"
	"autobid/internal/delivery/worker"
	workerhandler "autobid/internal/delivery/worker/handler"
	"autobid/internal/domain/service"
	"autobid/internal/infra/auth"
	"autobid/internal/infra/feed"
	"autobid/internal/infra/identity"
	logs "autobid/internal/infra/log"
	"autobid/internal/infra/metrics"
	"autobid/internal/infra/persistence/postgres"
	"autobid/internal/infra/pubsub"
	"autobid/internal/infra/storage"
	"autobid/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectDelivery(),
		injectMiddleware(),
		injectHandler(),
		fx.Invoke(
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Options(
		fx.Provide(
			config.New,
			logs.New,
			context.Background,
			postgres.New,
			metrics.New,
			fx.Annotate(
				func(m *metrics.Metrics) *metrics.Metrics { return m },
				fx.As(new(service.MetricsRecorder)),
			),
			storage.New,
			feed.NewHub,
			feed.NewBroadcaster,
		),
		pubsub.Module,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		fx.Provide(
			postgres.NewTransactionManager,
			postgres.NewLocationRepository,
			postgres.NewAuctionRepository,
			postgres.NewUserRepository,
			postgres.NewAdminRepository,
			postgres.NewIdentityRepository,
			postgres.NewKycRepository,
			postgres.NewAuctionTransactionRepository,
			postgres.NewVehicleRepository,
			postgres.NewStatsRepository,
		),
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			auth.NewBcryptHasher,
			auth.NewJWTService,
		),
		identity.Module,
	)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewAuthService,
			impl.NewLocationService,
			impl.NewListingService,
			impl.NewUserService,
			impl.NewKycService,
			impl.NewTransactionService,
			impl.NewVehicleService,
			impl.NewDashboardService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			middleware.NewAuthMiddleware,
			middleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewAuthHandler,
			handler.NewLocationHandler,
			handler.NewListingHandler,
			handler.NewUserHandler,
			handler.NewKycHandler,
			handler.NewTransactionHandler,
			handler.NewVehicleHandler,
			handler.NewDashboardHandler,
			handler.NewStreamHandler,
			workerhandler.NewPushHandler,
		),
	)
}

// injectDelivery runs the admin API and the push worker in one process, so pushes
// reach the in-memory hub that the event streams read from.
func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			fx.Annotate(
				worker.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
