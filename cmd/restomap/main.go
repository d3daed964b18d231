package main

import (
	"context"
	"log/slog"
	"os"

	"restomap/config"
	"restomap/internal/delivery"
	"restomap/internal/delivery/api"
	apimiddleware "restomap/internal/delivery/api/middleware"
	"restomap/internal/delivery/api/router/handler"
	"restomap/internal/delivery/worker"
	workerhandler "restomap/internal/delivery/worker/handler"
	"restomap/internal/domain/entity"
	"restomap/internal/domain/lifecycle"
	"restomap/internal/domain/service"
	logs "restomap/internal/infra/log"
	"restomap/internal/infra/persistence"
	"restomap/internal/infra/places"
	"restomap/internal/infra/pubsub"
	"restomap/internal/infra/qrcode"
	"restomap/internal/usecase"
	"restomap/internal/usecase/impl"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle
	fx.Shutdowner

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectService(),
		injectUsecase(),
		injectMiddleware(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			loadCatalog,
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
		),
		persistence.Module,
		pubsub.Module,
	)
}

func injectService() fx.Option {
	return fx.Options(
		fx.Provide(
			places.NewPlacesService,
			newQRCodeService,
		),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	if cfg.QRCode == nil {
		// Use default values if not configured
		return qrcode.NewQRCodeService(256, "M")
	}

	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewErrorReporter,
			impl.NewRestaurantService,
			impl.NewSearchService,
		),
	)
}

func injectMiddleware() fx.Option {
	return fx.Options(
		fx.Provide(
			apimiddleware.NewErrorMiddleware,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewRestaurantHandler,
			handler.NewSearchHandler,
			handler.NewStatusHandler,
			workerhandler.NewPushHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
			newWorkerDeliveries,
		),
	)
}

type workerDeliveries struct {
	fx.Out

	Deliveries []delivery.Delivery `group:"deliveries,flatten"`
}

// newWorkerDeliveries adds the sync worker only when it is enabled
func newWorkerDeliveries(params worker.ServerParams) (workerDeliveries, error) {
	if params.Cfg.Worker == nil || !params.Cfg.Worker.Enabled {
		return workerDeliveries{}, nil
	}

	srv, err := worker.NewServer(params)
	if err != nil {
		return workerDeliveries{}, err
	}

	return workerDeliveries{Deliveries: []delivery.Delivery{srv}}, nil
}

// loadCatalog fills the snapshot before the servers accept traffic and logs every later refresh
func loadCatalog(lc fx.Lifecycle, restaurantUC usecase.RestaurantUsecase, logger *slog.Logger) {
	var unsubscribe func()

	lc.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			unsubscribe = restaurantUC.Subscribe(func(restaurants []*entity.Restaurant) {
				logger.Info("Catalog snapshot refreshed", slog.Int("count", len(restaurants)))
			})

			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			restaurantUC.Refresh(ctx)
			if reported := restaurantUC.CurrentError(); reported != nil {
				logger.Warn("Initial catalog load failed, serving an empty snapshot",
					slog.String("code", reported.Code),
					slog.String("error", reported.Raw),
				)
			}

			return nil
		},
		OnStop: func(_ context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))

				// Trigger graceful shutdown to execute all OnStop hooks
				if shutdownErr := params.Shutdown(); shutdownErr != nil {
					slog.Error("Failed to shutdown gracefully", slog.Any("error", shutdownErr))
					os.Exit(1)
				}
			}
		}()
	}
}
