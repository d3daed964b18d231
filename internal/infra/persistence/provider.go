// Package persistence selects the document store backing the catalog.
package persistence

import (
	"context"
	"log/slog"

	"restomap/config"
	"restomap/internal/domain/constants"
	"restomap/internal/domain/repository"
	"restomap/internal/infra/persistence/firestore"
	"restomap/internal/infra/persistence/memory"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params holds dependencies for the repositories, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Result exposes the repositories of the selected store
type Result struct {
	fx.Out

	Restaurants repository.RestaurantRepository
	ErrorLogs   repository.ErrorLogRepository
}

// New opens the configured store and builds its repositories
func New(params Params) (Result, error) {
	provider := constants.StoreProviderMemory
	if params.Config.Store != nil && params.Config.Store.Provider != "" {
		provider = params.Config.Store.Provider
	}

	switch provider {
	case constants.StoreProviderMemory:
		params.Logger.Info("Using in-memory document store")

		store, err := memory.Open()
		if err != nil {
			return Result{}, err
		}
		params.Lc.Append(fx.Hook{
			OnStop: func(_ context.Context) error {
				return store.Close()
			},
		})

		return Result{
			Restaurants: memory.NewRestaurantRepository(store),
			ErrorLogs:   memory.NewErrorLogRepository(store),
		}, nil

	case constants.StoreProviderFirestore:
		store, err := firestore.New(firestore.Params{
			Lifecycle: params.Lc,
			Ctx:       params.Ctx,
			Config:    params.Config,
			Logger:    params.Logger,
		})
		if err != nil {
			return Result{}, err
		}
		params.Logger.Info("Using Firestore document store",
			slog.String("project_id", params.Config.Firebase.ProjectID),
		)

		return Result{
			Restaurants: firestore.NewRestaurantRepository(store),
			ErrorLogs:   firestore.NewErrorLogRepository(store),
		}, nil

	default:
		return Result{}, errors.Errorf("unsupported store provider: %s", provider)
	}
}

// Module provides the catalog repositories
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
