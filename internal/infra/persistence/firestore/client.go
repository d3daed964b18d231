// Package firestore implements the catalog repositories on Cloud Firestore.
package firestore

import (
	"context"
	"log/slog"

	"restomap/config"
	"restomap/internal/domain/lifecycle"
	"restomap/internal/errors"

	gcfirestore "cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"go.uber.org/fx"
	"google.golang.org/api/option"
)

const (
	defaultRestaurantsCollection = "restaurants"
	defaultErrorLogsCollection   = "error_logs"
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// Store owns the Firestore client and the collection names it writes to.
type Store struct {
	client                *gcfirestore.Client
	restaurantsCollection string
	errorLogsCollection   string
}

// New creates the Firestore client through the Firebase Admin SDK
func New(params Params) (*Store, error) {
	fbCfg := params.Config.Firebase
	if fbCfg == nil || fbCfg.ProjectID == "" {
		return nil, errors.New("firebase project ID is required for the firestore store")
	}

	var opts []option.ClientOption
	if fbCfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(fbCfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: fbCfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get Firestore client")
	}

	store := NewStore(client, params.Config.Store)

	params.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return client.Close()
		},
	})

	return store, nil
}

// NewStore wraps an existing client, falling back to the default collection names.
func NewStore(client *gcfirestore.Client, storeCfg *config.StoreConfig) *Store {
	store := &Store{
		client:                client,
		restaurantsCollection: defaultRestaurantsCollection,
		errorLogsCollection:   defaultErrorLogsCollection,
	}
	if storeCfg != nil {
		if storeCfg.RestaurantsCollection != "" {
			store.restaurantsCollection = storeCfg.RestaurantsCollection
		}
		if storeCfg.ErrorLogsCollection != "" {
			store.errorLogsCollection = storeCfg.ErrorLogsCollection
		}
	}

	return store
}

// Ping reads a single restaurant to verify connectivity and permissions.
func (s *Store) Ping(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	_, err := s.client.Collection(s.restaurantsCollection).Limit(1).Documents(ctx).GetAll()
	if err != nil {
		return storeError("ping", err)
	}

	return nil
}
