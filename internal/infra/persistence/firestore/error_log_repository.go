package firestore

import (
	"context"

	"restomap/internal/domain/entity"
	"restomap/internal/domain/repository"
	"restomap/internal/infra/persistence/model"

	gcfirestore "cloud.google.com/go/firestore"
)

type errorLogRepository struct {
	client     *gcfirestore.Client
	collection string
}

// NewErrorLogRepository is the constructor for errorLogRepository.
func NewErrorLogRepository(store *Store) repository.ErrorLogRepository {
	return &errorLogRepository{
		client:     store.client,
		collection: store.errorLogsCollection,
	}
}

// AppendErrorLog adds a record under a generated document ID.
func (repo *errorLogRepository) AppendErrorLog(ctx context.Context, record *entity.ErrorLog) error {
	if _, _, err := repo.client.Collection(repo.collection).Add(ctx, model.FromErrorLog(record)); err != nil {
		return storeError("appendErrorLog", err)
	}

	return nil
}
