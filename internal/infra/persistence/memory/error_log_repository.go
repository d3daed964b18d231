package memory

import (
	"context"

	"restomap/internal/domain/entity"
	"restomap/internal/domain/repository"
	"restomap/internal/infra/persistence/model"

	"gocloud.dev/docstore"
)

type errorLogRepository struct {
	coll *docstore.Collection
}

// NewErrorLogRepository is the constructor for errorLogRepository.
func NewErrorLogRepository(store *Store) repository.ErrorLogRepository {
	return &errorLogRepository{
		coll: store.errorLogs,
	}
}

// AppendErrorLog adds a record under a generated key.
func (repo *errorLogRepository) AppendErrorLog(ctx context.Context, record *entity.ErrorLog) error {
	if err := repo.coll.Create(ctx, model.FromErrorLog(record)); err != nil {
		return storeError("appendErrorLog", err)
	}

	return nil
}
