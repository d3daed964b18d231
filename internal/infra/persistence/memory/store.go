// Package memory implements the catalog repositories on an in-process gocloud docstore collection.
// It backs local development and adapter tests; contents are lost on restart.
package memory

import (
	"context"
	"io"

	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/errors"

	"gocloud.dev/docstore"
	"gocloud.dev/docstore/memdocstore"
	"gocloud.dev/gcerrors"
)

const keyField = "id"

// Store owns the restaurant and error log collections.
type Store struct {
	restaurants *docstore.Collection
	errorLogs   *docstore.Collection
}

// Open creates empty in-memory collections.
func Open() (*Store, error) {
	restaurants, err := memdocstore.OpenCollection(keyField, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open restaurants collection")
	}

	errorLogs, err := memdocstore.OpenCollection(keyField, nil)
	if err != nil {
		_ = restaurants.Close()

		return nil, errors.Wrap(err, "failed to open error logs collection")
	}

	return &Store{
		restaurants: restaurants,
		errorLogs:   errorLogs,
	}, nil
}

// Close releases both collections.
func (s *Store) Close() error {
	return errors.Join(s.restaurants.Close(), s.errorLogs.Close())
}

// storeError converts a docstore error into a classified store error.
func storeError(op string, err error) error {
	return domainerrors.NewStoreError(op, classify(err), err)
}

func classify(err error) domainerrors.Classifier {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ClassDeadlineExceeded
	}

	switch gcerrors.Code(err) {
	case gcerrors.PermissionDenied:
		return domainerrors.ClassPermissionDenied
	case gcerrors.NotFound:
		return domainerrors.ClassNotFound
	case gcerrors.AlreadyExists:
		return domainerrors.ClassAlreadyExists
	case gcerrors.InvalidArgument, gcerrors.FailedPrecondition:
		return domainerrors.ClassInvalidArgument
	case gcerrors.DeadlineExceeded:
		return domainerrors.ClassDeadlineExceeded
	case gcerrors.ResourceExhausted, gcerrors.Internal:
		return domainerrors.ClassUnavailable
	default:
		return domainerrors.ClassUnknown
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}
