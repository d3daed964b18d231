package firestore

import (
	"context"

	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// storeError converts a Firestore error into a classified store error.
func storeError(op string, err error) error {
	return domainerrors.NewStoreError(op, classify(err), err)
}

func classify(err error) domainerrors.Classifier {
	if errors.Is(err, context.DeadlineExceeded) {
		return domainerrors.ClassDeadlineExceeded
	}

	switch status.Code(err) {
	case codes.PermissionDenied, codes.Unauthenticated:
		return domainerrors.ClassPermissionDenied
	case codes.Unavailable, codes.ResourceExhausted, codes.Aborted:
		return domainerrors.ClassUnavailable
	case codes.NotFound:
		return domainerrors.ClassNotFound
	case codes.AlreadyExists:
		return domainerrors.ClassAlreadyExists
	case codes.InvalidArgument, codes.FailedPrecondition, codes.OutOfRange:
		return domainerrors.ClassInvalidArgument
	case codes.DeadlineExceeded:
		return domainerrors.ClassDeadlineExceeded
	default:
		return domainerrors.ClassUnknown
	}
}
