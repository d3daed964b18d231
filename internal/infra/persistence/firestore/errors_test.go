package firestore

import (
	"context"
	"testing"

	domainerrors "restomap/internal/domain/errors"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

func TestClassify(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want domainerrors.Classifier
	}{
		{name: "permission denied", err: status.Error(codes.PermissionDenied, "Missing or insufficient permissions."), want: domainerrors.ClassPermissionDenied},
		{name: "unauthenticated", err: status.Error(codes.Unauthenticated, "no token"), want: domainerrors.ClassPermissionDenied},
		{name: "unavailable", err: status.Error(codes.Unavailable, "backend down"), want: domainerrors.ClassUnavailable},
		{name: "not found", err: status.Error(codes.NotFound, "no document"), want: domainerrors.ClassNotFound},
		{name: "already exists", err: status.Error(codes.AlreadyExists, "dup"), want: domainerrors.ClassAlreadyExists},
		{name: "invalid argument", err: status.Error(codes.InvalidArgument, "bad"), want: domainerrors.ClassInvalidArgument},
		{name: "deadline status", err: status.Error(codes.DeadlineExceeded, "slow"), want: domainerrors.ClassDeadlineExceeded},
		{name: "context deadline", err: errors.Wrap(context.DeadlineExceeded, "list"), want: domainerrors.ClassDeadlineExceeded},
		{name: "plain error", err: errors.New("boom"), want: domainerrors.ClassUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, classify(tt.err))
		})
	}
}

func TestStoreError_UserMessage(t *testing.T) {
	err := storeError("list", status.Error(codes.PermissionDenied, "Missing or insufficient permissions."))

	assert.Contains(t, err.Error(), "list: permission-denied")
	assert.Equal(t, "❌ Vous n'avez pas la permission d'effectuer cette action. Vérifiez vos droits d'accès.", domainerrors.UserMessage(err))
}
