package impl

import (
	"context"
	"net/http"
	"testing"
	"time"

	deliverycontext "restomap/internal/delivery/context"
	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	mockRepo "restomap/internal/mocks/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestErrorReporter(t *testing.T) (*errorReporter, *mockRepo.MockErrorLogRepository) {
	logRepo := mockRepo.NewMockErrorLogRepository(t)
	reporter := NewErrorReporter(logRepo, newTestConfig(), newDiscardLogger()).(*errorReporter)
	reporter.now = func() time.Time { return fixedNow }

	return reporter, logRepo
}

func TestErrorReporter_Report_PersistsRecord(t *testing.T) {
	reporter, logRepo := createTestErrorReporter(t)
	ctx := deliverycontext.WithRequestID(context.Background(), "req-42")

	var logged *entity.ErrorLog
	logRepo.EXPECT().
		AppendErrorLog(mock.Anything, mock.AnythingOfType("*entity.ErrorLog")).
		Run(func(logCtx context.Context, record *entity.ErrorLog) {
			_, hasDeadline := logCtx.Deadline()
			assert.True(t, hasDeadline)
			logged = record
		}).
		Return(nil).
		Once()

	cause := domainerrors.NewStoreError("create", domainerrors.ClassAlreadyExists, errors.New("dup"))
	reported := reporter.Report(ctx, cause, map[string]any{
		"operation":  "save",
		"submission": &entity.RestaurantSubmission{Name: "X", Cuisine: entity.Other("Ouzbek")},
	})

	require.NotNil(t, reported)
	assert.Equal(t, "❌ Cet élément existe déjà dans la base de données.", reported.Message)
	assert.Equal(t, "STORE_ALREADY_EXISTS", reported.Code)
	assert.Equal(t, http.StatusConflict, reported.Status)
	assert.Equal(t, fixedNow, reported.ReportedAt)

	require.NotNil(t, logged)
	assert.Equal(t, reported.Message, logged.Message)
	assert.Equal(t, fixedNow, logged.Timestamp)
	assert.Equal(t, entity.ClientContext{
		Service:   "restomap",
		Env:       "develop",
		Instance:  "instance-a",
		RequestID: "req-42",
	}, logged.ClientContext)
	assert.Equal(t, "save", logged.Details["operation"])
	assert.Equal(t, "create: already-exists: dup", logged.Details["error"])

	submission, ok := logged.Details["submission"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Ouzbek", submission["type"])
}

func TestErrorReporter_Report_CancelledRequestStillLogs(t *testing.T) {
	reporter, logRepo := createTestErrorReporter(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	logRepo.EXPECT().
		AppendErrorLog(mock.Anything, mock.Anything).
		Run(func(logCtx context.Context, _ *entity.ErrorLog) {
			assert.NoError(t, logCtx.Err())
		}).
		Return(nil).
		Once()

	reporter.Report(ctx, domainerrors.ErrNameMissing, nil)

	assert.Equal(t, domainerrors.ErrNameMissing.Message(), reporter.Current().Message)
}

func TestErrorReporter_OverwritesAndClears(t *testing.T) {
	reporter, logRepo := createTestErrorReporter(t)
	ctx := context.Background()

	logRepo.EXPECT().AppendErrorLog(mock.Anything, mock.Anything).Return(errors.New("down")).Twice()

	assert.Nil(t, reporter.Current())
	assert.Nil(t, reporter.Report(ctx, nil, nil))

	reporter.Report(ctx, errors.New("first"), nil)
	reporter.Report(ctx, errors.New("second timeout"), nil)

	current := reporter.Current()
	require.NotNil(t, current)
	assert.Equal(t, "❌ La requête a pris trop de temps. Veuillez réessayer.", current.Message)
	assert.Equal(t, "second timeout", current.Raw)

	current.Message = "mutated"
	assert.NotEqual(t, "mutated", reporter.Current().Message)

	reporter.Clear()
	assert.Nil(t, reporter.Current())
}

func TestNormalizeDetails_Unserializable(t *testing.T) {
	details := normalizeDetails(map[string]any{"ch": make(chan int)}, errors.New("x"))

	assert.Contains(t, details, "unserializable")
	assert.Equal(t, "x", details["error"])
}
