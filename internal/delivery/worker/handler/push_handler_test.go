package handler

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"restomap/config"
	"restomap/internal/domain/entity"
	"restomap/internal/domain/service"
	"restomap/internal/infra/pubsub"
	mockRepo "restomap/internal/mocks/repository"
	mockSvc "restomap/internal/mocks/service"
	"restomap/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

// pushHandlerFixtures holds all test dependencies for push handler tests.
type pushHandlerFixtures struct {
	handler *PushHandler
	repo    *mockRepo.MockRestaurantRepository
	logRepo *mockRepo.MockErrorLogRepository
}

func createTestPushHandler(t *testing.T, cfg *config.Config) pushHandlerFixtures {
	repo := mockRepo.NewMockRestaurantRepository(t)
	logRepo := mockRepo.NewMockErrorLogRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	reporter := impl.NewErrorReporter(logRepo, cfg, logger)
	restaurantUC := impl.NewRestaurantService(repo, reporter, publisher, cfg, logger)

	return pushHandlerFixtures{
		handler: NewPushHandler(PushHandlerParams{
			Config:       cfg,
			Logger:       logger,
			RestaurantUC: restaurantUC,
		}),
		repo:    repo,
		logRepo: logRepo,
	}
}

func newWorkerConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Env.Env = "develop"
	cfg.Env.ServiceName = "restomap"
	cfg.Env.InstanceID = "instance-a"

	return cfg
}

func pushBody(t *testing.T, origin string) string {
	t.Helper()

	msg, err := pubsub.NewPushMessage(&service.CatalogEvent{
		EventID:      "evt-1",
		RequestID:    "req-from-origin",
		Type:         service.EventRatingAdded,
		RestaurantID: "r1",
		Origin:       origin,
		OccurredAt:   time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	body, err := json.Marshal(msg)
	require.NoError(t, err)

	return string(body)
}

func servePush(h *PushHandler, body string, headers map[string]string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/push", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	_ = h.HandlePush(e.NewContext(req, rec))

	return rec
}

func TestHandlePush_ForeignEventRefreshes(t *testing.T) {
	fixtures := createTestPushHandler(t, newWorkerConfig())
	fixtures.repo.EXPECT().
		ListRestaurants(mock.Anything).
		Return([]*entity.Restaurant{{ID: "r1", Name: "Alpha"}}, nil).
		Once()

	rec := servePush(fixtures.handler, pushBody(t, "instance-b"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, fixtures.handler.restaurantUC.ListRestaurants(), 1)
}

func TestHandlePush_OwnEventIsAcknowledged(t *testing.T) {
	fixtures := createTestPushHandler(t, newWorkerConfig())

	rec := servePush(fixtures.handler, pushBody(t, "instance-a"), nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	fixtures.repo.AssertNotCalled(t, "ListRestaurants", mock.Anything)
}

func TestHandlePush_RefreshFailureIsRetried(t *testing.T) {
	fixtures := createTestPushHandler(t, newWorkerConfig())
	fixtures.repo.EXPECT().
		ListRestaurants(mock.Anything).
		Return(nil, errors.New("list: unavailable")).
		Once()
	fixtures.logRepo.EXPECT().
		AppendErrorLog(mock.Anything, mock.Anything).
		Return(nil).
		Once()

	rec := servePush(fixtures.handler, pushBody(t, "instance-b"), nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestHandlePush_MalformedMessages(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "invalid json", body: `{"message":`},
		{name: "invalid base64", body: `{"message":{"data":"***"}}`},
		{name: "invalid event", body: `{"message":{"data":"bm90IGpzb24="}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fixtures := createTestPushHandler(t, newWorkerConfig())
			rec := servePush(fixtures.handler, tt.body, nil)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}
}

func TestHandlePush_VerifiesTokenOutsideDevelop(t *testing.T) {
	cfg := newWorkerConfig()
	cfg.Env.Env = "production"
	cfg.PubSub = &config.PubSubConfig{Provider: "google"}

	fixtures := createTestPushHandler(t, cfg)
	require.True(t, fixtures.handler.verifyPushAuth)

	var gotAudience string
	fixtures.handler.validateToken = func(_ context.Context, token, audience string) (*idtoken.Payload, error) {
		gotAudience = audience
		if token != "good" {
			return nil, errors.New("bad signature")
		}

		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email_verified": true},
		}, nil
	}

	rec := servePush(fixtures.handler, pushBody(t, "instance-a"), nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(fixtures.handler, pushBody(t, "instance-a"), map[string]string{"Authorization": "Bearer bad"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = servePush(fixtures.handler, pushBody(t, "instance-a"), map[string]string{"Authorization": "Bearer good"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "http://example.com/push", gotAudience)
}

func TestExtractRequestID(t *testing.T) {
	fixtures := createTestPushHandler(t, newWorkerConfig())

	var msg pubsub.PushMessage
	msg.Message.Attributes = map[string]string{"request_id": "from-attr"}
	event := &service.CatalogEvent{RequestID: "from-event"}

	assert.Equal(t, "from-attr", fixtures.handler.extractRequestID(context.Background(), &msg, event))

	msg.Message.Attributes = nil
	assert.Equal(t, "from-event", fixtures.handler.extractRequestID(context.Background(), &msg, event))

	event.RequestID = ""
	assert.NotEmpty(t, fixtures.handler.extractRequestID(context.Background(), &msg, event))
}
