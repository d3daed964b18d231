package impl

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"restomap/config"
	deliverycontext "restomap/internal/delivery/context"
	"restomap/internal/domain/entity"
	domainerrors "restomap/internal/domain/errors"
	"restomap/internal/domain/lifecycle"
	"restomap/internal/domain/repository"
	"restomap/internal/usecase"
)

type errorReporter struct {
	logRepo repository.ErrorLogRepository
	logger  *slog.Logger
	client  entity.ClientContext
	now     func() time.Time

	mu      sync.RWMutex
	current *entity.ReportedError
}

// NewErrorReporter creates the error channel shared by the catalog operations
func NewErrorReporter(logRepo repository.ErrorLogRepository, cfg *config.Config, logger *slog.Logger) usecase.ErrorReporter {
	return &errorReporter{
		logRepo: logRepo,
		logger:  logger,
		client: entity.ClientContext{
			Service:  cfg.Env.ServiceName,
			Env:      cfg.Env.Env,
			Instance: cfg.Env.InstanceID,
		},
		now: time.Now,
	}
}

// Report sets the current error and appends a log record
func (r *errorReporter) Report(ctx context.Context, err error, details map[string]any) *entity.ReportedError {
	if err == nil {
		return nil
	}

	now := r.now()
	reported := &entity.ReportedError{
		Code:       domainerrors.ErrorCode(err),
		Status:     domainerrors.HTTPCode(err),
		Message:    domainerrors.UserMessage(err),
		Raw:        err.Error(),
		ReportedAt: now,
	}

	r.mu.Lock()
	r.current = reported
	r.mu.Unlock()

	logger := deliverycontext.GetLoggerOrDefault(ctx, r.logger)
	logger.Warn("Catalog operation failed",
		slog.String("code", reported.Code),
		slog.String("message", reported.Message),
		slog.Any("error", err),
	)

	client := r.client
	client.RequestID = deliverycontext.GetRequestIDFromContext(ctx)

	record := &entity.ErrorLog{
		Message:       reported.Message,
		Details:       normalizeDetails(details, err),
		Timestamp:     now,
		ClientContext: client,
	}

	// The log write outlives a cancelled request but not the process
	logCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), lifecycle.ErrorLogTimeout)
	defer cancel()

	if appendErr := r.logRepo.AppendErrorLog(logCtx, record); appendErr != nil {
		logger.Error("Failed to persist error log",
			slog.String("code", reported.Code),
			slog.Any("error", appendErr),
		)
	}

	return copyReported(reported)
}

// Current returns the unacknowledged error, or nil
func (r *errorReporter) Current() *entity.ReportedError {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return copyReported(r.current)
}

// Clear acknowledges the current error
func (r *errorReporter) Clear() {
	r.mu.Lock()
	r.current = nil
	r.mu.Unlock()
}

func copyReported(reported *entity.ReportedError) *entity.ReportedError {
	if reported == nil {
		return nil
	}
	cp := *reported

	return &cp
}

// normalizeDetails turns arbitrary detail values into plain JSON types the document stores accept.
// The raw error text is always kept under "error".
func normalizeDetails(details map[string]any, err error) map[string]any {
	normalized := make(map[string]any, len(details)+1)

	if len(details) > 0 {
		data, marshalErr := json.Marshal(details)
		if marshalErr == nil {
			marshalErr = json.Unmarshal(data, &normalized)
		}
		if marshalErr != nil {
			normalized = map[string]any{
				"unserializable": fmt.Sprintf("%v", details),
			}
		}
	}

	normalized["error"] = err.Error()

	return normalized
}
