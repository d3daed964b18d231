package usecase

import (
	"context"

	"restomap/internal/domain/entity"
)

// ErrorReporter turns failures into user-facing messages and durable log records
type ErrorReporter interface {
	// Report sets the current error (overwriting any previous one) and appends a log record.
	// Log persistence failures are swallowed.
	Report(ctx context.Context, err error, details map[string]any) *entity.ReportedError

	// Current returns the unacknowledged error, or nil
	Current() *entity.ReportedError

	// Clear acknowledges the current error
	Clear()
}
