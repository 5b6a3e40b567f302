// Package observability provides correlation IDs and structured logging helpers.
package observability

import (
	"context"
	"log/slog"

	"inkwell/internal/middleware"

	"github.com/google/uuid"
)

// GenerateCorrelationID creates a new unique correlation ID.
func GenerateCorrelationID() string {
	return uuid.NewString()
}

// WithCorrelationID returns a new context carrying the given correlation ID.
func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, middleware.RequestIDKey, id)
}

// LogOperation logs a named operation with structured fields. Intended for
// entrypoints and batch tools; the core read/write layers never log.
func LogOperation(ctx context.Context, operation string, fields map[string]interface{}) {
	attrs := []any{
		slog.String("operation", operation),
	}
	for k, v := range fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	middleware.Logger.InfoContext(ctx, "operation", attrs...)
}

// LogOperationError logs a failed operation with its error.
func LogOperationError(ctx context.Context, operation string, err error) {
	middleware.Logger.ErrorContext(ctx, "operation failed",
		slog.String("operation", operation),
		slog.String("error", err.Error()),
	)
}
