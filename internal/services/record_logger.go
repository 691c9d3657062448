package services

import (
	"context"
	"log/slog"
	"time"

	"customer-records/internal/models"
)

const (
	// RedactedValue is used to mask sensitive information in logs to avoid logging PII
	RedactedValue = "***REDACTED***"

	EntityCustomer    = "customer"
	EntityInteraction = "interaction"
)

type requestIDKey struct{}

// WithRequestID attaches the request id that every log line of the request carries
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, requestID)
}

// RecordLogger provides structured logging for record store operations
type RecordLogger struct {
	logger *slog.Logger
}

// NewRecordLogger creates a new record logger
func NewRecordLogger(logger *slog.Logger) RecordLoggerInterface {
	return &RecordLogger{
		logger: logger,
	}
}

func (rl *RecordLogger) LogRecordCreated(ctx context.Context, entity string, id uint64) {
	rl.logger.InfoContext(ctx, entity+" created",
		slog.String("event_type", entity+"_created"),
		slog.Uint64(entity+"_id", id),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecordLogger) LogRecordUpdated(ctx context.Context, entity string, id uint64) {
	rl.logger.InfoContext(ctx, entity+" updated",
		slog.String("event_type", entity+"_updated"),
		slog.Uint64(entity+"_id", id),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogRecordDeleted logs a hard delete; cascaded counts dependent rows removed with it
func (rl *RecordLogger) LogRecordDeleted(ctx context.Context, entity string, id uint64, cascaded int64) {
	rl.logger.InfoContext(ctx, entity+" deleted",
		slog.String("event_type", entity+"_deleted"),
		slog.Uint64(entity+"_id", id),
		slog.Int64("cascaded_records", cascaded),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func (rl *RecordLogger) LogRecordNotFound(ctx context.Context, operation string, entity string, id uint64) {
	rl.logger.InfoContext(ctx, entity+" not found",
		slog.String("event_type", "record_not_found"),
		slog.String("operation", operation),
		slog.String("entity", entity),
		slog.Uint64("id", id),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerSearchStarted logs the start of a customer search; filter values are PII and never logged
func (rl *RecordLogger) LogCustomerSearchStarted(ctx context.Context, filter models.CustomerFilter, offset, limit int) {
	rl.logger.InfoContext(ctx, "customer search started",
		slog.String("event_type", "customer_search_started"),
		slog.String("name_filter", redactFilter(filter.Name)),
		slog.String("email_filter", redactFilter(filter.Email)),
		slog.String("phone_filter", redactFilter(filter.Phone)),
		slog.Int("offset", offset),
		slog.Int("limit", limit),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerSearchCompleted logs the completion of a customer search
func (rl *RecordLogger) LogCustomerSearchCompleted(ctx context.Context, resultsCount int, totalItems int64, durationMs int64) {
	rl.logger.InfoContext(ctx, "customer search completed",
		slog.String("event_type", "customer_search_completed"),
		slog.Int("results_count", resultsCount),
		slog.Int64("total_items", totalItems),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogCustomerSearchFailed logs a failed customer search
func (rl *RecordLogger) LogCustomerSearchFailed(ctx context.Context, errorMsg string, durationMs int64) {
	rl.logger.WarnContext(ctx, "customer search failed",
		slog.String("event_type", "customer_search_failed"),
		slog.String("error", errorMsg),
		slog.Int64("duration_ms", durationMs),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

// LogValidationFailure logs validation failures
func (rl *RecordLogger) LogValidationFailure(ctx context.Context, operation string, errorMsg string) {
	rl.logger.WarnContext(ctx, "validation failure",
		slog.String("event_type", "validation_failure"),
		slog.String("operation", operation),
		slog.String("error", errorMsg),
		slog.Time("timestamp", time.Now()),
		slog.String("request_id", getRequestID(ctx)),
	)
}

func redactFilter(value *string) string {
	if value == nil {
		return ""
	}
	return RedactedValue
}

func getRequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	if requestID, ok := ctx.Value(requestIDKey{}).(string); ok {
		return requestID
	}
	return ""
}
