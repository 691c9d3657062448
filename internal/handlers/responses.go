package handlers

import (
	"log/slog"
	"net/http"

	"customer-records/internal/errors"

	"github.com/labstack/echo/v4"
)

// Error responses go through one of three helpers:
//
// 1. SendStoreError - for every error returned by a record store service.
//    InvalidInput becomes 400 and NotFound 404, the store message is the response message.
//    Anything else is treated as a system error.
//
// 2. SendError - for errors detected by the handler itself (bad ids, malformed bodies).
//
// 3. SendSystemError - for internal errors (500). The cause is logged, never returned.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, cause := errors.WrapSystemError(err, traceID)

	slog.ErrorContext(c.Request().Context(), "internal error",
		"trace_id", traceID,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", cause,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendStoreError renders err as a store error, using notFound when the
// error does not name its collection
func SendStoreError(c echo.Context, err error, notFound errors.ErrorCode) error {
	storeErr, ok := errors.AsStoreError(err)
	if !ok {
		return SendSystemError(c, err)
	}

	errorResponse := errors.NewStoreErrorResponse(storeErr, notFound, getTraceID(c))
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}
