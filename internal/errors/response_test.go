package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/suite"
)

// ResponseTestSuite defines the test suite for error responses
type ResponseTestSuite struct {
	suite.Suite
	traceID string
}

// SetupTest runs before each test
func (s *ResponseTestSuite) SetupTest() {
	s.traceID = "550e8400-e29b-41d4-a716-446655440000"
}

// TestResponseTestSuite runs the test suite
func TestResponseTestSuite(t *testing.T) {
	suite.Run(t, new(ResponseTestSuite))
}

func (s *ResponseTestSuite) TestNewErrorResponse_BasicUsage() {
	response := NewErrorResponse(CustomerNotFound, s.traceID)

	s.NotNil(response)
	s.Equal("CUSTOMER_001", response.Error.Code)
	s.Equal("Customer not found", response.Error.Message)
	s.Equal(s.traceID, response.Error.TraceID)
	s.Empty(response.Error.Details)
}

func (s *ResponseTestSuite) TestNewErrorResponse_WithMultipleOptions() {
	response := NewErrorResponse(
		InteractionNotFound,
		s.traceID,
		WithMessage("Custom message"),
		WithDetails("Detail 1", "Detail 2"),
	)

	s.Equal("INTERACTION_001", response.Error.Code)
	s.Equal("Custom message", response.Error.Message)
	s.Equal([]string{"Detail 1", "Detail 2"}, response.Error.Details)
}

// TestNewValidationError_WithFieldErrors tests creating validation error from field map
func (s *ResponseTestSuite) TestNewValidationError_WithFieldErrors() {
	fieldErrors := map[string]string{
		"phone": "must contain at least one digit",
		"email": "must contain '@'",
		"name":  "is required",
	}

	response := NewValidationError(fieldErrors, s.traceID)

	s.Equal("VALIDATION_001", response.Error.Code)
	s.Equal("Validation failed", response.Error.Message)
	s.Equal([]string{
		"email: must contain '@'",
		"name: is required",
		"phone: must contain at least one digit",
	}, response.Error.Details)
}

func (s *ResponseTestSuite) TestNewStoreErrorResponse() {
	testCases := []struct {
		name     string
		err      *StoreError
		notFound ErrorCode
		code     string
		status   int
	}{
		{"customer not found", NotFound("a customer with id=7 not found"), CustomerNotFound, "CUSTOMER_001", http.StatusNotFound},
		{"interaction not found", NotFound("an interaction with id=3 not found"), InteractionNotFound, "INTERACTION_001", http.StatusNotFound},
		{"invalid input", InvalidInput("email: must contain '@'"), CustomerNotFound, "VALIDATION_001", http.StatusBadRequest},
		{"entity overrides fallback", NotFound("a customer with id=999 not found").Of("customer"), InteractionNotFound, "CUSTOMER_001", http.StatusNotFound},
		{"unknown entity uses fallback", NotFound("gone").Of("order"), InteractionNotFound, "INTERACTION_001", http.StatusNotFound},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			response := NewStoreErrorResponse(tc.err, tc.notFound, s.traceID)
			s.Equal(tc.code, response.Error.Code)
			s.Equal(tc.err.Msg, response.Error.Message)
			s.Equal(tc.status, response.GetHTTPStatus())
		})
	}
}

// TestWrapSystemError_NoInternalDetailsExposed tests that internal details are not exposed
func (s *ResponseTestSuite) TestWrapSystemError_NoInternalDetailsExposed() {
	sensitiveErr := errors.New("SQL error: table 'customers' does not exist at /var/lib/postgresql/data")

	response, originalErr := WrapSystemError(sensitiveErr, s.traceID)

	s.Equal("SYSTEM_001", response.Error.Code)
	s.NotContains(response.Error.Message, "SQL")
	s.NotContains(response.Error.Message, "/var/lib")
	s.Empty(response.Error.Details)
	s.Equal(sensitiveErr, originalErr)
}

// TestToJSON_EmptyDetails tests JSON serialization omits empty details
func (s *ResponseTestSuite) TestToJSON_EmptyDetails() {
	response := NewErrorResponse(CustomerInvalidID, s.traceID)

	jsonBytes, err := response.ToJSON()
	s.NoError(err)

	var jsonMap map[string]interface{}
	s.NoError(json.Unmarshal(jsonBytes, &jsonMap))

	errorMap := jsonMap["error"].(map[string]interface{})
	_, hasDetails := errorMap["details"]
	s.False(hasDetails, "Empty details should be omitted from JSON")
	s.Equal(s.traceID, errorMap["trace_id"])
}

func (s *ResponseTestSuite) TestGetHTTPStatus_AllErrorCodes() {
	testCases := []struct {
		code           ErrorCode
		expectedStatus int
	}{
		{ValidationGeneral, http.StatusBadRequest},
		{ValidationRequiredField, http.StatusBadRequest},
		{ValidationInvalidEmail, http.StatusBadRequest},
		{CustomerInvalidID, http.StatusBadRequest},
		{InteractionInvalidID, http.StatusBadRequest},
		{CustomerNotFound, http.StatusNotFound},
		{InteractionNotFound, http.StatusNotFound},
		{SystemRouteNotFound, http.StatusNotFound},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemInternalError, http.StatusInternalServerError},
		{SystemDatabaseError, http.StatusInternalServerError},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{"UNKNOWN_999", http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		s.Run(string(tc.code), func() {
			s.Equal(tc.expectedStatus, GetHTTPStatus(tc.code))
		})
	}
}

func (s *ResponseTestSuite) TestClientAndServerErrors() {
	s.True(NewErrorResponse(CustomerNotFound, s.traceID).IsClientError())
	s.False(NewErrorResponse(CustomerNotFound, s.traceID).IsServerError())
	s.True(NewErrorResponse(SystemDatabaseError, s.traceID).IsServerError())
	s.False(NewErrorResponse(SystemDatabaseError, s.traceID).IsClientError())
}

// TestString_FormatsCorrectly tests string representation of error response
func (s *ResponseTestSuite) TestString_FormatsCorrectly() {
	str := NewErrorResponse(InteractionNotFound, s.traceID).String()

	s.Contains(str, "INTERACTION_001")
	s.Contains(str, "Interaction not found")
	s.Contains(str, s.traceID)
}
