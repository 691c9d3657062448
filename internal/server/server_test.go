package server

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"customer-records/internal/config"
	"customer-records/internal/database"
	"customer-records/internal/models"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/suite"
)

// ServerTestSuite drives the full HTTP stack against an in-memory database
type ServerTestSuite struct {
	suite.Suite
	db      *database.DB
	handler http.Handler
}

func (s *ServerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())

	cfg := config.Load()
	cfg.Security = config.SecurityConfig{RateLimitPerSecond: 1000, RateLimitBurst: 1000}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.handler = New(cfg, s.db, logger, prometheus.NewRegistry()).Handler()
}

func (s *ServerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	s.handler.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) errorCode(rec *httptest.ResponseRecorder) string {
	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error.Code
}

func (s *ServerTestSuite) createCustomer(name, email, phone string) models.Customer {
	payload, _ := json.Marshal(map[string]string{"name": name, "email": email, "phone": phone})
	rec := s.do(http.MethodPost, "/api/v1/customers", string(payload))
	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())

	var customer models.Customer
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &customer))
	return customer
}

func (s *ServerTestSuite) TestCustomerSearchEndToEnd() {
	ann := s.createCustomer("Ann", "a@x.com", "1")
	s.createCustomer("Bob", "b@y.com", "2")

	rec := s.do(http.MethodGet, "/api/v1/customers/search?name=AN", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var result models.CustomerSearchResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.Equal(int64(1), result.TotalItems)
	s.Require().Len(result.Items, 1)
	s.Equal(ann.ID, result.Items[0].ID)
	s.Equal(10, result.Limit)
}

func (s *ServerTestSuite) TestCustomerSearchZeroLimitReturnsOnlyTotal() {
	s.createCustomer("Ann", "a@x.com", "1")
	s.createCustomer("Bob", "b@y.com", "2")

	rec := s.do(http.MethodGet, "/api/v1/customers/search?limit=0", "")
	s.Require().Equal(http.StatusOK, rec.Code)

	var result models.CustomerSearchResult
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &result))
	s.Equal(int64(2), result.TotalItems)
	s.Empty(result.Items)
	s.Equal(0, result.Limit)
}

func (s *ServerTestSuite) TestPhoneWiderThanColumnIsRejected() {
	body := fmt.Sprintf(`{"name":"Ann","email":"a@x.com","phone":"%s"}`, strings.Repeat("5", 51))
	rec := s.do(http.MethodPost, "/api/v1/customers", body)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
}

func (s *ServerTestSuite) TestInvalidCustomer() {
	rec := s.do(http.MethodPost, "/api/v1/customers", `{"name":"Ann","email":"a@x.com","phone":""}`)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Equal("VALIDATION_001", s.errorCode(rec))
	s.Contains(rec.Body.String(), "phone: is required")
}

func (s *ServerTestSuite) TestInteractionForUnknownCustomer() {
	rec := s.do(http.MethodPost, "/api/v1/interactions", `{"customer_id":999,"interaction_type":"call","content":"hello"}`)

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("CUSTOMER_001", s.errorCode(rec))
}

func (s *ServerTestSuite) TestDeleteCustomerCascades() {
	customer := s.createCustomer("Ann", "a@x.com", "1")

	body, _ := json.Marshal(map[string]any{"customer_id": customer.ID, "interaction_type": "call", "content": "hi"})
	rec := s.do(http.MethodPost, "/api/v1/interactions", string(body))
	s.Require().Equal(http.StatusCreated, rec.Code)

	var interaction models.Interaction
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &interaction))

	rec = s.do(http.MethodDelete, "/api/v1/customers/"+strconv.FormatUint(customer.ID, 10), "")
	s.Equal(http.StatusOK, rec.Code)

	rec = s.do(http.MethodGet, "/api/v1/interactions/"+strconv.FormatUint(interaction.ID, 10), "")
	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("INTERACTION_001", s.errorCode(rec))
}

func (s *ServerTestSuite) TestUnknownRoute() {
	rec := s.do(http.MethodGet, "/api/v1/orders", "")

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("SYSTEM_007", s.errorCode(rec))
	s.NotEmpty(rec.Header().Get("X-Trace-ID"))
}

func (s *ServerTestSuite) TestHealthAndMetrics() {
	s.Equal(http.StatusOK, s.do(http.MethodGet, "/health", "").Code)

	s.createCustomer("Ann", "a@x.com", "1")

	rec := s.do(http.MethodGet, "/metrics", "")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `records_created_total{entity="customer"} 1`)
}
