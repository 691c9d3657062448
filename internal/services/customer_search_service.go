package services

import (
	"context"
	"fmt"
	"time"

	"customer-records/internal/config"
	"customer-records/internal/models"
	"customer-records/internal/repositories"
)

const (
	DefaultSearchLimit = 10
	MaxSearchLimit     = 1000
)

// CustomerSearchService handles customer search operations
type CustomerSearchService struct {
	customerRepo repositories.CustomerRepositoryInterface
	logger       RecordLoggerInterface
	metrics      MetricsRecorderInterface
	window       config.SearchConfig
}

// NewCustomerSearchService creates a new customer search service
func NewCustomerSearchService(
	customerRepo repositories.CustomerRepositoryInterface,
	logger RecordLoggerInterface,
	metrics MetricsRecorderInterface,
	window config.SearchConfig,
) CustomerSearchServiceInterface {
	return &CustomerSearchService{
		customerRepo: customerRepo,
		logger:       logger,
		metrics:      metrics,
		window:       window,
	}
}

// NormalizeWindow clamps a pagination window to [0, max]. A zero limit is an empty
// page; a negative limit or offset becomes zero. A zero MaxLimit falls back to
// MaxSearchLimit. Callers that were not given a limit pass window.DefaultLimit.
func NormalizeWindow(offset, limit int, window config.SearchConfig) (int, int) {
	maxLimit := window.MaxLimit
	if maxLimit <= 0 {
		maxLimit = MaxSearchLimit
	}

	if limit < 0 {
		limit = 0
	}
	if limit > maxLimit {
		limit = maxLimit
	}

	if offset < 0 {
		offset = 0
	}

	return offset, limit
}

// SearchCustomers returns the page of customers matching every present filter.
// Filters are case-insensitive substring matches; results are ordered by id and
// total_items counts all matches regardless of the window.
func (s *CustomerSearchService) SearchCustomers(ctx context.Context, filter models.CustomerFilter, offset, limit int) (*models.CustomerSearchResult, error) {
	start := time.Now()
	offset, limit = NormalizeWindow(offset, limit, s.window)

	s.logger.LogCustomerSearchStarted(ctx, filter, offset, limit)

	customers, total, err := s.customerRepo.Search(ctx, filter, offset, limit)
	duration := time.Since(start)
	s.metrics.RecordProcessingTime("customer_search", duration)

	if err != nil {
		s.logger.LogCustomerSearchFailed(ctx, err.Error(), duration.Milliseconds())
		s.metrics.IncrementCounter("customer_search_request", map[string]string{"status": "error"})
		return nil, fmt.Errorf("failed to search customers: %w", err)
	}

	s.logger.LogCustomerSearchCompleted(ctx, len(customers), total, duration.Milliseconds())
	s.metrics.IncrementCounter("customer_search_request", map[string]string{"status": "success"})
	s.metrics.RecordGauge("customer_search_page_size", float64(len(customers)), nil)

	return &models.CustomerSearchResult{
		TotalItems: total,
		Items:      customers,
		Offset:     offset,
		Limit:      limit,
	}, nil
}
