package services

import (
	"context"
	"time"

	"customer-records/internal/models"
)

// CustomerServiceInterface owns the customer collection
type CustomerServiceInterface interface {
	AddCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error)
	GetCustomer(ctx context.Context, id uint64) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uint64, name, email, phone string) (*models.Customer, error)
	// DeleteCustomer removes the customer and its interactions, returning the removed customer
	DeleteCustomer(ctx context.Context, id uint64) (*models.Customer, error)
}

// InteractionServiceInterface owns the interaction collection
type InteractionServiceInterface interface {
	AddInteraction(ctx context.Context, payload models.InteractionPayload) (*models.Interaction, error)
	GetInteraction(ctx context.Context, id uint64) (*models.Interaction, error)
	UpdateInteraction(ctx context.Context, id uint64, payload models.InteractionPayload) (*models.Interaction, error)
	DeleteInteraction(ctx context.Context, id uint64) (*models.Interaction, error)
	ListCustomerInteractions(ctx context.Context, customerID uint64, offset, limit int) (*models.InteractionList, error)
}

// CustomerSearchServiceInterface defines the contract for customer search operations
type CustomerSearchServiceInterface interface {
	SearchCustomers(ctx context.Context, filter models.CustomerFilter, offset, limit int) (*models.CustomerSearchResult, error)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	AddToCounter(name string, value float64, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

// RecordLoggerInterface emits structured events for record store operations
type RecordLoggerInterface interface {
	LogRecordCreated(ctx context.Context, entity string, id uint64)
	LogRecordUpdated(ctx context.Context, entity string, id uint64)
	LogRecordDeleted(ctx context.Context, entity string, id uint64, cascaded int64)
	LogRecordNotFound(ctx context.Context, operation string, entity string, id uint64)
	LogCustomerSearchStarted(ctx context.Context, filter models.CustomerFilter, offset, limit int)
	LogCustomerSearchCompleted(ctx context.Context, resultsCount int, totalItems int64, durationMs int64)
	LogCustomerSearchFailed(ctx context.Context, errorMsg string, durationMs int64)
	LogValidationFailure(ctx context.Context, operation string, errorMsg string)
}
