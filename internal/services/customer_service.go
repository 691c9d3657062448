package services

import (
	"context"
	"errors"
	"fmt"

	apperrors "customer-records/internal/errors"
	"customer-records/internal/models"
	"customer-records/internal/repositories"
	"customer-records/internal/validation"
)

// CustomerService implements the customer record store
type CustomerService struct {
	customerRepo repositories.CustomerRepositoryInterface
	validator    *validation.Validator
	logger       RecordLoggerInterface
	metrics      MetricsRecorderInterface
}

// NewCustomerService creates a new customer service
func NewCustomerService(customerRepo repositories.CustomerRepositoryInterface, logger RecordLoggerInterface, metrics MetricsRecorderInterface) CustomerServiceInterface {
	return &CustomerService{
		customerRepo: customerRepo,
		validator:    validation.GetValidator(),
		logger:       logger,
		metrics:      metrics,
	}
}

// AddCustomer validates the fields and stores a new customer. The store assigns id and created_at.
func (s *CustomerService) AddCustomer(ctx context.Context, name, email, phone string) (*models.Customer, error) {
	details := models.CustomerDetails{Name: name, Email: email, Phone: phone}
	if err := s.validate(ctx, "add_customer", details); err != nil {
		return nil, err
	}

	customer := &models.Customer{}
	customer.Apply(details)

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, fmt.Errorf("failed to add customer: %w", err)
	}

	s.logger.LogRecordCreated(ctx, EntityCustomer, customer.ID)
	s.metrics.IncrementCounter("record_created", entityTags(EntityCustomer))

	return customer, nil
}

func (s *CustomerService) GetCustomer(ctx context.Context, id uint64) (*models.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, s.notFound(ctx, "get_customer", id, apperrors.NotFound("a customer with id=%d not found", id))
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// UpdateCustomer replaces name, email and phone. A missing customer is reported before invalid input.
func (s *CustomerService) UpdateCustomer(ctx context.Context, id uint64, name, email, phone string) (*models.Customer, error) {
	notFound := apperrors.NotFound("couldn't update a customer with id=%d. Customer not found", id)

	exists, err := s.customerRepo.Exists(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if !exists {
		return nil, s.notFound(ctx, "update_customer", id, notFound)
	}

	details := models.CustomerDetails{Name: name, Email: email, Phone: phone}
	if err := s.validate(ctx, "update_customer", details); err != nil {
		return nil, err
	}

	customer, err := s.customerRepo.Update(ctx, id, details)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, s.notFound(ctx, "update_customer", id, notFound)
		}
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	s.logger.LogRecordUpdated(ctx, EntityCustomer, customer.ID)
	s.metrics.IncrementCounter("record_updated", entityTags(EntityCustomer))

	return customer, nil
}

// DeleteCustomer removes the customer and, in the same transaction, all of its interactions
func (s *CustomerService) DeleteCustomer(ctx context.Context, id uint64) (*models.Customer, error) {
	customer, cascaded, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, s.notFound(ctx, "delete_customer", id,
				apperrors.NotFound("couldn't delete a customer with id=%d. Customer not found", id))
		}
		return nil, fmt.Errorf("failed to delete customer: %w", err)
	}

	s.logger.LogRecordDeleted(ctx, EntityCustomer, customer.ID, cascaded)
	s.metrics.IncrementCounter("record_deleted", entityTags(EntityCustomer))
	if cascaded > 0 {
		s.metrics.AddToCounter("interactions_cascade_deleted", float64(cascaded), nil)
	}

	return customer, nil
}

func (s *CustomerService) validate(ctx context.Context, operation string, details models.CustomerDetails) error {
	if err := s.validator.Struct(details); err != nil {
		s.logger.LogValidationFailure(ctx, operation, err.Error())
		recordStoreError(s.metrics, EntityCustomer, err)
		return err
	}
	return nil
}

func (s *CustomerService) notFound(ctx context.Context, operation string, id uint64, err *apperrors.StoreError) error {
	s.logger.LogRecordNotFound(ctx, operation, EntityCustomer, id)
	recordStoreError(s.metrics, EntityCustomer, err)
	return err.Of(EntityCustomer)
}
