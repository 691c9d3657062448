package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-records/internal/config"
	apperrors "customer-records/internal/errors"
	"customer-records/internal/models"
	"customer-records/internal/repositories"
	"customer-records/internal/validation"
)

// InteractionService implements the interaction record store
type InteractionService struct {
	interactionRepo repositories.InteractionRepositoryInterface
	customerRepo    repositories.CustomerRepositoryInterface
	validator       *validation.Validator
	logger          RecordLoggerInterface
	metrics         MetricsRecorderInterface
	window          config.SearchConfig
	now             func() time.Time
}

// NewInteractionService creates a new interaction service
func NewInteractionService(
	interactionRepo repositories.InteractionRepositoryInterface,
	customerRepo repositories.CustomerRepositoryInterface,
	logger RecordLoggerInterface,
	metrics MetricsRecorderInterface,
	window config.SearchConfig,
) InteractionServiceInterface {
	return &InteractionService{
		interactionRepo: interactionRepo,
		customerRepo:    customerRepo,
		validator:       validation.GetValidator(),
		logger:          logger,
		metrics:         metrics,
		window:          window,
		now: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// AddInteraction stores a new interaction for an existing customer.
// Empty fields yield InvalidInput, an unknown customer NotFound.
func (s *InteractionService) AddInteraction(ctx context.Context, payload models.InteractionPayload) (*models.Interaction, error) {
	if err := s.validate(ctx, "add_interaction", payload); err != nil {
		return nil, err
	}

	interaction := models.NewInteraction(payload)
	if err := s.interactionRepo.Create(ctx, interaction); err != nil {
		if errors.Is(err, repositories.ErrCustomerNotFound) {
			return nil, s.notFound(ctx, "add_interaction", EntityCustomer, payload.CustomerID,
				apperrors.NotFound("couldn't add an interaction. A customer with id=%d not found", payload.CustomerID))
		}
		return nil, fmt.Errorf("failed to add interaction: %w", err)
	}

	s.logger.LogRecordCreated(ctx, EntityInteraction, interaction.ID)
	s.metrics.IncrementCounter("record_created", entityTags(EntityInteraction))

	return interaction, nil
}

func (s *InteractionService) GetInteraction(ctx context.Context, id uint64) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInteractionNotFound) {
			return nil, s.notFound(ctx, "get_interaction", EntityInteraction, id,
				apperrors.NotFound("an interaction with id=%d not found", id))
		}
		return nil, fmt.Errorf("failed to get interaction: %w", err)
	}

	return interaction, nil
}

// UpdateInteraction overwrites the payload fields and sets updated_at.
// Checks run in order: interaction exists, payload is valid, referenced customer exists.
func (s *InteractionService) UpdateInteraction(ctx context.Context, id uint64, payload models.InteractionPayload) (*models.Interaction, error) {
	notFound := apperrors.NotFound("couldn't update an interaction with id=%d. Interaction not found", id)

	if _, err := s.interactionRepo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repositories.ErrInteractionNotFound) {
			return nil, s.notFound(ctx, "update_interaction", EntityInteraction, id, notFound)
		}
		return nil, fmt.Errorf("failed to find interaction: %w", err)
	}

	if err := s.validate(ctx, "update_interaction", payload); err != nil {
		return nil, err
	}

	interaction, err := s.interactionRepo.Update(ctx, id, payload, s.now())
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrInteractionNotFound):
			return nil, s.notFound(ctx, "update_interaction", EntityInteraction, id, notFound)
		case errors.Is(err, repositories.ErrCustomerNotFound):
			return nil, s.notFound(ctx, "update_interaction", EntityCustomer, payload.CustomerID,
				apperrors.NotFound("couldn't update an interaction with id=%d. A customer with id=%d not found", id, payload.CustomerID))
		}
		return nil, fmt.Errorf("failed to update interaction: %w", err)
	}

	s.logger.LogRecordUpdated(ctx, EntityInteraction, interaction.ID)
	s.metrics.IncrementCounter("record_updated", entityTags(EntityInteraction))

	return interaction, nil
}

func (s *InteractionService) DeleteInteraction(ctx context.Context, id uint64) (*models.Interaction, error) {
	interaction, err := s.interactionRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrInteractionNotFound) {
			return nil, s.notFound(ctx, "delete_interaction", EntityInteraction, id,
				apperrors.NotFound("couldn't delete an interaction with id=%d. Interaction not found", id))
		}
		return nil, fmt.Errorf("failed to delete interaction: %w", err)
	}

	s.logger.LogRecordDeleted(ctx, EntityInteraction, interaction.ID, 0)
	s.metrics.IncrementCounter("record_deleted", entityTags(EntityInteraction))

	return interaction, nil
}

// ListCustomerInteractions pages through one customer's interactions in id order
func (s *InteractionService) ListCustomerInteractions(ctx context.Context, customerID uint64, offset, limit int) (*models.InteractionList, error) {
	exists, err := s.customerRepo.Exists(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer: %w", err)
	}
	if !exists {
		return nil, s.notFound(ctx, "list_interactions", EntityCustomer, customerID,
			apperrors.NotFound("a customer with id=%d not found", customerID))
	}

	offset, limit = NormalizeWindow(offset, limit, s.window)

	interactions, total, err := s.interactionRepo.ListByCustomerID(ctx, customerID, offset, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list interactions: %w", err)
	}

	return &models.InteractionList{
		TotalItems: total,
		Items:      interactions,
		Offset:     offset,
		Limit:      limit,
	}, nil
}

func (s *InteractionService) validate(ctx context.Context, operation string, payload models.InteractionPayload) error {
	if err := s.validator.Struct(payload); err != nil {
		s.logger.LogValidationFailure(ctx, operation, err.Error())
		recordStoreError(s.metrics, EntityInteraction, err)
		return err
	}
	return nil
}

func (s *InteractionService) notFound(ctx context.Context, operation, entity string, id uint64, err *apperrors.StoreError) error {
	s.logger.LogRecordNotFound(ctx, operation, entity, id)
	recordStoreError(s.metrics, entity, err)
	return err.Of(entity)
}
