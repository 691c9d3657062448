package repositories

import (
	"context"
	"errors"
	"fmt"
	"time"

	"customer-records/internal/models"

	"gorm.io/gorm"
)

var (
	ErrInteractionNotFound = errors.New("interaction not found")
)

// interactionRepository implements InteractionRepositoryInterface
type interactionRepository struct {
	db *gorm.DB
}

// NewInteractionRepository creates a new interaction repository
func NewInteractionRepository(db *gorm.DB) InteractionRepositoryInterface {
	return &interactionRepository{
		db: db,
	}
}

// Create inserts an interaction after checking that its customer exists.
// Returns ErrCustomerNotFound when the reference is dangling.
func (r *interactionRepository) Create(ctx context.Context, interaction *models.Interaction) error {
	if interaction == nil {
		return errors.New("interaction cannot be nil")
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		exists, err := customerExists(tx, interaction.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCustomerNotFound
		}

		interaction.ID = 0
		interaction.UpdatedAt = nil
		if err := tx.Create(interaction).Error; err != nil {
			return fmt.Errorf("failed to create interaction: %w", err)
		}
		return nil
	})
}

// GetByID retrieves an interaction by ID
func (r *interactionRepository) GetByID(ctx context.Context, id uint64) (*models.Interaction, error) {
	return findInteraction(r.db.WithContext(ctx), id)
}

// Update overwrites customer_id, interaction_type and content and stamps updated_at.
// Missing interactions yield ErrInteractionNotFound, a dangling customer reference ErrCustomerNotFound.
func (r *interactionRepository) Update(ctx context.Context, id uint64, payload models.InteractionPayload, updatedAt time.Time) (*models.Interaction, error) {
	var interaction *models.Interaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findInteraction(tx, id)
		if err != nil {
			return err
		}

		exists, err := customerExists(tx, payload.CustomerID)
		if err != nil {
			return err
		}
		if !exists {
			return ErrCustomerNotFound
		}

		found.Apply(payload, updatedAt)
		if err := tx.Model(found).
			Select("customer_id", "interaction_type", "content", "updated_at").
			Updates(found).Error; err != nil {
			return fmt.Errorf("failed to update interaction: %w", err)
		}

		interaction = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return interaction, nil
}

// Delete removes an interaction and returns what was removed
func (r *interactionRepository) Delete(ctx context.Context, id uint64) (*models.Interaction, error) {
	var interaction *models.Interaction

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findInteraction(tx, id)
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Interaction{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete interaction: %w", err)
		}

		interaction = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return interaction, nil
}

// ListByCustomerID retrieves a page of a customer's interactions ordered by id
func (r *interactionRepository) ListByCustomerID(ctx context.Context, customerID uint64, offset, limit int) ([]models.Interaction, int64, error) {
	var total int64
	interactions := make([]models.Interaction, 0)

	db := r.db.WithContext(ctx)

	if err := db.Model(&models.Interaction{}).Where("customer_id = ?", customerID).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count interactions: %w", err)
	}

	// gorm drops the LIMIT clause for negative values
	if total == 0 || limit <= 0 || int64(offset) >= total {
		return interactions, total, nil
	}

	if err := db.Where("customer_id = ?", customerID).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&interactions).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to get interactions by customer ID: %w", err)
	}

	return interactions, total, nil
}

func (r *interactionRepository) CountByCustomerID(ctx context.Context, customerID uint64) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&models.Interaction{}).
		Where("customer_id = ?", customerID).
		Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count interactions: %w", err)
	}
	return count, nil
}

func findInteraction(db *gorm.DB, id uint64) (*models.Interaction, error) {
	var interaction models.Interaction
	if err := db.First(&interaction, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInteractionNotFound
		}
		return nil, fmt.Errorf("failed to get interaction by ID: %w", err)
	}

	return &interaction, nil
}
