package repositories

import (
	"context"
	"time"

	"customer-records/internal/models"
)

// CustomerRepositoryInterface defines the contract for customer repository operations
type CustomerRepositoryInterface interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetByID(ctx context.Context, id uint64) (*models.Customer, error)
	Exists(ctx context.Context, id uint64) (bool, error)
	Update(ctx context.Context, id uint64, details models.CustomerDetails) (*models.Customer, error)
	// Delete removes the customer together with its interactions and reports how many interactions went with it
	Delete(ctx context.Context, id uint64) (*models.Customer, int64, error)
	Search(ctx context.Context, filter models.CustomerFilter, offset, limit int) ([]models.Customer, int64, error)
}

// InteractionRepositoryInterface defines the contract for interaction repository operations
type InteractionRepositoryInterface interface {
	Create(ctx context.Context, interaction *models.Interaction) error
	GetByID(ctx context.Context, id uint64) (*models.Interaction, error)
	Update(ctx context.Context, id uint64, payload models.InteractionPayload, updatedAt time.Time) (*models.Interaction, error)
	Delete(ctx context.Context, id uint64) (*models.Interaction, error)
	ListByCustomerID(ctx context.Context, customerID uint64, offset, limit int) ([]models.Interaction, int64, error)
	CountByCustomerID(ctx context.Context, customerID uint64) (int64, error)
}
