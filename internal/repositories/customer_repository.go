package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"customer-records/internal/models"

	"gorm.io/gorm"
)

var (
	ErrCustomerNotFound = errors.New("customer not found")
)

// likeEscaper escapes LIKE wildcards so filters match literally
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CustomerRepository handles database operations for customers
type CustomerRepository struct {
	db *gorm.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *gorm.DB) CustomerRepositoryInterface {
	return &CustomerRepository{
		db: db,
	}
}

// Create inserts a customer; the database assigns the id
func (r *CustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return errors.New("customer cannot be nil")
	}

	customer.ID = 0
	if err := r.db.WithContext(ctx).Create(customer).Error; err != nil {
		return fmt.Errorf("failed to create customer: %w", err)
	}

	return nil
}

// GetByID retrieves a customer by its ID
func (r *CustomerRepository) GetByID(ctx context.Context, id uint64) (*models.Customer, error) {
	return findCustomer(r.db.WithContext(ctx), id)
}

func (r *CustomerRepository) Exists(ctx context.Context, id uint64) (bool, error) {
	return customerExists(r.db.WithContext(ctx), id)
}

// Update replaces the mutable fields of a customer, keeping id and created_at
func (r *CustomerRepository) Update(ctx context.Context, id uint64, details models.CustomerDetails) (*models.Customer, error) {
	var customer *models.Customer

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findCustomer(tx, id)
		if err != nil {
			return err
		}

		found.Apply(details)
		if err := tx.Model(found).Select("name", "email", "phone").Updates(found).Error; err != nil {
			return fmt.Errorf("failed to update customer: %w", err)
		}

		customer = found
		return nil
	})
	if err != nil {
		return nil, err
	}

	return customer, nil
}

// Delete removes a customer and its interactions in one transaction
func (r *CustomerRepository) Delete(ctx context.Context, id uint64) (*models.Customer, int64, error) {
	var (
		customer *models.Customer
		removed  int64
	)

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := findCustomer(tx, id)
		if err != nil {
			return err
		}

		result := tx.Where("customer_id = ?", id).Delete(&models.Interaction{})
		if result.Error != nil {
			return fmt.Errorf("failed to delete customer interactions: %w", result.Error)
		}
		removed = result.RowsAffected

		if err := tx.Delete(&models.Customer{}, id).Error; err != nil {
			return fmt.Errorf("failed to delete customer: %w", err)
		}

		customer = found
		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	return customer, removed, nil
}

// Search returns one page of the customers matching every present filter, ordered by id,
// together with the total number of matches.
// Filters are case-insensitive substring matches.
func (r *CustomerRepository) Search(ctx context.Context, filter models.CustomerFilter, offset, limit int) ([]models.Customer, int64, error) {
	var total int64
	customers := make([]models.Customer, 0)

	db := r.db.WithContext(ctx)

	if err := applyCustomerFilter(db.Model(&models.Customer{}), filter).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count search results: %w", err)
	}

	if total == 0 || limit <= 0 || int64(offset) >= total {
		return customers, total, nil
	}

	if err := applyCustomerFilter(db.Model(&models.Customer{}), filter).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&customers).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to search customers: %w", err)
	}

	return customers, total, nil
}

func applyCustomerFilter(query *gorm.DB, filter models.CustomerFilter) *gorm.DB {
	columns := []struct {
		name  string
		value *string
	}{
		{"name", filter.Name},
		{"email", filter.Email},
		{"phone", filter.Phone},
	}

	for _, column := range columns {
		if column.value == nil {
			continue
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(*column.value)) + "%"
		query = query.Where(fmt.Sprintf(`LOWER(%s) LIKE ? ESCAPE '\'`, column.name), pattern)
	}

	return query
}

func findCustomer(db *gorm.DB, id uint64) (*models.Customer, error) {
	var customer models.Customer
	if err := db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCustomerNotFound
		}
		return nil, fmt.Errorf("failed to get customer by ID: %w", err)
	}

	return &customer, nil
}

func customerExists(db *gorm.DB, id uint64) (bool, error) {
	var count int64
	if err := db.Model(&models.Customer{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check customer existence: %w", err)
	}
	return count > 0, nil
}
