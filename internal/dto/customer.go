package dto

import (
	"customer-records/internal/models"
)

// CustomerRequest is the body of create and update customer requests
type CustomerRequest struct {
	Name  string `json:"name" validate:"max=255"`
	Email string `json:"email" validate:"max=255"`
	Phone string `json:"phone" validate:"max=50"`
}

// SearchCustomersRequest represents the query of a customer search.
// A nil filter is absent; an empty one is present and matches every customer.
type SearchCustomersRequest struct {
	Name  *string
	Email *string
	Phone *string
	PageRequest
}

// Filter converts the request into a repository filter
func (r *SearchCustomersRequest) Filter() models.CustomerFilter {
	return models.CustomerFilter{
		Name:  r.Name,
		Email: r.Email,
		Phone: r.Phone,
	}
}

// PageRequest is a pagination window. Out of range values are clamped by the services.
type PageRequest struct {
	Offset int
	Limit  int
}
