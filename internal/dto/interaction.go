package dto

import (
	"customer-records/internal/models"
)

// InteractionRequest is the body of create and update interaction requests
type InteractionRequest struct {
	CustomerID      uint64 `json:"customer_id"`
	InteractionType string `json:"interaction_type" validate:"max=100"`
	Content         string `json:"content" validate:"max=10000"`
}

func (r *InteractionRequest) Payload() models.InteractionPayload {
	return models.InteractionPayload{
		CustomerID:      r.CustomerID,
		InteractionType: r.InteractionType,
		Content:         r.Content,
	}
}
