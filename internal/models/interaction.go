package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	MaxInteractionTypeLength = 100
	MaxContentLength         = 10000
)

// Interaction is a recorded contact with a customer (call, email, meeting, ...)
type Interaction struct {
	ID              uint64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID      uint64     `gorm:"not null;index" json:"customer_id"`
	InteractionType string     `gorm:"type:varchar(100);not null" json:"interaction_type"`
	Content         string     `gorm:"type:text;not null" json:"content"`
	CreatedAt       time.Time  `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"autoUpdateTime:false" json:"updated_at,omitempty"`
}

// InteractionPayload is the caller-supplied part of an Interaction
type InteractionPayload struct {
	CustomerID      uint64 `json:"customer_id" validate:"required"`
	InteractionType string `json:"interaction_type" validate:"notblank,max=100"`
	Content         string `json:"content" validate:"notblank,max=10000"`
}

func (i *Interaction) BeforeCreate(tx *gorm.DB) error {
	if i.CreatedAt.IsZero() {
		i.CreatedAt = time.Now().UTC()
	}
	return nil
}

// Apply overwrites the payload fields and stamps updated_at
func (i *Interaction) Apply(payload InteractionPayload, now time.Time) {
	i.CustomerID = payload.CustomerID
	i.InteractionType = payload.InteractionType
	i.Content = payload.Content
	i.UpdatedAt = &now
}

// NewInteraction builds an unsaved interaction from a payload
func NewInteraction(payload InteractionPayload) *Interaction {
	return &Interaction{
		CustomerID:      payload.CustomerID,
		InteractionType: payload.InteractionType,
		Content:         payload.Content,
	}
}

func (i *Interaction) TableName() string {
	return "interactions"
}
