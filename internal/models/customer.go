package models

import (
	"time"

	"gorm.io/gorm"
)

// Column widths of the customers table; validation rejects longer values
const (
	MaxNameLength  = 255
	MaxEmailLength = 255
	MaxPhoneLength = 50
)

// Customer is a person the business keeps records about
type Customer struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"type:varchar(255);not null" json:"name"`
	Email     string    `gorm:"type:varchar(255);not null" json:"email"`
	Phone     string    `gorm:"type:varchar(50);not null" json:"phone"`
	CreatedAt time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}

// CustomerDetails holds the caller-supplied fields of a Customer
type CustomerDetails struct {
	Name  string `json:"name" validate:"notblank,max=255"`
	Email string `json:"email" validate:"notblank,contains=@,max=255"`
	Phone string `json:"phone" validate:"notblank,has_digit,max=50"`
}

func (c *Customer) BeforeCreate(tx *gorm.DB) error {
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now().UTC()
	}
	return nil
}

// Details returns the mutable fields of the customer
func (c *Customer) Details() CustomerDetails {
	return CustomerDetails{Name: c.Name, Email: c.Email, Phone: c.Phone}
}

// Apply overwrites the mutable fields, leaving id and created_at untouched
func (c *Customer) Apply(details CustomerDetails) {
	c.Name = details.Name
	c.Email = details.Email
	c.Phone = details.Phone
}

func (c *Customer) TableName() string {
	return "customers"
}
