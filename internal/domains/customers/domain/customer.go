package domain

import (
	"time"

	"github.com/google/uuid"
)

// Customer is a storefront account. Created once at sign-up and immutable
// afterwards.
type Customer struct {
	ID           uuid.UUID
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// NewCustomer constructs a customer with a fresh identity.
func NewCustomer(email, passwordHash string) *Customer {
	return &Customer{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
}
