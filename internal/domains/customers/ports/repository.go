package ports

import (
	"context"
	"errors"

	"github.com/Apurer/go-gin-order-server/internal/domains/customers/domain"
)

var (
	// ErrNotFound signals the customer does not exist.
	ErrNotFound = errors.New("customer not found")
	// ErrDuplicateInsert signals the insert affected an unexpected row
	// count. Uniqueness pre-checks are the caller's job; hitting this is a
	// storage inconsistency, not a normal business condition.
	ErrDuplicateInsert = errors.New("customer insert affected an unexpected row count")
	// ErrInvalidCredentials signals a failed sign-in.
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Repository persists customer identities.
type Repository interface {
	Create(ctx context.Context, customer *domain.Customer) (*domain.Customer, error)
	FindByEmail(ctx context.Context, email string) (*domain.Customer, error)
	FindByCredentials(ctx context.Context, email, passwordHash string) (*domain.Customer, error)
}
