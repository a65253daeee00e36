package ports

import (
	"context"

	"github.com/Apurer/go-gin-order-server/internal/domains/customers/domain"
)

// Service exposes account use cases to adapters.
type Service interface {
	SignUp(ctx context.Context, email, password string) (*domain.Customer, error)
	SignIn(ctx context.Context, email, password string) (*domain.Customer, error)
}
