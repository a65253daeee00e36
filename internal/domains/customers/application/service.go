package application

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/Apurer/go-gin-order-server/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"
)

// Service exposes the account use cases. Passwords are hashed sha256-hex
// before they reach the repository; credential lookups compare hashes.
type Service struct {
	repo     ports.Repository
	validate *validator.Validate
}

func NewService(repo ports.Repository) *Service {
	return &Service{
		repo:     repo,
		validate: validator.New(),
	}
}

// SignUp registers a new customer. The email is syntax-checked and
// pre-checked for duplicates before the insert.
func (s *Service) SignUp(ctx context.Context, email, password string) (*domain.Customer, error) {
	if err := s.validate.Var(email, "required,email"); err != nil {
		return nil, fmt.Errorf("%w: %q", ErrBadEmailSyntax, email)
	}
	_, err := s.repo.FindByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, email)
	case !errors.Is(err, ports.ErrNotFound):
		return nil, err
	}
	return s.repo.Create(ctx, domain.NewCustomer(email, hashPassword(password)))
}

// SignIn resolves a customer by credentials.
func (s *Service) SignIn(ctx context.Context, email, password string) (*domain.Customer, error) {
	customer, err := s.repo.FindByCredentials(ctx, email, hashPassword(password))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ports.ErrInvalidCredentials
		}
		return nil, err
	}
	return customer, nil
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

var _ ports.Service = (*Service)(nil)
