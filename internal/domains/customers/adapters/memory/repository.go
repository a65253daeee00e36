// Package memory provides an in-memory customers repository for tests and
// local development.
package memory

import (
	"context"
	"sync"

	"github.com/Apurer/go-gin-order-server/internal/domains/customers/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/customers/ports"
)

// Repository keeps customers keyed by email.
type Repository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

func NewRepository() *Repository {
	return &Repository{customers: make(map[string]*domain.Customer)}
}

func (r *Repository) Create(_ context.Context, customer *domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.customers[customer.Email]; ok {
		return nil, ports.ErrDuplicateInsert
	}
	clone := *customer
	r.customers[customer.Email] = &clone
	out := clone
	return &out, nil
}

func (r *Repository) FindByEmail(_ context.Context, email string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[email]
	if !ok {
		return nil, ports.ErrNotFound
	}
	clone := *customer
	return &clone, nil
}

func (r *Repository) FindByCredentials(_ context.Context, email, passwordHash string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	customer, ok := r.customers[email]
	if !ok || customer.PasswordHash != passwordHash {
		return nil, ports.ErrNotFound
	}
	clone := *customer
	return &clone, nil
}

var _ ports.Repository = (*Repository)(nil)
