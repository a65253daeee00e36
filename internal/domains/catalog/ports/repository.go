package ports

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
)

var ErrNotFound = errors.New("article not found")

// Repository is the read-only article lookup. Sequences are returned in a
// stable insertion order so pagination is deterministic.
type Repository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	// FindByName matches names ending with the given text, case-sensitive
	// (LIKE '%<name>').
	FindByName(ctx context.Context, name string, offset, limit int) ([]domain.Article, error)
	ListAll(ctx context.Context, offset, limit int) ([]domain.Article, error)
}
