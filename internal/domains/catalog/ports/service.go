package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
)

// Service exposes catalog use cases to adapters.
type Service interface {
	ArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error)
	// SearchArticles lists the catalog page; a nil query lists everything,
	// otherwise names are matched suffix-anchored.
	SearchArticles(ctx context.Context, query *string, offset, limit int) ([]domain.Article, error)
}
