package application

import (
	"context"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
)

// DefaultPageSize bounds catalog pages when the caller does not.
const DefaultPageSize = 64

// Service answers catalog lookups. No side effects; storage errors
// surface unchanged.
type Service struct {
	repo ports.Repository
}

func NewService(repo ports.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) ArticleByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) SearchArticles(ctx context.Context, query *string, offset, limit int) ([]domain.Article, error) {
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if query == nil {
		return s.repo.ListAll(ctx, offset, limit)
	}
	return s.repo.FindByName(ctx, *query, offset, limit)
}

var _ ports.Service = (*Service)(nil)
