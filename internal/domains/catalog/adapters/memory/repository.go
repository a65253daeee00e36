package memory

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository is an in-memory article store keeping insertion order, for
// tests and DSN-less development boots.
type Repository struct {
	mu       sync.RWMutex
	articles []domain.Article
}

func NewRepository() *Repository {
	return &Repository{}
}

// Add inserts or replaces an article. Replacement keeps the original
// position so listings stay stable.
func (r *Repository) Add(article domain.Article) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == article.ID {
			r.articles[i] = article
			return
		}
	}
	r.articles = append(r.articles, article)
}

// Remove deletes an article, simulating catalog removal.
func (r *Repository) Remove(id uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			r.articles = append(r.articles[:i], r.articles[i+1:]...)
			return
		}
	}
}

func (r *Repository) FindByID(_ context.Context, id uuid.UUID) (*domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.articles {
		if r.articles[i].ID == id {
			clone := r.articles[i]
			return &clone, nil
		}
	}
	return nil, ports.ErrNotFound
}

func (r *Repository) FindByName(_ context.Context, name string, offset, limit int) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := make([]domain.Article, 0)
	for _, article := range r.articles {
		if strings.HasSuffix(article.Name, name) {
			matched = append(matched, article)
		}
	}
	return page(matched, offset, limit), nil
}

func (r *Repository) ListAll(_ context.Context, offset, limit int) ([]domain.Article, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return page(r.articles, offset, limit), nil
}

func page(articles []domain.Article, offset, limit int) []domain.Article {
	if offset >= len(articles) {
		return []domain.Article{}
	}
	end := offset + limit
	if limit <= 0 || end > len(articles) {
		end = len(articles)
	}
	result := make([]domain.Article, end-offset)
	copy(result, articles[offset:end])
	return result
}
