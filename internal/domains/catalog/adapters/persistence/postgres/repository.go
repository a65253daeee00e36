package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
)

var _ ports.Repository = (*Repository)(nil)

// Repository reads articles from PostgreSQL using GORM.
type Repository struct {
	db *gorm.DB
}

// NewRepository wires a PostgreSQL-backed catalog. Caller manages DB lifecycle.
func NewRepository(db *gorm.DB) *Repository {
	repo := &Repository{db: db}
	if db != nil {
		_ = db.AutoMigrate(&articleRecord{})
	}
	return repo
}

// articleRecord maps articles to the relational table. created_at gives
// listings a stable insertion order.
type articleRecord struct {
	ID          uuid.UUID       `gorm:"primaryKey;column:id;type:uuid"`
	Name        string          `gorm:"column:name"`
	Description string          `gorm:"column:description"`
	UnitPrice   decimal.Decimal `gorm:"column:unit_price;type:numeric(12,2)"`
	CreatedAt   time.Time       `gorm:"column:created_at;index"`
}

func (articleRecord) TableName() string { return "article" }

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Article, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var record articleRecord
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ports.ErrNotFound
		}
		return nil, err
	}
	return record.toDomain(), nil
}

// FindByName matches names ending with the given text (LIKE '%<name>').
func (r *Repository) FindByName(ctx context.Context, name string, offset, limit int) ([]domain.Article, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []articleRecord
	err := r.db.WithContext(ctx).
		Where("name LIKE ?", "%"+name).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

func (r *Repository) ListAll(ctx context.Context, offset, limit int) ([]domain.Article, error) {
	if err := r.ensureDB(); err != nil {
		return nil, err
	}
	var records []articleRecord
	err := r.db.WithContext(ctx).
		Order("created_at").
		Offset(offset).
		Limit(limit).
		Find(&records).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(records), nil
}

// Seed inserts fixture articles. Used by the seed command only; the
// serving path never writes to the catalog.
func (r *Repository) Seed(ctx context.Context, articles []domain.Article) error {
	if err := r.ensureDB(); err != nil {
		return err
	}
	for _, article := range articles {
		record := articleRecord{
			ID:          article.ID,
			Name:        article.Name,
			Description: article.Description,
			UnitPrice:   article.UnitPrice,
		}
		result := r.db.WithContext(ctx).Create(&record)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected != 1 {
			return errors.New("article insert affected an unexpected row count")
		}
	}
	return nil
}

func (r *Repository) ensureDB() error {
	if r == nil || r.db == nil {
		return errors.New("postgres catalog repository not configured")
	}
	return nil
}

func toDomainList(records []articleRecord) []domain.Article {
	articles := make([]domain.Article, 0, len(records))
	for i := range records {
		articles = append(articles, *records[i].toDomain())
	}
	return articles
}

func (r articleRecord) toDomain() *domain.Article {
	return &domain.Article{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		UnitPrice:   r.UnitPrice,
	}
}
