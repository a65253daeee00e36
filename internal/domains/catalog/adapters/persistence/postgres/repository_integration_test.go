//go:build integration

package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	"github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"
	"github.com/Apurer/go-gin-order-server/internal/platform/migrations"
)

func setupCatalogPostgresContainer(t *testing.T) (*gorm.DB, func()) {
	ctx := context.Background()

	pgContainer, err := tcpostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:15-alpine"),
		tcpostgres.WithDatabase("storefront_test"),
		tcpostgres.WithUsername("test"),
		tcpostgres.WithPassword("test"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)

	dsn, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = migrations.Run(db)
	require.NoError(t, err)

	cleanup := func() {
		sqlDB, _ := db.DB()
		if sqlDB != nil {
			sqlDB.Close()
		}
		pgContainer.Terminate(ctx)
	}

	return db, cleanup
}

func seedArticles(t *testing.T, repo *Repository, names ...string) []domain.Article {
	t.Helper()
	articles := make([]domain.Article, 0, len(names))
	for _, name := range names {
		articles = append(articles, domain.Article{
			ID:          uuid.New(),
			Name:        name,
			Description: "about " + name,
			UnitPrice:   decimal.RequireFromString("10.00"),
		})
		// created_at is the listing sort key, keep inserts apart
		require.NoError(t, repo.Seed(context.Background(), articles[len(articles)-1:]))
		time.Sleep(10 * time.Millisecond)
	}
	return articles
}

func TestRepository_FindByID(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seeded := seedArticles(t, repo, "green tea")

	fetched, err := repo.FindByID(context.Background(), seeded[0].ID)
	require.NoError(t, err)
	assert.Equal(t, "green tea", fetched.Name)
	assert.True(t, fetched.UnitPrice.Equal(decimal.RequireFromString("10.00")))

	_, err = repo.FindByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, ports.ErrNotFound)
}

func TestRepository_FindByNameMatchesSuffix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seedArticles(t, repo, "green tea", "black tea", "teapot")

	matched, err := repo.FindByName(context.Background(), "tea", 0, 10)
	require.NoError(t, err)
	require.Len(t, matched, 2, "LIKE pattern anchors the suffix only")
	assert.Equal(t, "green tea", matched[0].Name)
	assert.Equal(t, "black tea", matched[1].Name)
}

func TestRepository_ListAllPagination(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	db, cleanup := setupCatalogPostgresContainer(t)
	defer cleanup()

	repo := NewRepository(db)
	seeded := seedArticles(t, repo, "a", "b", "c", "d", "e")

	var listed []domain.Article
	for offset := 0; offset < 5; offset += 2 {
		page, err := repo.ListAll(context.Background(), offset, 2)
		require.NoError(t, err)
		listed = append(listed, page...)
	}
	require.Len(t, listed, 5)
	for i := range seeded {
		assert.Equal(t, seeded[i].ID, listed[i].ID, "pages follow insertion order")
	}
}
