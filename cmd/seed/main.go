// Command seed loads catalog fixtures from a YAML file into PostgreSQL.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	catalogpostgres "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/persistence/postgres"
	catalogdomain "github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
	platformpostgres "github.com/Apurer/go-gin-order-server/internal/platform/postgres"
)

type fixtureFile struct {
	Articles []articleFixture `yaml:"articles"`
}

type articleFixture struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	UnitPrice   string `yaml:"unitPrice"`
}

func main() {
	path := flag.String("file", "fixtures/articles.yaml", "path to the article fixture file")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	db, cleanup := platformpostgres.ConnectFromEnv(ctx, logger)
	defer cleanup()
	if db == nil {
		log.Fatal("POSTGRES_DSN not set or connection failed; cannot seed catalog")
	}

	articles, err := loadFixtures(*path)
	if err != nil {
		log.Fatalf("failed to load fixtures: %v", err)
	}

	repo := catalogpostgres.NewRepository(db)
	if err := repo.Seed(ctx, articles); err != nil {
		log.Fatalf("failed to seed catalog: %v", err)
	}
	log.Printf("seeded %d articles from %s", len(articles), *path)
}

func loadFixtures(path string) ([]catalogdomain.Article, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var file fixtureFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, err
	}
	articles := make([]catalogdomain.Article, 0, len(file.Articles))
	for _, fixture := range file.Articles {
		article, err := fixture.toDomain()
		if err != nil {
			return nil, fmt.Errorf("article %q: %w", fixture.Name, err)
		}
		articles = append(articles, article)
	}
	return articles, nil
}

func (f articleFixture) toDomain() (catalogdomain.Article, error) {
	id := uuid.New()
	if f.ID != "" {
		parsed, err := uuid.Parse(f.ID)
		if err != nil {
			return catalogdomain.Article{}, err
		}
		id = parsed
	}
	price, err := decimal.NewFromString(f.UnitPrice)
	if err != nil {
		return catalogdomain.Article{}, err
	}
	return catalogdomain.Article{
		ID:          id,
		Name:        f.Name,
		Description: f.Description,
		UnitPrice:   price,
	}, nil
}
