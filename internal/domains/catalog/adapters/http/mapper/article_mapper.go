package mapper

import (
	catalogdomain "github.com/Apurer/go-gin-order-server/internal/domains/catalog/domain"
)

// Article represents the transport-layer shape used by the HTTP handlers.
// UnitPrice is rendered with two fraction digits.
type Article struct {
	ID          string
	Name        string
	Description string
	UnitPrice   string
}

// FromDomainArticle converts a domain article to the transport representation.
func FromDomainArticle(article *catalogdomain.Article) Article {
	if article == nil {
		return Article{}
	}
	return Article{
		ID:          article.ID.String(),
		Name:        article.Name,
		Description: article.Description,
		UnitPrice:   article.UnitPrice.StringFixed(2),
	}
}

// FromDomainArticles converts a listing page.
func FromDomainArticles(articles []catalogdomain.Article) []Article {
	result := make([]Article, 0, len(articles))
	for i := range articles {
		result = append(result, FromDomainArticle(&articles[i]))
	}
	return result
}
