package storefrontserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	catalogapp "github.com/Apurer/go-gin-order-server/internal/domains/catalog/application"
	catalogports "github.com/Apurer/go-gin-order-server/internal/domains/catalog/ports"

	cataloghttpmapper "github.com/Apurer/go-gin-order-server/internal/domains/catalog/adapters/http/mapper"
)

// CatalogAPI implements the article browsing section.
type CatalogAPI struct {
	service catalogports.Service
}

// NewCatalogAPI wires dependencies.
func NewCatalogAPI(service catalogports.Service) CatalogAPI {
	return CatalogAPI{service: service}
}

func fromTransportArticles(articles []cataloghttpmapper.Article) []Article {
	result := make([]Article, 0, len(articles))
	for _, article := range articles {
		result = append(result, Article{
			Id:          article.ID,
			Name:        article.Name,
			Description: article.Description,
			UnitPrice:   article.UnitPrice,
		})
	}
	return result
}

// Get /v1/articles
// Search the catalog by name suffix, or list everything
func (api *CatalogAPI) SearchArticles(c *gin.Context) {
	var query *string
	if raw, ok := c.GetQuery("query"); ok {
		query = &raw
	}
	page, pageSize, err := pageParams(c)
	if err != nil {
		respondBadRequest(c, err)
		return
	}
	articles, err := api.service.SearchArticles(c.Request.Context(), query, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, fromTransportArticles(cataloghttpmapper.FromDomainArticles(articles)))
}

// pageParams reads the page and pageSize query parameters. The page value
// is handed to storage as a row offset, matching the wire contract.
func pageParams(c *gin.Context) (int, int, error) {
	page := 0
	if raw := c.Query("page"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		page = parsed
	}
	pageSize := catalogapp.DefaultPageSize
	if raw := c.Query("pageSize"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return 0, 0, err
		}
		pageSize = parsed
	}
	return page, pageSize, nil
}
