package query

import (
	"context"
	"fmt"
	"strings"

	"github.com/tair/storefront/internal/catalog/domain"
)

// SearchProductsQuery represents the query to search products
type SearchProductsQuery struct {
	Query string
	Limit int
	Skip  int
}

// SearchProductsHandler handles product search query
type SearchProductsHandler struct {
	catalog domain.CatalogService
}

// NewSearchProductsHandler creates a new search products handler
func NewSearchProductsHandler(catalog domain.CatalogService) *SearchProductsHandler {
	return &SearchProductsHandler{catalog: catalog}
}

// Handle executes the search products query. An empty query returns an
// empty result without hitting the remote service.
func (h *SearchProductsHandler) Handle(ctx context.Context, q SearchProductsQuery) (*domain.ProductList, error) {
	term := strings.TrimSpace(q.Query)
	limit, skip := ClampPage(q.Limit, q.Skip)

	if term == "" {
		return &domain.ProductList{Products: []domain.Product{}, Limit: limit}, nil
	}

	list, err := h.catalog.Search(ctx, term, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}

	return list, nil
}
