package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// Pagination bounds
const (
	DefaultLimit = 10
	MaxLimit     = 100
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Limit int
	Skip  int
}

// ListProductsHandler handles product listing query
type ListProductsHandler struct {
	catalog domain.CatalogService
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(catalog domain.CatalogService) *ListProductsHandler {
	return &ListProductsHandler{catalog: catalog}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(ctx context.Context, q ListProductsQuery) (*domain.ProductList, error) {
	limit, skip := ClampPage(q.Limit, q.Skip)

	list, err := h.catalog.List(ctx, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return list, nil
}

// ClampPage normalizes pagination parameters to valid bounds
func ClampPage(limit, skip int) (int, int) {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	if skip < 0 {
		skip = 0
	}
	return limit, skip
}
