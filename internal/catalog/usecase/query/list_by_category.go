package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// ListByCategoryQuery represents the query to list products in a category
type ListByCategoryQuery struct {
	Category string
	Limit    int
	Skip     int
}

// ListByCategoryHandler handles category listing query
type ListByCategoryHandler struct {
	catalog domain.CatalogService
}

// NewListByCategoryHandler creates a new list by category handler
func NewListByCategoryHandler(catalog domain.CatalogService) *ListByCategoryHandler {
	return &ListByCategoryHandler{catalog: catalog}
}

// Handle executes the list by category query
func (h *ListByCategoryHandler) Handle(ctx context.Context, q ListByCategoryQuery) (*domain.ProductList, error) {
	if q.Category == "" {
		return nil, &domain.ValidationError{Field: "category", Reason: "is required"}
	}
	limit, skip := ClampPage(q.Limit, q.Skip)

	list, err := h.catalog.ListByCategory(ctx, q.Category, limit, skip)
	if err != nil {
		return nil, fmt.Errorf("failed to list category products: %w", err)
	}

	return list, nil
}
