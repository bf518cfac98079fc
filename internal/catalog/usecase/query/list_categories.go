package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// ListCategoriesHandler handles category listing
type ListCategoriesHandler struct {
	catalog domain.CatalogService
}

// NewListCategoriesHandler creates a new list categories handler
func NewListCategoriesHandler(catalog domain.CatalogService) *ListCategoriesHandler {
	return &ListCategoriesHandler{catalog: catalog}
}

// Handle fetches all product categories
func (h *ListCategoriesHandler) Handle(ctx context.Context) ([]domain.Category, error) {
	categories, err := h.catalog.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	return categories, nil
}
