package query

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// GetProductQuery represents the query to fetch a single product
type GetProductQuery struct {
	ID int
}

// GetProductHandler handles single product lookup
type GetProductHandler struct {
	catalog domain.CatalogService
}

// NewGetProductHandler creates a new get product handler
func NewGetProductHandler(catalog domain.CatalogService) *GetProductHandler {
	return &GetProductHandler{catalog: catalog}
}

// Handle executes the get product query
func (h *GetProductHandler) Handle(ctx context.Context, q GetProductQuery) (*domain.Product, error) {
	if q.ID <= 0 {
		return nil, &domain.ValidationError{Field: "id", Reason: "must be positive"}
	}

	product, err := h.catalog.Get(ctx, q.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}
