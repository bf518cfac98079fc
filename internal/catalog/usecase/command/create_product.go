package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Title       string
	Description string
	Price       float64
	Stock       int
	Brand       string
	Category    string
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	catalog domain.CatalogService
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(catalog domain.CatalogService) *CreateProductHandler {
	return &CreateProductHandler{catalog: catalog}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(ctx context.Context, cmd CreateProductCommand) (*domain.Product, error) {
	req := domain.CreateProductRequest{
		Title:       cmd.Title,
		Description: cmd.Description,
		Price:       cmd.Price,
		Stock:       cmd.Stock,
		Brand:       cmd.Brand,
		Category:    cmd.Category,
	}

	if err := req.Validate(); err != nil {
		return nil, err
	}

	product, err := h.catalog.Create(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
