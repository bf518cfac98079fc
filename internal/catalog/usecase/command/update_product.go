package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// UpdateProductCommand represents the command to partially update a product
type UpdateProductCommand struct {
	ID  int
	Req domain.UpdateProductRequest
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	catalog domain.CatalogService
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(catalog domain.CatalogService) *UpdateProductHandler {
	return &UpdateProductHandler{catalog: catalog}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(ctx context.Context, cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.ID <= 0 {
		return nil, &domain.ValidationError{Field: "id", Reason: "must be positive"}
	}
	if cmd.Req.Empty() {
		return nil, &domain.ValidationError{Field: "request", Reason: "no fields to update"}
	}
	if err := cmd.Req.Validate(); err != nil {
		return nil, err
	}

	product, err := h.catalog.Update(ctx, cmd.ID, cmd.Req)
	if err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
