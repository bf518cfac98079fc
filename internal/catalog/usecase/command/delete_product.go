package command

import (
	"context"
	"fmt"

	"github.com/tair/storefront/internal/catalog/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID int
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	catalog domain.CatalogService
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(catalog domain.CatalogService) *DeleteProductHandler {
	return &DeleteProductHandler{catalog: catalog}
}

// Handle executes the delete product command
func (h *DeleteProductHandler) Handle(ctx context.Context, cmd DeleteProductCommand) error {
	if cmd.ID <= 0 {
		return &domain.ValidationError{Field: "id", Reason: "must be positive"}
	}

	if err := h.catalog.Delete(ctx, cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
