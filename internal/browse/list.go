package browse

import (
	"context"
	"sync"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/internal/catalog/usecase/query"
)

// ListController holds the server-backed product list for one view. This
// state is deliberately view-scoped: paginated server data never enters the
// global store, only session and preference data does.
type ListController struct {
	handler *query.ListProductsHandler
	limit   int

	mu       sync.Mutex
	products []domain.Product
	total    int
	skip     int
	loading  bool
	err      error
}

// NewListController creates a list controller with the given page size
func NewListController(handler *query.ListProductsHandler, limit int) *ListController {
	if limit <= 0 {
		limit = query.DefaultLimit
	}
	return &ListController{handler: handler, limit: limit}
}

// Load fetches the first page, replacing any loaded products
func (c *ListController) Load(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	list, err := c.handler.Handle(ctx, query.ListProductsQuery{Limit: c.limit, Skip: 0})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}
	c.products = list.Products
	c.total = list.Total
	c.skip = len(list.Products)
	return nil
}

// LoadMore appends the next page, skipping products already shown. Infinite
// scroll calls this as the viewport nears the end of the list.
func (c *ListController) LoadMore(ctx context.Context) error {
	c.mu.Lock()
	if c.loading || (c.total > 0 && c.skip >= c.total) {
		c.mu.Unlock()
		return nil
	}
	skip := c.skip
	c.loading = true
	c.err = nil
	c.mu.Unlock()

	list, err := c.handler.Handle(ctx, query.ListProductsQuery{Limit: c.limit, Skip: skip})

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = err
		return err
	}

	seen := make(map[int]bool, len(c.products))
	for _, p := range c.products {
		seen[p.ID] = true
	}
	for _, p := range list.Products {
		if !seen[p.ID] {
			c.products = append(c.products, p)
		}
	}
	c.total = list.Total
	c.skip = skip + len(list.Products)
	return nil
}

// Products returns a copy of the loaded products
func (c *ListController) Products() []domain.Product {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

// Total returns the total number of products reported by the service
func (c *ListController) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.total
}

// HasMore reports whether another page is available
func (c *ListController) HasMore() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.skip < c.total
}

// Err returns the error from the most recent load, if any
func (c *ListController) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.err
}
