package domain

import "context"

// Product represents a product served by the remote catalog
type Product struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description"`
	Price              float64  `json:"price"`
	DiscountPercentage float64  `json:"discountPercentage"`
	Rating             float64  `json:"rating"`
	Stock              int      `json:"stock"`
	Brand              string   `json:"brand"`
	Category           string   `json:"category"`
	Thumbnail          string   `json:"thumbnail"`
	Images             []string `json:"images"`
}

// DiscountedPrice returns the price after applying the discount percentage
func (p *Product) DiscountedPrice() float64 {
	return p.Price * (1 - p.DiscountPercentage/100)
}

// InStock checks if the product can be ordered
func (p *Product) InStock() bool {
	return p.Stock > 0
}

// Category represents a product category
type Category struct {
	Slug string `json:"slug"`
	Name string `json:"name"`
	URL  string `json:"url"`
}

// ProductList represents one page of products
type ProductList struct {
	Products []Product `json:"products"`
	Total    int       `json:"total"`
	Skip     int       `json:"skip"`
	Limit    int       `json:"limit"`
}

// CreateProductRequest carries the fields required to create a product
type CreateProductRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Stock       int     `json:"stock"`
	Brand       string  `json:"brand"`
	Category    string  `json:"category"`
}

// UpdateProductRequest carries a partial update; nil fields are left unchanged
type UpdateProductRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Stock       *int     `json:"stock,omitempty"`
	Brand       *string  `json:"brand,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// Empty reports whether the update carries no fields at all
func (r *UpdateProductRequest) Empty() bool {
	return r.Title == nil && r.Description == nil && r.Price == nil &&
		r.Stock == nil && r.Brand == nil && r.Category == nil
}

// CatalogService defines the contract with the remote product API
type CatalogService interface {
	List(ctx context.Context, limit, skip int) (*ProductList, error)
	Get(ctx context.Context, id int) (*Product, error)
	Search(ctx context.Context, query string, limit, skip int) (*ProductList, error)
	ListByCategory(ctx context.Context, category string, limit, skip int) (*ProductList, error)
	Categories(ctx context.Context) ([]Category, error)
	Create(ctx context.Context, req CreateProductRequest) (*Product, error)
	Update(ctx context.Context, id int, req UpdateProductRequest) (*Product, error)
	Delete(ctx context.Context, id int) error
}
