package domain

// Validation bounds for product form input
const (
	MaxTitleLen       = 100
	MaxDescriptionLen = 500
	MaxBrandLen       = 50
	MaxPrice          = 10000
)

// Validate checks a create request; all fields are required
func (r *CreateProductRequest) Validate() error {
	if r.Title == "" {
		return &ValidationError{Field: "title", Reason: "is required"}
	}
	if len(r.Title) > MaxTitleLen {
		return &ValidationError{Field: "title", Reason: "too long"}
	}
	if r.Description == "" {
		return &ValidationError{Field: "description", Reason: "is required"}
	}
	if len(r.Description) > MaxDescriptionLen {
		return &ValidationError{Field: "description", Reason: "too long"}
	}
	if r.Price < 0 {
		return &ValidationError{Field: "price", Reason: "cannot be negative"}
	}
	if r.Price > MaxPrice {
		return &ValidationError{Field: "price", Reason: "too high"}
	}
	if r.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "cannot be negative"}
	}
	if r.Brand == "" {
		return &ValidationError{Field: "brand", Reason: "is required"}
	}
	if len(r.Brand) > MaxBrandLen {
		return &ValidationError{Field: "brand", Reason: "too long"}
	}
	if r.Category == "" {
		return &ValidationError{Field: "category", Reason: "is required"}
	}
	return nil
}

// Validate checks an update request; only present fields are validated
func (r *UpdateProductRequest) Validate() error {
	if r.Title != nil {
		if *r.Title == "" {
			return &ValidationError{Field: "title", Reason: "cannot be empty"}
		}
		if len(*r.Title) > MaxTitleLen {
			return &ValidationError{Field: "title", Reason: "too long"}
		}
	}
	if r.Description != nil {
		if *r.Description == "" {
			return &ValidationError{Field: "description", Reason: "cannot be empty"}
		}
		if len(*r.Description) > MaxDescriptionLen {
			return &ValidationError{Field: "description", Reason: "too long"}
		}
	}
	if r.Price != nil {
		if *r.Price < 0 {
			return &ValidationError{Field: "price", Reason: "cannot be negative"}
		}
		if *r.Price > MaxPrice {
			return &ValidationError{Field: "price", Reason: "too high"}
		}
	}
	if r.Stock != nil && *r.Stock < 0 {
		return &ValidationError{Field: "stock", Reason: "cannot be negative"}
	}
	if r.Brand != nil {
		if *r.Brand == "" {
			return &ValidationError{Field: "brand", Reason: "cannot be empty"}
		}
		if len(*r.Brand) > MaxBrandLen {
			return &ValidationError{Field: "brand", Reason: "too long"}
		}
	}
	if r.Category != nil && *r.Category == "" {
		return &ValidationError{Field: "category", Reason: "cannot be empty"}
	}
	return nil
}
