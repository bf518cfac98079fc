package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/tair/storefront/internal/catalog/domain"
	"github.com/tair/storefront/pkg/logger"
	"github.com/tair/storefront/pkg/metrics"
)

// HTTPCatalog implements domain.CatalogService over the remote JSON API
type HTTPCatalog struct {
	baseURL string
	client  *http.Client
}

// NewHTTPCatalog creates a new catalog client for the given base URL
func NewHTTPCatalog(baseURL string, timeout time.Duration) *HTTPCatalog {
	return &HTTPCatalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

// List returns one page of products
func (c *HTTPCatalog) List(ctx context.Context, limit, skip int) (*domain.ProductList, error) {
	var list domain.ProductList
	path := "/products?" + pageQuery(limit, skip)
	if err := c.do(ctx, "list", http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Get returns a single product by ID
func (c *HTTPCatalog) Get(ctx context.Context, id int) (*domain.Product, error) {
	var product domain.Product
	path := "/products/" + strconv.Itoa(id)
	if err := c.do(ctx, "get", http.MethodGet, path, nil, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Search returns products matching the query
func (c *HTTPCatalog) Search(ctx context.Context, query string, limit, skip int) (*domain.ProductList, error) {
	var list domain.ProductList
	path := "/products/search?q=" + url.QueryEscape(query) + "&" + pageQuery(limit, skip)
	if err := c.do(ctx, "search", http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// ListByCategory returns products in a category
func (c *HTTPCatalog) ListByCategory(ctx context.Context, category string, limit, skip int) (*domain.ProductList, error) {
	var list domain.ProductList
	path := "/products/category/" + url.PathEscape(category) + "?" + pageQuery(limit, skip)
	if err := c.do(ctx, "list_by_category", http.MethodGet, path, nil, &list); err != nil {
		return nil, err
	}
	return &list, nil
}

// Categories returns all product categories
func (c *HTTPCatalog) Categories(ctx context.Context) ([]domain.Category, error) {
	var categories []domain.Category
	if err := c.do(ctx, "categories", http.MethodGet, "/products/categories", nil, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

// Create creates a new product
func (c *HTTPCatalog) Create(ctx context.Context, req domain.CreateProductRequest) (*domain.Product, error) {
	var product domain.Product
	if err := c.do(ctx, "create", http.MethodPost, "/products/add", req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Update applies a partial update to a product
func (c *HTTPCatalog) Update(ctx context.Context, id int, req domain.UpdateProductRequest) (*domain.Product, error) {
	var product domain.Product
	path := "/products/" + strconv.Itoa(id)
	if err := c.do(ctx, "update", http.MethodPut, path, req, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

// Delete deletes a product
func (c *HTTPCatalog) Delete(ctx context.Context, id int) error {
	path := "/products/" + strconv.Itoa(id)
	return c.do(ctx, "delete", http.MethodDelete, path, nil, nil)
}

// do executes one request and decodes the response into out when non-nil
func (c *HTTPCatalog) do(ctx context.Context, operation, method, path string, body, out interface{}) error {
	start := time.Now()
	err := c.doOnce(ctx, method, path, body, out)
	outcome := "success"
	if err != nil {
		outcome = "error"
	}
	metrics.RemoteRequestDuration.WithLabelValues(operation, outcome).Observe(time.Since(start).Seconds())
	return err
}

func (c *HTTPCatalog) doOnce(ctx context.Context, method, path string, body, out interface{}) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request body: %w", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		logger.Warn(ctx).
			Str("method", method).
			Str("path", path).
			Err(err).
			Msg("Catalog request failed")
		return fmt.Errorf("%w: %v", domain.ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if err := checkStatus(resp); err != nil {
		return err
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func checkStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode >= 200 && resp.StatusCode < 300:
		return nil
	case resp.StatusCode == http.StatusNotFound:
		return domain.ErrNotFound
	case resp.StatusCode == http.StatusBadRequest || resp.StatusCode == http.StatusUnprocessableEntity:
		return &domain.ValidationError{Field: "request", Reason: readError(resp.Body)}
	default:
		return fmt.Errorf("%w: unexpected status %d", domain.ErrUnavailable, resp.StatusCode)
	}
}

// readError extracts a short message from an error response body
func readError(body io.Reader) string {
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(io.LimitReader(body, 4096)).Decode(&payload); err == nil && payload.Message != "" {
		return payload.Message
	}
	return "rejected by remote service"
}

func pageQuery(limit, skip int) string {
	return "limit=" + strconv.Itoa(limit) + "&skip=" + strconv.Itoa(skip)
}
