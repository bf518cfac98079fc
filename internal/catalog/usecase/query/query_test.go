package query

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tair/storefront/internal/catalog/domain"
)

// fakeCatalog records the pagination it receives
type fakeCatalog struct {
	limit    int
	skip     int
	query    string
	category string
	calls    int
	err      error
}

func (f *fakeCatalog) List(_ context.Context, limit, skip int) (*domain.ProductList, error) {
	f.calls++
	f.limit, f.skip = limit, skip
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ProductList{Total: 100, Limit: limit, Skip: skip}, nil
}

func (f *fakeCatalog) Get(_ context.Context, id int) (*domain.Product, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return &domain.Product{ID: id}, nil
}

func (f *fakeCatalog) Search(_ context.Context, q string, limit, skip int) (*domain.ProductList, error) {
	f.calls++
	f.query, f.limit, f.skip = q, limit, skip
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ProductList{Total: 1, Limit: limit, Skip: skip}, nil
}

func (f *fakeCatalog) ListByCategory(_ context.Context, category string, limit, skip int) (*domain.ProductList, error) {
	f.calls++
	f.category, f.limit, f.skip = category, limit, skip
	if f.err != nil {
		return nil, f.err
	}
	return &domain.ProductList{Total: 5, Limit: limit, Skip: skip}, nil
}

func (f *fakeCatalog) Categories(context.Context) ([]domain.Category, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return []domain.Category{{Slug: "beauty", Name: "Beauty"}}, nil
}

func (f *fakeCatalog) Create(context.Context, domain.CreateProductRequest) (*domain.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) Update(context.Context, int, domain.UpdateProductRequest) (*domain.Product, error) {
	return nil, nil
}
func (f *fakeCatalog) Delete(context.Context, int) error { return nil }

func TestClampPage(t *testing.T) {
	cases := []struct {
		limit, skip         int
		wantLimit, wantSkip int
	}{
		{0, 0, DefaultLimit, 0},
		{-5, -5, DefaultLimit, 0},
		{10, 20, 10, 20},
		{500, 0, MaxLimit, 0},
	}

	for _, c := range cases {
		limit, skip := ClampPage(c.limit, c.skip)
		assert.Equal(t, c.wantLimit, limit)
		assert.Equal(t, c.wantSkip, skip)
	}
}

func TestListProducts_AppliesDefaults(t *testing.T) {
	catalog := &fakeCatalog{}
	h := NewListProductsHandler(catalog)

	_, err := h.Handle(context.Background(), ListProductsQuery{})
	require.NoError(t, err)
	assert.Equal(t, DefaultLimit, catalog.limit)
	assert.Equal(t, 0, catalog.skip)
}

func TestListProducts_PropagatesError(t *testing.T) {
	h := NewListProductsHandler(&fakeCatalog{err: domain.ErrUnavailable})

	_, err := h.Handle(context.Background(), ListProductsQuery{Limit: 10})
	assert.ErrorIs(t, err, domain.ErrUnavailable)
}

func TestGetProduct(t *testing.T) {
	h := NewGetProductHandler(&fakeCatalog{})

	product, err := h.Handle(context.Background(), GetProductQuery{ID: 3})
	require.NoError(t, err)
	assert.Equal(t, 3, product.ID)
}

func TestGetProduct_InvalidID(t *testing.T) {
	catalog := &fakeCatalog{}
	h := NewGetProductHandler(catalog)

	_, err := h.Handle(context.Background(), GetProductQuery{ID: 0})
	assert.True(t, domain.IsValidation(err))
	assert.Zero(t, catalog.calls)
}

func TestSearchProducts_TrimsQuery(t *testing.T) {
	catalog := &fakeCatalog{}
	h := NewSearchProductsHandler(catalog)

	_, err := h.Handle(context.Background(), SearchProductsQuery{Query: "  phone  ", Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, "phone", catalog.query)
}

func TestSearchProducts_EmptyQuerySkipsRemote(t *testing.T) {
	catalog := &fakeCatalog{}
	h := NewSearchProductsHandler(catalog)

	list, err := h.Handle(context.Background(), SearchProductsQuery{Query: "   "})
	require.NoError(t, err)
	assert.Empty(t, list.Products)
	assert.Zero(t, catalog.calls)
}

func TestListByCategory(t *testing.T) {
	catalog := &fakeCatalog{}
	h := NewListByCategoryHandler(catalog)

	_, err := h.Handle(context.Background(), ListByCategoryQuery{Category: "beauty", Limit: 200})
	require.NoError(t, err)
	assert.Equal(t, "beauty", catalog.category)
	assert.Equal(t, MaxLimit, catalog.limit)
}

func TestListByCategory_RequiresCategory(t *testing.T) {
	h := NewListByCategoryHandler(&fakeCatalog{})

	_, err := h.Handle(context.Background(), ListByCategoryQuery{})
	assert.True(t, domain.IsValidation(err))
}

func TestListCategories(t *testing.T) {
	h := NewListCategoriesHandler(&fakeCatalog{})

	categories, err := h.Handle(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "beauty", categories[0].Slug)
}
