package repository

import (
	"context"
	"errors"

	"club-merch/internal/domain"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// ProductRepository defines read access to the merchandise catalog. The
// catalog is immutable reference data, so there are no write operations.
type ProductRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	List(ctx context.Context) ([]*domain.Product, error)
	ListByCategory(ctx context.Context, category string) ([]*domain.Product, error)
	ListByIDs(ctx context.Context, ids []string) ([]*domain.Product, error)
	Categories(ctx context.Context) ([]*domain.Category, error)
	FindCategory(ctx context.Context, id string) (*domain.Category, error)
}

type productRepository struct {
	products   []*domain.Product
	byID       map[string]*domain.Product
	categories []*domain.Category
}

// NewProductRepository creates a catalog repository over the given product
// set. Order of the input slice is preserved by List and the filters.
func NewProductRepository(products []*domain.Product, categories []*domain.Category) ProductRepository {
	byID := make(map[string]*domain.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	return &productRepository{
		products:   products,
		byID:       byID,
		categories: categories,
	}
}

func (r *productRepository) FindByID(ctx context.Context, id string) (*domain.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return product, nil
}

func (r *productRepository) List(ctx context.Context) ([]*domain.Product, error) {
	out := make([]*domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *productRepository) ListByCategory(ctx context.Context, category string) ([]*domain.Product, error) {
	if category == domain.CategoryAll {
		return r.List(ctx)
	}

	out := []*domain.Product{}
	for _, p := range r.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepository) ListByIDs(ctx context.Context, ids []string) ([]*domain.Product, error) {
	wanted := make(map[string]bool, len(ids))
	for _, id := range ids {
		wanted[id] = true
	}

	out := []*domain.Product{}
	for _, p := range r.products {
		if wanted[p.ID] {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *productRepository) Categories(ctx context.Context) ([]*domain.Category, error) {
	out := make([]*domain.Category, len(r.categories))
	copy(out, r.categories)
	return out, nil
}

func (r *productRepository) FindCategory(ctx context.Context, id string) (*domain.Category, error) {
	for _, c := range r.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, ErrCategoryNotFound
}
