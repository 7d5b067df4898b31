package catalog

import (
	"context"

	domcategory "example.com/cosmatic-storefront/app/internal/domain/category"
)

type CategoryRepository struct {
	catalog *Catalog
}

func NewCategoryRepository(c *Catalog) *CategoryRepository {
	return &CategoryRepository{catalog: c}
}

func (r *CategoryRepository) List(ctx context.Context) ([]*domcategory.Category, error) {
	out := make([]*domcategory.Category, 0, len(r.catalog.categories))
	for _, c := range r.catalog.categories {
		cp := *c
		out = append(out, &cp)
	}
	return out, nil
}

func (r *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*domcategory.Category, error) {
	for _, c := range r.catalog.categories {
		if c.Slug == slug {
			cp := *c
			return &cp, nil
		}
	}
	return nil, domcategory.ErrCategoryNotFound
}

func (r *CategoryRepository) ListSubcategories(ctx context.Context, categoryID string) ([]*domcategory.Subcategory, error) {
	out := []*domcategory.Subcategory{}
	for _, s := range r.catalog.subcategories {
		if s.CategoryID == categoryID {
			cp := *s
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *CategoryRepository) ListBrands(ctx context.Context) ([]*domcategory.Brand, error) {
	out := make([]*domcategory.Brand, 0, len(r.catalog.brands))
	for _, b := range r.catalog.brands {
		cp := *b
		out = append(out, &cp)
	}
	return out, nil
}
