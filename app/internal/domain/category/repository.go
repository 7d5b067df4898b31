package category

import "context"

type Repository interface {
	List(ctx context.Context) ([]*Category, error)
	GetBySlug(ctx context.Context, slug string) (*Category, error)
	ListSubcategories(ctx context.Context, categoryID string) ([]*Subcategory, error)
	ListBrands(ctx context.Context) ([]*Brand, error)
}
