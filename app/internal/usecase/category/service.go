package category

import (
	"context"

	dom "example.com/cosmatic-storefront/app/internal/domain/category"
)

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

// Detail is a category together with its subcategories.
type Detail struct {
	Category      *dom.Category
	Subcategories []*dom.Subcategory
}

func (s *Service) List(ctx context.Context) ([]*dom.Category, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetBySlug(ctx context.Context, slug string) (*Detail, error) {
	c, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	subs, err := s.repo.ListSubcategories(ctx, c.ID)
	if err != nil {
		return nil, err
	}
	return &Detail{Category: c, Subcategories: subs}, nil
}

func (s *Service) Brands(ctx context.Context) ([]*dom.Brand, error) {
	return s.repo.ListBrands(ctx)
}
