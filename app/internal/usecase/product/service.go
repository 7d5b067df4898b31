package product

import (
	"context"
	"errors"

	dom "example.com/cosmatic-storefront/app/internal/domain/product"
)

const (
	DefaultPerPage = 12
	MaxPerPage     = 100
	routineSize    = 3
)

type RoutineStep string

const (
	StepCleanse    RoutineStep = "cleanse"
	StepTreat      RoutineStep = "treat"
	StepMoisturize RoutineStep = "moisturize"
)

var routineSubcategories = map[RoutineStep][]string{
	StepCleanse:    {"cleansers", "toners"},
	StepTreat:      {"serums", "masks"},
	StepMoisturize: {"moisturizers", "sunscreen"},
}

type Service struct {
	repo dom.Repository
}

func NewService(repo dom.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context, filter dom.ListFilter) (*dom.Page, error) {
	switch filter.Sort {
	case dom.SortDefault, dom.SortPriceAsc, dom.SortPriceDesc, dom.SortRating:
	default:
		return nil, dom.ErrInvalidSort
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 {
		filter.PerPage = DefaultPerPage
	}
	if filter.PerPage > MaxPerPage {
		filter.PerPage = MaxPerPage
	}
	return s.repo.List(ctx, filter)
}

// Get looks a product up by id first and by slug second.
func (s *Service) Get(ctx context.Context, idOrSlug string) (*dom.Product, error) {
	p, err := s.repo.GetByID(ctx, idOrSlug)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, dom.ErrProductNotFound) {
		return nil, err
	}
	return s.repo.GetBySlug(ctx, idOrSlug)
}

// ResolveForCart returns the product a shopper is about to add, checking that
// the variant belongs to it and that the selection is in stock.
func (s *Service) ResolveForCart(ctx context.Context, idOrSlug, variantID string) (*dom.Product, error) {
	p, err := s.Get(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}
	if p.Stock <= 0 {
		return nil, dom.ErrOutOfStock
	}
	if variantID != "" {
		v, err := p.FindVariant(variantID)
		if err != nil {
			return nil, err
		}
		if v.Stock <= 0 {
			return nil, dom.ErrOutOfStock
		}
	}
	return p, nil
}

// Routine returns up to three products for one step of the skincare routine.
func (s *Service) Routine(ctx context.Context, step RoutineStep) ([]*dom.Product, error) {
	slugs, ok := routineSubcategories[step]
	if !ok {
		return nil, dom.ErrInvalidStep
	}
	page, err := s.repo.List(ctx, dom.ListFilter{
		SubcategorySlugs: slugs,
		Page:             1,
		PerPage:          routineSize,
	})
	if err != nil {
		return nil, err
	}
	return page.Items, nil
}
