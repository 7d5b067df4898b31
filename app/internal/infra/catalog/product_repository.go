package catalog

import (
	"context"
	"sort"
	"strings"

	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
)

type ProductRepository struct {
	catalog *Catalog
}

func NewProductRepository(c *Catalog) *ProductRepository {
	return &ProductRepository{catalog: c}
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domproduct.Product, error) {
	for _, p := range r.catalog.products {
		if p.ID == id {
			return cloneProduct(p), nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

func (r *ProductRepository) GetBySlug(ctx context.Context, slug string) (*domproduct.Product, error) {
	for _, p := range r.catalog.products {
		if p.Slug == slug {
			return cloneProduct(p), nil
		}
	}
	return nil, domproduct.ErrProductNotFound
}

// List filters, sorts and paginates the catalog. Total counts every match
// before pagination.
func (r *ProductRepository) List(ctx context.Context, filter domproduct.ListFilter) (*domproduct.Page, error) {
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	var matched []*domproduct.Product
	for _, p := range r.catalog.products {
		if filter.CategorySlug != "" && p.Category.Slug != filter.CategorySlug {
			continue
		}
		if len(filter.SubcategorySlugs) > 0 && !inSubcategories(p, filter.SubcategorySlugs) {
			continue
		}
		if filter.BrandSlug != "" && p.Brand.Slug != filter.BrandSlug {
			continue
		}
		if filter.FeaturedOnly && !p.Featured {
			continue
		}
		if filter.NewArrivalsOnly && !p.NewArrival {
			continue
		}
		if filter.BestSellersOnly && !p.BestSeller {
			continue
		}
		if search != "" && !matchesSearch(p, search) {
			continue
		}
		matched = append(matched, p)
	}

	switch filter.Sort {
	case domproduct.SortPriceAsc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price.LessThan(matched[j].Price) })
	case domproduct.SortPriceDesc:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Price.GreaterThan(matched[j].Price) })
	case domproduct.SortRating:
		sort.SliceStable(matched, func(i, j int) bool { return matched[i].Rating > matched[j].Rating })
	}

	page := &domproduct.Page{
		Items:   []*domproduct.Product{},
		Total:   len(matched),
		Page:    filter.Page,
		PerPage: filter.PerPage,
	}
	offset := (filter.Page - 1) * filter.PerPage
	if offset < 0 || offset >= len(matched) || filter.PerPage < 1 {
		return page, nil
	}
	end := offset + filter.PerPage
	if end > len(matched) {
		end = len(matched)
	}
	for _, p := range matched[offset:end] {
		page.Items = append(page.Items, cloneProduct(p))
	}
	return page, nil
}

func inSubcategories(p *domproduct.Product, slugs []string) bool {
	if p.Subcategory == nil {
		return false
	}
	for _, s := range slugs {
		if p.Subcategory.Slug == s {
			return true
		}
	}
	return false
}

func matchesSearch(p *domproduct.Product, needle string) bool {
	return strings.Contains(strings.ToLower(p.TitleEN), needle) ||
		strings.Contains(strings.ToLower(p.TitleAR), needle) ||
		strings.Contains(strings.ToLower(p.DescriptionEN), needle)
}
