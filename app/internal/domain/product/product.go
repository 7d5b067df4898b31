package product

import (
	"github.com/shopspring/decimal"

	domcategory "example.com/cosmatic-storefront/app/internal/domain/category"
	"example.com/cosmatic-storefront/app/internal/domain/locale"
)

// LowStockThreshold is the stock level under which a product is flagged as running low.
const LowStockThreshold = 10

type VariantType string

const (
	VariantShade VariantType = "shade"
	VariantSize  VariantType = "size"
	VariantScent VariantType = "scent"
)

type Variant struct {
	ID     string           `json:"id"`
	Type   VariantType      `json:"type"`
	NameEN string           `json:"name_en"`
	NameAR string           `json:"name_ar"`
	Value  string           `json:"value,omitempty"`
	Price  *decimal.Decimal `json:"price,omitempty"`
	Stock  int64            `json:"stock"`
	SKU    string           `json:"sku"`
}

func (v Variant) Name(l locale.Locale) string {
	return l.Pick(v.NameEN, v.NameAR)
}

type Filters struct {
	SkinType    []string `json:"skinType,omitempty"`
	Concern     []string `json:"concern,omitempty"`
	Finish      string   `json:"finish,omitempty"`
	Coverage    string   `json:"coverage,omitempty"`
	SPF         int      `json:"spf,omitempty"`
	CrueltyFree bool     `json:"crueltyFree,omitempty"`
	Vegan       bool     `json:"vegan,omitempty"`
	Halal       bool     `json:"halal,omitempty"`
}

type Product struct {
	ID             string                   `json:"id"`
	Slug           string                   `json:"slug"`
	TitleEN        string                   `json:"title_en"`
	TitleAR        string                   `json:"title_ar"`
	DescriptionEN  string                   `json:"description_en"`
	DescriptionAR  string                   `json:"description_ar"`
	BenefitsEN     []string                 `json:"benefits_en"`
	BenefitsAR     []string                 `json:"benefits_ar"`
	HowToUseEN     string                   `json:"howToUse_en"`
	HowToUseAR     string                   `json:"howToUse_ar"`
	IngredientsEN  string                   `json:"ingredients_en"`
	IngredientsAR  string                   `json:"ingredients_ar"`
	Images         []string                 `json:"images"`
	Price          decimal.Decimal          `json:"price"`
	CompareAtPrice *decimal.Decimal         `json:"compareAtPrice,omitempty"`
	Currency       string                   `json:"currency"`
	Stock          int64                    `json:"stock"`
	SKU            string                   `json:"sku"`
	Brand          domcategory.Brand        `json:"brand"`
	Category       domcategory.Category     `json:"category"`
	Subcategory    *domcategory.Subcategory `json:"subcategory,omitempty"`
	Tags           []string                 `json:"tags"`
	Variants       []Variant                `json:"variants,omitempty"`
	Filters        Filters                  `json:"filters"`
	Rating         float64                  `json:"rating"`
	ReviewCount    int64                    `json:"reviewCount"`
	Featured       bool                     `json:"featured,omitempty"`
	NewArrival     bool                     `json:"newArrival,omitempty"`
	BestSeller     bool                     `json:"bestSeller,omitempty"`
}

func (p *Product) Title(l locale.Locale) string {
	return l.Pick(p.TitleEN, p.TitleAR)
}

func (p *Product) Description(l locale.Locale) string {
	return l.Pick(p.DescriptionEN, p.DescriptionAR)
}

func (p *Product) Benefits(l locale.Locale) []string {
	if l == locale.Arabic {
		return p.BenefitsAR
	}
	return p.BenefitsEN
}

func (p *Product) HowToUse(l locale.Locale) string {
	return l.Pick(p.HowToUseEN, p.HowToUseAR)
}

func (p *Product) Ingredients(l locale.Locale) string {
	return l.Pick(p.IngredientsEN, p.IngredientsAR)
}

// FindVariant returns the variant with the given id, or ErrVariantNotFound.
func (p *Product) FindVariant(id string) (*Variant, error) {
	for i := range p.Variants {
		if p.Variants[i].ID == id {
			return &p.Variants[i], nil
		}
	}
	return nil, ErrVariantNotFound
}

type StockStatus string

const (
	InStock    StockStatus = "in_stock"
	LowStock   StockStatus = "low_stock"
	OutOfStock StockStatus = "out_of_stock"
)

func (p *Product) StockStatus() StockStatus {
	switch {
	case p.Stock <= 0:
		return OutOfStock
	case p.Stock < LowStockThreshold:
		return LowStock
	default:
		return InStock
	}
}

type SortOrder string

const (
	SortDefault   SortOrder = ""
	SortPriceAsc  SortOrder = "price_asc"
	SortPriceDesc SortOrder = "price_desc"
	SortRating    SortOrder = "rating"
)

type ListFilter struct {
	CategorySlug     string
	SubcategorySlugs []string
	BrandSlug        string
	Search           string
	FeaturedOnly     bool
	NewArrivalsOnly  bool
	BestSellersOnly  bool
	Sort             SortOrder
	Page             int
	PerPage          int
}

type Page struct {
	Items   []*Product
	Total   int
	Page    int
	PerPage int
}
