package catalog

import (
	"embed"
	"encoding/json"
	"io/fs"
	"path"

	"github.com/pkg/errors"

	domcategory "example.com/cosmatic-storefront/app/internal/domain/category"
	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
)

//go:embed data/*.json
var dataFS embed.FS

// Catalog is the read-only product dataset the storefront serves from.
type Catalog struct {
	products      []*domproduct.Product
	categories    []*domcategory.Category
	subcategories []*domcategory.Subcategory
	brands        []*domcategory.Brand
}

// productRecord is a product as stored on disk, with brand and category
// given by id.
type productRecord struct {
	domproduct.Product
	BrandID       string `json:"brandId"`
	CategoryID    string `json:"categoryId"`
	SubcategoryID string `json:"subcategoryId"`
}

// Load reads the dataset compiled into the binary.
func Load() (*Catalog, error) {
	return LoadFS(dataFS, "data")
}

// LoadFS reads brands.json, categories.json, subcategories.json and
// products.json from dir and resolves the references between them.
func LoadFS(fsys fs.FS, dir string) (*Catalog, error) {
	c := &Catalog{}
	if err := readJSON(fsys, path.Join(dir, "brands.json"), &c.brands); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, path.Join(dir, "categories.json"), &c.categories); err != nil {
		return nil, err
	}
	if err := readJSON(fsys, path.Join(dir, "subcategories.json"), &c.subcategories); err != nil {
		return nil, err
	}
	var records []productRecord
	if err := readJSON(fsys, path.Join(dir, "products.json"), &records); err != nil {
		return nil, err
	}

	brands := make(map[string]*domcategory.Brand, len(c.brands))
	for _, b := range c.brands {
		brands[b.ID] = b
	}
	categories := make(map[string]*domcategory.Category, len(c.categories))
	for _, cat := range c.categories {
		categories[cat.ID] = cat
	}
	subcategories := make(map[string]*domcategory.Subcategory, len(c.subcategories))
	for _, s := range c.subcategories {
		if _, ok := categories[s.CategoryID]; !ok {
			return nil, errors.Errorf("subcategory %s: unknown category %q", s.ID, s.CategoryID)
		}
		subcategories[s.ID] = s
	}

	ids := make(map[string]struct{}, len(records))
	slugs := make(map[string]struct{}, len(records))
	for i := range records {
		rec := &records[i]
		p := rec.Product
		if p.ID == "" || p.Slug == "" {
			return nil, errors.Errorf("product #%d: id and slug are required", i)
		}
		if _, dup := ids[p.ID]; dup {
			return nil, errors.Errorf("product %s: duplicate id", p.ID)
		}
		if _, dup := slugs[p.Slug]; dup {
			return nil, errors.Errorf("product %s: duplicate slug %q", p.ID, p.Slug)
		}
		ids[p.ID] = struct{}{}
		slugs[p.Slug] = struct{}{}

		brand, ok := brands[rec.BrandID]
		if !ok {
			return nil, errors.Errorf("product %s: unknown brand %q", p.ID, rec.BrandID)
		}
		cat, ok := categories[rec.CategoryID]
		if !ok {
			return nil, errors.Errorf("product %s: unknown category %q", p.ID, rec.CategoryID)
		}
		p.Brand = *brand
		p.Category = *cat
		if rec.SubcategoryID != "" {
			sub, ok := subcategories[rec.SubcategoryID]
			if !ok || sub.CategoryID != cat.ID {
				return nil, errors.Errorf("product %s: subcategory %q is not part of %s", p.ID, rec.SubcategoryID, cat.Slug)
			}
			s := *sub
			p.Subcategory = &s
		}
		if p.Currency == "" {
			p.Currency = "USD"
		}
		c.products = append(c.products, &p)
	}
	return c, nil
}

func readJSON(fsys fs.FS, name string, dst any) error {
	raw, err := fs.ReadFile(fsys, name)
	if err != nil {
		return errors.Wrapf(err, "read %s", name)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(err, "decode %s", name)
	}
	return nil
}

func cloneProduct(p *domproduct.Product) *domproduct.Product {
	cp := *p
	if p.Variants != nil {
		cp.Variants = append([]domproduct.Variant(nil), p.Variants...)
	}
	return &cp
}
