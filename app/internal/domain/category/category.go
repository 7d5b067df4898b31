package category

import "example.com/cosmatic-storefront/app/internal/domain/locale"

type Category struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameAR string `json:"name_ar"`
	Slug   string `json:"slug"`
	Image  string `json:"image,omitempty"`
}

func (c Category) Name(l locale.Locale) string {
	return l.Pick(c.NameEN, c.NameAR)
}

type Subcategory struct {
	ID         string `json:"id"`
	NameEN     string `json:"name_en"`
	NameAR     string `json:"name_ar"`
	Slug       string `json:"slug"`
	CategoryID string `json:"categoryId"`
}

func (s Subcategory) Name(l locale.Locale) string {
	return l.Pick(s.NameEN, s.NameAR)
}

type Brand struct {
	ID     string `json:"id"`
	NameEN string `json:"name_en"`
	NameAR string `json:"name_ar"`
	Slug   string `json:"slug"`
	Logo   string `json:"logo,omitempty"`
}

func (b Brand) Name(l locale.Locale) string {
	return l.Pick(b.NameEN, b.NameAR)
}
