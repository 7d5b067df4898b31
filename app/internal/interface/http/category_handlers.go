package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	categories, err := a.categorySvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, mapCategory(*c, l))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}

func (a *API) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	detail, err := a.categorySvc.GetBySlug(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	subs := make([]map[string]any, 0, len(detail.Subcategories))
	for _, s := range detail.Subcategories {
		subs = append(subs, mapSubcategory(*s, l))
	}
	resp := mapCategory(*detail.Category, l)
	resp["subcategories"] = subs
	writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleListBrands(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	brands, err := a.categorySvc.Brands(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	resp := make([]map[string]any, 0, len(brands))
	for _, b := range brands {
		resp = append(resp, mapBrand(*b, l))
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": resp})
}
