package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
	productuc "example.com/cosmatic-storefront/app/internal/usecase/product"
)

func (a *API) handleListProducts(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	q := r.URL.Query()

	page, err := queryInt(r, "page")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	perPage, err := queryInt(r, "per_page")
	if err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	filter := domproduct.ListFilter{
		CategorySlug:    q.Get("category"),
		BrandSlug:       q.Get("brand"),
		Search:          q.Get("search"),
		FeaturedOnly:    queryBool(r, "featured"),
		NewArrivalsOnly: queryBool(r, "new"),
		BestSellersOnly: queryBool(r, "bestseller"),
		Sort:            domproduct.SortOrder(q.Get("sort")),
		Page:            page,
		PerPage:         perPage,
	}
	if filter.Search == "" {
		filter.Search = q.Get("q")
	}
	if sub := q.Get("subcategory"); sub != "" {
		filter.SubcategorySlugs = strings.Split(sub, ",")
	}

	result, err := a.productSvc.List(r.Context(), filter)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(result.Items))
	for _, p := range result.Items {
		items = append(items, a.mapProduct(p, l))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"items":    items,
		"total":    result.Total,
		"page":     result.Page,
		"per_page": result.PerPage,
	})
}

func (a *API) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.Get(r.Context(), chi.URLParam(r, "idOrSlug"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, a.mapProduct(p, getLocale(r.Context())))
}

func (a *API) handleRoutine(w http.ResponseWriter, r *http.Request) {
	l := getLocale(r.Context())
	step := productuc.RoutineStep(chi.URLParam(r, "step"))

	products, err := a.productSvc.Routine(r.Context(), step)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	items := make([]map[string]any, 0, len(products))
	for _, p := range products {
		items = append(items, a.mapProduct(p, l))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"step":  step,
		"title": a.translator.Lookup(l, "routine."+string(step)),
		"items": items,
	})
}
