package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
)

func (a *API) handleGetWishlist(w http.ResponseWriter, r *http.Request) {
	a.writeWishlist(w, r, http.StatusOK)
}

func (a *API) handleAddToWishlist(w http.ResponseWriter, r *http.Request) {
	p, err := a.productSvc.Get(r.Context(), chi.URLParam(r, "productId"))
	if err != nil {
		handleDomainError(w, err)
		return
	}

	status := http.StatusOK
	if getSession(r.Context()).Wishlist.Add(p.ID) {
		status = http.StatusCreated
	}
	a.writeWishlist(w, r, status)
}

func (a *API) handleRemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productId")
	if p, err := a.productSvc.Get(r.Context(), productID); err == nil {
		productID = p.ID
	}

	if err := getSession(r.Context()).Wishlist.Remove(productID); err != nil {
		handleDomainError(w, err)
		return
	}
	a.writeWishlist(w, r, http.StatusOK)
}

// writeWishlist resolves saved ids against the catalog. Ids that no longer
// exist are skipped.
func (a *API) writeWishlist(w http.ResponseWriter, r *http.Request, status int) {
	l := getLocale(r.Context())
	ids := getSession(r.Context()).Wishlist.ProductIDs()

	items := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		p, err := a.productSvc.Get(r.Context(), id)
		if errors.Is(err, domproduct.ErrProductNotFound) {
			continue
		}
		if err != nil {
			handleDomainError(w, err)
			return
		}
		items = append(items, a.mapProduct(p, l))
	}

	resp := map[string]any{"items": items}
	if len(items) == 0 {
		resp["empty_message"] = a.translator.Lookup(l, "wishlist.empty")
	}
	writeJSON(w, status, resp)
}
