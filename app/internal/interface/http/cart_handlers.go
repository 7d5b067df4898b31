package http

import (
	"errors"
	"net/http"

	"example.com/cosmatic-storefront/app/internal/domain/locale"
	cartuc "example.com/cosmatic-storefront/app/internal/usecase/cart"
)

var errMissingProductID = errors.New("product_id is required")

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  *int   `json:"quantity" validate:"omitempty,gt=0,lte=99"`
}

type updateCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	VariantID string `json:"variant_id"`
	Quantity  *int   `json:"quantity" validate:"required,lte=99"`
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	p, err := a.productSvc.ResolveForCart(r.Context(), req.ProductID, req.VariantID)
	if err != nil {
		handleDomainError(w, err)
		return
	}

	qty := 1
	if req.Quantity != nil {
		qty = *req.Quantity
	}
	cartuc.FromContext(r.Context()).AddItem(*p, req.VariantID, qty)
	a.writeCart(w, r, http.StatusCreated)
}

// handleUpdateCartItem sets the quantity of a line. Zero or less removes it.
func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	cartuc.FromContext(r.Context()).UpdateQuantity(req.ProductID, *req.Quantity, req.VariantID)
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	productID := r.URL.Query().Get("product_id")
	if productID == "" {
		respondError(w, http.StatusBadRequest, errMissingProductID)
		return
	}

	cartuc.FromContext(r.Context()).RemoveItem(productID, r.URL.Query().Get("variant_id"))
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	cartuc.FromContext(r.Context()).Clear()
	a.writeCart(w, r, http.StatusOK)
}

func (a *API) writeCart(w http.ResponseWriter, r *http.Request, status int) {
	l := getLocale(r.Context())
	summary := cartuc.Summarize(cartuc.FromContext(r.Context()), l, a.policy)
	writeJSON(w, status, a.mapCartSummary(summary, l))
}

func (a *API) mapCartSummary(s cartuc.Summary, l locale.Locale) map[string]any {
	lines := make([]map[string]any, 0, len(s.Lines))
	for _, line := range s.Lines {
		lines = append(lines, map[string]any{
			"product_id":   line.ProductID,
			"slug":         line.Slug,
			"variant_id":   line.VariantID,
			"title":        line.Title,
			"variant_name": line.VariantName,
			"image":        line.Image,
			"unit_price":   money(line.UnitPrice),
			"quantity":     line.Quantity,
			"line_total":   money(line.LineTotal),
		})
	}

	shippingMessage := a.translator.Lookup(l, "cart.freeShipping")
	if !s.FreeShipping {
		shippingMessage = a.translator.Translate(l, "cart.freeShippingRemaining", map[string]string{
			"amount": money(s.RemainingForFreeShipping) + " " + s.Currency,
		})
	}

	out := map[string]any{
		"items":                       lines,
		"total_items":                 s.TotalItems,
		"subtotal":                    money(s.Subtotal),
		"currency":                    s.Currency,
		"free_shipping_threshold":     money(s.FreeShippingThreshold),
		"remaining_for_free_shipping": money(s.RemainingForFreeShipping),
		"free_shipping":               s.FreeShipping,
		"free_shipping_message":       shippingMessage,
	}
	if len(lines) == 0 {
		out["empty_message"] = a.translator.Lookup(l, "cart.empty")
	}
	return out
}
