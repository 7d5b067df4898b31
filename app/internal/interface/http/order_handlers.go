package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"example.com/cosmatic-storefront/app/internal/domain/locale"
	domorder "example.com/cosmatic-storefront/app/internal/domain/order"
	cartuc "example.com/cosmatic-storefront/app/internal/usecase/cart"
	"example.com/cosmatic-storefront/app/internal/usecase/checkout"
)

type shippingAddressRequest struct {
	FullName     string `json:"full_name" validate:"required,max=120"`
	AddressLine1 string `json:"address_line1" validate:"required,max=200"`
	AddressLine2 string `json:"address_line2" validate:"max=200"`
	City         string `json:"city" validate:"required,max=100"`
	Country      string `json:"country" validate:"required,max=100"`
	PostalCode   string `json:"postal_code" validate:"max=20"`
	Phone        string `json:"phone" validate:"required,e164"`
}

type checkoutRequest struct {
	PaymentMethod   string                 `json:"payment_method"`
	ShippingAddress shippingAddressRequest `json:"shipping_address"`
}

func (a *API) handleCheckout(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondValidationError(w, err)
		return
	}

	method := domorder.PaymentMethod(req.PaymentMethod)
	if method == "" {
		method = domorder.PaymentCOD
	}
	addr := req.ShippingAddress
	sess := getSession(r.Context())
	order, err := a.checkoutSvc.Checkout(r.Context(), cartuc.FromContext(r.Context()), sess.Orders, checkout.Request{
		PaymentMethod: method,
		ShippingAddress: domorder.ShippingAddress{
			FullName:     addr.FullName,
			AddressLine1: addr.AddressLine1,
			AddressLine2: addr.AddressLine2,
			City:         addr.City,
			Country:      addr.Country,
			PostalCode:   addr.PostalCode,
			Phone:        addr.Phone,
		},
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, mapOrder(order, getLocale(r.Context())))
}

func (a *API) handleListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := getSession(r.Context()).Orders.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}

	l := getLocale(r.Context())
	out := make([]map[string]any, 0, len(orders))
	for i := range orders {
		out = append(out, mapOrder(&orders[i], l))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (a *API) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := getSession(r.Context()).Orders.GetByNumber(r.Context(), chi.URLParam(r, "number"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapOrder(order, getLocale(r.Context())))
}

func mapOrder(o *domorder.Order, l locale.Locale) map[string]any {
	items := make([]map[string]any, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, map[string]any{
			"product_id":        it.ProductID,
			"variant_id":        it.VariantID,
			"title":             l.Pick(it.TitleEN, it.TitleAR),
			"quantity":          it.Quantity,
			"price_at_purchase": money(it.PriceAtPurchase),
			"line_total":        money(it.LineTotal()),
		})
	}
	addr := o.ShippingAddress
	shipping := map[string]any{
		"full_name":     addr.FullName,
		"address_line1": addr.AddressLine1,
		"address_line2": addr.AddressLine2,
		"city":          addr.City,
		"country":       addr.Country,
		"postal_code":   addr.PostalCode,
		"phone":         addr.Phone,
	}
	return map[string]any{
		"id":               o.ID,
		"order_number":     o.Number,
		"status":           o.Status,
		"payment_method":   o.PaymentMethod,
		"currency":         o.Currency,
		"total_amount":     money(o.TotalAmount),
		"created_at":       o.CreatedAt,
		"items":            items,
		"shipping_address": shipping,
	}
}
