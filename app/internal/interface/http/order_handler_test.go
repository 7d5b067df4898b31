package http

import (
	"context"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func checkoutBody() map[string]any {
	return map[string]any{
		"shipping_address": map[string]any{
			"full_name":     "Layla Hassan",
			"address_line1": "12 Corniche Rd",
			"city":          "Dubai",
			"country":       "AE",
			"phone":         "+971500000000",
		},
	}
}

func TestCheckout_PlacesOrderAndEmptiesCart(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/ar/cart/items", map[string]any{"product_id": "p1", "quantity": 2}, nil)
	cookie := sessionCookieFrom(t, rec)
	env.do(t, http.MethodPost, "/api/v1/ar/cart/items", map[string]any{"product_id": "p3", "variant_id": "p3-v2"}, cookie)

	rec = env.do(t, http.MethodPost, "/api/v1/ar/cart/checkout", checkoutBody(), cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	order := decodeBody(t, rec)
	number, _ := order["order_number"].(string)
	require.True(t, strings.HasPrefix(number, "ORD-"), number)
	require.Len(t, number, len("ORD-")+8)
	require.Equal(t, "PENDING", order["status"])
	require.Equal(t, "COD", order["payment_method"])
	require.Equal(t, "70.00", order["total_amount"])

	items := order["items"].([]any)
	require.Len(t, items, 2)
	second := items[1].(map[string]any)
	require.Equal(t, "p3-v2", second["variant_id"])
	require.Equal(t, "34.00", second["price_at_purchase"])

	rec = env.do(t, http.MethodGet, "/api/v1/ar/cart", nil, cookie)
	require.Empty(t, cartLines(t, decodeBody(t, rec)))

	sessionID, err := env.tokens.ParseToken(cookie.Value)
	require.NoError(t, err)
	raw, found, err := env.slots.Get(context.Background(), "session:"+sessionID+":orders")
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, raw, number)

	rec = env.do(t, http.MethodGet, "/api/v1/en/orders", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, decodeBody(t, rec)["items"], 1)

	rec = env.do(t, http.MethodGet, "/api/v1/en/orders/"+number, nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, number, decodeBody(t, rec)["order_number"])
}

func TestCheckout_EmptyCartReturns422(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/checkout", checkoutBody(), nil)

	require.Equal(t, http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
}

func TestCheckout_Rejections(t *testing.T) {
	env := setupAPI(t)
	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p1"}, nil)
	cookie := sessionCookieFrom(t, rec)

	missingPhone := checkoutBody()
	delete(missingPhone["shipping_address"].(map[string]any), "phone")
	card := checkoutBody()
	card["payment_method"] = "CARD"

	tests := []struct {
		name string
		body any
		want int
	}{
		{name: "malformed json", body: "{", want: http.StatusBadRequest},
		{name: "missing phone", body: missingPhone, want: http.StatusBadRequest},
		{name: "unsupported payment", body: card, want: http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/en/cart/checkout", tt.body, cookie)
			require.Equal(t, tt.want, rec.Code, rec.Body.String())
		})
	}

	rec = env.do(t, http.MethodGet, "/api/v1/en/cart", nil, cookie)
	require.Len(t, cartLines(t, decodeBody(t, rec)), 1, "failed checkouts keep the cart")
}

func TestOrders_UnknownNumberReturns404(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/orders/ORD-00000000", nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}
