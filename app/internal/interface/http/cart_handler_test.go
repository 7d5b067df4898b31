package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func cartLines(t *testing.T, body map[string]any) []map[string]any {
	t.Helper()
	raw, ok := body["items"].([]any)
	require.True(t, ok, "items should be an array")
	lines := make([]map[string]any, 0, len(raw))
	for _, it := range raw {
		lines = append(lines, it.(map[string]any))
	}
	return lines
}

func TestCart_NewSessionStartsEmpty(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/cart", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	cookie := sessionCookieFrom(t, rec)
	require.True(t, cookie.HttpOnly)

	body := decodeBody(t, rec)
	require.Empty(t, cartLines(t, body))
	require.Equal(t, float64(0), body["total_items"])
	require.Equal(t, "0.00", body["subtotal"])
	require.Equal(t, "Your cart is empty", body["empty_message"])
	require.Equal(t, "Add 50.00 USD more for free shipping", body["free_shipping_message"])
}

func TestCart_AddMergesSameLineAndPersists(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items",
		map[string]any{"product_id": "p3", "variant_id": "p3-v1", "quantity": 2}, nil)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	cookie := sessionCookieFrom(t, rec)

	rec = env.do(t, http.MethodPost, "/api/v1/en/cart/items",
		map[string]any{"product_id": "vitamin-c-glow-serum", "variant_id": "p3-v1"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	body := decodeBody(t, rec)
	lines := cartLines(t, body)
	require.Len(t, lines, 1)
	require.Equal(t, float64(3), lines[0]["quantity"])
	require.Equal(t, "30 ml", lines[0]["variant_name"])
	require.Equal(t, "34.00", lines[0]["unit_price"])
	require.Equal(t, "102.00", body["subtotal"])
	require.Equal(t, true, body["free_shipping"])
	require.Equal(t, "Free shipping", body["free_shipping_message"])

	sessionID, err := env.tokens.ParseToken(cookie.Value)
	require.NoError(t, err)
	raw, found, err := env.slots.Get(context.Background(), "session:"+sessionID+":cart")
	require.NoError(t, err)
	require.True(t, found)
	require.Contains(t, raw, `"variantId":"p3-v1"`)
}

func TestCart_VariantsAreSeparateLines(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p8", "variant_id": "p8-v1"}, nil)
	cookie := sessionCookieFrom(t, rec)
	rec = env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p8", "variant_id": "p8-v2"}, cookie)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	lines := cartLines(t, body)
	require.Len(t, lines, 2)
	require.Equal(t, "p8-v1", lines[0]["variant_id"])
	require.Equal(t, "p8-v2", lines[1]["variant_id"])
	require.Equal(t, float64(2), body["total_items"])
	require.Equal(t, "38.00", body["subtotal"])
	require.Equal(t, "12.00", body["remaining_for_free_shipping"])
}

func TestCart_UpdateQuantity(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p1"}, nil)
	cookie := sessionCookieFrom(t, rec)
	env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p12", "variant_id": "p12-v1"}, cookie)

	rec = env.do(t, http.MethodPut, "/api/v1/en/cart/items", map[string]any{"product_id": "p1", "quantity": 4}, cookie)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	lines := cartLines(t, decodeBody(t, rec))
	require.Equal(t, "p1", lines[0]["product_id"])
	require.Equal(t, float64(4), lines[0]["quantity"])

	rec = env.do(t, http.MethodPut, "/api/v1/en/cart/items", map[string]any{"product_id": "p1", "quantity": 0}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	lines = cartLines(t, decodeBody(t, rec))
	require.Len(t, lines, 1)
	require.Equal(t, "p12", lines[0]["product_id"])

	rec = env.do(t, http.MethodPut, "/api/v1/en/cart/items", map[string]any{"product_id": "p5", "quantity": 3}, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cartLines(t, decodeBody(t, rec)), 1)

	rec = env.do(t, http.MethodPut, "/api/v1/en/cart/items", map[string]any{"product_id": "p12"}, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCart_RemoveAndClear(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p1"}, nil)
	cookie := sessionCookieFrom(t, rec)
	env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p7", "variant_id": "p7-v2"}, cookie)
	env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p10"}, cookie)

	rec = env.do(t, http.MethodDelete, "/api/v1/en/cart/items?product_id=p7", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cartLines(t, decodeBody(t, rec)), 3, "variant must match")

	rec = env.do(t, http.MethodDelete, "/api/v1/en/cart/items?product_id=p7&variant_id=p7-v2", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, cartLines(t, decodeBody(t, rec)), 2)

	rec = env.do(t, http.MethodDelete, "/api/v1/en/cart/items", nil, cookie)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/api/v1/en/cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, cartLines(t, decodeBody(t, rec)))

	sessionID, err := env.tokens.ParseToken(cookie.Value)
	require.NoError(t, err)
	_, found, err := env.slots.Get(context.Background(), "session:"+sessionID+":cart")
	require.NoError(t, err)
	require.False(t, found)
}

func TestCart_AddRejections(t *testing.T) {
	env := setupAPI(t)

	tests := []struct {
		name string
		body any
		code int
	}{
		{"unknown product", map[string]any{"product_id": "p404"}, http.StatusNotFound},
		{"out of stock", map[string]any{"product_id": "p6"}, http.StatusUnprocessableEntity},
		{"variant out of stock", map[string]any{"product_id": "p7", "variant_id": "p7-v3"}, http.StatusUnprocessableEntity},
		{"unknown variant", map[string]any{"product_id": "p7", "variant_id": "p8-v1"}, http.StatusNotFound},
		{"zero quantity", map[string]any{"product_id": "p1", "quantity": 0}, http.StatusBadRequest},
		{"missing product", map[string]any{"quantity": 1}, http.StatusBadRequest},
		{"malformed json", `{"product_id":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", tt.body, nil)
			require.Equal(t, tt.code, rec.Code, rec.Body.String())
		})
	}
}

func TestCart_ArabicTitles(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/ar/cart/items", map[string]any{"product_id": "p12", "variant_id": "p12-v2"}, nil)

	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	line := cartLines(t, decodeBody(t, rec))[0]
	require.Equal(t, "لوشن الجسم بزبدة الشيا", line["title"])
	require.Equal(t, "بدون رائحة", line["variant_name"])
}

func TestCart_SessionsAreIsolated(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p1"}, nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/en/cart", nil, nil)
	require.Empty(t, cartLines(t, decodeBody(t, rec)))

	forged := &http.Cookie{Name: sessionCookie, Value: "not-a-token"}
	rec = env.do(t, http.MethodGet, "/api/v1/en/cart", nil, forged)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Empty(t, cartLines(t, decodeBody(t, rec)))
	require.NotEqual(t, forged.Value, sessionCookieFrom(t, rec).Value)
}

func TestCart_RehydratesAfterEviction(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p4", "quantity": 2}, nil)
	cookie := sessionCookieFrom(t, rec)

	require.Equal(t, 1, env.sessions.Sweep(-time.Hour))
	require.Equal(t, 0, env.sessions.Len())

	rec = env.do(t, http.MethodGet, "/api/v1/en/cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, float64(2), body["total_items"])
	require.Equal(t, "44.00", body["subtotal"])
}

func TestCart_StorageReadFailureKeepsSavedCart(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p1", "quantity": 3}, nil)
	cookie := sessionCookieFrom(t, rec)
	require.Equal(t, 1, env.sessions.Sweep(-time.Hour))

	env.backend.setFailGets(true)
	rec = env.do(t, http.MethodPost, "/api/v1/en/cart/items", map[string]any{"product_id": "p2"}, cookie)
	require.Equal(t, http.StatusServiceUnavailable, rec.Code, rec.Body.String())
	require.NotContains(t, rec.Body.String(), "connection reset")
	require.Equal(t, 0, env.sessions.Len())

	env.backend.setFailGets(false)
	rec = env.do(t, http.MethodGet, "/api/v1/en/cart", nil, cookie)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, float64(3), decodeBody(t, rec)["total_items"])
}
