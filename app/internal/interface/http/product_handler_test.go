package http

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func itemIDs(t *testing.T, body map[string]any) []string {
	t.Helper()
	items, ok := body["items"].([]any)
	require.True(t, ok, "items should be an array")
	ids := make([]string, 0, len(items))
	for _, it := range items {
		ids = append(ids, it.(map[string]any)["id"].(string))
	}
	return ids
}

func TestProducts_ListDefaults(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/products", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, float64(12), body["total"])
	require.Equal(t, float64(1), body["page"])
	require.Equal(t, float64(12), body["per_page"])
	require.Len(t, itemIDs(t, body), 12)
}

func TestProducts_FilterAndSort(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/products?category=makeup&sort=price_asc", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	require.Equal(t, []string{"p9", "p8", "p7"}, itemIDs(t, decodeBody(t, rec)))
}

func TestProducts_SubcategoryAndPagination(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/products?subcategory=cleansers,toners,serums&per_page=2&page=2", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, float64(3), body["total"])
	require.Equal(t, []string{"p3"}, itemIDs(t, body))
}

func TestProducts_BadQuery(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/products?sort=cheapest", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodGet, "/api/v1/en/products?page=two", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestProducts_GetBySlugLocalized(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/ar/products/vitamin-c-glow-serum", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, "p3", body["id"])
	require.Equal(t, "سيروم فيتامين سي للإشراق", body["title"])
	require.Equal(t, "34.00", body["price"])
	require.Equal(t, "42.00", body["compare_at_price"])
	require.Equal(t, "in_stock", body["stock_status"])
	require.Equal(t, "متوفر", body["stock_label"])

	variants := body["variants"].([]any)
	require.Len(t, variants, 2)
	big := variants[1].(map[string]any)
	require.Equal(t, "٥٠ مل", big["name"])
	require.Equal(t, "48.00", big["price"])

	brand := body["brand"].(map[string]any)
	require.Equal(t, "جلو إسنشيالز", brand["name"])
}

func TestProducts_StockLabels(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/products/p2", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	require.Equal(t, "low_stock", body["stock_status"])
	require.Equal(t, "Only 8 left", body["stock_label"])

	rec = env.do(t, http.MethodGet, "/api/v1/ar/products/invisible-shield-spf50", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	require.Equal(t, "out_of_stock", body["stock_status"])
	require.Equal(t, "غير متوفر", body["stock_label"])
}

func TestProducts_GetUnknownReturns404(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/products/does-not-exist", nil, nil)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRoutine(t *testing.T) {
	env := setupAPI(t)

	rec := env.do(t, http.MethodGet, "/api/v1/en/routine/treat", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	require.Equal(t, "Treat", body["title"])
	require.Equal(t, []string{"p3", "p4"}, itemIDs(t, body))

	rec = env.do(t, http.MethodGet, "/api/v1/en/routine/exfoliate", nil, nil)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}
