package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"

	domcategory "example.com/cosmatic-storefront/app/internal/domain/category"
	domcontact "example.com/cosmatic-storefront/app/internal/domain/contact"
	"example.com/cosmatic-storefront/app/internal/domain/locale"
	domorder "example.com/cosmatic-storefront/app/internal/domain/order"
	domproduct "example.com/cosmatic-storefront/app/internal/domain/product"
	"example.com/cosmatic-storefront/app/internal/domain/storage"
	domwishlist "example.com/cosmatic-storefront/app/internal/domain/wishlist"
	"example.com/cosmatic-storefront/app/internal/infra/i18n"
	cartuc "example.com/cosmatic-storefront/app/internal/usecase/cart"
	categoryuc "example.com/cosmatic-storefront/app/internal/usecase/category"
	"example.com/cosmatic-storefront/app/internal/usecase/checkout"
	contactuc "example.com/cosmatic-storefront/app/internal/usecase/contact"
	productuc "example.com/cosmatic-storefront/app/internal/usecase/product"
	sessionuc "example.com/cosmatic-storefront/app/internal/usecase/session"
)

// TokenService signs and verifies the session cookie.
type TokenService interface {
	GenerateToken(sessionID string) (string, error)
	ParseToken(token string) (string, error)
}

type API struct {
	productSvc  *productuc.Service
	categorySvc *categoryuc.Service
	contactSvc  *contactuc.Service
	checkoutSvc *checkout.Service
	sessions    *sessionuc.Registry
	translator  *i18n.Translator
	tokenSvc    TokenService
	policy      cartuc.Policy
	sessionTTL  time.Duration
	logger      logrus.FieldLogger
	validator   *validator.Validate
}

type Dependencies struct {
	ProductService  *productuc.Service
	CategoryService *categoryuc.Service
	ContactService  *contactuc.Service
	CheckoutService *checkout.Service
	Sessions        *sessionuc.Registry
	Translator      *i18n.Translator
	TokenService    TokenService
	CartPolicy      cartuc.Policy
	SessionTTL      time.Duration
	Logger          logrus.FieldLogger
}

func NewAPI(deps Dependencies) *API {
	logger := deps.Logger
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &API{
		productSvc:  deps.ProductService,
		categorySvc: deps.CategoryService,
		contactSvc:  deps.ContactService,
		checkoutSvc: deps.CheckoutService,
		sessions:    deps.Sessions,
		translator:  deps.Translator,
		tokenSvc:    deps.TokenService,
		policy:      deps.CartPolicy,
		sessionTTL:  deps.SessionTTL,
		logger:      logger,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestLogger(&chimw.DefaultLogFormatter{Logger: a.logger, NoColor: true}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1/{locale}", func(r chi.Router) {
		r.Use(a.localeMiddleware)

		r.Get("/products", a.handleListProducts)
		r.Get("/products/{idOrSlug}", a.handleGetProduct)
		r.Get("/routine/{step}", a.handleRoutine)
		r.Get("/categories", a.handleListCategories)
		r.Get("/categories/{slug}", a.handleGetCategory)
		r.Get("/brands", a.handleListBrands)
		r.Get("/faq", a.handleFAQ)
		r.Get("/dictionary", a.handleDictionary)
		r.Post("/contact", a.handleContact)

		r.Group(func(sr chi.Router) {
			sr.Use(a.sessionMiddleware)

			sr.Get("/cart", a.handleGetCart)
			sr.Delete("/cart", a.handleClearCart)
			sr.Post("/cart/items", a.handleAddCartItem)
			sr.Put("/cart/items", a.handleUpdateCartItem)
			sr.Delete("/cart/items", a.handleRemoveCartItem)
			sr.Post("/cart/checkout", a.handleCheckout)

			sr.Get("/orders", a.handleListOrders)
			sr.Get("/orders/{number}", a.handleGetOrder)

			sr.Get("/wishlist", a.handleGetWishlist)
			sr.Post("/wishlist/{productId}", a.handleAddToWishlist)
			sr.Delete("/wishlist/{productId}", a.handleRemoveFromWishlist)
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func respondValidationError(w http.ResponseWriter, err error) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		respondError(w, http.StatusBadRequest, err)
		return
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = fe.Tag()
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request", Details: fields})
}

// queryInt parses an optional integer query parameter.
func queryInt(r *http.Request, key string) (int, error) {
	v := r.URL.Query().Get(key)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, errors.New(key + " must be an integer")
	}
	return n, nil
}

func queryBool(r *http.Request, key string) bool {
	switch r.URL.Query().Get(key) {
	case "1", "true", "yes":
		return true
	}
	return false
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2)
}

func mapBrand(b domcategory.Brand, l locale.Locale) map[string]any {
	return map[string]any{
		"id":   b.ID,
		"name": b.Name(l),
		"slug": b.Slug,
		"logo": b.Logo,
	}
}

func mapCategory(c domcategory.Category, l locale.Locale) map[string]any {
	return map[string]any{
		"id":    c.ID,
		"name":  c.Name(l),
		"slug":  c.Slug,
		"image": c.Image,
	}
}

func mapSubcategory(s domcategory.Subcategory, l locale.Locale) map[string]any {
	return map[string]any{
		"id":          s.ID,
		"name":        s.Name(l),
		"slug":        s.Slug,
		"category_id": s.CategoryID,
	}
}

func (a *API) stockLabel(p *domproduct.Product, l locale.Locale) string {
	switch p.StockStatus() {
	case domproduct.OutOfStock:
		return a.translator.Lookup(l, "product.outOfStock")
	case domproduct.LowStock:
		return a.translator.Translate(l, "product.lowStock", map[string]string{"count": strconv.FormatInt(p.Stock, 10)})
	default:
		return a.translator.Lookup(l, "product.inStock")
	}
}

func (a *API) mapProduct(p *domproduct.Product, l locale.Locale) map[string]any {
	variants := make([]map[string]any, 0, len(p.Variants))
	for _, v := range p.Variants {
		variant := map[string]any{
			"id":    v.ID,
			"type":  v.Type,
			"name":  v.Name(l),
			"value": v.Value,
			"stock": v.Stock,
			"sku":   v.SKU,
		}
		if v.Price != nil {
			variant["price"] = money(*v.Price)
		}
		variants = append(variants, variant)
	}

	out := map[string]any{
		"id":           p.ID,
		"slug":         p.Slug,
		"title":        p.Title(l),
		"description":  p.Description(l),
		"benefits":     p.Benefits(l),
		"how_to_use":   p.HowToUse(l),
		"ingredients":  p.Ingredients(l),
		"images":       p.Images,
		"price":        money(p.Price),
		"currency":     p.Currency,
		"stock":        p.Stock,
		"stock_status": p.StockStatus(),
		"stock_label":  a.stockLabel(p, l),
		"sku":          p.SKU,
		"brand":        mapBrand(p.Brand, l),
		"category":     mapCategory(p.Category, l),
		"tags":         p.Tags,
		"variants":     variants,
		"filters":      p.Filters,
		"rating":       p.Rating,
		"review_count": p.ReviewCount,
		"featured":     p.Featured,
		"new_arrival":  p.NewArrival,
		"best_seller":  p.BestSeller,
	}
	if p.CompareAtPrice != nil {
		out["compare_at_price"] = money(*p.CompareAtPrice)
	}
	if p.Subcategory != nil {
		out["subcategory"] = mapSubcategory(*p.Subcategory, l)
	}
	return out
}

func handleDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domproduct.ErrProductNotFound),
		errors.Is(err, domproduct.ErrVariantNotFound),
		errors.Is(err, domcategory.ErrCategoryNotFound),
		errors.Is(err, domcategory.ErrBrandNotFound),
		errors.Is(err, domwishlist.ErrNotInWishlist),
		errors.Is(err, domorder.ErrOrderNotFound),
		errors.Is(err, locale.ErrUnsupportedLocale):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domproduct.ErrInvalidSort),
		errors.Is(err, domproduct.ErrInvalidStep),
		errors.Is(err, domorder.ErrInvalidPayment):
		respondError(w, http.StatusBadRequest, err)
	case errors.Is(err, domproduct.ErrOutOfStock),
		errors.Is(err, domorder.ErrEmptyOrderItems):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, storage.ErrUnavailable):
		respondError(w, http.StatusServiceUnavailable, storage.ErrUnavailable)
	case errors.Is(err, domcontact.ErrDeliveryFailed):
		respondError(w, http.StatusBadGateway, domcontact.ErrDeliveryFailed)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
