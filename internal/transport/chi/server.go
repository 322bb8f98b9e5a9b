package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/kailas-cloud/storefront/internal/config"
	"github.com/kailas-cloud/storefront/internal/domain"
	cataloguc "github.com/kailas-cloud/storefront/internal/usecase/catalog"
	healthuc "github.com/kailas-cloud/storefront/internal/usecase/health"
	pricinguc "github.com/kailas-cloud/storefront/internal/usecase/pricing"
	searchuc "github.com/kailas-cloud/storefront/internal/usecase/search"
)

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, err error, msg string) bool

// Server exposes the pricing and search engines over HTTP.
type Server struct {
	pricing       *pricinguc.Service
	search        *searchuc.Service
	catalog       *cataloguc.Service
	health        *healthuc.Service
	limits        config.CatalogConfig
	logger        *zap.Logger
	errorHandlers []errorHandler
}

// NewServer creates an HTTP API server.
func NewServer(
	pricing *pricinguc.Service,
	search *searchuc.Service,
	catalog *cataloguc.Service,
	health *healthuc.Service,
	limits config.CatalogConfig,
	logger *zap.Logger,
) *Server {
	s := &Server{
		pricing: pricing,
		search:  search,
		catalog: catalog,
		health:  health,
		limits:  limits,
		logger:  logger,
	}
	s.errorHandlers = []errorHandler{
		sentinelHandler(domain.ErrProductNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrCustomerNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrOrderNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrRuleNotFound, http.StatusNotFound, CodeNotFound),
		sentinelHandler(domain.ErrInsufficientStock, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrValidation, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrInvalidOrderStatus, http.StatusBadRequest, CodeValidationFailed),
		sentinelHandler(domain.ErrDuplicateEmail, http.StatusBadRequest, CodeValidationFailed),
	}
	return s
}

// Register mounts all routes on the router.
func (s *Server) Register(r chi.Router) {
	r.Get("/health", s.Health)
	r.Get("/metrics", s.Metrics)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/search", s.Search)
		r.Get("/search/suggestions", s.Suggestions)
		r.Get("/search/categories", s.Categories)
		r.Get("/search/related", s.RelatedTerms)

		r.Post("/quotes", s.GenerateQuote)
		r.Post("/orders", s.PlaceOrder)
		r.Get("/orders/{id}", s.GetOrder)
		r.Put("/orders/{id}/status", s.UpdateOrderStatus)

		r.Put("/products/{id}", s.UpsertProduct)
		r.Get("/products/{id}", s.GetProduct)
		r.Put("/customers/{id}", s.UpsertCustomer)
		r.Get("/customers/{id}", s.GetCustomer)
		r.Put("/rules/{id}", s.UpsertRule)
		r.Get("/rules/{id}", s.GetRule)
	})
}

// Search handles GET /api/v1/search.
func (s *Server) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")
	maxResults := boundedQueryInt(r, "max_results",
		s.limits.DefaultSearchResults, 1, s.limits.MaxSearchResults)

	products, err := s.search.Search(r.Context(), query, maxResults)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}

	results := make([]productResponse, len(products))
	for i, p := range products {
		results[i] = productToResponse(p)
	}
	writeJSON(w, http.StatusOK, searchResponse{Results: results})
}

// Suggestions handles GET /api/v1/search/suggestions.
func (s *Server) Suggestions(w http.ResponseWriter, r *http.Request) {
	partial := r.URL.Query().Get("q")
	maxSuggestions := boundedQueryInt(r, "max_suggestions",
		s.limits.DefaultSuggestions, 1, s.limits.MaxSuggestions)

	suggestions, err := s.search.Suggestions(r.Context(), partial, maxSuggestions)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestionsResponse{Suggestions: suggestions})
}

// Categories handles GET /api/v1/search/categories.
func (s *Server) Categories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, categoriesResponse{Categories: s.search.Categories(r.Context())})
}

// RelatedTerms handles GET /api/v1/search/related.
func (s *Server) RelatedTerms(w http.ResponseWriter, r *http.Request) {
	terms, err := s.search.RelatedTerms(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, relatedTermsResponse{RelatedTerms: terms})
}

// GenerateQuote handles POST /api/v1/quotes.
func (s *Server) GenerateQuote(w http.ResponseWriter, r *http.Request) {
	var req quoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CustomerID == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "customer_id is required")
		return
	}

	q, err := s.pricing.GenerateQuote(r.Context(), req.CustomerID, lineQuantities(req.Items))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, quoteToResponse(q))
}

// PlaceOrder handles POST /api/v1/orders.
func (s *Server) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if req.CustomerID == "" {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "customer_id is required")
		return
	}

	o, err := s.pricing.PlaceOrder(r.Context(), req.CustomerID, lineQuantities(req.Items))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, orderToResponse(o))
}

// GetOrder handles GET /api/v1/orders/{id}.
func (s *Server) GetOrder(w http.ResponseWriter, r *http.Request) {
	o, err := s.pricing.GetOrder(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderToResponse(o))
}

// UpdateOrderStatus handles PUT /api/v1/orders/{id}/status.
func (s *Server) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	o, err := s.pricing.UpdateOrderStatus(r.Context(), chi.URLParam(r, "id"), req.Status)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, orderToResponse(o))
}

// UpsertProduct handles PUT /api/v1/products/{id}.
func (s *Server) UpsertProduct(w http.ResponseWriter, r *http.Request) {
	var req productRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	price, err := decimal.NewFromString(req.BasePrice)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "base_price must be a decimal string")
		return
	}

	p, err := s.catalog.UpsertProduct(
		r.Context(), chi.URLParam(r, "id"), req.Name, req.Description, req.Stock, price)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(p))
}

// GetProduct handles GET /api/v1/products/{id}.
func (s *Server) GetProduct(w http.ResponseWriter, r *http.Request) {
	p, err := s.catalog.GetProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, productToResponse(p))
}

// UpsertCustomer handles PUT /api/v1/customers/{id}.
func (s *Server) UpsertCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}

	c, err := s.catalog.UpsertCustomer(
		r.Context(), chi.URLParam(r, "id"), req.Name, req.Email, req.CustomerType)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customerToResponse(c))
}

// GetCustomer handles GET /api/v1/customers/{id}.
func (s *Server) GetCustomer(w http.ResponseWriter, r *http.Request) {
	c, err := s.catalog.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customerToResponse(c))
}

// UpsertRule handles PUT /api/v1/rules/{id}.
func (s *Server) UpsertRule(w http.ResponseWriter, r *http.Request) {
	var req ruleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, CodeBadRequest, "Invalid request body: "+err.Error())
		return
	}
	pct, err := decimal.NewFromString(req.DiscountPercentage)
	if err != nil {
		writeError(w, http.StatusBadRequest, CodeValidationFailed, "discount_percentage must be a decimal string")
		return
	}
	var minimum *decimal.Decimal
	if req.MinimumOrderAmount != nil {
		m, err := decimal.NewFromString(*req.MinimumOrderAmount)
		if err != nil {
			writeError(w, http.StatusBadRequest, CodeValidationFailed, "minimum_order_amount must be a decimal string")
			return
		}
		minimum = &m
	}

	rule, err := s.catalog.UpsertRule(
		r.Context(), chi.URLParam(r, "id"), req.CustomerType, pct, minimum, req.Active, req.Description)
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ruleToResponse(rule))
}

// GetRule handles GET /api/v1/rules/{id}.
func (s *Server) GetRule(w http.ResponseWriter, r *http.Request) {
	rule, err := s.catalog.GetRule(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, ruleToResponse(rule))
}

// Health handles GET /health.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	report := s.health.Check(r.Context())

	status := http.StatusOK
	if report.Status != healthuc.Healthy {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, map[string]any{
		"status": report.Status,
		"checks": report.Checks,
	})
}

// Metrics handles GET /metrics.
func (s *Server) Metrics(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// boundedQueryInt reads an integer query parameter, falling back to def when
// absent or unparsable, and clamping into [min, max].
func boundedQueryInt(r *http.Request, name string, def, min, max int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code ErrorCode, message string) {
	writeJSON(w, status, ErrorResponse{
		Code:    code,
		Message: message,
	})
}

// safeDomainMessage returns a client-safe message without exposing internals.
func safeDomainMessage(err error) string {
	sentinels := []error{
		domain.ErrProductNotFound,
		domain.ErrCustomerNotFound,
		domain.ErrOrderNotFound,
		domain.ErrRuleNotFound,
		domain.ErrValidation,
		domain.ErrInsufficientStock,
		domain.ErrDuplicateEmail,
		domain.ErrInvalidOrderStatus,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			var ise *domain.InsufficientStockError
			if errors.As(err, &ise) {
				return ise.Error()
			}
			return s.Error()
		}
	}
	return "internal error"
}

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int, code ErrorCode) errorHandler {
	return func(w http.ResponseWriter, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, status, code, msg)
		return true
	}
}

func (s *Server) handleDomainError(w http.ResponseWriter, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range s.errorHandlers {
		if h(w, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, http.StatusInternalServerError, CodeInternalError, "internal error")
}
