package chi

import (
	"time"

	domcust "github.com/kailas-cloud/storefront/internal/domain/customer"
	domorder "github.com/kailas-cloud/storefront/internal/domain/order"
	dompricing "github.com/kailas-cloud/storefront/internal/domain/pricing"
	domprod "github.com/kailas-cloud/storefront/internal/domain/product"
	"github.com/kailas-cloud/storefront/internal/domain/quote"
)

// ErrorCode identifies the error category on the wire.
type ErrorCode string

const (
	// CodeBadRequest is an unparsable or malformed request.
	CodeBadRequest ErrorCode = "bad_request"
	// CodeValidationFailed is a well-formed request rejected by the domain.
	CodeValidationFailed ErrorCode = "validation_failed"
	// CodeNotFound is a missing resource.
	CodeNotFound ErrorCode = "not_found"
	// CodeInternalError is an unexpected server-side failure.
	CodeInternalError ErrorCode = "internal_error"
)

// ErrorResponse is the JSON error envelope.
type ErrorResponse struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

type productRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Stock       int64  `json:"stock"`
	BasePrice   string `json:"base_price"`
}

type productResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Stock       int64  `json:"stock"`
	BasePrice   string `json:"base_price"`
}

func productToResponse(p domprod.Product) productResponse {
	return productResponse{
		ID:          p.ID(),
		Name:        p.Name(),
		Description: p.Description(),
		Stock:       p.Stock(),
		BasePrice:   p.BasePrice().String(),
	}
}

type customerRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	CustomerType string `json:"customer_type"`
}

type customerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	CustomerType string `json:"customer_type"`
}

func customerToResponse(c domcust.Customer) customerResponse {
	return customerResponse{
		ID:           c.ID(),
		Name:         c.Name(),
		Email:        c.Email(),
		CustomerType: string(c.CustomerType()),
	}
}

type ruleRequest struct {
	CustomerType       string  `json:"customer_type"`
	DiscountPercentage string  `json:"discount_percentage"`
	MinimumOrderAmount *string `json:"minimum_order_amount,omitempty"`
	Active             bool    `json:"active"`
	Description        string  `json:"description,omitempty"`
}

type ruleResponse struct {
	ID                 string  `json:"id"`
	CustomerType       string  `json:"customer_type"`
	DiscountPercentage string  `json:"discount_percentage"`
	MinimumOrderAmount *string `json:"minimum_order_amount,omitempty"`
	Active             bool    `json:"active"`
	Description        string  `json:"description,omitempty"`
}

func ruleToResponse(r dompricing.Rule) ruleResponse {
	resp := ruleResponse{
		ID:                 r.ID(),
		CustomerType:       string(r.CustomerType()),
		DiscountPercentage: r.DiscountPercentage().String(),
		Active:             r.Active(),
		Description:        r.Description(),
	}
	if min := r.MinimumOrderAmount(); min != nil {
		s := min.String()
		resp.MinimumOrderAmount = &s
	}
	return resp
}

type lineItem struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}

type quoteRequest struct {
	CustomerID string     `json:"customer_id"`
	Items      []lineItem `json:"items"`
}

type orderRequest struct {
	CustomerID string     `json:"customer_id"`
	Items      []lineItem `json:"items"`
}

type quoteItemResponse struct {
	ProductID       string `json:"product_id"`
	ProductName     string `json:"product_name"`
	Quantity        int64  `json:"quantity"`
	BasePrice       string `json:"base_price"`
	DiscountedPrice string `json:"discounted_price"`
	DiscountAmount  string `json:"discount_amount"`
	LineTotal       string `json:"line_total"`
}

type quoteResponse struct {
	CustomerID         string              `json:"customer_id"`
	CustomerType       string              `json:"customer_type"`
	Items              []quoteItemResponse `json:"items"`
	Subtotal           string              `json:"subtotal"`
	AdditionalDiscount string              `json:"additional_discount"`
	Total              string              `json:"total"`
	GeneratedAt        time.Time           `json:"generated_at"`
}

func quoteToResponse(q quote.Quote) quoteResponse {
	items := make([]quoteItemResponse, len(q.Items()))
	for i, it := range q.Items() {
		items[i] = quoteItemResponse{
			ProductID:       it.ProductID(),
			ProductName:     it.ProductName(),
			Quantity:        it.Quantity(),
			BasePrice:       it.BasePrice().String(),
			DiscountedPrice: it.DiscountedPrice().String(),
			DiscountAmount:  it.DiscountAmount().String(),
			LineTotal:       it.LineTotal().String(),
		}
	}
	return quoteResponse{
		CustomerID:         q.CustomerID(),
		CustomerType:       string(q.CustomerType()),
		Items:              items,
		Subtotal:           q.Subtotal().String(),
		AdditionalDiscount: q.AdditionalDiscount().String(),
		Total:              q.Total().String(),
		GeneratedAt:        q.GeneratedAt(),
	}
}

type orderItemResponse struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int64  `json:"quantity"`
	UnitPrice   string `json:"unit_price"`
}

type orderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customer_id"`
	Status      string              `json:"status"`
	TotalAmount string              `json:"total_amount"`
	Items       []orderItemResponse `json:"items"`
	CreatedAt   time.Time           `json:"created_at"`
}

func orderToResponse(o domorder.Order) orderResponse {
	items := make([]orderItemResponse, len(o.Items()))
	for i, it := range o.Items() {
		items[i] = orderItemResponse{
			ProductID:   it.ProductID(),
			ProductName: it.ProductName(),
			Quantity:    it.Quantity(),
			UnitPrice:   it.UnitPrice().String(),
		}
	}
	return orderResponse{
		ID:          o.ID(),
		CustomerID:  o.CustomerID(),
		Status:      string(o.Status()),
		TotalAmount: o.TotalAmount().String(),
		Items:       items,
		CreatedAt:   o.CreatedAt(),
	}
}

type statusRequest struct {
	Status string `json:"status"`
}

type searchResponse struct {
	Results []productResponse `json:"results"`
}

type suggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

type categoriesResponse struct {
	Categories []string `json:"categories"`
}

type relatedTermsResponse struct {
	RelatedTerms []string `json:"related_terms"`
}

// lineQuantities converts request items into the engine's quantity map.
// Duplicate product ids accumulate.
func lineQuantities(items []lineItem) map[string]int64 {
	q := make(map[string]int64, len(items))
	for _, it := range items {
		q[it.ProductID] += it.Quantity
	}
	return q
}
