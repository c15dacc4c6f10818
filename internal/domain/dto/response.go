package dto

import (
	"net/http"
	"time"

	"github.com/floramar/flower-service/internal/domain/model"
)

const (
	// ErrCodeInvalidRequest indicates an invalid request.
	ErrCodeInvalidRequest = "invalid_request"
	// ErrCodeInternal indicates an internal server error.
	ErrCodeInternal = "internal_error"
	// ErrCodeUnauthorized indicates a missing or invalid session token.
	ErrCodeUnauthorized = "unauthorized"
	// ErrCodeNotFound indicates a resource was not found.
	ErrCodeNotFound = "not_found"
	// ErrCodeRateLimit indicates rate limit exceeded.
	ErrCodeRateLimit = "rate_limit_exceeded"
	// ErrCodeValidation indicates checkout details failed validation.
	ErrCodeValidation = "validation_failed"
)

// SuccessResponse wraps successful API responses with metadata.
// @Description Successful API response wrapper
type SuccessResponse struct {
	// Data contains the actual response data
	Data interface{} `json:"data" swaggertype:"object"`
	// RequestID is the unique request identifier
	RequestID string `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Timestamp is when the response was generated
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name SuccessResponse

// ErrorResponse represents a standardized error response for the API.
// @Description Standardized error response
type ErrorResponse struct {
	Error     string    `json:"error" example:"invalid_request"`
	Message   string    `json:"message,omitempty" example:"phone must be exactly 8 digits"`
	RequestID string    `json:"request_id,omitempty" example:"550e8400-e29b-41d4-a716-446655440000"`
	Timestamp time.Time `json:"timestamp" example:"2025-01-28T10:00:00Z"`
} // @name ErrorResponse

// NewError creates a new ErrorResponse with the given code and message.
func NewError(code, message string) ErrorResponse {
	return ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now(),
	}
}

// WithRequestID adds a request ID to the error response.
func (e ErrorResponse) WithRequestID(requestID string) ErrorResponse {
	e.RequestID = requestID
	return e
}

// ErrCodeFromStatus returns the appropriate error code for an HTTP status.
func ErrCodeFromStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return ErrCodeInvalidRequest
	case http.StatusUnauthorized:
		return ErrCodeUnauthorized
	case http.StatusNotFound:
		return ErrCodeNotFound
	case http.StatusTooManyRequests:
		return ErrCodeRateLimit
	case http.StatusUnprocessableEntity:
		return ErrCodeValidation
	default:
		return ErrCodeInternal
	}
}

// CartResponse is the cart state returned after queries and mutations.
// @Description Cart state with derived totals
type CartResponse struct {
	CartID string `json:"cart_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Lines is the cart content in insertion order
	Lines []model.CartLine `json:"lines"`
	// TotalPrice is the aggregate price across all lines
	TotalPrice float64 `json:"total_price" example:"2400"`
	// TotalItems is the summed line quantities
	TotalItems int `json:"total_items" example:"2"`
} // @name CartResponse

// NewCartResponse builds a CartResponse from a cart snapshot.
func NewCartResponse(cartID string, cart model.Cart) CartResponse {
	return CartResponse{
		CartID:     cartID,
		Lines:      cart.Lines,
		TotalPrice: cart.TotalPrice(),
		TotalItems: cart.TotalItems(),
	}
}

// SessionResponse is returned when a new cart session is opened.
type SessionResponse struct {
	CartID string `json:"cart_id" example:"550e8400-e29b-41d4-a716-446655440000"`
	// Token is the signed session token bound to the cart
	Token string `json:"token"`
} // @name SessionResponse

// CheckoutResponse carries the formatted order and the dispatch link.
// @Description Formatted order message and WhatsApp dispatch URL
type CheckoutResponse struct {
	// Message is the full order summary text
	Message string `json:"message"`
	// WhatsAppURL is the wa.me link carrying the encoded message
	WhatsAppURL string `json:"whatsapp_url"`
} // @name CheckoutResponse
