package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/internal/domain/dto"
	"github.com/floramar/flower-service/internal/metrics"
	"github.com/floramar/flower-service/internal/service"
)

// CheckoutHandler handles the order dispatch flow: validate the customer
// details, render the order message, build the WhatsApp link, and clear the
// cart. Clearing is unconditional; whether the customer's client actually
// opens the link is outside the service's control.
type CheckoutHandler struct {
	carts     service.CartStore
	formatter service.OrderFormatter
	shopPhone string
}

// NewCheckoutHandler creates a new CheckoutHandler instance. shopPhone is
// the destination WhatsApp number in international format without the plus
// sign.
func NewCheckoutHandler(carts service.CartStore, formatter service.OrderFormatter, shopPhone string) *CheckoutHandler {
	return &CheckoutHandler{
		carts:     carts,
		formatter: formatter,
		shopPhone: shopPhone,
	}
}

// Checkout handles POST /api/carts/:id/checkout requests.
//
// @Summary      Dispatch the cart as an order
// @Description  Validates the customer details, formats the order message, and returns the WhatsApp dispatch link. The cart is cleared.
// @Tags         Checkout
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body dto.CheckoutRequest true "Customer details"
// @Success      200 {object} dto.SuccessResponse{data=dto.CheckoutResponse} "Order message and dispatch URL"
// @Failure      400 {object} dto.ErrorResponse "Bad request or empty cart"
// @Failure      422 {object} dto.ErrorResponse "Customer details failed validation"
// @Router       /api/carts/{id}/checkout [post]
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("invalid").Inc()
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	details := req.Details()
	if err := details.Validate(); err != nil {
		metrics.CheckoutsTotal.WithLabelValues("invalid").Inc()
		builder.Error(http.StatusUnprocessableEntity, err.Error(), err)
		return
	}

	cartID := c.Param("id")
	cart := h.carts.Cart(c.Request.Context(), cartID)
	if cart.IsEmpty() {
		metrics.CheckoutsTotal.WithLabelValues("empty_cart").Inc()
		builder.Error(http.StatusBadRequest, "Cart is empty", nil)
		return
	}

	message := h.formatter.FormatOrder(cart, &details)
	dispatchURL := service.BuildDispatchURL(h.shopPhone, message)

	h.carts.Clear(c.Request.Context(), cartID)
	metrics.CheckoutsTotal.WithLabelValues("dispatched").Inc()

	builder.SuccessOK(dto.CheckoutResponse{
		Message:     message,
		WhatsAppURL: dispatchURL,
	})
}
