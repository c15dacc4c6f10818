package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/internal/domain/dto"
	"github.com/floramar/flower-service/internal/domain/model"
	"github.com/floramar/flower-service/internal/service"
)

// CartHandler provides HTTP handlers for cart routes. The handlers validate
// at the API boundary (unknown products are 404s); inside the cart store all
// operations stay total and unknown IDs are silently ignored.
type CartHandler struct {
	carts   service.CartStore
	catalog service.CatalogProvider
}

// NewCartHandler creates a new CartHandler instance.
func NewCartHandler(carts service.CartStore, catalog service.CatalogProvider) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

// selectionsFromInput resolves selection inputs against the catalog.
// Unknown accessory IDs are dropped; normalization happens in the store.
func (h *CartHandler) selectionsFromInput(inputs []dto.SelectionInput) []model.AccessorySelection {
	selections := make([]model.AccessorySelection, 0, len(inputs))
	for _, in := range inputs {
		accessory, ok := h.catalog.Accessory(in.AccessoryID)
		if !ok {
			continue
		}
		selections = append(selections, model.AccessorySelection{
			Accessory: accessory,
			Quantity:  in.Quantity,
		})
	}
	return selections
}

// cartResponse builds the standard cart payload for mutation responses.
func (h *CartHandler) cartResponse(c *gin.Context, cartID string) dto.CartResponse {
	return dto.NewCartResponse(cartID, h.carts.Cart(c.Request.Context(), cartID))
}

// GetCart handles GET /api/carts/:id requests.
//
// @Summary      Get cart
// @Description  Returns the cart content and derived totals
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state"
// @Router       /api/carts/{id} [get]
func (h *CartHandler) GetCart(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.cartResponse(c, c.Param("id")))
}

// AddLine handles POST /api/carts/:id/lines requests.
//
// @Summary      Add product to cart
// @Description  Adds one unit of a product with an optional accessory bundle. An existing line with the same configuration is merged.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body dto.AddLineRequest true "Product and accessory bundle"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/carts/{id}/lines [post]
func (h *CartHandler) AddLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.AddLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	product, ok := h.catalog.Product(req.ProductID)
	if !ok {
		builder.Error(http.StatusNotFound, "Product not found", nil)
		return
	}

	cartID := c.Param("id")
	h.carts.AddLine(c.Request.Context(), cartID, product, h.selectionsFromInput(req.Selections))
	builder.SuccessOK(h.cartResponse(c, cartID))
}

// RemoveLine handles DELETE /api/carts/:id/lines/:lineID requests.
//
// @Summary      Remove cart line
// @Description  Removes the line if present; removing an unknown line is not an error
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        lineID path string true "Line ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state"
// @Router       /api/carts/{id}/lines/{lineID} [delete]
func (h *CartHandler) RemoveLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID := c.Param("id")
	h.carts.RemoveLine(c.Request.Context(), cartID, c.Param("lineID"))
	builder.SuccessOK(h.cartResponse(c, cartID))
}

// SetQuantity handles PUT /api/carts/:id/lines/:lineID/quantity requests.
//
// @Summary      Set cart line quantity
// @Description  Sets the line quantity to an absolute value; zero or below removes the line
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        lineID path string true "Line ID"
// @Param        request body dto.SetQuantityRequest true "New quantity"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Router       /api/carts/{id}/lines/{lineID}/quantity [put]
func (h *CartHandler) SetQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	cartID := c.Param("id")
	h.carts.SetQuantity(c.Request.Context(), cartID, c.Param("lineID"), req.Quantity)
	builder.SuccessOK(h.cartResponse(c, cartID))
}

// RemoveAccessory handles DELETE /api/carts/:id/products/:productID/accessories/:accessoryID requests.
//
// @Summary      Remove accessory from product lines
// @Description  Strips the accessory from every line of the product; lines are kept even when the bundle becomes empty
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        productID path string true "Product ID"
// @Param        accessoryID path string true "Accessory ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state"
// @Router       /api/carts/{id}/products/{productID}/accessories/{accessoryID} [delete]
func (h *CartHandler) RemoveAccessory(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID := c.Param("id")
	h.carts.RemoveAccessory(c.Request.Context(), cartID, c.Param("productID"), c.Param("accessoryID"))
	builder.SuccessOK(h.cartResponse(c, cartID))
}

// RemoveMostRecentLine handles DELETE /api/carts/:id/products/:productID/latest requests.
//
// @Summary      Decrement most recent line of a product
// @Description  Removes one unit from the most recently added line of the product
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        productID path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Cart state"
// @Router       /api/carts/{id}/products/{productID}/latest [delete]
func (h *CartHandler) RemoveMostRecentLine(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID := c.Param("id")
	h.carts.RemoveMostRecentLine(c.Request.Context(), cartID, c.Param("productID"))
	builder.SuccessOK(h.cartResponse(c, cartID))
}

// GetProductQuantity handles GET /api/carts/:id/products/:productID/quantity requests.
//
// @Summary      Get in-cart quantity of a product
// @Description  Sums the product's quantity across all cart lines
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        productID path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Quantity"
// @Router       /api/carts/{id}/products/{productID}/quantity [get]
func (h *CartHandler) GetProductQuantity(c *gin.Context) {
	builder := NewResponseBuilder(c)

	quantity := h.carts.QuantityOf(c.Request.Context(), c.Param("id"), c.Param("productID"))
	builder.SuccessOK(gin.H{"product_id": c.Param("productID"), "quantity": quantity})
}

// ClearCart handles DELETE /api/carts/:id requests.
//
// @Summary      Clear cart
// @Tags         Cart
// @Produce      json
// @Param        id path string true "Cart ID"
// @Success      200 {object} dto.SuccessResponse{data=dto.CartResponse} "Empty cart"
// @Router       /api/carts/{id} [delete]
func (h *CartHandler) ClearCart(c *gin.Context) {
	builder := NewResponseBuilder(c)

	cartID := c.Param("id")
	h.carts.Clear(c.Request.Context(), cartID)
	builder.SuccessOK(h.cartResponse(c, cartID))
}

// ResolveSelections handles POST /api/carts/:id/selections/resolve requests.
//
// @Summary      Adjust an accessory selection set
// @Description  Applies a quantity delta for one accessory to a selection set and returns the normalized result. Used by the accessory picker's +/- controls.
// @Tags         Cart
// @Accept       json
// @Produce      json
// @Param        id path string true "Cart ID"
// @Param        request body dto.ResolveSelectionsRequest true "Current set and adjustment"
// @Success      200 {object} dto.SuccessResponse "Normalized selection set"
// @Failure      400 {object} dto.ErrorResponse "Bad request"
// @Failure      404 {object} dto.ErrorResponse "Accessory not found"
// @Router       /api/carts/{id}/selections/resolve [post]
func (h *CartHandler) ResolveSelections(c *gin.Context) {
	builder := NewResponseBuilder(c)

	var req dto.ResolveSelectionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		builder.Error(http.StatusBadRequest, "Invalid request body", err)
		return
	}

	accessory, ok := h.catalog.Accessory(req.AccessoryID)
	if !ok {
		builder.Error(http.StatusNotFound, "Accessory not found", nil)
		return
	}

	resolved := service.ResolveSelections(h.selectionsFromInput(req.Current), accessory, req.Delta)
	builder.SuccessOK(gin.H{"selections": resolved})
}
