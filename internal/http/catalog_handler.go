package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/floramar/flower-service/internal/service"
)

// CatalogHandler provides HTTP handlers for catalog routes.
type CatalogHandler struct {
	catalog service.CatalogProvider
}

// NewCatalogHandler creates a new CatalogHandler instance.
func NewCatalogHandler(catalog service.CatalogProvider) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// GetCatalog handles GET /api/catalog requests.
//
// @Summary      Get full catalog
// @Description  Returns categories, products, and accessories
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Full catalog"
// @Router       /api/catalog [get]
func (h *CatalogHandler) GetCatalog(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(gin.H{
		"categories":  h.catalog.Categories(),
		"products":    h.catalog.Products(),
		"accessories": h.catalog.Accessories(),
	})
}

// GetProducts handles GET /api/catalog/products requests.
//
// @Summary      List products
// @Description  Returns all products, optionally filtered by category
// @Tags         Catalog
// @Produce      json
// @Param        category query string false "Category ID filter"
// @Success      200 {object} dto.SuccessResponse "Products"
// @Router       /api/catalog/products [get]
func (h *CatalogHandler) GetProducts(c *gin.Context) {
	builder := NewResponseBuilder(c)

	if categoryID := c.Query("category"); categoryID != "" {
		builder.SuccessOK(h.catalog.ProductsByCategory(categoryID))
		return
	}
	builder.SuccessOK(h.catalog.Products())
}

// GetProduct handles GET /api/catalog/products/:id requests.
//
// @Summary      Get one product
// @Tags         Catalog
// @Produce      json
// @Param        id path string true "Product ID"
// @Success      200 {object} dto.SuccessResponse "Product"
// @Failure      404 {object} dto.ErrorResponse "Product not found"
// @Router       /api/catalog/products/{id} [get]
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	builder := NewResponseBuilder(c)

	product, ok := h.catalog.Product(c.Param("id"))
	if !ok {
		builder.Error(http.StatusNotFound, "Product not found", nil)
		return
	}
	builder.SuccessOK(product)
}

// GetAccessories handles GET /api/catalog/accessories requests.
//
// @Summary      List accessories
// @Tags         Catalog
// @Produce      json
// @Success      200 {object} dto.SuccessResponse "Accessories"
// @Router       /api/catalog/accessories [get]
func (h *CatalogHandler) GetAccessories(c *gin.Context) {
	builder := NewResponseBuilder(c)
	builder.SuccessOK(h.catalog.Accessories())
}
