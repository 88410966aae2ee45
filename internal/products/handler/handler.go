package handler

import (
	"errors"
	"net/http"

	"marketplace-server/internal/observability"
	"marketplace-server/internal/products/processor"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type Handler struct {
	processor processor.ProductProcessor
	logger    *observability.Logger
}

func New(processor processor.ProductProcessor, logger *observability.Logger) Handler {
	return Handler{
		processor: processor,
		logger:    logger,
	}
}

// ProductRequest is the body of product create and update calls.
type ProductRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Category    string `json:"category" binding:"required"`
	Subcategory string `json:"subcategory"`
	Image       string `json:"image"`
}

func (r ProductRequest) params() processor.ProductParams {
	return processor.ProductParams{
		Name:        r.Name,
		Description: r.Description,
		Category:    r.Category,
		Subcategory: r.Subcategory,
		Image:       r.Image,
	}
}

func (h *Handler) vendorFromContext(c *gin.Context) (uuid.UUID, bool) {
	ctx := c.Request.Context()

	vendorIDStr, exists := c.Get("Vendor-ID")
	if !exists {
		h.logger.Error(ctx, "vendor ID not found in context", nil)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return uuid.Nil, false
	}

	vendorID, err := uuid.Parse(vendorIDStr.(string))
	if err != nil {
		h.logger.Error(ctx, "failed to parse vendor ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid vendor id"})
		return uuid.Nil, false
	}
	return vendorID, true
}

func (h *Handler) productIDFromPath(c *gin.Context) (uuid.UUID, bool) {
	productID, err := uuid.Parse(c.Param("product_id"))
	if err != nil {
		h.logger.Error(c.Request.Context(), "failed to parse product ID", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return uuid.Nil, false
	}
	return productID, true
}

func (h *Handler) HandleCreateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind product request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
		return
	}

	product, err := h.processor.CreateProduct(ctx, vendorID, req.params())
	if err != nil {
		h.logger.Error(ctx, "failed to create product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create product"})
		return
	}

	c.JSON(http.StatusCreated, product)
}

func (h *Handler) HandleGetProduct(c *gin.Context) {
	ctx := c.Request.Context()

	productID, ok := h.productIDFromPath(c)
	if !ok {
		return
	}

	product, err := h.processor.GetProduct(ctx, productID)
	if err != nil {
		if errors.Is(err, processor.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		h.logger.Error(ctx, "failed to get product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to get product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *Handler) HandleListProducts(c *gin.Context) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}

	products, err := h.processor.ListProducts(ctx, vendorID)
	if err != nil {
		h.logger.Error(ctx, "failed to list products", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list products"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": products})
}

func (h *Handler) HandleUpdateProduct(c *gin.Context) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}
	productID, ok := h.productIDFromPath(c)
	if !ok {
		return
	}

	var req ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error(ctx, "failed to bind product request", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "name and category are required"})
		return
	}

	product, err := h.processor.UpdateProduct(ctx, vendorID, productID, req.params())
	if err != nil {
		if errors.Is(err, processor.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if errors.Is(err, processor.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "product belongs to another vendor"})
			return
		}
		h.logger.Error(ctx, "failed to update product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to update product"})
		return
	}

	c.JSON(http.StatusOK, product)
}

func (h *Handler) HandleDeleteProduct(c *gin.Context) {
	ctx := c.Request.Context()

	vendorID, ok := h.vendorFromContext(c)
	if !ok {
		return
	}
	productID, ok := h.productIDFromPath(c)
	if !ok {
		return
	}

	if err := h.processor.DeleteProduct(ctx, vendorID, productID); err != nil {
		if errors.Is(err, processor.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		if errors.Is(err, processor.ErrUnauthorized) {
			c.JSON(http.StatusForbidden, gin.H{"error": "product belongs to another vendor"})
			return
		}
		h.logger.Error(ctx, "failed to delete product", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to delete product"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
