package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/models"
)

// GetProducts serves the product list from the in-memory catalog. Supports
// ?search=, ?category_id= and ?low_stock=true; filters combine left to right
// on the cache, no storage reads.
func (h *Handler) GetProducts(c *gin.Context) {
	if c.Query("low_stock") == "true" {
		c.JSON(http.StatusOK, h.Catalog.LowStockProducts())
		return
	}
	if catID := c.Query("category_id"); catID != "" {
		id, err := strconv.Atoi(catID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid category_id"})
			return
		}
		c.JSON(http.StatusOK, h.Catalog.ProductsByCategory(id))
		return
	}
	c.JSON(http.StatusOK, h.Catalog.SearchProducts(c.Query("search")))
}

func (h *Handler) GetProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	p := h.Catalog.Product(id)
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, p)
}

// ScanProduct resolves a barcode into a product, for the scanner flow.
func (h *Handler) ScanProduct(c *gin.Context) {
	p := h.Catalog.FindByBarcode(c.Param("barcode"))
	if p == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No product with that barcode"})
		return
	}
	c.JSON(http.StatusOK, p)
}

func (h *Handler) AddProduct(c *gin.Context) {
	var p models.Product
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if p.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	if p.Price < 0 || p.Stock < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Price and stock must not be negative"})
		return
	}
	p.CreatedBy = currentUsername(c)

	created, err := h.Catalog.CreateProduct(c.Request.Context(), p)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}

	updated, err := h.Catalog.UpdateProduct(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update product"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated successfully", "product": updated})
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := h.Catalog.DeleteProduct(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete product"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

type StockRequest struct {
	Delta int `json:"delta" binding:"required"`
}

// AdjustStock applies a signed delta (restock or correction).
func (h *Handler) AdjustStock(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req StockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	updated, err := h.Catalog.UpdateStock(c.Request.Context(), id, req.Delta)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RefreshCatalog rebuilds the cache from storage, the pull-to-refresh path.
func (h *Handler) RefreshCatalog(c *gin.Context) {
	if err := h.Catalog.Refresh(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": h.Catalog.LastError()})
		return
	}
	h.Catalog.ClearError()
	c.JSON(http.StatusOK, gin.H{"message": "Catalog refreshed"})
}
