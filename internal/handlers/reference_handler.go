package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/models"
)

// Reference data (categories, sizes, suppliers) is served from the catalog
// cache and mutated through it so the cache never diverges from storage.

func (h *Handler) GetCategories(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Categories())
}

func (h *Handler) AddCategory(c *gin.Context) {
	var cat models.ProductCategory
	if err := c.ShouldBindJSON(&cat); err != nil || cat.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	created, err := h.Catalog.CreateCategory(c.Request.Context(), cat)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create category"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	updated, err := h.Catalog.UpdateCategory(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update category"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteCategory(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := h.Catalog.DeleteCategory(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete category"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Category not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Category deleted successfully"})
}

func (h *Handler) GetSizes(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Sizes())
}

func (h *Handler) AddSize(c *gin.Context) {
	var sz models.ProductSize
	if err := c.ShouldBindJSON(&sz); err != nil || sz.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	created, err := h.Catalog.CreateSize(c.Request.Context(), sz)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create size"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateSize(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	updated, err := h.Catalog.UpdateSize(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update size"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Size not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteSize(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := h.Catalog.DeleteSize(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete size"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Size not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Size deleted successfully"})
}

func (h *Handler) GetSuppliers(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.Suppliers())
}

func (h *Handler) AddSupplier(c *gin.Context) {
	var sup models.Supplier
	if err := c.ShouldBindJSON(&sup); err != nil || sup.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	created, err := h.Catalog.CreateSupplier(c.Request.Context(), sup)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create supplier"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdateSupplier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	updated, err := h.Catalog.UpdateSupplier(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update supplier"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteSupplier(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := h.Catalog.DeleteSupplier(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete supplier"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Supplier not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Supplier deleted successfully"})
}
