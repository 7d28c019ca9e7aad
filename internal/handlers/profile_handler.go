package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/models"
)

func (h *Handler) GetCompanyProfile(c *gin.Context) {
	profile, err := h.Profile.Get(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch company profile"})
		return
	}
	if profile == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No company profile saved yet"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveCompanyProfile merges onto the existing singleton or creates it.
func (h *Handler) SaveCompanyProfile(c *gin.Context) {
	var profile models.CompanyProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if profile.Name == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Name is required"})
		return
	}
	saved, err := h.Profile.Save(c.Request.Context(), profile)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save company profile"})
		return
	}
	c.JSON(http.StatusOK, saved)
}

// UpdateCompanyProfile patches the existing profile; it never creates one.
func (h *Handler) UpdateCompanyProfile(c *gin.Context) {
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	updated, err := h.Profile.Update(c.Request.Context(), patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update company profile"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "No company profile saved yet"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
