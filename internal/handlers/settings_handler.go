package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/models"
)

func (h *Handler) GetSettings(c *gin.Context) {
	c.JSON(http.StatusOK, h.Settings.Get())
}

func (h *Handler) UpdateSettings(c *gin.Context) {
	var in models.AppSettings
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	updated, err := h.Settings.Update(c.Request.Context(), in)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save settings"})
		return
	}
	c.JSON(http.StatusOK, updated)
}
