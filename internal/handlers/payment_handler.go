package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/models"
)

func (h *Handler) GetPaymentCards(c *gin.Context) {
	cards, err := h.Cards.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch payment cards"})
		return
	}
	c.JSON(http.StatusOK, cards)
}

func (h *Handler) AddPaymentCard(c *gin.Context) {
	var card models.PaymentCard
	if err := c.ShouldBindJSON(&card); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if card.PaymentMethod == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Payment method is required"})
		return
	}
	created, err := h.Cards.Create(c.Request.Context(), card)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create payment card"})
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) UpdatePaymentCard(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	patch, ok := bindPatch(c)
	if !ok {
		return
	}
	updated, err := h.Cards.Update(c.Request.Context(), id, patch)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update payment card"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment card not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeletePaymentCard(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := h.Cards.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete payment card"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Payment card not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment card deleted successfully"})
}
