package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/models"
	"kasirpos/internal/receipt"
	"kasirpos/internal/services"
)

// Checkout processes a sale from the terminal cart.
func (h *Handler) Checkout(c *gin.Context) {
	var req services.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tx, items, err := h.Transactions.Checkout(c.Request.Context(), req, currentUsername(c))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Sale successful",
		"transaction": tx,
		"items":       items,
		"total":       tx.Total,
	})
}

func (h *Handler) GetTransactions(c *gin.Context) {
	transactions, err := h.Transactions.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}
	c.JSON(http.StatusOK, transactions)
}

func (h *Handler) GetTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tx, err := h.Transactions.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
		return
	}
	if tx == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	items, err := h.Transactions.ItemsByTransaction(c.Request.Context(), tx.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction items"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"transaction": tx, "items": items})
}

type StatusRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
}

func validStatus(s string) bool {
	return s == "" || s == models.StatusDraft || s == models.StatusCompleted || s == models.StatusCancelled
}

func validPaymentStatus(s string) bool {
	return s == "" || s == models.PaymentPending || s == models.PaymentPaid || s == models.PaymentCancelled
}

func (h *Handler) UpdateTransactionStatus(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var req StatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}
	if !validStatus(req.Status) || !validPaymentStatus(req.PaymentStatus) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown status value"})
		return
	}
	if req.Status == "" && req.PaymentStatus == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Nothing to update"})
		return
	}

	updated, err := h.Transactions.UpdateStatus(c.Request.Context(), id, req.Status, req.PaymentStatus)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}
	if updated == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *Handler) DeleteTransaction(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	removed, err := h.Transactions.Delete(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete transaction"})
		return
	}
	if !removed {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Transaction deleted successfully"})
}

// RenderReceipt returns the printable receipt text for one sale.
func (h *Handler) RenderReceipt(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	tx, err := h.Transactions.Get(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction"})
		return
	}
	if tx == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Transaction not found"})
		return
	}
	items, err := h.Transactions.ItemsByTransaction(c.Request.Context(), tx.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transaction items"})
		return
	}

	data := receipt.Data{Tx: *tx, Items: items}
	if profile, err := h.Profile.Get(c.Request.Context()); err == nil && profile != nil {
		data.Company = *profile
	}

	text, err := h.Receipts.Render(c.Request.Context(), data)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to render receipt"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"receipt": text})
}

func (h *Handler) GetReceiptTemplate(c *gin.Context) {
	text, err := h.Receipts.Template(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch receipt template"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"template": text})
}

type TemplateRequest struct {
	Template string `json:"template" binding:"required"`
}

func (h *Handler) SaveReceiptTemplate(c *gin.Context) {
	var req TemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Template is required"})
		return
	}
	if err := h.Receipts.SaveTemplate(c.Request.Context(), req.Template); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Template saved"})
}
