package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// GetSalesReport serves the all-time dashboard numbers.
func (h *Handler) GetSalesReport(c *gin.Context) {
	summary, err := h.Reports.Summary(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build sales report"})
		return
	}
	c.JSON(http.StatusOK, summary)
}

// GetSalesRange serves ?start=YYYY-MM-DD&end=YYYY-MM-DD revenue totals. The
// end date is inclusive.
func (h *Handler) GetSalesRange(c *gin.Context) {
	start, err1 := time.Parse("2006-01-02", c.Query("start"))
	end, err2 := time.Parse("2006-01-02", c.Query("end"))
	if err1 != nil || err2 != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "start and end must be YYYY-MM-DD"})
		return
	}
	end = end.Add(24*time.Hour - time.Nanosecond)

	report, err := h.Reports.Range(c.Request.Context(), start, end)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to build range report"})
		return
	}
	c.JSON(http.StatusOK, report)
}

// GetStockValuation prices the inventory at cost, grouped by category.
func (h *Handler) GetStockValuation(c *gin.Context) {
	c.JSON(http.StatusOK, h.Reports.Valuation(c.Request.Context()))
}

// GetLowStockReport lists products at or below their minimum stock.
func (h *Handler) GetLowStockReport(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.LowStockProducts())
}
