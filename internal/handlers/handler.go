// Package handlers wires the HTTP surface to the services. Handlers are
// methods on one Handler struct so every dependency is injected from main;
// nothing here reaches for package globals.
package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/ai"
	"kasirpos/internal/catalog"
	"kasirpos/internal/config"
	"kasirpos/internal/receipt"
	"kasirpos/internal/services"
	"kasirpos/internal/settings"
	"kasirpos/internal/uploader"
)

type Handler struct {
	Cfg          *config.Config
	Catalog      *catalog.Catalog
	Cards        *services.PaymentCardService
	Profile      *services.CompanyProfileService
	Transactions *services.TransactionService
	Reports      *services.ReportService
	Users        *services.UserService
	Settings     *settings.Service
	Receipts     *receipt.Service
	Uploader     *uploader.Client // nil when no remote endpoint is configured
	Agent        *ai.Agent        // nil when GEMINI_API_KEY is absent
	StoragePing  func() error     // nil when the medium cannot be pinged
}

func idParam(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid id"})
		return 0, false
	}
	return id, true
}

func currentUsername(c *gin.Context) string {
	v, _ := c.Get("username")
	name, _ := v.(string)
	return name
}

// bindPatch reads a partial-update body. The id can never be patched.
func bindPatch(c *gin.Context) (map[string]any, bool) {
	var patch map[string]any
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return nil, false
	}
	delete(patch, "id")
	return patch, true
}
