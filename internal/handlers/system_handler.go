package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"kasirpos/internal/utils"
)

// GetSystemStatus reports the terminal's device id and whether storage is
// reachable, for the support/diagnostics screen.
func (h *Handler) GetSystemStatus(c *gin.Context) {
	storageOK := true
	if h.StoragePing != nil {
		storageOK = h.StoragePing() == nil
	}
	c.JSON(http.StatusOK, gin.H{
		"device_id": utils.GetDeviceID(),
		"storage":   storageOK,
	})
}
