package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ComplaintAnalytics returns complaint counts by status, zone and month.
func (h *Handler) ComplaintAnalytics(c *gin.Context) {
	result, err := h.Analytics.ComplaintAnalytics()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, result)
}

// OfficerDashboardAnalytics returns the aggregate dashboard figures.
func (h *Handler) OfficerDashboardAnalytics(c *gin.Context) {
	result, err := h.Analytics.OfficerDashboard()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
		return
	}
	c.JSON(http.StatusOK, result)
}
