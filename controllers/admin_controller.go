package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// AdminController handles the admin dashboard.
type AdminController struct {
	service services.DashboardService
}

// NewAdminController creates a new AdminController.
func NewAdminController(service services.DashboardService) *AdminController {
	return &AdminController{service: service}
}

// Dashboard returns store-wide statistics.
// GET /api/admin/dashboard
func (ac *AdminController) Dashboard(c *gin.Context) {
	stats, svcErr := ac.service.GetStats(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, stats)
}
