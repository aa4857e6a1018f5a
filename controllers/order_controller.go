package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/middleware"
	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// OrderController handles order endpoints.
type OrderController struct {
	service services.OrderService
}

// NewOrderController creates a new OrderController.
func NewOrderController(service services.OrderService) *OrderController {
	return &OrderController{service: service}
}

// CreateOrder places an order for an available car.
// POST /api/orders
func (oc *OrderController) CreateOrder(c *gin.Context) {
	var req models.OrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	order, svcErr := oc.service.CreateOrder(c.Request.Context(), middleware.GetUserID(c), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order created successfully", "order_id": order.OrderID})
}

// ListOrders returns the authenticated user's orders.
// GET /api/orders
func (oc *OrderController) ListOrders(c *gin.Context) {
	orders, svcErr := oc.service.ListUserOrders(c.Request.Context(), middleware.GetUserID(c))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// ListAllOrders returns every order. Admin only.
// GET /api/admin/orders
func (oc *OrderController) ListAllOrders(c *gin.Context) {
	orders, svcErr := oc.service.ListAllOrders(c.Request.Context())
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, orders)
}
