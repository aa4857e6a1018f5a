package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/middleware"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// PaymentController handles checkout, payment status and the Stripe webhook.
type PaymentController struct {
	service services.PaymentService
	logger  *zap.Logger
}

// NewPaymentController creates a new PaymentController.
func NewPaymentController(service services.PaymentService, logger *zap.Logger) *PaymentController {
	return &PaymentController{service: service, logger: logger}
}

// CreateCheckout opens a checkout session for a car.
// POST /api/payments/checkout (form field car_id)
func (pc *PaymentController) CreateCheckout(c *gin.Context) {
	carID := c.PostForm("car_id")
	if carID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "car_id is required"})
		return
	}

	origin := requestOrigin(c)
	userID := middleware.GetUserID(c)

	resp, svcErr := pc.service.CreateCheckout(c.Request.Context(), carID, userID, origin)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetPaymentStatus reconciles a session against the provider and returns the
// provider-side view. Public: a session id doubles as a receipt lookup token.
// GET /api/payments/status/:sessionId
func (pc *PaymentController) GetPaymentStatus(c *gin.Context) {
	resp, svcErr := pc.service.GetPaymentStatus(c.Request.Context(), c.Param("sessionId"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// StripeWebhook accepts provider callbacks. Signature verification and
// payload handling are intentionally not implemented; reconciliation happens
// through the status endpoint.
// POST /api/webhook/stripe
func (pc *PaymentController) StripeWebhook(c *gin.Context) {
	pc.logger.Info("Stripe webhook received",
		zap.Bool("signature_present", c.GetHeader("Stripe-Signature") != ""),
	)
	c.JSON(http.StatusOK, gin.H{"status": "success"})
}

// requestOrigin rebuilds the caller-facing base URL for redirect targets.
func requestOrigin(c *gin.Context) string {
	scheme := "http"
	if c.Request.TLS != nil || c.GetHeader("X-Forwarded-Proto") == "https" {
		scheme = "https"
	}
	return scheme + "://" + c.Request.Host
}
