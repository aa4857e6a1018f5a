package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/controllers"
	"github.com/Bossbrown1770/AUTO-CAR/middleware"
	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// Controllers bundles every controller the router needs.
type Controllers struct {
	Auth    *controllers.AuthController
	Car     *controllers.CarController
	Order   *controllers.OrderController
	Payment *controllers.PaymentController
	Contact *controllers.ContactController
	Admin   *controllers.AdminController
}

// Register wires all API routes.
func Register(r *gin.Engine, ctrl *Controllers, tokens services.TokenService) {
	api := r.Group("/api")

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now().UTC()})
	})

	auth := api.Group("/auth")
	{
		auth.POST("/register", middleware.RateLimit(), ctrl.Auth.Register)
		auth.POST("/login", middleware.RateLimit(), ctrl.Auth.Login)
		auth.GET("/me", middleware.RequireAuth(tokens), ctrl.Auth.Me)
	}

	cars := api.Group("/cars")
	{
		cars.GET("", ctrl.Car.ListCars)
		cars.GET("/:carId", ctrl.Car.GetCar)

		adminOnly := cars.Group("", middleware.RequireAuth(tokens), middleware.RequireRole(models.RoleAdmin))
		adminOnly.POST("", ctrl.Car.CreateCar)
		adminOnly.PUT("/:carId", ctrl.Car.UpdateCar)
		adminOnly.DELETE("/:carId", ctrl.Car.DeleteCar)
	}

	orders := api.Group("/orders", middleware.RequireAuth(tokens))
	{
		orders.POST("", ctrl.Order.CreateOrder)
		orders.GET("", ctrl.Order.ListOrders)
	}

	payments := api.Group("/payments")
	{
		payments.POST("/checkout", middleware.RequireAuth(tokens), ctrl.Payment.CreateCheckout)
		// Public: the session id is the receipt lookup token.
		payments.GET("/status/:sessionId", ctrl.Payment.GetPaymentStatus)
	}

	api.POST("/webhook/stripe", ctrl.Payment.StripeWebhook)

	api.POST("/contact", ctrl.Contact.SubmitContact)
	api.POST("/inquiries", ctrl.Contact.SubmitInquiry)

	admin := api.Group("/admin", middleware.RequireAuth(tokens), middleware.RequireRole(models.RoleAdmin))
	{
		admin.GET("/dashboard", ctrl.Admin.Dashboard)
		admin.GET("/orders", ctrl.Order.ListAllOrders)
	}
}
