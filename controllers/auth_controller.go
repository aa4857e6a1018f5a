package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/middleware"
	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// AuthController handles registration, login and identity endpoints.
type AuthController struct {
	service services.AuthService
}

// NewAuthController creates a new AuthController.
func NewAuthController(service services.AuthService) *AuthController {
	return &AuthController{service: service}
}

// Register creates a new account.
// POST /api/auth/register
func (ac *AuthController) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	result, svcErr := ac.service.Register(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "User registered successfully",
		"token":   result.Token,
		"user_id": result.UserID,
	})
}

// Login authenticates with form fields email and password.
// POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	email := c.PostForm("email")
	password := c.PostForm("password")
	if email == "" || password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email and password are required"})
		return
	}

	result, svcErr := ac.service.Login(c.Request.Context(), email, password)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me returns the authenticated user's profile.
// GET /api/auth/me
func (ac *AuthController) Me(c *gin.Context) {
	userID := middleware.GetUserID(c)

	user, svcErr := ac.service.CurrentUser(c.Request.Context(), userID)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, user)
}
