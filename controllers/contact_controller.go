package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// ContactController handles the contact form and car inquiries.
type ContactController struct {
	service services.ContactService
}

// NewContactController creates a new ContactController.
func NewContactController(service services.ContactService) *ContactController {
	return &ContactController{service: service}
}

// SubmitContact stores a contact-form message and forwards a notification.
// POST /api/contact (form fields)
func (cc *ContactController) SubmitContact(c *gin.Context) {
	name := c.PostForm("name")
	email := c.PostForm("email")
	subject := c.PostForm("subject")
	message := c.PostForm("message")
	if name == "" || email == "" || subject == "" || message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name, email, subject and message are required"})
		return
	}

	msg := models.NewContactMessage(name, email, c.PostForm("phone"), subject, message)
	if svcErr := cc.service.SubmitContactMessage(c.Request.Context(), msg); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent successfully"})
}

// SubmitInquiry stores a car inquiry.
// POST /api/inquiries
func (cc *ContactController) SubmitInquiry(c *gin.Context) {
	var req models.InquiryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	inquiry, svcErr := cc.service.SubmitInquiry(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Inquiry submitted successfully", "inquiry_id": inquiry.InquiryID})
}
