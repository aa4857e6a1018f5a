package models

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessage is a store-and-forward message from the contact form.
type ContactMessage struct {
	MessageID string    `bson:"message_id" json:"message_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Subject   string    `bson:"subject" json:"subject"`
	Message   string    `bson:"message" json:"message"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}

// NewContactMessage returns a contact message with a generated id.
func NewContactMessage(name, email, phone, subject, message string) *ContactMessage {
	return &ContactMessage{
		MessageID: uuid.NewString(),
		Name:      name,
		Email:     email,
		Phone:     phone,
		Subject:   subject,
		Message:   message,
		CreatedAt: time.Now().UTC(),
	}
}

// Inquiry status values.
const (
	InquiryStatusNew        = "new"
	InquiryStatusContacted  = "contacted"
	InquiryStatusInterested = "interested"
	InquiryStatusClosed     = "closed"
)

// CarInquiry is a customer inquiry about a specific listing.
type CarInquiry struct {
	InquiryID              string    `bson:"inquiry_id" json:"inquiry_id"`
	CarID                  string    `bson:"car_id" json:"car_id"`
	CustomerName           string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail          string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone          string    `bson:"customer_phone" json:"customer_phone"`
	CustomerAddress        string    `bson:"customer_address" json:"customer_address"`
	Message                string    `bson:"message,omitempty" json:"message,omitempty"`
	FinancingNeeded        bool      `bson:"financing_needed" json:"financing_needed"`
	PreferredContactMethod string    `bson:"preferred_contact_method" json:"preferred_contact_method"`
	InquiryStatus          string    `bson:"inquiry_status" json:"inquiry_status"`
	CreatedAt              time.Time `bson:"created_at" json:"created_at"`
}

// InquiryRequest is the payload for submitting a car inquiry.
type InquiryRequest struct {
	CarID                  string `json:"car_id" binding:"required"`
	CustomerName           string `json:"customer_name" binding:"required"`
	CustomerEmail          string `json:"customer_email" binding:"required,email"`
	CustomerPhone          string `json:"customer_phone" binding:"required"`
	CustomerAddress        string `json:"customer_address"`
	Message                string `json:"message"`
	FinancingNeeded        bool   `json:"financing_needed"`
	PreferredContactMethod string `json:"preferred_contact_method" binding:"omitempty,oneof=email phone telegram"`
}

// ToInquiry builds a new inquiry in the "new" state.
func (r *InquiryRequest) ToInquiry() *CarInquiry {
	method := r.PreferredContactMethod
	if method == "" {
		method = "email"
	}
	return &CarInquiry{
		InquiryID:              uuid.NewString(),
		CarID:                  r.CarID,
		CustomerName:           r.CustomerName,
		CustomerEmail:          r.CustomerEmail,
		CustomerPhone:          r.CustomerPhone,
		CustomerAddress:        r.CustomerAddress,
		Message:                r.Message,
		FinancingNeeded:        r.FinancingNeeded,
		PreferredContactMethod: method,
		InquiryStatus:          InquiryStatusNew,
		CreatedAt:              time.Now().UTC(),
	}
}
