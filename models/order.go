package models

import (
	"time"

	"github.com/google/uuid"
)

// Order status values.
const (
	OrderStatusPending   = "pending"
	OrderStatusConfirmed = "confirmed"
	OrderStatusCompleted = "completed"
	OrderStatusCancelled = "cancelled"
)

// Order is a purchase request for a car. Orders are recorded independently of
// payment transactions; the two kinds are deliberately not joined.
type Order struct {
	OrderID         string    `bson:"order_id" json:"order_id"`
	UserID          string    `bson:"user_id" json:"user_id"`
	CarID           string    `bson:"car_id" json:"car_id"`
	CustomerName    string    `bson:"customer_name" json:"customer_name"`
	CustomerEmail   string    `bson:"customer_email" json:"customer_email"`
	CustomerPhone   string    `bson:"customer_phone" json:"customer_phone"`
	CustomerAddress string    `bson:"customer_address" json:"customer_address"`
	FinancingNeeded bool      `bson:"financing_needed" json:"financing_needed"`
	PaymentMethod   string    `bson:"payment_method" json:"payment_method"`
	OrderStatus     string    `bson:"order_status" json:"order_status"`
	TotalAmount     float64   `bson:"total_amount" json:"total_amount"`
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
}

// OrderRequest is the payload for placing an order.
type OrderRequest struct {
	CarID           string `json:"car_id" binding:"required"`
	CustomerName    string `json:"customer_name" binding:"required"`
	CustomerEmail   string `json:"customer_email" binding:"required,email"`
	CustomerPhone   string `json:"customer_phone" binding:"required"`
	CustomerAddress string `json:"customer_address" binding:"required"`
	FinancingNeeded bool   `json:"financing_needed"`
	PaymentMethod   string `json:"payment_method" binding:"required"`
}

// ToOrder builds a pending order; user id and total amount are filled in by
// the service from the authenticated user and the car's current price.
func (r *OrderRequest) ToOrder(userID string, totalAmount float64) *Order {
	return &Order{
		OrderID:         uuid.NewString(),
		UserID:          userID,
		CarID:           r.CarID,
		CustomerName:    r.CustomerName,
		CustomerEmail:   r.CustomerEmail,
		CustomerPhone:   r.CustomerPhone,
		CustomerAddress: r.CustomerAddress,
		FinancingNeeded: r.FinancingNeeded,
		PaymentMethod:   r.PaymentMethod,
		OrderStatus:     OrderStatusPending,
		TotalAmount:     totalAmount,
		CreatedAt:       time.Now().UTC(),
	}
}
