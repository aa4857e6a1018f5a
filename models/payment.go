package models

import (
	"time"

	"github.com/google/uuid"
)

// Payment status values for a transaction. pending is the only non-terminal
// state; paid, failed and expired are terminal.
const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"
	PaymentStatusExpired = "expired"
)

// PaymentTransaction is the durable record of a single checkout session.
// Exactly one transaction exists per Stripe session id; the metadata snapshot
// captures car and user facts at session-creation time so the audit trail is
// independent of later mutation.
type PaymentTransaction struct {
	TransactionID string            `bson:"transaction_id" json:"transaction_id"`
	SessionID     string            `bson:"session_id" json:"session_id"`
	UserID        string            `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CarID         string            `bson:"car_id" json:"car_id"`
	Amount        float64           `bson:"amount" json:"amount"`
	Currency      string            `bson:"currency" json:"currency"`
	PaymentStatus string            `bson:"payment_status" json:"payment_status"`
	Metadata      map[string]string `bson:"metadata" json:"metadata"`
	CreatedAt     time.Time         `bson:"created_at" json:"created_at"`
}

// NewPaymentTransaction returns a pending transaction for a freshly created
// checkout session.
func NewPaymentTransaction(sessionID, userID, carID string, amount float64, currency string, metadata map[string]string) *PaymentTransaction {
	return &PaymentTransaction{
		TransactionID: uuid.NewString(),
		SessionID:     sessionID,
		UserID:        userID,
		CarID:         carID,
		Amount:        amount,
		Currency:      currency,
		PaymentStatus: PaymentStatusPending,
		Metadata:      metadata,
		CreatedAt:     time.Now().UTC(),
	}
}

// CheckoutResponse is returned to the client after a session is created.
type CheckoutResponse struct {
	URL       string `json:"url"`
	SessionID string `json:"session_id"`
}

// PaymentStatusResponse mirrors the provider-side view of a session. The
// provider is the source of truth; these fields are returned verbatim from
// the gateway on every status call.
type PaymentStatusResponse struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"payment_status"`
	AmountTotal   int64  `json:"amount_total"`
	Currency      string `json:"currency"`
}
