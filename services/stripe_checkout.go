package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/http"

	"github.com/stripe/stripe-go/v80"
	"github.com/stripe/stripe-go/v80/checkout/session"
)

var (
	// ErrGatewayUnavailable is returned when the payment provider is
	// unreachable or the client is misconfigured.
	ErrGatewayUnavailable = errors.New("payment gateway unavailable")
	// ErrGatewayNotFound is returned when the provider has no record of the
	// requested session.
	ErrGatewayNotFound = errors.New("payment session not found")
)

// CheckoutSessionRequest carries everything needed to open a checkout
// session: an amount in dollars, currency, redirect URLs and a metadata
// snapshot attached to the provider-side session.
type CheckoutSessionRequest struct {
	Amount      float64
	Currency    string
	ProductName string
	SuccessURL  string
	CancelURL   string
	Metadata    map[string]string
}

// CheckoutSession is the provider's handle for one checkout attempt.
type CheckoutSession struct {
	SessionID string
	URL       string
}

// CheckoutStatus is the provider-side view of a session. AmountTotal is in
// minor units (cents).
type CheckoutStatus struct {
	Status        string
	PaymentStatus string
	AmountTotal   int64
	Currency      string
}

// CheckoutGateway is a thin request/response adapter around the payment
// provider. It performs no retries; callers decide retry policy.
type CheckoutGateway interface {
	CreateSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error)
	GetStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error)
}

// StripeGateway implements CheckoutGateway using Stripe Checkout.
type StripeGateway struct {
	apiKey string
}

// NewStripeGateway creates a Stripe-backed checkout gateway. An empty API key
// is tolerated at construction; calls then fail with ErrGatewayUnavailable.
func NewStripeGateway(apiKey string) *StripeGateway {
	if apiKey != "" {
		stripe.Key = apiKey
	}
	return &StripeGateway{apiKey: apiKey}
}

func (g *StripeGateway) CreateSession(ctx context.Context, req *CheckoutSessionRequest) (*CheckoutSession, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrGatewayUnavailable)
	}

	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL: stripe.String(req.SuccessURL),
		CancelURL:  stripe.String(req.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(req.Currency),
					UnitAmount: stripe.Int64(toMinorUnits(req.Amount)),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ProductName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	sess, err := session.New(params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &CheckoutSession{SessionID: sess.ID, URL: sess.URL}, nil
}

func (g *StripeGateway) GetStatus(ctx context.Context, sessionID string) (*CheckoutStatus, error) {
	if g.apiKey == "" {
		return nil, fmt.Errorf("%w: missing API key", ErrGatewayUnavailable)
	}

	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, mapStripeError(err)
	}

	return &CheckoutStatus{
		Status:        string(sess.Status),
		PaymentStatus: string(sess.PaymentStatus),
		AmountTotal:   sess.AmountTotal,
		Currency:      string(sess.Currency),
	}, nil
}

// toMinorUnits converts a dollar amount to cents.
func toMinorUnits(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

func mapStripeError(err error) error {
	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripe.ErrorCodeResourceMissing {
			return fmt.Errorf("%w: %s", ErrGatewayNotFound, stripeErr.Msg)
		}
	}
	return fmt.Errorf("%w: %v", ErrGatewayUnavailable, err)
}
