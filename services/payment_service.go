package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
)

// PaymentService orchestrates the order-to-payment-confirmation pipeline:
// checkout session creation, status reconciliation against the provider, and
// the confirmation side effects applied on the first observed transition to
// paid.
type PaymentService interface {
	CreateCheckout(ctx context.Context, carID, userID, origin string) (*models.CheckoutResponse, *ServiceError)
	GetPaymentStatus(ctx context.Context, sessionID string) (*models.PaymentStatusResponse, *ServiceError)
}

type paymentServiceImpl struct {
	gateway  CheckoutGateway
	txRepo   repository.TransactionRepository
	carRepo  repository.CarRepository
	userRepo repository.UserRepository
	notifier Notifier
	logger   *zap.Logger
}

// NewPaymentService creates a new PaymentService.
func NewPaymentService(
	gateway CheckoutGateway,
	txRepo repository.TransactionRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	notifier Notifier,
	logger *zap.Logger,
) PaymentService {
	return &paymentServiceImpl{
		gateway:  gateway,
		txRepo:   txRepo,
		carRepo:  carRepo,
		userRepo: userRepo,
		notifier: notifier,
		logger:   logger,
	}
}

// CreateCheckout opens a checkout session for a car and records a pending
// transaction keyed by the provider's session id. The car's status is not
// re-validated here; availability is enforced when the order is placed.
func (s *paymentServiceImpl) CreateCheckout(ctx context.Context, carID, userID, origin string) (*models.CheckoutResponse, *ServiceError) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
		}
		s.logger.Error("Failed to load car for checkout", zap.String("car_id", carID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load car"}
	}

	successURL := origin + "/payment-success?session_id={CHECKOUT_SESSION_ID}"
	cancelURL := origin + "/payment-cancel"

	metadata := map[string]string{
		"car_id":    car.CarID,
		"user_id":   userID,
		"car_make":  car.Make,
		"car_model": car.Model,
		"car_year":  strconv.Itoa(car.Year),
	}

	sess, err := s.gateway.CreateSession(ctx, &CheckoutSessionRequest{
		Amount:      car.Price,
		Currency:    "usd",
		ProductName: fmt.Sprintf("%d %s %s", car.Year, car.Make, car.Model),
		SuccessURL:  successURL,
		CancelURL:   cancelURL,
		Metadata:    metadata,
	})
	if err != nil {
		s.logger.Error("Failed to create checkout session", zap.String("car_id", carID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create checkout session"}
	}

	tx := models.NewPaymentTransaction(sess.SessionID, userID, car.CarID, car.Price, "usd", metadata)
	if err := s.txRepo.Insert(ctx, tx); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, &ServiceError{StatusCode: http.StatusConflict, Message: "Checkout session already recorded"}
		}
		s.logger.Error("Failed to record payment transaction",
			zap.String("session_id", sess.SessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to record payment transaction"}
	}

	s.logger.Info("Checkout session created",
		zap.String("session_id", sess.SessionID),
		zap.String("car_id", car.CarID),
		zap.String("user_id", userID),
	)

	return &models.CheckoutResponse{URL: sess.URL, SessionID: sess.SessionID}, nil
}

// GetPaymentStatus reconciles a transaction against the provider. The
// provider is the source of truth: the fetched fields are returned verbatim.
// When the status first transitions to paid, confirmation side effects run
// exactly once, gated by a conditional status write keyed on the previously
// stored status — concurrent reconciliations race on that write and only the
// winner applies the side effects.
func (s *paymentServiceImpl) GetPaymentStatus(ctx context.Context, sessionID string) (*models.PaymentStatusResponse, *ServiceError) {
	tx, err := s.txRepo.FindBySessionID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Payment transaction not found"}
		}
		s.logger.Error("Failed to load payment transaction", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load payment transaction"}
	}

	status, err := s.gateway.GetStatus(ctx, sessionID)
	if err != nil {
		if errors.Is(err, ErrGatewayNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Checkout session not found"}
		}
		s.logger.Error("Failed to fetch checkout status", zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Payment gateway unavailable"}
	}

	resp := &models.PaymentStatusResponse{
		Status:        status.Status,
		PaymentStatus: status.PaymentStatus,
		AmountTotal:   status.AmountTotal,
		Currency:      status.Currency,
	}

	if status.PaymentStatus == tx.PaymentStatus {
		return resp, nil
	}

	if status.PaymentStatus == models.PaymentStatusPaid && tx.PaymentStatus != models.PaymentStatusPaid {
		modified, err := s.txRepo.TransitionStatus(ctx, sessionID, tx.PaymentStatus, models.PaymentStatusPaid)
		if err != nil {
			s.logger.Error("Failed to update payment status",
				zap.String("session_id", sessionID), zap.Error(err))
			return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update payment status"}
		}
		if modified == 1 {
			s.applyConfirmation(ctx, tx, status)
		} else {
			s.logger.Info("Skipping confirmation side effects, transition already applied",
				zap.String("session_id", sessionID))
		}
		return resp, nil
	}

	if _, err := s.txRepo.UpdateStatus(ctx, sessionID, status.PaymentStatus); err != nil {
		s.logger.Error("Failed to update payment status",
			zap.String("session_id", sessionID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update payment status"}
	}

	return resp, nil
}

// applyConfirmation runs the side effects of a confirmed payment: a sale
// notification and the available→sold inventory transition. Each step is
// independently best-effort; the paid status is already durable and is never
// rolled back from here.
func (s *paymentServiceImpl) applyConfirmation(ctx context.Context, tx *models.PaymentTransaction, status *CheckoutStatus) {
	car, err := s.carRepo.FindByID(ctx, tx.CarID)
	if err != nil {
		s.logger.Warn("Car lookup failed during confirmation, using metadata snapshot",
			zap.String("car_id", tx.CarID), zap.Error(err))
	}

	var user *models.User
	if tx.UserID != "" {
		user, err = s.userRepo.FindByID(ctx, tx.UserID)
		if err != nil {
			s.logger.Warn("User lookup failed during confirmation",
				zap.String("user_id", tx.UserID), zap.Error(err))
		}
	}

	s.notifier.Notify(ctx, buildSaleNotification(tx, car, user, status))

	modified, err := s.carRepo.MarkSold(ctx, tx.CarID)
	if err != nil {
		s.logger.Warn("Failed to mark car sold after confirmed payment",
			zap.String("car_id", tx.CarID),
			zap.String("session_id", tx.SessionID),
			zap.Error(err),
		)
		return
	}
	if modified == 0 {
		s.logger.Warn("Car not updated to sold, already sold or missing",
			zap.String("car_id", tx.CarID))
		return
	}

	s.logger.Info("Payment confirmed",
		zap.String("session_id", tx.SessionID),
		zap.String("car_id", tx.CarID),
	)
}

// buildSaleNotification renders the sale alert. Car details fall back to the
// metadata snapshot captured at session-creation time when the listing can no
// longer be loaded.
func buildSaleNotification(tx *models.PaymentTransaction, car *models.Car, user *models.User, status *CheckoutStatus) string {
	carMake, carModel, carYear := tx.Metadata["car_make"], tx.Metadata["car_model"], tx.Metadata["car_year"]
	price := tx.Amount
	if car != nil {
		carMake, carModel, carYear = car.Make, car.Model, strconv.Itoa(car.Year)
		price = car.Price
	}

	customerName, customerEmail, customerPhone := "N/A", "N/A", "N/A"
	if user != nil {
		customerName = user.FirstName + " " + user.LastName
		customerEmail = user.Email
		if user.Phone != "" {
			customerPhone = user.Phone
		}
	}

	return fmt.Sprintf(`🚗 *New Car Sale Alert!*

*Car Details:*
• Make: %s
• Model: %s
• Year: %s
• Price: %s

*Customer Info:*
• Name: %s
• Email: %s
• Phone: %s

*Payment:*
• Amount: %s
• Status: PAID ✅
• Session ID: %s

_Payment processed at %s UTC_`,
		carMake, carModel, carYear, formatUSD(price),
		customerName, customerEmail, customerPhone,
		formatUSD(float64(status.AmountTotal)/100), tx.SessionID,
		time.Now().UTC().Format("2006-01-02 15:04:05"),
	)
}
