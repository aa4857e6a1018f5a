package services

import (
	"context"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
)

// OrderService handles order placement and listing. Orders are recorded
// independently of payment transactions.
type OrderService interface {
	CreateOrder(ctx context.Context, userID string, req *models.OrderRequest) (*models.Order, *ServiceError)
	ListUserOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError)
	ListAllOrders(ctx context.Context) ([]models.Order, *ServiceError)
}

type orderServiceImpl struct {
	orderRepo repository.OrderRepository
	carRepo   repository.CarRepository
	logger    *zap.Logger
}

// NewOrderService creates a new OrderService.
func NewOrderService(orderRepo repository.OrderRepository, carRepo repository.CarRepository, logger *zap.Logger) OrderService {
	return &orderServiceImpl{orderRepo: orderRepo, carRepo: carRepo, logger: logger}
}

// CreateOrder places an order for an available car. The total amount
// snapshots the car's price at order time.
func (s *orderServiceImpl) CreateOrder(ctx context.Context, userID string, req *models.OrderRequest) (*models.Order, *ServiceError) {
	car, err := s.carRepo.FindByID(ctx, req.CarID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Car not available"}
		}
		s.logger.Error("Failed to load car for order", zap.String("car_id", req.CarID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}
	if car.Status != models.CarStatusAvailable {
		return nil, &ServiceError{StatusCode: http.StatusBadRequest, Message: "Car not available"}
	}

	order := req.ToOrder(userID, car.Price)
	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("Failed to create order", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create order"}
	}

	s.logger.Info("Order created",
		zap.String("order_id", order.OrderID),
		zap.String("car_id", order.CarID),
		zap.String("user_id", userID),
	)
	return order, nil
}

func (s *orderServiceImpl) ListUserOrders(ctx context.Context, userID string) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.FindByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("Failed to list orders", zap.String("user_id", userID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to list orders"}
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}

func (s *orderServiceImpl) ListAllOrders(ctx context.Context) ([]models.Order, *ServiceError) {
	orders, err := s.orderRepo.FindAll(ctx)
	if err != nil {
		s.logger.Error("Failed to list all orders", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to list orders"}
	}
	if orders == nil {
		orders = []models.Order{}
	}
	return orders, nil
}
