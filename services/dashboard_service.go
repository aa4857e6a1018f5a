package services

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
)

// DashboardStats is the admin dashboard summary. Revenue is the sum of paid
// transaction amounts.
type DashboardStats struct {
	TotalCars     int64   `json:"total_cars"`
	AvailableCars int64   `json:"available_cars"`
	SoldCars      int64   `json:"sold_cars"`
	TotalUsers    int64   `json:"total_users"`
	TotalOrders   int64   `json:"total_orders"`
	TotalRevenue  float64 `json:"total_revenue"`
}

// DashboardService aggregates store-wide statistics for admins.
type DashboardService interface {
	GetStats(ctx context.Context) (*DashboardStats, *ServiceError)
}

type dashboardServiceImpl struct {
	carRepo   repository.CarRepository
	userRepo  repository.UserRepository
	orderRepo repository.OrderRepository
	txRepo    repository.TransactionRepository
	logger    *zap.Logger
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	orderRepo repository.OrderRepository,
	txRepo repository.TransactionRepository,
	logger *zap.Logger,
) DashboardService {
	return &dashboardServiceImpl{
		carRepo:   carRepo,
		userRepo:  userRepo,
		orderRepo: orderRepo,
		txRepo:    txRepo,
		logger:    logger,
	}
}

func (s *dashboardServiceImpl) GetStats(ctx context.Context) (*DashboardStats, *ServiceError) {
	stats := &DashboardStats{}
	var err error

	if stats.TotalCars, err = s.carRepo.Count(ctx); err != nil {
		return nil, s.fail(err)
	}
	if stats.AvailableCars, err = s.carRepo.CountByStatus(ctx, models.CarStatusAvailable); err != nil {
		return nil, s.fail(err)
	}
	if stats.SoldCars, err = s.carRepo.CountByStatus(ctx, models.CarStatusSold); err != nil {
		return nil, s.fail(err)
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, s.fail(err)
	}
	if stats.TotalOrders, err = s.orderRepo.Count(ctx); err != nil {
		return nil, s.fail(err)
	}
	if stats.TotalRevenue, err = s.txRepo.SumAmountByStatus(ctx, models.PaymentStatusPaid); err != nil {
		return nil, s.fail(err)
	}

	return stats, nil
}

func (s *dashboardServiceImpl) fail(err error) *ServiceError {
	s.logger.Error("Failed to compute dashboard stats", zap.Error(err))
	return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load dashboard"}
}
