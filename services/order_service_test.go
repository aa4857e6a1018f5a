package services_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

type mockOrderRepo struct {
	orders []models.Order
}

func (m *mockOrderRepo) Create(_ context.Context, order *models.Order) error {
	m.orders = append(m.orders, *order)
	return nil
}
func (m *mockOrderRepo) FindByUserID(_ context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, o := range m.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}
func (m *mockOrderRepo) FindAll(_ context.Context) ([]models.Order, error) {
	return append([]models.Order(nil), m.orders...), nil
}
func (m *mockOrderRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.orders)), nil
}

func orderRequest(carID string) *models.OrderRequest {
	return &models.OrderRequest{
		CarID:           carID,
		CustomerName:    "Jane Doe",
		CustomerEmail:   "jane@example.com",
		CustomerPhone:   "+15551234567",
		CustomerAddress: "1 Main St",
		PaymentMethod:   "card",
	}
}

func TestCreateOrder_SnapshotsPrice(t *testing.T) {
	carRepo := newMockCarRepo(availableCar("c1", 12500.00))
	orderRepo := &mockOrderRepo{}
	svc := services.NewOrderService(orderRepo, carRepo, zap.NewNop())

	order, svcErr := svc.CreateOrder(context.Background(), "u1", orderRequest("c1"))

	assert.Nil(t, svcErr)
	assert.Equal(t, "u1", order.UserID)
	assert.Equal(t, 12500.00, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPending, order.OrderStatus)
	assert.Len(t, orderRepo.orders, 1)
}

func TestCreateOrder_CarMissing(t *testing.T) {
	svc := services.NewOrderService(&mockOrderRepo{}, newMockCarRepo(), zap.NewNop())

	_, svcErr := svc.CreateOrder(context.Background(), "u1", orderRequest("ghost"))

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Car not available", svcErr.Message)
}

func TestCreateOrder_CarNotAvailable(t *testing.T) {
	car := availableCar("c1", 12500.00)
	car.Status = models.CarStatusSold
	orderRepo := &mockOrderRepo{}
	svc := services.NewOrderService(orderRepo, newMockCarRepo(car), zap.NewNop())

	_, svcErr := svc.CreateOrder(context.Background(), "u1", orderRequest("c1"))

	assert.NotNil(t, svcErr)
	assert.Equal(t, 400, svcErr.StatusCode)
	assert.Equal(t, "Car not available", svcErr.Message)
	assert.Empty(t, orderRepo.orders)
}

func TestListUserOrders_EmptyIsNotNil(t *testing.T) {
	svc := services.NewOrderService(&mockOrderRepo{}, newMockCarRepo(), zap.NewNop())

	orders, svcErr := svc.ListUserOrders(context.Background(), "u1")

	assert.Nil(t, svcErr)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}
