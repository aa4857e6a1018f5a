package services_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// --- Mock car repository ---

type mockCarRepo struct {
	mu        sync.Mutex
	cars      map[string]*models.Car
	soldCount int
}

func newMockCarRepo(cars ...*models.Car) *mockCarRepo {
	m := &mockCarRepo{cars: make(map[string]*models.Car)}
	for _, c := range cars {
		m.cars[c.CarID] = c
	}
	return m
}

func (m *mockCarRepo) FindByID(_ context.Context, carID string) (*models.Car, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	car, ok := m.cars[carID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *car
	return &copied, nil
}

func (m *mockCarRepo) MarkSold(_ context.Context, carID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	car, ok := m.cars[carID]
	if !ok || car.Status == models.CarStatusSold {
		return 0, nil
	}
	car.Status = models.CarStatusSold
	m.soldCount++
	return 1, nil
}

func (m *mockCarRepo) Find(_ context.Context, _ string, _, _ int64) ([]models.Car, error) {
	return nil, nil
}
func (m *mockCarRepo) Create(_ context.Context, car *models.Car) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cars[car.CarID] = car
	return nil
}
func (m *mockCarRepo) Update(_ context.Context, _ string, _ bson.M) (int64, error) { return 0, nil }
func (m *mockCarRepo) Delete(_ context.Context, _ string) (int64, error)           { return 0, nil }
func (m *mockCarRepo) Count(_ context.Context) (int64, error)                      { return 0, nil }
func (m *mockCarRepo) CountByStatus(_ context.Context, _ string) (int64, error)    { return 0, nil }

// --- Mock user repository ---

type mockUserRepo struct {
	users map[string]*models.User
}

func newMockUserRepo(users ...*models.User) *mockUserRepo {
	m := &mockUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		m.users[u.UserID] = u
	}
	return m
}

func (m *mockUserRepo) FindByID(_ context.Context, userID string) (*models.User, error) {
	u, ok := m.users[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return u, nil
}
func (m *mockUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, repository.ErrNotFound
}
func (m *mockUserRepo) Create(_ context.Context, u *models.User) error {
	m.users[u.UserID] = u
	return nil
}
func (m *mockUserRepo) Count(_ context.Context) (int64, error) { return 0, nil }

// --- Mock transaction repository ---

type mockTxRepo struct {
	mu          sync.Mutex
	txs         map[string]*models.PaymentTransaction
	updateCalls int
}

func newMockTxRepo() *mockTxRepo {
	return &mockTxRepo{txs: make(map[string]*models.PaymentTransaction)}
}

func (m *mockTxRepo) Insert(_ context.Context, tx *models.PaymentTransaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.txs[tx.SessionID]; exists {
		return repository.ErrDuplicate
	}
	copied := *tx
	m.txs[tx.SessionID] = &copied
	return nil
}

func (m *mockTxRepo) FindBySessionID(_ context.Context, sessionID string) (*models.PaymentTransaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[sessionID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *tx
	return &copied, nil
}

func (m *mockTxRepo) TransitionStatus(_ context.Context, sessionID, from, to string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[sessionID]
	if !ok || tx.PaymentStatus != from {
		return 0, nil
	}
	tx.PaymentStatus = to
	m.updateCalls++
	return 1, nil
}

func (m *mockTxRepo) UpdateStatus(_ context.Context, sessionID, status string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	tx, ok := m.txs[sessionID]
	if !ok {
		return 0, nil
	}
	tx.PaymentStatus = status
	m.updateCalls++
	return 1, nil
}

func (m *mockTxRepo) SumAmountByStatus(_ context.Context, _ string) (float64, error) { return 0, nil }

// --- Mock gateway ---

type mockGateway struct {
	session   *services.CheckoutSession
	createErr error
	status    *services.CheckoutStatus
	statusErr error
}

func (g *mockGateway) CreateSession(_ context.Context, _ *services.CheckoutSessionRequest) (*services.CheckoutSession, error) {
	if g.createErr != nil {
		return nil, g.createErr
	}
	return g.session, nil
}

func (g *mockGateway) GetStatus(_ context.Context, _ string) (*services.CheckoutStatus, error) {
	if g.statusErr != nil {
		return nil, g.statusErr
	}
	return g.status, nil
}

// --- Mock notifier ---

type mockNotifier struct {
	mu       sync.Mutex
	messages []string
}

func (n *mockNotifier) Notify(_ context.Context, text string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, text)
}

func (n *mockNotifier) sent() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

// --- Helpers ---

func availableCar(id string, price float64) *models.Car {
	return &models.Car{
		CarID:  id,
		Make:   "Toyota",
		Model:  "Camry",
		Year:   2015,
		Price:  price,
		Status: models.CarStatusAvailable,
	}
}

func newPaymentService(
	gateway services.CheckoutGateway,
	txRepo repository.TransactionRepository,
	carRepo repository.CarRepository,
	userRepo repository.UserRepository,
	notifier services.Notifier,
) services.PaymentService {
	logger, _ := zap.NewDevelopment()
	return services.NewPaymentService(gateway, txRepo, carRepo, userRepo, notifier, logger)
}

// --- CreateCheckout ---

func TestCreateCheckout_CarNotFound(t *testing.T) {
	txRepo := newMockTxRepo()
	svc := newPaymentService(&mockGateway{}, txRepo, newMockCarRepo(), newMockUserRepo(), &mockNotifier{})

	resp, svcErr := svc.CreateCheckout(context.Background(), "missing", "u1", "http://localhost:8001")

	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Empty(t, txRepo.txs)
}

func TestCreateCheckout_Success(t *testing.T) {
	carRepo := newMockCarRepo(availableCar("c1", 12500.00))
	txRepo := newMockTxRepo()
	gateway := &mockGateway{session: &services.CheckoutSession{
		SessionID: "cs_test_123",
		URL:       "https://checkout.stripe.com/pay/cs_test_123",
	}}
	svc := newPaymentService(gateway, txRepo, carRepo, newMockUserRepo(), &mockNotifier{})

	resp, svcErr := svc.CreateCheckout(context.Background(), "c1", "u1", "http://localhost:8001")

	assert.Nil(t, svcErr)
	assert.Equal(t, "cs_test_123", resp.SessionID)
	assert.Equal(t, "https://checkout.stripe.com/pay/cs_test_123", resp.URL)

	assert.Len(t, txRepo.txs, 1)
	tx := txRepo.txs["cs_test_123"]
	assert.Equal(t, models.PaymentStatusPending, tx.PaymentStatus)
	assert.Equal(t, 12500.00, tx.Amount)
	assert.Equal(t, "usd", tx.Currency)
	assert.Equal(t, "c1", tx.CarID)
	assert.Equal(t, "u1", tx.UserID)
	assert.Equal(t, "Toyota", tx.Metadata["car_make"])
	assert.Equal(t, "Camry", tx.Metadata["car_model"])
	assert.Equal(t, "2015", tx.Metadata["car_year"])
}

func TestCreateCheckout_GatewayUnavailable(t *testing.T) {
	carRepo := newMockCarRepo(availableCar("c1", 9999.99))
	txRepo := newMockTxRepo()
	gateway := &mockGateway{createErr: services.ErrGatewayUnavailable}
	svc := newPaymentService(gateway, txRepo, carRepo, newMockUserRepo(), &mockNotifier{})

	resp, svcErr := svc.CreateCheckout(context.Background(), "c1", "u1", "http://localhost:8001")

	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Empty(t, txRepo.txs)
}

// --- GetPaymentStatus ---

func TestGetPaymentStatus_UnknownSession(t *testing.T) {
	txRepo := newMockTxRepo()
	carRepo := newMockCarRepo()
	svc := newPaymentService(&mockGateway{}, txRepo, carRepo, newMockUserRepo(), &mockNotifier{})

	resp, svcErr := svc.GetPaymentStatus(context.Background(), "cs_unknown")

	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 404, svcErr.StatusCode)
	assert.Zero(t, txRepo.updateCalls)
}

func TestGetPaymentStatus_Unchanged(t *testing.T) {
	txRepo := newMockTxRepo()
	tx := models.NewPaymentTransaction("cs_1", "u1", "c1", 12500.00, "usd", nil)
	_ = txRepo.Insert(context.Background(), tx)

	gateway := &mockGateway{status: &services.CheckoutStatus{
		Status:        "open",
		PaymentStatus: models.PaymentStatusPending,
		AmountTotal:   1250000,
		Currency:      "usd",
	}}
	svc := newPaymentService(gateway, txRepo, newMockCarRepo(), newMockUserRepo(), &mockNotifier{})

	resp, svcErr := svc.GetPaymentStatus(context.Background(), "cs_1")

	assert.Nil(t, svcErr)
	assert.Equal(t, "open", resp.Status)
	assert.Equal(t, models.PaymentStatusPending, resp.PaymentStatus)
	assert.Equal(t, int64(1250000), resp.AmountTotal)
	assert.Equal(t, "usd", resp.Currency)
	assert.Zero(t, txRepo.updateCalls)
}

func TestGetPaymentStatus_PaidTransition(t *testing.T) {
	car := availableCar("c1", 12500.00)
	user := &models.User{UserID: "u1", Email: "jane@example.com", FirstName: "Jane", LastName: "Doe"}
	carRepo := newMockCarRepo(car)
	userRepo := newMockUserRepo(user)
	notifier := &mockNotifier{}

	txRepo := newMockTxRepo()
	metadata := map[string]string{"car_make": "Toyota", "car_model": "Camry", "car_year": "2015"}
	_ = txRepo.Insert(context.Background(), models.NewPaymentTransaction("cs_1", "u1", "c1", 12500.00, "usd", metadata))

	gateway := &mockGateway{status: &services.CheckoutStatus{
		Status:        "complete",
		PaymentStatus: models.PaymentStatusPaid,
		AmountTotal:   1250000,
		Currency:      "usd",
	}}
	svc := newPaymentService(gateway, txRepo, carRepo, userRepo, notifier)

	resp, svcErr := svc.GetPaymentStatus(context.Background(), "cs_1")

	assert.Nil(t, svcErr)
	assert.Equal(t, models.PaymentStatusPaid, resp.PaymentStatus)
	assert.Equal(t, models.PaymentStatusPaid, txRepo.txs["cs_1"].PaymentStatus)
	assert.Equal(t, models.CarStatusSold, carRepo.cars["c1"].Status)

	messages := notifier.sent()
	assert.Len(t, messages, 1)
	assert.Contains(t, messages[0], "Toyota")
	assert.Contains(t, messages[0], "Camry")
	assert.Contains(t, messages[0], "$12,500.00")
	assert.Contains(t, messages[0], "Jane Doe")
}

func TestGetPaymentStatus_PaidTwice_SideEffectsOnce(t *testing.T) {
	carRepo := newMockCarRepo(availableCar("c1", 12500.00))
	notifier := &mockNotifier{}
	txRepo := newMockTxRepo()
	_ = txRepo.Insert(context.Background(), models.NewPaymentTransaction("cs_1", "", "c1", 12500.00, "usd", nil))

	gateway := &mockGateway{status: &services.CheckoutStatus{
		Status:        "complete",
		PaymentStatus: models.PaymentStatusPaid,
		AmountTotal:   1250000,
		Currency:      "usd",
	}}
	svc := newPaymentService(gateway, txRepo, carRepo, newMockUserRepo(), notifier)

	for i := 0; i < 2; i++ {
		resp, svcErr := svc.GetPaymentStatus(context.Background(), "cs_1")
		assert.Nil(t, svcErr)
		assert.Equal(t, models.PaymentStatusPaid, resp.PaymentStatus)
	}

	assert.Len(t, notifier.sent(), 1)
	assert.Equal(t, 1, carRepo.soldCount)
}

func TestGetPaymentStatus_ConcurrentReconciliation(t *testing.T) {
	carRepo := newMockCarRepo(availableCar("c1", 12500.00))
	notifier := &mockNotifier{}
	txRepo := newMockTxRepo()
	_ = txRepo.Insert(context.Background(), models.NewPaymentTransaction("cs_1", "", "c1", 12500.00, "usd", nil))

	gateway := &mockGateway{status: &services.CheckoutStatus{
		Status:        "complete",
		PaymentStatus: models.PaymentStatusPaid,
		AmountTotal:   1250000,
		Currency:      "usd",
	}}
	svc := newPaymentService(gateway, txRepo, carRepo, newMockUserRepo(), notifier)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = svc.GetPaymentStatus(context.Background(), "cs_1")
		}()
	}
	wg.Wait()

	assert.Len(t, notifier.sent(), 1)
	assert.Equal(t, 1, carRepo.soldCount)
}

func TestGetPaymentStatus_FailedRecordedWithoutSideEffects(t *testing.T) {
	carRepo := newMockCarRepo(availableCar("c1", 12500.00))
	notifier := &mockNotifier{}
	txRepo := newMockTxRepo()
	_ = txRepo.Insert(context.Background(), models.NewPaymentTransaction("cs_1", "u1", "c1", 12500.00, "usd", nil))

	gateway := &mockGateway{status: &services.CheckoutStatus{
		Status:        "expired",
		PaymentStatus: models.PaymentStatusFailed,
		AmountTotal:   1250000,
		Currency:      "usd",
	}}
	svc := newPaymentService(gateway, txRepo, carRepo, newMockUserRepo(), notifier)

	resp, svcErr := svc.GetPaymentStatus(context.Background(), "cs_1")

	assert.Nil(t, svcErr)
	assert.Equal(t, models.PaymentStatusFailed, resp.PaymentStatus)
	assert.Equal(t, models.PaymentStatusFailed, txRepo.txs["cs_1"].PaymentStatus)
	assert.Equal(t, models.CarStatusAvailable, carRepo.cars["c1"].Status)
	assert.Empty(t, notifier.sent())
}

func TestGetPaymentStatus_GatewayErrorLeavesRecordsUnchanged(t *testing.T) {
	txRepo := newMockTxRepo()
	_ = txRepo.Insert(context.Background(), models.NewPaymentTransaction("cs_1", "u1", "c1", 12500.00, "usd", nil))

	gateway := &mockGateway{statusErr: services.ErrGatewayUnavailable}
	svc := newPaymentService(gateway, txRepo, newMockCarRepo(), newMockUserRepo(), &mockNotifier{})

	resp, svcErr := svc.GetPaymentStatus(context.Background(), "cs_1")

	assert.Nil(t, resp)
	assert.NotNil(t, svcErr)
	assert.Equal(t, 500, svcErr.StatusCode)
	assert.Equal(t, models.PaymentStatusPending, txRepo.txs["cs_1"].PaymentStatus)
	assert.Zero(t, txRepo.updateCalls)
}

func TestGetPaymentStatus_PaidUsesMetadataWhenCarMissing(t *testing.T) {
	notifier := &mockNotifier{}
	txRepo := newMockTxRepo()
	metadata := map[string]string{"car_make": "Honda", "car_model": "Civic", "car_year": "2012"}
	_ = txRepo.Insert(context.Background(), models.NewPaymentTransaction("cs_1", "", "gone", 4800.00, "usd", metadata))

	gateway := &mockGateway{status: &services.CheckoutStatus{
		Status:        "complete",
		PaymentStatus: models.PaymentStatusPaid,
		AmountTotal:   480000,
		Currency:      "usd",
	}}
	svc := newPaymentService(gateway, txRepo, newMockCarRepo(), newMockUserRepo(), notifier)

	_, svcErr := svc.GetPaymentStatus(context.Background(), "cs_1")

	assert.Nil(t, svcErr)
	messages := notifier.sent()
	assert.Len(t, messages, 1)
	assert.True(t, strings.Contains(messages[0], "Honda"))
	assert.True(t, strings.Contains(messages[0], "Civic"))
	assert.Contains(t, messages[0], "$4,800.00")
}
