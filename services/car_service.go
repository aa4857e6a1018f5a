package services

import (
	"context"
	"errors"
	"net/http"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/repository"
)

// CarService handles the car inventory: public listing/search and
// admin-managed CRUD.
type CarService interface {
	ListCars(ctx context.Context, search string, skip, limit int64) ([]models.Car, *ServiceError)
	GetCar(ctx context.Context, carID string) (*models.Car, *ServiceError)
	CreateCar(ctx context.Context, req *models.CarRequest) (*models.Car, *ServiceError)
	UpdateCar(ctx context.Context, carID string, req *models.CarRequest) *ServiceError
	DeleteCar(ctx context.Context, carID string) *ServiceError
}

type carServiceImpl struct {
	carRepo repository.CarRepository
	logger  *zap.Logger
}

// NewCarService creates a new CarService.
func NewCarService(carRepo repository.CarRepository, logger *zap.Logger) CarService {
	return &carServiceImpl{carRepo: carRepo, logger: logger}
}

func (s *carServiceImpl) ListCars(ctx context.Context, search string, skip, limit int64) ([]models.Car, *ServiceError) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if skip < 0 {
		skip = 0
	}

	cars, err := s.carRepo.Find(ctx, search, skip, limit)
	if err != nil {
		s.logger.Error("Failed to list cars", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to list cars"}
	}
	if cars == nil {
		cars = []models.Car{}
	}
	return cars, nil
}

func (s *carServiceImpl) GetCar(ctx context.Context, carID string) (*models.Car, *ServiceError) {
	car, err := s.carRepo.FindByID(ctx, carID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
		}
		s.logger.Error("Failed to load car", zap.String("car_id", carID), zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to load car"}
	}
	return car, nil
}

func (s *carServiceImpl) CreateCar(ctx context.Context, req *models.CarRequest) (*models.Car, *ServiceError) {
	car := req.ToCar()
	if err := s.carRepo.Create(ctx, car); err != nil {
		s.logger.Error("Failed to create car", zap.Error(err))
		return nil, &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to create car"}
	}

	s.logger.Info("Car created", zap.String("car_id", car.CarID),
		zap.String("make", car.Make), zap.String("model", car.Model))
	return car, nil
}

func (s *carServiceImpl) UpdateCar(ctx context.Context, carID string, req *models.CarRequest) *ServiceError {
	updates := bson.M{
		"make":                 req.Make,
		"model":                req.Model,
		"year":                 req.Year,
		"price":                req.Price,
		"mileage":              req.Mileage,
		"fuel_type":            req.FuelType,
		"transmission":         req.Transmission,
		"engine_size":          req.EngineSize,
		"color":                req.Color,
		"interior_type":        req.InteriorType,
		"safety_features":      req.SafetyFeatures,
		"entertainment_system": req.EntertainmentSystem,
		"vin_number":           req.VINNumber,
		"description":          req.Description,
		"images":               req.Images,
		"main_image":           req.MainImage,
	}

	modified, err := s.carRepo.Update(ctx, carID, updates)
	if err != nil {
		s.logger.Error("Failed to update car", zap.String("car_id", carID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to update car"}
	}
	if modified == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
	}
	return nil
}

func (s *carServiceImpl) DeleteCar(ctx context.Context, carID string) *ServiceError {
	deleted, err := s.carRepo.Delete(ctx, carID)
	if err != nil {
		s.logger.Error("Failed to delete car", zap.String("car_id", carID), zap.Error(err))
		return &ServiceError{StatusCode: http.StatusInternalServerError, Message: "Failed to delete car"}
	}
	if deleted == 0 {
		return &ServiceError{StatusCode: http.StatusNotFound, Message: "Car not found"}
	}
	return nil
}
