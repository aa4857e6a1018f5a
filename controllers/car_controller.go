package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Bossbrown1770/AUTO-CAR/models"
	"github.com/Bossbrown1770/AUTO-CAR/services"
)

// CarController handles car inventory endpoints.
type CarController struct {
	service services.CarService
}

// NewCarController creates a new CarController.
func NewCarController(service services.CarService) *CarController {
	return &CarController{service: service}
}

// ListCars returns listings with optional skip/limit/search.
// GET /api/cars
func (cc *CarController) ListCars(c *gin.Context) {
	skip, _ := strconv.ParseInt(c.DefaultQuery("skip", "0"), 10, 64)
	limit, _ := strconv.ParseInt(c.DefaultQuery("limit", "20"), 10, 64)
	search := c.Query("search")

	cars, svcErr := cc.service.ListCars(c.Request.Context(), search, skip, limit)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, cars)
}

// GetCar returns one listing.
// GET /api/cars/:carId
func (cc *CarController) GetCar(c *gin.Context) {
	car, svcErr := cc.service.GetCar(c.Request.Context(), c.Param("carId"))
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, car)
}

// CreateCar adds a listing. Admin only.
// POST /api/cars
func (cc *CarController) CreateCar(c *gin.Context) {
	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	car, svcErr := cc.service.CreateCar(c.Request.Context(), &req)
	if svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car created successfully", "car_id": car.CarID})
}

// UpdateCar replaces a listing's attributes. Admin only.
// PUT /api/cars/:carId
func (cc *CarController) UpdateCar(c *gin.Context) {
	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request", "details": err.Error()})
		return
	}

	if svcErr := cc.service.UpdateCar(c.Request.Context(), c.Param("carId"), &req); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car updated successfully"})
}

// DeleteCar removes a listing. Admin only.
// DELETE /api/cars/:carId
func (cc *CarController) DeleteCar(c *gin.Context) {
	if svcErr := cc.service.DeleteCar(c.Request.Context(), c.Param("carId")); svcErr != nil {
		c.JSON(svcErr.StatusCode, gin.H{"error": svcErr.Message})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Car deleted successfully"})
}
