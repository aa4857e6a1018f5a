package models

import (
	"time"

	"github.com/google/uuid"
)

// Car status values. A checkout session may only be created while a car is
// available; sold is set as a side effect of a confirmed payment.
const (
	CarStatusAvailable = "available"
	CarStatusPending   = "pending"
	CarStatusSold      = "sold"
)

// Car represents a vehicle listing stored in MongoDB.
type Car struct {
	CarID               string    `bson:"car_id" json:"car_id"`
	Make                string    `bson:"make" json:"make"`
	Model               string    `bson:"model" json:"model"`
	Year                int       `bson:"year" json:"year"`
	Price               float64   `bson:"price" json:"price"`
	Mileage             int       `bson:"mileage" json:"mileage"`
	FuelType            string    `bson:"fuel_type" json:"fuel_type"`
	Transmission        string    `bson:"transmission" json:"transmission"`
	EngineSize          string    `bson:"engine_size" json:"engine_size"`
	Color               string    `bson:"color" json:"color"`
	InteriorType        string    `bson:"interior_type" json:"interior_type"`
	SafetyFeatures      []string  `bson:"safety_features" json:"safety_features"`
	EntertainmentSystem string    `bson:"entertainment_system" json:"entertainment_system"`
	VINNumber           string    `bson:"vin_number" json:"vin_number"`
	Description         string    `bson:"description" json:"description"`
	Images              []string  `bson:"images" json:"images"`
	MainImage           string    `bson:"main_image" json:"main_image"`
	Status              string    `bson:"status" json:"status"`
	CreatedAt           time.Time `bson:"created_at" json:"created_at"`
}

// CarRequest is the payload for creating or replacing a car listing.
type CarRequest struct {
	Make                string   `json:"make" binding:"required"`
	Model               string   `json:"model" binding:"required"`
	Year                int      `json:"year" binding:"required,gte=1900"`
	Price               float64  `json:"price" binding:"required,gt=0"`
	Mileage             int      `json:"mileage" binding:"gte=0"`
	FuelType            string   `json:"fuel_type"`
	Transmission        string   `json:"transmission"`
	EngineSize          string   `json:"engine_size"`
	Color               string   `json:"color"`
	InteriorType        string   `json:"interior_type"`
	SafetyFeatures      []string `json:"safety_features"`
	EntertainmentSystem string   `json:"entertainment_system"`
	VINNumber           string   `json:"vin_number"`
	Description         string   `json:"description"`
	Images              []string `json:"images"`
	MainImage           string   `json:"main_image"`
}

// ToCar builds a new available listing from the request.
func (r *CarRequest) ToCar() *Car {
	return &Car{
		CarID:               uuid.NewString(),
		Make:                r.Make,
		Model:               r.Model,
		Year:                r.Year,
		Price:               r.Price,
		Mileage:             r.Mileage,
		FuelType:            r.FuelType,
		Transmission:        r.Transmission,
		EngineSize:          r.EngineSize,
		Color:               r.Color,
		InteriorType:        r.InteriorType,
		SafetyFeatures:      r.SafetyFeatures,
		EntertainmentSystem: r.EntertainmentSystem,
		VINNumber:           r.VINNumber,
		Description:         r.Description,
		Images:              r.Images,
		MainImage:           r.MainImage,
		Status:              CarStatusAvailable,
		CreatedAt:           time.Now().UTC(),
	}
}
