package models

import (
	"time"
)

// WeatherData represents the current weather conditions from a provider
type WeatherData struct {
	Provider    string    `json:"provider"`
	Location    string    `json:"location"`
	Latitude    float64   `json:"latitude"`
	Longitude   float64   `json:"longitude"`
	Temperature float64   `json:"temperature"`
	Humidity    float64   `json:"humidity"`
	WindSpeed   float64   `json:"windSpeed"`
	Pressure    float64   `json:"pressure"`
	Description string    `json:"description"`
	Icon        string    `json:"icon"`
	WindDeg     int       `json:"windDeg"`
	Timestamp   time.Time `json:"timestamp"`
	Sunrise     time.Time `json:"sunrise"`
	Sunset      time.Time `json:"sunset"`
}
