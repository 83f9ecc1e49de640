package datasource

import (
	"context"

	"weather-insight/models"
)

// WeatherProvider is an interface for services that can fetch current weather data
type WeatherProvider interface {
	// GetWeather fetches current weather for a location
	GetWeather(ctx context.Context, location string) (models.WeatherData, error)

	// Name returns the provider's name
	Name() string
}

// ForecastSource is an interface for services that can fetch weather forecasts
type ForecastSource interface {
	// FetchForecast fetches forecast for a location for the specified number of days
	FetchForecast(ctx context.Context, location string, days int) (models.ForecastData, error)

	// Name returns the source's name
	Name() string
}

// GeoPoint is a resolved city coordinate
type GeoPoint struct {
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	Name string  `json:"name"` // resolved English name
}

// Geocoder resolves a city name to coordinates
type Geocoder interface {
	// Geocode resolves a city name. found is false when the city is
	// unknown; that is a normal outcome, not an error.
	Geocode(ctx context.Context, city string) (point GeoPoint, found bool, err error)

	// Name returns the geocoder's name
	Name() string
}
