package datasource

import (
	"encoding/json"
	"os"
)

// Config represents the application configuration
type Config struct {
	// API provider configurations
	OpenWeatherMap struct {
		Enabled bool   `json:"enabled"`
		APIKey  string `json:"apiKey"`
	} `json:"openWeatherMap"`

	// Forecast horizon in days requested on each refresh
	ForecastDays int `json:"forecastDays"`

	// List of locations to monitor
	Locations []string `json:"locations"`
}

// LoadConfig loads configuration from a JSON file
func LoadConfig(filename string) (*Config, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	var config Config
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&config); err != nil {
		return nil, err
	}

	if config.ForecastDays <= 0 || config.ForecastDays > 5 {
		config.ForecastDays = 5 // free tier maximum
	}

	return &config, nil
}

// DefaultConfig creates a default configuration
func DefaultConfig() *Config {
	config := &Config{}
	config.OpenWeatherMap.Enabled = false
	config.ForecastDays = 5
	config.Locations = []string{"London,UK", "New York,US", "Tokyo,JP"}
	return config
}
