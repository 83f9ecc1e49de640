package api

import (
	"sync"

	"weather-insight/models"
)

// WeatherStore holds the latest weather data by location
type WeatherStore struct {
	data  map[string][]models.WeatherData // key is location, value is array of provider data
	mutex sync.RWMutex
}

// NewWeatherStore creates a new in-memory weather data store
func NewWeatherStore() *WeatherStore {
	return &WeatherStore{
		data: make(map[string][]models.WeatherData),
	}
}

// UpdateWeather adds or updates weather data for a location
func (s *WeatherStore) UpdateWeather(data models.WeatherData) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	location := data.Location

	if _, exists := s.data[location]; !exists {
		s.data[location] = []models.WeatherData{}
	}

	// Replace an existing entry from the same provider
	found := false
	for i, existingData := range s.data[location] {
		if existingData.Provider == data.Provider {
			s.data[location][i] = data
			found = true
			break
		}
	}

	if !found {
		s.data[location] = append(s.data[location], data)
	}
}

// GetWeatherByLocation retrieves weather data for a specific location
func (s *WeatherStore) GetWeatherByLocation(location string) ([]models.WeatherData, bool) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	data, exists := s.data[location]
	return data, exists
}

// GetAllLocations returns a list of all available locations
func (s *WeatherStore) GetAllLocations() []string {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	locations := make([]string, 0, len(s.data))
	for loc := range s.data {
		locations = append(locations, loc)
	}
	return locations
}
