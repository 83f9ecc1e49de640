// Package api exposes the collected weather data and the analytic results
// over HTTP for the visualization layer.
package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"weather-insight/analysis"
	"weather-insight/datasource"

	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxSweepPoints caps the heat-index sweep resolution
const maxSweepPoints = 1000

// Server represents the API server
type Server struct {
	weatherStore    *WeatherStore
	forecastStore   *ForecastStore
	server          *http.Server
	forecastSources []datasource.ForecastSource
}

// NewServer creates a new API server
func NewServer(weatherStore *WeatherStore, forecastStore *ForecastStore, port int) *Server {
	mux := http.NewServeMux()

	server := &Server{
		weatherStore:  weatherStore,
		forecastStore: forecastStore,
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: mux,
		},
	}

	// Collected data
	mux.HandleFunc("/api/weather/location/", server.handleGetWeatherByLocation)
	mux.HandleFunc("/api/weather/locations", server.handleGetAllLocations)
	mux.HandleFunc("/api/forecast/location/", server.handleGetForecastByLocation)
	mux.HandleFunc("/api/forecast/locations", server.handleGetForecastLocations)

	// Analytics
	mux.HandleFunc("/api/trends/location/", server.handleGetTrends)
	mux.HandleFunc("/api/heatindex", server.handleHeatIndex)
	mux.HandleFunc("/api/heatindex/sweep", server.handleHeatIndexSweep)

	// Operational
	mux.HandleFunc("/api/health", server.handleHealthCheck)
	mux.Handle("/metrics", promhttp.Handler())

	return server
}

// RegisterForecastSources adds forecast sources used for on-demand fetches
func (s *Server) RegisterForecastSources(sources []datasource.ForecastSource) {
	s.forecastSources = sources
}

// Start begins the API server
func (s *Server) Start() error {
	slog.Info("starting API server", "addr", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown stops the API server
func (s *Server) Shutdown() error {
	return s.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("failed to encode response", "err", err)
	}
}

// handleGetWeatherByLocation handles requests for weather data by location
func (s *Server) handleGetWeatherByLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("weather").Inc()

	location := strings.TrimPrefix(r.URL.Path, "/api/weather/location/")
	if location == "" {
		http.Error(w, "Location not specified", http.StatusBadRequest)
		return
	}

	data, exists := s.weatherStore.GetWeatherByLocation(location)
	if !exists {
		writeJSON(w, http.StatusNotFound, map[string]string{
			"error": fmt.Sprintf("No weather data found for location: %s", location),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location":  location,
		"data":      data,
		"timestamp": time.Now(),
	})
}

// handleGetAllLocations returns a list of all locations with weather data
func (s *Server) handleGetAllLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("locations").Inc()

	locations := s.weatherStore.GetAllLocations()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// handleGetForecastLocations returns a list of all locations with forecast data
func (s *Server) handleGetForecastLocations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("forecast_locations").Inc()

	locations := s.forecastStore.GetAllForecastLocations()
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"locations": locations,
		"count":     len(locations),
	})
}

// handleGetForecastByLocation handles requests for forecast data by location
func (s *Server) handleGetForecastByLocation(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("forecast").Inc()

	location := strings.TrimPrefix(r.URL.Path, "/api/forecast/location/")
	if location == "" {
		http.Error(w, "Location not specified", http.StatusBadRequest)
		return
	}

	forecasts, exists := s.forecastStore.GetForecastByLocation(location)
	if !exists {
		// Fall back to an on-demand fetch when sources are registered
		days := parseDays(r.URL.Query().Get("days"))
		for _, source := range s.forecastSources {
			forecast, err := source.FetchForecast(r.Context(), location, days)
			if err != nil {
				slog.Warn("on-demand forecast fetch failed",
					"source", source.Name(), "location", location, "err", err)
				continue
			}
			s.forecastStore.UpdateForecast(forecast)
			forecasts = append(forecasts, forecast)
		}
		if len(forecasts) == 0 {
			writeJSON(w, http.StatusNotFound, map[string]string{
				"error": fmt.Sprintf("No forecast data found for location: %s", location),
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location":  location,
		"forecasts": forecasts,
		"timestamp": time.Now(),
	})
}

// handleGetTrends runs the trend analysis over the stored forecast series
// for a location. Missing data is a normal outcome: the response carries a
// report with hasData=false rather than an error status.
func (s *Server) handleGetTrends(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("trends").Inc()

	location := strings.TrimPrefix(r.URL.Path, "/api/trends/location/")
	if location == "" {
		http.Error(w, "Location not specified", http.StatusBadRequest)
		return
	}

	query := r.URL.Query()

	var report analysis.TrendReport
	provider := query.Get("provider")

	windowSize := analysis.DefaultWindowSize
	if ws := query.Get("window"); ws != "" {
		parsed, err := strconv.Atoi(ws)
		if err != nil || parsed <= 0 {
			http.Error(w, "Invalid window parameter", http.StatusBadRequest)
			return
		}
		windowSize = parsed
	}

	if provider != "" {
		data, _ := s.forecastStore.GetForecastByProvider(location, provider)
		report = analysis.AnalyzeTrendsWindow(data.Forecasts, windowSize)
	} else {
		data, _ := s.forecastStore.GetLatestForecast(location)
		provider = data.Provider
		report = analysis.AnalyzeTrendsWindow(data.Forecasts, windowSize)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"location":  location,
		"provider":  provider,
		"report":    report,
		"timestamp": time.Now(),
	})
}

// handleHeatIndex computes the apparent temperature for a single
// temperature/humidity pair
func (s *Server) handleHeatIndex(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("heatindex").Inc()

	temp, err := strconv.ParseFloat(r.URL.Query().Get("temp"), 64)
	if err != nil {
		http.Error(w, "Missing or invalid temp parameter", http.StatusBadRequest)
		return
	}
	humidity, err := strconv.ParseFloat(r.URL.Query().Get("humidity"), 64)
	if err != nil {
		http.Error(w, "Missing or invalid humidity parameter", http.StatusBadRequest)
		return
	}

	writeJSON(w, http.StatusOK, analysis.ComputeHeatIndex(temp, humidity))
}

// handleHeatIndexSweep computes the apparent temperature across a
// temperature range at fixed humidity, for the apparent-vs-actual
// comparison chart
func (s *Server) handleHeatIndexSweep(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	apiRequests.WithLabelValues("heatindex_sweep").Inc()

	query := r.URL.Query()

	humidity, err := strconv.ParseFloat(query.Get("humidity"), 64)
	if err != nil {
		http.Error(w, "Missing or invalid humidity parameter", http.StatusBadRequest)
		return
	}

	from := parseFloatDefault(query.Get("from"), 20)
	to := parseFloatDefault(query.Get("to"), 45)
	step := parseFloatDefault(query.Get("step"), 0.5)

	if step <= 0 || to < from {
		http.Error(w, "Invalid sweep range", http.StatusBadRequest)
		return
	}
	if (to-from)/step > maxSweepPoints {
		http.Error(w, "Sweep range too fine", http.StatusBadRequest)
		return
	}

	points := make([]analysis.HeatIndexResult, 0, int((to-from)/step)+1)
	for temp := from; temp <= to; temp += step {
		points = append(points, analysis.ComputeHeatIndex(temp, humidity))
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"humidity": humidity,
		"points":   points,
	})
}

// handleHealthCheck provides a simple health check endpoint
func (s *Server) handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func parseDays(raw string) int {
	days := 3
	if raw != "" {
		if d, err := strconv.Atoi(raw); err == nil && d > 0 {
			days = d
			if days > 5 {
				days = 5
			}
		}
	}
	return days
}

func parseFloatDefault(raw string, def float64) float64 {
	if raw == "" {
		return def
	}
	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		return v
	}
	return def
}
