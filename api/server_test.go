package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"weather-insight/analysis"
	"weather-insight/models"
)

func newTestServer() *Server {
	return NewServer(NewWeatherStore(), NewForecastStore(), 0)
}

func storedForecast(location string, temps ...float64) models.ForecastData {
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	data := models.ForecastData{
		Provider: "TestProvider",
		Location: location,
		Updated:  time.Now(),
	}
	for i, t := range temps {
		data.Forecasts = append(data.Forecasts, models.Forecast{
			Temperature: t,
			Timestamp:   base.Add(time.Duration(i) * 3 * time.Hour),
		})
	}
	return data
}

func TestHandleGetTrendsWithData(t *testing.T) {
	s := newTestServer()
	s.forecastStore.UpdateForecast(storedForecast("Haifa",
		10, 11, 12, 13, 14, 15, 16, 17, 18, 19, 20, 21, 22, 23, 24, 25))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trends/location/Haifa", nil)
	s.handleGetTrends(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Location string               `json:"location"`
		Provider string               `json:"provider"`
		Report   analysis.TrendReport `json:"report"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !resp.Report.HasData {
		t.Fatalf("expected hasData=true, got %+v", resp.Report)
	}
	if resp.Report.Trend != analysis.TrendRising {
		t.Fatalf("expected Rising, got %s", resp.Report.Trend)
	}
	if resp.Report.SampleCount != 16 {
		t.Fatalf("expected 16 samples, got %d", resp.Report.SampleCount)
	}
	if resp.Provider != "TestProvider" {
		t.Fatalf("expected provider echoed, got %q", resp.Provider)
	}
}

func TestHandleGetTrendsNoDataIsNotAnError(t *testing.T) {
	s := newTestServer()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trends/location/Nowhere", nil)
	s.handleGetTrends(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("missing data should degrade, not fail: got %d", rr.Code)
	}

	var resp struct {
		Report analysis.TrendReport `json:"report"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Report.HasData {
		t.Fatalf("expected hasData=false, got %+v", resp.Report)
	}
	if resp.Report.SampleCount != 0 {
		t.Fatalf("expected zero samples, got %d", resp.Report.SampleCount)
	}
}

func TestHandleGetTrendsWindowParameter(t *testing.T) {
	s := newTestServer()
	s.forecastStore.UpdateForecast(storedForecast("Haifa", 1, 2, 3, 4))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/trends/location/Haifa?window=2", nil)
	s.handleGetTrends(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}
	var resp struct {
		Report analysis.TrendReport `json:"report"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Report.TrendDelta != 2 {
		t.Fatalf("expected delta 2 with window=2, got %v", resp.Report.TrendDelta)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/trends/location/Haifa?window=bogus", nil)
	s.handleGetTrends(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for bad window, got %d", rr.Code)
	}
}

func TestHandleHeatIndex(t *testing.T) {
	s := newTestServer()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/heatindex?temp=20&humidity=40", nil)
	s.handleHeatIndex(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var res analysis.HeatIndexResult
	if err := json.Unmarshal(rr.Body.Bytes(), &res); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if res.ActualTemp != 20 {
		t.Fatalf("expected actual temp echoed, got %+v", res)
	}
	if res.Comfort != "Comfortable" {
		t.Fatalf("expected Comfortable at 20C/40%%, got %q", res.Comfort)
	}
}

func TestHandleHeatIndexRejectsMissingParams(t *testing.T) {
	s := newTestServer()

	for _, target := range []string{
		"/api/heatindex",
		"/api/heatindex?temp=20",
		"/api/heatindex?temp=hot&humidity=40",
	} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		s.handleHeatIndex(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestHandleHeatIndexSweep(t *testing.T) {
	s := newTestServer()

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/heatindex/sweep?humidity=70&from=25&to=35&step=1", nil)
	s.handleHeatIndexSweep(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Humidity float64                    `json:"humidity"`
		Points   []analysis.HeatIndexResult `json:"points"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(resp.Points) != 11 {
		t.Fatalf("expected 11 sweep points, got %d", len(resp.Points))
	}
	for i := 1; i < len(resp.Points); i++ {
		if resp.Points[i].ActualTemp <= resp.Points[i-1].ActualTemp {
			t.Fatal("sweep points not in ascending temperature order")
		}
	}
}

func TestHandleHeatIndexSweepRejectsBadRange(t *testing.T) {
	s := newTestServer()

	for _, target := range []string{
		"/api/heatindex/sweep",                           // missing humidity
		"/api/heatindex/sweep?humidity=70&from=30&to=20", // inverted range
		"/api/heatindex/sweep?humidity=70&step=0",        // zero step
		"/api/heatindex/sweep?humidity=70&step=0.000001", // too fine
	} {
		rr := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, target, nil)
		s.handleHeatIndexSweep(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", target, rr.Code)
		}
	}
}

func TestHandleGetWeatherByLocation(t *testing.T) {
	s := newTestServer()
	s.weatherStore.UpdateWeather(models.WeatherData{
		Provider:    "TestProvider",
		Location:    "Haifa",
		Temperature: 24.5,
		Humidity:    65,
	})

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/weather/location/Haifa", nil)
	s.handleGetWeatherByLocation(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	rr = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/weather/location/Nowhere", nil)
	s.handleGetWeatherByLocation(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestHandleGetForecastLocations(t *testing.T) {
	s := newTestServer()
	s.forecastStore.UpdateForecast(storedForecast("Haifa", 20, 21))
	s.forecastStore.UpdateForecast(storedForecast("Tel Aviv", 23, 24))

	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/forecast/locations", nil)
	s.handleGetForecastLocations(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp struct {
		Locations []string `json:"locations"`
		Count     int      `json:"count"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if resp.Count != 2 || len(resp.Locations) != 2 {
		t.Fatalf("expected 2 locations, got %+v", resp)
	}
	seen := map[string]bool{}
	for _, loc := range resp.Locations {
		seen[loc] = true
	}
	if !seen["Haifa"] || !seen["Tel Aviv"] {
		t.Fatalf("expected both stored locations, got %v", resp.Locations)
	}
}

func TestForecastStorePrune(t *testing.T) {
	store := NewForecastStore()
	old := storedForecast("Haifa", 20)
	old.Updated = time.Now().Add(-72 * time.Hour)
	store.UpdateForecast(old)
	store.UpdateForecast(storedForecast("Tel Aviv", 22))

	pruned := store.PruneOldForecasts(48 * time.Hour)
	if pruned != 1 {
		t.Fatalf("expected 1 pruned forecast, got %d", pruned)
	}
	if _, exists := store.GetForecastByLocation("Haifa"); exists {
		t.Fatal("expected pruned location to be removed")
	}
	if _, exists := store.GetForecastByLocation("Tel Aviv"); !exists {
		t.Fatal("expected fresh location to remain")
	}
}
