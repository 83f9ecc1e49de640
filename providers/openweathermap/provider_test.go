package openweathermap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestClient points a client's API and geocoding endpoints at a test server
func newTestClient(srv *httptest.Server) *Client {
	client := NewClient("test-key")
	client.baseURL = srv.URL
	client.geoURL = srv.URL
	return client
}

func geoHandler(t *testing.T, mux *http.ServeMux) {
	t.Helper()
	mux.HandleFunc("/direct", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			t.Fatal("geocoding request without city")
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"name": "Haifa", "lat": 32.82, "lon": 34.99}]`))
	})
}

func TestFetchForecastResolvesCityAndMapsRain(t *testing.T) {
	mux := http.NewServeMux()
	geoHandler(t, mux)
	mux.HandleFunc("/forecast", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "32.82" || q.Get("lon") != "34.99" {
			t.Fatalf("expected geocoded coordinates in query, got %s", r.URL.RawQuery)
		}
		if q.Get("q") != "" {
			t.Fatalf("expected no city name after resolution, got %s", r.URL.RawQuery)
		}
		if q.Get("units") != "metric" {
			t.Fatalf("expected metric units, got query %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"city": {"name": "Haifa"},
			"list": [
				{"dt": 1767225600, "main": {"temp": 18.2, "feels_like": 18.0, "pressure": 1012, "humidity": 60},
				 "wind": {"speed": 3.1, "deg": 270},
				 "weather": [{"description": "light rain", "icon": "10d"}],
				 "rain": {"3h": 0.4}},
				{"dt": 1767236400, "main": {"temp": 19.5, "feels_like": 19.4, "pressure": 1011, "humidity": 55},
				 "wind": {"speed": 2.4, "deg": 250},
				 "weather": [{"description": "few clouds", "icon": "02d"}]}
			]
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	data, err := client.FetchForecast(context.Background(), "Haifa", 5)
	if err != nil {
		t.Fatalf("FetchForecast failed: %v", err)
	}

	if len(data.Forecasts) != 2 {
		t.Fatalf("expected 2 forecast points, got %d", len(data.Forecasts))
	}
	if !data.Forecasts[0].HasRain {
		t.Fatal("expected first point to carry the rain flag")
	}
	if data.Forecasts[1].HasRain {
		t.Fatal("expected second point without rain flag")
	}
	if data.Forecasts[0].Temperature != 18.2 || data.Forecasts[0].Humidity != 60 {
		t.Fatalf("unexpected mapping: %+v", data.Forecasts[0])
	}
	if !data.Forecasts[0].Timestamp.Before(data.Forecasts[1].Timestamp) {
		t.Fatal("forecast points not chronological")
	}
}

func TestGetWeatherResolvesCityFirst(t *testing.T) {
	mux := http.NewServeMux()
	geoHandler(t, mux)
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("lat") != "32.82" || q.Get("lon") != "34.99" {
			t.Fatalf("expected geocoded coordinates in query, got %s", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"coord": {"lat": 32.82, "lon": 34.99},
			"main": {"temp": 24.5, "pressure": 1013, "humidity": 65},
			"wind": {"speed": 4.2, "deg": 280},
			"weather": [{"description": "clear sky", "icon": "01d"}],
			"name": "Haifa",
			"dt": 1767225600,
			"sys": {"sunrise": 1767202800, "sunset": 1767239100}
		}`))
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	data, err := client.GetWeather(context.Background(), "Haifa")
	if err != nil {
		t.Fatalf("GetWeather failed: %v", err)
	}
	if data.Temperature != 24.5 || data.Humidity != 65 {
		t.Fatalf("unexpected mapping: %+v", data)
	}
	if data.Latitude != 32.82 || data.Longitude != 34.99 {
		t.Fatalf("expected coordinates mapped, got %+v", data)
	}
	if data.Location != "Haifa" {
		t.Fatalf("expected requested location echoed, got %q", data.Location)
	}
}

func TestGetWeatherUnknownLocation(t *testing.T) {
	weatherCalled := false
	mux := http.NewServeMux()
	mux.HandleFunc("/direct", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	})
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		weatherCalled = true
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	if _, err := client.GetWeather(context.Background(), "Nowhere"); err == nil {
		t.Fatal("expected error for unknown location")
	}
	if weatherCalled {
		t.Fatal("weather endpoint must not be queried when geocoding finds nothing")
	}
}

func TestGeocodeUnknownCity(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	client := NewClient("test-key")
	client.geoURL = srv.URL

	_, found, err := client.Geocode(context.Background(), "Nowhere")
	if err != nil {
		t.Fatalf("Geocode failed: %v", err)
	}
	if found {
		t.Fatal("expected found=false for empty geocoding result")
	}
}

func TestGetWeatherNon200(t *testing.T) {
	mux := http.NewServeMux()
	geoHandler(t, mux)
	mux.HandleFunc("/weather", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	client := newTestClient(srv)

	if _, err := client.GetWeather(context.Background(), "Haifa"); err == nil {
		t.Fatal("expected error for non-200 response")
	}
}
