// Package openweathermap implements the datasource interfaces against the
// OpenWeatherMap v2.5 and geocoding v1.0 APIs.
package openweathermap

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"weather-insight/datasource"
	"weather-insight/models"
)

const (
	baseURL = "https://api.openweathermap.org/data/2.5"
	geoURL  = "https://api.openweathermap.org/geo/1.0"
)

// Client is an OpenWeatherMap client implementing WeatherProvider,
// ForecastSource and Geocoder
type Client struct {
	apiKey     string
	baseURL    string
	geoURL     string
	httpClient *http.Client
}

// Ensure Client implements the combined provider interface
var _ datasource.Provider = (*Client)(nil)

// NewClient creates a new OpenWeatherMap client
func NewClient(apiKey string) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: baseURL,
		geoURL:  geoURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Name returns the provider name
func (c *Client) Name() string {
	return "OpenWeatherMap"
}

// currentWeatherResponse represents the /weather API response structure
type currentWeatherResponse struct {
	Coord struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main struct {
		Temp     float64 `json:"temp"`
		Pressure float64 `json:"pressure"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Name string `json:"name"`
	Dt   int64  `json:"dt"`
	Sys  struct {
		Sunrise int64 `json:"sunrise"`
		Sunset  int64 `json:"sunset"`
	} `json:"sys"`
}

// GetWeather fetches current weather for a location. The location name is
// resolved to coordinates through the geocoding API first, so city names in
// any language the geocoder understands work.
func (c *Client) GetWeather(ctx context.Context, location string) (models.WeatherData, error) {
	point, err := c.resolve(ctx, location)
	if err != nil {
		return models.WeatherData{}, err
	}

	params := c.coordParams(point)
	params.Add("units", "metric")
	params.Add("lang", "en")

	var owmResp currentWeatherResponse
	if err := c.getJSON(ctx, c.baseURL+"/weather", params, &owmResp); err != nil {
		return models.WeatherData{}, err
	}

	data := models.WeatherData{
		Provider:    c.Name(),
		Location:    location,
		Latitude:    owmResp.Coord.Lat,
		Longitude:   owmResp.Coord.Lon,
		Timestamp:   time.Unix(owmResp.Dt, 0),
		Temperature: owmResp.Main.Temp,
		Humidity:    owmResp.Main.Humidity,
		WindSpeed:   owmResp.Wind.Speed,
		Pressure:    owmResp.Main.Pressure,
		WindDeg:     owmResp.Wind.Deg,
		Sunrise:     time.Unix(owmResp.Sys.Sunrise, 0),
		Sunset:      time.Unix(owmResp.Sys.Sunset, 0),
	}

	if len(owmResp.Weather) > 0 {
		data.Description = owmResp.Weather[0].Description
		data.Icon = owmResp.Weather[0].Icon
	}

	return data, nil
}

// resolve geocodes a city name, failing when the city is unknown
func (c *Client) resolve(ctx context.Context, location string) (datasource.GeoPoint, error) {
	point, found, err := c.Geocode(ctx, location)
	if err != nil {
		return datasource.GeoPoint{}, fmt.Errorf("failed to geocode %q: %w", location, err)
	}
	if !found {
		return datasource.GeoPoint{}, fmt.Errorf("unknown location: %s", location)
	}
	return point, nil
}

// coordParams builds the shared coordinate and credential parameters
func (c *Client) coordParams(point datasource.GeoPoint) url.Values {
	params := url.Values{}
	params.Add("lat", strconv.FormatFloat(point.Lat, 'f', -1, 64))
	params.Add("lon", strconv.FormatFloat(point.Lon, 'f', -1, 64))
	params.Add("appid", c.apiKey)
	return params
}

// getJSON performs a GET request with the API parameters and decodes the
// JSON response into out
func (c *Client) getJSON(ctx context.Context, endpoint string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("API returned non-200 status: %d", resp.StatusCode)
	}

	rawData, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if err := json.Unmarshal(rawData, out); err != nil {
		return fmt.Errorf("failed to parse API response: %w", err)
	}

	return nil
}
