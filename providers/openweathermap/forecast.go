package openweathermap

import (
	"context"
	"strconv"
	"time"

	"weather-insight/models"
)

// forecastResponse represents the /forecast API response structure
type forecastResponse struct {
	City struct {
		Name string `json:"name"`
	} `json:"city"`
	List []forecastItem `json:"list"`
}

type forecastItem struct {
	Dt   int64 `json:"dt"` // Timestamp
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Pressure  float64 `json:"pressure"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
		Icon        string `json:"icon"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
		Deg   int     `json:"deg"`
	} `json:"wind"`
	// Present only when precipitation is forecast for the slot. The
	// trend analysis counts samples on the field's presence, so this
	// must stay a pointer.
	Rain *struct {
		ThreeHour float64 `json:"3h"`
	} `json:"rain,omitempty"`
}

// FetchForecast gets forecast data from OpenWeatherMap. The location name
// is resolved to coordinates through the geocoding API first. The free tier
// provides 5-day forecasts at 3-hour intervals, 8 samples per day.
func (c *Client) FetchForecast(ctx context.Context, location string, days int) (models.ForecastData, error) {
	if days <= 0 || days > 5 {
		days = 5
	}

	point, err := c.resolve(ctx, location)
	if err != nil {
		return models.ForecastData{}, err
	}

	params := c.coordParams(point)
	params.Add("units", "metric")
	params.Add("lang", "en")
	params.Add("cnt", strconv.Itoa(days*8)) // 8 forecasts per day (every 3 hours)

	var forecastResp forecastResponse
	if err := c.getJSON(ctx, c.baseURL+"/forecast", params, &forecastResp); err != nil {
		return models.ForecastData{}, err
	}

	forecastData := models.ForecastData{
		Provider:  c.Name(),
		Location:  location,
		Forecasts: make([]models.Forecast, 0, len(forecastResp.List)),
		Updated:   time.Now(),
	}

	for _, item := range forecastResp.List {
		forecast := models.Forecast{
			Temperature: item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			WindDeg:     item.Wind.Deg,
			Pressure:    item.Main.Pressure,
			HasRain:     item.Rain != nil,
			Timestamp:   time.Unix(item.Dt, 0),
		}
		if len(item.Weather) > 0 {
			forecast.Description = item.Weather[0].Description
			forecast.Icon = item.Weather[0].Icon
		}

		forecastData.Forecasts = append(forecastData.Forecasts, forecast)
	}

	return forecastData, nil
}
