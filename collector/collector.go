// Package collector periodically refreshes current weather and forecast
// snapshots from the configured providers into the API stores.
package collector

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"weather-insight/api"
	"weather-insight/datasource"
)

// Collector manages the periodic collection of weather data
type Collector struct {
	providers       []datasource.WeatherProvider
	forecastSources []datasource.ForecastSource
	weatherStore    *api.WeatherStore
	forecastStore   *api.ForecastStore
	locations       []string
	forecastDays    int
	interval        time.Duration
	fetchTimeout    time.Duration
}

// New creates a collector publishing into the given stores
func New(
	providers []datasource.WeatherProvider,
	forecastSources []datasource.ForecastSource,
	weatherStore *api.WeatherStore,
	forecastStore *api.ForecastStore,
	locations []string,
	forecastDays int,
	interval time.Duration,
) *Collector {
	return &Collector{
		providers:       providers,
		forecastSources: forecastSources,
		weatherStore:    weatherStore,
		forecastStore:   forecastStore,
		locations:       locations,
		forecastDays:    forecastDays,
		interval:        interval,
		fetchTimeout:    30 * time.Second,
	}
}

// SetFetchTimeout changes the timeout applied to each refresh pass
func (c *Collector) SetFetchTimeout(timeout time.Duration) {
	c.fetchTimeout = timeout
}

// Run refreshes immediately, then on the configured interval until the
// context is canceled
func (c *Collector) Run(ctx context.Context) {
	c.Refresh(ctx)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.Refresh(ctx)
		case <-ctx.Done():
			return
		}
	}
}

// Refresh fetches the latest weather and forecast data from all providers
// for all locations and publishes the results into the stores. Individual
// provider failures are logged and skipped; a refresh never fails as a
// whole.
func (c *Collector) Refresh(ctx context.Context) {
	fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
	defer cancel()

	var wg sync.WaitGroup

	for _, location := range c.locations {
		for _, provider := range c.providers {
			wg.Add(1)
			go func(loc string, prov datasource.WeatherProvider) {
				defer wg.Done()

				data, err := prov.GetWeather(fetchCtx, loc)
				if err != nil {
					providerFetches.WithLabelValues(prov.Name(), "error").Inc()
					slog.Warn("weather fetch failed", "provider", prov.Name(), "location", loc, "err", err)
					return
				}

				providerFetches.WithLabelValues(prov.Name(), "ok").Inc()
				c.weatherStore.UpdateWeather(data)
				slog.Debug("weather updated", "provider", prov.Name(), "location", loc)
			}(location, provider)
		}

		for _, source := range c.forecastSources {
			wg.Add(1)
			go func(loc string, src datasource.ForecastSource) {
				defer wg.Done()

				forecast, err := src.FetchForecast(fetchCtx, loc, c.forecastDays)
				if err != nil {
					providerFetches.WithLabelValues(src.Name(), "error").Inc()
					slog.Warn("forecast fetch failed", "source", src.Name(), "location", loc, "err", err)
					return
				}

				providerFetches.WithLabelValues(src.Name(), "ok").Inc()
				c.forecastStore.UpdateForecast(forecast)
				slog.Debug("forecast updated",
					"source", src.Name(), "location", loc, "points", len(forecast.Forecasts))
			}(location, source)
		}
	}

	wg.Wait()
}
