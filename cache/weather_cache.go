// Package cache provides TTL caching decorators around the datasource
// interfaces, with hit/miss counters exported as Prometheus metrics.
package cache

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"weather-insight/datasource"
	"weather-insight/models"
)

// CachedWeatherProvider wraps a WeatherProvider and adds caching functionality
type CachedWeatherProvider struct {
	provider      datasource.WeatherProvider
	cache         map[string]weatherCacheEntry
	mutex         sync.RWMutex
	cacheDuration time.Duration
}

// weatherCacheEntry represents a cached weather data item with its timestamp
type weatherCacheEntry struct {
	Data      models.WeatherData
	Timestamp time.Time
}

// NewCachedWeatherProvider creates a new cached wrapper around a weather provider
func NewCachedWeatherProvider(provider datasource.WeatherProvider, cacheDuration time.Duration) *CachedWeatherProvider {
	return &CachedWeatherProvider{
		provider:      provider,
		cache:         make(map[string]weatherCacheEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying provider with [Cached] prefix
func (c *CachedWeatherProvider) Name() string {
	return c.provider.Name() + " [Cached]"
}

// GetWeather fetches weather data, using cache when available
func (c *CachedWeatherProvider) GetWeather(ctx context.Context, location string) (models.WeatherData, error) {
	c.mutex.RLock()
	entry, found := c.cache[location]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		cacheRequests.WithLabelValues(c.provider.Name(), "hit").Inc()
		slog.Debug("weather cache hit",
			"provider", c.provider.Name(),
			"location", location,
			"age", time.Since(entry.Timestamp).Round(time.Second))
		return entry.Data, nil
	}

	cacheRequests.WithLabelValues(c.provider.Name(), "miss").Inc()

	data, err := c.provider.GetWeather(ctx, location)
	if err != nil {
		return models.WeatherData{}, err
	}

	c.mutex.Lock()
	c.cache[location] = weatherCacheEntry{
		Data:      data,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return data, nil
}

// Ensure CachedWeatherProvider implements the WeatherProvider interface
var _ datasource.WeatherProvider = (*CachedWeatherProvider)(nil)
