package cache

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"weather-insight/datasource"
	"weather-insight/models"
)

// CachedForecastSource wraps a ForecastSource and adds caching functionality
type CachedForecastSource struct {
	source        datasource.ForecastSource
	cache         map[string]forecastCacheEntry // key is location:days
	mutex         sync.RWMutex
	cacheDuration time.Duration
}

// forecastCacheEntry represents a cached forecast with its timestamp
type forecastCacheEntry struct {
	Data      models.ForecastData
	Timestamp time.Time
}

// NewCachedForecastSource creates a new cached wrapper around a forecast source
func NewCachedForecastSource(source datasource.ForecastSource, cacheDuration time.Duration) *CachedForecastSource {
	return &CachedForecastSource{
		source:        source,
		cache:         make(map[string]forecastCacheEntry),
		cacheDuration: cacheDuration,
	}
}

// Name returns the name of the underlying forecast source with [Cached] prefix
func (c *CachedForecastSource) Name() string {
	return c.source.Name() + " [Cached]"
}

// FetchForecast fetches forecast data, using cache when available
func (c *CachedForecastSource) FetchForecast(ctx context.Context, location string, days int) (models.ForecastData, error) {
	cacheKey := fmt.Sprintf("%s:%d", location, days)

	c.mutex.RLock()
	entry, found := c.cache[cacheKey]
	c.mutex.RUnlock()

	if found && time.Since(entry.Timestamp) < c.cacheDuration {
		cacheRequests.WithLabelValues(c.source.Name(), "hit").Inc()
		slog.Debug("forecast cache hit",
			"source", c.source.Name(),
			"location", location,
			"age", time.Since(entry.Timestamp).Round(time.Second))
		return entry.Data, nil
	}

	cacheRequests.WithLabelValues(c.source.Name(), "miss").Inc()

	data, err := c.source.FetchForecast(ctx, location, days)
	if err != nil {
		return models.ForecastData{}, err
	}

	c.mutex.Lock()
	c.cache[cacheKey] = forecastCacheEntry{
		Data:      data,
		Timestamp: time.Now(),
	}
	c.mutex.Unlock()

	return data, nil
}

// Ensure CachedForecastSource implements the ForecastSource interface
var _ datasource.ForecastSource = (*CachedForecastSource)(nil)
