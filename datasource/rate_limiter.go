package datasource

import (
	"context"
	"fmt"

	"weather-insight/models"

	"golang.org/x/time/rate"
)

// RateLimitedWeatherProvider wraps a WeatherProvider with rate limiting
type RateLimitedWeatherProvider struct {
	provider WeatherProvider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedWeatherProvider creates a new rate limited weather provider
// rps is the maximum requests per second allowed (can be fractional for less than 1 request per second)
// burst is the maximum burst size allowed
func NewRateLimitedWeatherProvider(provider WeatherProvider, rps float64, burst int) *RateLimitedWeatherProvider {
	return &RateLimitedWeatherProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather fetches weather data, respecting rate limits
func (r *RateLimitedWeatherProvider) GetWeather(ctx context.Context, location string) (models.WeatherData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, location)
}

// Name returns the provider name
func (r *RateLimitedWeatherProvider) Name() string {
	return r.name
}

// RateLimitedForecastSource wraps a ForecastSource with rate limiting
type RateLimitedForecastSource struct {
	source  ForecastSource
	limiter *rate.Limiter
	name    string
}

// NewRateLimitedForecastSource creates a new rate limited forecast source
func NewRateLimitedForecastSource(source ForecastSource, rps float64, burst int) *RateLimitedForecastSource {
	return &RateLimitedForecastSource{
		source:  source,
		limiter: rate.NewLimiter(rate.Limit(rps), burst),
		name:    fmt.Sprintf("%s [Rate Limited]", source.Name()),
	}
}

// FetchForecast fetches forecast data, respecting rate limits
func (r *RateLimitedForecastSource) FetchForecast(ctx context.Context, location string, days int) (models.ForecastData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.source.FetchForecast(ctx, location, days)
}

// Name returns the source name
func (r *RateLimitedForecastSource) Name() string {
	return r.name
}

// Provider combines the three retrieval interfaces for providers that
// implement all of them
type Provider interface {
	WeatherProvider
	ForecastSource
	Geocoder
}

// RateLimitedProvider wraps a combined Provider with a shared rate limit
// across the weather, forecast and geocoding endpoints. OpenWeatherMap's
// free tier counts all three against the same quota.
type RateLimitedProvider struct {
	provider Provider
	limiter  *rate.Limiter
	name     string
}

// NewRateLimitedProvider creates a rate limited wrapper around a combined provider
func NewRateLimitedProvider(provider Provider, rps float64, burst int) *RateLimitedProvider {
	return &RateLimitedProvider{
		provider: provider,
		limiter:  rate.NewLimiter(rate.Limit(rps), burst),
		name:     fmt.Sprintf("%s [Rate Limited]", provider.Name()),
	}
}

// GetWeather implements WeatherProvider with rate limiting
func (r *RateLimitedProvider) GetWeather(ctx context.Context, location string) (models.WeatherData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.WeatherData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.GetWeather(ctx, location)
}

// FetchForecast implements ForecastSource with rate limiting
func (r *RateLimitedProvider) FetchForecast(ctx context.Context, location string, days int) (models.ForecastData, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return models.ForecastData{}, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.FetchForecast(ctx, location, days)
}

// Geocode implements Geocoder with rate limiting
func (r *RateLimitedProvider) Geocode(ctx context.Context, city string) (GeoPoint, bool, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return GeoPoint{}, false, fmt.Errorf("rate limit wait canceled: %w", err)
	}
	return r.provider.Geocode(ctx, city)
}

// Name returns the provider name
func (r *RateLimitedProvider) Name() string {
	return r.name
}

// Verify that our rate limited types implement the required interfaces
var (
	_ WeatherProvider = (*RateLimitedWeatherProvider)(nil)
	_ ForecastSource  = (*RateLimitedForecastSource)(nil)
	_ Provider        = (*RateLimitedProvider)(nil)
)
