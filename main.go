package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weather-insight/api"
	"weather-insight/cache"
	"weather-insight/collector"
	"weather-insight/datasource"
	"weather-insight/providers/openweathermap"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file loaded", "err", err)
	}

	port := flag.Int("port", 8080, "Port to run the server on")
	updateInterval := flag.Duration("update", 15*time.Minute, "Weather data update interval")
	cacheDuration := flag.Duration("cache", 10*time.Minute, "Provider response cache duration")
	configFile := flag.String("config", "config.json", "Path to configuration file")
	enableRateLimiting := flag.Bool("rate-limit", true, "Enable API rate limiting")
	debug := flag.Bool("debug", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stdout, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))

	config, err := datasource.LoadConfig(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "path", *configFile, "err", err)
		os.Exit(1)
	}

	var providers []datasource.WeatherProvider
	var forecastSources []datasource.ForecastSource

	if config.OpenWeatherMap.Enabled {
		apiKey := config.OpenWeatherMap.APIKey
		if apiKey == "" {
			apiKey = os.Getenv("OPENWEATHERMAP_API_KEY")
		}
		if apiKey == "" {
			slog.Error("OpenWeatherMap is enabled but no API key provided")
			os.Exit(1)
		}

		owm := openweathermap.NewClient(apiKey)

		var weatherProvider datasource.WeatherProvider = owm
		var forecastSource datasource.ForecastSource = owm
		if *enableRateLimiting {
			// OpenWeatherMap free tier allows 60 calls/minute across
			// all endpoints; allow short bursts.
			limited := datasource.NewRateLimitedProvider(owm, 1.0, 5)
			weatherProvider = limited
			forecastSource = limited
			slog.Info("rate limiting enabled", "provider", owm.Name())
		}

		providers = append(providers,
			cache.NewCachedWeatherProvider(weatherProvider, *cacheDuration))
		forecastSources = append(forecastSources,
			cache.NewCachedForecastSource(forecastSource, *cacheDuration))
	}

	if len(providers) == 0 {
		slog.Error("no weather providers enabled in configuration")
		os.Exit(1)
	}

	weatherStore := api.NewWeatherStore()
	forecastStore := api.NewForecastStore()

	server := api.NewServer(weatherStore, forecastStore, *port)
	server.RegisterForecastSources(forecastSources)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	coll := collector.New(providers, forecastSources, weatherStore, forecastStore,
		config.Locations, config.ForecastDays, *updateInterval)
	go coll.Run(ctx)

	// Periodically clean up forecasts that are no longer refreshed
	go func() {
		ticker := time.NewTicker(24 * time.Hour)
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				pruned := forecastStore.PruneOldForecasts(48 * time.Hour)
				if pruned > 0 {
					slog.Info("pruned stale forecasts", "count", pruned)
				}
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		if err := server.Start(); err != nil {
			slog.Info("server stopped", "err", err)
		}
	}()

	shutdownChan := make(chan os.Signal, 1)
	signal.Notify(shutdownChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-shutdownChan
	slog.Info("shutting down", "signal", sig.String())

	cancel()
	if err := server.Shutdown(); err != nil {
		slog.Warn("server shutdown error", "err", err)
	}
	slog.Info("shutdown complete")
}
