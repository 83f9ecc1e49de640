// Package analysis contains the analytic core of the service: aggregate
// trend statistics over a forecast series and the Steadman heat index.
// Everything here is a pure function of its inputs and safe for
// concurrent use.
package analysis

import (
	"weather-insight/models"
)

// DefaultWindowSize is the number of forecast points in the early and late
// comparison windows. At the 3-hour sampling interval used by the forecast
// providers, 8 points cover one day.
const DefaultWindowSize = 8

// Trend classifies the direction of temperature change across a series
type Trend string

const (
	TrendRising  Trend = "Rising"
	TrendFalling Trend = "Falling"
)

// TrendReport holds aggregate statistics for a forecast series
type TrendReport struct {
	HasData                bool    `json:"hasData"`
	AverageTemp            float64 `json:"averageTemp"` // in Celsius
	MinTemp                float64 `json:"minTemp"`     // in Celsius
	MaxTemp                float64 `json:"maxTemp"`     // in Celsius
	Trend                  Trend   `json:"trend,omitempty"`
	TrendDelta             float64 `json:"trendDelta"`             // absolute change between window means, in Celsius
	RainProbabilityPercent float64 `json:"rainProbabilityPercent"` // share of points that carried a rain field
	SampleCount            int     `json:"sampleCount"`
}

// AnalyzeTrends computes aggregate statistics and a rising/falling trend
// classification for a chronological forecast series, using
// DefaultWindowSize for the comparison windows.
//
// An empty or nil series is a normal outcome (upstream data unavailable)
// and yields a report with HasData false; no error is returned.
func AnalyzeTrends(series []models.Forecast) TrendReport {
	return AnalyzeTrendsWindow(series, DefaultWindowSize)
}

// AnalyzeTrendsWindow is AnalyzeTrends with an explicit comparison window
// size. A non-positive windowSize falls back to DefaultWindowSize. When the
// series is shorter than the window, both windows degrade to the entire
// series and the trend delta is zero.
func AnalyzeTrendsWindow(series []models.Forecast, windowSize int) TrendReport {
	if len(series) == 0 {
		return TrendReport{}
	}
	if windowSize <= 0 {
		windowSize = DefaultWindowSize
	}

	temps := make([]float64, len(series))
	for i, f := range series {
		temps[i] = f.Temperature
	}

	minTemp, maxTemp := temps[0], temps[0]
	sum := 0.0
	for _, t := range temps {
		sum += t
		if t < minTemp {
			minTemp = t
		}
		if t > maxTemp {
			maxTemp = t
		}
	}

	if windowSize > len(temps) {
		windowSize = len(temps)
	}
	earlyMean := mean(temps[:windowSize])
	lateMean := mean(temps[len(temps)-windowSize:])

	trend := TrendFalling
	delta := earlyMean - lateMean
	if lateMean > earlyMean {
		trend = TrendRising
		delta = lateMean - earlyMean
	}

	rainy := 0
	for _, f := range series {
		if f.HasRain {
			rainy++
		}
	}

	return TrendReport{
		HasData:                true,
		AverageTemp:            sum / float64(len(temps)),
		MinTemp:                minTemp,
		MaxTemp:                maxTemp,
		Trend:                  trend,
		TrendDelta:             delta,
		RainProbabilityPercent: 100 * float64(rainy) / float64(len(series)),
		SampleCount:            len(series),
	}
}

func mean(vals []float64) float64 {
	sum := 0.0
	for _, v := range vals {
		sum += v
	}
	return sum / float64(len(vals))
}
