// Command heatindex_sweep queries the running service for an
// apparent-vs-actual temperature curve at fixed humidity and prints it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
)

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the weather-insight API")
	humidity := flag.Float64("humidity", 70, "Relative humidity percentage for the sweep")
	from := flag.Float64("from", 20, "Sweep start temperature in Celsius")
	to := flag.Float64("to", 40, "Sweep end temperature in Celsius")
	step := flag.Float64("step", 1, "Sweep step in Celsius")
	flag.Parse()

	url := fmt.Sprintf("%s/api/heatindex/sweep?humidity=%g&from=%g&to=%g&step=%g",
		*baseURL, *humidity, *from, *to, *step)

	resp, err := http.Get(url)
	if err != nil {
		fmt.Fprintf(os.Stderr, "request failed: %v\n", err)
		os.Exit(1)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "server returned %d\n", resp.StatusCode)
		os.Exit(1)
	}

	var sweep struct {
		Humidity float64 `json:"humidity"`
		Points   []struct {
			ActualTemp float64 `json:"actualTemp"`
			HeatIndex  float64 `json:"heatIndex"`
			Difference float64 `json:"difference"`
			Comfort    string  `json:"comfort"`
		} `json:"points"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&sweep); err != nil {
		fmt.Fprintf(os.Stderr, "failed to decode response: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Apparent vs actual temperature at %.0f%% humidity\n", sweep.Humidity)
	fmt.Printf("%10s %12s %12s  %s\n", "actual", "feels like", "difference", "comfort")
	for _, p := range sweep.Points {
		fmt.Printf("%9.1fC %11.1fC %+11.1fC  %s\n",
			p.ActualTemp, p.HeatIndex, p.Difference, p.Comfort)
	}
}
