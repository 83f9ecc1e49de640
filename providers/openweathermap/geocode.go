package openweathermap

import (
	"context"
	"net/url"

	"weather-insight/datasource"
)

// geocodeEntry represents one result from the /geo/1.0/direct API
type geocodeEntry struct {
	Name string  `json:"name"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
}

// Geocode resolves a city name to coordinates using the OpenWeatherMap
// geocoding API. An unknown city returns found=false without an error.
func (c *Client) Geocode(ctx context.Context, city string) (datasource.GeoPoint, bool, error) {
	params := url.Values{}
	params.Add("q", city)
	params.Add("limit", "1")
	params.Add("appid", c.apiKey)

	var entries []geocodeEntry
	if err := c.getJSON(ctx, c.geoURL+"/direct", params, &entries); err != nil {
		return datasource.GeoPoint{}, false, err
	}

	if len(entries) == 0 {
		return datasource.GeoPoint{}, false, nil
	}

	return datasource.GeoPoint{
		Lat:  entries[0].Lat,
		Lon:  entries[0].Lon,
		Name: entries[0].Name,
	}, true, nil
}
