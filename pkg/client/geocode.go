package client

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultGeocodeBaseURL = "https://nominatim.openstreetmap.org"

// Geocoder resolves coordinates to a human readable place name. Lookup
// failures are not surfaced; callers always get a usable label.
type Geocoder struct {
	rest *resty.Client
}

func NewGeocoder() *Geocoder {
	return NewGeocoderWithBaseURL(defaultGeocodeBaseURL)
}

func NewGeocoderWithBaseURL(baseURL string) *Geocoder {
	return &Geocoder{
		rest: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(10 * time.Second).
			SetHeader("User-Agent", "breathsafe-client"),
	}
}

type reverseGeocodeResponse struct {
	DisplayName string `json:"display_name"`
}

// FormatCoordinates renders a coordinate pair the way location labels
// show it when no place name is known.
func FormatCoordinates(lat, lng float64) string {
	return fmt.Sprintf("%.4f, %.4f", lat, lng)
}

// ReverseGeocode returns the display name for the coordinates, or the
// formatted coordinates when the lookup fails or returns nothing.
func (g *Geocoder) ReverseGeocode(ctx context.Context, lat, lng float64) string {
	var result reverseGeocodeResponse
	resp, err := g.rest.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    fmt.Sprintf("%f", lat),
			"lon":    fmt.Sprintf("%f", lng),
		}).
		SetResult(&result).
		Get("/reverse")
	if err != nil || resp.IsError() || result.DisplayName == "" {
		return FormatCoordinates(lat, lng)
	}
	return result.DisplayName
}
