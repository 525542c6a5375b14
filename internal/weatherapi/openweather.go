// Package weatherapi implements the OpenWeatherMap current-conditions client.
package weatherapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/sony/gobreaker"

	"fareengine/internal/types"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Client fetches the current weather condition for a coordinate. Calls go
// through a circuit breaker so a flapping upstream stops consuming the
// per-estimate weather timeout budget.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	circuit    *gobreaker.CircuitBreaker
}

func NewClient(httpClient *http.Client, apiKey string) *Client {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "openweather",
		MaxRequests: 5,
		Interval:    1 * time.Minute,
		Timeout:     2 * time.Minute,
	})

	return &Client{
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
		httpClient: httpClient,
		circuit:    cb,
	}
}

// CurrentCondition returns the provider's condition label (e.g. "Rain",
// "Thunderstorm", "Clear") for the coordinate.
func (c *Client) CurrentCondition(ctx context.Context, p types.Point) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("openweather api key is not configured")
	}

	values := url.Values{}
	values.Set("appid", c.apiKey)
	values.Set("lat", fmt.Sprintf("%f", p.Lat))
	values.Set("lon", fmt.Sprintf("%f", p.Lng))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s?%s", c.baseURL, values.Encode()), nil)
	if err != nil {
		return "", err
	}

	result, err := c.circuit.Execute(func() (interface{}, error) {
		resp, execErr := c.httpClient.Do(req)
		if execErr != nil {
			return nil, execErr
		}
		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			resp.Body.Close()
			return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
		}
		return resp, nil
	})
	if err != nil {
		return "", err
	}

	resp := result.(*http.Response)
	defer resp.Body.Close()

	var payload struct {
		Weather []struct {
			Main        string `json:"main"`
			Description string `json:"description"`
		} `json:"weather"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return "", err
	}
	if len(payload.Weather) == 0 {
		return "", fmt.Errorf("empty weather payload")
	}

	// The description carries qualifiers ("heavy intensity rain") the
	// classifier keys on; fall back to the coarse label.
	if payload.Weather[0].Description != "" {
		return payload.Weather[0].Description, nil
	}
	return payload.Weather[0].Main, nil
}
