// Package weather fetches current conditions for the edition masthead from
// OpenWeatherMap. Any failure falls back to a fixed pleasant default so the
// masthead always renders.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"net/http"
	"net/url"
	"time"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// Report is one current-conditions reading. Temp is whole degrees Celsius.
type Report struct {
	Temp      int
	Condition string
}

// Fallback is served whenever the service is unreachable or misconfigured.
var Fallback = Report{Temp: 18, Condition: "Clear"}

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    defaultBaseURL,
	}
}

type response struct {
	Main struct {
		Temp float64 `json:"temp"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
}

// Current returns conditions for city, or Fallback on any error. It never
// fails from the caller's perspective.
func (c *Client) Current(ctx context.Context, city string) Report {
	report, err := c.fetch(ctx, city)
	if err != nil {
		slog.Debug("[Weather] fetch failed, using fallback",
			slog.String("city", city), slog.String("error", err.Error()))
		return Fallback
	}
	return report
}

func (c *Client) fetch(ctx context.Context, city string) (Report, error) {
	if c.apiKey == "" {
		return Report{}, fmt.Errorf("missing api key")
	}

	params := url.Values{}
	params.Set("q", city)
	params.Set("units", "metric")
	params.Set("appid", c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return Report{}, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Report{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Report{}, fmt.Errorf("weather api returned status %d", resp.StatusCode)
	}

	var parsed response
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return Report{}, err
	}
	if len(parsed.Weather) == 0 {
		return Report{}, fmt.Errorf("weather api returned no conditions")
	}

	return Report{
		Temp:      int(math.Round(parsed.Main.Temp)),
		Condition: parsed.Weather[0].Main,
	}, nil
}
