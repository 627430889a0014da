// Package newsdata is a minimal client for the NewsData.io latest-news API.
package newsdata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/scoopnews/newsdesk/internal/retry"
)

const (
	maxAttempts = 3
	retryDelay  = 1 * time.Second
)

type Client struct {
	httpClient *http.Client
	apiKey     string
	baseURL    string
}

func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

// Search issues a single free-text query. Category and country are
// deliberately absent: search takes priority over both.
func (c *Client) Search(ctx context.Context, query, language string, size int) ([]Result, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("q", query)
	params.Set("language", language)
	params.Set("size", strconv.Itoa(size))

	return c.fetch(ctx, params)
}

// Category fetches the latest items for one category bucket. An empty
// country means no country filter.
func (c *Client) Category(ctx context.Context, category, language, country string, size int) ([]Result, error) {
	params := url.Values{}
	params.Set("apikey", c.apiKey)
	params.Set("language", language)
	params.Set("category", category)
	if country != "" {
		params.Set("country", country)
	}
	params.Set("size", strconv.Itoa(size))

	return c.fetch(ctx, params)
}

func (c *Client) fetch(ctx context.Context, params url.Values) ([]Result, error) {
	fullURL := c.baseURL + "?" + params.Encode()

	var results []Result
	err := retry.WithRetry(ctx, retry.Config{MaxAttempts: maxAttempts, Delay: retryDelay, Backoff: true}, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
		if err != nil {
			return retry.Permanent{Err: err}
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return fmt.Errorf("aggregator request: %w", err)
		}
		defer resp.Body.Close()

		switch resp.StatusCode {
		case http.StatusOK:
			// fallthrough to parse below
		case http.StatusTooManyRequests, http.StatusInternalServerError,
			http.StatusBadGateway, http.StatusServiceUnavailable:
			io.Copy(io.Discard, resp.Body)
			return fmt.Errorf("aggregator returned status %d", resp.StatusCode)
		default:
			// Bad key, bad query: retrying won't help.
			io.Copy(io.Discard, resp.Body)
			return retry.Permanent{Err: fmt.Errorf("aggregator returned status %d", resp.StatusCode)}
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("reading aggregator response: %w", err)
		}

		var parsed Response
		if err := json.Unmarshal(body, &parsed); err != nil {
			return retry.Permanent{Err: fmt.Errorf("parsing aggregator response: %w", err)}
		}

		results = parsed.Results
		return nil
	})
	if err != nil {
		return nil, err
	}

	slog.Debug("[NewsData] fetched", slog.Int("results", len(results)))
	return results, nil
}
