package weather

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func testClient(srv *httptest.Server, apiKey string) *Client {
	c := NewClient(apiKey, 5*time.Second)
	c.baseURL = srv.URL
	return c
}

func TestCurrentParsesConditions(t *testing.T) {
	var gotQuery map[string]string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		gotQuery = map[string]string{"q": q.Get("q"), "units": q.Get("units"), "appid": q.Get("appid")}
		w.Write([]byte(`{"main": {"temp": 21.6}, "weather": [{"main": "Clouds"}]}`))
	}))
	defer srv.Close()

	report := testClient(srv, "key").Current(context.Background(), "Madrid")
	require.Equal(t, Report{Temp: 22, Condition: "Clouds"}, report)
	require.Equal(t, map[string]string{"q": "Madrid", "units": "metric", "appid": "key"}, gotQuery)
}

func TestCurrentRoundsTowardNearest(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 17.4}, "weather": [{"main": "Rain"}]}`))
	}))
	defer srv.Close()

	report := testClient(srv, "key").Current(context.Background(), "London")
	require.Equal(t, 17, report.Temp)
}

func TestCurrentFallsBackOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	report := testClient(srv, "key").Current(context.Background(), "London")
	require.Equal(t, Fallback, report)
}

func TestCurrentFallsBackOnEmptyConditions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"main": {"temp": 10}, "weather": []}`))
	}))
	defer srv.Close()

	report := testClient(srv, "key").Current(context.Background(), "London")
	require.Equal(t, Fallback, report)
}

func TestCurrentFallsBackWithoutAPIKey(t *testing.T) {
	requests := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer srv.Close()

	report := testClient(srv, "").Current(context.Background(), "London")
	require.Equal(t, Fallback, report)
	require.Zero(t, requests, "no request expected without an api key")
}
