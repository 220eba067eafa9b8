package wallpaper_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/minhvu2004/animewalls/internal/wallpaper"
	"github.com/minhvu2004/animewalls/pkg/config"
	"github.com/minhvu2004/animewalls/pkg/logger"
)

func newClient(t *testing.T, baseURL, apiKey string) *wallpaper.Client {
	t.Helper()
	logger.Init(logger.INFO, false, nil)
	cfg := &config.Config{
		WallhavenBaseURL: baseURL,
		WallhavenAPIKey:  apiKey,
		SearchTimeout:    2 * time.Second,
	}
	return wallpaper.NewClient(cfg, logger.GetLogger())
}

func TestSearch_SliceThenFilter(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("categories") != "010" || q.Get("purity") != "100" || q.Get("sorting") != "relevance" {
			t.Errorf("unexpected query params: %v", q)
		}
		w.Header().Set("Content-Type", "application/json")
		// Seven raw results; only the first five may be inspected, and two
		// of those are missing a field.
		w.Write([]byte(`{"data": [
			{"path": "https://img/full1", "thumbs": {"large": "https://img/t1"}},
			{"path": "https://img/full2", "thumbs": {}},
			{"path": "https://img/full3", "thumbs": {"large": "https://img/t3"}},
			{"path": "", "thumbs": {"large": "https://img/t4"}},
			{"path": "https://img/full5", "thumbs": {"large": "https://img/t5"}},
			{"path": "https://img/full6", "thumbs": {"large": "https://img/t6"}},
			{"path": "https://img/full7", "thumbs": {"large": "https://img/t7"}}
		]}`))
	}))
	defer srv.Close()

	results := newClient(t, srv.URL, "").Search(context.Background(), "demo show")
	if len(results) != 3 {
		t.Fatalf("expected 3 results after slice-then-filter, got %d", len(results))
	}
	wantFull := []string{"https://img/full1", "https://img/full3", "https://img/full5"}
	for i, want := range wantFull {
		if results[i].Full != want {
			t.Errorf("result %d full = %q, want %q", i, results[i].Full, want)
		}
	}
}

func TestSearch_APIKeyHeader(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("X-API-Key")
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": []}`))
	}))
	defer srv.Close()

	newClient(t, srv.URL, "secret").Search(context.Background(), "demo")
	if gotKey != "secret" {
		t.Errorf("expected api key header, got %q", gotKey)
	}
}

func TestSearch_RateLimitedReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "slow down", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	results := newClient(t, srv.URL, "").Search(context.Background(), "demo")
	if len(results) != 0 {
		t.Fatalf("expected empty results on 429, got %d", len(results))
	}
}

func TestSearch_NetworkFailureReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // connection refused from here on

	results := newClient(t, srv.URL, "").Search(context.Background(), "demo")
	if len(results) != 0 {
		t.Fatalf("expected empty results on network failure, got %d", len(results))
	}
}

func TestSearch_MalformedBodyReturnsEmpty(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": "not a list"`))
	}))
	defer srv.Close()

	results := newClient(t, srv.URL, "").Search(context.Background(), "demo")
	if len(results) != 0 {
		t.Fatalf("expected empty results on malformed body, got %d", len(results))
	}
}
