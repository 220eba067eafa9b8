package health_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/minhvu2004/animewalls/internal/health"
	"github.com/minhvu2004/animewalls/pkg/config"
)

func newRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(gin.TestMode)
	handler := health.NewHandler(cfg)
	router := gin.New()
	router.GET("/health", handler.Healthz)
	router.GET("/readyz", handler.Readyz)
	return router
}

func TestHealthz_AlwaysReturnsOK(t *testing.T) {
	router := newRouter(&config.Config{})

	req := httptest.NewRequest("GET", "/health", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if resp.Body.String() != `{"status":"alive"}` {
		t.Fatalf("unexpected body: %s", resp.Body.String())
	}
}

func TestReadyz_ValidConfig(t *testing.T) {
	router := newRouter(&config.Config{
		MALBaseURL:       "https://myanimelist.net",
		WallhavenBaseURL: "https://wallhaven.cc/api/v1",
	})

	req := httptest.NewRequest("GET", "/readyz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestReadyz_RejectsRelativeURL(t *testing.T) {
	router := newRouter(&config.Config{
		MALBaseURL:       "not-a-url",
		WallhavenBaseURL: "https://wallhaven.cc/api/v1",
	})

	req := httptest.NewRequest("GET", "/readyz", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	if resp.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", resp.Code)
	}
}
