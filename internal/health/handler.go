package health

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"

	"github.com/minhvu2004/animewalls/pkg/config"
)

type Handler struct {
	cfg *config.Config
}

func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "alive"})
}

// Readyz verifies the process configuration is usable: both upstream base
// URLs must be absolute. No outbound call is made; upstream flakiness is
// reported per request, not by readiness.
func (h *Handler) Readyz(c *gin.Context) {
	if h.cfg == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": "config_not_loaded"})
		return
	}

	for name, raw := range map[string]string{
		"list_source_url":  h.cfg.MALBaseURL,
		"image_search_url": h.cfg.WallhavenBaseURL,
	} {
		u, err := url.Parse(raw)
		if err != nil || !u.IsAbs() {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "reason": name + "_invalid"})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
