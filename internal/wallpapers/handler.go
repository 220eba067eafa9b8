package wallpapers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/minhvu2004/animewalls/internal/anime"
	"github.com/minhvu2004/animewalls/internal/middleware"
	"github.com/minhvu2004/animewalls/internal/source"
	"github.com/minhvu2004/animewalls/internal/wallpaper"
	"github.com/minhvu2004/animewalls/pkg/logger"
	"github.com/minhvu2004/animewalls/pkg/metrics"
	"github.com/minhvu2004/animewalls/pkg/models"
)

// Handler drives one request end to end: fetch the completed list, group
// it into canonical series, search wallpapers per group, assemble the map.
type Handler struct {
	fetcher *source.Fetcher
	search  *wallpaper.Client
	log     *logger.Logger
}

func NewHandler(fetcher *source.Fetcher, search *wallpaper.Client, log *logger.Logger) *Handler {
	return &Handler{
		fetcher: fetcher,
		search:  search,
		log:     log.WithContext("component", "wallpapers_handler"),
	}
}

// GetWallpapers handles GET /api/wallpapers/:username.
func (h *Handler) GetWallpapers(c *gin.Context) {
	metrics.IncrementRequests()

	username := strings.TrimSpace(c.Param("username"))
	if username == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username is required"})
		return
	}

	ctx := c.Request.Context()
	log := h.requestLogger(c)

	entries, err := h.fetcher.Fetch(ctx, username)
	if err != nil {
		h.respondFetchError(c, log, username, err)
		return
	}
	if len(entries) == 0 {
		c.JSON(http.StatusNotFound, gin.H{
			"message": fmt.Sprintf("no completed anime found for user %q", username),
		})
		return
	}

	groups := anime.Group(entries)
	log.Info("grouped_entries",
		"username", username,
		"entries", strconv.Itoa(len(entries)),
		"groups", strconv.Itoa(len(groups)))

	results := make(map[string]models.GroupWallpapers)
	count := 0
	for key, g := range groups {
		count++
		log.Debug("searching_wallpapers",
			"progress", fmt.Sprintf("%d/%d", count, len(groups)),
			"query", g.SearchTerm)

		walls := h.search.Search(ctx, g.SearchTerm)
		if len(walls) == 0 {
			continue
		}
		results[key] = models.GroupWallpapers{
			DisplayTitle: g.DisplayTitle,
			MALCover:     g.CoverURL,
			Wallpapers:   walls,
		}
	}

	if len(results) == 0 {
		c.JSON(http.StatusOK, gin.H{
			"message": "found completed anime, but no wallpapers could be retrieved for these titles",
		})
		return
	}
	c.JSON(http.StatusOK, results)
}

// requestLogger attaches the middleware-assigned request id so every log
// line of one request can be correlated.
func (h *Handler) requestLogger(c *gin.Context) *logger.Logger {
	if id := c.GetString(middleware.RequestIDKey); id != "" {
		return h.log.WithContext("request_id", id)
	}
	return h.log
}

// One mapping from fetch-error kind to externally visible status.
func (h *Handler) respondFetchError(c *gin.Context, log *logger.Logger, username string, err error) {
	log.Warn("list_fetch_failed", "username", username, "error", err.Error())

	switch {
	case errors.Is(err, source.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": fmt.Sprintf("user %q not found", username),
		})
	case errors.Is(err, source.ErrUpstream):
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "could not reach the list source",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "internal error processing the anime list",
		})
	}
}
