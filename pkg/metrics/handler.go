package metrics

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Handler struct{}

func NewHandler() *Handler {
	return &Handler{}
}

func (h *Handler) Metrics(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"requests_total":         GetRequests(),
		"list_fetches_json":      GetListFetchesJSON(),
		"list_fetches_html":      GetListFetchesHTML(),
		"list_fetch_fails":       GetListFetchFails(),
		"wallpaper_searches":     GetWallpaperSearches(),
		"wallpaper_search_fails": GetWallpaperSearchFails(),
	})
}
