package wallpaper

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/minhvu2004/animewalls/pkg/config"
	"github.com/minhvu2004/animewalls/pkg/logger"
	"github.com/minhvu2004/animewalls/pkg/metrics"
	"github.com/minhvu2004/animewalls/pkg/models"
)

// Wallhaven search parameters: anime category only, SFW purity only.
const (
	categoryAnime = "010"
	puritySFW     = "100"
)

// Client queries the image-search API for one group at a time. Search
// never fails: one group's search going wrong must not abort the whole
// request, so every failure degrades to an empty result and a log line.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     *logger.Logger
}

func NewClient(cfg *config.Config, log *logger.Logger) *Client {
	return &Client{
		baseURL: cfg.WallhavenBaseURL,
		apiKey:  cfg.WallhavenAPIKey,
		client:  &http.Client{Timeout: cfg.SearchTimeout},
		log:     log.WithContext("component", "wallpaper_search"),
	}
}

type searchResponse struct {
	Data []struct {
		Path   string `json:"path"`
		Thumbs struct {
			Large string `json:"large"`
		} `json:"thumbs"`
	} `json:"data"`
}

// Search returns up to config.WallpaperLimit results for query. The limit
// applies to the raw response: the first five raw items are inspected and
// those missing a thumbnail or full URL are dropped, so fewer than five
// may come back even when the API returned more.
func (c *Client) Search(ctx context.Context, query string) []models.WallpaperResult {
	metrics.IncrementWallpaperSearches()

	q := url.Values{}
	q.Set("q", query)
	q.Set("categories", categoryAnime)
	q.Set("purity", puritySFW)
	q.Set("sorting", "relevance")

	endpoint := fmt.Sprintf("%s/search?%s", c.baseURL, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		c.fail(query, err.Error())
		return nil
	}
	if c.apiKey != "" {
		req.Header.Set("X-API-Key", c.apiKey)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		c.fail(query, err.Error())
		return nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.fail(query, fmt.Sprintf("status %d", resp.StatusCode))
		return nil
	}

	var sr searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&sr); err != nil {
		c.fail(query, err.Error())
		return nil
	}

	raw := sr.Data
	if len(raw) > config.WallpaperLimit {
		raw = raw[:config.WallpaperLimit]
	}

	results := make([]models.WallpaperResult, 0, len(raw))
	for _, w := range raw {
		if w.Thumbs.Large == "" || w.Path == "" {
			continue
		}
		results = append(results, models.WallpaperResult{
			Thumbnail: w.Thumbs.Large,
			Full:      w.Path,
		})
	}
	return results
}

func (c *Client) fail(query, reason string) {
	metrics.IncrementWallpaperSearchFails()
	c.log.Warn("wallpaper_search_failed", "query", query, "reason", reason)
}
