package source

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/minhvu2004/animewalls/pkg/models"
)

// MAL list statuses as used by the undocumented load.json endpoint.
const statusCompleted = 2

const userAgent = "animewalls/1.0 (+github.com/minhvu2004/animewalls)"

// jsonList is the structured channel: the list site's undocumented JSON
// endpoint for a user's anime list.
type jsonList struct {
	baseURL string
	client  *http.Client
}

type rawListItem struct {
	Status     int    `json:"status"`
	AnimeID    int    `json:"anime_id"`
	AnimeTitle string `json:"anime_title"`
}

// fetch returns completed entries from the JSON endpoint. The channel is
// considered usable only when the response is 200, carries a JSON
// content-type and decodes to a list; anything else is an upstream or
// parse failure and the caller falls through to the HTML channel.
func (s *jsonList) fetch(ctx context.Context, username string) ([]models.SourceEntry, error) {
	endpoint := fmt.Sprintf("%s/animelist/%s/load.json?status=%d&sfw=true",
		s.baseURL, url.PathEscape(username), statusCompleted)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build list request: %w", ErrUpstream)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("json channel request failed: %w", ErrUpstream)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("json channel status %d: %w", resp.StatusCode, ErrUpstream)
	}
	if ct := resp.Header.Get("Content-Type"); !strings.Contains(ct, "json") {
		return nil, fmt.Errorf("json channel content-type %q: %w", ct, ErrParse)
	}

	var items []rawListItem
	if err := json.NewDecoder(resp.Body).Decode(&items); err != nil {
		return nil, fmt.Errorf("json channel body is not a list: %w", ErrParse)
	}

	seen := make(map[int]struct{}, len(items))
	entries := make([]models.SourceEntry, 0, len(items))
	for _, it := range items {
		if it.Status != statusCompleted {
			continue
		}
		if it.AnimeID != 0 {
			if _, dup := seen[it.AnimeID]; dup {
				continue
			}
			seen[it.AnimeID] = struct{}{}
		}
		// No cover on this channel; the JSON list omits usable image URLs.
		entries = append(entries, models.SourceEntry{
			Title: it.AnimeTitle,
			MALID: it.AnimeID,
		})
	}
	return entries, nil
}
