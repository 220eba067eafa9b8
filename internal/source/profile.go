package source

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/minhvu2004/animewalls/pkg/models"
)

// Selectors covering both the modern and the classic list page layouts.
const titleSelector = "td.data.title a.link, a.animetitle"

// htmlList is the fallback channel: scrape the public profile page
// filtered to completed status.
type htmlList struct {
	baseURL string
	client  *http.Client
}

func (s *htmlList) fetch(ctx context.Context, username string) ([]models.SourceEntry, error) {
	endpoint := fmt.Sprintf("%s/animelist/%s?status=%d",
		s.baseURL, url.PathEscape(username), statusCompleted)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build profile request: %w", ErrUpstream)
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("html channel request failed: %w", ErrUpstream)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("profile page for %q: %w", username, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("html channel status %d: %w", resp.StatusCode, ErrUpstream)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("profile page unreadable: %w", ErrParse)
	}

	var entries []models.SourceEntry
	doc.Find(titleSelector).Each(func(_ int, sel *goquery.Selection) {
		title := strings.TrimSpace(sel.Text())
		if title == "" {
			return
		}
		// No numeric id on this channel; grouping falls back to titles.
		entries = append(entries, models.SourceEntry{Title: title})
	})

	// Zero matches is either a genuinely empty list or a layout change;
	// the page gives no reliable way to tell them apart, so both come
	// back as an empty slice.
	return entries, nil
}
