package source

import (
	"context"
	"net/http"

	"github.com/minhvu2004/animewalls/pkg/config"
	"github.com/minhvu2004/animewalls/pkg/logger"
	"github.com/minhvu2004/animewalls/pkg/metrics"
	"github.com/minhvu2004/animewalls/pkg/models"
)

// Fetcher retrieves a user's completed anime list, trying the structured
// JSON endpoint first and scraping the HTML profile page when the JSON
// channel fails or produces nothing usable.
type Fetcher struct {
	json *jsonList
	html *htmlList
	log  *logger.Logger
}

func NewFetcher(cfg *config.Config, log *logger.Logger) *Fetcher {
	client := &http.Client{Timeout: cfg.ListTimeout}
	return &Fetcher{
		json: &jsonList{baseURL: cfg.MALBaseURL, client: client},
		html: &htmlList{baseURL: cfg.MALBaseURL, client: client},
		log:  log.WithContext("component", "source_fetcher"),
	}
}

// Fetch returns deduplicated completed-list entries for username.
//
// When both channels produce nothing and at least one failed, the most
// specific failure wins: ErrNotFound over ErrUpstream over ErrParse. When
// both channels answered but the list is simply empty, Fetch returns an
// empty slice and no error.
func (f *Fetcher) Fetch(ctx context.Context, username string) ([]models.SourceEntry, error) {
	jsonEntries, jsonErr := f.json.fetch(ctx, username)
	if jsonErr == nil {
		metrics.IncrementListFetchJSON()
		if len(jsonEntries) > 0 {
			return dedupeByTitle(jsonEntries), nil
		}
		f.log.Info("json_channel_empty", "username", username)
	} else {
		f.log.Warn("json_channel_failed", "username", username, "error", jsonErr.Error())
	}

	htmlEntries, htmlErr := f.html.fetch(ctx, username)
	if htmlErr == nil {
		metrics.IncrementListFetchHTML()
		if len(htmlEntries) > 0 {
			return dedupeByTitle(htmlEntries), nil
		}
		f.log.Info("html_channel_empty", "username", username)
	} else {
		f.log.Warn("html_channel_failed", "username", username, "error", htmlErr.Error())
	}

	if err := preferError(htmlErr, jsonErr); err != nil {
		metrics.IncrementListFetchFails()
		return nil, err
	}
	return []models.SourceEntry{}, nil
}

// dedupeByTitle drops later entries whose title exactly matches an earlier
// one. Case-sensitive: distinct casings are distinct entries.
func dedupeByTitle(entries []models.SourceEntry) []models.SourceEntry {
	seen := make(map[string]struct{}, len(entries))
	out := entries[:0]
	for _, e := range entries {
		if _, dup := seen[e.Title]; dup {
			continue
		}
		seen[e.Title] = struct{}{}
		out = append(out, e)
	}
	return out
}
