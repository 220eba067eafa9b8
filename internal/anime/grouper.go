package anime

import (
	"strings"

	"github.com/minhvu2004/animewalls/pkg/models"
)

// Group folds completed-list entries into one AnimeGroup per canonical key.
//
// The display title is the shortest raw title seen for the key (first seen
// wins on a tie), and the cover follows the display title. The search term
// stays whatever title created the group, so the image-search query does
// not churn when a shorter sibling arrives. Entries with a blank title, or
// a title that normalizes to nothing, contribute no group.
func Group(entries []models.SourceEntry) map[string]*models.AnimeGroup {
	groups := make(map[string]*models.AnimeGroup)

	for _, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			continue
		}
		key := NormalizeTitle(e.Title)
		if key == "" {
			continue
		}

		g, ok := groups[key]
		if !ok {
			g = &models.AnimeGroup{
				Key:          key,
				DisplayTitle: e.Title,
				SearchTerm:   e.Title,
				CoverURL:     e.CoverURL,
				MALIDs:       make(map[int]struct{}),
			}
			groups[key] = g
		} else if len(e.Title) < len(g.DisplayTitle) {
			g.DisplayTitle = e.Title
			g.CoverURL = e.CoverURL
		}

		if e.MALID != 0 {
			g.MALIDs[e.MALID] = struct{}{}
		}
	}

	return groups
}
