package models

// SourceEntry is one item of a user's completed anime list, as produced by
// whichever list channel answered (JSON endpoint or profile page scrape).
// Entries live for a single request; nothing is persisted.
type SourceEntry struct {
	Title    string `json:"title"`
	MALID    int    `json:"mal_id,omitempty"`
	CoverURL string `json:"cover_url,omitempty"`
}

// AnimeGroup aggregates every list entry that reduces to the same canonical
// key (seasons, parts and specials of one series collapse into one group).
type AnimeGroup struct {
	Key          string
	DisplayTitle string
	// SearchTerm is fixed when the group is created and never updated,
	// even when a shorter title later replaces DisplayTitle.
	SearchTerm string
	CoverURL   string
	MALIDs     map[int]struct{}
}

// WallpaperResult is one image-search hit with both resolutions present.
type WallpaperResult struct {
	Thumbnail string `json:"thumbnail"`
	Full      string `json:"full"`
}

// GroupWallpapers is one value of the response map returned by
// GET /api/wallpapers/:username.
type GroupWallpapers struct {
	DisplayTitle string            `json:"display_title"`
	MALCover     string            `json:"mal_cover,omitempty"`
	Wallpapers   []WallpaperResult `json:"wallpapers"`
}
