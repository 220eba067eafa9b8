package anime_test

import (
	"testing"

	"github.com/minhvu2004/animewalls/internal/anime"
	"github.com/minhvu2004/animewalls/pkg/models"
)

func TestGroup_MergesSeasonsIntoOneGroup(t *testing.T) {
	entries := []models.SourceEntry{
		{Title: "Demo Show", MALID: 1},
		{Title: "Demo Show Season 2", MALID: 2},
		{Title: "Other Show", MALID: 3},
	}

	groups := anime.Group(entries)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	g, ok := groups["demo show"]
	if !ok {
		t.Fatalf("missing group for key %q", "demo show")
	}
	if g.DisplayTitle != "Demo Show" {
		t.Errorf("display title = %q, want %q", g.DisplayTitle, "Demo Show")
	}
	if len(g.MALIDs) != 2 {
		t.Errorf("expected 2 member ids, got %d", len(g.MALIDs))
	}
}

func TestGroup_ShortestTitleWinsRegardlessOfOrder(t *testing.T) {
	forward := []models.SourceEntry{{Title: "Foo Season 1"}, {Title: "Foo"}}
	backward := []models.SourceEntry{{Title: "Foo"}, {Title: "Foo Season 1"}}

	for _, entries := range [][]models.SourceEntry{forward, backward} {
		groups := anime.Group(entries)
		g, ok := groups["foo"]
		if !ok {
			t.Fatalf("missing group for key %q", "foo")
		}
		if g.DisplayTitle != "Foo" {
			t.Errorf("display title = %q, want %q", g.DisplayTitle, "Foo")
		}
	}
}

func TestGroup_SearchTermStaysFirstSeen(t *testing.T) {
	entries := []models.SourceEntry{
		{Title: "Foo Season 1", CoverURL: "https://img.example/long.jpg"},
		{Title: "Foo", CoverURL: "https://img.example/short.jpg"},
	}

	groups := anime.Group(entries)
	g := groups["foo"]
	if g == nil {
		t.Fatal("missing group")
	}
	if g.SearchTerm != "Foo Season 1" {
		t.Errorf("search term = %q, want first-seen title", g.SearchTerm)
	}
	if g.DisplayTitle != "Foo" {
		t.Errorf("display title = %q, want shortest title", g.DisplayTitle)
	}
	if g.CoverURL != "https://img.example/short.jpg" {
		t.Errorf("cover should follow display title, got %q", g.CoverURL)
	}
}

func TestGroup_SkipsBlankAndUnusableTitles(t *testing.T) {
	entries := []models.SourceEntry{
		{Title: ""},
		{Title: "   "},
		{Title: "OVA"},
		{Title: "Real Show"},
	}

	groups := anime.Group(entries)
	if len(groups) != 1 {
		t.Fatalf("expected 1 group, got %d", len(groups))
	}
	if _, ok := groups["real show"]; !ok {
		t.Error("expected group for the one usable title")
	}
}

func TestGroup_KeySetIsOrderIndependent(t *testing.T) {
	entries := []models.SourceEntry{
		{Title: "Alpha"},
		{Title: "Alpha Season 2"},
		{Title: "Beta: The Movie"},
		{Title: "Gamma"},
	}
	reversed := make([]models.SourceEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	a := anime.Group(entries)
	b := anime.Group(reversed)

	if len(a) != len(b) {
		t.Fatalf("group counts differ: %d vs %d", len(a), len(b))
	}
	for key := range a {
		if _, ok := b[key]; !ok {
			t.Errorf("key %q missing after permutation", key)
		}
	}
}
