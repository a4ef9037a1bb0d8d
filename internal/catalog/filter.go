package catalog

import (
	"sort"
	"strings"
)

// Query selects and orders games. Zero-value fields are ignored.
type Query struct {
	// Search matches case-insensitively against title, description,
	// and tags.
	Search string
	// Genre and Tag filter on exact (case-insensitive) match.
	Genre string
	Tag   string
	// Sort is "newest" (default), "title", or "featured".
	Sort string
}

// Find returns the games matching q, ordered per q.Sort. The result
// is a fresh slice; the catalog itself is never mutated.
func (c *Catalog) Find(q Query) []Game {
	needle := strings.ToLower(strings.TrimSpace(q.Search))
	genre := strings.ToLower(q.Genre)
	tag := strings.ToLower(q.Tag)

	out := make([]Game, 0, len(c.games))
	for _, g := range c.games {
		if genre != "" && strings.ToLower(g.Genre) != genre {
			continue
		}
		if tag != "" && !hasTag(g, tag) {
			continue
		}
		if needle != "" && !matches(g, needle) {
			continue
		}
		out = append(out, g)
	}

	switch q.Sort {
	case "title":
		sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	case "featured":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Featured && !out[j].Featured })
	default: // newest
		sort.SliceStable(out, func(i, j int) bool { return out[i].AddedAt.After(out[j].AddedAt) })
	}
	return out
}

// Genres returns the distinct genres in the catalog, sorted.
func (c *Catalog) Genres() []string {
	seen := make(map[string]bool)
	var genres []string
	for _, g := range c.games {
		if g.Genre != "" && !seen[g.Genre] {
			seen[g.Genre] = true
			genres = append(genres, g.Genre)
		}
	}
	sort.Strings(genres)
	return genres
}

func hasTag(g Game, tag string) bool {
	for _, t := range g.Tags {
		if strings.ToLower(t) == tag {
			return true
		}
	}
	return false
}

func matches(g Game, needle string) bool {
	if strings.Contains(strings.ToLower(g.Title), needle) {
		return true
	}
	if strings.Contains(strings.ToLower(g.Description), needle) {
		return true
	}
	for _, t := range g.Tags {
		if strings.Contains(strings.ToLower(t), needle) {
			return true
		}
	}
	return false
}
