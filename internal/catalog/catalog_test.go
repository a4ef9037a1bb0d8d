package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleManifest = `{
  "games": [
    {"slug": "orbit-breaker", "title": "Orbit Breaker", "description": "Smash crystal cores in space.",
     "genre": "arcade", "tags": ["space", "physics"], "file": "/games/orbit-breaker.html",
     "addedAt": "2026-07-02T00:00:00Z", "featured": true},
    {"slug": "hexfall", "title": "Hexfall", "description": "Match falling hex tiles.",
     "genre": "puzzle", "tags": ["tiles", "match"], "file": "/games/hexfall.html",
     "addedAt": "2026-06-18T00:00:00Z"},
    {"slug": "night-courier", "title": "Night Courier", "description": "Deliver packages before sunrise.",
     "genre": "action", "tags": ["driving"], "file": "/games/night-courier.html",
     "addedAt": "2026-08-01T00:00:00Z"}
  ]
}`

func loadSample(t *testing.T) *Catalog {
	t.Helper()
	c, err := Parse([]byte(sampleManifest))
	require.NoError(t, err)
	return c
}

func slugs(games []Game) []string {
	out := make([]string, len(games))
	for i, g := range games {
		out[i] = g.Slug
	}
	return out
}

func TestParseValidManifest(t *testing.T) {
	c := loadSample(t)

	assert.Equal(t, 3, c.Len())

	g, ok := c.Get("hexfall")
	require.True(t, ok)
	assert.Equal(t, "Hexfall", g.Title)
	assert.Equal(t, time.Date(2026, 6, 18, 0, 0, 0, 0, time.UTC), g.AddedAt)

	_, ok = c.Get("missing")
	assert.False(t, ok)
}

func TestParseRejectsMissingSlug(t *testing.T) {
	_, err := Parse([]byte(`{"games": [{"title": "No Slug", "file": "/g.html"}]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing slug")
}

func TestParseRejectsDuplicateSlug(t *testing.T) {
	_, err := Parse([]byte(`{"games": [
		{"slug": "dup", "title": "A", "file": "/a.html"},
		{"slug": "dup", "title": "B", "file": "/b.html"}
	]}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate slug")
}

func TestParseRejectsBadJSON(t *testing.T) {
	_, err := Parse([]byte("{nope"))
	assert.Error(t, err)
}

func TestFindSearchIsCaseInsensitive(t *testing.T) {
	c := loadSample(t)

	assert.Equal(t, []string{"orbit-breaker"}, slugs(c.Find(Query{Search: "ORBIT"})))
	assert.Equal(t, []string{"hexfall"}, slugs(c.Find(Query{Search: "falling hex"})))
	// Tag content is searchable too.
	assert.Equal(t, []string{"night-courier"}, slugs(c.Find(Query{Search: "driving"})))
	assert.Empty(t, c.Find(Query{Search: "zzz"}))
}

func TestFindFilters(t *testing.T) {
	c := loadSample(t)

	assert.Equal(t, []string{"hexfall"}, slugs(c.Find(Query{Genre: "Puzzle"})))
	assert.Equal(t, []string{"orbit-breaker"}, slugs(c.Find(Query{Tag: "SPACE"})))
	assert.Empty(t, c.Find(Query{Genre: "puzzle", Tag: "space"}))
}

func TestFindSortOrders(t *testing.T) {
	c := loadSample(t)

	assert.Equal(t,
		[]string{"night-courier", "orbit-breaker", "hexfall"},
		slugs(c.Find(Query{})), "default is newest first")

	assert.Equal(t,
		[]string{"hexfall", "night-courier", "orbit-breaker"},
		slugs(c.Find(Query{Sort: "title"})))

	featured := c.Find(Query{Sort: "featured"})
	assert.Equal(t, "orbit-breaker", featured[0].Slug)
}

func TestGenres(t *testing.T) {
	c := loadSample(t)
	assert.Equal(t, []string{"action", "arcade", "puzzle"}, c.Genres())
}
