// Package catalog loads the game manifest and answers search and
// filter queries over it. The manifest is read once at startup; the
// catalog is immutable afterwards.
package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Game is one entry in the gallery manifest. Each game is a single
// self-contained HTML file referenced by File.
type Game struct {
	Slug        string    `json:"slug"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Genre       string    `json:"genre"`
	Tags        []string  `json:"tags,omitempty"`
	Author      string    `json:"author,omitempty"`
	File        string    `json:"file"`
	AddedAt     time.Time `json:"addedAt"`
	Featured    bool      `json:"featured,omitempty"`
}

type manifest struct {
	Games []Game `json:"games"`
}

// Catalog holds the loaded games with a slug index for detail lookup.
type Catalog struct {
	games  []Game
	bySlug map[string]*Game
}

// Load reads and validates the manifest file at path.
func Load(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	return Parse(raw)
}

// Parse builds a catalog from raw manifest JSON. Slugs must be
// non-empty and unique.
func Parse(raw []byte) (*Catalog, error) {
	var m manifest
	if err := json.Unmarshal(raw, &m); err != nil {
		return nil, fmt.Errorf("parse manifest: %w", err)
	}

	c := &Catalog{
		games:  m.Games,
		bySlug: make(map[string]*Game, len(m.Games)),
	}
	for i := range c.games {
		g := &c.games[i]
		if g.Slug == "" {
			return nil, fmt.Errorf("manifest entry %d: missing slug", i)
		}
		if _, dup := c.bySlug[g.Slug]; dup {
			return nil, fmt.Errorf("manifest: duplicate slug %q", g.Slug)
		}
		c.bySlug[g.Slug] = g
	}
	return c, nil
}

// Len returns the number of games in the catalog.
func (c *Catalog) Len() int { return len(c.games) }

// Get returns the game with the given slug, or (nil, false).
func (c *Catalog) Get(slug string) (*Game, bool) {
	g, ok := c.bySlug[slug]
	return g, ok
}
