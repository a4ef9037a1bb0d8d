package handlers

import (
	"github.com/valyala/fasthttp"

	"gamedex/internal/catalog"
)

// ListGames serves the searchable, filterable game list. Query params:
// q (free text), genre, tag, sort (newest|title|featured).
func ListGames(cat *catalog.Catalog) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		args := ctx.QueryArgs()
		q := catalog.Query{
			Search: string(args.Peek("q")),
			Genre:  string(args.Peek("genre")),
			Tag:    string(args.Peek("tag")),
			Sort:   string(args.Peek("sort")),
		}

		games := cat.Find(q)
		jsonResponse(ctx, map[string]any{
			"games": games,
			"total": len(games),
		})
	}
}

// GameDetail serves a single game by slug.
func GameDetail(cat *catalog.Catalog) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		slug, _ := ctx.UserValue("slug").(string)
		game, ok := cat.Get(slug)
		if !ok {
			errResponse(ctx, fasthttp.StatusNotFound, "unknown game")
			return
		}
		jsonResponse(ctx, game)
	}
}

// ListGenres serves the distinct genres for the filter UI.
func ListGenres(cat *catalog.Catalog) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		jsonResponse(ctx, map[string]any{"genres": cat.Genres()})
	}
}
