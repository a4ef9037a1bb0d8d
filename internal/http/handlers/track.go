package handlers

import (
	"encoding/json"

	"github.com/valyala/fasthttp"

	"gamedex/internal/analytics"
)

// trackPayload covers every tracking endpoint's body; each endpoint
// reads only the fields it cares about. Malformed JSON is treated as
// an empty payload: tracking can never fail observably.
type trackPayload struct {
	Path        string `json:"path"`
	Slug        string `json:"slug"`
	Query       string `json:"query"`
	FilterType  string `json:"filterType"`
	FilterValue string `json:"filterValue"`
}

func decodeTrack(ctx *fasthttp.RequestCtx) trackPayload {
	var p trackPayload
	_ = json.Unmarshal(ctx.PostBody(), &p)
	return p
}

func accepted(ctx *fasthttp.RequestCtx) {
	ctx.SetStatusCode(fasthttp.StatusAccepted)
	ctx.SetContentType("application/json")
	ctx.SetBodyString(`{"status":"accepted"}`)
}

// TrackPageView records a page_view for the client-reported path.
func TrackPageView(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		p := decodeTrack(ctx)
		if p.Path == "" {
			p.Path = "/"
		}
		agg.TrackPageView(p.Path)
		accepted(ctx)
	}
}

// TrackGamePlay records a game_play for the given slug.
func TrackGamePlay(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		agg.TrackGamePlay(decodeTrack(ctx).Slug)
		accepted(ctx)
	}
}

// TrackSearch records a search_query. The client debounces; the
// server records whatever arrives.
func TrackSearch(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		agg.TrackSearch(decodeTrack(ctx).Query)
		accepted(ctx)
	}
}

// TrackFilterUsed records a filter_used with kind and value.
func TrackFilterUsed(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		p := decodeTrack(ctx)
		agg.TrackFilterUsed(p.FilterType, p.FilterValue)
		accepted(ctx)
	}
}

// TrackGameFavorite records a game_favorite for the given slug.
func TrackGameFavorite(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		agg.TrackGameFavorite(decodeTrack(ctx).Slug)
		accepted(ctx)
	}
}
