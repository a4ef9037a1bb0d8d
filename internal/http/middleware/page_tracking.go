package middleware

import (
	"strings"

	"github.com/valyala/fasthttp"

	"gamedex/internal/analytics"
)

// PageTracking records a page_view for successfully served page
// navigations. API, asset, and infrastructure paths are skipped;
// those are tracked explicitly by the client where it matters.
func PageTracking(agg *analytics.Aggregator) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			next(ctx)

			if string(ctx.Method()) != fasthttp.MethodGet {
				return
			}
			if ctx.Response.StatusCode() >= 400 {
				return
			}
			path := string(ctx.Path())
			if path == "/healthz" || path == "/metrics" ||
				strings.HasPrefix(path, "/v1/") || strings.HasPrefix(path, "/static/") {
				return
			}

			agg.TrackPageView(path)
		}
	}
}
