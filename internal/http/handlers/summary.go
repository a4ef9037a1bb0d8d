package handlers

import (
	"github.com/valyala/fasthttp"

	"gamedex/internal/analytics"
)

// AnalyticsSummary serves the aggregator snapshot: totals, daily
// stats, last update, and the event count. The raw event buffer is
// never included.
func AnalyticsSummary(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		jsonResponse(ctx, agg.Summary())
	}
}

// ResetAnalytics wipes the aggregator state and its persisted entry.
// Intended for test and development use; idempotent.
func ResetAnalytics(agg *analytics.Aggregator) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		agg.Reset()
		jsonResponse(ctx, map[string]any{"status": "reset"})
	}
}
