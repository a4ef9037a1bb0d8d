package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/valyala/fasthttp"

	"gamedex/internal/analytics"
	"gamedex/internal/kv"
)

func trackedPageViews(t *testing.T, method, uri string, status int) int64 {
	t.Helper()
	agg := analytics.New(kv.NewMemoryStore())
	handler := PageTracking(agg)(func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(status)
	})

	var ctx fasthttp.RequestCtx
	ctx.Request.Header.SetMethod(method)
	ctx.Request.SetRequestURI(uri)
	handler(&ctx)

	return agg.Summary().Totals.PageViews
}

func TestPageTrackingRecordsPageLoads(t *testing.T) {
	assert.Equal(t, int64(1), trackedPageViews(t, fasthttp.MethodGet, "/", fasthttp.StatusOK))
}

func TestPageTrackingSkipsNonPages(t *testing.T) {
	cases := map[string]struct {
		method string
		uri    string
		status int
	}{
		"api":       {fasthttp.MethodGet, "/v1/games", fasthttp.StatusOK},
		"static":    {fasthttp.MethodGet, "/static/app.js", fasthttp.StatusOK},
		"healthz":   {fasthttp.MethodGet, "/healthz", fasthttp.StatusOK},
		"metrics":   {fasthttp.MethodGet, "/metrics", fasthttp.StatusOK},
		"post":      {fasthttp.MethodPost, "/", fasthttp.StatusOK},
		"not found": {fasthttp.MethodGet, "/missing", fasthttp.StatusNotFound},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, int64(0), trackedPageViews(t, tc.method, tc.uri, tc.status))
		})
	}
}
