package handlers

import (
	"bytes"

	"github.com/valyala/fasthttp"

	ui "gamedex/web"
)

// GalleryPage renders the embedded gallery shell. The shell itself is
// static; game data arrives client-side from /v1/games.
func GalleryPage() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		var buf bytes.Buffer
		err := ui.Templates().ExecuteTemplate(&buf, "index.html", map[string]any{
			"Title": "Gamedex",
		})
		if err != nil {
			errResponse(ctx, fasthttp.StatusInternalServerError, "failed to render page")
			return
		}
		ctx.SetContentType("text/html; charset=utf-8")
		ctx.SetBody(buf.Bytes())
	}
}
