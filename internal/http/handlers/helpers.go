package handlers

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	zlog "github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	httpctx "gamedex/internal/http/ctx"
)

// RequestLogger returns fasthttp middleware that assigns a request ID
// and logs method, path, status, and duration.
func RequestLogger(next fasthttp.RequestHandler) fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		reqID := uuid.NewString()
		httpctx.SetRequestID(ctx, reqID)
		ctx.Response.Header.Set("X-Request-ID", reqID)

		start := time.Now()
		next(ctx)

		zlog.Info().
			Str("request_id", reqID).
			Str("method", string(ctx.Method())).
			Str("path", string(ctx.Path())).
			Int("status", ctx.Response.StatusCode()).
			Dur("duration", time.Since(start)).
			Msg("request")
	}
}

func jsonResponse(ctx *fasthttp.RequestCtx, data any) {
	ctx.SetContentType("application/json")
	body, _ := json.Marshal(data)
	ctx.SetBody(body)
}

func errResponse(ctx *fasthttp.RequestCtx, code int, msg string) {
	ctx.SetStatusCode(code)
	ctx.SetBodyString(msg)
}
