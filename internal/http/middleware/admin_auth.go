package middleware

import (
	"bytes"
	"strings"

	"github.com/valyala/fasthttp"
	"golang.org/x/crypto/bcrypt"

	"gamedex/internal/config"
)

// AdminAuth returns middleware that validates a bearer password
// against the configured admin password. The password is hashed once
// at startup so each request comparison is constant-time. An empty
// configured password disables the guarded endpoints entirely.
func AdminAuth(cfg *config.Config) func(fasthttp.RequestHandler) fasthttp.RequestHandler {
	var hash []byte
	if cfg.AdminPassword != "" {
		h, err := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
		if err == nil {
			hash = h
		}
	}

	return func(next fasthttp.RequestHandler) fasthttp.RequestHandler {
		return func(ctx *fasthttp.RequestCtx) {
			if hash == nil {
				ctx.SetStatusCode(fasthttp.StatusForbidden)
				ctx.SetBodyString("admin endpoints disabled")
				return
			}

			auth := ctx.Request.Header.Peek("Authorization")
			const prefix = "Bearer "
			if !bytes.HasPrefix(auth, []byte(prefix)) {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				ctx.SetBodyString("missing bearer credentials")
				return
			}

			password := strings.TrimSpace(string(auth[len(prefix):]))
			if bcrypt.CompareHashAndPassword(hash, []byte(password)) != nil {
				ctx.SetStatusCode(fasthttp.StatusUnauthorized)
				ctx.SetBodyString("invalid credentials")
				return
			}

			next(ctx)
		}
	}
}
