package main

import (
	"os"

	"github.com/fasthttp/router"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"gamedex/internal/analytics"
	"gamedex/internal/archive"
	"gamedex/internal/catalog"
	"gamedex/internal/config"
	"gamedex/internal/http/handlers"
	appmw "gamedex/internal/http/middleware"
	"gamedex/internal/kv"
	ui "gamedex/web"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	if level, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(level)
	}
	zlog.Logger = zlog.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	cat, err := catalog.Load(cfg.ManifestPath)
	if err != nil {
		zlog.Fatal().Err(err).Str("path", cfg.ManifestPath).Msg("failed to load game manifest")
	}
	zlog.Info().Int("games", cat.Len()).Msg("game manifest loaded")

	// The analytics store is best-effort: if the data directory
	// cannot be opened we run in-memory-only, like a browser with
	// local storage disabled.
	var store kv.Store
	if badgerStore, err := kv.OpenBadger(cfg.DataDir); err != nil {
		zlog.Warn().Err(err).Msg("analytics store unavailable, using in-memory state")
		store = kv.NewMemoryStore()
	} else {
		store = badgerStore
		defer badgerStore.Close()
	}

	analytics.InitPrometheusMetrics()

	opts := []analytics.Option{}
	if cfg.DatabaseURL != "" {
		arch, err := archive.Connect(cfg)
		if err != nil {
			zlog.Warn().Err(err).Msg("event archive unavailable, continuing without it")
		} else {
			arch.StartRetentionWorker()
			opts = append(opts, analytics.WithArchive(arch))
			zlog.Info().Msg("event archive enabled")
		}
	}

	agg := analytics.New(store, opts...)
	agg.TrackPageView("/")

	r := router.New()

	r.GET("/healthz", func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusOK)
		ctx.SetBodyString("ok")
	})

	r.ServeFS("/static/{filepath:*}", ui.StaticFS())
	r.GET("/", handlers.GalleryPage())

	r.GET("/v1/games", handlers.ListGames(cat))
	r.GET("/v1/games/{slug}", handlers.GameDetail(cat))
	r.GET("/v1/genres", handlers.ListGenres(cat))

	r.POST("/v1/track/page-view", handlers.TrackPageView(agg))
	r.POST("/v1/track/game-play", handlers.TrackGamePlay(agg))
	r.POST("/v1/track/search", handlers.TrackSearch(agg))
	r.POST("/v1/track/filter", handlers.TrackFilterUsed(agg))
	r.POST("/v1/track/favorite", handlers.TrackGameFavorite(agg))

	admin := appmw.AdminAuth(cfg)
	r.GET("/v1/analytics/summary", admin(handlers.AnalyticsSummary(agg)))
	r.POST("/v1/analytics/reset", admin(handlers.ResetAnalytics(agg)))

	r.GET("/metrics", handlers.MetricsHandler())

	// Request logger outermost, then server-side page tracking.
	handler := handlers.RequestLogger(appmw.PageTracking(agg)(r.Handler))

	zlog.Info().Str("addr", cfg.ListenAddr).Msg("gamedex listening")
	if err := fasthttp.ListenAndServe(cfg.ListenAddr, handler); err != nil {
		zlog.Fatal().Err(err).Msg("server error")
	}
}
