package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/harborview/mls-comps/api/openapi"
	"github.com/harborview/mls-comps/internal/api/handlers"
	apimw "github.com/harborview/mls-comps/internal/api/middleware"
	"github.com/harborview/mls-comps/internal/config"
	"github.com/harborview/mls-comps/internal/engine"
	"github.com/harborview/mls-comps/internal/feed"
	"github.com/harborview/mls-comps/internal/store"
	"github.com/harborview/mls-comps/pkg/comps"
	"github.com/harborview/mls-comps/pkg/logger"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	clog := log.NewWithOptions(os.Stderr, log.Options{
		Level: parseLogLevel(cfg.Logging.Level),
	})
	slogger := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	st, err := store.NewPostgresStore(ctx, cfg.Database.DSN())
	cancel()
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	feedClient, rateLimiter, paginator := buildFeedStack(cfg, clog)

	engineOpts := []engine.EngineOption{
		engine.WithLogger(slogger),
		engine.WithGradeWeights(comps.GradeWeights(cfg.Scoring.GradeWeights)),
		engine.WithHeatWeights(comps.HeatWeights{
			DOM:        cfg.Scoring.HeatWeights.DOM,
			SPLP:       cfg.Scoring.HeatWeights.SPLP,
			Inventory:  cfg.Scoring.HeatWeights.Inventory,
			Absorption: cfg.Scoring.HeatWeights.Absorption,
		}),
		engine.WithSearchRadius(cfg.Scoring.SearchRadius),
		engine.WithPriceBandPct(cfg.Scoring.PriceBandPct),
		engine.WithComparableLimits(cfg.Scoring.MinComparables, cfg.Scoring.MaxComparables),
		engine.WithClosedWindowDays(cfg.Scoring.ClosedWindowDays),
		engine.WithStaggerOffset(cfg.Schedule.StaggerOffset),
	}
	if paginator != nil {
		engineOpts = append(engineOpts, engine.WithPaginator(paginator))
	}
	if watermark := lastSyncWatermark(st); !watermark.IsZero() {
		engineOpts = append(engineOpts, engine.WithLastSync(watermark))
	}

	eng := engine.NewEngine(st, feedClient, engineOpts...)

	sched, err := engine.NewScheduler(
		eng, st,
		cfg.Schedule.FeedSyncInterval,
		cfg.Schedule.SnapshotInterval,
		slogger,
	)
	if err != nil {
		return fmt.Errorf("creating scheduler: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout

	e.Use(apimw.RequestLog(slogger))
	e.Use(apimw.Recovery(slogger))
	e.Use(apimw.Metrics())

	healthHandler := handlers.NewHealthHandler(st)
	e.GET("/healthz", healthHandler.Healthz)
	e.GET("/readyz", healthHandler.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	openapi.RegisterRoutes(e)

	api := humaecho.New(e, huma.DefaultConfig("MLS Comps API", Version))
	handlers.RegisterPropertyRoutes(api, handlers.NewPropertiesHandler(st))
	handlers.RegisterSearchRoutes(api, handlers.NewSearchHandler(st))
	handlers.RegisterComparableRoutes(api, handlers.NewComparablesHandler(eng))
	handlers.RegisterCMARoutes(api, handlers.NewCMAHandler(eng, st))
	handlers.RegisterMarketRoutes(api, handlers.NewMarketHandler(st))
	handlers.RegisterLeadRoutes(api, handlers.NewLeadsHandler(st))
	handlers.RegisterAgentRoutes(api, handlers.NewAgentsHandler(st))
	handlers.RegisterSavedSearchRoutes(api, handlers.NewSavedSearchesHandler(st))
	handlers.RegisterJobRoutes(api, handlers.NewJobsHandler(st))
	handlers.RegisterQuotaRoutes(api, handlers.NewQuotaHandler(rateLimiter))
	handlers.RegisterSystemStateRoutes(api, handlers.NewSystemStateHandler(st))
	handlers.RegisterTriggerRoutes(
		api,
		handlers.NewFeedSyncHandler(eng),
		handlers.NewSnapshotRefreshHandler(eng),
	)

	sched.Start()
	sched.SyncNextRunTimestamps()

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	clog.Info("starting server", "addr", addr, "feed_enabled", cfg.Feed.Enabled)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			clog.Error("server error", "err", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	clog.Info("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	select {
	case <-sched.Stop().Done():
	case <-shutdownCtx.Done():
		clog.Warn("scheduler jobs still running at shutdown deadline")
	}

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	clog.Info("server stopped")
	return nil
}

// buildFeedStack assembles the RESO client, rate limiter, and paginator
// when the feed is enabled. All three are nil otherwise: the server
// still answers queries against replicated data, and manual sync
// triggers report the feed as unavailable.
func buildFeedStack(
	cfg *config.Config,
	clog *log.Logger,
) (feed.Client, *feed.RateLimiter, *feed.Paginator) {
	if !cfg.Feed.Enabled {
		return nil, nil, nil
	}

	tokens := feed.NewOAuthTokenProvider(
		cfg.Feed.TokenURL,
		cfg.Feed.ClientID,
		cfg.Feed.ClientSecret,
	)
	rl := feed.NewRateLimiter(
		cfg.Feed.RateLimit.PerSecond,
		cfg.Feed.RateLimit.Burst,
		cfg.Feed.RateLimit.DailyLimit,
	)

	opts := []feed.RESOOption{feed.WithRateLimiter(rl)}
	if cfg.Feed.OriginatingSystem != "" {
		opts = append(opts, feed.WithOriginatingSystem(cfg.Feed.OriginatingSystem))
	}
	client := feed.NewRESOClient(tokens, cfg.Feed.BaseURL, opts...)

	paginator := feed.NewPaginator(
		client,
		feed.WithPageSize(cfg.Feed.PageSize),
		feed.WithMaxPages(cfg.Feed.MaxPagesPerSync),
		feed.WithPaginatorLogger(clog),
	)

	return client, rl, paginator
}

// lastSyncWatermark looks up the most recent successful feed sync so a
// restart resumes incremental replication instead of a full pull.
func lastSyncWatermark(st store.Store) time.Time {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	runs, err := st.ListJobRuns(ctx, engine.JobFeedSync, 10)
	if err != nil {
		return time.Time{}
	}
	for i := range runs {
		if runs[i].Status == "succeeded" {
			return runs[i].StartedAt
		}
	}
	return time.Time{}
}

func parseLogLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
