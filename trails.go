// Package trails serves a read-only blog built with Go, Echo, and templ.
// Posts and author profiles come from a content directory of markdown files
// or from a SQLite database; the app renders the home page, the paginated
// archive, posts, tag listings, the about page, RSS, and a sitemap.
package trails

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/binarytrails/trails/content"
	"github.com/binarytrails/trails/views"
)

const (
	watchDebounce   = 250 * time.Millisecond
	shutdownTimeout = 10 * time.Second
)

// App wires the content library, handlers, middleware, and metrics
// together around one Echo instance.
type App struct {
	Config   *SiteConfig
	Echo     *echo.Echo
	Library  *content.Library
	Log      *zap.SugaredLogger
	Registry *prometheus.Registry
	Theme    views.Theme

	metrics      *metrics
	customRoutes []func(*App)
	now          func() time.Time
}

// WithLogger sets the logger used for requests, reloads, and errors.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(a *App) {
		a.Log = log
	}
}

// NewSource picks the content source named by the configuration. A SQLite
// path wins over a content directory.
func NewSource(cfg *SiteConfig) content.Source {
	if cfg.SQLitePath != "" {
		return content.SQLiteSource{Path: cfg.SQLitePath}
	}
	return content.DirSource{Root: cfg.ContentDir}
}

// New validates cfg and builds an App ready to serve. When lib is nil a
// library over NewSource(cfg) is created; content is loaded lazily by Start.
func New(cfg *SiteConfig, lib *content.Library, opts ...Option) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if lib == nil {
		lib = content.NewLibrary(NewSource(cfg))
	}

	a := &App{
		Config:   cfg,
		Echo:     echo.New(),
		Library:  lib,
		Log:      zap.NewNop().Sugar(),
		Registry: prometheus.NewRegistry(),
		Theme:    views.NewTheme(cfg.Theme.Primary, cfg.Theme.Gray),
		now:      time.Now,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.metrics = newMetrics(a.Registry)
	lib.OnReload(a.onReload)

	a.setupMiddleware()
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

func (a *App) onReload(snap *content.Snapshot, err error) {
	a.metrics.observeReload(snap, err)
	if err != nil {
		a.Log.Errorw("content reload failed", "err", err)
		return
	}
	a.Log.Infow("content loaded",
		"posts", len(snap.Posts),
		"authors", len(snap.Authors),
	)
}

// Start loads content if it is not loaded yet, then serves until ctx ends
// or the server fails. With watch enabled, edits under the content
// directory trigger a reload.
func (a *App) Start(ctx context.Context) error {
	if !a.Library.Loaded() {
		if err := a.Library.Reload(ctx); err != nil {
			return fmt.Errorf("trails: load content: %w", err)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.Log.Infow("listening", "addr", a.Config.Addr)
		if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("trails: serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	})
	if a.Config.Watch && a.Config.ContentDir != "" && a.Config.SQLitePath == "" {
		g.Go(func() error {
			return content.Watch(ctx, a.Config.ContentDir, watchDebounce, a.Library.Reload, a.Log)
		})
	}
	return g.Wait()
}

// Close flushes the logger. Call this when the app is shutting down.
func (a *App) Close() error {
	_ = a.Log.Sync()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.GET("/static/logo.svg", a.handleEmbedded("logo.svg"))
	e.GET("/static/icons.svg", a.handleEmbedded("icons.svg"))
	e.Static("/static", a.Config.StaticDir)
	e.GET("/theme.css", a.handleTheme)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/metrics", a.handleMetrics())
	e.GET("/avatars/:file", a.handleAvatar)

	e.GET("/", a.handleHome)
	e.GET("/posts/", a.handlePostList)
	e.GET("/posts/page/:n/", a.handlePostList)
	e.GET("/posts/:slug/", a.handlePost)
	e.GET("/tags/", a.handleTags)
	e.GET("/tags/:slug/", a.handleTag)
	e.GET("/about/", a.handleAbout)

	e.GET("/blog/", handleBlogRedirect)
	e.GET("/blog/:slug/", handleBlogRedirect)
}
