package web

import (
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/PavanAnganna90/portfolio/internal/portfolio"
)

// RouterConfig wires the router's collaborators.
type RouterConfig struct {
	Logger *slog.Logger
	Site   *portfolio.Site

	// IconBaseURL is the icon CDN the skill pills request from.
	IconBaseURL string

	// ImagesDir is served at /images when it exists on disk.
	ImagesDir string

	BuildInfo BuildInfo

	// Tracing is optional request tracing middleware.
	Tracing gin.HandlerFunc

	// Visitors counts page views. Nil disables counting.
	Visitors *VisitorMetrics

	Gatherer prometheus.Gatherer
}

// NewRouter builds the gin engine serving the whole site.
//
// Middleware order: recovery, request ID, tracing, logging, visitor counting.
func NewRouter(cfg RouterConfig) (*gin.Engine, error) {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	tmpl, err := parseTemplates(cfg.IconBaseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	static, err := fs.Sub(assets, "static")
	if err != nil {
		return nil, fmt.Errorf("loading static assets: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)

	r.Use(Recovery(), RequestID(cfg.Logger))
	if cfg.Tracing != nil {
		r.Use(cfg.Tracing)
	}
	r.Use(Logging())
	if cfg.Visitors != nil {
		r.Use(cfg.Visitors.Middleware())
	}

	r.StaticFS("/static", http.FS(static))
	if cfg.ImagesDir != "" {
		if info, err := os.Stat(cfg.ImagesDir); err == nil && info.IsDir() {
			r.Static("/images", cfg.ImagesDir)
		} else {
			cfg.Logger.Warn("images directory not found, profile photo will not load",
				slog.String("dir", cfg.ImagesDir))
		}
	}

	gatherer := cfg.Gatherer
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}
	registerProbes(r, cfg.BuildInfo, gatherer)

	site := NewSiteHandler(cfg.Site)
	r.GET("/", site.Index)
	r.GET("/resume.txt", site.Resume)

	api := r.Group("/api")
	api.GET("/portfolio", site.Portfolio)
	api.GET("/projects", site.ListProjects)
	api.GET("/projects/:slug", site.GetProject)

	return r, nil
}
