package cmd

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/ziadkadry99/folio/internal/config"
	"github.com/ziadkadry99/folio/internal/logging"
	"github.com/ziadkadry99/folio/internal/pages"
	"github.com/ziadkadry99/folio/internal/render"
	"github.com/ziadkadry99/folio/internal/site"
	"github.com/ziadkadry99/folio/internal/source"
)

// loadConfig loads and validates the config, providing a user-friendly error.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w\nRun `folio init` to create a config file", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the console logger. --verbose forces debug output.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	level := string(cfg.Log.Level)
	if verbose {
		level = string(config.LogDebug)
	}
	return logging.New(level)
}

// app holds what every command builds from the configuration.
type app struct {
	cfg         *config.Config
	logger      *zap.Logger
	highlighter *render.ChromaHighlighter
	router      *pages.Router
}

// newApp loads the configuration and wires the page router to its content
// source.
func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}
	logger, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	highlighter := render.NewChromaHighlighter(cfg.HighlightStyle)
	builder := render.NewBuilder(
		render.WithHighlighter(highlighter),
		render.WithLogger(logger),
	)
	router := pages.NewRouter(pages.Config{
		Supported: cfg.PageIDs(),
		Default:   cfg.DefaultPage,
		Source:    source.New(cfg.Content),
		Builder:   builder,
		Logger:    logger,
	})

	return &app{
		cfg:         cfg,
		logger:      logger,
		highlighter: highlighter,
		router:      router,
	}, nil
}

// layout builds the page layout with navigation links made by href.
func (a *app) layout(href func(id string) string) (*site.Layout, error) {
	frags, err := site.NewFragmentLoader(a.cfg.HighlightStyle).Load(a.cfg.Header, a.cfg.Footer)
	if err != nil {
		return nil, fmt.Errorf("loading fragments: %w", err)
	}
	return site.NewLayout(a.cfg.Title, frags, site.BuildNavTree(a.cfg.Pages, href))
}
