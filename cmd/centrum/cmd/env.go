package cmd

import (
	"fmt"

	"github.com/adrg/xdg"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/config"
	"github.com/nhath/centrum/internal/history"
	"github.com/nhath/centrum/internal/launch"
	"github.com/nhath/centrum/internal/logging"
	"github.com/nhath/centrum/internal/provider"
	"github.com/nhath/centrum/internal/runner"
	"github.com/nhath/centrum/internal/search"
	"github.com/nhath/centrum/internal/wm"
)

// environment holds the components shared by the launcher and the query
// command.
type environment struct {
	cfg      *config.Config
	logger   *zap.Logger
	terminal string

	store     *history.Store
	history   *history.Map
	overrides history.Overrides

	windows   wm.Manager
	apps      *provider.AppIndex
	files     *provider.Files
	clipboard *provider.Clipboard
	resolver  *search.Resolver
	launcher  *launch.Resolver
}

func setup() (*environment, error) {
	logger, err := logging.Setup(debugFlag)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(logger.Named("config"))
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	store, err := history.NewStore()
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	hist, err := store.LoadUsage()
	if err != nil {
		logger.Warn("loading usage history failed", zap.Error(err))
		hist = history.NewMap()
	}
	overrides, err := store.LoadOverrides()
	if err != nil {
		logger.Warn("loading overrides failed", zap.Error(err))
		overrides = make(history.Overrides)
	}

	r := runner.New()
	desktop, err := wm.LoadEnv()
	if err != nil {
		logger.Warn("reading desktop environment failed", zap.Error(err))
	}
	windows := wm.Detect(desktop, r)
	logger.Debug("window manager detected", zap.String("wm", windows.Name()))

	files := provider.NewFiles(xdg.Home, r, logger.Named("files"))
	power := cfg.Power()
	resolver := search.NewResolver(search.Providers{
		Calc:  provider.NewCalculator(provider.NewEvaluator(r), logger.Named("calc")),
		Files: files,
		Web:   provider.NewWeb(cfg.SearchEngine),
		Power: power,
	})

	return &environment{
		cfg:       cfg,
		logger:    logger,
		terminal:  cfg.DetectTerminal(r),
		store:     store,
		history:   hist,
		overrides: overrides,
		windows:   windows,
		apps:      provider.NewAppIndex(provider.NewXDGRegistry(), logger.Named("apps")),
		files:     files,
		clipboard: provider.NewClipboard(r, logger.Named("clipboard")),
		resolver:  resolver,
		launcher: launch.New(launch.Options{
			Runner:  r,
			Windows: windows,
			Logger:  logger.Named("launch"),
		}),
	}, nil
}

// Close releases the history database and flushes the log
func (e *environment) Close() {
	if err := e.store.Close(); err != nil {
		e.logger.Warn("closing history failed", zap.Error(err))
	}
	_ = e.logger.Sync()
}
