package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/nhath/centrum/internal/session"
	"github.com/nhath/centrum/internal/ui"
)

var (
	debugFlag  bool
	hiddenFlag bool
)

var rootCmd = &cobra.Command{
	Use:          "centrum",
	Short:        "centrum - keyboard-driven application launcher",
	Long:         "Search and launch applications, files, web queries, clipboard history and power actions.",
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runLauncher,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "write debug logs to the XDG state directory")
	rootCmd.PersistentFlags().BoolVar(&hiddenFlag, "hidden", false, "list hidden applications")

	rootCmd.AddCommand(queryCmd)
}

func runLauncher(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	env, err := setup()
	if err != nil {
		return err
	}
	defer env.Close()

	cfg := env.cfg
	sess := session.New(ctx, session.Deps{
		Search:    env.resolver,
		Apps:      env.apps,
		Clipboard: env.clipboard,
		Launcher:  env.launcher,
		Completer: env.files,
		Store:     env.store,
		History:   env.history,
		Overrides: env.overrides,
		SaveIconMode: func(mode string) error {
			cfg.IconMode = mode
			return cfg.Save()
		},
		Logger: env.logger.Named("session"),
	}, session.Settings{
		FocusOnLaunch: cfg.FocusOnLaunch,
		Terminal:      env.terminal,
		IconMode:      cfg.IconMode,
		ShowHidden:    cfg.ShowHidden || hiddenFlag,
		Power:         cfg.Power(),
		Keys:          cfg.Keymap(),
	})

	ui.InitStyles(cfg.Theme)
	model := ui.NewModel(ctx, ui.Options{
		Config:  cfg,
		Session: sess,
		Windows: env.windows,
		Logger:  env.logger.Named("ui"),
	})

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		env.logger.Error("launcher exited with error", zap.Error(err))
		return fmt.Errorf("run launcher: %w", err)
	}
	return nil
}
