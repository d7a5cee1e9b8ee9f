package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yildizm/folio/internal/config"
	"github.com/yildizm/folio/internal/logger"
	"github.com/yildizm/folio/internal/theme"
	"github.com/yildizm/folio/internal/ui"
)

func newShowCommand() *cobra.Command {
	var (
		contentPath string
		watch       bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Open the portfolio page",
		Long: `Open the portfolio page in the terminal.

Scroll with the arrow keys or the mouse wheel, jump between sections with
tab, filter projects with f or the number keys, toggle the light/dark theme
with d and write a message with c. With --watch the page reloads whenever
the content file changes.`,
		Example: `  folio show
  folio show --content portfolio.yaml --watch`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd, contentPath, watch)
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file (default: built-in sample)")
	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "reload when the content file changes")

	return cmd
}

func runShow(cmd *cobra.Command, contentPath string, watch bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if contentPath != "" {
		cfg.Content.Path = contentPath
	}
	if watch {
		cfg.Content.Watch = true
	}
	applyColorMode(cfg.Output.ColorMode)

	log := newLogger(cfg)
	closeLog, err := redirectLogs(log, cfg.Output.LogFile)
	if err != nil {
		return err
	}
	defer closeLog()

	portfolio, err := loadPortfolio(cfg.Content.Path)
	if err != nil {
		return err
	}

	store := themeStore(cfg)
	model, err := ui.New(ui.Options{
		Config:     cfg,
		Portfolio:  portfolio,
		Theme:      theme.Load(store, defaultTheme(cfg)),
		ThemeStore: store,
		Logger:     log,
	})
	if err != nil {
		return err
	}

	watchPath := ""
	if cfg.Content.Watch {
		if cfg.Content.Path == "" {
			fmt.Fprintln(cmd.ErrOrStderr(), GetEmoji("warning")+" --watch needs a content file, live reload disabled")
		} else {
			watchPath = config.ExpandPath(cfg.Content.Path)
		}
	}

	log.InfoWithFields("opening page", []logger.Field{
		logger.F("theme", model.Theme()),
		logger.F("watch", watchPath != ""),
	})

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return ui.Run(ctx, model, ui.RunOptions{
		WatchPath: watchPath,
		AltScreen: true,
		Logger:    log,
	})
}
