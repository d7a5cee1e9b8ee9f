package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/yildizm/folio/internal/config"
	"github.com/yildizm/folio/internal/content"
	"github.com/yildizm/folio/internal/logger"
	"github.com/yildizm/folio/internal/theme"
	"github.com/yildizm/folio/internal/ui"
)

// loadConfig loads the merged configuration and applies the global flags.
func loadConfig() (*config.Config, error) {
	cfg, err := config.NewLoader().LoadConfig(cfgFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if verbose {
		cfg.Output.Verbose = true
	}
	if noColor {
		cfg.Output.ColorMode = config.ColorNever
	}
	return cfg, nil
}

// loadPortfolio reads the content file, or returns the built-in sample when
// no file is configured.
func loadPortfolio(path string) (*content.Portfolio, error) {
	if path == "" {
		return content.Default(), nil
	}
	p, err := content.Load(config.ExpandPath(path))
	if err != nil {
		return nil, err
	}
	return p, nil
}

func newLogger(cfg *config.Config) *logger.Logger {
	return logger.NewWithCallback("folio", func() bool { return cfg.Output.Verbose })
}

// redirectLogs sends log output to path. An empty path discards it.
func redirectLogs(log *logger.Logger, path string) (func(), error) {
	if path == "" {
		log.SetOutput(nil)
		return func() {}, nil
	}

	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	// #nosec G304 - log path comes from configuration
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %w", err)
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }, nil
}

// colorEnabled resolves the color mode against NO_COLOR and the terminal.
func colorEnabled(mode string) bool {
	switch {
	case mode == config.ColorNever || ui.IsColorDisabled():
		return false
	case mode == config.ColorAlways:
		return true
	default:
		return isatty.IsTerminal(os.Stdout.Fd())
	}
}

// applyColorMode forces the lipgloss color profile when the mode is not auto.
func applyColorMode(mode string) {
	switch {
	case mode == config.ColorNever || ui.IsColorDisabled():
		lipgloss.SetColorProfile(termenv.Ascii)
	case mode == config.ColorAlways:
		lipgloss.SetColorProfile(termenv.TrueColor)
	}
}

func themeStore(cfg *config.Config) *theme.FileStore {
	return theme.NewFileStore(config.ExpandPath(cfg.Theme.StatePath))
}

func defaultTheme(cfg *config.Config) theme.Theme {
	t, err := theme.Parse(cfg.Theme.Default)
	if err != nil {
		return theme.Light
	}
	return t
}
