package ui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/sync/errgroup"

	"github.com/yildizm/folio/internal/content"
	"github.com/yildizm/folio/internal/logger"
)

// RunOptions controls the program around the page model.
type RunOptions struct {
	// WatchPath, when set, reloads the page whenever that content file changes.
	WatchPath string
	AltScreen bool
	Logger    *logger.Logger
}

// Run shows the page until the user quits or ctx is done.
func Run(ctx context.Context, model *Model, opts RunOptions) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	programOpts := []tea.ProgramOption{tea.WithContext(ctx), tea.WithMouseCellMotion()}
	if opts.AltScreen {
		programOpts = append(programOpts, tea.WithAltScreen())
	}
	p := tea.NewProgram(model, programOpts...)

	var watcher *content.Watcher
	if opts.WatchPath != "" {
		w, err := content.NewWatcher(opts.WatchPath, func(pf *content.Portfolio, err error) {
			p.Send(ContentMsg{Portfolio: pf, Err: err})
		}, opts.Logger)
		if err != nil {
			return fmt.Errorf("failed to watch content: %w", err)
		}
		watcher = w
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		// the watcher goroutine ends with the program
		defer cancel()
		if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
			return fmt.Errorf("program failed: %w", err)
		}
		return nil
	})

	if watcher != nil {
		g.Go(func() error {
			return watcher.Run(gctx)
		})
	}

	return g.Wait()
}
