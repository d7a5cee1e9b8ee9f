package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yildizm/folio/internal/typewriter"
)

func newTypewriterCommand() *cobra.Command {
	var (
		phrases     string
		frames      int
		contentPath string
	)

	cmd := &cobra.Command{
		Use:   "typewriter",
		Short: "Play the hero typewriter in the terminal",
		Long: `Type and delete the hero phrases in place until Ctrl+C.

Phrases come from --phrases, then typewriter.phrases in the config, then the
tagline of the content file. With --frames N the first N frames are printed
one per line together with the delay that follows each, without waiting.`,
		Example: `  folio typewriter --phrases "Engineer,Builder"
  folio typewriter --frames 20`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			raw := phrases
			if raw == "" {
				raw = cfg.Typewriter.Phrases
			}
			if raw == "" {
				if contentPath == "" {
					contentPath = cfg.Content.Path
				}
				portfolio, err := loadPortfolio(contentPath)
				if err != nil {
					return err
				}
				raw = portfolio.Tagline
			}

			if frames > 0 {
				return printFrames(cmd.OutOrStdout(), raw, cfg.Typewriter.Timing(), frames)
			}
			return animate(cmd.Context(), cmd.OutOrStdout(), raw, cfg.Typewriter.Timing())
		},
	}

	cmd.Flags().StringVarP(&phrases, "phrases", "p", "", "comma-separated phrases")
	cmd.Flags().IntVarP(&frames, "frames", "n", 0, "print the first N frames and exit")
	cmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file to take the tagline from")

	return cmd
}

// printFrames steps the engine n times and prints every frame with the mode
// it leaves the engine in and the delay before the next frame.
func printFrames(w io.Writer, raw string, timing typewriter.Timing, n int) error {
	var text string
	engine, err := typewriter.NewFromString(raw, typewriter.SurfaceFunc(func(s string) { text = s }), timing)
	if err != nil {
		return err
	}

	for i := 1; i <= n; i++ {
		delay := engine.Step()
		fmt.Fprintf(w, "%4d  %-8s %6s  %q\n", i, engine.State().Mode, delay, text)
	}
	return nil
}

// animate rewrites the current line on every tick until SIGINT or SIGTERM.
func animate(ctx context.Context, w io.Writer, raw string, timing typewriter.Timing) error {
	surface := typewriter.SurfaceFunc(func(s string) {
		fmt.Fprintf(w, "\r\033[K%s▌", s)
	})
	engine, err := typewriter.NewFromString(raw, surface, timing)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	go func() {
		select {
		case <-sigChan:
			engine.Stop()
			cancel()
		case <-ctx.Done():
		}
	}()

	err = engine.Run(ctx, typewriter.RealClock{})
	fmt.Fprintln(w)
	if err != nil && !(errors.Is(err, context.Canceled) && engine.Stopped()) {
		return err
	}
	return nil
}
