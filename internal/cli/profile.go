package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yildizm/folio/internal/formatter"
	"github.com/yildizm/folio/internal/theme"
)

func newProfileCommand() *cobra.Command {
	var (
		contentPath string
		format      string
	)

	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Print the portfolio without the interactive page",
		Long: `Print the whole portfolio without the interactive page: tagline phrases,
about text, projects grouped by category, skill bars and links.

Formats: text (default), json, markdown, html (a standalone page in the
saved theme), csv (projects only).`,
		Example: `  folio profile
  folio profile --content portfolio.yaml --no-color
  folio profile --format markdown > PORTFOLIO.md
  folio profile --format html > index.html`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if contentPath == "" {
				contentPath = cfg.Content.Path
			}
			portfolio, err := loadPortfolio(contentPath)
			if err != nil {
				return err
			}

			f, err := formatter.New(format, formatter.Options{
				Color: colorEnabled(cfg.Output.ColorMode),
				Dark:  theme.Load(themeStore(cfg), defaultTheme(cfg)).IsDark(),
			})
			if err != nil {
				return err
			}
			out, err := f.Format(portfolio)
			if err != nil {
				return fmt.Errorf("failed to format portfolio: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	cmd.Flags().StringVar(&contentPath, "content", "", "portfolio YAML file (default: built-in sample)")
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format ("+strings.Join(formatter.Names, ", ")+")")

	return cmd
}
