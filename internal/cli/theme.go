package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yildizm/folio/internal/theme"
)

func newThemeCommand() *cobra.Command {
	themeCmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the saved light/dark theme",
		Long: `Show or change the theme the portfolio page opens with.

The choice is saved under the key "theme" in the state file
(theme.state_path, default ~/.config/folio/state.yaml).`,
		Args: cobra.NoArgs,
		RunE: runThemeGet,
	}

	themeCmd.AddCommand(&cobra.Command{
		Use:   "get",
		Short: "Print the saved theme",
		Args:  cobra.NoArgs,
		RunE:  runThemeGet,
	})
	themeCmd.AddCommand(&cobra.Command{
		Use:       "set <light|dark>",
		Short:     "Save a theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{string(theme.Light), string(theme.Dark)},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0])
			if err != nil {
				return err
			}
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			if err := theme.Save(themeStore(cfg), t); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Theme set to %s\n", GetThemeEmoji(t), t)
			return nil
		},
	})
	themeCmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between light and dark",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			store := themeStore(cfg)
			next, err := theme.Toggle(store, theme.Load(store, defaultTheme(cfg)))
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Theme set to %s\n", GetThemeEmoji(next), next)
			return nil
		},
	})

	return themeCmd
}

func runThemeGet(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	t := theme.Load(themeStore(cfg), defaultTheme(cfg))
	fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", GetThemeEmoji(t), t)
	return nil
}
