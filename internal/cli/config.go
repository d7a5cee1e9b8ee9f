package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/yildizm/folio/internal/config"
)

func newConfigCommand() *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Create, inspect and check folio settings",
	}

	configCmd.AddCommand(newConfigInitCommand())
	configCmd.AddCommand(newConfigShowCommand())
	configCmd.AddCommand(newConfigValidateCommand())
	configCmd.AddCommand(newConfigPathCommand())

	return configCmd
}

func newConfigInitCommand() *cobra.Command {
	var (
		outputPath string
		minimal    bool
		force      bool
	)

	initCmd := &cobra.Command{
		Use:   "init",
		Short: "Write a starter .folio.yaml",
		Long: `Write a configuration file for the content path, typewriter phrases and
timings, theme default and page animation delays. --minimal keeps only the
content, phrases and theme keys.`,
		Example: `  folio config init
  folio config init --minimal -o ~/.config/folio/config.yaml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputPath == "" {
				outputPath = ".folio.yaml"
			}
			outputPath = config.ExpandPath(outputPath)

			if !force && fileExists(outputPath) {
				return fmt.Errorf("%s already exists (use --force to overwrite)", outputPath)
			}
			if err := os.MkdirAll(filepath.Dir(outputPath), 0o750); err != nil {
				return fmt.Errorf("failed to create directory for %s: %w", outputPath, err)
			}

			sample := config.SampleConfig()
			if minimal {
				sample = config.MinimalSampleConfig()
			}
			if err := os.WriteFile(outputPath, []byte(sample), 0o600); err != nil {
				return fmt.Errorf("failed to write config file: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s Configuration file created at: %s\n", GetEmoji("success"), outputPath)
			return nil
		},
	}

	initCmd.Flags().StringVarP(&outputPath, "output", "o", "", "where to write the file (default: .folio.yaml)")
	initCmd.Flags().BoolVarP(&minimal, "minimal", "m", false, "only content, phrases and theme")
	initCmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing file")

	return initCmd
}

func newConfigShowCommand() *cobra.Command {
	var format string

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the merged settings folio will use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case "json":
				data, err = json.MarshalIndent(cfg, "", "  ")
				data = append(data, '\n')
			case "yaml":
				data, err = yaml.Marshal(cfg)
			default:
				return fmt.Errorf("unsupported format: %s (use json or yaml)", format)
			}
			if err != nil {
				return fmt.Errorf("failed to encode config: %w", err)
			}

			_, err = cmd.OutOrStdout().Write(data)
			return err
		},
	}

	showCmd.Flags().StringVarP(&format, "format", "f", "yaml", "yaml or json")

	return showCmd
}

func newConfigValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the settings and the content file they point to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			cfg, err := loadConfig()
			if err == nil && cfg.Content.Path != "" {
				_, err = loadPortfolio(cfg.Content.Path)
			}
			if err != nil {
				fmt.Fprintf(out, "%s Configuration validation failed:\n   %v\n", GetEmoji("error"), err)
				return err
			}

			source := cfg.Content.Path
			if source == "" {
				source = "built-in sample"
			}
			fmt.Fprintln(out, GetEmoji("success")+" Configuration is valid")
			fmt.Fprintf(out, "   Content: %s (watch: %t)\n", source, cfg.Content.Watch)
			fmt.Fprintf(out, "   Typewriter: type %s, delete %s, pause %s\n",
				cfg.Typewriter.TypeDelay, cfg.Typewriter.DeleteDelay, cfg.Typewriter.Pause)
			fmt.Fprintf(out, "   Theme: %s by default, saved in %s\n", cfg.Theme.Default, config.ExpandPath(cfg.Theme.StatePath))
			return nil
		},
	}
}

func newConfigPathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "List the config files folio reads, highest priority first",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			for i, path := range config.GetConfigPaths() {
				mark := GetEmoji("error")
				if fileExists(path) {
					mark = GetEmoji("success")
				}
				fmt.Fprintf(out, "  %d. %s %s\n", i+1, mark, path)
			}

			if current, found := config.FindConfigFile(); found {
				fmt.Fprintf(out, "%s Using %s\n", GetEmoji("target"), current)
			} else {
				fmt.Fprintln(out, GetEmoji("config")+" No config file found, using defaults")
			}
			fmt.Fprintln(out, GetEmoji("bulb")+" FOLIO_* variables (also read from .env) override file settings")
		},
	}
}

func fileExists(filename string) bool {
	_, err := os.Stat(filename)
	return err == nil
}
