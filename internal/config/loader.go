package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ConfigPaths defines the config file search paths in priority order
var ConfigPaths = []string{
	"./.folio.yaml",               // Project-specific config (highest priority)
	"~/.config/folio/config.yaml", // User config
	"/etc/folio/config.yaml",      // System config (lowest priority)
}

// Loader handles configuration loading with priority merging
type Loader struct {
	configPaths []string
}

// NewLoader creates a new config loader
func NewLoader() *Loader {
	return &Loader{
		configPaths: ConfigPaths,
	}
}

// LoadConfig loads configuration from multiple sources with priority order:
// 1. Command line flags (handled by caller)
// 2. Environment variables (a .env file in the working directory is loaded into the environment at startup)
// 3. ./.folio.yaml
// 4. ~/.config/folio/config.yaml
// 5. /etc/folio/config.yaml
// 6. Built-in defaults
func (l *Loader) LoadConfig(customPath string) (*Config, error) {
	config := DefaultConfig()

	if customPath != "" {
		if err := validateConfigPath(customPath); err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		if err := l.loadFromFile(config, customPath); err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", customPath, err)
		}
	} else {
		// lowest priority first so later files win
		for i := len(l.configPaths) - 1; i >= 0; i-- {
			expandedPath := ExpandPath(l.configPaths[i])
			if fileExists(expandedPath) {
				if err := l.loadFromFile(config, expandedPath); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: Failed to load config from %s: %v\n", expandedPath, err)
				}
			}
		}
	}

	if err := l.applyEnvOverrides(config); err != nil {
		return nil, fmt.Errorf("failed to apply environment overrides: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// loadFromFile loads configuration from a YAML file and merges it with existing config
func (l *Loader) loadFromFile(config *Config, path string) error {
	// #nosec G304 - path is validated by validateConfigPath() or comes from ConfigPaths
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file: %w", err)
	}

	var fileConfig Config
	if err := yaml.Unmarshal(data, &fileConfig); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}
	var flags fileFlags
	if err := yaml.Unmarshal(data, &flags); err != nil {
		return fmt.Errorf("failed to parse YAML: %w", err)
	}

	mergeConfigs(config, &fileConfig)
	flags.apply(config)
	return nil
}

// fileFlags records which booleans a file sets, so an explicit false can
// override a true from a lower-priority file.
type fileFlags struct {
	Content struct {
		Watch *bool `yaml:"watch"`
	} `yaml:"content"`
	Output struct {
		Verbose *bool `yaml:"verbose"`
	} `yaml:"output"`
}

func (f *fileFlags) apply(config *Config) {
	if f.Content.Watch != nil {
		config.Content.Watch = *f.Content.Watch
	}
	if f.Output.Verbose != nil {
		config.Output.Verbose = *f.Output.Verbose
	}
}

// applyEnvOverrides applies FOLIO_* environment variable overrides to the config
func (l *Loader) applyEnvOverrides(config *Config) error {
	envMappings := map[string]func(string) error{
		"FOLIO_CONTENT_PATH":  func(v string) error { config.Content.Path = v; return nil },
		"FOLIO_CONTENT_WATCH": func(v string) error { return parseBool(v, &config.Content.Watch) },

		"FOLIO_TYPEWRITER_PHRASES":      func(v string) error { config.Typewriter.Phrases = v; return nil },
		"FOLIO_TYPEWRITER_TYPE_DELAY":   func(v string) error { return parseDuration(v, &config.Typewriter.TypeDelay) },
		"FOLIO_TYPEWRITER_DELETE_DELAY": func(v string) error { return parseDuration(v, &config.Typewriter.DeleteDelay) },
		"FOLIO_TYPEWRITER_PAUSE":        func(v string) error { return parseDuration(v, &config.Typewriter.Pause) },

		"FOLIO_THEME_DEFAULT":    func(v string) error { config.Theme.Default = v; return nil },
		"FOLIO_THEME_STATE_PATH": func(v string) error { config.Theme.StatePath = v; return nil },

		"FOLIO_PAGE_NAVBAR_THRESHOLD":      func(v string) error { return parseInt(v, &config.Page.NavbarThreshold) },
		"FOLIO_PAGE_BACK_TO_TOP_THRESHOLD": func(v string) error { return parseInt(v, &config.Page.BackToTopThreshold) },
		"FOLIO_PAGE_SKILL_BAR_DELAY":       func(v string) error { return parseDuration(v, &config.Page.SkillBarDelay) },
		"FOLIO_PAGE_SKILL_BAR_DURATION":    func(v string) error { return parseDuration(v, &config.Page.SkillBarDuration) },

		"FOLIO_CONTACT_SUBMIT_DELAY":    func(v string) error { return parseDuration(v, &config.Contact.SubmitDelay) },
		"FOLIO_CONTACT_SUCCESS_TIMEOUT": func(v string) error { return parseDuration(v, &config.Contact.SuccessTimeout) },

		"FOLIO_OUTPUT_COLOR_MODE": func(v string) error { config.Output.ColorMode = v; return nil },
		"FOLIO_OUTPUT_VERBOSE":    func(v string) error { return parseBool(v, &config.Output.Verbose) },
		"FOLIO_OUTPUT_LOG_FILE":   func(v string) error { config.Output.LogFile = v; return nil },
	}

	for envVar, setter := range envMappings {
		if value := os.Getenv(envVar); value != "" {
			if err := setter(value); err != nil {
				return fmt.Errorf("invalid value for %s: %w", envVar, err)
			}
		}
	}

	return nil
}

// GetConfigPaths returns the list of configuration file paths that will be searched
func GetConfigPaths() []string {
	paths := make([]string, 0, len(ConfigPaths))
	for _, path := range ConfigPaths {
		paths = append(paths, ExpandPath(path))
	}
	return paths
}

// FindConfigFile finds the first existing config file in the search paths
func FindConfigFile() (string, bool) {
	for _, path := range ConfigPaths {
		expandedPath := ExpandPath(path)
		if fileExists(expandedPath) {
			return expandedPath, true
		}
	}
	return "", false
}

// validateConfigPath validates that a config path is safe to read
func validateConfigPath(path string) error {
	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return fmt.Errorf("path traversal not allowed")
	}

	ext := strings.ToLower(filepath.Ext(cleanPath))
	if ext != ".yaml" && ext != ".yml" {
		return fmt.Errorf("config file must have .yaml or .yml extension")
	}

	absPath, err := filepath.Abs(cleanPath)
	if err != nil {
		return fmt.Errorf("failed to resolve absolute path: %w", err)
	}

	if strings.HasPrefix(absPath, "/proc/") || strings.HasPrefix(absPath, "/sys/") {
		return fmt.Errorf("access to system files not allowed")
	}

	return nil
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// mergeConfigs merges source config into destination config.
// Only non-zero values from source overwrite destination.
func mergeConfigs(dst, src *Config) {
	if src.Version != "" {
		dst.Version = src.Version
	}

	mergeContentConfig(&dst.Content, &src.Content)
	mergeTypewriterConfig(&dst.Typewriter, &src.Typewriter)
	mergeThemeConfig(&dst.Theme, &src.Theme)
	mergePageConfig(&dst.Page, &src.Page)
	mergeContactConfig(&dst.Contact, &src.Contact)
	mergeOutputConfig(&dst.Output, &src.Output)
}

func mergeContentConfig(dst, src *ContentConfig) {
	if src.Path != "" {
		dst.Path = src.Path
	}
}

func mergeTypewriterConfig(dst, src *TypewriterConfig) {
	if src.Phrases != "" {
		dst.Phrases = src.Phrases
	}
	mergeDuration(&dst.TypeDelay, src.TypeDelay)
	mergeDuration(&dst.DeleteDelay, src.DeleteDelay)
	mergeDuration(&dst.Pause, src.Pause)
}

func mergeThemeConfig(dst, src *ThemeConfig) {
	if src.Default != "" {
		dst.Default = src.Default
	}
	if src.StatePath != "" {
		dst.StatePath = src.StatePath
	}
}

func mergePageConfig(dst, src *PageConfig) {
	if src.NavbarThreshold != 0 {
		dst.NavbarThreshold = src.NavbarThreshold
	}
	if src.BackToTopThreshold != 0 {
		dst.BackToTopThreshold = src.BackToTopThreshold
	}
	mergeDuration(&dst.SkillBarDelay, src.SkillBarDelay)
	mergeDuration(&dst.SkillBarDuration, src.SkillBarDuration)
	mergeDuration(&dst.FilterShowDelay, src.FilterShowDelay)
	mergeDuration(&dst.FilterHideDelay, src.FilterHideDelay)
	mergeDuration(&dst.ScrollFrame, src.ScrollFrame)
}

func mergeContactConfig(dst, src *ContactConfig) {
	mergeDuration(&dst.SubmitDelay, src.SubmitDelay)
	mergeDuration(&dst.SuccessTimeout, src.SuccessTimeout)
}

func mergeOutputConfig(dst, src *OutputConfig) {
	if src.ColorMode != "" {
		dst.ColorMode = src.ColorMode
	}
	if src.LogFile != "" {
		dst.LogFile = src.LogFile
	}
}

func mergeDuration(dst *time.Duration, src time.Duration) {
	if src != 0 {
		*dst = src
	}
}

func parseInt(s string, dst *int) error {
	val, err := strconv.Atoi(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseBool(s string, dst *bool) error {
	val, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}

func parseDuration(s string, dst *time.Duration) error {
	val, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*dst = val
	return nil
}
