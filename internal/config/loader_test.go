package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestNewLoader(t *testing.T) {
	loader := NewLoader()
	if loader == nil {
		t.Fatal("NewLoader returned nil")
	}
	if len(loader.configPaths) != 3 {
		t.Errorf("Expected 3 config paths, got %d", len(loader.configPaths))
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	loader := &Loader{configPaths: []string{filepath.Join(t.TempDir(), "missing.yaml")}}

	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("Failed to load default config: %v", err)
	}
	if cfg.Theme.Default != "light" {
		t.Errorf("Expected default theme light, got %s", cfg.Theme.Default)
	}
	if cfg.Typewriter.Pause != time.Second {
		t.Errorf("Expected default pause 1s, got %v", cfg.Typewriter.Pause)
	}
}

func TestLoadConfigFromFile(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "test-config.yaml")

	configContent := `version: "1.0"
content:
  path: "portfolio.yaml"
  watch: true
typewriter:
  phrases: "Engineer, Builder"
  type_delay: 80ms
  pause: 2s
theme:
  default: dark
page:
  navbar_threshold: 6
output:
  verbose: true
`

	if err := os.WriteFile(configPath, []byte(configContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	cfg, err := loader.LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config from file: %v", err)
	}

	if cfg.Content.Path != "portfolio.yaml" || !cfg.Content.Watch {
		t.Errorf("Unexpected content config %+v", cfg.Content)
	}
	if cfg.Typewriter.Phrases != "Engineer, Builder" {
		t.Errorf("Expected phrases to be loaded, got %q", cfg.Typewriter.Phrases)
	}
	if cfg.Typewriter.TypeDelay != 80*time.Millisecond {
		t.Errorf("Expected type delay 80ms, got %v", cfg.Typewriter.TypeDelay)
	}
	if cfg.Typewriter.DeleteDelay != 50*time.Millisecond {
		t.Errorf("Expected untouched delete delay 50ms, got %v", cfg.Typewriter.DeleteDelay)
	}
	if cfg.Typewriter.Pause != 2*time.Second {
		t.Errorf("Expected pause 2s, got %v", cfg.Typewriter.Pause)
	}
	if cfg.Theme.Default != "dark" {
		t.Errorf("Expected theme dark, got %s", cfg.Theme.Default)
	}
	if cfg.Page.NavbarThreshold != 6 {
		t.Errorf("Expected navbar threshold 6, got %d", cfg.Page.NavbarThreshold)
	}
	if cfg.Page.BackToTopThreshold != 20 {
		t.Errorf("Expected default back-to-top threshold 20, got %d", cfg.Page.BackToTopThreshold)
	}
	if !cfg.Output.Verbose {
		t.Errorf("Expected verbose to be true")
	}
}

func TestLoadConfigPriority(t *testing.T) {
	tempDir := t.TempDir()
	low := filepath.Join(tempDir, "system.yaml")
	high := filepath.Join(tempDir, "project.yaml")

	if err := os.WriteFile(low, []byte("theme:\n  default: dark\ntypewriter:\n  phrases: \"from system\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(high, []byte("typewriter:\n  phrases: \"from project\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{configPaths: []string{high, low}}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Typewriter.Phrases != "from project" {
		t.Errorf("Expected project file to win, got %q", cfg.Typewriter.Phrases)
	}
	if cfg.Theme.Default != "dark" {
		t.Errorf("Expected system value to survive, got %s", cfg.Theme.Default)
	}
}

func TestLoadConfigLaterFileTurnsFlagsOff(t *testing.T) {
	tempDir := t.TempDir()
	user := filepath.Join(tempDir, "user.yaml")
	project := filepath.Join(tempDir, "project.yaml")

	if err := os.WriteFile(user, []byte("content:\n  watch: true\noutput:\n  verbose: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(project, []byte("content:\n  watch: false\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	loader := &Loader{configPaths: []string{project, user}}
	cfg, err := loader.LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Content.Watch {
		t.Error("Expected project watch: false to override user watch: true")
	}
	if !cfg.Output.Verbose {
		t.Error("Expected verbose from user file to survive when project omits it")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "invalid-config.yaml")

	invalidConfigContent := `typewriter:
  phrases: "unterminated
`
	if err := os.WriteFile(configPath, []byte(invalidConfigContent), 0o600); err != nil {
		t.Fatalf("Failed to write test config file: %v", err)
	}

	loader := NewLoader()
	if _, err := loader.LoadConfig(configPath); err == nil {
		t.Error("Expected error loading invalid YAML config, but got none")
	}
}

func TestLoadConfigRejectsInvalidValues(t *testing.T) {
	tempDir := t.TempDir()
	configPath := filepath.Join(tempDir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte("theme:\n  default: sepia\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := NewLoader().LoadConfig(configPath); err == nil {
		t.Error("Expected validation error for unknown theme")
	}
}

func TestValidateConfigPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{"yaml file", "config.yaml", false},
		{"yml file", "dir/config.yml", false},
		{"wrong extension", "config.json", true},
		{"traversal", "../config.yaml", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateConfigPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateConfigPath(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("FOLIO_TYPEWRITER_PHRASES", "Gopher,Writer")
	t.Setenv("FOLIO_TYPEWRITER_PAUSE", "1500ms")
	t.Setenv("FOLIO_THEME_DEFAULT", "dark")
	t.Setenv("FOLIO_PAGE_NAVBAR_THRESHOLD", "9")
	t.Setenv("FOLIO_CONTENT_WATCH", "true")
	t.Setenv("FOLIO_OUTPUT_VERBOSE", "true")

	loader := NewLoader()
	cfg := DefaultConfig()

	if err := loader.applyEnvOverrides(cfg); err != nil {
		t.Fatalf("Failed to apply env overrides: %v", err)
	}

	if cfg.Typewriter.Phrases != "Gopher,Writer" {
		t.Errorf("Expected phrases override, got %q", cfg.Typewriter.Phrases)
	}
	if cfg.Typewriter.Pause != 1500*time.Millisecond {
		t.Errorf("Expected pause 1.5s, got %v", cfg.Typewriter.Pause)
	}
	if cfg.Theme.Default != "dark" {
		t.Errorf("Expected theme dark, got %s", cfg.Theme.Default)
	}
	if cfg.Page.NavbarThreshold != 9 {
		t.Errorf("Expected navbar threshold 9, got %d", cfg.Page.NavbarThreshold)
	}
	if !cfg.Content.Watch || !cfg.Output.Verbose {
		t.Errorf("Expected watch and verbose to be true")
	}
}

func TestApplyEnvOverridesInvalidValues(t *testing.T) {
	tests := []struct {
		name   string
		envVar string
		value  string
	}{
		{"invalid int", "FOLIO_PAGE_BACK_TO_TOP_THRESHOLD", "not-a-number"},
		{"invalid bool", "FOLIO_OUTPUT_VERBOSE", "not-a-bool"},
		{"invalid duration", "FOLIO_TYPEWRITER_TYPE_DELAY", "not-a-duration"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.value)

			loader := NewLoader()
			cfg := DefaultConfig()

			if err := loader.applyEnvOverrides(cfg); err == nil {
				t.Error("Expected error for invalid env var value, but got none")
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}
	if got := ExpandPath("~/.config/folio/state.yaml"); got != filepath.Join(home, ".config/folio/state.yaml") {
		t.Errorf("ExpandPath() = %s", got)
	}
	if got := ExpandPath("/abs/path"); got != "/abs/path" {
		t.Errorf("ExpandPath() changed absolute path to %s", got)
	}
}

func TestParseHelpers(t *testing.T) {
	var d time.Duration
	if err := parseDuration("30s", &d); err != nil || d != 30*time.Second {
		t.Errorf("parseDuration = %v, %v", d, err)
	}
	if err := parseDuration("invalid", &d); err == nil {
		t.Error("Expected error for invalid duration")
	}

	var n int
	if err := parseInt("42", &n); err != nil || n != 42 {
		t.Errorf("parseInt = %d, %v", n, err)
	}

	var b bool
	if err := parseBool("true", &b); err != nil || !b {
		t.Errorf("parseBool = %v, %v", b, err)
	}
	if err := parseBool("nope", &b); err == nil {
		t.Error("Expected error for invalid bool")
	}
}
