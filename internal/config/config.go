package config

import (
	"fmt"
	"time"

	"github.com/yildizm/folio/internal/typewriter"
)

// Color modes for output.color_mode
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds the complete application configuration
type Config struct {
	Version    string           `yaml:"version" json:"version"`
	Content    ContentConfig    `yaml:"content" json:"content"`
	Typewriter TypewriterConfig `yaml:"typewriter" json:"typewriter"`
	Theme      ThemeConfig      `yaml:"theme" json:"theme"`
	Page       PageConfig       `yaml:"page" json:"page"`
	Contact    ContactConfig    `yaml:"contact" json:"contact"`
	Output     OutputConfig     `yaml:"output" json:"output"`
}

// ContentConfig selects the portfolio content file
type ContentConfig struct {
	Path  string `yaml:"path" json:"path"`   // portfolio YAML; empty uses the built-in sample
	Watch bool   `yaml:"watch" json:"watch"` // reload the TUI when the file changes
}

// TypewriterConfig configures the hero text effect
type TypewriterConfig struct {
	Phrases     string        `yaml:"phrases" json:"phrases"` // comma-separated; overrides the content tagline
	TypeDelay   time.Duration `yaml:"type_delay" json:"type_delay"`
	DeleteDelay time.Duration `yaml:"delete_delay" json:"delete_delay"`
	Pause       time.Duration `yaml:"pause" json:"pause"`
}

// ThemeConfig configures the light/dark toggle and where the choice is saved
type ThemeConfig struct {
	Default   string `yaml:"default" json:"default"`       // light|dark, used when nothing is saved
	StatePath string `yaml:"state_path" json:"state_path"` // key/value state file
}

// PageConfig configures scrolling and animation behavior of the TUI page
type PageConfig struct {
	NavbarThreshold    int           `yaml:"navbar_threshold" json:"navbar_threshold"`           // lines scrolled before the navbar changes style
	BackToTopThreshold int           `yaml:"back_to_top_threshold" json:"back_to_top_threshold"` // lines scrolled before the back-to-top hint shows
	SkillBarDelay      time.Duration `yaml:"skill_bar_delay" json:"skill_bar_delay"`
	SkillBarDuration   time.Duration `yaml:"skill_bar_duration" json:"skill_bar_duration"`
	FilterShowDelay    time.Duration `yaml:"filter_show_delay" json:"filter_show_delay"`
	FilterHideDelay    time.Duration `yaml:"filter_hide_delay" json:"filter_hide_delay"`
	ScrollFrame        time.Duration `yaml:"scroll_frame" json:"scroll_frame"` // smooth scroll frame interval
}

// ContactConfig configures the simulated contact form submission
type ContactConfig struct {
	SubmitDelay    time.Duration `yaml:"submit_delay" json:"submit_delay"`
	SuccessTimeout time.Duration `yaml:"success_timeout" json:"success_timeout"`
}

// OutputConfig configures output formatting and display
type OutputConfig struct {
	ColorMode string `yaml:"color_mode" json:"color_mode"` // auto|always|never
	Verbose   bool   `yaml:"verbose" json:"verbose"`
	LogFile   string `yaml:"log_file" json:"log_file"` // where the TUI writes logs
}

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	timing := typewriter.DefaultTiming()
	return &Config{
		Version: "1.0",
		Content: ContentConfig{
			Path:  "",
			Watch: false,
		},
		Typewriter: TypewriterConfig{
			Phrases:     "",
			TypeDelay:   timing.TypeDelay,
			DeleteDelay: timing.DeleteDelay,
			Pause:       timing.Pause,
		},
		Theme: ThemeConfig{
			Default:   "light",
			StatePath: "~/.config/folio/state.yaml",
		},
		Page: PageConfig{
			NavbarThreshold:    3,
			BackToTopThreshold: 20,
			SkillBarDelay:      200 * time.Millisecond,
			SkillBarDuration:   time.Second,
			FilterShowDelay:    100 * time.Millisecond,
			FilterHideDelay:    300 * time.Millisecond,
			ScrollFrame:        16 * time.Millisecond,
		},
		Contact: ContactConfig{
			SubmitDelay:    time.Second,
			SuccessTimeout: 5 * time.Second,
		},
		Output: OutputConfig{
			ColorMode: ColorAuto,
			Verbose:   false,
			LogFile:   "~/.local/state/folio/folio.log",
		},
	}
}

// Timing converts the typewriter section into engine timing
func (c TypewriterConfig) Timing() typewriter.Timing {
	return typewriter.Timing{
		TypeDelay:   c.TypeDelay,
		DeleteDelay: c.DeleteDelay,
		Pause:       c.Pause,
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateTypewriterConfig(); err != nil {
		return err
	}
	if err := c.validateThemeConfig(); err != nil {
		return err
	}
	if err := c.validatePageConfig(); err != nil {
		return err
	}
	if err := c.validateContactConfig(); err != nil {
		return err
	}
	if err := c.validateOutputConfig(); err != nil {
		return err
	}
	return nil
}

func (c *Config) validateTypewriterConfig() error {
	if err := c.Typewriter.Timing().Validate(); err != nil {
		return fmt.Errorf("typewriter: %w", err)
	}
	return nil
}

func (c *Config) validateThemeConfig() error {
	if c.Theme.Default != "" && c.Theme.Default != "light" && c.Theme.Default != "dark" {
		return fmt.Errorf("invalid default theme: %s (must be one of: light, dark)", c.Theme.Default)
	}
	return nil
}

func (c *Config) validatePageConfig() error {
	if c.Page.NavbarThreshold < 0 {
		return fmt.Errorf("navbar_threshold must be non-negative")
	}
	if c.Page.BackToTopThreshold < 0 {
		return fmt.Errorf("back_to_top_threshold must be non-negative")
	}
	if c.Page.SkillBarDelay < 0 || c.Page.FilterShowDelay < 0 || c.Page.FilterHideDelay < 0 {
		return fmt.Errorf("page delays must be non-negative")
	}
	if c.Page.SkillBarDuration <= 0 {
		return fmt.Errorf("skill_bar_duration must be positive")
	}
	if c.Page.ScrollFrame <= 0 {
		return fmt.Errorf("scroll_frame must be positive")
	}
	return nil
}

func (c *Config) validateContactConfig() error {
	if c.Contact.SubmitDelay < 0 {
		return fmt.Errorf("submit_delay must be non-negative")
	}
	if c.Contact.SuccessTimeout <= 0 {
		return fmt.Errorf("success_timeout must be positive")
	}
	return nil
}

func (c *Config) validateOutputConfig() error {
	if c.Output.ColorMode != "" {
		validColorModes := map[string]bool{
			ColorAuto:   true,
			ColorAlways: true,
			ColorNever:  true,
		}
		if !validColorModes[c.Output.ColorMode] {
			return fmt.Errorf("invalid color mode: %s (must be one of: auto, always, never)", c.Output.ColorMode)
		}
	}
	return nil
}
