package ui

import (
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/yildizm/folio/internal/theme"
)

// Theme is one page palette.
type Theme struct {
	Name string

	// Primary colors
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Accent    lipgloss.Color

	// Semantic colors
	Success lipgloss.Color
	Error   lipgloss.Color

	// UI colors
	Border     lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Surface    lipgloss.Color

	// Special colors
	Progress lipgloss.Color
	Track    lipgloss.Color
}

// Each pair is {light, dark}.
var (
	primaryColor    = [2]string{"#1E40AF", "#60A5FA"}
	secondaryColor  = [2]string{"#6B7280", "#9CA3AF"}
	accentColor     = [2]string{"#7C3AED", "#A855F7"}
	successColor    = [2]string{"#059669", "#34D399"}
	errorColor      = [2]string{"#DC2626", "#F87171"}
	borderColor     = [2]string{"#D1D5DB", "#374151"}
	backgroundColor = [2]string{"#FFFFFF", "#111827"}
	foregroundColor = [2]string{"#111827", "#F9FAFB"}
	mutedColor      = [2]string{"#9CA3AF", "#4B5563"}
	surfaceColor    = [2]string{"#F3F4F6", "#1F2937"}
	progressColor   = [2]string{"#2563EB", "#3B82F6"}
	trackColor      = [2]string{"#E5E7EB", "#374151"}
)

// buildTheme picks one side of every color pair
func buildTheme(name string, side int) Theme {
	pick := func(c [2]string) lipgloss.Color { return lipgloss.Color(c[side]) }
	return Theme{
		Name:       name,
		Primary:    pick(primaryColor),
		Secondary:  pick(secondaryColor),
		Accent:     pick(accentColor),
		Success:    pick(successColor),
		Error:      pick(errorColor),
		Border:     pick(borderColor),
		Background: pick(backgroundColor),
		Foreground: pick(foregroundColor),
		Muted:      pick(mutedColor),
		Surface:    pick(surfaceColor),
		Progress:   pick(progressColor),
		Track:      pick(trackColor),
	}
}

// Available themes
var (
	LightTheme = buildTheme(string(theme.Light), 0)
	DarkTheme  = buildTheme(string(theme.Dark), 1)
)

// ThemeFor returns the palette for t.
func ThemeFor(t theme.Theme) Theme {
	if t.IsDark() {
		return DarkTheme
	}
	return LightTheme
}

// IsColorDisabled checks if colors should be disabled
func IsColorDisabled() bool {
	return os.Getenv("NO_COLOR") != ""
}

// NewStyles builds every page style from t.
func NewStyles(t Theme) *Styles {
	return &Styles{
		Theme: t,

		Page: lipgloss.NewStyle().
			Background(t.Background).
			Foreground(t.Foreground),

		// Base styles
		Title: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),

		Header: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true).
			MarginBottom(1),

		Body: lipgloss.NewStyle().
			Foreground(t.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(t.Secondary),

		Placeholder: lipgloss.NewStyle().
			Foreground(t.Muted).
			Faint(true),

		Hero: lipgloss.NewStyle().
			Foreground(t.Accent).
			Bold(true),

		Cursor: lipgloss.NewStyle().
			Foreground(t.Accent).
			Blink(true),

		// Status styles
		Success: lipgloss.NewStyle().
			Foreground(t.Success).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(t.Error).
			Bold(true),

		// Navbar
		Navbar: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Padding(0, 1),

		NavbarScrolled: lipgloss.NewStyle().
			Foreground(t.Foreground).
			Background(t.Surface).
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Border).
			Padding(0, 1),

		NavLink: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Padding(0, 1),

		NavLinkActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Underline(true).
			Bold(true).
			Padding(0, 1),

		// Project cards
		Card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Border).
			MarginTop(1).
			Padding(0, 1),

		CardRaised: lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(t.Accent).
			MarginBottom(1).
			Padding(0, 1),

		CardFaded: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(t.Muted).
			Foreground(t.Muted).
			Faint(true).
			MarginTop(1).
			Padding(0, 1),

		Tag: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Italic(true),

		FilterButton: lipgloss.NewStyle().
			Foreground(t.Secondary).
			Padding(0, 1),

		FilterActive: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Bold(true).
			Padding(0, 1),

		// Form styles
		Input: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Border).
			Padding(0, 1),

		InputFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(t.Primary).
			Padding(0, 1),

		Button: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Primary).
			Bold(true).
			Padding(0, 2),

		ButtonBusy: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Secondary).
			Padding(0, 2),

		// Special styles
		Progress: lipgloss.NewStyle().
			Foreground(t.Progress).
			Bold(true),

		Track: lipgloss.NewStyle().
			Foreground(t.Track),

		Hint: lipgloss.NewStyle().
			Foreground(t.Background).
			Background(t.Accent).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(t.Secondary),
	}
}

// Styles contains all the styled components
type Styles struct {
	Theme Theme

	Page lipgloss.Style

	// Base styles
	Title       lipgloss.Style
	Header      lipgloss.Style
	Body        lipgloss.Style
	Muted       lipgloss.Style
	Placeholder lipgloss.Style
	Hero        lipgloss.Style
	Cursor      lipgloss.Style

	// Status styles
	Success lipgloss.Style
	Error   lipgloss.Style

	// Navbar
	Navbar         lipgloss.Style
	NavbarScrolled lipgloss.Style
	NavLink        lipgloss.Style
	NavLinkActive  lipgloss.Style

	// Project cards
	Card         lipgloss.Style
	CardRaised   lipgloss.Style
	CardFaded    lipgloss.Style
	Tag          lipgloss.Style
	FilterButton lipgloss.Style
	FilterActive lipgloss.Style

	// Form styles
	Input        lipgloss.Style
	InputFocused lipgloss.Style
	Button       lipgloss.Style
	ButtonBusy   lipgloss.Style

	// Special styles
	Progress lipgloss.Style
	Track    lipgloss.Style
	Hint     lipgloss.Style
	Help     lipgloss.Style
}
