package cli

import (
	"github.com/yildizm/folio/internal/emoji"
	"github.com/yildizm/folio/internal/theme"
)

// GetEmoji is a wrapper for the shared emoji package
func GetEmoji(key string) string {
	return emoji.GetEmoji(key)
}

// GetThemeEmoji returns the icon shown next to a theme name
func GetThemeEmoji(t theme.Theme) string {
	if t.IsDark() {
		return GetEmoji("dark")
	}
	return GetEmoji("light")
}
