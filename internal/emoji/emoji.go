package emoji

// emojiMap holds [emoji, fallback] pairs
var emojiMap = map[string][2]string{
	"error":    {"❌", "[ERR]"},
	"warning":  {"⚠️", "[WRN]"},
	"info":     {"ℹ️", "[INF]"},
	"success":  {"✅", "[OK]"},
	"rocket":   {"🚀", "[>>]"},
	"project":  {"📁", "[PRJ]"},
	"skill":    {"🛠️", "[SKL]"},
	"contact":  {"✉️", "[MSG]"},
	"about":    {"👋", "[ME]"},
	"link":     {"🔗", "[URL]"},
	"light":    {"☀️", "[LIGHT]"},
	"dark":     {"🌙", "[DARK]"},
	"top":      {"⬆️", "[^]"},
	"sending":  {"📨", "[...]"},
	"config":   {"📄", "[CFG]"},
	"folder":   {"📁", "[DIR]"},
	"target":   {"🎯", "[>]"},
	"bulb":     {"💡", "[TIP]"},
	"wave":     {"👋", "[BYE]"},
	"keyboard": {"⌨️", "[KEY]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns the emoji or its fallback depending on the no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
