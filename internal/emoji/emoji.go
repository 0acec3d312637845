package emoji

import "sync"

// EmojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"dog":     {"🐶", "[DOG]"},
	"search":  {"🔍", "[?]"},
	"image":   {"🖼️", "[IMG]"},
	"error":   {"❌", "[ERR]"},
	"info":    {"ℹ️", "[INF]"},
	"success": {"✅", "[OK]"},
	"typing":  {"⌨️", "[...]"},
	"loading": {"⏳", "[~]"},
	"reload":  {"🔄", "[RLD]"},
	"door":    {"🚪", "[EXIT]"},
}

var (
	mu            sync.RWMutex
	emojiDisabled bool
)

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	mu.Lock()
	defer mu.Unlock()
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if IsEmojiDisabled() {
			return mapping[1] // fallback
		}
		return mapping[0] // emoji
	}
	return "[?]" // unknown key
}
