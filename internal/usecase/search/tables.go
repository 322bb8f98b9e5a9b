package search

import "sort"

// Static lookup tables for query expansion. Hand-authored, read-only;
// safe for concurrent use.

// synonymGroups maps a canonical term to its interchangeable variants.
var synonymGroups = map[string][]string{
	"camera":     {"webcam", "camcorder"},
	"charger":    {"adapter", "power"},
	"headphones": {"earphones", "earbuds", "headset"},
	"keyboard":   {"keys", "typing"},
	"laptop":     {"notebook", "computer", "ultrabook"},
	"monitor":    {"screen", "display"},
	"mouse":      {"trackpad", "pointer"},
	"phone":      {"smartphone", "mobile", "handset"},
	"speaker":    {"audio", "sound"},
	"tablet":     {"slate", "pad"},
}

// categoryKeywords maps a category to the words that signal it.
var categoryKeywords = map[string][]string{
	"accessories": {"cable", "adapter", "stand", "hub", "dock", "case"},
	"audio":       {"speaker", "headphones", "earbuds", "soundbar", "microphone"},
	"computing":   {"laptop", "desktop", "monitor", "keyboard", "mouse"},
	"gaming":      {"console", "controller", "headset", "joystick"},
	"mobile":      {"phone", "smartphone", "tablet", "charger"},
}

// synonymKeys and categoryNames are the table keys in sorted order, so every
// table walk is deterministic despite map iteration being randomized.
var (
	synonymKeys   = sortedKeys(synonymGroups)
	categoryNames = sortedKeys(categoryKeywords)
)

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
