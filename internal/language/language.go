// Package language holds the localized direction words used for spoken
// cues, keyed by locale code.
package language

import (
	"sort"
	"strings"
)

const (
	English = "en-US"
	Finnish = "fi-FI"
)

// Table maps a locale code to the localized string for each direction key.
type Table map[string]map[string]string

// Default returns the built-in translations.
func Default() Table {
	return Table{
		English: {
			"Left":    "Left",
			"Right":   "Right",
			"Turn":    "Turn",
			"Protect": "Protect",
		},
		Finnish: {
			"Left":    "Vasen",
			"Right":   "Oikea",
			"Turn":    "Käänny",
			"Protect": "Suojaa",
		},
	}
}

// Translate returns the localized text for key, or key itself when the
// language or the key has no entry.
func (t Table) Translate(code, key string) string {
	if words, ok := t[code]; ok {
		if word, ok := words[key]; ok && word != "" {
			return word
		}
	}
	return key
}

// Has reports whether the table carries an entry for code.
func (t Table) Has(code string) bool {
	_, ok := t[code]
	return ok
}

// Codes returns the known locale codes in sorted order.
func (t Table) Codes() []string {
	codes := make([]string, 0, len(t))
	for code := range t {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Merge returns a copy of t with extra layered on top. Keys present in
// extra replace the ones in t; everything else is kept.
func (t Table) Merge(extra Table) Table {
	merged := make(Table, len(t)+len(extra))
	for code, words := range t {
		merged[code] = copyWords(words)
	}
	for code, words := range extra {
		code = strings.TrimSpace(code)
		if code == "" {
			continue
		}
		dst, ok := merged[code]
		if !ok {
			dst = make(map[string]string, len(words))
			merged[code] = dst
		}
		for key, word := range words {
			dst[key] = word
		}
	}
	return merged
}

// DisplayName returns a human label for the built-in codes.
func DisplayName(code string) string {
	switch code {
	case English:
		return "English"
	case Finnish:
		return "Finnish"
	default:
		return code
	}
}

// Base returns the primary language subtag ("fi" for "fi-FI").
func Base(code string) string {
	if idx := strings.IndexAny(code, "-_"); idx > 0 {
		return strings.ToLower(code[:idx])
	}
	return strings.ToLower(code)
}

func copyWords(words map[string]string) map[string]string {
	out := make(map[string]string, len(words))
	for key, word := range words {
		out[key] = word
	}
	return out
}
