package mask

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	// MaxSegmentLen is the default maximum length of a sanitized path
	// segment, in characters.
	MaxSegmentLen = 30

	// FallbackToken replaces values that sanitize to nothing, so a
	// segment is never empty.
	FallbackToken = "unnamed"
)

// asciiFold decomposes characters and strips combining marks, so accented
// letters reduce to their ASCII base form ("é" -> "e").
var asciiFold = transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Slugify normalizes raw text into a filesystem-safe path segment capped
// at MaxSegmentLen characters.
func Slugify(raw string) string {
	return SlugifyMax(raw, MaxSegmentLen)
}

// SlugifyMax normalizes raw text into a filesystem-safe path segment:
//
//  1. Transliterate to ASCII, dropping diacritics and any character with
//     no ASCII form.
//  2. Keep letters, digits, and "._-"; collapse every other run of
//     characters to a single underscore.
//  3. Trim leading/trailing "._-" noise.
//  4. Truncate to maxLen characters. After step 1 every character is a
//     single byte, so the cut can never split a multi-byte sequence.
//  5. Return FallbackToken if nothing remains.
func SlugifyMax(raw string, maxLen int) string {
	folded, _, err := transform.String(asciiFold, raw)
	if err != nil {
		folded = raw
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		switch {
		case r > unicode.MaxASCII:
			// No ASCII form; dropped rather than replaced.
		case r >= 'A' && r <= 'Z', r >= 'a' && r <= 'z', r >= '0' && r <= '9',
			r == '.', r == '_', r == '-':
			if pendingSep && b.Len() > 0 {
				b.WriteByte('_')
			}
			pendingSep = false
			b.WriteRune(r)
		default:
			pendingSep = true
		}
	}

	safe := strings.Trim(b.String(), "._-")
	if maxLen > 0 && len(safe) > maxLen {
		safe = strings.TrimRight(safe[:maxLen], "._-")
	}
	if safe == "" {
		return FallbackToken
	}
	return safe
}
