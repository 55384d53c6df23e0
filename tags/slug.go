// Package tags turns free-text tag labels into link targets and display
// labels, and groups posts by tag.
//
// Slugify rules:
//
//  1. Fold Latin diacritics to ASCII and lower-case everything.
//  2. Keep a-z, 0-9; any run of other characters (spaces, punctuation,
//     hyphens, non-Latin scripts) becomes one "-".
//  3. Trim leading and trailing "-".
//  4. If nothing survives, derive "tag-<8 hex>" from a SHA-256 of the
//     canonical label so distinct symbol-only labels get distinct slugs.
package tags

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// fallbackPrefix marks slugs derived from a hash rather than the label text.
const fallbackPrefix = "tag-"

// Slugify converts a tag label into the path segment used under /tags/.
// Labels that differ only in case or surrounding/inner whitespace produce
// the same slug. Blank labels produce "".
func Slugify(text string) string {
	var b strings.Builder
	b.Grow(len(text))

	pendingDash := false
	for _, r := range fold(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
		default:
			pendingDash = true
		}
	}
	if b.Len() > 0 {
		return b.String()
	}

	canon := Canonical(text)
	if canon == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(canon))
	return fallbackPrefix + hex.EncodeToString(sum[:4])
}

// IsFallback reports whether the slug of label is hash-derived because the
// label has no letters or digits.
func IsFallback(label string) bool {
	return Canonical(label) != "" && !hasSlugChar(fold(label))
}

// DisplayForm is the visible tag label: every space replaced with a hyphen,
// case and punctuation left alone.
func DisplayForm(text string) string {
	return strings.ReplaceAll(text, " ", "-")
}

// Canonical lower-cases text and collapses whitespace runs to single spaces.
// Two labels with the same canonical form always share a slug.
func Canonical(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// fold lower-cases text and strips combining marks after NFD decomposition,
// so "Café" becomes "cafe".
func fold(text string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	lower := strings.ToLower(text)
	out, _, err := transform.String(t, lower)
	if err != nil {
		return lower
	}
	return out
}

func hasSlugChar(s string) bool {
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return true
		}
	}
	return false
}
