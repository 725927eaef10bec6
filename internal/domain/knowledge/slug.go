package knowledge

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	slugWhitespace = regexp.MustCompile(`\s+`)
	slugNonWord    = regexp.MustCompile(`[^a-z0-9_-]+`)
	slugDashes     = regexp.MustCompile(`-{2,}`)
)

// Slugify lowercases s, strips diacritics, turns whitespace runs into "-"
// and drops every other non-word character.
func Slugify(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	out := strings.ToLower(strings.TrimSpace(folded))
	out = slugWhitespace.ReplaceAllString(out, "-")
	out = slugNonWord.ReplaceAllString(out, "")
	out = slugDashes.ReplaceAllString(out, "-")
	return strings.Trim(out, "-")
}
