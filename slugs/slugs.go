package slugs

import (
	"regexp"
	"strings"
)

// accentReplacements maps accented Latin characters to plain ASCII. The table
// is explicit rather than locale-dependent normalization so the output is
// identical on every platform.
var accentReplacements = map[rune]string{
	'à': "a", 'á': "a", 'â': "a", 'ã': "a", 'ä': "a", 'å': "a",
	'À': "a", 'Á': "a", 'Â': "a", 'Ã': "a", 'Ä': "a", 'Å': "a",
	'ç': "c", 'Ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'È': "e", 'É': "e", 'Ê': "e", 'Ë': "e",
	'ì': "i", 'í': "i", 'î': "i", 'ï': "i",
	'Ì': "i", 'Í': "i", 'Î': "i", 'Ï': "i",
	'ñ': "n", 'Ñ': "n",
	'ò': "o", 'ó': "o", 'ô': "o", 'õ': "o", 'ö': "o",
	'Ò': "o", 'Ó': "o", 'Ô': "o", 'Õ': "o", 'Ö': "o",
	'ù': "u", 'ú': "u", 'û': "u", 'ü': "u",
	'Ù': "u", 'Ú': "u", 'Û': "u", 'Ü': "u",
	'ý': "y", 'ÿ': "y", 'Ý': "y",
	'æ': "ae", 'Æ': "ae",
	'œ': "oe", 'Œ': "oe",
	'ß': "ss",
}

var whitespaceRun = regexp.MustCompile(`\s+`)

// Slugify turns free text into a URL-safe token: trim, strip accents,
// lowercase, collapse whitespace runs into a single dash.
// Example: "Café du Progrès" -> "cafe-du-progres".
func Slugify(text string) string {
	trimmed := strings.TrimSpace(text)

	var b strings.Builder
	b.Grow(len(trimmed))
	for _, r := range trimmed {
		if repl, ok := accentReplacements[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(r)
	}

	lowered := asciiLower(b.String())
	return whitespaceRun.ReplaceAllString(lowered, "-")
}

// asciiLower lowercases A-Z only; the input is already de-accented.
func asciiLower(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			r += 'a' - 'A'
		}
		b.WriteRune(r)
	}
	return b.String()
}
