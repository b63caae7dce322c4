// Package slug derives URL-safe identifiers from human-readable titles.
package slug

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// MaxLength caps the generated slug; matches the column width in the groups table.
const MaxLength = 200

// Cyrillic-to-Latin table. Each letter maps to one or more ASCII letters;
// hard and soft signs are dropped. Anything not listed here passes through
// to the normalization step unchanged.
var translit = map[rune]string{
	'а': "a", 'б': "b", 'в': "v", 'г': "g", 'д': "d",
	'е': "e", 'ё': "e", 'ж': "zh", 'з': "z", 'и': "i",
	'й': "i", 'к': "k", 'л': "l", 'м': "m", 'н': "n",
	'о': "o", 'п': "p", 'р': "r", 'с': "s", 'т': "t",
	'у': "u", 'ф': "f", 'х': "kh", 'ц': "ts", 'ч': "ch",
	'ш': "sh", 'щ': "shch", 'ъ': "", 'ы': "y", 'ь': "",
	'э': "e", 'ю': "iu", 'я': "ia",
}

var foldDiacritics = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// Make turns a title into a lowercase slug containing only [a-z0-9-]:
// Cyrillic letters are transliterated, Latin diacritics folded, and every
// run of remaining non-alphanumeric characters collapsed into a single
// hyphen. A title with no mappable characters yields an empty slug; callers
// decide what to do with that.
func Make(title string) string {
	lowered := strings.ToLower(title)
	var b strings.Builder
	for _, r := range lowered {
		if mapped, ok := translit[r]; ok {
			b.WriteString(mapped)
		} else {
			b.WriteRune(r)
		}
	}
	folded, _, err := transform.String(foldDiacritics, b.String())
	if err != nil {
		folded = b.String()
	}

	out := make([]rune, 0, len(folded))
	pendingSep := false
	for _, r := range folded {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			if pendingSep && len(out) > 0 {
				out = append(out, '-')
			}
			out = append(out, r)
			pendingSep = false
		} else {
			pendingSep = true
		}
	}
	s := string(out)
	if len(s) > MaxLength {
		s = strings.TrimRight(s[:MaxLength], "-")
	}
	return s
}
