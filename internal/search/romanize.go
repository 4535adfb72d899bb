package search

import (
	"strings"
	"unicode"

	"github.com/mozillazg/go-pinyin"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// pinyinArgs configures deterministic romanization: no tone marks and the
// first reading of heteronym characters. The fallback passes unmapped runes
// through unchanged instead of dropping them.
var pinyinArgs = func() pinyin.Args {
	a := pinyin.NewArgs()
	a.Fallback = func(r rune, _ pinyin.Args) []string {
		return []string{string(r)}
	}
	return a
}()

// Romanize converts a name to its lowercase ASCII romanization.
// Han characters become pinyin syllables joined without separators
// ("李四" -> "lisi"), accented Latin letters fold to their base form
// ("Müller" -> "muller") and everything else passes through lower-cased.
// Romanize never fails; input it cannot improve comes back as-is.
func Romanize(name string) string {
	if name == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(name))
	for _, readings := range pinyin.Pinyin(name, pinyinArgs) {
		if len(readings) > 0 {
			b.WriteString(readings[0])
		}
	}

	return foldMarks(strings.ToLower(b.String()))
}

// foldMarks strips combining marks (NFD decompose, drop marks, NFC recompose).
// On transform failure the unfolded input is returned; romanization degrades,
// it never errors.
func foldMarks(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return folded
}
