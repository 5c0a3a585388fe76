package translit

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Latin letters without a canonical decomposition to ASCII.
var latinLigatures = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ø", "O", "ø", "o",
	"Đ", "D", "đ", "d",
	"Ð", "D", "ð", "d",
	"Þ", "TH", "þ", "th",
	"Ł", "L", "ł", "l",
	"Ħ", "H", "ħ", "h",
	"Ŧ", "T", "ŧ", "t",
	"Ŋ", "N", "ŋ", "n",
	"ı", "i", "ĸ", "q", "ſ", "s", "ƒ", "f",
)

var foldable = runes.Predicate(func(r rune) bool {
	return unicode.In(r, unicode.Latin, unicode.Mn)
})

// latinASCII strips diacritics from Latin-script text and leaves other
// scripts untouched.
type latinASCII struct{}

func (latinASCII) Transliterate(text string) string {
	replaced := latinLigatures.Replace(text)
	t := runes.If(foldable, transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC), nil)
	out, _, err := transform.String(t, replaced)
	if err != nil {
		return replaced
	}
	return out
}

// Casers keep per-call state, so each call builds its own.
type upper struct{}

func (upper) Transliterate(text string) string {
	return cases.Upper(language.Und).String(text)
}

type lower struct{}

func (lower) Transliterate(text string) string {
	return cases.Lower(language.Und).String(text)
}
