package hanzi

import "unicode"

// CharClass is the provisional class of a single rune before resolution.
type CharClass int

const (
	// LatinPassthrough covers ASCII; the target is the rune itself.
	LatinPassthrough CharClass = iota
	// LatinFold covers Latin-1, Latin Extended-A/B, and Latin Extended Additional.
	LatinFold
	// Ideograph covers everything else and is resolved through the phonetic engine.
	Ideograph
)

const (
	foldUpper          = 0x250
	extendedAdditional = 0x1E00
	extendedAdditEnd   = 0x1EFF
)

// Classify assigns r to a character class. It is total over all runes.
func Classify(r rune) CharClass {
	switch {
	case r < 128:
		return LatinPassthrough
	case r < foldUpper, r >= extendedAdditional && r <= extendedAdditEnd:
		return LatinFold
	default:
		return Ideograph
	}
}

// isSpace matches the Unicode space separator categories only. Tabs and
// newlines are control characters and stay part of Latin runs.
func isSpace(r rune) bool {
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
