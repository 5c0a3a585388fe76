package hanzi_test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"pgregory.net/rapid"

	"namekey/internal/hanzi"
	"namekey/internal/translit"
)

func propertyTokenizer(t *rapid.T) *hanzi.Tokenizer {
	fold, err := translit.Open("Latin-Ascii")
	if err != nil {
		t.Fatalf("open fold: %v", err)
	}
	return hanzi.New(hanzi.Options{
		Phonetic: translit.Func(func(s string) string {
			r, _ := utf8.DecodeRuneInString(s)
			if unicode.Is(unicode.Han, r) {
				return "HAN"
			}
			return s
		}),
		Fold:            fold,
		CollationLocale: "zh",
	})
}

func TestPropertyNoEngineYieldsNothing(t *testing.T) {
	tok := hanzi.New(hanzi.Options{PhoneticRuleset: "Missing", CollationLocale: "zh"})
	rapid.Check(t, func(t *rapid.T) {
		input := rapid.String().Draw(t, "input")
		if got := tok.Tokenize(input); len(got) != 0 {
			t.Fatalf("Tokenize(%q) = %+v, want empty", input, got)
		}
	})
}

func TestPropertyASCIIWithoutSpacesIsOneLatinToken(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tok := propertyTokenizer(t)
		input := rapid.StringMatching(`[!-~]{1,32}`).Draw(t, "input")
		got := tok.Tokenize(input)
		if len(got) != 1 {
			t.Fatalf("Tokenize(%q) produced %d tokens", input, len(got))
		}
		if got[0].Class != hanzi.Latin || got[0].Source != input || got[0].Target != input {
			t.Fatalf("Tokenize(%q) = %+v", input, got[0])
		}
	})
}

func TestPropertyTokensAreNonEmptyAndSpaceFree(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tok := propertyTokenizer(t)
		input := rapid.String().Draw(t, "input")
		for _, token := range tok.Tokenize(input) {
			if token.Source == "" || token.Target == "" {
				t.Fatalf("empty token %+v from %q", token, input)
			}
			if strings.IndexFunc(token.Source, isSeparator) >= 0 || strings.IndexFunc(token.Target, isSeparator) >= 0 {
				t.Fatalf("token %+v from %q contains a space", token, input)
			}
			if token.Class == hanzi.Phonetic && utf8.RuneCountInString(token.Source) != 1 {
				t.Fatalf("phonetic token %+v spans more than one character", token)
			}
		}
	})
}

func TestPropertyRetokenizingTargetsKeepsBoundaries(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		tok := propertyTokenizer(t)
		words := rapid.SliceOfN(rapid.StringMatching(`[A-Za-zÀ-ÿ]{1,8}`), 1, 5).Draw(t, "words")
		first := tok.Tokenize(strings.Join(words, " "))

		targets := make([]string, 0, len(first))
		for _, token := range first {
			targets = append(targets, token.Target)
		}
		second := tok.Tokenize(strings.Join(targets, " "))

		if len(second) != len(first) {
			t.Fatalf("re-tokenizing %q produced %d tokens, want %d", targets, len(second), len(first))
		}
		for i := range first {
			if second[i].Target != first[i].Target {
				t.Fatalf("token %d target %q, want %q", i, second[i].Target, first[i].Target)
			}
		}
	})
}

func isSeparator(r rune) bool {
	return unicode.In(r, unicode.Zs, unicode.Zl, unicode.Zp)
}
