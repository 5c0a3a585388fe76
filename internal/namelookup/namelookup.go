package namelookup

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"namekey/internal/hanzi"
)

// value is the text a token contributes to keys.
func value(token hanzi.Token) string {
	if token.Class == hanzi.Unclassified {
		return token.Source
	}
	return token.Target
}

// SortKey joins token values with a single space.
func SortKey(tokens []hanzi.Token) string {
	parts := make([]string, 0, len(tokens))
	for _, token := range tokens {
		parts = append(parts, value(token))
	}
	return strings.Join(parts, " ")
}

// PhoneticName joins the targets of phonetic tokens. It is empty when the name
// has no ideographs.
func PhoneticName(tokens []hanzi.Token) string {
	var parts []string
	for _, token := range tokens {
		if token.Class == hanzi.Phonetic {
			parts = append(parts, token.Target)
		}
	}
	return strings.Join(parts, " ")
}

// Keys returns the uppercase lookup keys for a name: the full concatenation,
// the initials when there are at least two tokens, and the concatenation of
// every token suffix. Duplicates are dropped; order is stable.
func Keys(tokens []hanzi.Token) []string {
	values := make([]string, 0, len(tokens))
	for _, token := range tokens {
		if v := upper(value(token)); v != "" {
			values = append(values, v)
		}
	}
	if len(values) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(values)+1)
	keys := make([]string, 0, len(values)+1)
	add := func(key string) {
		if _, ok := seen[key]; ok {
			return
		}
		seen[key] = struct{}{}
		keys = append(keys, key)
	}

	add(strings.Join(values, ""))
	if len(values) >= 2 {
		var initials strings.Builder
		for _, v := range values {
			r, _ := utf8.DecodeRuneInString(v)
			initials.WriteRune(r)
		}
		add(initials.String())
	}
	for i := 1; i < len(values); i++ {
		add(strings.Join(values[i:], ""))
	}
	return keys
}

// NormalizeQuery renders a search query the way Keys renders names. A
// degraded tokenizer falls back to the uppercased query without spaces.
func NormalizeQuery(tok *hanzi.Tokenizer, query string) string {
	tokens := tok.Tokenize(query)
	if len(tokens) == 0 {
		return upper(strings.Join(strings.Fields(query), ""))
	}
	var b strings.Builder
	for _, token := range tokens {
		b.WriteString(value(token))
	}
	return upper(b.String())
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}
