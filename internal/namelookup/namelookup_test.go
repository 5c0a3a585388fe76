package namelookup_test

import (
	"reflect"
	"testing"

	"namekey/internal/hanzi"
	"namekey/internal/namelookup"
	"namekey/internal/translit"
)

func tokens(pairs ...string) []hanzi.Token {
	out := make([]hanzi.Token, 0, len(pairs)/3)
	for i := 0; i+2 < len(pairs); i += 3 {
		class := hanzi.Latin
		switch pairs[i] {
		case "p":
			class = hanzi.Phonetic
		case "u":
			class = hanzi.Unclassified
		}
		out = append(out, hanzi.Token{Class: class, Source: pairs[i+1], Target: pairs[i+2]})
	}
	return out
}

func TestSortKeyAndPhoneticName(t *testing.T) {
	name := tokens("p", "张", "ZHANG", "p", "三", "SAN", "l", "Jr", "Jr")
	if got := namelookup.SortKey(name); got != "ZHANG SAN Jr" {
		t.Fatalf("SortKey = %q", got)
	}
	if got := namelookup.PhoneticName(name); got != "ZHANG SAN" {
		t.Fatalf("PhoneticName = %q", got)
	}
	if got := namelookup.PhoneticName(tokens("l", "Ann", "Ann")); got != "" {
		t.Fatalf("PhoneticName for latin-only = %q, want empty", got)
	}
	if got := namelookup.SortKey(nil); got != "" {
		t.Fatalf("SortKey(nil) = %q", got)
	}
}

func TestKeys(t *testing.T) {
	tests := []struct {
		name   string
		tokens []hanzi.Token
		want   []string
	}{
		{"empty", nil, nil},
		{"single", tokens("l", "Ann", "Ann"), []string{"ANN"}},
		{"two phonetic", tokens("p", "张", "ZHANG", "p", "三", "SAN"), []string{"ZHANGSAN", "ZS", "SAN"}},
		{"three", tokens("p", "欧", "OU", "p", "阳", "YANG", "p", "娜", "NA"), []string{"OUYANGNA", "OYN", "YANGNA", "NA"}},
		{"duplicates dropped", tokens("l", "a", "a", "l", "a", "a"), []string{"AA", "A"}},
		{"unclassified uses source", tokens("u", "😀", "😀", "l", "x", "x"), []string{"😀X", "X"}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := namelookup.Keys(tc.tokens); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Keys = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestNormalizeQuery(t *testing.T) {
	tok := hanzi.New(hanzi.Options{
		Phonetic: translit.Func(func(s string) string {
			if s == "张" {
				return "ZHANG"
			}
			return s
		}),
		Fold:            translit.Func(func(s string) string { return s }),
		CollationLocale: "zh",
	})
	if got := namelookup.NormalizeQuery(tok, "张 san"); got != "ZHANGSAN" {
		t.Fatalf("NormalizeQuery = %q", got)
	}

	degraded := hanzi.New(hanzi.Options{PhoneticRuleset: "Missing", CollationLocale: "zh"})
	if got := namelookup.NormalizeQuery(degraded, "zhang san"); got != "ZHANGSAN" {
		t.Fatalf("degraded NormalizeQuery = %q", got)
	}
}

func TestKeysTreatUnclassifiedRunAsOneWord(t *testing.T) {
	tok := hanzi.New(hanzi.Options{
		Phonetic: translit.Func(func(s string) string {
			if s == "李" {
				return "LI"
			}
			return s
		}),
		Fold:            translit.Func(func(s string) string { return s }),
		CollationLocale: "zh",
	})
	got := namelookup.Keys(tok.Tokenize("李ЖЖ"))
	want := []string{"LIЖЖ", "LЖ", "ЖЖ"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Keys = %q, want %q", got, want)
	}
}
