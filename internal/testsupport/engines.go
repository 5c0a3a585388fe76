package testsupport

import (
	"testing"

	"namekey/internal/hanzi"
	"namekey/internal/translit"
)

// FakeTokenizer returns a ready tokenizer whose phonetic engine knows only
// readings. Unknown characters render unchanged and the fold is identity.
func FakeTokenizer(t testing.TB, readings map[string]string) *hanzi.Tokenizer {
	t.Helper()

	tok := hanzi.New(hanzi.Options{
		Phonetic: translit.Func(func(s string) string {
			if reading, ok := readings[s]; ok {
				return reading
			}
			return s
		}),
		Fold:            translit.Func(func(s string) string { return s }),
		CollationLocale: "zh",
	})
	if !tok.HasEngine() {
		t.Fatal("fake tokenizer has no engine")
	}
	return tok
}
