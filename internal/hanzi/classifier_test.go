package hanzi

import "testing"

func TestClassify(t *testing.T) {
	tests := []struct {
		r    rune
		want CharClass
	}{
		{'a', LatinPassthrough},
		{'\t', LatinPassthrough},
		{0x7F, LatinPassthrough},
		{0x80, LatinFold},
		{'é', LatinFold},
		{0x24F, LatinFold},
		{0x250, Ideograph},
		{0x1DFF, Ideograph},
		{0x1E00, LatinFold},
		{'ỹ', LatinFold},
		{0x1EFF, LatinFold},
		{0x1F00, Ideograph},
		{'张', Ideograph},
		{'😀', Ideograph},
		{0xFFFD, Ideograph},
	}
	for _, tc := range tests {
		if got := Classify(tc.r); got != tc.want {
			t.Errorf("Classify(%U) = %d, want %d", tc.r, got, tc.want)
		}
	}
}

func TestIsSpaceMatchesSeparatorsOnly(t *testing.T) {
	for _, r := range []rune{' ', 0xA0, 0x3000, 0x2028, 0x2029} {
		if !isSpace(r) {
			t.Errorf("isSpace(%U) = false", r)
		}
	}
	for _, r := range []rune{'\t', '\n', '\r', 'a', '_'} {
		if isSpace(r) {
			t.Errorf("isSpace(%U) = true", r)
		}
	}
}
