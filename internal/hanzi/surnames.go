package hanzi

import "strings"

// Surname pairs a polyphonic family name with its reading as a surname.
type Surname struct {
	Name      string
	Rendering string
}

var surnames = []Surname{
	{"夏", "XIA"}, {"瞿", "QU"}, {"曾", "ZENG"}, {"石", "SHI"},
	{"解", "XIE"}, {"藏", "ZANG"}, {"翟", "ZHAI"}, {"都", "DU"},
	{"六", "LU"}, {"薄", "BO"}, {"贾", "JIA"}, {"居", "JU"},
	{"查", "ZHA"}, {"盛", "SHENG"}, {"塔", "TA"}, {"和", "HE"},
	{"蓝", "LAN"}, {"殷", "YIN"}, {"乾", "QIAN"}, {"陆", "LU"},
	{"乜", "NIE"}, {"阚", "KAN"}, {"叶", "YE"}, {"强", "QIANG"},
	{"汤", "TANG"}, {"万", "WAN"}, {"沈", "SHEN"}, {"仇", "QIU"},
	{"南", "NAN"}, {"单", "SHAN"}, {"卜", "BU"}, {"鸟", "NIAO"},
	{"思", "SI"}, {"寻", "XUN"}, {"於", "YU"}, {"余", "YU"},
	{"浅", "QIAN"}, {"浣", "WAN"}, {"无", "WU"}, {"信", "XIN"},
	{"許", "XU"}, {"齐", "QI"}, {"俞", "YU"}, {"若", "RUO"},
}

// Surnames returns a copy of the override table.
func Surnames() []Surname {
	return append([]Surname(nil), surnames...)
}

// Comparator orders strings. Zero means equal.
type Comparator interface {
	Compare(a, b string) int
}

type codePointComparator struct{}

func (codePointComparator) Compare(a, b string) int { return strings.Compare(a, b) }

// SurnameTable resolves surname overrides with a pluggable equality test.
type SurnameTable struct {
	cmp Comparator
}

// NewSurnameTable returns a table comparing with cmp. A nil cmp compares code
// points.
func NewSurnameTable(cmp Comparator) SurnameTable {
	if cmp == nil {
		cmp = codePointComparator{}
	}
	return SurnameTable{cmp: cmp}
}

// Lookup returns the override rendering for candidate. First match wins.
func (s SurnameTable) Lookup(candidate string) (string, bool) {
	if candidate == "" {
		return "", false
	}
	cmp := s.cmp
	if cmp == nil {
		cmp = codePointComparator{}
	}
	for _, entry := range surnames {
		if cmp.Compare(entry.Name, candidate) == 0 {
			return entry.Rendering, true
		}
	}
	return "", false
}
