package hanzi

import "fmt"

// Class identifies how a token's target was derived.
type Class int

const (
	// Latin tokens are ASCII or extended Latin runs, folded to ASCII.
	Latin Class = iota + 1
	// Phonetic tokens are single ideographs rendered as uppercase pinyin.
	Phonetic
	// Unclassified tokens could not be rendered; target equals source.
	Unclassified
)

func (c Class) String() string {
	switch c {
	case Latin:
		return "latin"
	case Phonetic:
		return "phonetic"
	case Unclassified:
		return "unclassified"
	default:
		return fmt.Sprintf("class(%d)", int(c))
	}
}

// MarshalText renders the class name for JSON and table output.
func (c Class) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// Token is one classified run of a name. Source and Target are never empty.
type Token struct {
	Class  Class  `json:"class"`
	Source string `json:"source"`
	Target string `json:"target"`
}
