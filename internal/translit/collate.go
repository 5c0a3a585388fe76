package translit

import (
	"fmt"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Collator compares strings under a locale's collation rules. Canonically
// equivalent strings compare equal.
type Collator struct {
	mu  sync.Mutex
	tag language.Tag
	c   *collate.Collator
}

// NewCollator returns a collator for the BCP 47 locale tag.
func NewCollator(locale string) (*Collator, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("parse locale %q: %w", locale, err)
	}
	return &Collator{tag: tag, c: collate.New(tag)}, nil
}

// Locale returns the collator's language tag.
func (c *Collator) Locale() language.Tag {
	return c.tag
}

// Compare returns -1, 0, or 1. The underlying collator keeps iteration
// buffers, so calls are serialized.
func (c *Collator) Compare(a, b string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.c.CompareString(a, b)
}

// Equal reports whether a and b collate identically.
func (c *Collator) Equal(a, b string) bool {
	return c.Compare(a, b) == 0
}
