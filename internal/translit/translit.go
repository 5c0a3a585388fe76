package translit

import (
	"errors"
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
)

var (
	// ErrUnknownRuleset reports a ruleset ID with no registered step.
	ErrUnknownRuleset = errors.New("unknown transliteration ruleset")
	// ErrDictionary reports missing or malformed linguistic data.
	ErrDictionary = errors.New("transliteration dictionary unavailable")
)

// Transliterator converts text between scripts. Implementations are safe for
// concurrent use.
type Transliterator interface {
	Transliterate(text string) string
}

// Func adapts an ordinary function to the Transliterator interface.
type Func func(string) string

func (f Func) Transliterate(text string) string { return f(text) }

type options struct {
	dictionaryPath string
	cacheSize      int
}

// Option customizes Open.
type Option func(*options)

// WithDictionary loads a supplemental pinyin dictionary for Han-Latin steps.
func WithDictionary(path string) Option {
	return func(o *options) { o.dictionaryPath = strings.TrimSpace(path) }
}

// WithCacheSize memoizes up to size distinct inputs. Zero disables caching.
func WithCacheSize(size int) Option {
	return func(o *options) { o.cacheSize = size }
}

type stepFactory func(*options) (Transliterator, error)

var registry = map[string]stepFactory{
	"han-latin":       newHanLatinStep,
	"han-latin/names": newHanLatinStep,
	"latin-ascii":     func(*options) (Transliterator, error) { return latinASCII{}, nil },
	"any-upper":       func(*options) (Transliterator, error) { return upper{}, nil },
	"any-lower":       func(*options) (Transliterator, error) { return lower{}, nil },
}

// Open builds the transliterator described by id.
func Open(id string, opts ...Option) (Transliterator, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	var steps chain
	for _, raw := range strings.Split(id, ";") {
		name := strings.ToLower(strings.TrimSpace(raw))
		if name == "" {
			continue
		}
		factory, ok := registry[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownRuleset, strings.TrimSpace(raw))
		}
		step, err := factory(&o)
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", strings.TrimSpace(raw), err)
		}
		steps = append(steps, step)
	}
	if len(steps) == 0 {
		return nil, fmt.Errorf("%w: empty id", ErrUnknownRuleset)
	}

	var result Transliterator = steps
	if len(steps) == 1 {
		result = steps[0]
	}
	if o.cacheSize > 0 {
		cache, err := lru.New[string, string](o.cacheSize)
		if err != nil {
			return nil, fmt.Errorf("create cache: %w", err)
		}
		result = &cached{next: result, cache: cache}
	}
	return result, nil
}

type chain []Transliterator

func (c chain) Transliterate(text string) string {
	for _, step := range c {
		text = step.Transliterate(text)
	}
	return text
}

type cached struct {
	next  Transliterator
	cache *lru.Cache[string, string]
}

func (c *cached) Transliterate(text string) string {
	if out, ok := c.cache.Get(text); ok {
		return out
	}
	out := c.next.Transliterate(text)
	c.cache.Add(text, out)
	return out
}
