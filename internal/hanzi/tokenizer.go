package hanzi

import (
	"log/slog"
	"strings"
	"unicode/utf8"

	"namekey/internal/config"
	"namekey/internal/logging"
	"namekey/internal/translit"
)

// Options configures a Tokenizer. Engines and the comparator may be injected
// directly; otherwise they are built from the rulesets and locale.
type Options struct {
	PhoneticRuleset string
	FoldRuleset     string
	DictionaryPath  string
	CacheSize       int
	CollationLocale string
	Logger          *slog.Logger

	Phonetic   translit.Transliterator
	Fold       translit.Transliterator
	Comparator Comparator
}

// DefaultOptions mirrors the configuration defaults.
func DefaultOptions() Options {
	return OptionsFromConfig(config.Default())
}

// OptionsFromConfig maps the transliteration section onto tokenizer options.
func OptionsFromConfig(cfg config.Config) Options {
	t := cfg.Transliteration
	return Options{
		PhoneticRuleset: t.PhoneticRuleset,
		FoldRuleset:     t.FoldRuleset,
		DictionaryPath:  t.DictionaryPath,
		CacheSize:       t.CacheSize,
		CollationLocale: t.CollationLocale,
	}
}

// Tokenizer classifies names into tokens. It is safe for concurrent use.
type Tokenizer struct {
	engines  adapter
	surnames SurnameTable
	state    State
	logger   *slog.Logger
}

// New builds a Tokenizer. It never fails; check HasEngine or State.
func New(opts Options) *Tokenizer {
	logger := logging.NewComponentLogger(opts.Logger, "hanzi")

	phonetic := opts.Phonetic
	if phonetic == nil {
		translitOpts := []translit.Option{translit.WithCacheSize(opts.CacheSize)}
		if opts.DictionaryPath != "" {
			translitOpts = append(translitOpts, translit.WithDictionary(opts.DictionaryPath))
		}
		phonetic = openEngine(logger, "phonetic", opts.PhoneticRuleset, translitOpts...)
	}
	fold := opts.Fold
	if fold == nil {
		fold = openEngine(logger, "fold", opts.FoldRuleset)
	}

	cmp := opts.Comparator
	if cmp == nil {
		collator, err := translit.NewCollator(opts.CollationLocale)
		if err != nil {
			logging.WarnWithContext(logger, "collator unavailable, comparing code points", "collator_init_failed",
				logging.String("locale", opts.CollationLocale),
				logging.Error(err),
				logging.String(logging.FieldImpact, "surname overrides match exact characters only"),
			)
		} else {
			cmp = collator
		}
	}

	state := StateDegraded
	if phonetic != nil {
		state = StateReady
	}
	logger.Debug("tokenizer initialized", logging.Args(logging.String("state", state.String()))...)

	return &Tokenizer{
		engines:  adapter{phonetic: phonetic, fold: fold},
		surnames: NewSurnameTable(cmp),
		state:    state,
		logger:   logger,
	}
}

// HasEngine reports whether the phonetic engine initialized.
func (t *Tokenizer) HasEngine() bool {
	return t != nil && t.state == StateReady
}

// State returns the construction outcome.
func (t *Tokenizer) State() State {
	if t == nil {
		return StateDegraded
	}
	return t.state
}

// LookupSurname returns the override rendering for a single-character surname.
func (t *Tokenizer) LookupSurname(candidate string) (string, bool) {
	if t == nil {
		return "", false
	}
	return t.surnames.Lookup(candidate)
}

// Tokenize splits input into tokens. The result is empty, never nil, when the
// phonetic engine is missing or input is empty. Token sources are always
// substrings of input; bytes that are not valid UTF-8 are kept as-is and
// classified as unclassified.
func (t *Tokenizer) Tokenize(input string) []Token {
	tokens := []Token{}
	if !t.HasEngine() || input == "" {
		return tokens
	}

	var run runBuffer
	for i := 0; i < len(input); {
		r, size := utf8.DecodeRuneInString(input[i:])
		char := input[i : i+size]
		first := i == 0
		i += size

		if r == utf8.RuneError && size == 1 {
			tokens = run.append(tokens, Unclassified, char, char)
			continue
		}
		if isSpace(r) {
			tokens = run.flush(tokens)
			continue
		}
		switch Classify(r) {
		case LatinPassthrough:
			tokens = run.append(tokens, Latin, char, char)
		case LatinFold:
			tokens = run.append(tokens, Latin, char, t.engines.Fold(char))
		default:
			token := t.resolveIdeograph(char, first)
			if token.Class == Unclassified {
				tokens = run.append(tokens, Unclassified, char, char)
				continue
			}
			tokens = run.flush(tokens)
			tokens = append(tokens, token)
		}
	}
	return run.flush(tokens)
}

func (t *Tokenizer) resolveIdeograph(char string, first bool) Token {
	if first {
		if rendering, ok := t.surnames.Lookup(char); ok {
			return Token{Class: Phonetic, Source: char, Target: rendering}
		}
	}
	rendering := t.engines.Phonetic(char)
	if rendering == "" || rendering == char {
		return Token{Class: Unclassified, Source: char, Target: char}
	}
	return Token{Class: Phonetic, Source: char, Target: rendering}
}

// runBuffer accumulates a pending Latin or unclassified run. Phonetic tokens
// never enter it.
type runBuffer struct {
	source strings.Builder
	target strings.Builder
	class  Class
}

// append adds one character to the run, flushing first when class differs
// from the pending run's class.
func (b *runBuffer) append(tokens []Token, class Class, source, target string) []Token {
	if b.source.Len() > 0 && b.class != class {
		tokens = b.flush(tokens)
	}
	b.source.WriteString(source)
	b.target.WriteString(target)
	b.class = class
	return tokens
}

func (b *runBuffer) flush(tokens []Token) []Token {
	if b.source.Len() == 0 {
		return tokens
	}
	tokens = append(tokens, Token{Class: b.class, Source: b.source.String(), Target: b.target.String()})
	b.source.Reset()
	b.target.Reset()
	return tokens
}
