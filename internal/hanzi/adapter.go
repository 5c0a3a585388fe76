package hanzi

import (
	"log/slog"

	"namekey/internal/logging"
	"namekey/internal/translit"
)

// State records how construction went.
type State int

const (
	// StateDegraded means the phonetic engine is unavailable; Tokenize returns nothing.
	StateDegraded State = iota
	// StateReady means the phonetic engine initialized.
	StateReady
)

func (s State) String() string {
	if s == StateReady {
		return "ready"
	}
	return "degraded"
}

// adapter wraps the phonetic and fold engines. Either may be nil.
type adapter struct {
	phonetic translit.Transliterator
	fold     translit.Transliterator
}

func (a adapter) Phonetic(text string) string {
	if a.phonetic == nil {
		return ""
	}
	return a.phonetic.Transliterate(text)
}

// Fold returns text unchanged when no fold engine is available or the engine
// produces nothing.
func (a adapter) Fold(text string) string {
	if a.fold == nil {
		return text
	}
	if out := a.fold.Transliterate(text); out != "" {
		return out
	}
	return text
}

// openEngine resolves a ruleset, converting any failure into an absent engine.
func openEngine(logger *slog.Logger, role, ruleset string, opts ...translit.Option) translit.Transliterator {
	engine, err := translit.Open(ruleset, opts...)
	if err != nil {
		logging.WarnWithContext(logger, "transliteration engine unavailable", "translit_init_failed",
			logging.String("role", role),
			logging.String("ruleset", ruleset),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "check transliteration rulesets and dictionary_path in config"),
			logging.String(logging.FieldImpact, role+" rendering disabled"),
		)
		return nil
	}
	return engine
}
