package hanzi

import "sync"

var (
	sharedMu sync.Mutex
	shared   *Tokenizer
)

// Shared returns the process-wide Tokenizer, building it with DefaultOptions
// on first use.
func Shared() *Tokenizer {
	sharedMu.Lock()
	defer sharedMu.Unlock()
	if shared == nil {
		shared = New(DefaultOptions())
	}
	return shared
}
