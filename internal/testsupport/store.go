package testsupport

import (
	"context"
	"testing"

	"namekey/internal/config"
	"namekey/internal/contacts"
	"namekey/internal/groups"
	"namekey/internal/hanzi"
	"namekey/internal/logging"
)

// MustOpenGroups opens a groups.Store for tests and registers cleanup.
func MustOpenGroups(t testing.TB, cfg *config.Config) *groups.Store {
	t.Helper()

	store, err := groups.Open(context.Background(), cfg, logging.NewNop())
	if err != nil {
		t.Fatalf("groups.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}

// MustOpenContacts opens a contacts.Store for tests and registers cleanup.
func MustOpenContacts(t testing.TB, cfg *config.Config, tok *hanzi.Tokenizer) *contacts.Store {
	t.Helper()

	store, err := contacts.Open(context.Background(), cfg, tok, logging.NewNop())
	if err != nil {
		t.Fatalf("contacts.Open: %v", err)
	}
	t.Cleanup(func() {
		store.Close()
	})
	return store
}
