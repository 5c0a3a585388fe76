package groups_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"namekey/internal/groups"
	"namekey/internal/testsupport"
)

func TestOpenSeedsDefaultTitles(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)

	got, err := store.Query(context.Background(), store.CollectionURI(), groups.Selection{}, "")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	want := []string{"Family", "Friend", "Work"}
	if len(got) != len(want) {
		t.Fatalf("expected %d seeded groups, got %#v", len(want), got)
	}
	for i, g := range got {
		if g.Title != want[i] || g.Count != 0 {
			t.Fatalf("group %d = %#v, want title %q", i, g, want[i])
		}
	}
}

func TestSeedRunsOnlyForNewDatabase(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	ctx := context.Background()

	first, err := groups.Open(ctx, cfg, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	if _, err := first.Delete(ctx, first.CollectionURI(), groups.Selection{}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	first.Close()

	second := testsupport.MustOpenGroups(t, cfg)
	got, err := second.Query(ctx, second.CollectionURI(), groups.Selection{}, "")
	if err != nil {
		t.Fatalf("Query: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected reopened database to stay empty, got %#v", got)
	}
}

func TestInsertReturnsItemURI(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithGroupTitles())
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	uri, err := store.Insert(ctx, store.CollectionURI(), groups.Values{"title": "Climbing", "count": 4})
	if err != nil {
		t.Fatalf("Insert failed: %v", err)
	}
	if uri != "content://com.android.contacts.localgroups/local-groups/1" {
		t.Fatalf("unexpected item uri %q", uri)
	}

	got, err := store.Query(ctx, uri, groups.Selection{}, "")
	if err != nil {
		t.Fatalf("Query item failed: %v", err)
	}
	if len(got) != 1 || got[0].Title != "Climbing" || got[0].Count != 4 {
		t.Fatalf("unexpected item %#v", got)
	}
}

func TestInsertRejectsItemURIAndUnknownColumns(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	if _, err := store.Insert(ctx, store.ItemURI(1), groups.Values{"title": "x"}); !errors.Is(err, groups.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
	if _, err := store.Insert(ctx, store.CollectionURI(), groups.Values{"_id": 9}); !errors.Is(err, groups.ErrInvalidColumn) {
		t.Fatalf("expected ErrInvalidColumn, got %v", err)
	}
}

func TestUnknownURIs(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	for _, uri := range []string{
		"content://other.authority/local-groups",
		"http://com.android.contacts.localgroups/local-groups",
		"content://com.android.contacts.localgroups/groups",
		"content://com.android.contacts.localgroups/local-groups/abc",
		"content://com.android.contacts.localgroups/local-groups/1/extra",
		"::not a uri",
	} {
		if _, err := store.Query(ctx, uri, groups.Selection{}, ""); !errors.Is(err, groups.ErrUnknownURI) {
			t.Errorf("Query(%q) error = %v, want ErrUnknownURI", uri, err)
		}
	}
}

func TestQuerySelectionAndSortOrder(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	got, err := store.Query(ctx, store.CollectionURI(), groups.Selection{Where: "title LIKE ?", Args: []any{"F%"}}, "title DESC")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(got) != 2 || got[0].Title != "Friend" || got[1].Title != "Family" {
		t.Fatalf("unexpected result %#v", got)
	}

	for _, order := range []string{"title; DROP TABLE local_groups", "nope", "title sideways"} {
		if _, err := store.Query(ctx, store.CollectionURI(), groups.Selection{}, order); !errors.Is(err, groups.ErrInvalidColumn) {
			t.Errorf("sort %q error = %v, want ErrInvalidColumn", order, err)
		}
	}
}

func TestUpdateAndDeleteByCollectionAndItem(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	n, err := store.Update(ctx, store.CollectionURI(), groups.Values{"count": 2}, groups.Selection{Where: "title = ?", Args: []any{"Work"}})
	if err != nil || n != 1 {
		t.Fatalf("Update collection = %d, %v", n, err)
	}
	n, err = store.Update(ctx, store.ItemURI(1), groups.Values{"title": "Kin"}, groups.Selection{})
	if err != nil || n != 1 {
		t.Fatalf("Update item = %d, %v", n, err)
	}
	n, err = store.Update(ctx, store.ItemURI(99), groups.Values{"title": "Ghost"}, groups.Selection{})
	if err != nil || n != 0 {
		t.Fatalf("Update missing item = %d, %v", n, err)
	}

	n, err = store.Delete(ctx, store.ItemURI(2), groups.Selection{})
	if err != nil || n != 1 {
		t.Fatalf("Delete item = %d, %v", n, err)
	}

	got, err := store.Query(ctx, store.CollectionURI(), groups.Selection{}, "_id")
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	want := []groups.Group{{ID: 1, Title: "Kin"}, {ID: 3, Title: "Work", Count: 2}}
	if len(got) != len(want) {
		t.Fatalf("got %#v, want %#v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("row %d = %#v, want %#v", i, got[i], want[i])
		}
	}
}

func TestSubscribeReceivesChangesWhenRowsAffected(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	changes, cancel := store.Subscribe(4)
	defer cancel()

	if _, err := store.Insert(ctx, store.CollectionURI(), groups.Values{"title": "Band"}); err != nil {
		t.Fatalf("Insert: %v", err)
	}
	if _, err := store.Delete(ctx, store.ItemURI(999), groups.Selection{}); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := store.Delete(ctx, store.CollectionURI(), groups.Selection{Where: "title = ?", Args: []any{"Band"}}); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	expect := []groups.Change{
		{URI: store.CollectionURI(), Op: groups.OpInsert, Rows: 1},
		{URI: store.CollectionURI(), Op: groups.OpDelete, Rows: 1},
	}
	for _, want := range expect {
		select {
		case got := <-changes:
			if got != want {
				t.Fatalf("change = %#v, want %#v", got, want)
			}
		case <-time.After(time.Second):
			t.Fatalf("timed out waiting for %#v", want)
		}
	}
	select {
	case extra := <-changes:
		t.Fatalf("unexpected change %#v", extra)
	default:
	}
}

func TestSlowSubscriberDoesNotBlockWriters(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	store := testsupport.MustOpenGroups(t, cfg)
	ctx := context.Background()

	changes, cancel := store.Subscribe(1)
	for i := 0; i < 3; i++ {
		if _, err := store.Insert(ctx, store.CollectionURI(), groups.Values{"title": "x"}); err != nil {
			t.Fatalf("Insert %d: %v", i, err)
		}
	}
	if got := len(changes); got != 1 {
		t.Fatalf("expected one buffered change, got %d", got)
	}
	cancel()
	cancel()
	<-changes
	if _, ok := <-changes; ok {
		t.Fatal("expected channel closed after cancel")
	}
}
