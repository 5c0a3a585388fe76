package groups

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"namekey/internal/config"
	"namekey/internal/logging"
	"namekey/internal/sqlitedb"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
const schemaVersion = 1

// Store manages local groups persistence backed by SQLite.
type Store struct {
	db       *sqlitedb.DB
	uris     matcher
	notifier *notifier
	logger   *slog.Logger
}

// Open initializes or connects to the groups database under the data dir.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}

	titles := append([]string(nil), cfg.Groups.DefaultTitles...)
	db, err := sqlitedb.Open(ctx, cfg.GroupsDatabasePath(), sqlitedb.Schema{
		SQL:     schemaSQL,
		Version: schemaVersion,
		Seed: func(ctx context.Context, tx *sql.Tx) error {
			for _, title := range titles {
				if _, err := tx.ExecContext(ctx, "INSERT INTO local_groups (title) VALUES (?)", title); err != nil {
					return fmt.Errorf("seed group %q: %w", title, err)
				}
			}
			return nil
		},
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		db:       db,
		uris:     matcher{authority: cfg.Groups.Authority},
		notifier: newNotifier(),
		logger:   logging.NewComponentLogger(logger, "groups"),
	}, nil
}

// Close closes the database and every subscription.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	s.notifier.closeAll()
	return s.db.Close()
}

// CollectionURI returns the URI addressing every group.
func (s *Store) CollectionURI() string {
	return s.uris.CollectionURI()
}

// ItemURI returns the URI addressing one group.
func (s *Store) ItemURI(id int64) string {
	return s.uris.ItemURI(id)
}

// Subscribe registers for change notifications. The returned func
// unsubscribes and closes the channel.
func (s *Store) Subscribe(buffer int) (<-chan Change, func()) {
	return s.notifier.subscribe(buffer)
}

func (s *Store) notify(uri string, op Op, rows int64) {
	if rows <= 0 {
		return
	}
	dropped := s.notifier.publish(Change{URI: uri, Op: op, Rows: rows})
	s.logger.Debug("groups changed", logging.Args(
		logging.String("uri", uri),
		logging.String("op", string(op)),
		logging.Int64("rows", rows),
		logging.Int("dropped_notifications", dropped),
	)...)
}

// Values holds column assignments for insert and update. Only title and count
// are accepted.
type Values map[string]any

var writableColumns = map[string]struct{}{
	ColumnTitle: {},
	ColumnCount: {},
}

// columns returns the assigned columns in a stable order along with their values.
func (v Values) columns() ([]string, []any, error) {
	cols := make([]string, 0, len(v))
	for col := range v {
		if _, ok := writableColumns[col]; !ok {
			return nil, nil, fmt.Errorf("%w: %q", ErrInvalidColumn, col)
		}
		cols = append(cols, col)
	}
	slices.Sort(cols)
	args := make([]any, 0, len(cols))
	for _, col := range cols {
		args = append(args, v[col])
	}
	return cols, args, nil
}

// Selection is a SQL filter with positional arguments. The zero value selects
// every row.
type Selection struct {
	Where string
	Args  []any
}

func (sel Selection) clause() (string, []any) {
	where := strings.TrimSpace(sel.Where)
	if where == "" {
		return "", nil
	}
	return " WHERE " + where, sel.Args
}

func (s *Store) resolve(uri string, sel Selection) (target, string, []any, error) {
	t, err := s.uris.match(uri)
	if err != nil {
		return target{}, "", nil, err
	}
	if t.kind == matchItem {
		where := " WHERE _id = ?"
		args := []any{t.id}
		if extra := strings.TrimSpace(sel.Where); extra != "" {
			where += " AND (" + extra + ")"
			args = append(args, sel.Args...)
		}
		return t, where, args, nil
	}
	where, args := sel.clause()
	return t, where, args, nil
}
