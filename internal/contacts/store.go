package contacts

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"namekey/internal/config"
	"namekey/internal/hanzi"
	"namekey/internal/logging"
	"namekey/internal/namelookup"
	"namekey/internal/sqlitedb"
	"namekey/internal/translit"
)

//go:embed schema.sql
var schemaSQL string

// schemaVersion is the current schema version. Bump this when the schema changes.
const schemaVersion = 1

// ErrSchemaMismatch indicates the contacts database was created by another schema version.
var ErrSchemaMismatch = sqlitedb.ErrSchemaMismatch

// Store manages contacts persistence backed by SQLite.
type Store struct {
	db       *sqlitedb.DB
	tok      *hanzi.Tokenizer
	collator *translit.Collator
	logger   *slog.Logger
	now      func() time.Time
}

// Open initializes or connects to the contacts database under the data dir.
// Names are indexed with tok; a nil tok uses the shared tokenizer.
func Open(ctx context.Context, cfg *config.Config, tok *hanzi.Tokenizer, logger *slog.Logger) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	collator, err := translit.NewCollator(cfg.Transliteration.CollationLocale)
	if err != nil {
		return nil, fmt.Errorf("contacts collator: %w", err)
	}
	if tok == nil {
		tok = hanzi.Shared()
	}

	db, err := sqlitedb.Open(ctx, cfg.ContactsDatabasePath(), sqlitedb.Schema{
		SQL:     schemaSQL,
		Version: schemaVersion,
	})
	if err != nil {
		return nil, err
	}

	return &Store{
		db:       db,
		tok:      tok,
		collator: collator,
		logger:   logging.NewComponentLogger(logger, "contacts"),
		now:      time.Now,
	}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	return s.db.Close()
}

// Contact is an indexed raw contact.
type Contact struct {
	ID           int64  `json:"id"`
	DisplayName  string `json:"display_name"`
	SortKey      string `json:"sort_key"`
	PhoneticName string `json:"phonetic_name,omitempty"`
	BatchID      string `json:"batch_id,omitempty"`
}

// DataRow is one data row with its non-empty columns.
type DataRow struct {
	ID       int64             `json:"id"`
	MimeType string            `json:"mimetype"`
	Values   map[string]string `json:"values"`
}

// Count returns the number of raw contacts.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM raw_contacts").Scan(&n); err != nil {
		return 0, fmt.Errorf("count contacts: %w", err)
	}
	return n, nil
}

// List returns every contact ordered by sort key under the configured collation.
func (s *Store) List(ctx context.Context) ([]Contact, error) {
	contacts, err := s.queryContacts(ctx,
		"SELECT _id, display_name, sort_key, phonetic_name, batch_id FROM raw_contacts")
	if err != nil {
		return nil, err
	}
	s.sortContacts(contacts)
	return contacts, nil
}

// Search returns contacts with a lookup key starting with the normalized query.
func (s *Store) Search(ctx context.Context, query string) ([]Contact, error) {
	key := namelookup.NormalizeQuery(s.tok, query)
	if key == "" {
		return nil, nil
	}
	contacts, err := s.queryContacts(ctx, `SELECT _id, display_name, sort_key, phonetic_name, batch_id
		FROM raw_contacts
		WHERE _id IN (SELECT raw_contact_id FROM name_lookup WHERE normalized_name LIKE ? ESCAPE '\')`,
		escapeLike(key)+"%")
	if err != nil {
		return nil, err
	}
	s.sortContacts(contacts)
	return contacts, nil
}

// Data returns the data rows of one contact ordered by id.
func (s *Store) Data(ctx context.Context, rawContactID int64) ([]DataRow, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT _id, mimetype,
		data1, data2, data3, data4, data5, data6, data7, data8,
		data9, data10, data11, data12, data13, data14, data15
		FROM data WHERE raw_contact_id = ? ORDER BY _id`, rawContactID)
	if err != nil {
		return nil, fmt.Errorf("query data: %w", err)
	}
	defer rows.Close()

	var out []DataRow
	for rows.Next() {
		var (
			row    DataRow
			values [15]sql.NullString
		)
		dest := []any{&row.ID, &row.MimeType}
		for i := range values {
			dest = append(dest, &values[i])
		}
		if err := rows.Scan(dest...); err != nil {
			return nil, fmt.Errorf("scan data: %w", err)
		}
		row.Values = make(map[string]string)
		for i, v := range values {
			if v.Valid && v.String != "" {
				row.Values[fmt.Sprintf("data%d", i+1)] = v.String
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate data: %w", err)
	}
	return out, nil
}

func (s *Store) queryContacts(ctx context.Context, query string, args ...any) ([]Contact, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query contacts: %w", err)
	}
	defer rows.Close()

	var out []Contact
	for rows.Next() {
		var (
			c       Contact
			batchID sql.NullString
		)
		if err := rows.Scan(&c.ID, &c.DisplayName, &c.SortKey, &c.PhoneticName, &batchID); err != nil {
			return nil, fmt.Errorf("scan contact: %w", err)
		}
		c.BatchID = batchID.String
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate contacts: %w", err)
	}
	return out, nil
}

func (s *Store) sortContacts(contacts []Contact) {
	slices.SortStableFunc(contacts, func(a, b Contact) int {
		if c := s.collator.Compare(a.SortKey, b.SortKey); c != 0 {
			return c
		}
		if a.ID < b.ID {
			return -1
		}
		if a.ID > b.ID {
			return 1
		}
		return 0
	})
}

func escapeLike(value string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(value)
}
