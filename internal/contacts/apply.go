package contacts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"namekey/internal/hanzi"
	"namekey/internal/logging"
	"namekey/internal/namelookup"
)

// Apply runs ops in one transaction and returns one Result per op. Data
// operations must reference an earlier raw contact insert. Created contacts
// are tagged with the context's correlation id, if any.
func (s *Store) Apply(ctx context.Context, ops []Op) ([]Result, error) {
	if err := validate(ops); err != nil {
		return nil, err
	}
	batchID, _ := logging.CorrelationIDFromContext(ctx)

	var results []Result
	err := s.db.WithTx(ctx, func(tx *sql.Tx) error {
		results = make([]Result, len(ops))
		touched := make(map[int64]struct{})
		createdAt := s.now().UTC().Format(time.RFC3339Nano)

		for i, op := range ops {
			var (
				id  int64
				err error
			)
			switch op.Kind {
			case OpInsertRawContact:
				id, err = insertRawContact(ctx, tx, op.Values, batchID, createdAt)
			case OpInsertData:
				id, err = insertData(ctx, tx, results[op.BackRef].ID, op.Values)
			}
			if err != nil {
				return fmt.Errorf("apply op %d (%s): %w", i, op.Kind, err)
			}
			results[i] = Result{Kind: op.Kind, ID: id}
			if op.Kind == OpInsertRawContact {
				touched[id] = struct{}{}
			} else {
				touched[results[op.BackRef].ID] = struct{}{}
			}
		}

		ids := make([]int64, 0, len(touched))
		for id := range touched {
			ids = append(ids, id)
		}
		slices.Sort(ids)
		for _, id := range ids {
			if err := s.reindex(ctx, tx, id); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logging.WithContext(ctx, s.logger).Info("applied contact operations", logging.Args(
		logging.Int("operations", len(ops)),
		logging.Int("contacts", countKind(results, OpInsertRawContact)),
	)...)
	return results, nil
}

func validate(ops []Op) error {
	for i, op := range ops {
		switch op.Kind {
		case OpInsertRawContact:
			if err := checkColumns(op.Values, rawContactColumns); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
		case OpInsertData:
			if op.BackRef < 0 || op.BackRef >= i || ops[op.BackRef].Kind != OpInsertRawContact {
				return fmt.Errorf("%w: op %d back-reference %d is not an earlier raw contact insert",
					ErrInvalidOperation, i, op.BackRef)
			}
			if err := checkColumns(op.Values, dataColumns); err != nil {
				return fmt.Errorf("op %d: %w", i, err)
			}
			if mime, _ := op.Values[ColumnMimeType].(string); strings.TrimSpace(mime) == "" {
				return fmt.Errorf("%w: op %d has no mimetype", ErrInvalidOperation, i)
			}
		default:
			return fmt.Errorf("%w: op %d has kind %s", ErrInvalidOperation, i, op.Kind)
		}
	}
	return nil
}

func checkColumns(values map[string]any, allowed map[string]struct{}) error {
	for col := range values {
		if _, ok := allowed[col]; !ok {
			return fmt.Errorf("%w: %q", ErrInvalidColumn, col)
		}
	}
	return nil
}

func sortedColumns(values map[string]any) ([]string, []any) {
	cols := make([]string, 0, len(values))
	for col := range values {
		cols = append(cols, col)
	}
	slices.Sort(cols)
	args := make([]any, len(cols))
	for i, col := range cols {
		args[i] = values[col]
	}
	return cols, args
}

func insertRawContact(ctx context.Context, tx *sql.Tx, values map[string]any, batchID, createdAt string) (int64, error) {
	cols, args := sortedColumns(values)
	cols = append(cols, "batch_id", "created_at")
	args = append(args, nullIfEmpty(batchID), createdAt)
	return insertRow(ctx, tx, "raw_contacts", cols, args)
}

func insertData(ctx context.Context, tx *sql.Tx, rawContactID int64, values map[string]any) (int64, error) {
	cols, args := sortedColumns(values)
	cols = append(cols, ColumnRawContactID)
	args = append(args, rawContactID)
	return insertRow(ctx, tx, "data", cols, args)
}

func insertRow(ctx context.Context, tx *sql.Tx, table string, cols []string, args []any) (int64, error) {
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table,
		strings.Join(cols, ", "), strings.TrimSuffix(strings.Repeat("?, ", len(cols)), ", "))
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("insert %s: %w", table, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("insert %s id: %w", table, err)
	}
	return id, nil
}

// reindex recomputes the display name, sort key, phonetic name, and lookup
// keys of one contact from its structured name row.
func (s *Store) reindex(ctx context.Context, tx *sql.Tx, rawContactID int64) error {
	var parts [6]sql.NullString
	err := tx.QueryRowContext(ctx, `SELECT data1, data2, data3, data4, data5, data6
		FROM data WHERE raw_contact_id = ? AND mimetype = ? ORDER BY is_super_primary DESC, is_primary DESC, _id LIMIT 1`,
		rawContactID, MimeTypeStructuredName,
	).Scan(&parts[0], &parts[1], &parts[2], &parts[3], &parts[4], &parts[5])
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("read structured name: %w", err)
	}

	display := DisplayName(parts[0].String, parts[1].String, parts[2].String,
		parts[3].String, parts[4].String, parts[5].String)
	tokens := s.tok.Tokenize(display)
	sortKey := namelookup.SortKey(tokens)
	if sortKey == "" {
		sortKey = display
	}
	keys := namelookup.Keys(tokens)
	if len(keys) == 0 {
		if key := namelookup.NormalizeQuery(s.tok, display); key != "" {
			keys = []string{key}
		}
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE raw_contacts SET display_name = ?, sort_key = ?, phonetic_name = ? WHERE _id = ?",
		display, sortKey, namelookup.PhoneticName(tokens), rawContactID,
	); err != nil {
		return fmt.Errorf("update contact index: %w", err)
	}
	if _, err := tx.ExecContext(ctx, "DELETE FROM name_lookup WHERE raw_contact_id = ?", rawContactID); err != nil {
		return fmt.Errorf("clear lookup keys: %w", err)
	}
	for _, key := range keys {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO name_lookup (raw_contact_id, normalized_name) VALUES (?, ?)",
			rawContactID, key,
		); err != nil {
			return fmt.Errorf("insert lookup key: %w", err)
		}
	}
	return nil
}

// DisplayName picks the explicit display name or assembles one from the
// structured parts. Names written in ideographs put the family name first
// without separators.
func DisplayName(display, given, family, prefix, middle, suffix string) string {
	if display = strings.TrimSpace(display); display != "" {
		return display
	}
	given = strings.TrimSpace(given)
	family = strings.TrimSpace(family)
	if containsIdeograph(family) || containsIdeograph(given) {
		return family + given
	}
	return strings.Join(strings.Fields(strings.Join([]string{prefix, given, middle, family, suffix}, " ")), " ")
}

func containsIdeograph(s string) bool {
	for _, r := range s {
		if hanzi.Classify(r) == hanzi.Ideograph {
			return true
		}
	}
	return false
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}

func countKind(results []Result, kind OpKind) int {
	n := 0
	for _, r := range results {
		if r.Kind == kind {
			n++
		}
	}
	return n
}
