package groups

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
)

const (
	ColumnID    = "_id"
	ColumnTitle = "title"
	ColumnCount = "count"
)

// Group is one row of local_groups. Count is zero when never set.
type Group struct {
	ID    int64  `json:"id"`
	Title string `json:"title"`
	Count int64  `json:"count"`
}

// Insert adds a group through the collection URI and returns the new item URI.
func (s *Store) Insert(ctx context.Context, uri string, values Values) (string, error) {
	t, err := s.uris.match(uri)
	if err != nil {
		return "", err
	}
	if t.kind != matchCollection {
		return "", fmt.Errorf("%w: insert into %s", ErrUnsupported, uri)
	}
	cols, args, err := values.columns()
	if err != nil {
		return "", err
	}

	query := "INSERT INTO local_groups DEFAULT VALUES"
	if len(cols) > 0 {
		query = fmt.Sprintf("INSERT INTO local_groups (%s) VALUES (%s)",
			strings.Join(cols, ", "), placeholders(len(cols)))
	}
	res, err := s.db.ExecWithRetry(ctx, query, args...)
	if err != nil {
		return "", fmt.Errorf("insert group: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return "", fmt.Errorf("insert group id: %w", err)
	}
	s.notify(uri, OpInsert, 1)
	return s.uris.ItemURI(id), nil
}

// Query returns groups matching uri and sel ordered by sortOrder, a
// comma-separated list of columns with optional ASC or DESC.
func (s *Store) Query(ctx context.Context, uri string, sel Selection, sortOrder string) ([]Group, error) {
	_, where, args, err := s.resolve(uri, sel)
	if err != nil {
		return nil, err
	}
	orderBy, err := parseSortOrder(sortOrder)
	if err != nil {
		return nil, err
	}

	query := "SELECT _id, title, count FROM local_groups" + where + orderBy
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query groups: %w", err)
	}
	defer rows.Close()

	var groups []Group
	for rows.Next() {
		var (
			g     Group
			title sql.NullString
			count sql.NullInt64
		)
		if err := rows.Scan(&g.ID, &title, &count); err != nil {
			return nil, fmt.Errorf("scan group: %w", err)
		}
		g.Title = title.String
		g.Count = count.Int64
		groups = append(groups, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate groups: %w", err)
	}
	return groups, nil
}

// Update assigns values to matching groups and returns the affected row count.
func (s *Store) Update(ctx context.Context, uri string, values Values, sel Selection) (int64, error) {
	_, where, whereArgs, err := s.resolve(uri, sel)
	if err != nil {
		return 0, err
	}
	cols, args, err := values.columns()
	if err != nil {
		return 0, err
	}
	if len(cols) == 0 {
		return 0, nil
	}

	assignments := make([]string, len(cols))
	for i, col := range cols {
		assignments[i] = col + " = ?"
	}
	query := "UPDATE local_groups SET " + strings.Join(assignments, ", ") + where
	res, err := s.db.ExecWithRetry(ctx, query, append(args, whereArgs...)...)
	if err != nil {
		return 0, fmt.Errorf("update groups: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update groups rows: %w", err)
	}
	s.notify(uri, OpUpdate, count)
	return count, nil
}

// Delete removes matching groups and returns the affected row count.
func (s *Store) Delete(ctx context.Context, uri string, sel Selection) (int64, error) {
	_, where, args, err := s.resolve(uri, sel)
	if err != nil {
		return 0, err
	}
	res, err := s.db.ExecWithRetry(ctx, "DELETE FROM local_groups"+where, args...)
	if err != nil {
		return 0, fmt.Errorf("delete groups: %w", err)
	}
	count, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("delete groups rows: %w", err)
	}
	s.notify(uri, OpDelete, count)
	return count, nil
}

func placeholders(n int) string {
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

var sortableColumns = map[string]struct{}{
	ColumnID:    {},
	ColumnTitle: {},
	ColumnCount: {},
}

func parseSortOrder(order string) (string, error) {
	order = strings.TrimSpace(order)
	if order == "" {
		return " ORDER BY _id", nil
	}
	terms := strings.Split(order, ",")
	out := make([]string, 0, len(terms))
	for _, term := range terms {
		fields := strings.Fields(term)
		if len(fields) == 0 || len(fields) > 2 {
			return "", fmt.Errorf("%w: sort order %q", ErrInvalidColumn, order)
		}
		col := strings.ToLower(fields[0])
		if _, ok := sortableColumns[col]; !ok {
			return "", fmt.Errorf("%w: sort column %q", ErrInvalidColumn, fields[0])
		}
		clause := col
		if len(fields) == 2 {
			dir := strings.ToUpper(fields[1])
			if dir != "ASC" && dir != "DESC" {
				return "", fmt.Errorf("%w: sort direction %q", ErrInvalidColumn, fields[1])
			}
			clause += " " + dir
		}
		out = append(out, clause)
	}
	return " ORDER BY " + strings.Join(out, ", "), nil
}
