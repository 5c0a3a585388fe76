package groups

import (
	"errors"

	"namekey/internal/sqlitedb"
)

var (
	// ErrUnknownURI reports a URI that matches neither the collection nor an item.
	ErrUnknownURI = errors.New("unknown groups uri")
	// ErrUnsupported reports an operation the URI shape does not allow.
	ErrUnsupported = errors.New("operation not supported for uri")
	// ErrInvalidColumn reports a value or sort column outside the table's columns.
	ErrInvalidColumn = errors.New("invalid column")
	// ErrSchemaMismatch indicates the groups database was created by another schema version.
	ErrSchemaMismatch = sqlitedb.ErrSchemaMismatch
)
