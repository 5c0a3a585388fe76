// Package sqlitedb opens versioned SQLite databases and retries statements
// that hit SQLITE_BUSY.
//
// A database is created from an embedded schema on first open and stamped
// with the schema version. Later opens compare the stamp and fail with
// ErrSchemaMismatch instead of migrating; callers delete the file to adopt a
// new schema.
package sqlitedb
