// Package groups persists local contact groups in SQLite and exposes them
// through content URIs.
//
// Two URI shapes are recognized: the collection
// content://<authority>/local-groups and a single row
// content://<authority>/local-groups/<id>. Inserts go to the collection and
// return the new row's URI. Queries, updates, and deletes accept either shape;
// the collection form takes an optional Selection, the item form pins the id.
//
// Every successful write that touches at least one row is published to
// subscribers. Slow subscribers miss notifications instead of blocking writers.
//
// A new database is seeded with the configured default titles. Schema changes
// bump schemaVersion; existing databases with another version are rejected.
package groups
