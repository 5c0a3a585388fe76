// Package contacts persists contacts in SQLite and indexes their display names
// for sorting and phonetic search.
//
// Writes arrive as batches of operations applied in one transaction: a raw
// contact insert followed by data row inserts that reference it by position
// in the batch. After a batch, every touched contact's display name is
// tokenized; the sort key and phonetic name are stored on the contact and its
// lookup keys replace the contact's rows in name_lookup.
package contacts
