// Package namelookup derives sort keys, phonetic names, and lookup keys from
// tokenized display names.
package namelookup
