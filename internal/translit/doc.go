// Package translit provides the linguistic engines behind name tokenization:
// chained transliterators addressed by ruleset IDs and a locale-aware collator.
//
// Ruleset IDs follow the familiar "Source-Target/Variant" form and may be
// chained with ";", for example "Han-Latin/Names; Latin-Ascii; Any-Upper".
// Opening an ID fails when any step is unknown or when the Han-Latin step
// cannot load its supplemental dictionary; callers decide whether that is
// fatal.
package translit
