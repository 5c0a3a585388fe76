// Package hanzi splits display names into Latin, phonetic, and unclassified
// tokens for sorting and phonetic lookup.
//
// Each rune is classified by code point range. ASCII and extended Latin runs
// are merged into a single token and folded to ASCII. Every ideograph becomes
// its own token rendered as uppercase pinyin, with a fixed override table for
// polyphonic surnames consulted only at the first position of the name.
// Characters the phonetic engine cannot render are kept as unclassified
// tokens whose target equals the source.
//
// Engine initialization failures never propagate: a Tokenizer without a
// phonetic engine reports HasEngine() == false and returns no tokens.
package hanzi
