// Package main hosts the namekey CLI entrypoint and command graph.
//
// The Cobra-based command tree exposes name tokenization and sort keys, the
// local groups store, preloaded contact imports and search, and configuration
// scaffolding. It centralizes configuration resolution, logger construction,
// and tokenizer setup so subcommands can focus on output.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
