// Package diag defines the diagnostic model shared by all front-end phases.
//
//   - Diagnostic is the central record: Severity, Code, Message, a primary
//     source.Span, and optional Notes with secondary spans.
//   - Reporter decouples producers (lexer, grouper) from storage; BagReporter
//     aggregates into a Bag, NopReporter discards, DedupReporter filters
//     repeats.
//   - Bag is a bounded, sortable collection used per file or per run.
//
// The package performs no formatting or IO; rendering lives in
// internal/diagfmt. Keep the data model deterministic so diagnostics can be
// serialised for caching and testing.
package diag
