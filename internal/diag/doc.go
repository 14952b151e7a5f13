// Package diag defines the core diagnostic model shared by all pipeline
// phases.
//
// Diagnostic is the central record: severity, stable code (E000-E005,
// W000, I000), message, primary span, optional notes and structured fix
// suggestions. The model is deterministic and serialisable so that the
// driver can cache diagnostics to disk and replay them.
//
// Producers emit through a Reporter; BagReporter aggregates into a Bag,
// which supports sorting, merging and deduplication. Rendering lives in
// internal/diagfmt, fix application in internal/fix.
package diag
