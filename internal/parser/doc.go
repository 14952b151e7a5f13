// Package parser turns a token stream into an owned ast.File.
//
// The parser keeps a two-token window (current, next). Plain comments
// never reach the window; doc comments accumulate into docstring
// buffers; lexical error tokens are reported once as E000 and skipped.
// Parsing never aborts: every failure produces a best-effort node, a
// diagnostic through the Reporter, and a resynchronization to the next
// safe point. A parse that produced no diagnostics is guaranteed to
// yield a structurally complete tree.
package parser
