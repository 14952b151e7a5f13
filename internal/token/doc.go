// Package token defines lexical token kinds for the rill compiler.
// Invariants:
//   - Token.Span matches the source bytes the token was scanned from,
//     half-open [Start, End).
//   - Identifiers carry an interned symbol; the text of a wrapped
//     identifier (`name`) excludes the backticks.
//   - Numeric literal tokens carry the raw digits; width/type
//     classification is deferred to later passes.
//   - Lexical errors are ordinary tokens (Kind == Error) so that a single
//     bad character never aborts scanning of the rest of the file.
//   - Built-in type names (int, float, string, ...) are identifiers.
//     They are recognized by the semantic layer, not the lexer.
package token
