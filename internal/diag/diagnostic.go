package diag

import (
	"rill/internal/source"
)

// Note is a secondary span/message pair attached to a diagnostic.
type Note struct {
	Span source.Span
	Msg  string
}

// TextEdit is a single replacement of a source range with new text.
// OldText, if set, guards the edit: the fix engine refuses to apply the
// edit when the current source no longer matches.
type TextEdit struct {
	Span    source.Span
	NewText string
	OldText string
}

// Fix describes an automated correction as a list of text edits.
// ID is a stable machine name ("insert-semicolon"), Title is for humans.
type Fix struct {
	ID    string
	Title string
	Edits []TextEdit
}

// Diagnostic is the central record produced by the lexer, the parser and
// the driver. It is deterministic and serialisable.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
	Fixes    []Fix
}

// New constructs a plain diagnostic without notes or fixes.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

// NewError is a shortcut for SevError diagnostics.
func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

// NewWarning is a shortcut for SevWarning diagnostics.
func NewWarning(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevWarning, code, primary, msg)
}

// WithNote returns a copy of the diagnostic with a note appended.
func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// WithFix returns a copy of the diagnostic with a fix appended.
func (d Diagnostic) WithFix(fix Fix) Diagnostic {
	d.Fixes = append(d.Fixes, fix)
	return d
}
