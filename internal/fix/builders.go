package fix

import (
	"rill/internal/diag"
	"rill/internal/source"
)

// InsertText creates a fix that inserts text at span
// (Span.Start == Span.End).
func InsertText(id, title string, at source.Span, text string) diag.Fix {
	return diag.Fix{
		ID:    id,
		Title: title,
		Edits: []diag.TextEdit{{Span: at, NewText: text}},
	}
}

// DeleteSpan removes text covered by span. expect защищает правку.
func DeleteSpan(id, title string, span source.Span, expect string) diag.Fix {
	return diag.Fix{
		ID:    id,
		Title: title,
		Edits: []diag.TextEdit{{Span: span, OldText: expect}},
	}
}

// ReplaceSpan replaces text covered by span with newText.
func ReplaceSpan(id, title string, span source.Span, newText, expect string) diag.Fix {
	return diag.Fix{
		ID:    id,
		Title: title,
		Edits: []diag.TextEdit{{Span: span, NewText: newText, OldText: expect}},
	}
}

// InsertSemicolon строит стандартный fix для E004: вставка ';' в точку
// сразу после конца утверждения.
func InsertSemicolon(at source.Span) diag.Fix {
	point := source.Span{File: at.File, Start: at.End, End: at.End}
	return InsertText("insert-semicolon", "insert `;`", point, ";")
}
