package diagfmt

import (
	"fmt"
	"io"
	"sort"

	"rill/internal/source"
)

type spanFormatter func(source.Span) string

func makeSpanFormatter(fs *source.FileSet) spanFormatter {
	return func(sp source.Span) string {
		if fs != nil {
			start, end := fs.Resolve(sp)
			return fmt.Sprintf("%d:%d-%d:%d", start.Line, start.Col, end.Line, end.Col)
		}
		return fmt.Sprintf("span(%d-%d)", sp.Start, sp.End)
	}
}

func renderTreeWith(w io.Writer, root ASTNodeOutput, spanText spanFormatter) {
	fmt.Fprintln(w, nodeLabel(root, spanText))
	renderEntries(w, root, "", spanText)
}

func nodeLabel(n ASTNodeOutput, spanText spanFormatter) string {
	label := n.Kind
	if n.Text != "" {
		label += " " + n.Text
	}
	return fmt.Sprintf("%s (span: %s)", label, spanText(n.Span))
}

// renderEntries печатает поля узла, затем детей; последний элемент
// получает ветку '└─', остальные '├─'.
func renderEntries(w io.Writer, n ASTNodeOutput, prefix string, spanText spanFormatter) {
	fields := sortedFieldLines(n.Fields)
	total := len(fields) + len(n.Children)

	for i, line := range fields {
		branch := "├─ "
		if i == total-1 {
			branch = "└─ "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, line)
	}

	for i, child := range n.Children {
		last := len(fields)+i == total-1
		branch, cont := "├─ ", "│  "
		if last {
			branch, cont = "└─ ", "   "
		}
		fmt.Fprintf(w, "%s%s%s\n", prefix, branch, nodeLabel(child, spanText))
		renderEntries(w, child, prefix+cont, spanText)
	}
}

// sortedFieldLines переводит карту полей в стабильно упорядоченные строки
// вида "key: value".
func sortedFieldLines(fields map[string]any) []string {
	if len(fields) == 0 {
		return nil
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	lines := make([]string, len(keys))
	for i, k := range keys {
		lines[i] = fmt.Sprintf("%s: %v", k, fields[k])
	}
	return lines
}
