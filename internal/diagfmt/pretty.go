package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"rill/internal/diag"
	"rill/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan, color.Bold)
	gutterColor  = color.New(color.FgHiBlack)
)

// Pretty форматирует диагностики в человекочитаемый вид.
// Идёт по bag.Items() (ожидается bag.Sort() заранее).
// Для каждого diag печатает:
// <path>:<line>:<col>: <SEV> <CODE>: <Message>
// затем контекстные строки с подчёркиванием ^~~~ по Span, затем Notes
// в том же формате и заголовки Fixes. Цвет включается опцией.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func formatPathMode(f *source.File, fs *source.FileSet, mode PathMode) string {
	switch mode {
	case PathModeAbsolute:
		return f.FormatPath("absolute", "")
	case PathModeRelative:
		return f.FormatPath("relative", fs.BaseDir())
	case PathModeBasename:
		return f.FormatPath("basename", "")
	default:
		return f.FormatPath("auto", "")
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(d.Primary.File)
	start, end := fs.Resolve(d.Primary)
	path := formatPathMode(f, fs, opts.PathMode)

	sev := d.Severity.String()
	code := d.Code.ID()
	if opts.Color {
		c := severityColor(d.Severity)
		sev = c.Sprint(sev)
		code = c.Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)

	writeContext(w, f, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			ns, _ := fs.Resolve(note.Span)
			notePath := formatPathMode(fs.Get(note.Span.File), fs, opts.PathMode)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n", notePath, ns.Line, ns.Col, note.Msg)
		}
	}
	if opts.ShowFixes {
		for _, fix := range d.Fixes {
			fmt.Fprintf(w, "  fix (%s): %s\n", fix.ID, fix.Title)
		}
	}
}

// writeContext печатает строки исходника вокруг спана с номерами строк и
// подчёркиванием. На первой строке подчёркивание идёт от начальной колонки,
// на последней — до конечной, промежуточные строки подчёркиваются целиком.
func writeContext(w io.Writer, f *source.File, start, end source.LineCol, opts PrettyOpts) {
	if start.Line == 0 {
		return
	}
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}
	firstLine := uint32(1)
	if start.Line > ctx {
		firstLine = start.Line - ctx
	}
	lastLine := end.Line + ctx
	totalLines := uint32(len(f.LineIdx)) + 1 // #nosec G115 -- строк не больше, чем байт
	if lastLine > totalLines {
		lastLine = totalLines
	}

	for lineNum := firstLine; lineNum <= lastLine; lineNum++ {
		line := f.GetLine(lineNum)
		gutter := fmt.Sprintf("%5d | ", lineNum)
		if opts.Color {
			gutter = gutterColor.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s%s\n", gutter, line)

		if lineNum < start.Line || lineNum > end.Line {
			continue
		}
		fromByte := 0
		if lineNum == start.Line {
			fromByte = int(start.Col) - 1
		}
		toByte := len(line)
		if lineNum == end.Line {
			toByte = int(end.Col) - 1
		}
		writeUnderline(w, line, fromByte, toByte, opts.Color)
	}
}

// writeUnderline печатает строку-маркер '^~~~' под фрагментом [fromByte,
// toByte) строки line. Отступ и длина считаются по экранной ширине, чтобы
// подчёркивание не съезжало на табуляции и широких рунах.
func writeUnderline(w io.Writer, line string, fromByte, toByte int, colored bool) {
	if fromByte < 0 {
		fromByte = 0
	}
	if fromByte > len(line) {
		fromByte = len(line)
	}
	if toByte < fromByte {
		toByte = fromByte
	}
	if toByte > len(line) {
		toByte = len(line)
	}

	pad := runewidth.StringWidth(line[:fromByte])
	width := runewidth.StringWidth(line[fromByte:toByte])
	if width < 1 {
		// точечный спан (вставка) тоже получает маркер
		width = 1
	}

	marker := "^"
	if width > 1 {
		marker += strings.Repeat("~", width-1)
	}
	if colored {
		marker = errorColor.Sprint(marker)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), marker)
}
