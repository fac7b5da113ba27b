package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"ape/internal/diag"
	"ape/internal/source"
)

// Pretty formats diagnostics for humans. It walks bag.Items() in order
// (call bag.Sort() first) and prints, per diagnostic:
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline over the primary
// span and, when enabled, the attached notes.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	file := fs.Get(d.Primary.File)
	path := displayPath(file, fs, opts.PathMode)
	start, end := fs.Resolve(d.Primary)

	sev := severityLabel(d.Severity)
	code := d.Code.ID()
	if opts.Color {
		c := severityColor(d.Severity)
		sev = c.Sprint(sev)
		code = c.Sprint(code)
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, start.Line, start.Col, sev, code, d.Message)

	writeContext(w, file, start, end, opts)

	if opts.ShowNotes {
		for _, note := range d.Notes {
			noteFile := fs.Get(note.Span.File)
			notePos, _ := fs.Resolve(note.Span)
			fmt.Fprintf(w, "  note: %s:%d:%d: %s\n",
				displayPath(noteFile, fs, opts.PathMode), notePos.Line, notePos.Col, note.Msg)
		}
	}
}

// writeContext prints the lines around the primary line with a gutter
// and underlines the span on the primary line itself.
func writeContext(w io.Writer, file *source.File, start, end source.LineCol, opts PrettyOpts) {
	ctx := uint32(0)
	if opts.Context > 0 {
		ctx = uint32(opts.Context)
	}

	first := uint32(1)
	if start.Line > ctx {
		first = start.Line - ctx
	}
	last := start.Line + ctx

	gutter := len(fmt.Sprintf("%d", last))
	for line := first; line <= last; line++ {
		text := file.GetLine(line)
		if text == "" && line != start.Line {
			continue
		}
		fmt.Fprintf(w, "%*d | %s\n", gutter, line, text)
		if line == start.Line {
			writeUnderline(w, text, start, end, gutter, opts)
		}
	}
}

func writeUnderline(w io.Writer, text string, start, end source.LineCol, gutter int, opts PrettyOpts) {
	startIdx := clampIdx(int(start.Col)-1, len(text))
	endIdx := len(text)
	if end.Line == start.Line {
		endIdx = clampIdx(int(end.Col)-1, len(text))
	}
	if endIdx < startIdx {
		endIdx = startIdx
	}

	pad := runewidth.StringWidth(text[:startIdx])
	width := runewidth.StringWidth(text[startIdx:endIdx])
	if width < 1 {
		width = 1
	}

	marker := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		marker = color.New(color.FgHiRed, color.Bold).Sprint(marker)
	}
	fmt.Fprintf(w, "%*s | %s%s\n", gutter, "", strings.Repeat(" ", pad), marker)
}

func clampIdx(idx, limit int) int {
	if idx < 0 {
		return 0
	}
	if idx > limit {
		return limit
	}
	return idx
}

func severityLabel(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "ERROR"
	case diag.SevWarning:
		return "WARNING"
	default:
		return "INFO"
	}
}

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold)
	default:
		return color.New(color.FgCyan)
	}
}

func displayPath(f *source.File, fs *source.FileSet, mode PathMode) string {
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
