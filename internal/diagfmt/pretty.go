package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"grove/internal/diag"
	"grove/internal/source"
)

var (
	sevErrorColor = color.New(color.FgRed, color.Bold)
	sevWarnColor  = color.New(color.FgYellow, color.Bold)
	sevInfoColor  = color.New(color.FgCyan)
	gutterColor   = color.New(color.FgBlue)
)

// Pretty renders diagnostics in a human-readable form. Call bag.Sort()
// first if ordering matters. For each diagnostic it prints
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the source line with a ^~~~ underline over the span, then any
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeHeading(w, fs, d.Primary, d.Severity, d.Code, d.Message, opts.Color)
		writeContext(w, fs, d.Primary, opts)
		if opts.ShowNotes {
			for _, n := range d.Notes {
				writeHeading(w, fs, n.Span, diag.SevInfo, diag.UnknownCode, n.Msg, opts.Color)
				writeContext(w, fs, n.Span, opts)
			}
		}
	}
}

func writeHeading(w io.Writer, fs *source.FileSet, sp source.Span, sev diag.Severity, code diag.Code, msg string, colored bool) {
	sevText := sev.String()
	if colored {
		sevText = sevColor(sev).Sprint(sevText)
	}
	path := "<unknown>"
	if fs != nil {
		path = fs.Get(sp.File).Path
	}
	if code == diag.UnknownCode {
		fmt.Fprintf(w, "%s:%d:%d: %s: %s\n", path, sp.Start.Line, sp.Start.Col, sevText, msg)
		return
	}
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n", path, sp.Start.Line, sp.Start.Col, sevText, code.ID(), msg)
}

// writeContext prints the primary line (plus opts.Context surrounding lines)
// with a caret underline. The underline width follows the display width of
// the underlined text, so wide runes get wide underlines.
func writeContext(w io.Writer, fs *source.FileSet, sp source.Span, opts PrettyOpts) {
	if fs == nil || !sp.Start.IsValid() {
		return
	}
	f := fs.Get(sp.File)

	first := sp.Start.Line
	if ctx := uint32(opts.Context); ctx > 0 && first > ctx {
		first -= ctx
	} else if opts.Context > 0 {
		first = 1
	}

	for line := first; line <= sp.Start.Line; line++ {
		text := f.GetLine(line)
		gutter := fmt.Sprintf("%5d | ", line)
		if opts.Color {
			gutter = gutterColor.Sprint(gutter)
		}
		fmt.Fprintf(w, "%s%s\n", gutter, text)
	}

	text := f.GetLine(sp.Start.Line)
	startCol := int(sp.Start.Col)
	endCol := len(text) + 1
	if sp.OneLine() && int(sp.End.Col) <= endCol {
		endCol = int(sp.End.Col)
	}
	if startCol > len(text)+1 {
		startCol = len(text) + 1
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	pad := runewidth.StringWidth(text[:min(startCol-1, len(text))])
	width := runewidth.StringWidth(text[min(startCol-1, len(text)):min(endCol-1, len(text))])
	if width < 1 {
		width = 1
	}

	underline := "^" + strings.Repeat("~", width-1)
	if opts.Color {
		underline = sevErrorColor.Sprint(underline)
	}
	fmt.Fprintf(w, "      | %s%s\n", strings.Repeat(" ", pad), underline)
}

func sevColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return sevErrorColor
	case diag.SevWarning:
		return sevWarnColor
	default:
		return sevInfoColor
	}
}
