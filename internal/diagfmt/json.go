package diagfmt

import (
	"encoding/json"
	"io"

	"grove/internal/diag"
	"grove/internal/source"
)

type jsonSpan struct {
	File      string `json:"file"`
	StartLine uint32 `json:"startLine"`
	StartCol  uint32 `json:"startCol"`
	EndLine   uint32 `json:"endLine"`
	EndCol    uint32 `json:"endCol"`
}

type jsonNote struct {
	Span jsonSpan `json:"span"`
	Msg  string   `json:"message"`
}

type jsonDiagnostic struct {
	Severity string     `json:"severity"`
	Code     string     `json:"code"`
	Message  string     `json:"message"`
	Span     jsonSpan   `json:"span"`
	Notes    []jsonNote `json:"notes,omitempty"`
}

// JSON renders diagnostics as a JSON array, machine-readable for editors
// and CI.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}

	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     toJSONSpan(fs, d.Primary),
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jd.Notes = append(jd.Notes, jsonNote{Span: toJSONSpan(fs, n.Span), Msg: n.Msg})
			}
		}
		out = append(out, jd)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func toJSONSpan(fs *source.FileSet, sp source.Span) jsonSpan {
	path := ""
	if fs != nil {
		path = fs.Get(sp.File).Path
	}
	return jsonSpan{
		File:      path,
		StartLine: sp.Start.Line,
		StartCol:  sp.Start.Col,
		EndLine:   sp.End.Line,
		EndCol:    sp.End.Col,
	}
}
