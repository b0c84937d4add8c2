package diagfmt

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color     bool
	Context   int8 // extra source lines shown around the primary line
	ShowNotes bool
}

// JSONOpts configures JSON output.
type JSONOpts struct {
	IncludeNotes bool
	Max          int // output truncation, leaves the Bag alone; 0 means all
}
