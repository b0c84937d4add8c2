package driver

// Stage marks how far a file has progressed through a directory run.
type Stage uint8

const (
	StageQueued Stage = iota
	StageLex
	StageGroup
	StageDone
	StageFailed
)

func (s Stage) String() string {
	switch s {
	case StageQueued:
		return "queued"
	case StageLex:
		return "lex"
	case StageGroup:
		return "group"
	case StageDone:
		return "done"
	case StageFailed:
		return "failed"
	}
	return "unknown"
}

// Event is one progress update from a directory run, consumed by the TUI.
type Event struct {
	Path   string
	Stage  Stage
	Diags  int
	Cached bool
	Err    error
}
