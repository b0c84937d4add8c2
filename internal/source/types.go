package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags encodes metadata about a source file.
	FileFlags uint8
)

const (
	// FileVirtual indicates the file was added from memory (test, stdin, etc.).
	FileVirtual FileFlags = 1 << iota
	FileHadBOM
	FileNormalizedCRLF
	FileNormalizedNFC
)

// File captures metadata and content for a single source file.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// Pos is a human-readable position in a source file.
// Both Line and Col are 1-based; Col counts bytes from the line start.
type Pos struct {
	Line uint32
	Col  uint32
}

// Before reports whether p comes strictly before other in the same file.
func (p Pos) Before(other Pos) bool {
	if p.Line != other.Line {
		return p.Line < other.Line
	}
	return p.Col < other.Col
}

// IsValid reports whether the position has been set (1-based coordinates).
func (p Pos) IsValid() bool {
	return p.Line >= 1 && p.Col >= 1
}
