// Package driver wires the front-end phases together for the CLI: file
// loading, lexing, grouping, diagnostics collection, directory runs, and
// the result cache.
package driver

import (
	"fmt"

	"grove/internal/diag"
	"grove/internal/group"
	"grove/internal/grouper"
	"grove/internal/lexer"
	"grove/internal/source"
	"grove/internal/token"
)

// TokenizeResult carries everything the CLI needs after lexing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Bag     *diag.Bag
}

// Tokenize loads and lexes a single file.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return tokenizeFile(fs, fileID, maxDiagnostics), nil
}

// TokenizeBytes lexes in-memory content (stdin, tests).
func TokenizeBytes(name string, content []byte, maxDiagnostics int) *TokenizeResult {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual(name, content)
	return tokenizeFile(fs, fileID, maxDiagnostics)
}

func tokenizeFile(fs *source.FileSet, fileID source.FileID, maxDiagnostics int) *TokenizeResult {
	bag := diag.NewBag(maxDiagnostics)
	toks := lexer.Tokenize(fs.Get(fileID), lexer.Options{
		Reporter: &diag.BagReporter{Bag: bag},
	})
	return &TokenizeResult{
		FileSet: fs,
		FileID:  fileID,
		Tokens:  toks,
		Bag:     bag,
	}
}

// GroupResult carries the grouped token tree for one file.
type GroupResult struct {
	FileSet *source.FileSet
	FileID  source.FileID
	Tokens  []token.Token
	Elems   []group.Elem
	Bag     *diag.Bag
}

// Group loads, lexes, and groups a single file.
func Group(path string, maxDiagnostics int) (*GroupResult, error) {
	tr, err := Tokenize(path, maxDiagnostics)
	if err != nil {
		return nil, err
	}
	return groupTokens(tr), nil
}

// GroupBytes lexes and groups in-memory content.
func GroupBytes(name string, content []byte, maxDiagnostics int) *GroupResult {
	return groupTokens(TokenizeBytes(name, content, maxDiagnostics))
}

func groupTokens(tr *TokenizeResult) *GroupResult {
	elems := grouper.Run(tr.Tokens, grouper.Options{
		Reporter: &diag.BagReporter{Bag: tr.Bag},
	})
	return &GroupResult{
		FileSet: tr.FileSet,
		FileID:  tr.FileID,
		Tokens:  tr.Tokens,
		Elems:   elems,
		Bag:     tr.Bag,
	}
}
