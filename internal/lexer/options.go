package lexer

import (
	"grove/internal/diag"
	"grove/internal/source"
)

type Options struct {
	// Reporter receives lexical diagnostics; nil means errors are dropped
	// but lexing continues.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		lx.opts.Reporter.Report(code, diag.SevError, sp, msg, nil)
	}
}
