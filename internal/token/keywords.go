package token

var keywords = map[string]Kind{
	"fn":     KwFn,
	"let":    KwLet,
	"if":     KwIf,
	"else":   KwElse,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword returns the keyword kind for an identifier spelling.
// Keywords are case-sensitive; only lowercase spellings are recognized.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
