package lexer

import "github.com/aledsdavies/cstlint/pkg/syntaxkind"

// LexDiagKind enumerates the recoverable lexical errors the lexer can
// attach to a token.
type LexDiagKind int

const (
	UnterminatedString LexDiagKind = iota
	UnterminatedTemplate
	IdentAfterNumber
	MultipleExponents
	DecimalExponent
	TwoDecimalPoints
	InvalidDigit
	MissingHexDigit
	UnterminatedBlockComment
	InvalidEscape
)

var lexDiagMessages = map[LexDiagKind]string{
	UnterminatedString: "unterminated string literal",
	UnterminatedTemplate: "unterminated template literal",
	IdentAfterNumber: "identifier starts immediately after numeric literal",
	MultipleExponents: "numeric literal has multiple exponent indicators",
	DecimalExponent: "exponent part must be an integer",
	TwoDecimalPoints: "numeric literal has two decimal points",
	InvalidDigit: "invalid digit for numeric literal base",
	MissingHexDigit: "expected at least one hex digit",
	UnterminatedBlockComment: "unterminated block comment",
	InvalidEscape: "invalid escape sequence",
}

// LexDiag is a lexical diagnostic attached to the token that produced it.
// The lexer never aborts on one of these; the offending token is still
// emitted so the token stream remains lossless.
type LexDiag struct {
	Kind LexDiagKind
	Message string
}

func newDiag(kind LexDiagKind) *LexDiag {
	return &LexDiag{Kind: kind, Message: lexDiagMessages[kind]}
}

// Token is the lexer's output unit. It never carries an absolute range:
// callers reconstruct the range by summing ByteLen over the preceding
// tokens, which is what lets green nodes share
// structurally identical subtrees regardless of where they sit in a file.
type Token struct {
	Kind syntaxkind.Kind
	ByteLen uint32 // wide enough for large string/template/comment tokens
	Text string
	Err *LexDiag
	Jointed bool // no trivia between this token and the next
	NewlineBefore bool
}
