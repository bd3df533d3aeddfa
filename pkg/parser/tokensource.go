package parser

import (
	"strings"

	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// bufTok is one raw (possibly trivia) token plus its starting byte offset,
// as buffered by TokenSource for lookahead.
type bufTok struct {
	tok lexer.Token
	start int
}

// TokenSource is the pull-style abstraction the parser consumes: the
// current non-trivia token, arbitrary lookahead, linebreak-before-
// current, and keyword recognition by string. It also owns the raw
// (trivia-inclusive) token buffer the tree builder walks to attach
// trivia.
type TokenSource struct {
	lex *lexer.Lexer

	buf []bufTok
	nonTrivia []int // indices into buf of each scanned non-trivia token
	cur int // index into nonTrivia: the "current" token position
	emittedRaw int // index into buf already handed to the tree builder
}

// NewTokenSource creates a TokenSource over source.
func NewTokenSource(source string) *TokenSource {
	return &TokenSource{lex: lexer.New(source)}
}

func (ts *TokenSource) scanOne(allowRegex bool) {
	ts.lex.AllowRegex(allowRegex)
	start := ts.lex.Pos()
	tok := ts.lex.Next()
	ts.buf = append(ts.buf, bufTok{tok: tok, start: start})
	if !syntaxkind.IsTrivia(tok.Kind) {
		ts.nonTrivia = append(ts.nonTrivia, len(ts.buf)-1)
	}
}

func (ts *TokenSource) ensure(n int) {
	for len(ts.nonTrivia) <= ts.cur+n {
		last := len(ts.buf) - 1
		if last >= 0 && ts.buf[last].tok.Kind == syntaxkind.EOF {
			// Keep re-recording EOF so nonTrivia always has a final entry
			// to index into.
			ts.nonTrivia = append(ts.nonTrivia, last)
			continue
		}
		ts.scanOne(false)
	}
}

// Current returns the current non-trivia token without consuming it.
func (ts *TokenSource) Current() lexer.Token {
	ts.ensure(0)
	return ts.buf[ts.nonTrivia[ts.cur]].tok
}

// Nth returns the non-trivia token n positions ahead of current (Nth(0) ==
// Current()) without consuming anything.
func (ts *TokenSource) Nth(n int) lexer.Token {
	ts.ensure(n)
	return ts.buf[ts.nonTrivia[ts.cur+n]].tok
}

// NewlineBeforeCurrent reports whether a line break occurred in the trivia
// preceding the current token — the basis for automatic semicolon
// insertion.
func (ts *TokenSource) NewlineBeforeCurrent() bool {
	return ts.Current().NewlineBefore
}

// AtKeyword reports whether the current token's text equals kw, regardless
// of whether the lexer classified it as a keyword Kind or a contextual
// IDENT.
func (ts *TokenSource) AtKeyword(kw string) bool {
	return ts.Current().Text == kw
}

// Bump consumes the current non-trivia token and returns it along with the
// raw (trivia-inclusive) slice that precedes it since the last Bump —
// needed by the parser to drive trivia attachment.
func (ts *TokenSource) Bump() (tok lexer.Token, precedingTrivia []lexer.Token) {
	ts.ensure(0)
	idx := ts.nonTrivia[ts.cur]
	run := ts.buf[ts.emittedRaw:idx]
	precedingTrivia = make([]lexer.Token, len(run))
	for i, b := range run {
		precedingTrivia[i] = b.tok
	}
	tok = ts.buf[idx].tok
	ts.emittedRaw = idx + 1
	if tok.Kind != syntaxkind.EOF {
		ts.cur++
	}
	return tok, precedingTrivia
}

// ReScanCurrentAsRegex discards the already-scanned current token (which
// the lexer produced as SLASH/SLASHEQ under the default division
// assumption) and re-lexes from the same starting byte with regex mode
// enabled. The parser calls this when a '/' or '/=' appears where a
// primary expression must start, the position where a regex literal is
// grammatically legal.
func (ts *TokenSource) ReScanCurrentAsRegex() {
	ts.ensure(0)
	idx := ts.nonTrivia[ts.cur]
	start := ts.buf[idx].start

	ts.buf = ts.buf[:idx]
	for len(ts.nonTrivia) > 0 && ts.nonTrivia[len(ts.nonTrivia)-1] >= idx {
		ts.nonTrivia = ts.nonTrivia[:len(ts.nonTrivia)-1]
	}
	ts.lex.Seek(start)
	ts.scanOne(true)
}

// DrainLeadingTrivia returns every raw trivia token before the very first
// non-trivia token in the file. Per this run is special:
// it attaches inside the root node before the first child, not inside
// whatever node happens to parse first.
func (ts *TokenSource) DrainLeadingTrivia() []lexer.Token {
	ts.ensure(0)
	idx := ts.nonTrivia[0]
	run := ts.buf[ts.emittedRaw:idx]
	out := make([]lexer.Token, len(run))
	for i, b := range run {
		out[i] = b.tok
	}
	ts.emittedRaw = idx
	return out
}

// DrainTrailingTrivia returns every raw trivia token remaining between the
// last consumed token and EOF. Per the EOF token itself is
// never a tree child; any trivia before it attaches to the root.
func (ts *TokenSource) DrainTrailingTrivia() []lexer.Token {
	ts.ensure(0)
	idx := ts.nonTrivia[ts.cur] // EOF's slot once parsing has consumed everything else
	run := ts.buf[ts.emittedRaw:idx]
	out := make([]lexer.Token, len(run))
	for i, b := range run {
		out[i] = b.tok
	}
	ts.emittedRaw = idx
	return out
}

// SplitTrailingLeading partitions a trivia run into the part that attaches
// trailing to the preceding node (same line, no line break) and the part
// that attaches leading to the following node.
func SplitTrailingLeading(run []lexer.Token) (trailing, leading []lexer.Token) {
	split := len(run)
	for i, t := range run {
		if containsLineBreak(t.Text) {
			split = i
			break
		}
	}
	return run[:split], run[split:]
}

func containsLineBreak(s string) bool {
	return strings.ContainsAny(s, "\n\r") || strings.Contains(s, " ") || strings.Contains(s, " ")
}
