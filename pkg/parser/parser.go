// Package parser implements the event-emitting recursive-descent parser
// and tree builder as a single merged pass: the Parser drives a
// green.Builder directly through the Marker/CompletedMarker veneer in
// marker.go, rather than recording an event log and replaying it
// afterward. See DESIGN.md for the grounding and rationale.
package parser

import (
	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// state is the stack-allocated grammar-context guard: every production
// that changes what's legal inside it (loop bodies enabling
// break/continue, function bodies enabling return, generator bodies
// enabling yield, async bodies enabling await, strict-mode activation,
// module-vs-script) pushes a state and pops it on return.
type state struct {
	continueAllowed bool
	breakAllowed bool
	inFunction bool
	inGenerator bool
	inAsync bool
	strict bool
	isModule bool
	labels []string
	defaultItem bool // inside a switch's default clause body already seen
}

// Parser holds the mutable parse state over one file's token stream.
type Parser struct {
	src string
	ts *TokenSource
	builder *green.Builder
	state state
	diags []*diagnostic.Diagnostic
	fileID int

	// recoverySets is a stack of TokenSets any of which, when hit during
	// error recovery, stops consuming further garbage tokens.
	recoverySets []syntaxkind.TokenSet

	// bumps counts every token consumed so far, letting the statement-loop
	// drivers in parseRoot/parseBlockStmt detect a production that reported
	// an error without consuming anything and force progress.
	bumps uint64
}

// New creates a Parser over source text, ready to parse either a script or
// a module (selected by the entry point called: ParseScript/ParseModule).
func New(source string, fileID int) *Parser {
	return &Parser{
		src: source,
		ts: NewTokenSource(source),
		builder: green.NewBuilder(),
		fileID: fileID,
	}
}

// Diagnostics returns every diagnostic collected while parsing.
func (p *Parser) Diagnostics() []*diagnostic.Diagnostic { return p.diags }

// --- token-stream helpers ---

func (p *Parser) current() lexer.Token { return p.ts.Current() }
func (p *Parser) nth(n int) lexer.Token { return p.ts.Nth(n) }
func (p *Parser) at(k syntaxkind.Kind) bool { return p.current().Kind == k }
func (p *Parser) atAny(ts syntaxkind.TokenSet) bool { return ts.Contains(p.current().Kind) }
func (p *Parser) atEOF() bool { return p.at(syntaxkind.EOF) }

// atContextualKeyword reports whether the current token is the given
// contextual keyword kind.
func (p *Parser) atContextualKeyword(k syntaxkind.Kind) bool {
	return p.at(k)
}

// asIdent consumes the current token, which must be an IDENT or one of the
// contextual keyword kinds, and emits it into the tree as IDENT.
func (p *Parser) asIdent() lexer.Token {
	if p.at(syntaxkind.IDENT) {
		return p.bump()
	}
	return p.bumpRemap(syntaxkind.IDENT)
}

// bump consumes the current token unconditionally and emits it into the builder.
func (p *Parser) bump() lexer.Token {
	tok, trivia := p.ts.Bump()
	p.emitTrivia(trivia)
	p.builder.Token(tok)
	p.bumps++
	return tok
}

// emitTrivia emits a run of raw trivia tokens into the current frame,
// immediately before the real token being bumped, so each trivia token
// lands inside the innermost node already started at that point (normally
// the node that follows it). Same-line trailing trivia is not split off
// onto the preceding node: the whole run, with or without a line break,
// goes with the following token.
func (p *Parser) emitTrivia(trivia []lexer.Token) {
	for _, t := range trivia {
		p.builder.Token(t)
	}
}

// bumpRemap consumes the current token but re-emits it as kind k instead
// of its lexed kind — used by asIdent to emit contextual keywords, which
// the lexer returns as their keyword kind, as plain IDENT.
func (p *Parser) bumpRemap(k syntaxkind.Kind) lexer.Token {
	tok, trivia := p.ts.Bump()
	p.emitTrivia(trivia)
	remapped := tok
	remapped.Kind = k
	p.builder.Token(remapped)
	p.bumps++
	return remapped
}

// eat consumes and returns true if the current token is k, otherwise does
// nothing and returns false.
func (p *Parser) eat(k syntaxkind.Kind) bool {
	if p.at(k) {
		p.bump()
		return true
	}
	return false
}

// expect consumes k or, if absent, records an error diagnostic and
// synthesizes nothing.
func (p *Parser) expect(k syntaxkind.Kind, what string) bool {
	if p.eat(k) {
		return true
	}
	p.errorHere("expected " + what)
	return false
}

// errorHere records a parse-error diagnostic pointing at the current
// token's span.
func (p *Parser) errorHere(msg string) {
	cur := p.current()
	start := p.ts.buf[p.ts.nonTrivia[p.ts.cur]].start
	end := start + int(cur.ByteLen)
	d := diagnostic.New(diagnostic.Error, msg).WithFile(p.fileID).Primary(start, end, msg)
	p.diags = append(p.diags, d)
}

// errorAndBumpUntil reports msg, then consumes tokens (wrapping them in an
// ERROR node) until the current token is EOF or a member of any active
// recovery set, implementing this component's bounded-consumption recovery
// discipline so a single malformed construct can't stall the parser. The
// first token is always consumed even if it already belongs to stop or an
// active recovery set, so a call here can never complete an empty ERROR
// node and leave the caller's position unchanged.
func (p *Parser) errorAndBumpUntil(msg string, stop syntaxkind.TokenSet) {
	p.errorHere(msg)
	m := p.Start()
	if !p.atEOF() {
		p.bump()
	}
	for !p.atEOF() && !stop.Contains(p.current().Kind) && !p.atAnyActiveRecoverySet() {
		p.bump()
	}
	m.Complete(syntaxkind.ERROR)
}

func (p *Parser) pushRecovery(ts syntaxkind.TokenSet) {
	p.recoverySets = append(p.recoverySets, ts)
}

func (p *Parser) popRecovery() {
	p.recoverySets = p.recoverySets[:len(p.recoverySets)-1]
}

func (p *Parser) atAnyActiveRecoverySet() bool {
	cur := p.current().Kind
	for _, ts := range p.recoverySets {
		if ts.Contains(cur) {
			return true
		}
	}
	return false
}

// --- automatic semicolon insertion ---

// consumeSemi implements ASI: an explicit ';' is always consumed; absent
// that, a semicolon is "inserted" (i.e. treated as satisfied, no error)
// when the current token is '}', EOF, or preceded by a line break. Any
// other case is a real error.
func (p *Parser) consumeSemi() {
	if p.eat(syntaxkind.SEMICOLON) {
		return
	}
	if p.at(syntaxkind.RBRACE) || p.atEOF() || p.ts.NewlineBeforeCurrent() {
		return
	}
	p.errorHere("expected ';'")
}

// --- state-stack guard helpers ---

func (p *Parser) withLoop(body func()) {
	saved := p.state
	p.state.continueAllowed = true
	p.state.breakAllowed = true
	body()
	p.state = saved
}

func (p *Parser) withSwitch(body func()) {
	saved := p.state
	p.state.breakAllowed = true
	body()
	p.state = saved
}

func (p *Parser) withFunction(generator, async bool, body func()) {
	saved := p.state
	p.state.inFunction = true
	p.state.inGenerator = generator
	p.state.inAsync = async
	p.state.continueAllowed = false
	p.state.breakAllowed = false
	p.state.labels = nil
	body()
	p.state = saved
}

// --- entry points ---

// ParseScript parses source as a non-module script.
func (p *Parser) ParseScript() *green.Node {
	p.state.isModule = false
	return p.parseRoot(syntaxkind.SCRIPT)
}

// ParseModule parses source as an ECMAScript module, implying strict mode for the whole file.
func (p *Parser) ParseModule() *green.Node {
	p.state.isModule = true
	p.state.strict = true
	return p.parseRoot(syntaxkind.MODULE)
}

func (p *Parser) parseRoot(rootKind syntaxkind.Kind) *green.Node {
	// The checkpoint is taken before leading trivia is emitted so that
	// trivia lands inside the root's wrapped range, not in the builder's
	// outer implicit frame.
	m := p.Start()
	for _, t := range p.ts.DrainLeadingTrivia() {
		p.builder.Token(t)
	}
	for !p.atEOF() {
		mark := p.bumps
		p.parseStatementOrModuleItem()
		if p.bumps == mark {
			p.forceProgress()
		}
	}
	for _, t := range p.ts.DrainTrailingTrivia() {
		p.builder.Token(t)
	}
	m.Complete(rootKind)
	return p.builder.Finish(rootKind)
}

// forceProgress consumes exactly one token, wrapped in its own ERROR node,
// when a statement production reported an error but left the token stream
// untouched. This is a backstop behind errorAndBumpUntil/
// errorAndBumpUntilInline, which consume the offending token first unless
// (for the inline form) it is a ';' or '}': without it such a token, or a
// production that returns without calling either, could stall
// parseRoot/parseBlockStmt's loop at the same position forever.
func (p *Parser) forceProgress() {
	if p.atEOF() {
		return
	}
	m := p.Start()
	p.errorHere("expected statement")
	p.bump()
	m.Complete(syntaxkind.ERROR)
}
