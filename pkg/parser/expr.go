package parser

import "github.com/aledsdavies/cstlint/pkg/syntaxkind"

// Expression parsing follows this component's precedence-climbing (Pratt)
// design: each binary/logical operator kind carries a binding power
// (assignment is handled separately by parseAssignExpr); parseBinExpr
// loops consuming operators whose left power is at least the caller's
// minimum, recursing on the right-hand side at the operator's right power:
// one above its left power for left-associative operators, one below it
// for the right-associative '**'. Every parse{X}Expr function below except
// parseExprSeq returns the CompletedMarker for the node it
// just produced, so a caller that needs to wrap it further (a binary
// operator, a member access, a call) can do so with Precede() instead of
// opening a throwaway node first.

// binPower returns (leftPower, rightPower, ok) for a binary operator kind.
// Higher numbers bind tighter. The right-associative '**' returns
// rightPower < leftPower so the recursive call at rightPower re-admits
// another '**' on the right.
func binPower(k syntaxkind.Kind) (int, int, bool) {
	switch k {
	case syntaxkind.QUESTION_QUESTION:
		return 5, 6, true
	case syntaxkind.PIPEPIPE:
		return 7, 8, true
	case syntaxkind.AMPAMP:
		return 9, 10, true
	case syntaxkind.PIPE:
		return 11, 12, true
	case syntaxkind.CARET:
		return 13, 14, true
	case syntaxkind.AMP:
		return 15, 16, true
	case syntaxkind.EQ2, syntaxkind.NEQ, syntaxkind.EQ3, syntaxkind.NEQ2:
		return 17, 18, true
	case syntaxkind.LT, syntaxkind.GT, syntaxkind.LTE, syntaxkind.GTE,
		syntaxkind.INSTANCEOF_KW, syntaxkind.IN_KW:
		return 19, 20, true
	case syntaxkind.SHL, syntaxkind.SHR, syntaxkind.USHR:
		return 21, 22, true
	case syntaxkind.PLUS, syntaxkind.MINUS:
		return 23, 24, true
	case syntaxkind.STAR, syntaxkind.SLASH, syntaxkind.PERCENT:
		return 25, 26, true
	case syntaxkind.STAR2:
		return 28, 27, true // right-assoc, binds tighter than * /
	}
	return 0, 0, false
}

func isAssignOp(k syntaxkind.Kind) bool {
	switch k {
	case syntaxkind.EQ, syntaxkind.PLUSEQ, syntaxkind.MINUSEQ, syntaxkind.STAREQ,
		syntaxkind.SLASHEQ, syntaxkind.PERCENTEQ, syntaxkind.STAR2EQ,
		syntaxkind.AMPAMPEQ, syntaxkind.PIPEPIPEEQ, syntaxkind.QUESTIONQUESTIONEQ,
		syntaxkind.AMPEQ, syntaxkind.PIPEEQ, syntaxkind.CARETEQ,
		syntaxkind.SHLEQ, syntaxkind.SHREQ, syntaxkind.USHREQ:
		return true
	}
	return false
}

func isLogicOp(k syntaxkind.Kind) bool {
	return k == syntaxkind.AMPAMP || k == syntaxkind.PIPEPIPE || k == syntaxkind.QUESTION_QUESTION
}

type exprNoIn bool

// parseExprSeq parses a full comma-separated sequence expression — the
// only production that uses the comma operator,
// reserved for statement-expression and for-header positions where a
// bare comma is legal.
func (p *Parser) parseExprSeq(noIn exprNoIn) {
	cm := p.parseAssignExpr(noIn)
	if !p.at(syntaxkind.COMMA) {
		return
	}
	m := cm.Precede()
	for p.eat(syntaxkind.COMMA) {
		p.parseAssignExpr(noIn)
	}
	m.Complete(syntaxkind.SEQUENCE_EXPR)
}

// parseAssignExpr parses a single assignment-or-lower expression: everything above the comma operator.
func (p *Parser) parseAssignExpr(noIn exprNoIn) CompletedMarker {
	if cm, ok := p.tryParseArrowFunction(); ok {
		return cm
	}
	if p.atContextualKeyword(syntaxkind.YIELD_KW) && p.state.inGenerator {
		return p.parseYieldExpr()
	}
	lhs := p.parseConditionalExpr(noIn)
	if isAssignOp(p.current().Kind) {
		m := lhs.Precede()
		p.bump()
		p.parseAssignExpr(noIn)
		return m.Complete(syntaxkind.ASSIGN_EXPR)
	}
	return lhs
}

func (p *Parser) parseYieldExpr() CompletedMarker {
	m := p.Start()
	p.bump() // yield
	p.eat(syntaxkind.STAR)
	if !p.atExprEnd() {
		p.parseAssignExpr(false)
	}
	return m.Complete(syntaxkind.UNARY_EXPR)
}

// atExprEnd reports whether the current token cannot start an expression
// on the same line, used by yield/return/throw.
func (p *Parser) atExprEnd() bool {
	if p.atEOF() || p.at(syntaxkind.SEMICOLON) || p.at(syntaxkind.RBRACE) ||
		p.at(syntaxkind.RPAREN) || p.at(syntaxkind.RBRACKET) || p.at(syntaxkind.COMMA) ||
		p.at(syntaxkind.COLON) {
		return true
	}
	return p.ts.NewlineBeforeCurrent()
}

func (p *Parser) parseConditionalExpr(noIn exprNoIn) CompletedMarker {
	cm := p.parseBinExpr(1, noIn)
	if !p.at(syntaxkind.QUESTION) {
		return cm
	}
	m := cm.Precede()
	p.bump()
	p.parseAssignExpr(false)
	p.expect(syntaxkind.COLON, "':'")
	p.parseAssignExpr(noIn)
	return m.Complete(syntaxkind.COND_EXPR)
}

// parseBinExpr implements the precedence-climbing loop over binPower for
// every binary/logical operator tier.
func (p *Parser) parseBinExpr(minPower int, noIn exprNoIn) CompletedMarker {
	lm := p.parseUnaryExpr()
	for {
		k := p.current().Kind
		if noIn && k == syntaxkind.IN_KW {
			break
		}
		lp, rp, ok := binPower(k)
		if !ok || lp < minPower {
			break
		}
		m := lm.Precede()
		p.bump()
		p.parseBinExpr(rp, noIn)
		kind := syntaxkind.BIN_EXPR
		if isLogicOp(k) {
			kind = syntaxkind.LOGIC_EXPR
		}
		lm = m.Complete(kind)
	}
	return lm
}

func (p *Parser) parseUnaryExpr() CompletedMarker {
	switch p.current().Kind {
	case syntaxkind.PLUS, syntaxkind.MINUS, syntaxkind.BANG, syntaxkind.TILDE,
		syntaxkind.TYPEOF_KW, syntaxkind.VOID_KW, syntaxkind.DELETE_KW:
		m := p.Start()
		p.bump()
		p.parseUnaryExpr()
		return m.Complete(syntaxkind.UNARY_EXPR)
	case syntaxkind.AWAIT_KW:
		if p.state.inAsync {
			m := p.Start()
			p.bump()
			p.parseUnaryExpr()
			return m.Complete(syntaxkind.UNARY_EXPR)
		}
	case syntaxkind.PLUSPLUS, syntaxkind.MINUSMINUS:
		m := p.Start()
		p.bump()
		p.parseUnaryExpr()
		return m.Complete(syntaxkind.UPDATE_EXPR)
	}
	return p.parsePostfixExpr()
}

func (p *Parser) parsePostfixExpr() CompletedMarker {
	cm := p.parseLeftHandSideExpr()
	if (p.at(syntaxkind.PLUSPLUS) || p.at(syntaxkind.MINUSMINUS)) && !p.ts.NewlineBeforeCurrent() {
		m := cm.Precede()
		p.bump()
		return m.Complete(syntaxkind.UPDATE_EXPR)
	}
	return cm
}

// parseLeftHandSideExpr parses member/call chains: new-expressions,
// property access ('.', '?.', '['), template tags, and call arguments.
func (p *Parser) parseLeftHandSideExpr() CompletedMarker {
	var lm CompletedMarker
	if p.at(syntaxkind.NEW_KW) {
		lm = p.parseNewExpr()
	} else {
		lm = p.parsePrimaryExpr()
	}
	for {
		switch p.current().Kind {
		case syntaxkind.DOT, syntaxkind.QUESTION_DOT:
			m := lm.Precede()
			p.bump()
			p.asIdent()
			lm = m.Complete(syntaxkind.MEMBER_EXPR)
		case syntaxkind.LBRACKET:
			m := lm.Precede()
			p.bump()
			p.parseAssignExpr(false)
			p.expect(syntaxkind.RBRACKET, "']'")
			lm = m.Complete(syntaxkind.MEMBER_EXPR)
		case syntaxkind.LPAREN:
			m := lm.Precede()
			p.parseArgList()
			lm = m.Complete(syntaxkind.CALL_EXPR)
		case syntaxkind.TEMPLATE_STRING:
			m := lm.Precede()
			p.bump()
			lm = m.Complete(syntaxkind.TEMPLATE_EXPR)
		default:
			return lm
		}
	}
}

func (p *Parser) parseNewExpr() CompletedMarker {
	m := p.Start()
	p.bump() // new
	if p.at(syntaxkind.DOT) {
		p.bump()
		p.asIdent() // new.target
		return m.Complete(syntaxkind.MEMBER_EXPR)
	}
	if p.at(syntaxkind.NEW_KW) {
		p.parseNewExpr()
	} else {
		p.parseMemberExprNoCall()
	}
	if p.at(syntaxkind.LPAREN) {
		p.parseArgList()
	}
	return m.Complete(syntaxkind.NEW_EXPR)
}

// parseMemberExprNoCall parses a primary expression followed by any
// '.'/'[' member accesses but stops before '(' so the enclosing
// new-expression claims exactly one argument list.
func (p *Parser) parseMemberExprNoCall() CompletedMarker {
	lm := p.parsePrimaryExpr()
	for {
		switch p.current().Kind {
		case syntaxkind.DOT, syntaxkind.QUESTION_DOT:
			m := lm.Precede()
			p.bump()
			p.asIdent()
			lm = m.Complete(syntaxkind.MEMBER_EXPR)
		case syntaxkind.LBRACKET:
			m := lm.Precede()
			p.bump()
			p.parseAssignExpr(false)
			p.expect(syntaxkind.RBRACKET, "']'")
			lm = m.Complete(syntaxkind.MEMBER_EXPR)
		default:
			return lm
		}
	}
}

func (p *Parser) parseArgList() {
	m := p.Start()
	p.expect(syntaxkind.LPAREN, "'('")
	for !p.at(syntaxkind.RPAREN) && !p.atEOF() {
		if p.at(syntaxkind.DOTDOTDOT) {
			sm := p.Start()
			p.bump()
			p.parseAssignExpr(false)
			sm.Complete(syntaxkind.SPREAD_ELEMENT)
		} else {
			p.parseAssignExpr(false)
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RPAREN, "')'")
	m.Complete(syntaxkind.ARG_LIST)
}

func (p *Parser) parsePrimaryExpr() CompletedMarker {
	switch p.current().Kind {
	case syntaxkind.NUMBER, syntaxkind.STRING, syntaxkind.REGEX,
		syntaxkind.NULL_KW, syntaxkind.TRUE_KW, syntaxkind.FALSE_KW:
		m := p.Start()
		p.bump()
		return m.Complete(syntaxkind.LITERAL)
	case syntaxkind.SLASH, syntaxkind.SLASHEQ:
		p.ts.ReScanCurrentAsRegex()
		m := p.Start()
		p.bump()
		return m.Complete(syntaxkind.LITERAL)
	case syntaxkind.TEMPLATE_STRING:
		m := p.Start()
		p.bump()
		return m.Complete(syntaxkind.TEMPLATE_EXPR)
	case syntaxkind.THIS_KW, syntaxkind.SUPER_KW:
		m := p.Start()
		p.bump()
		return m.Complete(syntaxkind.NAME_REF)
	case syntaxkind.IDENT, syntaxkind.OF_KW, syntaxkind.ASYNC_KW, syntaxkind.AWAIT_KW,
		syntaxkind.YIELD_KW, syntaxkind.GET_KW, syntaxkind.SET_KW, syntaxkind.STATIC_KW,
		syntaxkind.AS_KW, syntaxkind.FROM_KW:
		if p.at(syntaxkind.ASYNC_KW) && p.nth(1).Kind == syntaxkind.FUNCTION_KW {
			return p.parseFunctionExpr()
		}
		m := p.Start()
		p.asIdent()
		return m.Complete(syntaxkind.NAME_REF)
	case syntaxkind.LPAREN:
		return p.parseParenExpr()
	case syntaxkind.LBRACKET:
		return p.parseArrayLiteral()
	case syntaxkind.LBRACE:
		return p.parseObjectLiteral()
	case syntaxkind.FUNCTION_KW:
		return p.parseFunctionExpr()
	case syntaxkind.CLASS_KW:
		return p.parseClassExpr()
	default:
		m := p.Start()
		p.errorAndBumpUntilInline("expected expression", exprRecoverySet)
		return m.Complete(syntaxkind.ERROR)
	}
}

var exprRecoverySet = syntaxkind.NewTokenSet(
	syntaxkind.SEMICOLON, syntaxkind.RBRACE, syntaxkind.RPAREN, syntaxkind.RBRACKET, syntaxkind.COMMA,
)

// errorAndBumpUntilInline is like errorAndBumpUntil but doesn't open its
// own ERROR node — the caller already has a Marker open (used by
// parsePrimaryExpr's error arm so the whole failed expression still
// completes as exactly one ERROR node). The offending token is consumed
// first, even if it's already a member of stop or an active recovery set
// (e.g. a stray ')' at the start of an expression), so the ERROR node is
// not left empty at the caller's position. A ';' or '}' is the exception:
// it is left for the enclosing statement or block to consume, and the
// ERROR node then stays empty.
func (p *Parser) errorAndBumpUntilInline(msg string, stop syntaxkind.TokenSet) {
	p.errorHere(msg)
	if !p.atEOF() && !p.at(syntaxkind.SEMICOLON) && !p.at(syntaxkind.RBRACE) {
		p.bump()
	}
	for !p.atEOF() && !stop.Contains(p.current().Kind) && !p.atAnyActiveRecoverySet() {
		p.bump()
	}
}

// parseParenExpr parses a parenthesized expression. Arrow functions whose
// parameter list needed full parenthesized-expression parsing to
// disambiguate (vs. the fast paths in tryParseArrowFunction) are not
// reachable here: arrowParamsFollowedByArrow's lookahead resolves every
// '(' position before parsePrimaryExpr is ever asked to parse it, so by
// the time control reaches here '(' is known to start a true parenthesized
// expression, not a parameter list.
func (p *Parser) parseParenExpr() CompletedMarker {
	m := p.Start()
	p.bump() // (
	if !p.at(syntaxkind.RPAREN) {
		p.parseExprSeq(false)
	}
	p.expect(syntaxkind.RPAREN, "')'")
	return m.Complete(syntaxkind.PAREN_EXPR)
}

// tryParseArrowFunction handles arrow-function starts that are decidable
// by bounded lookahead before committing to a parse path: a bare
// identifier (optionally 'async'-prefixed) followed by '=>', and
// '(async )? (params) =>' forms, where arrowParamsFollowedByArrow scans
// forward to the matching ')' to check for a following '=>'.
func (p *Parser) tryParseArrowFunction() (CompletedMarker, bool) {
	async := p.at(syntaxkind.ASYNC_KW) && !p.ts.NewlineBeforeCurrent() &&
		(p.nth(1).Kind == syntaxkind.IDENT || p.nth(1).Kind == syntaxkind.LPAREN)

	identOffset := 0
	if async {
		identOffset = 1
	}
	if p.nth(identOffset).Kind == syntaxkind.IDENT && p.nth(identOffset+1).Kind == syntaxkind.ARROW {
		m := p.Start()
		if async {
			p.bump()
		}
		pm := p.Start()
		nm := p.Start()
		p.asIdent()
		nm.Complete(syntaxkind.NAME)
		pm.Complete(syntaxkind.PARAM_LIST)
		p.bump() // =>
		p.parseArrowBody()
		return m.Complete(syntaxkind.ARROW_EXPR), true
	}

	lparenAt := 0
	if async {
		lparenAt = 1
	}
	if p.nth(lparenAt).Kind == syntaxkind.LPAREN && p.arrowParamsFollowedByArrow(lparenAt) {
		m := p.Start()
		if async {
			p.bump()
		}
		p.parseParamList()
		p.expect(syntaxkind.ARROW, "'=>'")
		p.parseArrowBody()
		return m.Complete(syntaxkind.ARROW_EXPR), true
	}
	return CompletedMarker{}, false
}

// arrowParamsFollowedByArrow reports whether the '(' at lookahead offset
// lparenAt is followed, at its matching ')', by '=>' — decided purely by
// bracket-depth lookahead over buffered tokens, never by rewinding the
// tree.
func (p *Parser) arrowParamsFollowedByArrow(lparenAt int) bool {
	depth := 0
	for i := lparenAt; ; i++ {
		k := p.nth(i).Kind
		switch k {
		case syntaxkind.LPAREN:
			depth++
		case syntaxkind.RPAREN:
			depth--
			if depth == 0 {
				return p.nth(i+1).Kind == syntaxkind.ARROW
			}
		case syntaxkind.EOF:
			return false
		}
		if i-lparenAt > 4096 {
			return false
		}
	}
}

func (p *Parser) parseParamList() {
	m := p.Start()
	p.expect(syntaxkind.LPAREN, "'('")
	for !p.at(syntaxkind.RPAREN) && !p.atEOF() {
		p.parseBindingElement()
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RPAREN, "')'")
	m.Complete(syntaxkind.PARAM_LIST)
}

// parseBindingElement parses one parameter/destructuring-binding
// position: an identifier, array/object pattern, optional default, or
// rest element.
func (p *Parser) parseBindingElement() {
	if p.at(syntaxkind.DOTDOTDOT) {
		m := p.Start()
		p.bump()
		p.parseBindingTarget()
		m.Complete(syntaxkind.REST_PATTERN)
		return
	}
	m := p.Start()
	p.parseBindingTarget()
	if p.eat(syntaxkind.EQ) {
		p.parseAssignExpr(false)
		m.Complete(syntaxkind.ASSIGN_PATTERN)
		return
	}
	m.Abandon()
}

func (p *Parser) parseBindingTarget() {
	switch p.current().Kind {
	case syntaxkind.LBRACKET:
		p.parseArrayPattern()
	case syntaxkind.LBRACE:
		p.parseObjectPattern()
	default:
		m := p.Start()
		p.asIdent()
		m.Complete(syntaxkind.NAME)
	}
}

func (p *Parser) parseArrayPattern() {
	m := p.Start()
	p.bump() // [
	for !p.at(syntaxkind.RBRACKET) && !p.atEOF() {
		if p.at(syntaxkind.COMMA) {
			p.bump()
			continue
		}
		p.parseBindingElement()
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RBRACKET, "']'")
	m.Complete(syntaxkind.ARRAY_PATTERN)
}

func (p *Parser) parseObjectPattern() {
	m := p.Start()
	p.bump() // {
	for !p.at(syntaxkind.RBRACE) && !p.atEOF() {
		if p.at(syntaxkind.DOTDOTDOT) {
			sm := p.Start()
			p.bump()
			p.parseBindingTarget()
			sm.Complete(syntaxkind.REST_PATTERN)
		} else {
			pm := p.Start()
			p.asIdent()
			if p.eat(syntaxkind.COLON) {
				p.parseBindingTarget()
			}
			if p.eat(syntaxkind.EQ) {
				p.parseAssignExpr(false)
			}
			pm.Complete(syntaxkind.OBJECT_PROP)
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RBRACE, "'}'")
	m.Complete(syntaxkind.OBJECT_PATTERN)
}

func (p *Parser) parseArrowBody() {
	if p.at(syntaxkind.LBRACE) {
		p.withFunction(false, p.state.inAsync, func() {
			p.parseBlockStmt()
		})
		return
	}
	p.parseAssignExpr(false)
}

func (p *Parser) parseArrayLiteral() CompletedMarker {
	m := p.Start()
	p.bump() // [
	for !p.at(syntaxkind.RBRACKET) && !p.atEOF() {
		if p.at(syntaxkind.COMMA) {
			p.bump() // elision
			continue
		}
		if p.at(syntaxkind.DOTDOTDOT) {
			sm := p.Start()
			p.bump()
			p.parseAssignExpr(false)
			sm.Complete(syntaxkind.SPREAD_ELEMENT)
		} else {
			p.parseAssignExpr(false)
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RBRACKET, "']'")
	return m.Complete(syntaxkind.ARRAY_EXPR)
}

func (p *Parser) parseObjectLiteral() CompletedMarker {
	m := p.Start()
	p.bump() // {
	for !p.at(syntaxkind.RBRACE) && !p.atEOF() {
		p.parseObjectMember()
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RBRACE, "'}'")
	return m.Complete(syntaxkind.OBJECT_EXPR)
}

func (p *Parser) parseObjectMember() {
	m := p.Start()
	if p.at(syntaxkind.DOTDOTDOT) {
		p.bump()
		p.parseAssignExpr(false)
		m.Complete(syntaxkind.SPREAD_ELEMENT)
		return
	}
	isGetSet := (p.at(syntaxkind.GET_KW) || p.at(syntaxkind.SET_KW)) &&
		p.nth(1).Kind != syntaxkind.COLON && p.nth(1).Kind != syntaxkind.COMMA &&
		p.nth(1).Kind != syntaxkind.RBRACE && p.nth(1).Kind != syntaxkind.LPAREN
	async := p.at(syntaxkind.ASYNC_KW) && p.nth(1).Kind != syntaxkind.COLON
	gen := false
	if async {
		p.bump()
	}
	if p.at(syntaxkind.STAR) {
		p.bump()
		gen = true
	}
	if isGetSet {
		p.bump()
	}
	p.parsePropertyName()
	if p.at(syntaxkind.LPAREN) {
		p.withFunction(gen, async, func() {
			p.parseParamList()
			p.parseBlockStmt()
		})
		m.Complete(syntaxkind.METHOD)
		return
	}
	if p.eat(syntaxkind.COLON) {
		p.parseAssignExpr(false)
		m.Complete(syntaxkind.OBJECT_PROP)
		return
	}
	m.Complete(syntaxkind.OBJECT_PROP) // shorthand { x }
}

func (p *Parser) parsePropertyName() {
	switch p.current().Kind {
	case syntaxkind.STRING, syntaxkind.NUMBER:
		p.bump()
	case syntaxkind.LBRACKET:
		p.bump()
		p.parseAssignExpr(false)
		p.expect(syntaxkind.RBRACKET, "']'")
	default:
		p.asIdent()
	}
}

func (p *Parser) parseFunctionExpr() CompletedMarker {
	m := p.Start()
	async := p.eat(syntaxkind.ASYNC_KW)
	p.expect(syntaxkind.FUNCTION_KW, "'function'")
	gen := p.eat(syntaxkind.STAR)
	if p.at(syntaxkind.IDENT) {
		nm := p.Start()
		p.asIdent()
		nm.Complete(syntaxkind.NAME)
	}
	p.withFunction(gen, async, func() {
		p.parseParamList()
		p.parseBlockStmt()
	})
	return m.Complete(syntaxkind.FUNCTION_EXPR)
}

func (p *Parser) parseClassExpr() CompletedMarker {
	m := p.Start()
	p.parseClassTail()
	return m.Complete(syntaxkind.CLASS_EXPR)
}
