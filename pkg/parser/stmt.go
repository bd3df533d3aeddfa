package parser

import "github.com/aledsdavies/cstlint/pkg/syntaxkind"

// parseStatementOrModuleItem dispatches to the statement/declaration/
// module-item grammar at the root and inside blocks.
func (p *Parser) parseStatementOrModuleItem() {
	switch p.current().Kind {
	case syntaxkind.IMPORT_KW:
		if p.state.isModule {
			p.parseImportDecl()
			return
		}
	case syntaxkind.EXPORT_KW:
		if p.state.isModule {
			p.parseExportDecl()
			return
		}
	}
	p.parseStatement()
}

func (p *Parser) parseStatement() {
	switch p.current().Kind {
	case syntaxkind.LBRACE:
		p.parseBlockStmt()
	case syntaxkind.VAR_KW, syntaxkind.LET_KW, syntaxkind.CONST_KW:
		p.parseVarStmt()
	case syntaxkind.FUNCTION_KW:
		p.parseFunctionDecl(false)
	case syntaxkind.ASYNC_KW:
		if p.nth(1).Kind == syntaxkind.FUNCTION_KW && !p.ts.NewlineBeforeCurrent() {
			p.parseFunctionDecl(true)
			return
		}
		p.parseExprStmt()
	case syntaxkind.CLASS_KW:
		p.parseClassDecl()
	case syntaxkind.IF_KW:
		p.parseIfStmt()
	case syntaxkind.FOR_KW:
		p.parseForStmt()
	case syntaxkind.WHILE_KW:
		p.parseWhileStmt()
	case syntaxkind.DO_KW:
		p.parseDoWhileStmt()
	case syntaxkind.SWITCH_KW:
		p.parseSwitchStmt()
	case syntaxkind.TRY_KW:
		p.parseTryStmt()
	case syntaxkind.THROW_KW:
		p.parseThrowStmt()
	case syntaxkind.RETURN_KW:
		p.parseReturnStmt()
	case syntaxkind.BREAK_KW:
		p.parseBreakStmt()
	case syntaxkind.CONTINUE_KW:
		p.parseContinueStmt()
	case syntaxkind.WITH_KW:
		p.parseWithStmt()
	case syntaxkind.DEBUGGER_KW:
		p.parseDebuggerStmt()
	case syntaxkind.SEMICOLON:
		m := p.Start()
		p.bump()
		m.Complete(syntaxkind.EMPTY_STMT)
	default:
		if p.at(syntaxkind.IDENT) && p.nth(1).Kind == syntaxkind.COLON {
			p.parseLabelledStmt()
			return
		}
		p.parseExprStmt()
	}
}

func (p *Parser) parseBlockStmt() {
	m := p.Start()
	p.expect(syntaxkind.LBRACE, "'{'")
	for !p.at(syntaxkind.RBRACE) && !p.atEOF() {
		mark := p.bumps
		p.parseStatementOrModuleItem()
		if p.bumps == mark {
			p.forceProgress()
		}
	}
	p.expect(syntaxkind.RBRACE, "'}'")
	m.Complete(syntaxkind.BLOCK_STMT)
}

func (p *Parser) parseVarStmt() {
	m := p.Start()
	p.bump() // var/let/const
	for {
		p.parseDeclarator()
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.consumeSemi()
	m.Complete(syntaxkind.VAR_STMT)
}

func (p *Parser) parseDeclarator() {
	m := p.Start()
	p.parseBindingTarget()
	if p.eat(syntaxkind.EQ) {
		p.parseAssignExpr(false)
	}
	m.Complete(syntaxkind.DECLARATOR)
}

func (p *Parser) parseExprStmt() {
	m := p.Start()
	p.parseExprSeq(false)
	p.consumeSemi()
	m.Complete(syntaxkind.EXPR_STMT)
}

func (p *Parser) parseIfStmt() {
	m := p.Start()
	p.bump() // if
	p.expect(syntaxkind.LPAREN, "'('")
	p.parseExprSeq(false)
	p.expect(syntaxkind.RPAREN, "')'")
	p.parseStatement()
	if p.eat(syntaxkind.ELSE_KW) {
		p.parseStatement()
	}
	m.Complete(syntaxkind.IF_STMT)
}

// parseForStmt covers all four for-head shapes — classic C-style,
// for-in, for-of, and for-await-of — distinguishing them by scanning the
// header with "in"/"of" disallowed as binary operators until a top-level
// ';' is seen.
func (p *Parser) parseForStmt() {
	m := p.Start()
	p.bump() // for
	p.eat(syntaxkind.AWAIT_KW) // for await (...)
	p.expect(syntaxkind.LPAREN, "'('")

	hasInit := !p.at(syntaxkind.SEMICOLON)
	if hasInit {
		if p.at(syntaxkind.VAR_KW) || p.at(syntaxkind.LET_KW) || p.at(syntaxkind.CONST_KW) {
			dm := p.Start()
			p.bump()
			p.parseDeclarator()
			if p.at(syntaxkind.IN_KW) {
				p.bump()
				dm.Complete(syntaxkind.VAR_STMT)
				p.parseExprSeq(false)
				p.expect(syntaxkind.RPAREN, "')'")
				p.withLoop(p.parseStatement)
				m.Complete(syntaxkind.FOR_IN_STMT)
				return
			}
			if p.atContextualKeyword(syntaxkind.OF_KW) {
				p.bump()
				dm.Complete(syntaxkind.VAR_STMT)
				p.parseAssignExpr(false)
				p.expect(syntaxkind.RPAREN, "')'")
				p.withLoop(p.parseStatement)
				m.Complete(syntaxkind.FOR_OF_STMT)
				return
			}
			for p.eat(syntaxkind.COMMA) {
				p.parseDeclarator()
			}
			dm.Complete(syntaxkind.VAR_STMT)
		} else {
			em := p.Start()
			p.parseExprSeq(true)
			if p.at(syntaxkind.IN_KW) {
				p.bump()
				em.Abandon()
				p.parseExprSeq(false)
				p.expect(syntaxkind.RPAREN, "')'")
				p.withLoop(p.parseStatement)
				m.Complete(syntaxkind.FOR_IN_STMT)
				return
			}
			if p.atContextualKeyword(syntaxkind.OF_KW) {
				p.bump()
				em.Abandon()
				p.parseAssignExpr(false)
				p.expect(syntaxkind.RPAREN, "')'")
				p.withLoop(p.parseStatement)
				m.Complete(syntaxkind.FOR_OF_STMT)
				return
			}
			em.Complete(syntaxkind.EXPR_STMT)
		}
	}
	p.expect(syntaxkind.SEMICOLON, "';'")
	if !p.at(syntaxkind.SEMICOLON) {
		p.parseExprSeq(false)
	}
	p.expect(syntaxkind.SEMICOLON, "';'")
	if !p.at(syntaxkind.RPAREN) {
		p.parseExprSeq(false)
	}
	p.expect(syntaxkind.RPAREN, "')'")
	p.withLoop(p.parseStatement)
	m.Complete(syntaxkind.FOR_STMT)
}

func (p *Parser) parseWhileStmt() {
	m := p.Start()
	p.bump()
	p.expect(syntaxkind.LPAREN, "'('")
	p.parseExprSeq(false)
	p.expect(syntaxkind.RPAREN, "')'")
	p.withLoop(p.parseStatement)
	m.Complete(syntaxkind.WHILE_STMT)
}

func (p *Parser) parseDoWhileStmt() {
	m := p.Start()
	p.bump() // do
	p.withLoop(p.parseStatement)
	p.expect(syntaxkind.WHILE_KW, "'while'")
	p.expect(syntaxkind.LPAREN, "'('")
	p.parseExprSeq(false)
	p.expect(syntaxkind.RPAREN, "')'")
	p.eat(syntaxkind.SEMICOLON)
	m.Complete(syntaxkind.DO_WHILE_STMT)
}

func (p *Parser) parseSwitchStmt() {
	m := p.Start()
	p.bump()
	p.expect(syntaxkind.LPAREN, "'('")
	p.parseExprSeq(false)
	p.expect(syntaxkind.RPAREN, "')'")
	p.expect(syntaxkind.LBRACE, "'{'")
	p.withSwitch(func() {
		seenDefault := false
		for !p.at(syntaxkind.RBRACE) && !p.atEOF() {
			cm := p.Start()
			if p.eat(syntaxkind.CASE_KW) {
				p.parseExprSeq(false)
			} else {
				p.expect(syntaxkind.DEFAULT_KW, "'default'")
				if seenDefault {
					p.errorHere("multiple default clauses in switch")
				}
				seenDefault = true
			}
			p.expect(syntaxkind.COLON, "':'")
			for !p.at(syntaxkind.CASE_KW) && !p.at(syntaxkind.DEFAULT_KW) &&
				!p.at(syntaxkind.RBRACE) && !p.atEOF() {
				p.parseStatementOrModuleItem()
			}
			cm.Complete(syntaxkind.SWITCH_CASE)
		}
	})
	p.expect(syntaxkind.RBRACE, "'}'")
	m.Complete(syntaxkind.SWITCH_STMT)
}

func (p *Parser) parseTryStmt() {
	m := p.Start()
	p.bump() // try
	p.parseBlockStmt()
	if p.eat(syntaxkind.CATCH_KW) {
		cm := p.Start()
		if p.eat(syntaxkind.LPAREN) {
			p.parseBindingTarget()
			p.expect(syntaxkind.RPAREN, "')'")
		}
		p.parseBlockStmt()
		cm.Complete(syntaxkind.CATCH_CLAUSE)
	}
	if p.eat(syntaxkind.FINALLY_KW) {
		p.parseBlockStmt()
	}
	m.Complete(syntaxkind.TRY_STMT)
}

func (p *Parser) parseThrowStmt() {
	m := p.Start()
	p.bump()
	if p.ts.NewlineBeforeCurrent() {
		p.errorHere("no line break allowed before throw argument")
	}
	p.parseExprSeq(false)
	p.consumeSemi()
	m.Complete(syntaxkind.THROW_STMT)
}

func (p *Parser) parseReturnStmt() {
	m := p.Start()
	p.bump()
	if !p.state.inFunction {
		p.errorHere("'return' outside of a function")
	}
	if !p.atExprEnd() {
		p.parseExprSeq(false)
	}
	p.consumeSemi()
	m.Complete(syntaxkind.RETURN_STMT)
}

func (p *Parser) parseBreakStmt() {
	m := p.Start()
	p.bump()
	if p.at(syntaxkind.IDENT) && !p.ts.NewlineBeforeCurrent() {
		p.asIdent()
	} else if !p.state.breakAllowed {
		p.errorHere("illegal break statement")
	}
	p.consumeSemi()
	m.Complete(syntaxkind.BREAK_STMT)
}

func (p *Parser) parseContinueStmt() {
	m := p.Start()
	p.bump()
	if p.at(syntaxkind.IDENT) && !p.ts.NewlineBeforeCurrent() {
		p.asIdent()
	} else if !p.state.continueAllowed {
		p.errorHere("illegal continue statement")
	}
	p.consumeSemi()
	m.Complete(syntaxkind.CONTINUE_STMT)
}

func (p *Parser) parseWithStmt() {
	m := p.Start()
	p.bump()
	p.expect(syntaxkind.LPAREN, "'('")
	p.parseExprSeq(false)
	p.expect(syntaxkind.RPAREN, "')'")
	if p.state.strict {
		p.errorHere("'with' statements are not allowed in strict mode")
	}
	p.parseStatement()
	m.Complete(syntaxkind.WITH_STMT)
}

func (p *Parser) parseDebuggerStmt() {
	m := p.Start()
	p.bump()
	p.consumeSemi()
	m.Complete(syntaxkind.DEBUGGER_STMT)
}

func (p *Parser) parseLabelledStmt() {
	m := p.Start()
	label := p.asIdent()
	p.bump() // ':'
	saved := p.state.labels
	p.state.labels = append(p.state.labels, label.Text)
	p.parseStatement()
	p.state.labels = saved
	m.Complete(syntaxkind.LABELLED_STMT)
}
