package parser

import "github.com/aledsdavies/cstlint/pkg/syntaxkind"

func (p *Parser) parseFunctionDecl(async bool) {
	m := p.Start()
	if async {
		p.bump() // async
	}
	p.expect(syntaxkind.FUNCTION_KW, "'function'")
	gen := p.eat(syntaxkind.STAR)
	nm := p.Start()
	p.asIdent()
	nm.Complete(syntaxkind.NAME)
	p.withFunction(gen, async, func() {
		p.parseParamList()
		p.parseBlockStmt()
	})
	m.Complete(syntaxkind.FUNCTION_DECL)
}

func (p *Parser) parseClassDecl() {
	m := p.Start()
	p.parseClassTail()
	m.Complete(syntaxkind.CLASS_DECL)
}

// parseClassTail parses everything after the 'class' keyword is
// recognized: optional name, optional 'extends' clause, and the member
// body. Shared by class declarations and class expressions.
func (p *Parser) parseClassTail() {
	p.bump() // class
	savedStrict := p.state.strict
	p.state.strict = true
	if p.at(syntaxkind.IDENT) {
		nm := p.Start()
		p.asIdent()
		nm.Complete(syntaxkind.NAME)
	}
	if p.eat(syntaxkind.EXTENDS_KW) {
		p.parseLeftHandSideExpr()
	}
	p.parseClassBody()
	p.state.strict = savedStrict
}

func (p *Parser) parseClassBody() {
	m := p.Start()
	p.expect(syntaxkind.LBRACE, "'{'")
	for !p.at(syntaxkind.RBRACE) && !p.atEOF() {
		if p.eat(syntaxkind.SEMICOLON) {
			continue
		}
		p.parseClassMember()
	}
	p.expect(syntaxkind.RBRACE, "'}'")
	m.Complete(syntaxkind.CLASS_BODY)
}

func (p *Parser) parseClassMember() {
	m := p.Start()
	static := p.at(syntaxkind.STATIC_KW) && p.nth(1).Kind != syntaxkind.LPAREN && p.nth(1).Kind != syntaxkind.EQ
	if static {
		p.bump()
	}
	isGetSet := (p.at(syntaxkind.GET_KW) || p.at(syntaxkind.SET_KW)) &&
		p.nth(1).Kind != syntaxkind.LPAREN && p.nth(1).Kind != syntaxkind.EQ && p.nth(1).Kind != syntaxkind.SEMICOLON
	async := p.at(syntaxkind.ASYNC_KW) && p.nth(1).Kind != syntaxkind.LPAREN && p.nth(1).Kind != syntaxkind.EQ && !p.ts.NewlineBeforeCurrent()
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
	// class field
	if p.eat(syntaxkind.EQ) {
		p.parseAssignExpr(false)
	}
	p.consumeSemi()
	m.Complete(syntaxkind.METHOD)
	_ = static
}

// parseImportDecl parses `import ... from "module"`, `import "module"`,
// and the named/namespace/default import-clause forms.
func (p *Parser) parseImportDecl() {
	m := p.Start()
	p.bump() // import
	if p.at(syntaxkind.STRING) {
		p.bump()
		p.consumeSemi()
		m.Complete(syntaxkind.IMPORT_DECL)
		return
	}
	if p.at(syntaxkind.IDENT) {
		nm := p.Start()
		p.asIdent()
		nm.Complete(syntaxkind.NAME)
		p.eat(syntaxkind.COMMA)
	}
	if p.at(syntaxkind.STAR) {
		p.bump()
		p.expect(syntaxkind.AS_KW, "'as'")
		nm := p.Start()
		p.asIdent()
		nm.Complete(syntaxkind.NAME)
	} else if p.at(syntaxkind.LBRACE) {
		p.parseNamedImportsOrExports()
	}
	if p.atContextualKeyword(syntaxkind.FROM_KW) {
		p.bump()
		p.expect(syntaxkind.STRING, "module specifier")
	}
	p.consumeSemi()
	m.Complete(syntaxkind.IMPORT_DECL)
}

func (p *Parser) parseNamedImportsOrExports() {
	p.bump() // {
	for !p.at(syntaxkind.RBRACE) && !p.atEOF() {
		p.asIdent()
		if p.atContextualKeyword(syntaxkind.AS_KW) {
			p.bump()
			p.asIdent()
		}
		if !p.eat(syntaxkind.COMMA) {
			break
		}
	}
	p.expect(syntaxkind.RBRACE, "'}'")
}

// parseExportDecl parses every export form calls for: named
// re-exports, `export * from "..."`, `export default ...`, and exporting
// a declaration directly.
func (p *Parser) parseExportDecl() {
	m := p.Start()
	p.bump() // export
	if p.eat(syntaxkind.DEFAULT_KW) {
		switch p.current().Kind {
		case syntaxkind.FUNCTION_KW:
			p.parseFunctionDecl(false)
		case syntaxkind.ASYNC_KW:
			p.parseFunctionDecl(true)
		case syntaxkind.CLASS_KW:
			p.parseClassDecl()
		default:
			p.parseAssignExpr(false)
			p.consumeSemi()
		}
		m.Complete(syntaxkind.EXPORT_DEFAULT_DECL)
		return
	}
	if p.at(syntaxkind.STAR) {
		p.bump()
		if p.atContextualKeyword(syntaxkind.AS_KW) {
			p.bump()
			p.asIdent()
		}
		p.expect(syntaxkind.FROM_KW, "'from'")
		p.expect(syntaxkind.STRING, "module specifier")
		p.consumeSemi()
		m.Complete(syntaxkind.EXPORT_DECL)
		return
	}
	if p.at(syntaxkind.LBRACE) {
		p.parseNamedImportsOrExports()
		if p.atContextualKeyword(syntaxkind.FROM_KW) {
			p.bump()
			p.expect(syntaxkind.STRING, "module specifier")
		}
		p.consumeSemi()
		m.Complete(syntaxkind.EXPORT_DECL)
		return
	}
	p.parseStatement()
	m.Complete(syntaxkind.EXPORT_DECL)
}
