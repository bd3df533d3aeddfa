package parser

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

func parseScript(t *testing.T, source string) (*red.Node, *Parser) {
	t.Helper()
	p := New(source, 0)
	root := p.ParseScript()
	if got := green.Text(root); got != source {
		t.Fatalf("parse is not lossless: got %q, want %q", got, source)
	}
	return red.NewRoot(root), p
}

func TestParseVarStmtShape(t *testing.T) {
	root, p := parseScript(t, "let x = 1;")
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", p.Diagnostics())
	}
	stmt := root.FirstChild()
	if stmt == nil || stmt.Kind() != syntaxkind.VAR_STMT {
		t.Fatalf("first statement kind = %v, want VAR_STMT", stmtKindOrNil(stmt))
	}
	if !stmt.StructuralLossyTokenEq([]string{"let", "x", "=", "1", ";"}) {
		t.Error("VAR_STMT token sequence mismatch")
	}
}

func TestParseIfElseShape(t *testing.T) {
	root, p := parseScript(t, "if (a) { b(); } else { c(); }")
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", p.Diagnostics())
	}
	stmt := root.FirstChild()
	if stmt == nil || stmt.Kind() != syntaxkind.IF_STMT {
		t.Fatalf("first statement kind = %v, want IF_STMT", stmtKindOrNil(stmt))
	}
	children := stmt.Children()
	if len(children) != 3 {
		t.Fatalf("IF_STMT has %d child nodes, want 3 (condition, then-block and else-block)", len(children))
	}
	if children[1].Kind() != syntaxkind.BLOCK_STMT || children[2].Kind() != syntaxkind.BLOCK_STMT {
		t.Errorf("IF_STMT block children = %v, %v, want two BLOCK_STMT", children[1].Kind(), children[2].Kind())
	}
}

func TestASIInsertsBeforeClosingBrace(t *testing.T) {
	root, p := parseScript(t, "function f() {\n  return 1\n}")
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("ASI should not report a missing-semicolon error here: %v", p.Diagnostics())
	}
	fn := root.FirstChild()
	if fn == nil || fn.Kind() != syntaxkind.FUNCTION_DECL {
		t.Fatalf("first statement kind = %v, want FUNCTION_DECL", stmtKindOrNil(fn))
	}
}

func TestMissingSemicolonWithoutLineBreakIsAnError(t *testing.T) {
	_, p := parseScript(t, "let x = 1 let y = 2;")
	if len(p.Diagnostics()) == 0 {
		t.Error("expected a parse error for the missing ';' with no line break before the next statement")
	}
}

func TestReturnOutsideFunctionIsAnError(t *testing.T) {
	_, p := parseScript(t, "return 1;")
	found := false
	for _, d := range p.Diagnostics() {
		if d.Title == "'return' outside of a function" {
			found = true
		}
	}
	if !found {
		t.Errorf("expected a 'return outside of a function' diagnostic, got %v", p.Diagnostics())
	}
}

func TestForOfLoopShape(t *testing.T) {
	root, p := parseScript(t, "for (const x of xs) { log(x); }")
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics: %v", p.Diagnostics())
	}
	stmt := root.FirstChild()
	if stmt == nil || stmt.Kind() != syntaxkind.FOR_OF_STMT {
		t.Fatalf("first statement kind = %v, want FOR_OF_STMT", stmtKindOrNil(stmt))
	}
}

func TestModuleAllowsImportAndIsStrict(t *testing.T) {
	p := New(`import { a } from "mod"; with (a) {}`, 0)
	root := p.ParseModule()
	if green.Text(root) != `import { a } from "mod"; with (a) {}` {
		t.Fatal("module parse is not lossless")
	}
	foundStrictError := false
	for _, d := range p.Diagnostics() {
		if d.Title == "'with' statements are not allowed in strict mode" {
			foundStrictError = true
		}
	}
	if !foundStrictError {
		t.Error("a module should always be strict, so 'with' should be rejected")
	}
}

func TestMalformedStatementRecoversAndContinues(t *testing.T) {
	root, p := parseScript(t, "let x = ;\nlet y = 2;")
	if len(p.Diagnostics()) == 0 {
		t.Fatal("expected at least one diagnostic for the malformed declarator")
	}
	children := root.Children()
	if len(children) < 2 {
		t.Fatalf("expected parsing to recover and continue past the malformed statement, got %d top-level statements", len(children))
	}
	last := children[len(children)-1]
	if last.Kind() != syntaxkind.VAR_STMT || !last.StructuralLossyTokenEq([]string{"let", "y", "=", "2", ";"}) {
		t.Error("parser should have recovered in time to parse the second, well-formed statement")
	}
}

func TestStrayClosingParenAsAStatementTerminates(t *testing.T) {
	// A ')' at statement position can't start any expression, and is
	// itself a member of exprRecoverySet — parsePrimaryExpr's error arm
	// must still consume it so this doesn't stall parseRoot's loop at the
	// same position forever.
	root, p := parseScript(t, ")")
	if len(p.Diagnostics()) == 0 {
		t.Fatal("expected a diagnostic for the stray ')'")
	}
	children := root.Children()
	if len(children) != 1 || children[0].Kind() != syntaxkind.EXPR_STMT {
		t.Fatalf("top-level statements = %v, want exactly one EXPR_STMT wrapping an ERROR node", children)
	}
}

func stmtKindOrNil(n *red.Node) syntaxkind.Kind {
	if n == nil {
		return syntaxkind.ERROR
	}
	return n.Kind()
}
