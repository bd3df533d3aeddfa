package green

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

func tok(k syntaxkind.Kind, text string) lexer.Token {
	return lexer.Token{Kind: k, Text: text, ByteLen: uint32(len(text))}
}

func TestBuilderRoundTripsSourceText(t *testing.T) {
	b := NewBuilder()
	b.StartNode()
	b.Token(tok(syntaxkind.LET_KW, "let"))
	b.Token(tok(syntaxkind.WHITESPACE, " "))
	b.Token(tok(syntaxkind.IDENT, "x"))
	root := b.FinishNode(syntaxkind.VAR_STMT)
	if root.Kind() != syntaxkind.VAR_STMT {
		t.Fatalf("root kind = %v, want VAR_STMT", root.Kind())
	}
	if got := Text(root); got != "let x" {
		t.Errorf("Text(root) = %q, want %q", got, "let x")
	}
	if root.TextLen() != len("let x") {
		t.Errorf("TextLen() = %d, want %d", root.TextLen(), len("let x"))
	}
}

func TestStartNodeAtWrapsRetroactively(t *testing.T) {
	b := NewBuilder()
	b.StartNode()
	b.Token(tok(syntaxkind.IDENT, "a"))
	cp := b.Checkpoint()
	b.Token(tok(syntaxkind.COMMA, ","))
	b.Token(tok(syntaxkind.IDENT, "b"))
	// Wrap the comma and "b" into a nested node, leaving "a" as a sibling
	// in the outer frame — mirrors retroactively turning "(a, b)" into a
	// parameter list once the parser sees a following "=>".
	b.StartNodeAt(cp)
	inner := b.FinishNode(syntaxkind.PARAM_LIST)
	root := b.FinishNode(syntaxkind.ARROW_EXPR)

	if len(root.Children()) != 2 {
		t.Fatalf("root has %d children, want 2 (the ident and the wrapped node)", len(root.Children()))
	}
	if root.Children()[1] != Element(inner) {
		t.Error("second child should be the node StartNodeAt produced")
	}
	if got := Text(root); got != "a,b" {
		t.Errorf("Text(root) = %q, want %q", got, "a,b")
	}
}

func TestAbandonSplicesChildrenUnwrapped(t *testing.T) {
	b := NewBuilder()
	b.StartNode()
	b.Token(tok(syntaxkind.IDENT, "x"))
	b.StartNode()
	b.Token(tok(syntaxkind.IDENT, "speculative"))
	b.Abandon()
	root := b.FinishNode(syntaxkind.EXPR_STMT)
	if len(root.Children()) != 2 {
		t.Fatalf("abandoned frame's children should splice into the parent unwrapped, got %d children", len(root.Children()))
	}
}

func TestNewNodeCachesTextLen(t *testing.T) {
	n := NewNode(syntaxkind.BLOCK_STMT, []Element{
		NewToken(tok(syntaxkind.LBRACE, "{")),
		NewToken(tok(syntaxkind.RBRACE, "}")),
	})
	if n.TextLen() != 2 {
		t.Errorf("TextLen() = %d, want 2", n.TextLen())
	}
}
