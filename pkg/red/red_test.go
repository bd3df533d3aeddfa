package red

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

func gtok(k syntaxkind.Kind, text string) *green.Token {
	return green.NewToken(lexer.Token{Kind: k, Text: text, ByteLen: uint32(len(text))})
}

// buildScript builds a SCRIPT root wrapping an EXPR_STMT "foo(a, b)"
// ident application: IDENT LPAREN IDENT COMMA WHITESPACE IDENT RPAREN.
func buildScript(t *testing.T) *green.Node {
	t.Helper()
	call := green.NewNode(syntaxkind.EXPR_STMT, []green.Element{
		gtok(syntaxkind.IDENT, "foo"),
		gtok(syntaxkind.LPAREN, "("),
		gtok(syntaxkind.IDENT, "a"),
		gtok(syntaxkind.COMMA, ","),
		gtok(syntaxkind.WHITESPACE, " "),
		gtok(syntaxkind.IDENT, "b"),
		gtok(syntaxkind.RPAREN, ")"),
	})
	return green.NewNode(syntaxkind.SCRIPT, []green.Element{call})
}

func TestRootTextRangeSpansWholeSource(t *testing.T) {
	root := NewRoot(buildScript(t))
	want := len("foo(a, b)")
	if got := root.TextRange(); got.Start != 0 || got.End != want {
		t.Errorf("TextRange() = %+v, want {0 %d}", got, want)
	}
}

func TestChildrenAndParentChain(t *testing.T) {
	root := NewRoot(buildScript(t))
	children := root.Children()
	if len(children) != 1 {
		t.Fatalf("root has %d children, want 1", len(children))
	}
	call := children[0]
	if call.Kind() != syntaxkind.EXPR_STMT {
		t.Errorf("call.Kind() = %v, want EXPR_STMT", call.Kind())
	}
	if call.Parent() != root {
		t.Error("call.Parent() should be the root cursor")
	}
	if call.IndexInParent() != 0 {
		t.Errorf("call.IndexInParent() = %d, want 0", call.IndexInParent())
	}
	if root.IndexInParent() != -1 {
		t.Errorf("root.IndexInParent() = %d, want -1", root.IndexInParent())
	}
}

func TestFirstLastTokenAndOffsets(t *testing.T) {
	root := NewRoot(buildScript(t))
	call := root.Children()[0]

	first := call.FirstToken()
	if first == nil || first.Text() != "foo" {
		t.Fatalf("FirstToken() = %v, want \"foo\"", first)
	}
	if got := first.TextRange(); got.Start != 0 || got.End != 3 {
		t.Errorf("FirstToken().TextRange() = %+v, want {0 3}", got)
	}

	last := call.LastToken()
	if last == nil || last.Text() != ")" {
		t.Fatalf("LastToken() = %v, want \")\"", last)
	}
	wantStart := len("foo(a, b")
	if got := last.TextRange(); got.Start != wantStart {
		t.Errorf("LastToken().TextRange().Start = %d, want %d", got.Start, wantStart)
	}
}

func TestStructuralLossyTokenEq(t *testing.T) {
	root := NewRoot(buildScript(t))
	call := root.Children()[0]
	if !call.StructuralLossyTokenEq([]string{"foo", "(", "a", ",", "b", ")"}) {
		t.Error("StructuralLossyTokenEq should ignore the WHITESPACE trivia token")
	}
	if call.StructuralLossyTokenEq([]string{"foo", "(", "a", ")"}) {
		t.Error("StructuralLossyTokenEq should fail on a mismatched token list")
	}
}

func TestCoveringElementNarrowsToSmallestContainer(t *testing.T) {
	root := NewRoot(buildScript(t))
	// Range over just "a", inside the call's arguments.
	rng := TextRange{Start: 4, End: 5}
	covering := root.CoveringElement(rng)
	if covering == nil {
		t.Fatal("CoveringElement returned nil")
	}
	if covering.Kind() != syntaxkind.EXPR_STMT {
		t.Errorf("CoveringElement(%v).Kind() = %v, want EXPR_STMT (no finer node wraps a bare ident token)", rng, covering.Kind())
	}
}

func TestCoveringElementOutOfRangeReturnsNil(t *testing.T) {
	root := NewRoot(buildScript(t))
	rng := TextRange{Start: 0, End: 1000}
	if got := root.CoveringElement(rng); got != nil {
		t.Errorf("CoveringElement(out of range) = %v, want nil", got)
	}
}

func TestTextRangeContainsAndOverlaps(t *testing.T) {
	outer := TextRange{Start: 0, End: 10}
	inner := TextRange{Start: 2, End: 5}
	disjoint := TextRange{Start: 20, End: 30}
	touching := TextRange{Start: 9, End: 15}

	if !outer.Contains(inner) {
		t.Error("outer should contain inner")
	}
	if outer.Contains(disjoint) {
		t.Error("outer should not contain disjoint")
	}
	if outer.Overlaps(disjoint) {
		t.Error("outer should not overlap disjoint")
	}
	if !outer.Overlaps(touching) {
		t.Error("outer should overlap a range sharing byte 9")
	}
}
