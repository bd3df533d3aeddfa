package incremental

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/parser"
)

func parseGreen(t *testing.T, source string) *green.Node {
	t.Helper()
	p := parser.New(source, 0)
	root := p.ParseScript()
	if len(p.Diagnostics()) != 0 {
		t.Fatalf("unexpected diagnostics parsing fixture: %v", p.Diagnostics())
	}
	return root
}

func TestReparseInsideFunctionBodyReusesSurroundingTree(t *testing.T) {
	source := "function f() {\n  let x = 1;\n}\nlet untouched = 99;"
	oldRoot := parseGreen(t, source)

	start := len("function f() {\n  let x = ")
	end := start + len("1")
	edit := Edit{Start: start, End: end, Text: "2"}

	newSource, result := Reparse(oldRoot, source, edit, false)
	wantSource := "function f() {\n  let x = 2;\n}\nlet untouched = 99;"
	if newSource != wantSource {
		t.Fatalf("newSource = %q, want %q", newSource, wantSource)
	}
	if len(result.Diagnostics) != 0 {
		t.Errorf("unexpected diagnostics from the restarted reparse: %v", result.Diagnostics)
	}
	if got := green.Text(result.Root); got != wantSource {
		t.Errorf("Text(result.Root) = %q, want %q", got, wantSource)
	}
}

func TestReparseBeforeAnyStatementTargetsTheScriptRoot(t *testing.T) {
	source := "let x = 1;"
	oldRoot := parseGreen(t, source)

	// An edit at byte 0 lies inside the VAR_STMT's range, but VAR_STMT is
	// not restartable, so the smallest restartable node covering it is the
	// SCRIPT root itself —
	// SCRIPT is always in restartableKinds, so this still goes through the
	// splice path rather than FullReparse.
	edit := Edit{Start: 0, End: 0, Text: "/* leading */"}
	newSource, result := Reparse(oldRoot, source, edit, false)
	want := "/* leading */let x = 1;"
	if newSource != want {
		t.Fatalf("newSource = %q, want %q", newSource, want)
	}
	if result.Root == nil {
		t.Fatal("result.Root is nil")
	}
	if got := green.Text(result.Root); got != want {
		t.Errorf("Text(result.Root) = %q, want %q", got, want)
	}
}

func TestReparseRebasesDiagnosticSpans(t *testing.T) {
	source := "function f() {\n  return 1 2;\n}"
	oldRoot := parser.New(source, 0).ParseScript()

	start := len("function f() {\n  return 1 ")
	edit := Edit{Start: start, End: start, Text: "x"}
	_, result := Reparse(oldRoot, source, edit, false)
	if len(result.Diagnostics) == 0 {
		t.Fatal("expected the malformed 'return 1 2' body to still report a diagnostic after reparse")
	}
	for _, d := range result.Diagnostics {
		for _, c := range d.Children {
			if c.Span.Start < 0 {
				t.Errorf("rebased span has negative start: %+v", c.Span)
			}
		}
	}
}
