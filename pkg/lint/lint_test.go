package lint

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/rulengine"
)

func TestLintFileFindsRuleViolations(t *testing.T) {
	source := "function f() {\n  debugger;\n  if (true) {}\n}\n"
	store := DefaultStore(nil)
	res := LintFile(1, source, false, store)

	found := map[string]bool{}
	for _, d := range res.Diagnostics {
		found[d.Code] = true
	}
	if !found["no-debugger"] {
		t.Error("expected a no-debugger diagnostic")
	}
	if !found["no-empty"] {
		t.Error("expected a no-empty diagnostic")
	}
}

func TestLintFileHonorsDirectiveSuppression(t *testing.T) {
	source := "function f() {\n  // cstlint-disable no-debugger\n  debugger;\n}\n"
	store := DefaultStore(nil)
	res := LintFile(1, source, false, store)
	for _, d := range res.Diagnostics {
		if d.Code == "no-debugger" {
			t.Error("no-debugger should be suppressed by the directive comment")
		}
	}
}

func TestLintFileAppliesConfigOverrides(t *testing.T) {
	disabled := map[string]rulengine.Config{"no-debugger": {Enabled: false}}
	store := DefaultStore(disabled)
	res := LintFile(1, "debugger;\n", false, store)
	for _, d := range res.Diagnostics {
		if d.Code == "no-debugger" {
			t.Error("no-debugger should be disabled by the override")
		}
	}
}

func TestHighestSeverityReportsWorst(t *testing.T) {
	res := LintFile(1, "let x = ;\n", false, DefaultStore(nil))
	sev, ok := res.HighestSeverity()
	if !ok {
		t.Fatal("expected at least one diagnostic from the malformed source")
	}
	if sev.String() != "error" {
		t.Errorf("HighestSeverity() = %v, want error (a parse failure)", sev)
	}
}

func TestHighestSeverityNoDiagnosticsReturnsFalse(t *testing.T) {
	res := LintFile(1, "let x = 1;\n", false, rulengine.NewStore())
	if _, ok := res.HighestSeverity(); ok {
		t.Error("HighestSeverity() should report ok=false with no diagnostics")
	}
}

func TestApplyFixesLeavesDebuggerStatementWithoutAFix(t *testing.T) {
	res := LintFile(1, "debugger;\n", false, DefaultStore(nil))
	fixed, _ := res.ApplyFixes()
	if fixed != "debugger;\n" {
		t.Errorf("ApplyFixes() = %q, want the source unchanged: no-debugger reports but has no autofix", fixed)
	}
}

func TestDetectModule(t *testing.T) {
	cases := map[string]bool{
		"import { a } from \"b\";\nlet x = 1;": true,
		"export const x = 1;": true,
		"let x = 1;\nimport { a } from \"b\";": true,
		"let x = 1;": false,
	}
	for src, want := range cases {
		if got := DetectModule(src); got != want {
			t.Errorf("DetectModule(%q) = %v, want %v", src, got, want)
		}
	}
}

func TestLineIndexLineOf(t *testing.T) {
	li := NewLineIndex("aaa\nbbb\nccc")
	cases := []struct {
		offset, want int
	}{
		{0, 1}, {3, 1}, {4, 2}, {7, 2}, {8, 3}, {10, 3},
	}
	for _, c := range cases {
		if got := li.LineOf(c.offset); got != c.want {
			t.Errorf("LineOf(%d) = %d, want %d", c.offset, got, c.want)
		}
	}
}
