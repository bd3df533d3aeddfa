package rules_test

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/lint"
)

func lintWithAllRules(t *testing.T, source string) []string {
	t.Helper()
	res := lint.LintFile(1, source, false, lint.DefaultStore(nil))
	var codes []string
	for _, d := range res.Diagnostics {
		codes = append(codes, d.Code)
	}
	return codes
}

func contains(codes []string, want string) bool {
	for _, c := range codes {
		if c == want {
			return true
		}
	}
	return false
}

func TestNoCondAssignFlagsAssignmentInIfTest(t *testing.T) {
	codes := lintWithAllRules(t, "if (x = 1) {}\n")
	if !contains(codes, "no-cond-assign") {
		t.Errorf("expected no-cond-assign, got %v", codes)
	}
}

func TestNoCondAssignAllowsComparison(t *testing.T) {
	codes := lintWithAllRules(t, "if (x == 1) {}\n")
	if contains(codes, "no-cond-assign") {
		t.Errorf("a comparison should not trigger no-cond-assign, got %v", codes)
	}
}

func TestNoDupeKeysFlagsRepeatedObjectKey(t *testing.T) {
	codes := lintWithAllRules(t, "let o = { a: 1, a: 2 };\n")
	if !contains(codes, "no-dupe-keys") {
		t.Errorf("expected no-dupe-keys, got %v", codes)
	}
}

func TestNoDuplicateCasesFlagsRepeatedCaseTest(t *testing.T) {
	codes := lintWithAllRules(t, "switch (x) {\n case 1: break;\n case 1: break;\n}\n")
	if !contains(codes, "no-duplicate-cases") {
		t.Errorf("expected no-duplicate-cases, got %v", codes)
	}
}

func TestValidTypeofFlagsInvalidComparisonString(t *testing.T) {
	codes := lintWithAllRules(t, "if (typeof x === \"strnig\") {}\n")
	if !contains(codes, "valid-typeof") {
		t.Errorf("expected valid-typeof, got %v", codes)
	}
}

func TestValidTypeofAllowsKnownResult(t *testing.T) {
	codes := lintWithAllRules(t, "if (typeof x === \"string\") {}\n")
	if contains(codes, "valid-typeof") {
		t.Errorf("a real typeof result should not trigger valid-typeof, got %v", codes)
	}
}

func TestNoSelfAssignFlagsIdenticalSides(t *testing.T) {
	codes := lintWithAllRules(t, "x = x;\n")
	if !contains(codes, "no-self-assign") {
		t.Errorf("expected no-self-assign, got %v", codes)
	}
}

func TestForDirectionFlagsMismatchedUpdate(t *testing.T) {
	codes := lintWithAllRules(t, "for (let i = 0; i < 10; i--) {}\n")
	if !contains(codes, "for-direction") {
		t.Errorf("expected for-direction, got %v", codes)
	}
}

func TestForDirectionAllowsMatchingUpdate(t *testing.T) {
	codes := lintWithAllRules(t, "for (let i = 0; i < 10; i++) {}\n")
	if contains(codes, "for-direction") {
		t.Errorf("a correctly-directed loop should not trigger for-direction, got %v", codes)
	}
}

func TestNoExtraSemiRunsUnderDefaultStore(t *testing.T) {
	// Builtins() enables every registered rule regardless of Recommended(),
	// so a non-recommended rule like no-extra-semi still fires here.
	codes := lintWithAllRules(t, ";\nlet x = 1;\n")
	if !contains(codes, "no-extra-semi") {
		t.Errorf("expected no-extra-semi under DefaultStore, got %v", codes)
	}
}

func TestNoExtraSemiRunsUnderRecommendedFilterOnly(t *testing.T) {
	res := lint.LintFile(1, ";\nlet x = 1;\n", false, lint.RecommendedStore(nil))
	for _, d := range res.Diagnostics {
		if d.Code == "no-extra-semi" {
			t.Error("no-extra-semi is not Recommended, RecommendedStore should not run it")
		}
	}
}

func TestNoEmptyAllowsEmptyCatchBlock(t *testing.T) {
	codes := lintWithAllRules(t, "try { f(); } catch (e) {}\n")
	if contains(codes, "no-empty") {
		t.Errorf("an empty catch block is idiomatic and should not trigger no-empty, got %v", codes)
	}
}

func TestNoDuplicateImportsFlagsRepeatedSpecifier(t *testing.T) {
	res := lint.LintFile(1, "import { a } from \"mod\";\nimport { b } from \"mod\";\n", true, lint.DefaultStore(nil))
	found := false
	for _, d := range res.Diagnostics {
		if d.Code == "no-duplicate-imports" {
			found = true
		}
	}
	if !found {
		t.Error("expected no-duplicate-imports across two import declarations of the same specifier")
	}
}

func TestRulesAreRegisteredUnderDistinctNames(t *testing.T) {
	all := lint.DefaultStore(nil)
	seen := map[string]bool{}
	for _, r := range all.Rules() {
		if seen[r.Name()] {
			t.Errorf("duplicate rule name %q", r.Name())
		}
		seen[r.Name()] = true
	}
	if len(seen) != 35 {
		t.Errorf("len(seen) = %d, want 35 registered rules", len(seen))
	}
}
