package autofix

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
)

func fixer(indels ...diagnostic.Indel) *diagnostic.Fixer {
	return &diagnostic.Fixer{Indels: indels}
}

func indel(start, end int, insert string) diagnostic.Indel {
	return diagnostic.Indel{Delete: diagnostic.Span{Start: start, End: end}, Insert: insert}
}

func TestApplyNonOverlappingIndels(t *testing.T) {
	source := "let x = 1;"
	fixers := []*diagnostic.Fixer{
		fixer(indel(4, 5, "y")),
		fixer(indel(8, 9, "2")),
	}
	got, n := Apply(source, fixers)
	if n != 2 {
		t.Errorf("applied count = %d, want 2", n)
	}
	if want := "let y = 2;"; got != want {
		t.Errorf("Apply() = %q, want %q", got, want)
	}
}

func TestApplyRejectsBothSidesOfAnOverlap(t *testing.T) {
	source := "abcdef"
	fixers := []*diagnostic.Fixer{
		fixer(indel(0, 3, "XXX")), // group 0: [0,3)
		fixer(indel(2, 5, "YYY")), // group 1: [2,5), overlaps group 0
	}
	got, n := Apply(source, fixers)
	if n != 0 {
		t.Errorf("applied count = %d, want 0 (both overlapping groups rejected)", n)
	}
	if got != source {
		t.Errorf("Apply() = %q, want unchanged %q", got, source)
	}
}

func TestApplyNoIndelsReturnsSourceUnchanged(t *testing.T) {
	got, n := Apply("unchanged", nil)
	if n != 0 || got != "unchanged" {
		t.Errorf("Apply(nil) = (%q, %d), want (\"unchanged\", 0)", got, n)
	}
}

func TestDriverRunsUntilFixedPoint(t *testing.T) {
	calls := 0
	driver := &Driver{
		Lint: func(source string) []*diagnostic.Fixer {
			calls++
			if source == "aaa" {
				return []*diagnostic.Fixer{fixer(indel(0, 1, "b"))}
			}
			if source == "baa" {
				return []*diagnostic.Fixer{fixer(indel(1, 2, "b"))}
			}
			return nil
		},
	}
	final, iterations := driver.Run("aaa")
	if final != "bba" {
		t.Errorf("final = %q, want %q", final, "bba")
	}
	if iterations != 2 {
		t.Errorf("iterations = %d, want 2", iterations)
	}
	if calls != 3 {
		t.Errorf("Lint called %d times, want 3 (two that produced fixes, one that found nothing left)", calls)
	}
}

func TestDriverStopsAtMaxIterations(t *testing.T) {
	driver := &Driver{
		Lint: func(source string) []*diagnostic.Fixer {
			return []*diagnostic.Fixer{fixer(indel(0, 0, "x"))}
		},
	}
	_, iterations := driver.Run("a")
	if iterations != MaxIterations {
		t.Errorf("iterations = %d, want %d (a rule whose fix never converges should be capped)", iterations, MaxIterations)
	}
}
