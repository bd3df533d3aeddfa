package diagnostic

import (
	"testing"

	"github.com/go-test/deep"
)

func TestBuilderChainProducesExpectedShape(t *testing.T) {
	d := New(Warning, "unused variable").
		WithCode("no-unused-vars").
		WithFile(3).
		Primary(10, 13, "`foo` is never read").
		Secondary(0, 3, "declared here").
		Suggestion(10, 13, "remove it", "", Always).
		FooterNote("this rule can be disabled with a directive comment")

	if d.Severity != Warning {
		t.Errorf("Severity = %v, want Warning", d.Severity)
	}
	if d.Code != "no-unused-vars" {
		t.Errorf("Code = %q, want %q", d.Code, "no-unused-vars")
	}
	if len(d.Children) != 2 {
		t.Fatalf("len(Children) = %d, want 2", len(d.Children))
	}
	if d.Children[0].Severity != Error {
		t.Errorf("Primary label severity = %v, want Error", d.Children[0].Severity)
	}
	if d.Children[0].Span.FileID != 3 {
		t.Errorf("Primary label FileID = %d, want 3 (set by WithFile before the label was added)", d.Children[0].Span.FileID)
	}
	if d.Children[1].Severity != Info {
		t.Errorf("Secondary label severity = %v, want Info", d.Children[1].Severity)
	}
	if len(d.Suggestions) != 1 {
		t.Fatalf("len(Suggestions) = %d, want 1", len(d.Suggestions))
	}
	if d.Suggestions[0].Applicability != Always {
		t.Errorf("Suggestion applicability = %v, want Always", d.Suggestions[0].Applicability)
	}
	if len(d.Footers) != 1 || d.Footers[0].Severity != Note {
		t.Errorf("Footers = %+v, want one Note footer", d.Footers)
	}
}

func TestWithFileOnlyAffectsLabelsAddedAfter(t *testing.T) {
	d := New(Error, "x").Primary(0, 1, "before").WithFile(7).Primary(2, 3, "after")
	if d.Children[0].Span.FileID != 0 {
		t.Errorf("label added before WithFile has FileID %d, want 0", d.Children[0].Span.FileID)
	}
	if d.Children[1].Span.FileID != 7 {
		t.Errorf("label added after WithFile has FileID %d, want 7", d.Children[1].Span.FileID)
	}
}

func TestSuggestionWithLabelsCarriesInnerRanges(t *testing.T) {
	inner := []Span{{Start: 1, End: 2}, {Start: 4, End: 5}}
	d := New(Warning, "x").SuggestionWithLabels(0, 6, "rewrite", "ab", MaybeIncorrect, inner)
	got := d.Suggestions[0].InnerLabelRanges
	if diff := deep.Equal(got, inner); diff != nil {
		t.Errorf("InnerLabelRanges mismatch: %v", diff)
	}
	if d.Suggestions[0].Applicability != MaybeIncorrect {
		t.Errorf("Applicability = %v, want MaybeIncorrect", d.Suggestions[0].Applicability)
	}
}

func TestSeverityString(t *testing.T) {
	cases := map[Severity]string{
		Error: "error", Warning: "warning", Note: "note", Help: "help", Info: "info",
		Severity(99): "unknown",
	}
	for sev, want := range cases {
		if got := sev.String(); got != want {
			t.Errorf("Severity(%d).String() = %q, want %q", sev, got, want)
		}
	}
}

func TestFixerAddIndel(t *testing.T) {
	var f Fixer
	f.AddIndel(5, 10, "replacement")
	if len(f.Indels) != 1 {
		t.Fatalf("len(Indels) = %d, want 1", len(f.Indels))
	}
	ind := f.Indels[0]
	if ind.Delete.Start != 5 || ind.Delete.End != 10 || ind.Insert != "replacement" {
		t.Errorf("Indels[0] = %+v, unexpected", ind)
	}
}
