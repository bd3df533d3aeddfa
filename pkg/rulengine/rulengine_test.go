package rulengine

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/directive"
	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// flaggingRule reports one diagnostic per IDENT token whose text matches Want.
type flaggingRule struct {
	BaseRule
	NameStr string
	Want string
}

func (r *flaggingRule) Name() string { return r.NameStr }
func (r *flaggingRule) Group() string { return "test" }
func (r *flaggingRule) Tags() []string { return nil }
func (r *flaggingRule) Recommended() bool { return true }
func (r *flaggingRule) CheckToken(ctx *Ctx, t *red.Token) {
	if t.Kind() == syntaxkind.IDENT && t.Text() == r.Want {
		rng := t.TextRange()
		ctx.Report(diagnostic.New(diagnostic.Warning, r.Want+" flagged").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "flagged"))
	}
}

func buildTree(t *testing.T) *red.Node {
	t.Helper()
	tok := func(k syntaxkind.Kind, text string) *green.Token {
		return green.NewToken(lexer.Token{Kind: k, Text: text, ByteLen: uint32(len(text))})
	}
	n := green.NewNode(syntaxkind.SCRIPT, []green.Element{
		tok(syntaxkind.IDENT, "debugger"),
		tok(syntaxkind.WHITESPACE, " "),
		tok(syntaxkind.IDENT, "other"),
	})
	return red.NewRoot(n)
}

func identityLineOf(int) int { return 1 }

func TestRunDispatchesAllEnabledRulesAndPreservesOrder(t *testing.T) {
	store := NewStore()
	ruleA := &flaggingRule{NameStr: "rule-a", Want: "debugger"}
	ruleB := &flaggingRule{NameStr: "rule-b", Want: "other"}
	store.Register(ruleA)
	store.Register(ruleB)
	store.LoadRules(map[string]Config{
		"rule-a": {Enabled: true, Severity: diagnostic.Warning},
		"rule-b": {Enabled: true, Severity: diagnostic.Error},
	})

	root := buildTree(t)
	diags, fix := Run(root, 1, "debugger other", store, nil, identityLineOf)
	if fix == nil {
		t.Fatal("Run returned a nil Fixer")
	}
	if len(diags) != 2 {
		t.Fatalf("len(diags) = %d, want 2", len(diags))
	}
	if diags[0].Code != "rule-a" || diags[1].Code != "rule-b" {
		t.Errorf("diagnostics out of registration order: %s, %s", diags[0].Code, diags[1].Code)
	}
	if diags[1].Severity != diagnostic.Error {
		t.Errorf("rule-b's configured severity should overwrite the diagnostic's own severity, got %v", diags[1].Severity)
	}
}

func TestRunSkipsDisabledRules(t *testing.T) {
	store := NewStore()
	rule := &flaggingRule{NameStr: "rule-a", Want: "debugger"}
	store.Register(rule)
	store.LoadRules(map[string]Config{"rule-a": {Enabled: false}})

	root := buildTree(t)
	diags, _ := Run(root, 1, "debugger other", store, nil, identityLineOf)
	if len(diags) != 0 {
		t.Errorf("disabled rule should not run, got %d diagnostics", len(diags))
	}
}

func TestRunAppliesDirectiveSuppression(t *testing.T) {
	store := NewStore()
	rule := &flaggingRule{NameStr: "rule-a", Want: "debugger"}
	store.Register(rule)
	store.LoadRules(map[string]Config{"rule-a": {Enabled: true, Severity: diagnostic.Warning}})

	scope := directive.BuildScope([]directive.Directive{
		{Command: directive.CommandDisable, Rules: []string{"rule-a"}},
	}, nil, identityLineOf)

	root := buildTree(t)
	diags, _ := Run(root, 1, "debugger other", store, scope, identityLineOf)
	if len(diags) != 0 {
		t.Errorf("directive-disabled rule should be suppressed, got %d diagnostics", len(diags))
	}
}

func TestBuiltinsAndRecommendedFilter(t *testing.T) {
	recommended := &flaggingRule{NameStr: "rec", Want: "x"}
	notRecommended := &nonRecommendedRule{flaggingRule{NameStr: "nonrec", Want: "y"}}

	all := []Rule{recommended, notRecommended}
	rec := Recommended(all)
	if _, ok := rec.Get("rec"); !ok {
		t.Error("Recommended() should include the recommended rule")
	}
	if _, ok := rec.Get("nonrec"); ok {
		t.Error("Recommended() should exclude the non-recommended rule")
	}

	store := Builtins(all)
	if len(store.Rules()) != 2 {
		t.Errorf("Builtins() should register every rule, got %d", len(store.Rules()))
	}
}

type nonRecommendedRule struct{ flaggingRule }

func (r *nonRecommendedRule) Recommended() bool { return false }
