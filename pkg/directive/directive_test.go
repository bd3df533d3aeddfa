package directive

import (
	"testing"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/parser"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

func commentTok(text string) lexer.Token {
	return lexer.Token{Kind: syntaxkind.COMMENT, Text: text, ByteLen: uint32(len(text))}
}

func identityLineOf(offset int) int { return offset + 1 }

func TestScanCommentsParsesDisableAndIgnore(t *testing.T) {
	trivia := []lexer.Token{
		commentTok("// cstlint-disable no-debugger"),
		commentTok("// not a directive"),
		commentTok("/* cstlint-ignore no-empty until eof */"),
	}
	directives, diags := ScanComments(1, trivia, identityLineOf)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if len(directives) != 2 {
		t.Fatalf("len(directives) = %d, want 2", len(directives))
	}
	if directives[0].Command != CommandDisable || len(directives[0].Rules) != 1 || directives[0].Rules[0] != "no-debugger" {
		t.Errorf("directives[0] = %+v, unexpected", directives[0])
	}
	if directives[1].Command != CommandIgnore || directives[1].Rules[0] != "no-empty" || !directives[1].UntilEOF {
		t.Errorf("directives[1] = %+v, want ignore no-empty until eof", directives[1])
	}
}

func TestScanCommentsIgnoreUntilLine(t *testing.T) {
	trivia := []lexer.Token{commentTok("// cstlint-ignore no-unused-vars until 42")}
	directives, diags := ScanComments(1, trivia, identityLineOf)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if directives[0].UntilLine == nil || *directives[0].UntilLine != 42 {
		t.Fatalf("UntilLine = %v, want pointer to 42", directives[0].UntilLine)
	}
}

func TestScanCommentsBareIgnoreHasNoUntilClause(t *testing.T) {
	trivia := []lexer.Token{commentTok("// cstlint-ignore no-empty")}
	directives, diags := ScanComments(1, trivia, identityLineOf)
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if directives[0].UntilEOF || directives[0].UntilLine != nil {
		t.Errorf("directives[0] = %+v, want neither UntilEOF nor UntilLine set", directives[0])
	}
}

func TestScanCommentsBareDirectiveMeansAllRules(t *testing.T) {
	trivia := []lexer.Token{commentTok("// cstlint-disable")}
	directives, _ := ScanComments(1, trivia, identityLineOf)
	if !directives[0].AllRules {
		t.Error("bare 'cstlint-disable' should set AllRules")
	}
}

func TestScanCommentsReportsMalformedDirective(t *testing.T) {
	trivia := []lexer.Token{commentTok("// cstlint-frobnicate no-debugger")}
	directives, diags := ScanComments(1, trivia, identityLineOf)
	if len(directives) != 0 {
		t.Errorf("malformed directive should not produce a Directive, got %v", directives)
	}
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1", len(diags))
	}
}

func TestScopeDisableSuppressesByName(t *testing.T) {
	sc := BuildScope([]Directive{
		{Command: CommandDisable, Rules: []string{"no-debugger"}},
	}, nil, identityLineOf)
	if !sc.Suppressed("no-debugger", 1, 0) {
		t.Error("no-debugger should be suppressed")
	}
	if sc.Suppressed("no-empty", 1, 0) {
		t.Error("no-empty was never disabled, should not be suppressed")
	}
}

func TestScopeEnableAllClearsDisableAll(t *testing.T) {
	sc := BuildScope([]Directive{
		{Command: CommandDisable, AllRules: true},
		{Command: CommandEnable, AllRules: true},
	}, nil, identityLineOf)
	if sc.Suppressed("no-debugger", 1, 0) {
		t.Error("a following 'enable all' should clear a prior 'disable all'")
	}
}

func TestScopeIgnoreUntilLineIsLineBounded(t *testing.T) {
	until := 10
	sc := BuildScope([]Directive{
		{Command: CommandIgnore, Rules: []string{"no-empty"}, UntilLine: &until, Span: diagnostic.Span{Start: 4}},
	}, nil, identityLineOf)
	// identityLineOf(4) == 5, so the range covers lines [5, 10].
	if sc.Suppressed("no-empty", 4, 0) {
		t.Error("line before the directive's own line should not be suppressed")
	}
	if !sc.Suppressed("no-empty", 7, 0) {
		t.Error("line 7 should fall inside the ignore range")
	}
	if sc.Suppressed("no-empty", 11, 0) {
		t.Error("line 11 is past the until-line, should not be suppressed")
	}
	if sc.Suppressed("other-rule", 7, 0) {
		t.Error("a rule-scoped ignore should not suppress a different rule")
	}
}

func TestScopeIgnoreUntilEOFIsLineBounded(t *testing.T) {
	sc := BuildScope([]Directive{
		{Command: CommandIgnore, Rules: []string{"no-empty"}, UntilEOF: true, Span: diagnostic.Span{Start: 4}},
	}, nil, identityLineOf)
	if sc.Suppressed("no-empty", 4, 0) {
		t.Error("line before the directive's own line should not be suppressed")
	}
	if !sc.Suppressed("no-empty", 1000, 0) {
		t.Error("an explicit 'until eof' should suppress arbitrarily far past the directive")
	}
}

func TestScopeBareIgnoreOnlySuppressesThePrecedingNode(t *testing.T) {
	source := "x;\n// cstlint-ignore no-empty\n{}\n\n{}\n"
	p := parser.New(source, 0)
	root := p.ParseScript()
	rootNode := red.NewRoot(root)

	commentStart := len("x;\n")
	commentEnd := commentStart + len("// cstlint-ignore no-empty")
	d := Directive{Command: CommandIgnore, Rules: []string{"no-empty"}, Span: diagnostic.Span{Start: commentStart, End: commentEnd}}
	sc := BuildScope([]Directive{d}, rootNode, identityLineOf)

	firstBlockOffset := commentEnd + len("\n")
	secondBlockOffset := firstBlockOffset + len("{}\n\n")

	if !sc.Suppressed("no-empty", 0, firstBlockOffset) {
		t.Error("the block directly following the bare 'ignore' comment should be suppressed")
	}
	if sc.Suppressed("no-empty", 0, secondBlockOffset) {
		t.Error("a second, unrelated block later in the file must still be flagged")
	}
}
