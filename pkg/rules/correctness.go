package rules

import (
	"strings"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// firstOwnToken returns the first non-trivia token that is a direct child
// of n (child nodes are skipped), or nil if there is none. For an operator
// node such as UNARY_EXPR or UPDATE_EXPR this is the operator itself, even
// when leading whitespace or comments were attached inside the node.
func firstOwnToken(n *red.Node) *red.Token {
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token != nil && !syntaxkind.IsTrivia(ce.Token.Kind()) {
			return ce.Token
		}
	}
	return nil
}

// NoDebugger flags `debugger;` statements, grounded on
// rslint_core/src/groups/errors/no_debugger.rs.
type NoDebugger struct{ rulengine.BaseRule }

func (NoDebugger) Name() string { return "no-debugger" }
func (NoDebugger) Group() string { return "correctness" }
func (NoDebugger) Tags() []string { return []string{"correctness"} }
func (NoDebugger) Recommended() bool { return true }
func (r *NoDebugger) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.DEBUGGER_STMT {
		return
	}
	rng := n.TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Warning, "unexpected 'debugger' statement").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "remove this"))
}

// NoEmpty flags block statements with no statements and no comments,
// excluding catch blocks (an empty catch is idiomatic "swallow and
// continue"). Grounded on
// rslint_core/src/groups/errors/no_empty.rs.
type NoEmpty struct{ rulengine.BaseRule }

func (NoEmpty) Name() string { return "no-empty" }
func (NoEmpty) Group() string { return "correctness" }
func (NoEmpty) Tags() []string { return []string{"correctness"} }
func (NoEmpty) Recommended() bool { return true }
func (r *NoEmpty) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.BLOCK_STMT || len(n.Children()) > 0 {
		return
	}
	if p := n.Parent(); p != nil && p.Kind() == syntaxkind.CATCH_CLAUSE {
		return
	}
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token != nil && ce.Token.Kind() == syntaxkind.COMMENT {
			return
		}
	}
	rng := n.TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Warning, "empty block statement").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "empty block"))
}

// NoCondAssign flags an assignment used directly as an if/while/do-while
// test, almost always a typo for '=='. Grounded on
// rslint_core/src/groups/errors/no_cond_assign.rs.
type NoCondAssign struct{ rulengine.BaseRule }

func (NoCondAssign) Name() string { return "no-cond-assign" }
func (NoCondAssign) Group() string { return "correctness" }
func (NoCondAssign) Tags() []string { return []string{"correctness"} }
func (NoCondAssign) Recommended() bool { return true }
func (r *NoCondAssign) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	switch n.Kind() {
	case syntaxkind.IF_STMT, syntaxkind.WHILE_STMT, syntaxkind.DO_WHILE_STMT:
	default:
		return
	}
	children := n.Children()
	if len(children) == 0 || children[0].Kind() != syntaxkind.ASSIGN_EXPR {
		return
	}
	rng := children[0].TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Error, "expected a conditional expression, got an assignment").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "did you mean '=='?"))
}

// NoConstantCondition flags conditions that are always-truthy or
// always-falsy literals, making the branch dead code. Grounded on
// rslint_core/src/groups/errors/no_constant_condition.rs.
type NoConstantCondition struct{ rulengine.BaseRule }

func (NoConstantCondition) Name() string { return "no-constant-condition" }
func (NoConstantCondition) Group() string { return "correctness" }
func (NoConstantCondition) Tags() []string { return []string{"correctness"} }
func (NoConstantCondition) Recommended() bool { return true }
func (r *NoConstantCondition) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	switch n.Kind() {
	case syntaxkind.IF_STMT, syntaxkind.WHILE_STMT, syntaxkind.DO_WHILE_STMT:
	default:
		return
	}
	children := n.Children()
	if len(children) == 0 || children[0].Kind() != syntaxkind.LITERAL {
		return
	}
	rng := children[0].TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Warning, "unexpected constant condition").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "always evaluates the same way"))
}

// NoDupeKeys flags object literals with two properties of the same
// statically-known key. Grounded on
// rslint_core/src/groups/errors/no_dupe_keys.rs.
type NoDupeKeys struct{ rulengine.BaseRule }

func (NoDupeKeys) Name() string { return "no-dupe-keys" }
func (NoDupeKeys) Group() string { return "correctness" }
func (NoDupeKeys) Tags() []string { return []string{"correctness"} }
func (NoDupeKeys) Recommended() bool { return true }
func (r *NoDupeKeys) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.OBJECT_EXPR {
		return
	}
	seen := map[string]bool{}
	for _, prop := range n.Children() {
		if prop.Kind() != syntaxkind.OBJECT_PROP {
			continue
		}
		tok := firstOwnToken(prop)
		if tok == nil || tok.Kind() == syntaxkind.LBRACKET {
			continue
		}
		key := strings.Trim(tok.Text(), `"'`)
		if seen[key] {
			rng := prop.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Error, "duplicate key '"+key+"' in object literal").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "duplicate key"))
		}
		seen[key] = true
	}
}

// NoDuplicateCases flags switch statements with two 'case' clauses
// sharing the same test text. Grounded on
// rslint_core/src/groups/errors/no_duplicate_cases.rs.
type NoDuplicateCases struct{ rulengine.BaseRule }

func (NoDuplicateCases) Name() string { return "no-duplicate-cases" }
func (NoDuplicateCases) Group() string { return "correctness" }
func (NoDuplicateCases) Tags() []string { return []string{"correctness"} }
func (NoDuplicateCases) Recommended() bool { return true }
func (r *NoDuplicateCases) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.SWITCH_STMT {
		return
	}
	seen := map[string]bool{}
	for _, c := range n.Children() {
		if c.Kind() != syntaxkind.SWITCH_CASE {
			continue
		}
		sub := c.Children()
		if len(sub) == 0 {
			continue // 'default:'
		}
		text := strings.TrimSpace(sub[0].Text())
		if seen[text] {
			rng := c.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Warning, "duplicate case clause").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "duplicate of an earlier case"))
		}
		seen[text] = true
	}
}

// NoUnsafeNegation flags `!a in b` and `!a instanceof b`, where the
// negation binds to the left operand instead of the whole expression as
// the author almost certainly intended. Grounded on
// rslint_core/src/groups/errors/no_unsafe_negation.rs.
type NoUnsafeNegation struct{ rulengine.BaseRule }

func (NoUnsafeNegation) Name() string { return "no-unsafe-negation" }
func (NoUnsafeNegation) Group() string { return "correctness" }
func (NoUnsafeNegation) Tags() []string { return []string{"correctness"} }
func (NoUnsafeNegation) Recommended() bool { return true }
func (r *NoUnsafeNegation) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.BIN_EXPR {
		return
	}
	children := n.Children()
	if len(children) == 0 || children[0].Kind() != syntaxkind.UNARY_EXPR {
		return
	}
	lhsTok := firstOwnToken(children[0])
	if lhsTok == nil || lhsTok.Kind() != syntaxkind.BANG {
		return
	}
	hasOp := false
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token != nil && (ce.Token.Kind() == syntaxkind.IN_KW || ce.Token.Kind() == syntaxkind.INSTANCEOF_KW) {
			hasOp = true
		}
	}
	if !hasOp {
		return
	}
	rng := n.TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Error, "unsafe negation of the left-hand operand").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "negation applies only to the left operand here"))
}

// NoCompareNegZero flags `x === -0` style comparisons, which are true for
// both +0 and -0 and almost always not what the author meant. Grounded on
// rslint_core/src/groups/errors/no_compare_neg_zero.rs.
type NoCompareNegZero struct{ rulengine.BaseRule }

func (NoCompareNegZero) Name() string { return "no-compare-neg-zero" }
func (NoCompareNegZero) Group() string { return "correctness" }
func (NoCompareNegZero) Tags() []string { return []string{"correctness"} }
func (NoCompareNegZero) Recommended() bool { return true }
func (r *NoCompareNegZero) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.BIN_EXPR {
		return
	}
	isCompare := false
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token == nil {
			continue
		}
		switch ce.Token.Kind() {
		case syntaxkind.EQ2, syntaxkind.EQ3, syntaxkind.NEQ, syntaxkind.NEQ2:
			isCompare = true
		}
	}
	if !isCompare {
		return
	}
	for _, c := range n.Children() {
		if c.Kind() != syntaxkind.UNARY_EXPR {
			continue
		}
		tok := firstOwnToken(c)
		sub := c.Children()
		if tok != nil && tok.Kind() == syntaxkind.MINUS && len(sub) > 0 &&
			strings.TrimSpace(sub[0].Text()) == "0" {
			rng := n.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Warning, "comparison against -0").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "use Object.is(x, -0) instead"))
		}
	}
}

// NoExtraSemi flags stray standalone semicolons, with an autofix that
// removes them. Grounded on
// rslint_core/src/groups/errors/no_extra_semi.rs.
type NoExtraSemi struct{ rulengine.BaseRule }

func (NoExtraSemi) Name() string { return "no-extra-semi" }
func (NoExtraSemi) Group() string { return "correctness" }
func (NoExtraSemi) Tags() []string { return []string{"correctness"} }
func (NoExtraSemi) Recommended() bool { return false }
func (r *NoExtraSemi) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.EMPTY_STMT {
		return
	}
	rng := n.TrimmedRange()
	d := diagnostic.New(diagnostic.Warning, "unnecessary semicolon").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "remove this semicolon").
		Suggestion(rng.Start, rng.End, "remove the semicolon", "", diagnostic.Always)
	ctx.Report(d)
	ctx.Fixer().AddIndel(rng.Start, rng.End, "")
}

var typeofStrings = map[string]bool{
	"undefined": true, "object": true, "boolean": true, "number": true,
	"string": true, "function": true, "symbol": true, "bigint": true,
}

// ValidTypeof flags `typeof x === "<invalid>"` comparisons against a
// string that is not one of JavaScript's eight typeof results. Grounded
// on rslint_core/src/groups/errors/valid_typeof.rs.
type ValidTypeof struct{ rulengine.BaseRule }

func (ValidTypeof) Name() string { return "valid-typeof" }
func (ValidTypeof) Group() string { return "correctness" }
func (ValidTypeof) Tags() []string { return []string{"correctness"} }
func (ValidTypeof) Recommended() bool { return true }
func (r *ValidTypeof) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.BIN_EXPR {
		return
	}
	children := n.Children()
	if len(children) != 2 {
		return
	}
	var lit *red.Node
	hasTypeof := false
	for _, c := range children {
		if c.Kind() == syntaxkind.UNARY_EXPR {
			if tok := firstOwnToken(c); tok != nil && tok.Kind() == syntaxkind.TYPEOF_KW {
				hasTypeof = true
			}
		}
		if c.Kind() == syntaxkind.LITERAL {
			lit = c
		}
	}
	if !hasTypeof || lit == nil {
		return
	}
	tok := firstOwnToken(lit)
	if tok == nil || tok.Kind() != syntaxkind.STRING {
		return
	}
	val := strings.Trim(tok.Text(), `"'`)
	if typeofStrings[val] {
		return
	}
	rng := lit.TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Error, "invalid typeof comparison value '"+val+"'").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "not a valid typeof result"))
}

// NoSelfAssign flags `x = x` assignments, which are always no-ops.
// Grounded on
// rslint_core/src/groups/errors/no_self_assign.rs.
type NoSelfAssign struct{ rulengine.BaseRule }

func (NoSelfAssign) Name() string { return "no-self-assign" }
func (NoSelfAssign) Group() string { return "correctness" }
func (NoSelfAssign) Tags() []string { return []string{"correctness"} }
func (NoSelfAssign) Recommended() bool { return true }
func (r *NoSelfAssign) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.ASSIGN_EXPR {
		return
	}
	eqTok := false
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token != nil && ce.Token.Kind() == syntaxkind.EQ {
			eqTok = true
		}
	}
	children := n.Children()
	if !eqTok || len(children) != 2 {
		return
	}
	if strings.TrimSpace(children[0].Text()) == strings.TrimSpace(children[1].Text()) {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Warning, "self-assignment has no effect").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "assigns a variable to itself"))
	}
}

// ForDirection flags `for` loops whose update direction can never satisfy
// the test — e.g. `for (i = 0; i < n; i--)` — an infinite or never-run
// loop. Grounded on
// rslint_core/src/groups/errors/for_direction.rs.
type ForDirection struct{ rulengine.BaseRule }

func (ForDirection) Name() string { return "for-direction" }
func (ForDirection) Group() string { return "correctness" }
func (ForDirection) Tags() []string { return []string{"correctness"} }
func (ForDirection) Recommended() bool { return true }
func (r *ForDirection) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.FOR_STMT {
		return
	}
	var test, update *red.Node
	children := n.Children()
	for _, c := range children {
		switch c.Kind() {
		case syntaxkind.BIN_EXPR:
			if test == nil {
				test = c
			}
		case syntaxkind.UPDATE_EXPR:
			update = c
		}
	}
	if test == nil || update == nil {
		return
	}
	testAsc := strings.Contains(test.Text(), "<")
	testDesc := strings.Contains(test.Text(), ">")
	updateTok := firstOwnToken(update)
	updateInc := updateTok != nil && updateTok.Kind() == syntaxkind.PLUSPLUS
	updateDec := updateTok != nil && updateTok.Kind() == syntaxkind.MINUSMINUS
	if !updateInc && !updateDec {
		lastTok := update.LastToken()
		updateInc = lastTok != nil && lastTok.Kind() == syntaxkind.PLUSPLUS
		updateDec = lastTok != nil && lastTok.Kind() == syntaxkind.MINUSMINUS
	}
	wrong := (testAsc && updateDec) || (testDesc && updateInc)
	if wrong {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Error, "loop update moves the counter the wrong direction for its test").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "this loop never terminates as written"))
	}
}

// NoUnexpectedMultiline flags a call/member/template expression whose
// opening '(' , '[' , or template backtick is separated from the
// preceding expression by a line break, which ASI can turn into two
// unrelated statements silently merged into one. Grounded on
// rslint_core/src/groups/errors/no_unexpected_multiline.rs.
type NoUnexpectedMultiline struct{ rulengine.BaseRule }

func (NoUnexpectedMultiline) Name() string { return "no-unexpected-multiline" }
func (NoUnexpectedMultiline) Group() string { return "correctness" }
func (NoUnexpectedMultiline) Tags() []string { return []string{"correctness"} }
func (NoUnexpectedMultiline) Recommended() bool { return true }
func (r *NoUnexpectedMultiline) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	switch n.Kind() {
	case syntaxkind.CALL_EXPR, syntaxkind.MEMBER_EXPR, syntaxkind.TEMPLATE_EXPR:
	default:
		return
	}
	children := n.Children()
	if len(children) == 0 {
		return
	}
	var opener int
	if tok := firstOwnToken(n); tok != nil && (tok.Kind() == syntaxkind.LBRACKET || tok.Kind() == syntaxkind.TEMPLATE_STRING) {
		opener = tok.TextRange().Start
	} else if n.Kind() == syntaxkind.CALL_EXPR && len(children) > 1 {
		opener = children[1].TrimmedRange().Start
	} else {
		return
	}
	if ctx.HasNewlineBefore(opener) {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Warning, "confusing multiline expression").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "this reads as a continuation of the previous line"))
	}
}

// NoDuplicateImports flags a module importing from the same specifier in
// more than one import declaration. Grounded on
// rslint_core/src/groups/errors/no_duplicate_imports.rs.
type NoDuplicateImports struct{ rulengine.BaseRule }

func (NoDuplicateImports) Name() string { return "no-duplicate-imports" }
func (NoDuplicateImports) Group() string { return "correctness" }
func (NoDuplicateImports) Tags() []string { return []string{"correctness"} }
func (NoDuplicateImports) Recommended() bool { return false }
func (r *NoDuplicateImports) CheckRoot(ctx *rulengine.Ctx) {
	seen := map[string]bool{}
	for _, n := range ctx.Root.Descendants() {
		if n.Kind() != syntaxkind.IMPORT_DECL {
			continue
		}
		var spec string
		for _, ce := range n.ChildrenWithTokens() {
			if ce.Token != nil && ce.Token.Kind() == syntaxkind.STRING {
				spec = strings.Trim(ce.Token.Text(), `"'`)
			}
		}
		if spec == "" {
			continue
		}
		if seen[spec] {
			rng := n.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Warning, "duplicate import of '"+spec+"'").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "merge with the earlier import"))
		}
		seen[spec] = true
	}
}

// NoEmptyCharacterClass flags regex literals containing an empty
// character class `[]`, which never matches. Supplemented from
// rslint_core/src/groups/errors/no_empty_character_class.rs.
type NoEmptyCharacterClass struct{ rulengine.BaseRule }

func (NoEmptyCharacterClass) Name() string { return "no-empty-character-class" }
func (NoEmptyCharacterClass) Group() string { return "regex" }
func (NoEmptyCharacterClass) Tags() []string { return []string{"correctness", "regex"} }
func (NoEmptyCharacterClass) Recommended() bool { return true }
func (r *NoEmptyCharacterClass) CheckToken(ctx *rulengine.Ctx, t *red.Token) {
	if t.Kind() != syntaxkind.REGEX {
		return
	}
	if strings.Contains(t.Text(), "[]") {
		rng := t.TextRange()
		ctx.Report(diagnostic.New(diagnostic.Warning, "empty character class in regular expression").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "[] never matches"))
	}
}

// NoCaseDeclarations flags a lexical declaration (let/const/class) or a
// function declaration directly inside a switch case body without braces,
// where the binding leaks into sibling cases' scope. Supplemented from
// rslint_core/src/groups/errors/no_case_declarations.rs.
type NoCaseDeclarations struct{ rulengine.BaseRule }

func (NoCaseDeclarations) Name() string { return "no-case-declarations" }
func (NoCaseDeclarations) Group() string { return "correctness" }
func (NoCaseDeclarations) Tags() []string { return []string{"correctness"} }
func (NoCaseDeclarations) Recommended() bool { return true }
func (r *NoCaseDeclarations) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.SWITCH_CASE {
		return
	}
	for _, c := range n.Children() {
		switch c.Kind() {
		case syntaxkind.VAR_STMT, syntaxkind.CLASS_DECL, syntaxkind.FUNCTION_DECL:
			tok := firstOwnToken(c)
			if c.Kind() == syntaxkind.VAR_STMT && tok != nil && tok.Kind() == syntaxkind.VAR_KW {
				continue // var is function-scoped; only let/const/class leak
			}
			rng := c.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Error, "unexpected lexical declaration in case block").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "wrap the case body in { }"))
		}
	}
}
