package rules

import (
	"strings"

	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// This file rounds out the correctness group to its full 29-rule list;
// correctness.go holds the first 14, this file the remaining 15.
// Grounded the same way as correctness.go: tree-local checks modeled on
// the corresponding rule in rslint_core/src/groups/errors.

// isFunctionBoundary reports whether n opens a new function scope, so
// walks that skip into nested functions (no-await-in-loop,
// no-this-before-super, no-unsafe-finally) know where to stop.
func isFunctionBoundary(n *red.Node) bool {
	switch n.Kind() {
	case syntaxkind.FUNCTION_DECL, syntaxkind.FUNCTION_EXPR, syntaxkind.ARROW_EXPR, syntaxkind.METHOD:
		return true
	}
	return false
}

// walkOwnScope visits n and every descendant that is not inside a nested
// function boundary, calling visit on each. Used to check properties of
// "this scope's statements" without wrongly reaching into a closure.
func walkOwnScope(n *red.Node, visit func(*red.Node)) {
	for _, c := range n.Children() {
		visit(c)
		if !isFunctionBoundary(c) {
			walkOwnScope(c, visit)
		}
	}
}

func hasTokenInOwnScope(n *red.Node, kind syntaxkind.Kind) bool {
	found := false
	var walk func(*red.Node)
	walk = func(cur *red.Node) {
		for _, ce := range cur.ChildrenWithTokens() {
			if ce.Token != nil && ce.Token.Kind() == kind {
				found = true
				return
			}
			if ce.Node != nil && !isFunctionBoundary(ce.Node) {
				walk(ce.Node)
			}
		}
	}
	walk(n)
	return found
}

func firstNonModifierIdent(children []red.ChildElement) (string, bool) {
	for _, c := range children {
		if c.Token == nil {
			continue
		}
		switch c.Token.Kind() {
		case syntaxkind.STATIC_KW, syntaxkind.GET_KW, syntaxkind.SET_KW, syntaxkind.ASYNC_KW, syntaxkind.STAR:
			continue
		case syntaxkind.IDENT:
			return c.Token.Text(), true
		default:
			if syntaxkind.IsTrivia(c.Token.Kind()) {
				continue
			}
			return "", false
		}
	}
	return "", false
}

// NoUnsafeFinally flags control-flow statements (return/break/continue/
// throw) appearing directly in a finally block, which silently swallow
// whatever the try/catch was already propagating.
type NoUnsafeFinally struct{ rulengine.BaseRule }

func (NoUnsafeFinally) Name() string { return "no-unsafe-finally" }
func (NoUnsafeFinally) Group() string { return "correctness" }
func (NoUnsafeFinally) Tags() []string { return []string{"correctness"} }
func (NoUnsafeFinally) Recommended() bool { return true }

func (r *NoUnsafeFinally) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.TRY_STMT {
		return
	}
	children := n.Children()
	if len(children) == 0 {
		return
	}
	finallyBlock := children[len(children)-1]
	if finallyBlock.Kind() != syntaxkind.BLOCK_STMT || len(children) < 2 {
		return
	}
	if children[len(children)-2].Kind() == syntaxkind.BLOCK_STMT && len(children) == 2 {
		// two BLOCK_STMT children with no CATCH_CLAUSE: try + finally.
	} else if children[len(children)-2].Kind() != syntaxkind.CATCH_CLAUSE && len(children) != 2 {
		return
	}
	for _, stmt := range finallyBlock.Children() {
		switch stmt.Kind() {
		case syntaxkind.RETURN_STMT, syntaxkind.BREAK_STMT, syntaxkind.CONTINUE_STMT, syntaxkind.THROW_STMT:
			rng := stmt.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Error, "unsafe control flow statement in finally block").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "this overrides any exception or return value from the try block"))
		}
	}
}

// GetterReturn flags a getter method whose body never returns a value.
type GetterReturn struct{ rulengine.BaseRule }

func (GetterReturn) Name() string { return "getter-return" }
func (GetterReturn) Group() string { return "correctness" }
func (GetterReturn) Tags() []string { return []string{"correctness"} }
func (GetterReturn) Recommended() bool { return true }

func (r *GetterReturn) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.METHOD {
		return
	}
	children := n.ChildrenWithTokens()
	isGetter := false
	for _, c := range children {
		if c.Token == nil {
			break
		}
		if c.Token.Kind() == syntaxkind.GET_KW {
			isGetter = true
			break
		}
		if c.Token.Kind() != syntaxkind.STATIC_KW && !syntaxkind.IsTrivia(c.Token.Kind()) {
			break
		}
	}
	if !isGetter {
		return
	}
	hasValueReturn := false
	walkOwnScope(n, func(d *red.Node) {
		if d.Kind() != syntaxkind.RETURN_STMT {
			return
		}
		if len(d.ChildrenWithTokens()) > 1 {
			hasValueReturn = true
		}
	})
	if !hasValueReturn {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Error, "getter should always return a value").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "expected a return statement with a value in this getter"))
	}
}

// findConstructor returns the "constructor" METHOD in a class body, if any.
func findConstructor(classBody *red.Node) *red.Node {
	for _, m := range classBody.Children() {
		if m.Kind() != syntaxkind.METHOD {
			continue
		}
		if name, ok := firstNonModifierIdent(m.ChildrenWithTokens()); ok && name == "constructor" {
			return m
		}
	}
	return nil
}

func isSuperCall(n *red.Node) bool {
	if n.Kind() != syntaxkind.CALL_EXPR {
		return false
	}
	callee := n.FirstChild()
	if callee == nil {
		return false
	}
	last := callee.LastToken()
	return last != nil && last.Kind() == syntaxkind.SUPER_KW
}

// ConstructorSuper flags a derived class's constructor that never calls
// super().
type ConstructorSuper struct{ rulengine.BaseRule }

func (ConstructorSuper) Name() string { return "constructor-super" }
func (ConstructorSuper) Group() string { return "correctness" }
func (ConstructorSuper) Tags() []string { return []string{"correctness"} }
func (ConstructorSuper) Recommended() bool { return true }

func (r *ConstructorSuper) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.CLASS_DECL && n.Kind() != syntaxkind.CLASS_EXPR {
		return
	}
	hasExtends := false
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token != nil && ce.Token.Kind() == syntaxkind.EXTENDS_KW {
			hasExtends = true
		}
	}
	if !hasExtends {
		return
	}
	var body *red.Node
	for _, c := range n.Children() {
		if c.Kind() == syntaxkind.CLASS_BODY {
			body = c
		}
	}
	if body == nil {
		return
	}
	ctor := findConstructor(body)
	if ctor == nil {
		return
	}
	calledSuper := false
	walkOwnScope(ctor, func(d *red.Node) {
		if isSuperCall(d) {
			calledSuper = true
		}
	})
	if !calledSuper {
		rng := ctor.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Error, "constructor of a derived class must call super()").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "missing call to super() in this constructor"))
	}
}

// NoThisBeforeSuper flags `this` used in a derived constructor before the
// first super() call.
type NoThisBeforeSuper struct{ rulengine.BaseRule }

func (NoThisBeforeSuper) Name() string { return "no-this-before-super" }
func (NoThisBeforeSuper) Group() string { return "correctness" }
func (NoThisBeforeSuper) Tags() []string { return []string{"correctness"} }
func (NoThisBeforeSuper) Recommended() bool { return true }

func (r *NoThisBeforeSuper) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.CLASS_DECL && n.Kind() != syntaxkind.CLASS_EXPR {
		return
	}
	var body *red.Node
	for _, c := range n.Children() {
		if c.Kind() == syntaxkind.CLASS_BODY {
			body = c
		}
	}
	if body == nil {
		return
	}
	ctor := findConstructor(body)
	if ctor == nil {
		return
	}
	superSeen := false
	var thisOffset = -1
	var walk func(*red.Node)
	walk = func(cur *red.Node) {
		for _, ce := range cur.ChildrenWithTokens() {
			if superSeen || thisOffset >= 0 {
				return
			}
			if ce.Token != nil && ce.Token.Kind() == syntaxkind.THIS_KW {
				thisOffset = ce.Token.TextRange().Start
				return
			}
			if ce.Node != nil {
				if isSuperCall(ce.Node) {
					superSeen = true
					return
				}
				if !isFunctionBoundary(ce.Node) {
					walk(ce.Node)
				}
			}
		}
	}
	walk(ctor)
	if thisOffset >= 0 && !superSeen {
		ctx.Report(diagnostic.New(diagnostic.Error, "'this' used before super() in derived class constructor").
			WithFile(ctx.FileID).Primary(thisOffset, thisOffset+4, "super() must be called before accessing 'this'"))
	}
}

var loopKinds = syntaxkind.NewTokenSet(
	syntaxkind.FOR_STMT, syntaxkind.FOR_IN_STMT, syntaxkind.FOR_OF_STMT,
	syntaxkind.WHILE_STMT, syntaxkind.DO_WHILE_STMT,
)

// NoAwaitInLoop flags an `await` expression inside a loop body, which
// serializes iterations that could otherwise run concurrently.
type NoAwaitInLoop struct{ rulengine.BaseRule }

func (NoAwaitInLoop) Name() string { return "no-await-in-loop" }
func (NoAwaitInLoop) Group() string { return "correctness" }
func (NoAwaitInLoop) Tags() []string { return []string{"correctness", "performance"} }
func (NoAwaitInLoop) Recommended() bool { return false }

func (r *NoAwaitInLoop) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if !loopKinds.Contains(n.Kind()) {
		return
	}
	var walk func(*red.Node)
	walk = func(cur *red.Node) {
		for _, ce := range cur.ChildrenWithTokens() {
			if ce.Token != nil && ce.Token.Kind() == syntaxkind.AWAIT_KW {
				rng := ce.Token.TextRange()
				ctx.Report(diagnostic.New(diagnostic.Warning, "unexpected 'await' inside a loop").
					WithFile(ctx.FileID).Primary(rng.Start, rng.End, "this blocks each iteration on the previous one's await"))
			}
			if ce.Node != nil && !loopKinds.Contains(ce.Node.Kind()) && !isFunctionBoundary(ce.Node) {
				walk(ce.Node)
			}
		}
	}
	walk(n)
}

// NoAsyncPromiseExecutor flags `new Promise(async (resolve, reject) => ...)`:
// rejections thrown inside the async executor are silently swallowed since
// the executor's own returned promise has no one awaiting it.
type NoAsyncPromiseExecutor struct{ rulengine.BaseRule }

func (NoAsyncPromiseExecutor) Name() string { return "no-async-promise-executor" }
func (NoAsyncPromiseExecutor) Group() string { return "correctness" }
func (NoAsyncPromiseExecutor) Tags() []string { return []string{"correctness"} }
func (NoAsyncPromiseExecutor) Recommended() bool { return true }

func (r *NoAsyncPromiseExecutor) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.NEW_EXPR {
		return
	}
	var first *red.Token
	if callee := n.FirstChild(); callee != nil && callee.Kind() == syntaxkind.NAME_REF {
		first = callee.LastToken()
	}
	if first == nil || first.Kind() != syntaxkind.IDENT || first.Text() != "Promise" {
		return
	}
	var argList *red.Node
	for _, c := range n.Children() {
		if c.Kind() == syntaxkind.ARG_LIST {
			argList = c
		}
	}
	if argList == nil {
		return
	}
	args := argList.Children()
	if len(args) == 0 {
		return
	}
	executor := args[0]
	if executor.Kind() != syntaxkind.ARROW_EXPR && executor.Kind() != syntaxkind.FUNCTION_EXPR {
		return
	}
	for _, ce := range executor.ChildrenWithTokens() {
		if ce.Token != nil && !syntaxkind.IsTrivia(ce.Token.Kind()) {
			if ce.Token.Kind() == syntaxkind.ASYNC_KW {
				rng := executor.TrimmedRange()
				ctx.Report(diagnostic.New(diagnostic.Error, "Promise executor function should not be async").
					WithFile(ctx.FileID).Primary(rng.Start, rng.End, "errors thrown here reject the returned promise silently"))
			}
			break
		}
	}
}

// NoInnerDeclarations flags a function declaration nested inside a
// control-flow block rather than directly in a function, script, or module
// body.
type NoInnerDeclarations struct{ rulengine.BaseRule }

func (NoInnerDeclarations) Name() string { return "no-inner-declarations" }
func (NoInnerDeclarations) Group() string { return "correctness" }
func (NoInnerDeclarations) Tags() []string { return []string{"correctness"} }
func (NoInnerDeclarations) Recommended() bool { return true }

var nestingBlockParents = syntaxkind.NewTokenSet(
	syntaxkind.IF_STMT, syntaxkind.FOR_STMT, syntaxkind.FOR_IN_STMT, syntaxkind.FOR_OF_STMT,
	syntaxkind.WHILE_STMT, syntaxkind.DO_WHILE_STMT, syntaxkind.TRY_STMT, syntaxkind.CATCH_CLAUSE,
	syntaxkind.SWITCH_CASE, syntaxkind.WITH_STMT, syntaxkind.LABELLED_STMT,
)

func (r *NoInnerDeclarations) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.FUNCTION_DECL {
		return
	}
	parent := n.Parent()
	if parent == nil {
		return
	}
	if parent.Kind() == syntaxkind.SCRIPT || parent.Kind() == syntaxkind.MODULE {
		return
	}
	if parent.Kind() != syntaxkind.BLOCK_STMT {
		return
	}
	grand := parent.Parent()
	if grand == nil {
		return
	}
	if grand.Kind() == syntaxkind.FUNCTION_DECL || grand.Kind() == syntaxkind.FUNCTION_EXPR ||
		grand.Kind() == syntaxkind.ARROW_EXPR || grand.Kind() == syntaxkind.METHOD {
		return
	}
	if nestingBlockParents.Contains(grand.Kind()) {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Error, "function declaration nested inside a block").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "move this to the enclosing function or module body"))
	}
}

// NoSparseArrays flags array literals with elisions (e.g. `[1, , 3]`),
// almost always a typo for a trailing comma.
type NoSparseArrays struct{ rulengine.BaseRule }

func (NoSparseArrays) Name() string { return "no-sparse-arrays" }
func (NoSparseArrays) Group() string { return "correctness" }
func (NoSparseArrays) Tags() []string { return []string{"correctness"} }
func (NoSparseArrays) Recommended() bool { return true }

func (r *NoSparseArrays) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.ARRAY_EXPR {
		return
	}
	children := n.ChildrenWithTokens()
	prevWasCommaOrOpen := true
	for _, ce := range children {
		if ce.Token != nil {
			if syntaxkind.IsTrivia(ce.Token.Kind()) {
				continue
			}
			switch ce.Token.Kind() {
			case syntaxkind.LBRACKET:
				prevWasCommaOrOpen = true
				continue
			case syntaxkind.COMMA:
				if prevWasCommaOrOpen {
					rng := n.TrimmedRange()
					ctx.Report(diagnostic.New(diagnostic.Warning, "sparse array: elided element").
						WithFile(ctx.FileID).Primary(rng.Start, rng.End, "holes in array literals are usually a mistake"))
				}
				prevWasCommaOrOpen = true
				continue
			case syntaxkind.RBRACKET:
				continue
			}
		}
		prevWasCommaOrOpen = false
	}
}

var unsafePrototypeMethods = map[string]bool{
	"hasOwnProperty": true,
	"isPrototypeOf": true,
	"propertyIsEnumerable": true,
}

// NoPrototypeBuiltins flags `obj.hasOwnProperty(k)`-style calls, which
// throw if obj has no prototype chain (e.g. `Object.create(null)`).
type NoPrototypeBuiltins struct{ rulengine.BaseRule }

func (NoPrototypeBuiltins) Name() string { return "no-prototype-builtins" }
func (NoPrototypeBuiltins) Group() string { return "correctness" }
func (NoPrototypeBuiltins) Tags() []string { return []string{"correctness"} }
func (NoPrototypeBuiltins) Recommended() bool { return true }

func (r *NoPrototypeBuiltins) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.CALL_EXPR {
		return
	}
	callee := n.FirstChild()
	if callee == nil || callee.Kind() != syntaxkind.MEMBER_EXPR {
		return
	}
	last := callee.LastToken()
	if last == nil || last.Kind() != syntaxkind.IDENT || !unsafePrototypeMethods[last.Text()] {
		return
	}
	rng := n.TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Warning, "calling '"+last.Text()+"' directly on an object can throw").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "call it via Object.prototype."+last.Text()+".call(obj, ...) instead"))
}

// NoNewSymbol flags `new Symbol(...)`: Symbol is not a constructor.
type NoNewSymbol struct{ rulengine.BaseRule }

func (NoNewSymbol) Name() string { return "no-new-symbol" }
func (NoNewSymbol) Group() string { return "correctness" }
func (NoNewSymbol) Tags() []string { return []string{"correctness"} }
func (NoNewSymbol) Recommended() bool { return true }

func (r *NoNewSymbol) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.NEW_EXPR {
		return
	}
	var first *red.Token
	if callee := n.FirstChild(); callee != nil && callee.Kind() == syntaxkind.NAME_REF {
		first = callee.LastToken()
	}
	if first != nil && first.Kind() == syntaxkind.IDENT && first.Text() == "Symbol" {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Error, "Symbol cannot be called with 'new'").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "call Symbol(...) without 'new'"))
	}
}

// RequireYield flags a generator function whose body never yields.
type RequireYield struct{ rulengine.BaseRule }

func (RequireYield) Name() string { return "require-yield" }
func (RequireYield) Group() string { return "correctness" }
func (RequireYield) Tags() []string { return []string{"correctness"} }
func (RequireYield) Recommended() bool { return false }

func (r *RequireYield) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.FUNCTION_DECL && n.Kind() != syntaxkind.FUNCTION_EXPR && n.Kind() != syntaxkind.METHOD {
		return
	}
	isGenerator := false
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token == nil {
			break
		}
		if syntaxkind.IsTrivia(ce.Token.Kind()) {
			continue
		}
		if ce.Token.Kind() == syntaxkind.STAR {
			isGenerator = true
			break
		}
		if ce.Token.Kind() != syntaxkind.FUNCTION_KW && ce.Token.Kind() != syntaxkind.ASYNC_KW &&
			ce.Token.Kind() != syntaxkind.STATIC_KW {
			break
		}
	}
	if !isGenerator {
		return
	}
	if !hasTokenInOwnScope(n, syntaxkind.YIELD_KW) {
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Warning, "generator function never yields").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "this is a generator but has no yield expression"))
	}
}

// NoSetterReturn flags a setter that returns a value.
type NoSetterReturn struct{ rulengine.BaseRule }

func (NoSetterReturn) Name() string { return "no-setter-return" }
func (NoSetterReturn) Group() string { return "correctness" }
func (NoSetterReturn) Tags() []string { return []string{"correctness"} }
func (NoSetterReturn) Recommended() bool { return true }

func (r *NoSetterReturn) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.METHOD {
		return
	}
	isSetter := false
	for _, ce := range n.ChildrenWithTokens() {
		if ce.Token == nil {
			break
		}
		if ce.Token.Kind() == syntaxkind.SET_KW {
			isSetter = true
			break
		}
		if ce.Token.Kind() != syntaxkind.STATIC_KW && !syntaxkind.IsTrivia(ce.Token.Kind()) {
			break
		}
	}
	if !isSetter {
		return
	}
	walkOwnScope(n, func(d *red.Node) {
		if d.Kind() != syntaxkind.RETURN_STMT {
			return
		}
		if len(d.ChildrenWithTokens()) > 1 {
			rng := d.TrimmedRange()
			ctx.Report(diagnostic.New(diagnostic.Error, "setter should not return a value").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "a setter's return value is always discarded"))
		}
	})
}

// NoExtraBooleanCast flags a redundant double-negation (`!!x`) used purely
// to coerce to boolean where the surrounding context already coerces.
type NoExtraBooleanCast struct{ rulengine.BaseRule }

func (NoExtraBooleanCast) Name() string { return "no-extra-boolean-cast" }
func (NoExtraBooleanCast) Group() string { return "correctness" }
func (NoExtraBooleanCast) Tags() []string { return []string{"correctness", "style"} }
func (NoExtraBooleanCast) Recommended() bool { return false }

func (r *NoExtraBooleanCast) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.UNARY_EXPR {
		return
	}
	first := firstOwnToken(n)
	if first == nil || first.Kind() != syntaxkind.BANG {
		return
	}
	inner := n.FirstChild()
	if inner == nil || inner.Kind() != syntaxkind.UNARY_EXPR {
		return
	}
	innerFirst := firstOwnToken(inner)
	if innerFirst == nil || innerFirst.Kind() != syntaxkind.BANG {
		return
	}
	parent := n.Parent()
	if parent == nil {
		return
	}
	switch parent.Kind() {
	case syntaxkind.IF_STMT, syntaxkind.WHILE_STMT, syntaxkind.DO_WHILE_STMT, syntaxkind.COND_EXPR:
		rng := n.TrimmedRange()
		ctx.Report(diagnostic.New(diagnostic.Info, "redundant double negation").
			WithFile(ctx.FileID).Primary(rng.Start, rng.End, "this position already coerces to boolean"))
	}
}

// NoConfusingArrow flags an arrow function whose body is an un-parenthesized
// conditional expression, easily misread as a comparison against the arrow.
type NoConfusingArrow struct{ rulengine.BaseRule }

func (NoConfusingArrow) Name() string { return "no-confusing-arrow" }
func (NoConfusingArrow) Group() string { return "correctness" }
func (NoConfusingArrow) Tags() []string { return []string{"correctness", "style"} }
func (NoConfusingArrow) Recommended() bool { return false }

func (r *NoConfusingArrow) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.ARROW_EXPR {
		return
	}
	body := n.LastChild()
	if body == nil || body.Kind() != syntaxkind.COND_EXPR {
		return
	}
	rng := body.TrimmedRange()
	ctx.Report(diagnostic.New(diagnostic.Info, "ambiguous arrow function body").
		WithFile(ctx.FileID).Primary(rng.Start, rng.End, "wrap the conditional in parentheses to clarify it is the arrow's body"))
}

var irregularWhitespace = []string{
	"\u000B", "\u000C", "\u00A0", "\uFEFF", "\u1680",
	"\u2000", "\u2001", "\u2002", "\u2003", "\u2004", "\u2005",
	"\u2006", "\u2007", "\u2008", "\u2009", "\u200A",
	"\u2028", "\u2029", "\u202F", "\u205F", "\u3000",
}

// NoIrregularWhitespace flags non-standard whitespace characters outside
// of string/template/regex/comment tokens, which are invisible sources of
// confusing diffs and copy-paste bugs.
type NoIrregularWhitespace struct{ rulengine.BaseRule }

func (NoIrregularWhitespace) Name() string { return "no-irregular-whitespace" }
func (NoIrregularWhitespace) Group() string { return "correctness" }
func (NoIrregularWhitespace) Tags() []string { return []string{"correctness"} }
func (NoIrregularWhitespace) Recommended() bool { return true }

func (r *NoIrregularWhitespace) CheckToken(ctx *rulengine.Ctx, t *red.Token) {
	if t.Kind() != syntaxkind.WHITESPACE {
		return
	}
	text := t.Text()
	for _, ch := range irregularWhitespace {
		if strings.Contains(text, ch) {
			rng := t.TextRange()
			ctx.Report(diagnostic.New(diagnostic.Warning, "irregular whitespace character").
				WithFile(ctx.FileID).Primary(rng.Start, rng.End, "use a regular space or tab"))
			return
		}
	}
}
