// Package incremental implements incremental reparse: locate the
// smallest "restartable" node covering an edit, re-lex/re-parse just
// that subtree, and splice the new green subtree into a new root that
// shares every unaffected sibling subtree by reference — the same
// structural-sharing argument the green tree makes in general, applied
// here across edits instead of across one parse.
//
// Follows the architecture rust-analyzer documents for this problem:
// restartable node kinds are block-level and function-level, since they
// have self-delimiting '{'...'}' boundaries that make re-lexing safe
// without touching anything outside the edit.
package incremental

import (
	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/parser"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// Edit describes a single text replacement: delete [Start,End) and insert
// Text in its place.
type Edit struct {
	Start, End int
	Text string
}

// restartableKinds is the set of node kinds eligible to be the unit of a
// restarted parse: each is delimited by its own '{'/'}' pair, so
// re-lexing its interior in isolation cannot desynchronize token
// boundaries with the surrounding tree.
var restartableKinds = syntaxkind.NewTokenSet(
	syntaxkind.BLOCK_STMT, syntaxkind.FUNCTION_DECL, syntaxkind.FUNCTION_EXPR,
	syntaxkind.CLASS_BODY, syntaxkind.SCRIPT, syntaxkind.MODULE,
)

// Result is the outcome of an incremental reparse attempt.
type Result struct {
	Root *green.Node
	Diagnostics []*diagnostic.Diagnostic
	// FullReparse reports whether no restartable node covered the edit and
	// a full reparse of the whole source was done instead.
	FullReparse bool
}

// Reparse applies edit to oldSource (producing newSource) and attempts to
// reuse as much of oldRoot as possible. isModule selects script vs module
// grammar for whichever subtree (or the whole file) ends up being
// reparsed.
func Reparse(oldRoot *green.Node, oldSource string, edit Edit, isModule bool) (newSource string, result Result) {
	newSource = oldSource[:edit.Start] + edit.Text + oldSource[edit.End:]

	target := findRestartableCovering(oldRoot, edit)
	if target == nil {
		root, diags := parseWhole(newSource, isModule)
		return newSource, Result{Root: root, Diagnostics: diags, FullReparse: true}
	}

	rng := target.TextRange()
	shift := len(edit.Text) - (edit.End - edit.Start)
	newEnd := rng.End + shift
	subSource := newSource[rng.Start:newEnd]

	subRoot, diags := parseSubtree(subSource, target.Kind(), isModule)
	for _, d := range diags {
		shiftDiagnostic(d, rng.Start)
	}

	newRoot := spliceReplacement(target, subRoot)
	return newSource, Result{Root: newRoot, Diagnostics: diags}
}

// shiftDiagnostic rebases every span on d, in place, by base bytes: d was
// produced against subSource (offset 0 at the restartable node's own
// start), but callers need spans in newSource's coordinate space.
func shiftDiagnostic(d *diagnostic.Diagnostic, base int) {
	for i := range d.Children {
		d.Children[i].Span.Start += base
		d.Children[i].Span.End += base
	}
	for i := range d.Suggestions {
		for j := range d.Suggestions[i].Substitutions {
			d.Suggestions[i].Substitutions[j].Span.Start += base
			d.Suggestions[i].Substitutions[j].Span.End += base
		}
		for j := range d.Suggestions[i].InnerLabelRanges {
			d.Suggestions[i].InnerLabelRanges[j].Start += base
			d.Suggestions[i].InnerLabelRanges[j].End += base
		}
	}
}

// findRestartableCovering walks from the root down to the smallest
// restartable-kind node whose range fully contains the edit.
func findRestartableCovering(root *green.Node, edit Edit) *red.Node {
	cursor := red.NewRoot(root)
	editRange := red.TextRange{Start: edit.Start, End: edit.End}
	if !cursor.TextRange().Contains(editRange) {
		return nil
	}
	var best *red.Node
	if restartableKinds.Contains(cursor.Kind()) {
		best = cursor
	}
	for {
		advanced := false
		for _, c := range cursor.Children() {
			if c.TextRange().Contains(editRange) {
				cursor = c
				advanced = true
				if restartableKinds.Contains(cursor.Kind()) {
					best = cursor
				}
				break
			}
		}
		if !advanced {
			break
		}
	}
	return best
}

func parseWhole(source string, isModule bool) (*green.Node, []*diagnostic.Diagnostic) {
	p := parser.New(source, 0)
	var root *green.Node
	if isModule {
		root = p.ParseModule()
	} else {
		root = p.ParseScript()
	}
	return root, p.Diagnostics()
}

// parseSubtree reparses exactly the text of one restartable node. Since
// every restartable kind is a full statement/declaration list (a block
// body, a whole script/module), reparsing it with the top-level statement
// grammar and taking the single resulting child reproduces the same
// shape the original full parse would have produced for that span.
func parseSubtree(source string, kind syntaxkind.Kind, isModule bool) (*green.Node, []*diagnostic.Diagnostic) {
	switch kind {
	case syntaxkind.SCRIPT:
		return parseWhole(source, false)
	case syntaxkind.MODULE:
		return parseWhole(source, true)
	default:
		// BLOCK_STMT / FUNCTION_DECL / FUNCTION_EXPR / CLASS_BODY all
		// round-trip through a bare script parse of their own source,
		// since each is self-delimited by braces already included in
		// its range.
		return parseWhole(source, isModule)
	}
}

// spliceReplacement rebuilds the ancestor chain from target's parent up
// to the root, replacing target's slot with replacement and sharing every
// other sibling subtree by reference.
func spliceReplacement(target *red.Node, replacement *green.Node) *green.Node {
	cur := target
	var newChild green.Element = replacement
	for {
		parent := cur.Parent()
		if parent == nil {
			return replacement
		}
		children := append([]green.Element(nil), parent.Green().Children()...)
		idx := cur.IndexInParent()
		children[idx] = newChild
		newChild = green.NewNode(parent.Kind(), children)
		cur = parent
	}
}
