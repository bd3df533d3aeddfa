package rules

import (
	"github.com/aledsdavies/cstlint/pkg/diagnostic"
	"github.com/aledsdavies/cstlint/pkg/red"
	"github.com/aledsdavies/cstlint/pkg/rulengine"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// BlockSpacing flags a block whose braces aren't separated from their
// contents by whitespace, e.g. `{foo();}` instead of `{ foo(); }`, with an
// autofix that inserts the missing space. Grounded on
// rslint_core/src/groups/style/block_spacing.rs.
type BlockSpacing struct{ rulengine.BaseRule }

func (BlockSpacing) Name() string { return "block-spacing" }
func (BlockSpacing) Group() string { return "style" }
func (BlockSpacing) Tags() []string { return []string{"style"} }
func (BlockSpacing) Recommended() bool { return false }

func (r *BlockSpacing) CheckNode(ctx *rulengine.Ctx, n *red.Node) {
	if n.Kind() != syntaxkind.BLOCK_STMT || len(n.Children()) == 0 {
		return
	}
	open := n.FirstToken()
	closeTok := n.LastToken()
	if open == nil || closeTok == nil {
		return
	}
	firstInner := n.Children()[0]
	lastInner := n.Children()[len(n.Children())-1]

	if gap := firstInner.TrimmedRange().Start - open.TextRange().End; gap == 0 {
		pos := open.TextRange().End
		ctx.Report(diagnostic.New(diagnostic.Warning, "missing space after '{'").
			WithFile(ctx.FileID).Primary(pos, pos, "insert a space here").
			Suggestion(pos, pos, "add a space", " ", diagnostic.Always))
		ctx.Fixer().AddIndel(pos, pos, " ")
	}
	if gap := closeTok.TextRange().Start - lastInner.TrimmedRange().End; gap == 0 {
		pos := closeTok.TextRange().Start
		ctx.Report(diagnostic.New(diagnostic.Warning, "missing space before '}'").
			WithFile(ctx.FileID).Primary(pos, pos, "insert a space here").
			Suggestion(pos, pos, "add a space", " ", diagnostic.Always))
		ctx.Fixer().AddIndel(pos, pos, " ")
	}
}
