package green

import (
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// Builder assembles a green tree bottom-up from a flat sequence of
// start_node/token/finish_node calls. A Checkpoint lets a
// caller retroactively wrap a range of already-emitted siblings in a new
// parent node via StartNodeAt — the mechanism the parser uses to turn a
// parenthesized expression into an arrow-function parameter list only
// once it sees the trailing "=>".
type Builder struct {
	// parents is a stack of in-progress children slices; parents[len-1] is
	// the slice currently being appended to.
	parents [][]Element
}

// NewBuilder creates an empty Builder with one open implicit root frame.
func NewBuilder() *Builder {
	return &Builder{parents: [][]Element{nil}}
}

// Checkpoint marks a position in the current frame's children so a later
// StartNodeAt can retroactively wrap everything appended since.
type Checkpoint struct {
	frame int
	index int
}

// Checkpoint records the current insertion point.
func (b *Builder) Checkpoint() Checkpoint {
	top := len(b.parents) - 1
	return Checkpoint{frame: top, index: len(b.parents[top])}
}

// StartNode opens a new node frame; children appended until the matching
// FinishNode become this node's children.
func (b *Builder) StartNode() {
	b.parents = append(b.parents, nil)
}

// StartNodeAt opens a new frame that, once finished, will wrap every
// sibling appended to the checkpoint's frame since the checkpoint was
// taken. Those siblings are spliced out of the checkpoint frame now and
// become the new frame's initial children.
func (b *Builder) StartNodeAt(cp Checkpoint) {
	frame := b.parents[cp.frame]
	wrapped := append([]Element(nil), frame[cp.index:]...)
	b.parents[cp.frame] = frame[:cp.index]
	b.parents = append(b.parents, wrapped)
}

// FinishNode closes the current frame, producing a Node of kind and
// appending it to the parent frame.
func (b *Builder) FinishNode(kind syntaxkind.Kind) *Node {
	top := len(b.parents) - 1
	children := b.parents[top]
	b.parents = b.parents[:top]
	node := NewNode(kind, children)
	b.parents[top-1] = append(b.parents[top-1], node)
	return node
}

// Abandon discards the current frame's children into the parent frame
// without wrapping them in a node — the tombstone case for a Marker that
// was never completed.
func (b *Builder) Abandon() {
	top := len(b.parents) - 1
	children := b.parents[top]
	b.parents = b.parents[:top]
	b.parents[top-1] = append(b.parents[top-1], children...)
}

// Token appends a leaf token to the current frame.
func (b *Builder) Token(tok lexer.Token) {
	top := len(b.parents) - 1
	b.parents[top] = append(b.parents[top], NewToken(tok))
}

// Finish closes the implicit root frame and returns the single root Node.
// kind is the kind of the synthetic root wrapper if more than one element
// accumulated at the top level (should not happen for a well-formed parse,
// but guards against builder misuse).
func (b *Builder) Finish(kind syntaxkind.Kind) *Node {
	top := len(b.parents) - 1
	children := b.parents[top]
	if len(children) == 1 {
		if n, ok := children[0].(*Node); ok {
			return n
		}
	}
	return NewNode(kind, children)
}
