// Package red implements the lazily-materialized, parent-aware "red" cursor
// over a green tree. A red cursor pairs a
// green element with its absolute byte offset and a parent chain; unlike
// green nodes, red cursors are never shared and are cheap to create and
// drop.
package red

import (
	"github.com/aledsdavies/cstlint/pkg/green"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// TextRange is a half-open byte range [Start, End) into the source text.
type TextRange struct {
	Start, End int
}

// Len returns the number of bytes the range spans.
func (r TextRange) Len() int { return r.End - r.Start }

// Contains reports whether r fully contains other.
func (r TextRange) Contains(other TextRange) bool {
	return r.Start <= other.Start && other.End <= r.End
}

// Overlaps reports whether r and other share at least one byte.
func (r TextRange) Overlaps(other TextRange) bool {
	return r.Start < other.End && other.Start < r.End
}

// parent is the shared, reusable representation of a node's ancestry; a
// Node and all its siblings' cursors can reference the same parent record.
type parent struct {
	node *Node
	indexInParentChildren int
}

// Node is a red cursor over a *green.Node.
type Node struct {
	green *green.Node
	offset int
	par *parent
	rootGreen *green.Node
}

// Token is a red cursor over a *green.Token.
type Token struct {
	green *green.Token
	offset int
	par *parent
}

// NewRoot creates the red cursor for the root of a tree.
func NewRoot(g *green.Node) *Node {
	return &Node{green: g, offset: 0, rootGreen: g}
}

func (n *Node) Kind() syntaxkind.Kind { return n.green.Kind() }

// Text returns the node's full source text, including leading/trailing
// trivia, reconstructed losslessly from its green subtree.
func (n *Node) Text() string { return green.Text(n.green) }

// TextRange returns the node's absolute byte range.
func (n *Node) TextRange() TextRange {
	return TextRange{Start: n.offset, End: n.offset + n.green.TextLen()}
}

// TrimmedRange returns TextRange minus any leading/trailing trivia tokens,
// used by diagnostics so labels point at meaningful code rather than
// surrounding whitespace/comments.
func (n *Node) TrimmedRange() TextRange {
	full := n.TextRange()
	first := n.FirstToken()
	last := n.LastToken()
	start, end := full.Start, full.End
	for first != nil && syntaxkind.IsTrivia(first.Kind()) {
		start = first.TextRange().End
		first = first.nextTokenNoCross()
	}
	for last != nil && syntaxkind.IsTrivia(last.Kind()) {
		end = last.TextRange().Start
		last = last.prevTokenNoCross()
	}
	if start > end {
		return TextRange{Start: full.Start, End: full.Start}
	}
	return TextRange{Start: start, End: end}
}

// Parent returns the node's parent cursor, or nil for the root.
func (n *Node) Parent() *Node {
	if n.par == nil {
		return nil
	}
	return n.par.node
}

// IndexInParent returns n's position among its parent's direct
// node-and-token children (ChildrenWithTokens order), or -1 for the root.
// Used by the incremental reparser to splice a replacement green subtree
// back into its ancestor chain.
func (n *Node) IndexInParent() int {
	if n.par == nil {
		return -1
	}
	return n.par.indexInParentChildren
}

// Green returns the underlying green node, for callers (incremental
// reparse) that need to rebuild an ancestor chain around a replacement.
func (n *Node) Green() *green.Node { return n.green }

// Children iterates direct child nodes (tokens skipped).
func (n *Node) Children() []*Node {
	var out []*Node
	off := n.offset
	for i, c := range n.green.Children() {
		if gn, ok := c.(*green.Node); ok {
			out = append(out, &Node{green: gn, offset: off, par: &parent{node: n, indexInParentChildren: i}})
		}
		off += c.TextLen()
	}
	return out
}

// ChildElement is a child of a red node: exactly one of Node or Token is
// non-nil.
type ChildElement struct {
	Node *Node
	Token *Token
}

// Range returns the child's absolute text range regardless of which
// variant it holds.
func (c ChildElement) Range() TextRange {
	if c.Node != nil {
		return c.Node.TextRange()
	}
	return c.Token.TextRange()
}

// Kind returns the child's kind regardless of which variant it holds.
func (c ChildElement) Kind() syntaxkind.Kind {
	if c.Node != nil {
		return c.Node.Kind()
	}
	return c.Token.Kind()
}

// ChildrenWithTokens iterates every direct child, node or token.
func (n *Node) ChildrenWithTokens() []ChildElement {
	children := n.green.Children()
	out := make([]ChildElement, 0, len(children))
	off := n.offset
	for i, c := range children {
		switch v := c.(type) {
		case *green.Node:
			out = append(out, ChildElement{Node: &Node{green: v, offset: off, par: &parent{node: n, indexInParentChildren: i}}})
		case *green.Token:
			out = append(out, ChildElement{Token: &Token{green: v, offset: off, par: &parent{node: n, indexInParentChildren: i}}})
		}
		off += c.TextLen()
	}
	return out
}

// FirstChild returns the first direct child node, or nil.
func (n *Node) FirstChild() *Node {
	c := n.Children()
	if len(c) == 0 {
		return nil
	}
	return c[0]
}

// LastChild returns the last direct child node, or nil.
func (n *Node) LastChild() *Node {
	c := n.Children()
	if len(c) == 0 {
		return nil
	}
	return c[len(c)-1]
}

// NextSibling returns the next sibling node at the same level, or nil.
func (n *Node) NextSibling() *Node {
	if n.par == nil {
		return nil
	}
	siblings := n.par.node.ChildrenWithTokens()
	for i := n.par.indexInParentChildren + 1; i < len(siblings); i++ {
		if siblings[i].Node != nil {
			return siblings[i].Node
		}
	}
	return nil
}

// PrevSibling returns the previous sibling node at the same level, or nil.
func (n *Node) PrevSibling() *Node {
	if n.par == nil {
		return nil
	}
	siblings := n.par.node.ChildrenWithTokens()
	for i := n.par.indexInParentChildren - 1; i >= 0; i-- {
		if siblings[i].Node != nil {
			return siblings[i].Node
		}
	}
	return nil
}

// Descendants returns every descendant node in pre-order (tokens skipped).
func (n *Node) Descendants() []*Node {
	var out []*Node
	var walk func(*Node)
	walk = func(cur *Node) {
		out = append(out, cur)
		for _, c := range cur.Children() {
			walk(c)
		}
	}
	for _, c := range n.Children() {
		walk(c)
	}
	return out
}

// DescendantsWithTokens returns every descendant node and token in
// pre-order, including n's own direct children but not n itself.
func (n *Node) DescendantsWithTokens() []ChildElement {
	var out []ChildElement
	var walk func(*Node)
	walk = func(cur *Node) {
		for _, c := range cur.ChildrenWithTokens() {
			out = append(out, c)
			if c.Node != nil {
				walk(c.Node)
			}
		}
	}
	walk(n)
	return out
}

// FirstToken returns the first leaf token in this subtree, or nil.
func (n *Node) FirstToken() *Token {
	for _, c := range n.ChildrenWithTokens() {
		if c.Token != nil {
			return c.Token
		}
		if c.Node != nil {
			if t := c.Node.FirstToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// LastToken returns the last leaf token in this subtree, or nil.
func (n *Node) LastToken() *Token {
	children := n.ChildrenWithTokens()
	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.Token != nil {
			return c.Token
		}
		if c.Node != nil {
			if t := c.Node.LastToken(); t != nil {
				return t
			}
		}
	}
	return nil
}

// CoveringElement returns the smallest node fully containing rng.
func (n *Node) CoveringElement(rng TextRange) *Node {
	if !n.TextRange().Contains(rng) {
		return nil
	}
	cur := n
	for {
		advanced := false
		for _, c := range cur.Children() {
			if c.TextRange().Contains(rng) {
				cur = c
				advanced = true
				break
			}
		}
		if !advanced {
			return cur
		}
	}
}

// StructuralLossyTokenEq compares the non-trivia token texts of n, in
// order, against want.
func (n *Node) StructuralLossyTokenEq(want []string) bool {
	var got []string
	for _, c := range n.DescendantsWithTokens() {
		if c.Token != nil && !syntaxkind.IsTrivia(c.Token.Kind()) {
			got = append(got, c.Token.Text())
		}
	}
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

// --- Token cursor ---

func (t *Token) Kind() syntaxkind.Kind { return t.green.Kind() }
func (t *Token) Text() string { return t.green.Text() }
func (t *Token) TextRange() TextRange {
	return TextRange{Start: t.offset, End: t.offset + t.green.TextLen()}
}
func (t *Token) Parent() *Node {
	if t.par == nil {
		return nil
	}
	return t.par.node
}

func (t *Token) nextTokenNoCross() *Token {
	if t.par == nil {
		return nil
	}
	siblings := t.par.node.ChildrenWithTokens()
	for i := t.par.indexInParentChildren + 1; i < len(siblings); i++ {
		if siblings[i].Token != nil {
			return siblings[i].Token
		}
		if siblings[i].Node != nil {
			if tok := siblings[i].Node.FirstToken(); tok != nil {
				return tok
			}
		}
	}
	return nil
}

func (t *Token) prevTokenNoCross() *Token {
	if t.par == nil {
		return nil
	}
	siblings := t.par.node.ChildrenWithTokens()
	for i := t.par.indexInParentChildren - 1; i >= 0; i-- {
		if siblings[i].Token != nil {
			return siblings[i].Token
		}
		if siblings[i].Node != nil {
			if tok := siblings[i].Node.LastToken(); tok != nil {
				return tok
			}
		}
	}
	return nil
}
