// Package green implements the immutable, shared "green" tree: interior nodes carry only a kind and children,
// never a position, so structurally identical subtrees can be shared by
// reference.
//
// The split mirrors a Node/Position split in
// pkgs/ast/ast.go (every AST node separately carries a Position and a
// TokenRange rather than baking an offset into the node itself) — here we
// go one step further and keep the shared, positionless element
// (GreenNode/GreenToken) wholly separate from the positioned cursor
// (pkg/red).
package green

import (
	"github.com/aledsdavies/cstlint/pkg/intern"
	"github.com/aledsdavies/cstlint/pkg/lexer"
	"github.com/aledsdavies/cstlint/pkg/syntaxkind"
)

// Element is either a *Node or a *Token.
type Element interface {
	Kind() syntaxkind.Kind
	TextLen() int
	isElement()
}

// Token is an immutable leaf. It never carries a range; text is interned so
// structurally identical tokens across a whole file (or across files) share
// storage.
type Token struct {
	kind syntaxkind.Kind
	text intern.Handle
	err *lexer.LexDiag
}

// NewToken builds a green token from a lexer token, interning its text.
func NewToken(tok lexer.Token) *Token {
	return &Token{kind: tok.Kind, text: intern.Global.Intern(tok.Text), err: tok.Err}
}

func (t *Token) Kind() syntaxkind.Kind { return t.kind }
func (t *Token) Text() string { return t.text.String() }
func (t *Token) TextLen() int { return len(t.text.String()) }
func (t *Token) Err() *lexer.LexDiag { return t.err }
func (*Token) isElement() {}

// Node is an immutable interior node: a kind plus an ordered list of
// children, each itself an Element. text_len is cached at construction and
// never mutated afterward.
type Node struct {
	kind syntaxkind.Kind
	children []Element
	textLen int
}

// NewNode constructs a Node, computing and caching its text length from its
// children. Refcounting is implicit: Go's garbage collector keeps a Node
// alive exactly as long as something references it, which is all a
// "shared by refcount" design needs in a GC'd language.
func NewNode(kind syntaxkind.Kind, children []Element) *Node {
	total := 0
	for _, c := range children {
		total += c.TextLen()
	}
	return &Node{kind: kind, children: children, textLen: total}
}

func (n *Node) Kind() syntaxkind.Kind { return n.kind }
func (n *Node) TextLen() int { return n.textLen }
func (n *Node) Children() []Element { return n.children }
func (*Node) isElement() {}

// ChildrenWithTokens is an alias for Children kept for readability at call
// sites that want to stress they are iterating both node and token
// children.
func (n *Node) ChildrenWithTokens() []Element { return n.children }

// Text reconstructs the full text of the subtree rooted at e by
// concatenating leaf token text in pre-order. Used by tests to verify
// losslessness and by tooling that needs the
// original source of a subtree without going through a red cursor.
func Text(e Element) string {
	switch v := e.(type) {
	case *Token:
		return v.Text()
	case *Node:
		var b []byte
		for _, c := range v.children {
			b = append(b, Text(c)...)
		}
		return string(b)
	}
	return ""
}
