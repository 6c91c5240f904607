// Copyright 2023-2026 The Rue Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package syntax

import (
	"iter"
	"strings"

	"github.com/Rigidity/rue-lang/internal/arena"
	"github.com/Rigidity/rue-lang/source"
)

// Node is a red view of a composite node: the node's identity in the green
// tree plus an absolute byte offset and a way back to the parent view.
//
// Nodes are transient. They are computed on demand during traversal,
// derive all state from the read-only green tree, and should be discarded
// rather than stored.
type Node struct {
	tree   *Tree
	ptr    arena.Pointer[greenNode]
	offset int
	parent *Node
}

// Leaf is a red view of a single leaf token.
type Leaf struct {
	leaf   greenLeaf
	offset int
	parent *Node
}

// Element is one child of a [Node]: exactly one of Node and Leaf is
// non-nil.
type Element struct {
	Node *Node
	Leaf *Leaf
}

// Root returns a red view of this tree's root node, anchored at offset 0.
func (t *Tree) Root() *Node {
	return &Node{tree: t, ptr: t.root}
}

func (n *Node) green() *greenNode {
	return n.ptr.In(&n.tree.nodes)
}

// Kind returns this node's kind.
func (n *Node) Kind() Kind {
	return n.green().kind
}

// Span returns the absolute byte range this node covers.
func (n *Node) Span() source.Span {
	return source.Span{Start: n.offset, End: n.offset + n.green().textLen}
}

// Parent returns the view this node was reached through, or nil for the
// root.
func (n *Node) Parent() *Node {
	return n.parent
}

// Children iterates over this node's children in order, yielding a
// positioned view of each.
func (n *Node) Children() iter.Seq[Element] {
	return func(yield func(Element) bool) {
		offset := n.offset
		for _, c := range n.green().children {
			var el Element
			if c.node.Nil() {
				el.Leaf = &Leaf{leaf: c.leaf, offset: offset, parent: n}
			} else {
				el.Node = &Node{tree: n.tree, ptr: c.node, offset: offset, parent: n}
			}
			if !yield(el) {
				return
			}
			offset += c.textLen(n.tree)
		}
	}
}

// Text reconstructs the exact source text this node covers by
// concatenating its leaves in order.
func (n *Node) Text() string {
	var b strings.Builder
	b.Grow(n.green().textLen)
	n.writeText(&b)
	return b.String()
}

func (n *Node) writeText(b *strings.Builder) {
	for el := range n.Children() {
		if el.Leaf != nil {
			b.WriteString(el.Leaf.Text())
		} else {
			el.Node.writeText(b)
		}
	}
}

// Kind returns this leaf's kind.
func (l *Leaf) Kind() Kind {
	return l.leaf.kind
}

// Text returns this leaf's exact source text.
func (l *Leaf) Text() string {
	return l.leaf.text
}

// Terminated reports whether this leaf's lexical rule found its closing
// delimiter. It is false only for strings and block comments cut off by
// end-of-input.
func (l *Leaf) Terminated() bool {
	return l.leaf.terminated
}

// Span returns the absolute byte range of this leaf.
func (l *Leaf) Span() source.Span {
	return source.Span{Start: l.offset, End: l.offset + len(l.leaf.text)}
}

// Parent returns the node this leaf is attached to.
func (l *Leaf) Parent() *Node {
	return l.parent
}

// Kind returns the kind of whichever element this is.
func (e Element) Kind() Kind {
	if e.Leaf != nil {
		return e.Leaf.Kind()
	}
	return e.Node.Kind()
}

// Span returns the absolute byte range of whichever element this is.
func (e Element) Span() source.Span {
	if e.Leaf != nil {
		return e.Leaf.Span()
	}
	return e.Node.Span()
}
