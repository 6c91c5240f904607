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
	"fmt"

	"github.com/Rigidity/rue-lang/internal/arena"
)

// Tree is a finished green syntax tree.
//
// A Tree is immutable once built and carries no offsets and no parent
// pointers; see the package documentation. Use [Tree.Root] to obtain a
// positioned view.
type Tree struct {
	nodes arena.Arena[greenNode]
	root  arena.Pointer[greenNode]
}

// greenNode is an interior node: a kind plus ordered children. textLen
// caches the total byte length of the text under this node, so red views
// can compute sibling offsets without walking to the leaves.
type greenNode struct {
	kind     Kind
	textLen  int
	children []greenChild
}

// greenChild is one child of a green node: a sub-node when node is
// non-nil, otherwise the inline leaf token.
type greenChild struct {
	node arena.Pointer[greenNode]
	leaf greenLeaf
}

// greenLeaf is a leaf token as stored in the tree. text aliases the input
// source; the tree never copies it.
type greenLeaf struct {
	kind       Kind
	text       string
	terminated bool
}

func (c greenChild) textLen(t *Tree) int {
	if c.node.Nil() {
		return len(c.leaf.text)
	}
	return c.node.In(&t.nodes).textLen
}

// Builder assembles a [Tree] bottom-up.
//
// Composite nodes are bracketed with [Builder.Start] and [Builder.Finish];
// tokens are appended to the innermost open node with [Builder.Token]. A
// node becomes immutable the moment it is finished. Exactly one node must
// remain when the brackets balance: that node is the root.
//
// Builder methods panic on misuse (unbalanced brackets, tokens outside any
// open node); those are defects in the driving parser, not input errors.
type Builder struct {
	tree *Tree
	open []openNode
	root arena.Pointer[greenNode]
}

type openNode struct {
	kind     Kind
	children []greenChild
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{tree: &Tree{}}
}

// Start opens a new composite node of the given kind.
func (b *Builder) Start(kind Kind) {
	b.open = append(b.open, openNode{kind: kind})
}

// Token appends a terminated leaf token to the innermost open node.
func (b *Builder) Token(kind Kind, text string) {
	b.push(greenLeaf{kind: kind, text: text, terminated: true})
}

// Unterminated appends a leaf token whose lexical rule ran into
// end-of-input (an unclosed string or block comment).
func (b *Builder) Unterminated(kind Kind, text string) {
	b.push(greenLeaf{kind: kind, text: text})
}

func (b *Builder) push(leaf greenLeaf) {
	if len(b.open) == 0 {
		panic("rue/syntax: Token called with no open node")
	}
	top := &b.open[len(b.open)-1]
	top.children = append(top.children, greenChild{leaf: leaf})
}

// Finish closes the innermost open node, appending it to its parent. If it
// was the outermost open node, it becomes the root of the tree.
func (b *Builder) Finish() {
	if len(b.open) == 0 {
		panic("rue/syntax: Finish called with no open node")
	}
	top := b.open[len(b.open)-1]
	b.open = b.open[:len(b.open)-1]

	node := greenNode{kind: top.kind, children: top.children}
	for _, c := range top.children {
		node.textLen += c.textLen(b.tree)
	}
	ptr := b.tree.nodes.New(node)

	if len(b.open) > 0 {
		parent := &b.open[len(b.open)-1]
		parent.children = append(parent.children, greenChild{node: ptr})
		return
	}
	if !b.root.Nil() {
		panic("rue/syntax: Finish produced a second root")
	}
	b.root = ptr
}

// Build returns the finished tree. The Builder must not be used afterward.
func (b *Builder) Build() *Tree {
	if n := len(b.open); n != 0 {
		panic(fmt.Sprintf("rue/syntax: Build called with %d unfinished node(s)", n))
	}
	if b.root.Nil() {
		panic("rue/syntax: Build called before a root was finished")
	}
	b.tree.root = b.root
	return b.tree
}
