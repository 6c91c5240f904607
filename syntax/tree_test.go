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

package syntax_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"github.com/Rigidity/rue-lang/source"
	"github.com/Rigidity/rue-lang/syntax"
)

// buildSample assembles the tree for "fn /*x*/ (hi)" by hand:
//
//	Program
//	  Fn "fn"
//	  Whitespace " "
//	  BlockComment "/*x*/"
//	  Whitespace " "
//	  Error
//	    OpenParen "("
//	    Ident "hi"
//	    CloseParen ")"
func buildSample() *syntax.Tree {
	b := syntax.NewBuilder()
	b.Start(syntax.Program)
	b.Token(syntax.Fn, "fn")
	b.Token(syntax.Whitespace, " ")
	b.Token(syntax.BlockComment, "/*x*/")
	b.Token(syntax.Whitespace, " ")
	b.Start(syntax.Error)
	b.Token(syntax.OpenParen, "(")
	b.Token(syntax.Ident, "hi")
	b.Token(syntax.CloseParen, ")")
	b.Finish()
	b.Finish()
	return b.Build()
}

func TestRedViews(t *testing.T) {
	t.Parallel()

	root := buildSample().Root()
	assert.Equal(t, syntax.Program, root.Kind())
	assert.Equal(t, source.Span{Start: 0, End: 13}, root.Span())
	assert.Nil(t, root.Parent())
	assert.Equal(t, "fn /*x*/ (hi)", root.Text())

	var kinds []syntax.Kind
	var spans []source.Span
	for el := range root.Children() {
		kinds = append(kinds, el.Kind())
		spans = append(spans, el.Span())
	}
	assert.Equal(t, []syntax.Kind{
		syntax.Fn, syntax.Whitespace, syntax.BlockComment, syntax.Whitespace, syntax.Error,
	}, kinds)
	assert.Equal(t, []source.Span{
		{Start: 0, End: 2},
		{Start: 2, End: 3},
		{Start: 3, End: 8},
		{Start: 8, End: 9},
		{Start: 9, End: 13},
	}, spans)
}

func TestParentNavigation(t *testing.T) {
	t.Parallel()

	root := buildSample().Root()

	var errNode *syntax.Node
	for el := range root.Children() {
		if el.Node != nil {
			errNode = el.Node
		}
	}
	require.NotNil(t, errNode)
	assert.Same(t, root, errNode.Parent())

	// The nested node's children are positioned by the parent's anchor.
	var leaves []*syntax.Leaf
	for el := range errNode.Children() {
		require.NotNil(t, el.Leaf)
		leaves = append(leaves, el.Leaf)
	}
	require.Len(t, leaves, 3)
	assert.Equal(t, source.Span{Start: 10, End: 12}, leaves[1].Span())
	assert.Equal(t, "hi", leaves[1].Text())
	assert.True(t, leaves[1].Terminated())
	assert.Same(t, errNode, leaves[1].Parent())
}

func TestUnterminatedLeaf(t *testing.T) {
	t.Parallel()

	b := syntax.NewBuilder()
	b.Start(syntax.Program)
	b.Unterminated(syntax.String, `"oops`)
	b.Finish()
	root := b.Build().Root()

	for el := range root.Children() {
		require.NotNil(t, el.Leaf)
		assert.False(t, el.Leaf.Terminated())
	}
}

func TestDump(t *testing.T) {
	t.Parallel()

	want := "" +
		"Program@0..13\n" +
		"  Fn@0..2 \"fn\"\n" +
		"  Whitespace@2..3 \" \"\n" +
		"  BlockComment@3..8 \"/*x*/\"\n" +
		"  Whitespace@8..9 \" \"\n" +
		"  Error@9..13\n" +
		"    OpenParen@9..10 \"(\"\n" +
		"    Ident@10..12 \"hi\"\n" +
		"    CloseParen@12..13 \")\"\n"
	assert.Equal(t, want, buildSample().Root().Dump())
}

func TestBuilderMisuse(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { syntax.NewBuilder().Finish() })
	assert.Panics(t, func() { syntax.NewBuilder().Token(syntax.Ident, "x") })
	assert.Panics(t, func() { syntax.NewBuilder().Build() })
	assert.Panics(t, func() {
		b := syntax.NewBuilder()
		b.Start(syntax.Program)
		b.Build() // Still open.
	})
}

// A built tree is an immutable value: many goroutines may traverse it at
// once, each constructing its own red views.
func TestConcurrentTraversal(t *testing.T) {
	t.Parallel()

	tree := buildSample()
	want := tree.Root().Dump()

	var eg errgroup.Group
	for range 16 {
		eg.Go(func() error {
			for range 100 {
				root := tree.Root()
				if got := root.Dump(); got != want {
					return assert.AnError
				}
				if got := root.Text(); got != "fn /*x*/ (hi)" {
					return assert.AnError
				}
			}
			return nil
		})
	}
	require.NoError(t, eg.Wait())
}
