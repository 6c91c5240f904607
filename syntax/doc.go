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

// Package syntax provides the lossless syntax tree of the rue language and
// the [Kind] registry shared by tokens and tree nodes.
//
// # Green and red trees
//
// A finished [Tree] stores only "green" data: each node knows its kind, its
// children in order, and the total length of the text it covers, but not
// where in the file it sits and not who its parent is. Green nodes live in
// an index-addressed arena rather than behind live pointers, so identical
// subtrees can be shared between trees and a built Tree can be read from
// any number of goroutines without synchronization.
//
// Positions and parent navigation come from the "red" layer: [Node] and
// [Leaf] are transient views that a traversal builds top-down, carrying an
// absolute offset computed from the anchor offset of the parent plus the
// widths of preceding siblings. Red views are cheap, throwaway values;
// they are created by [Tree.Root] and [Node.Children] and discarded after
// use.
//
// # Losslessness
//
// Every token of the input, including whitespace and comments, appears as
// a leaf of the tree, so concatenating the leaves of the root in order
// ([Node.Text]) reproduces the original source byte-for-byte.
package syntax
