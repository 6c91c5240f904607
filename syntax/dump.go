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
	"strings"
)

// Dump renders this subtree as deterministic indented text, one element
// per line: "Kind@start..end" for nodes and "Kind@start..end \"text\"" for
// leaves. The format is stable and intended for golden-file assertions.
func (n *Node) Dump() string {
	var b strings.Builder
	dumpElement(&b, Element{Node: n}, 0)
	return b.String()
}

func dumpElement(b *strings.Builder, el Element, depth int) {
	for range depth {
		b.WriteString("  ")
	}

	sp := el.Span()
	if el.Leaf != nil {
		fmt.Fprintf(b, "%v@%v %q\n", el.Kind(), sp, el.Leaf.Text())
		return
	}

	fmt.Fprintf(b, "%v@%v\n", el.Kind(), sp)
	for child := range el.Node.Children() {
		dumpElement(b, child, depth+1)
	}
}
