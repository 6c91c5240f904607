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

// Package arena provides an append-only arena with compressed pointers.
//
// Values allocated on an [Arena] are addressed by a 32-bit [Pointer] rather
// than a live Go pointer, so data structures built over an arena stay
// position-independent and compact: a structure that stores Pointers can be
// shared, copied, and read concurrently without carrying real pointers into
// its own storage.
package arena

import (
	"fmt"
	"math/bits"
)

// blockMinShift is the log2 of the capacity of an Arena's first block.
const (
	blockMinShift = 4
	blockMinLen   = 1 << blockMinShift
)

// Pointer is a compressed pointer into an [Arena] of T.
//
// The zero value is nil. A Pointer can only be dereferenced in the arena
// that allocated it; see [Pointer.In].
type Pointer[T any] uint32

// Nil returns whether this is the nil pointer.
func (p Pointer[T]) Nil() bool {
	return p == 0
}

// In dereferences this pointer in the given arena.
//
// arena must be the arena that allocated p. Panics if p is nil.
func (p Pointer[T]) In(arena *Arena[T]) *T {
	if p.Nil() {
		panic("rue/arena: dereferenced nil arena pointer")
	}
	block, idx := arena.coordinates(int(p) - 1)
	return &arena.blocks[block][idx]
}

// Arena is an append-only allocator for values of type T.
//
// Unlike a plain []T, an Arena never moves the values it holds: it keeps a
// table of exponentially growing blocks instead of reallocating one backing
// slice. Lookup stays O(1) at the cost of one extra pointer load.
//
// The value of a Pointer is one plus the number of values allocated before
// it, so the zero Pointer is always nil. A zero Arena is empty and ready to
// use.
type Arena[T any] struct {
	// Invariants:
	// 1. cap(blocks[0]) == blockMinLen.
	// 2. cap(blocks[n]) == 2*cap(blocks[n-1]).
	// 3. Every block but the last is full.
	blocks [][]T
}

// New allocates value on the arena and returns its pointer.
func (a *Arena[T]) New(value T) Pointer[T] {
	if a.blocks == nil {
		a.blocks = [][]T{make([]T, 0, blockMinLen)}
	}

	last := &a.blocks[len(a.blocks)-1]
	if len(*last) == cap(*last) {
		a.blocks = append(a.blocks, make([]T, 0, 2*cap(*last)))
		last = &a.blocks[len(a.blocks)-1]
	}

	*last = append(*last, value)
	return Pointer[T](a.Len())
}

// Len returns the number of values allocated so far.
func (a *Arena[T]) Len() int {
	if len(a.blocks) == 0 {
		return 0
	}
	// Every block but the last is full.
	return a.lenOfFirstNBlocks(len(a.blocks)-1) + len(a.blocks[len(a.blocks)-1])
}

// lenOfFirstNBlocks returns the total capacity of the first n blocks.
func (a *Arena[T]) lenOfFirstNBlocks(n int) int {
	// Block capacities are blockMinLen << 0, << 1, << 2, ..., so the first n
	// of them sum to (blockMinLen << n) - blockMinLen.
	return max(0, blockMinLen<<n-blockMinLen)
}

// coordinates locates the block and offset of the given zero-based index,
// bounds-checking it against the allocated length.
func (a *Arena[T]) coordinates(idx int) (int, int) {
	if idx < 0 || idx >= a.Len() {
		panic(fmt.Sprintf("rue/arena: pointer out of range: %#x", idx))
	}

	// The cumulative start of block n is (2^n - 1) << blockMinShift, so
	// idx + blockMinLen has its highest set bit at position
	// blockMinShift + 1 + n for indices inside block n.
	block := bits.Len(uint(idx)+blockMinLen) - blockMinShift - 1
	idx -= a.lenOfFirstNBlocks(block)
	return block, idx
}
