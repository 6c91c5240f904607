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

package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Rigidity/rue-lang/source"
)

func TestLocation(t *testing.T) {
	t.Parallel()

	f := source.NewFile("test.rue", "fn\nmain\n\nend")
	tests := []struct {
		offset int
		want   source.Location
	}{
		{0, source.Location{Line: 1, Column: 1}},
		{1, source.Location{Line: 1, Column: 2}},
		{2, source.Location{Line: 1, Column: 3}}, // the \n itself
		{3, source.Location{Line: 2, Column: 1}},
		{7, source.Location{Line: 2, Column: 5}},
		{8, source.Location{Line: 3, Column: 1}},
		{9, source.Location{Line: 4, Column: 1}},
		{12, source.Location{Line: 4, Column: 4}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Location(tt.offset), "offset %d", tt.offset)
	}
}

func TestLocationEmpty(t *testing.T) {
	t.Parallel()

	f := source.NewFile("empty.rue", "")
	assert.Equal(t, source.Location{Line: 1, Column: 1}, f.Location(0))
	// Out-of-range offsets clamp instead of panicking.
	assert.Equal(t, source.Location{Line: 1, Column: 1}, f.Location(100))
	assert.Equal(t, source.Location{Line: 1, Column: 1}, f.Location(-1))
}

func TestSpan(t *testing.T) {
	t.Parallel()

	sp := source.Span{Start: 3, End: 10}
	assert.Equal(t, 7, sp.Len())
	assert.Equal(t, "3..10", sp.String())
}
