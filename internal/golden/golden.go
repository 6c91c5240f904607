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

// Package golden runs golden-file test corpora: table-driven tests whose
// table is a directory of checked-in input files, each with one expected
// output file per declared extension.
package golden

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
)

// Corpus describes one golden-file corpus.
type Corpus struct {
	// Root of the corpus, relative to the test's working directory.
	Root string

	// Extension (without dot) of the files that define a test case.
	Extension string

	// Refresh names an environment variable. When set, it is a doublestar
	// pattern selecting the test cases whose outputs should be rewritten
	// in place instead of compared.
	Refresh string

	// Extensions (without dot) of the expected outputs, appended to the
	// input file name. A missing output file is an expected empty output.
	Outputs []string
}

// Run walks the corpus and runs test once per input file. The callback
// fills in one string per declared output.
func (c Corpus) Run(t *testing.T, test func(t *testing.T, name, text string, outputs []string)) {
	var inputs []string
	err := filepath.WalkDir(c.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.TrimPrefix(filepath.Ext(path), ".") == c.Extension {
			inputs = append(inputs, path)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: error while walking %q: %v", c.Root, err)
	}

	refresh := os.Getenv(c.Refresh)
	if refresh != "" {
		if !doublestar.ValidatePattern(refresh) {
			t.Fatalf("golden: invalid pattern in $%s: %q", c.Refresh, refresh)
		}
		// Refreshed outputs still need review before committing.
		t.Logf("golden: refreshing outputs because %s=%s", c.Refresh, refresh)
		t.Fail()
	}

	for _, input := range inputs {
		name, err := filepath.Rel(c.Root, input)
		if err != nil {
			t.Fatal(err)
		}

		t.Run(name, func(t *testing.T) {
			text, err := os.ReadFile(input)
			if err != nil {
				t.Fatalf("golden: error while reading input %q: %v", input, err)
			}

			results := make([]string, len(c.Outputs))
			test(t, name, string(text), results)

			refreshThis, _ := doublestar.Match(refresh, name)
			for i, ext := range c.Outputs {
				path := fmt.Sprint(input, ".", ext)
				if refreshThis {
					writeOutput(t, path, results[i])
					continue
				}

				want, err := os.ReadFile(path)
				if err != nil && !errors.Is(err, os.ErrNotExist) {
					t.Errorf("golden: error while reading output %q: %v", path, err)
					continue
				}
				if diff := Diff(results[i], string(want)); diff != "" {
					t.Errorf("golden: mismatch for %q:\n%s", path, diff)
				}
			}
		})
	}
}

// writeOutput refreshes one expected output file; empty outputs are
// represented by the file's absence.
func writeOutput(t *testing.T, path, content string) {
	if content == "" {
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			t.Errorf("golden: error while deleting output %q: %v", path, err)
		}
		return
	}
	if err := os.WriteFile(path, []byte(content), 0o666); err != nil {
		t.Errorf("golden: error while writing output %q: %v", path, err)
	}
}

// Diff returns a unified diff between got and want, or "" if they are
// equal.
func Diff(got, want string) string {
	if got == want {
		return ""
	}

	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}
