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

package main

import (
	"github.com/spf13/cobra"

	"github.com/Rigidity/rue-lang/highlight"
)

func newHighlightCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "highlight <file>",
		Short: "Print a rue file with ANSI syntax highlighting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, text, err := readSource(args[0])
			if err != nil {
				return err
			}
			return highlight.Fprint(cmd.OutOrStdout(), text)
		},
	}
}
