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
	"fmt"
	"text/tabwriter"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rigidity/rue-lang/lexer"
	"github.com/Rigidity/rue-lang/source"
)

func newTokensCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Lex a rue file and list its tokens",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readSource(args[0])
			if err != nil {
				return err
			}
			file := source.NewFile(name, text)

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 0, 2, ' ', 0)
			fmt.Fprintln(w, "#\tkind\toffsets\tline:col\tterm\ttext")

			offset, count := 0, 0
			for tok := range lexer.New(text).All() {
				loc := file.Location(offset)
				fmt.Fprintf(w, "%d\t%v\t%d..%d\t%d:%d\t%t\t%q\n",
					count, tok.Kind,
					offset, offset+len(tok.Text),
					loc.Line, loc.Column,
					tok.Terminated, tok.Text,
				)
				offset += len(tok.Text)
				count++
			}
			logrus.WithField("tokens", count).Debug("lexing finished")
			return w.Flush()
		},
	}
}
