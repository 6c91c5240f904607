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
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/Rigidity/rue-lang/parser"
	"github.com/Rigidity/rue-lang/report"
	"github.com/Rigidity/rue-lang/source"
)

func newParseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a rue file and dump its syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			name, text, err := readSource(args[0])
			if err != nil {
				return err
			}

			start := time.Now()
			tree, diags := parser.Parse(text)
			logrus.WithFields(logrus.Fields{
				"duration":    time.Since(start),
				"diagnostics": len(diags.Diagnostics()),
			}).Debug("parse finished")

			fmt.Fprint(cmd.OutOrStdout(), tree.Root().Dump())

			if diags.Empty() {
				return nil
			}
			report.Renderer{Colorize: true}.Render(
				cmd.ErrOrStderr(), source.NewFile(name, text), diags)
			return fmt.Errorf("%s: %d diagnostic(s)", name, len(diags.Diagnostics()))
		},
	}
}
