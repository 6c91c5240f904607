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

// Command rue is development tooling for the rue language front-end: it
// dumps token streams and syntax trees and renders highlighted source.
package main

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func main() {
	var verbose bool

	root := &cobra.Command{
		Use:           "rue",
		Short:         "Tooling for the rue language front-end",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			if verbose {
				logrus.SetLevel(logrus.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(
		newTokensCommand(),
		newParseCommand(),
		newHighlightCommand(),
	)

	if err := root.Execute(); err != nil {
		logrus.Error(err)
		os.Exit(1)
	}
}

// readSource loads one source file argument, with "-" meaning stdin.
func readSource(arg string) (name, text string, err error) {
	if arg == "-" {
		data, err := io.ReadAll(os.Stdin)
		return "<stdin>", string(data), err
	}
	data, err := os.ReadFile(arg)
	return arg, string(data), err
}
