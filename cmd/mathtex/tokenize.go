// tokenize.go -
// Copyright (C) 2025  The mathtex authors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"mathtex/tex/lexer"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize expression",
	Short: "Print the raw token stream of a math expression",
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	rootCmd.AddCommand(tokenizeCmd)
}

func runTokenize(cmd *cobra.Command, args []string) error {
	toks, err := lexer.New(args[0]).ReadAll()
	if err != nil {
		return fmt.Errorf("tokenizing failed: %w", err)
	}
	for _, tok := range toks {
		fmt.Fprintf(cmd.OutOrStdout(), "%q\n", tok.Text)
	}
	return nil
}
