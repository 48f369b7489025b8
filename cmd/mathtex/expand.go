// expand.go -
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
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"mathtex/tex/macro"
	"mathtex/tex/token"
)

var expandCmd = &cobra.Command{
	Use:   "expand [flags] expression",
	Short: "Expand all macros in a math expression",
	Long: `Expand rewrites the given math expression until no macros are left
and prints the resulting token text.  User macros can be preloaded
from a YAML file mapping macro names to replacement text:

    "\\half": "\\frac{1}{2}"`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	expandCmd.Flags().StringP("macros", "m", "", "YAML file with user macro definitions")
	expandCmd.Flags().Int("max-expand", 10000, "limit on expansion steps, 0 for no limit")
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	macroFile, err := cmd.Flags().GetString("macros")
	if err != nil {
		return err
	}
	limit, err := cmd.Flags().GetInt("max-expand")
	if err != nil {
		return err
	}

	ns := macro.NewNamespace()
	if macroFile != "" {
		if err := loadMacros(ns, macroFile); err != nil {
			return fmt.Errorf("loading macros from %s: %w", macroFile, err)
		}
	}

	e := macro.New(args[0], ns)
	e.SetMaxExpand(limit)

	var out token.TokenList
	for {
		tok, err := e.ExpandNextToken()
		if err != nil {
			return err
		}
		if tok.IsEOF() {
			break
		}
		out = append(out, tok)
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Text())
	return nil
}

func loadMacros(ns *macro.Namespace, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var defs map[string]string
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return err
	}
	for name, body := range defs {
		ns.Set(name, macro.Literal{Body: body}, true)
	}
	return nil
}
