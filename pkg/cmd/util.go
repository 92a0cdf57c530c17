// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/numeric"
	"github.com/consensys/go-symbolic/pkg/parser"
	"github.com/consensys/go-symbolic/pkg/rewrite"
	"github.com/consensys/go-symbolic/pkg/util/source"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or exits if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetInt gets an expected signed integer, or exits if an error arises.
func GetInt(cmd *cobra.Command, flag string) int {
	r, err := cmd.Flags().GetInt(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetUint gets an expected unsigned integer, or exits if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetString gets an expected string, or exits if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetStringArray gets an expected string array, or exits if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// GetLevel gets the equality level selected by the "--level" flag, or exits if
// it is not recognised.
func GetLevel(cmd *cobra.Command) expr.Level {
	level, err := expr.ParseLevel(strings.ToLower(GetString(cmd, "level")))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return level
}

// Read an expression from a command-line argument, either in infix or (when
// "--lisp" is given) S-expression form.  On failure, errors are printed and
// this exits.
func readExpr(cmd *cobra.Command, arg string) expr.Expr {
	e, errs := parseExpr(readArg(arg), GetFlag(cmd, "lisp"))
	//
	if len(errs) > 0 {
		printErrors(errs)
		os.Exit(1)
	}
	//
	return e
}

// Read a rewrite rule of the form "pattern -> replacement" from a command-line
// argument, exiting on failure.
func readRule(arg string) rewrite.Rule {
	rule, errs := parser.ParseRule(readArg(arg))
	//
	if len(errs) > 0 {
		printErrors(asErrors(errs))
		os.Exit(1)
	}
	//
	return rule
}

// Read the text of a command-line argument, where an argument "@filename"
// denotes the contents of the given file.
func readArg(arg string) string {
	if !strings.HasPrefix(arg, "@") {
		return arg
	}
	//
	files, err := source.ReadFiles(arg[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return strings.TrimSpace(string(files[0].Contents()))
}

func parseExpr(text string, lisp bool) (expr.Expr, []error) {
	if lisp {
		e, err := parser.ParseLisp(text)
		if err != nil {
			return nil, []error{err}
		}
		//
		return e, nil
	}
	//
	e, errs := parser.Parse(text)
	//
	return e, asErrors(errs)
}

// Write an expression in the format selected by the "--lisp" flag.
func formatExpr(cmd *cobra.Command, e expr.Expr) string {
	if GetFlag(cmd, "lisp") {
		return e.Lisp().String(false)
	}
	//
	return e.String()
}

// Parse variable bindings of the form "name=value" for a given numeric backend.
func readBindings[T any](arith numeric.Arithmetic[T], bindings []string) (numeric.Environment[T], error) {
	var env = make(numeric.Environment[T])
	//
	for _, binding := range bindings {
		name, text, ok := strings.Cut(binding, "=")
		//
		if !ok || strings.TrimSpace(name) == "" {
			return nil, fmt.Errorf("invalid binding %q (expected name=value)", binding)
		}
		//
		value, err := numeric.Parse(arith, strings.TrimSpace(text))
		if err != nil {
			return nil, fmt.Errorf("binding %s: %w", name, err)
		}
		//
		env[strings.ToLower(strings.TrimSpace(name))] = value
	}
	//
	return env, nil
}

func asErrors(errs []source.SyntaxError) []error {
	var result = make([]error, len(errs))
	//
	for i := range errs {
		result[i] = &errs[i]
	}
	//
	return result
}

// Print errors, highlighting syntax errors against their source.
func printErrors(errs []error) {
	for _, err := range errs {
		var serr *source.SyntaxError
		//
		if errors.As(err, &serr) {
			printSyntaxError(serr)
		} else {
			fmt.Println(err)
		}
	}
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := max(1, min(line.Length()-lineOffset, span.Length()))
	// Print error + line number
	fmt.Printf("%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Println()
	// Print line
	fmt.Println(line.String())
	// Print indent (todo: account for tabs)
	fmt.Print(strings.Repeat(" ", lineOffset))
	// Print highlight
	fmt.Println(strings.Repeat("^", length))
}
