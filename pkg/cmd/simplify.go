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
	"fmt"
	"os"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expression",
	Short: "simplify an expression to a given level of expansion.",
	Long: `Simplify an expression by expanding functions into their defining
	templates.  The level determines how far expansion goes: "atomic"
	expands only the outermost function, "deep" expands all functions and
	"deepest" additionally expands polynomials until a fixed point.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		e := readExpr(cmd, args[0])
		//
		fmt.Println(formatExpr(cmd, simplify(e, GetLevel(cmd))))
	},
}

var expandCmd = &cobra.Command{
	Use:   "expand [flags] expression",
	Short: "expand products and powers of sums in an expression.",
	Long: `Expand an expression into a sum of products, by distributing products
	over sums and expanding small integer powers of sums.  Functions are
	left unexpanded.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		e := readExpr(cmd, args[0])
		//
		fmt.Println(formatExpr(cmd, expr.Expand(e)))
	},
}

// Simplify an expression according to a given equality level, such that two
// expressions are equal at that level iff their simplified forms are exactly
// equal.
func simplify(e expr.Expr, level expr.Level) expr.Expr {
	switch level {
	case expr.EXACTLY:
		return e
	case expr.ATOMIC:
		return e.Atomic()
	case expr.DEEP:
		return expr.Deep(e)
	default:
		return expr.Deepest(e)
	}
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
	rootCmd.AddCommand(expandCmd)
}
