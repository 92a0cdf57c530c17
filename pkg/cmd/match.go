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

	"github.com/consensys/go-symbolic/pkg/match"
	"github.com/consensys/go-symbolic/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var matchCmd = &cobra.Command{
	Use:   "match [flags] expression pattern",
	Short: "match an expression against a pattern.",
	Long: `Match an expression against a pattern, where every variable in the
	pattern matches any subexpression.  Each distinct way of matching is
	printed as a set of bindings.  Sums and products are matched regardless
	of the order of their arguments.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			e       = readExpr(cmd, args[0])
			pattern = readExpr(cmd, args[1])
			stats   = util.NewPerfStats()
			results = match.Match(e, pattern)
		)
		//
		stats.Log("Matching")
		//
		if results.IsNone() {
			fmt.Println("no match")
			os.Exit(1)
		}
		//
		for _, r := range results.Results() {
			fmt.Println(r.String())
		}
	},
}

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [flags] expression rule",
	Short: "rewrite an expression using a rule.",
	Long: `Print every distinct expression obtained by applying a rule of the form
	"pattern -> replacement" once, at any position within an expression.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			e     = readExpr(cmd, args[0])
			rule  = readRule(args[1])
			count = uint(0)
			stats = util.NewPerfStats()
		)
		//
		for it := rule.Apply(e).Iterator(); it.HasNext(); count++ {
			fmt.Println(formatExpr(cmd, it.Next()))
		}
		//
		stats.LogRate("Rewriting", count)
		log.Debugf("%d rewrites of %s using %s", count, e, rule)
		//
		if count == 0 {
			fmt.Println("no rewrites")
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(matchCmd)
	rootCmd.AddCommand(rewriteCmd)
}
