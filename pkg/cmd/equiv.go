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
	"context"
	"fmt"
	"os"
	"time"

	"github.com/consensys/go-symbolic/pkg/equiv"
	"github.com/consensys/go-symbolic/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var equivCmd = &cobra.Command{
	Use:   "equiv [flags] expression expression",
	Short: "check whether one expression can be rewritten into another.",
	Long: `Search breadth first for a sequence of rewrites connecting one
	expression to another.  By default, all builtin paths are used.  Paths
	can be selected by name with --path, and additional paths given as
	rules with --rule.  The search is bounded by --depth.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "list") {
			for _, path := range equiv.Builtins() {
				fmt.Println(path.String())
			}
			//
			return
		}
		//
		if len(args) != 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		var (
			lhs     = readExpr(cmd, args[0])
			rhs     = readExpr(cmd, args[1])
			depth   = GetInt(cmd, "depth")
			timeout = getDuration(cmd, "timeout")
			class   = equiv.NewClass(
				equiv.WithPaths(readPaths(cmd)...),
				equiv.WithMaxDepth(depth),
				equiv.WithFingerprint(GetUint(cmd, "fingerprint")))
			ctx    = context.Background()
			cancel = func() {}
		)
		//
		if timeout > 0 {
			ctx, cancel = context.WithTimeout(ctx, timeout)
		}
		//
		defer cancel()
		//
		stats := util.NewPerfStats()
		found, err := class.ContainsContext(ctx, lhs, rhs)
		//
		stats.Log("Equivalence search")
		//
		if err != nil {
			log.Error(err)
			os.Exit(2)
		} else if found {
			fmt.Printf("%s == %s\n", formatExpr(cmd, lhs), formatExpr(cmd, rhs))
			return
		} else if depth == equiv.UNBOUNDED {
			fmt.Printf("%s != %s\n", formatExpr(cmd, lhs), formatExpr(cmd, rhs))
		} else {
			fmt.Printf("%s != %s (within %d steps)\n", formatExpr(cmd, lhs), formatExpr(cmd, rhs), depth)
		}
		//
		os.Exit(1)
	},
}

// Read the paths selected by the "--path" and "--rule" flags.  When neither is
// given, all builtin paths are used.
func readPaths(cmd *cobra.Command) []equiv.Path {
	var (
		names = GetStringArray(cmd, "path")
		rules = GetStringArray(cmd, "rule")
		paths []equiv.Path
	)
	//
	if len(names) == 0 && len(rules) == 0 {
		return equiv.Builtins()
	}
	//
	for _, name := range names {
		path, ok := equiv.LookupPath(name)
		if !ok {
			fmt.Printf("unknown path \"%s\" (use --list to see available paths)\n", name)
			os.Exit(2)
		}
		//
		paths = append(paths, path)
	}
	//
	for i, text := range rules {
		paths = append(paths, equiv.NewPath(fmt.Sprintf("rule#%d", i), readRule(text)))
	}
	//
	return paths
}

func getDuration(cmd *cobra.Command, flag string) time.Duration {
	r, err := cmd.Flags().GetDuration(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

func init() {
	rootCmd.AddCommand(equivCmd)
	equivCmd.Flags().Bool("list", false, "list builtin paths")
	equivCmd.Flags().StringArray("path", nil, "use builtin path (by name)")
	equivCmd.Flags().StringArray("rule", nil, "use path given by a rule (e.g. \"a*a -> a^2\")")
	equivCmd.Flags().Uint("fingerprint", 8, "number of random points used to reject unequal expressions (0 to disable, ignored with --rule)")
	equivCmd.Flags().Duration("timeout", 0, "abandon search after a given time (e.g. 10s)")
}
