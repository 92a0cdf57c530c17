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

	"github.com/consensys/go-symbolic/pkg/calculus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff [flags] expression variable...",
	Short: "differentiate an expression.",
	Long: `Differentiate an expression with respect to one or more variables in
	turn.  For example, "diff x^2*y x y" computes the second order partial
	derivative with respect to x and then y.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) < 2 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		e := readExpr(cmd, args[0])
		//
		for _, v := range args[1:] {
			var err error
			//
			if e, err = calculus.Derivative(e, v); err != nil {
				log.Error(err)
				os.Exit(1)
			}
		}
		//
		fmt.Println(formatExpr(cmd, simplify(e, GetLevel(cmd))))
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}
