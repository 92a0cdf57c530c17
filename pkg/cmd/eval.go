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
	"time"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/numeric"
	"github.com/consensys/go-symbolic/pkg/util"
	"github.com/consensys/go-symbolic/pkg/vm"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var compileCmd = &cobra.Command{
	Use:   "compile [flags] expression",
	Short: "compile an expression into bytecode.",
	Long: `Compile an expression into bytecode for the stack machine, and print
	the resulting instructions along with the stack depth after each.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		code, err := vm.Compile(readExpr(cmd, args[0]))
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		fmt.Printf("variables: %v\n", code.Variables())
		fmt.Printf("max stack: %d\n", code.MaxStack())
		fmt.Print(code.String())
	},
}

var evalCmd = &cobra.Command{
	Use:   "eval [flags] expression",
	Short: "evaluate an expression.",
	Long: `Evaluate an expression by compiling it and executing the bytecode on
	the stack machine.  Variables are bound using --var (e.g. --var x=1/2),
	and the numeric backend is selected using --numeric.  With --samples,
	evaluation is repeated to measure its performance.`,
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			fmt.Println(cmd.UsageString())
			os.Exit(1)
		}
		//
		e := readExpr(cmd, args[0])
		//
		backend, err := numeric.Lookup(GetString(cmd, "numeric"))
		if err != nil {
			log.Error(err)
			os.Exit(2)
		}
		// Dispatch on the backend's value type
		if arith, ok := backend.Float(); ok {
			evaluate(cmd, e, arith)
		} else if arith, ok := backend.Rational(); ok {
			evaluate(cmd, e, arith)
		} else if arith, ok := backend.Field(); ok {
			evaluate(cmd, e, arith)
		}
	},
}

// Evaluate an expression using a given backend, and print the result.
func evaluate[T any](cmd *cobra.Command, e expr.Expr, arith numeric.Arithmetic[T]) {
	var (
		check   = GetFlag(cmd, "check")
		samples = GetUint(cmd, "samples")
	)
	//
	env, err := readBindings(arith, GetStringArray(cmd, "var"))
	if err != nil {
		log.Error(err)
		os.Exit(2)
	}
	//
	code, err := vm.Compile(e)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	//
	program, err := vm.NewProgram(code, arith)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	//
	program.Bind(env)
	//
	frame := program.NewStack()
	//
	value, err := program.EvaluateOn(frame)
	if err != nil {
		log.Error(err)
		os.Exit(1)
	}
	// Cross check against the tree evaluator (if requested)
	if check {
		expected, err := numeric.Eval(e, arith, env)
		if err != nil {
			log.Error(err)
			os.Exit(1)
		} else if !arith.Equal(value, expected) {
			log.Errorf("evaluation mismatch (%s vs %s)", arith.Format(value), arith.Format(expected))
			os.Exit(1)
		}
	}
	//
	fmt.Println(arith.Format(value))
	//
	if samples > 0 {
		benchmark(program, samples)
	}
}

// Repeatedly evaluate a program on a single stack and report the time taken.
func benchmark[T any](program *vm.Program[T], samples uint) {
	var (
		frame = program.NewStack()
		stats = util.NewPerfStats()
	)
	//
	for i := uint(0); i < samples; i++ {
		if _, err := program.EvaluateOn(frame); err != nil {
			log.Error(err)
			os.Exit(1)
		}
	}
	//
	elapsed := stats.Elapsed()
	stats.LogRate("Evaluation", samples)
	//
	fmt.Printf("%d evaluations in %s (%s each)\n", samples, elapsed, elapsed/time.Duration(samples))
}

func init() {
	rootCmd.AddCommand(compileCmd)
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().Bool("check", false, "cross check result against direct evaluation of the expression")
	evalCmd.Flags().Uint("samples", 0, "number of repeated evaluations used to measure performance")
}
