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
package numeric

import (
	"fmt"

	"github.com/consensys/go-symbolic/pkg/expr"
)

// UnboundVariableError signals a variable without a value during evaluation.
type UnboundVariableError struct {
	Name string
}

func (e *UnboundVariableError) Error() string {
	return fmt.Sprintf("variable %s not found", e.Name)
}

// Environment maps (lower case) variable names to their values.
type Environment[T any] map[string]T

// Eval evaluates an expression tree directly, by walking it recursively.
// Functions without a primitive operation are evaluated via their atomic form.
// Any error raised by the backend is returned unchanged.
func Eval[T any](e expr.Expr, arith Arithmetic[T], env Environment[T]) (T, error) {
	var empty T
	//
	switch e := e.(type) {
	case *expr.Constant:
		if e.IsNamed() {
			return arith.Named(e.Name())
		}
		//
		return arith.FromRat(e.Value())
	case *expr.Variable:
		if value, ok := env[e.Key()]; ok {
			return value, nil
		}
		//
		return empty, &UnboundVariableError{e.Name()}
	case *expr.Sum:
		return evalFold(e.Args(), ADD, arith, env)
	case *expr.Product:
		return evalFold(e.Args(), MUL, arith, env)
	case *expr.Power:
		return evalFold(e.Args(), POW, arith, env)
	case *expr.Function:
		op, ok := OpOf(e.Id())
		if !ok {
			return Eval(e.Atomic(), arith, env)
		}
		//
		args := make([]T, len(e.Args()))
		//
		for i, arg := range e.Args() {
			var err error
			//
			if args[i], err = Eval(arg, arith, env); err != nil {
				return empty, err
			}
		}
		//
		return arith.Apply(op, args...)
	default:
		panic("unreachable")
	}
}

// Evaluate arguments from left to right, combining them using a given binary
// operation.
func evalFold[T any](args []expr.Expr, op Op, arith Arithmetic[T], env Environment[T]) (T, error) {
	acc, err := Eval(args[0], arith, env)
	//
	for i := 1; i < len(args) && err == nil; i++ {
		var ith T
		//
		if ith, err = Eval(args[i], arith, env); err == nil {
			acc, err = arith.Apply(op, acc, ith)
		}
	}
	//
	return acc, err
}
