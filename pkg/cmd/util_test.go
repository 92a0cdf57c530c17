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
	"math/big"
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/numeric"
)

func Test_Bindings_01(t *testing.T) {
	env, err := readBindings[*big.Rat](numeric.Rational{}, []string{"x=1/2", " Y = 3 "})
	//
	if err != nil {
		t.Fatal(err)
	} else if len(env) != 2 {
		t.Fatalf("expected 2 bindings, got %d", len(env))
	} else if env["x"].Cmp(big.NewRat(1, 2)) != 0 {
		t.Errorf("expected x=1/2, got %s", env["x"])
	} else if env["y"].Cmp(big.NewRat(3, 1)) != 0 {
		t.Errorf("expected y=3, got %s", env["y"])
	}
}

func Test_Bindings_02(t *testing.T) {
	for _, binding := range []string{"x", "=1", "x=", "x=abc"} {
		if _, err := readBindings[float64](numeric.Float{}, []string{binding}); err == nil {
			t.Errorf("expected error for binding %q", binding)
		}
	}
}

func Test_Simplify_01(t *testing.T) {
	var (
		x  = expr.Var("x")
		sq = expr.Call(expr.SQ, expr.Add(x, expr.Int(1)))
	)
	//
	check_Simplify(t, sq, expr.EXACTLY, sq)
	check_Simplify(t, sq, expr.ATOMIC, expr.Pow(expr.Add(x, expr.Int(1)), expr.Int(2)))
	check_Simplify(t, sq, expr.DEEP, expr.Pow(expr.Add(x, expr.Int(1)), expr.Int(2)))
	check_Simplify(t, sq, expr.DEEPEST,
		expr.Add(expr.Pow(x, expr.Int(2)), expr.Multiply(expr.Int(2), x), expr.Int(1)))
}

func Test_Identifier_01(t *testing.T) {
	for _, name := range []string{"x", "x1", "_y", "Foo_2"} {
		if !isIdentifier(name) {
			t.Errorf("expected %q to be an identifier", name)
		}
	}
	//
	for _, name := range []string{"", "1x", "x-y", "x y"} {
		if isIdentifier(name) {
			t.Errorf("expected %q not to be an identifier", name)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Simplify(t *testing.T, e expr.Expr, level expr.Level, expected expr.Expr) {
	t.Helper()
	//
	if actual := simplify(e, level); !actual.EqualsAt(expected, expr.EXACTLY) {
		t.Errorf("simplifying %s at %s: expected %s, got %s", e, level, expected, actual)
	}
}
