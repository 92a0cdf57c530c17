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
package calculus

import (
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
)

var (
	x   = expr.Var("x")
	y   = expr.Var("y")
	one = expr.Int(1)
	two = expr.Int(2)
)

func Test_Derivative_01(t *testing.T) {
	check_Derivative(t, expr.Int(3), "x", expr.Int(0))
	check_Derivative(t, x, "x", one)
	check_Derivative(t, y, "x", expr.Int(0))
	check_Derivative(t, x, "X", one)
}

func Test_Derivative_02(t *testing.T) {
	// Sum and product rules
	check_Derivative(t, expr.Add(x, y, one), "x", one)
	check_Derivative(t, expr.Multiply(x, y), "x", y)
	check_Derivative(t, expr.Multiply(expr.Int(3), x, x), "x", expr.Multiply(expr.Int(6), x))
}

func Test_Derivative_03(t *testing.T) {
	// Power rule
	check_Derivative(t, expr.Pow(x, expr.Int(3)), "x", expr.Multiply(expr.Int(3), expr.Pow(x, two)))
	check_Derivative(t, expr.Pow(x, expr.Int(-1)), "x", expr.Neg(expr.Pow(x, expr.Int(-2))))
	check_Derivative(t, expr.Pow(x, y), "x", expr.Multiply(y, expr.Pow(x, expr.Sub(y, one))))
	check_Derivative(t, expr.Pow(expr.E, x), "x", expr.Pow(expr.E, x))
	check_Derivative(t, expr.Pow(x, x), "x", expr.Multiply(expr.Pow(x, x), expr.Add(expr.Call(expr.LN, x), one)))
}

func Test_Derivative_04(t *testing.T) {
	// Chain rule
	sq := expr.Pow(x, two)
	//
	check_Derivative(t, expr.Call(expr.SIN, sq), "x", expr.Multiply(two, x, expr.Call(expr.COS, sq)))
	check_Derivative(t, expr.Call(expr.LN, x), "x", expr.Pow(x, expr.Int(-1)))
	check_Derivative(t, expr.Call(expr.EXP, x), "x", expr.Call(expr.EXP, x))
	check_Derivative(t, expr.Call(expr.COS, x), "y", expr.Int(0))
}

func Test_Derivative_05(t *testing.T) {
	// Functions without a rule use their atomic form
	check_Derivative(t, expr.Call(expr.SQ, x), "x", expr.Multiply(two, x))
	check_Derivative(t, expr.Call(expr.DIV, x, y), "x", expr.Pow(y, expr.Int(-1)))
}

func Test_Derivative_06(t *testing.T) {
	// d/dx (x+1)^2 == 2x + 2
	actual, err := Derivative(expr.Pow(expr.Add(x, one), two), "x")
	//
	if err != nil {
		t.Fatal(err)
	} else if expected := expr.Add(expr.Multiply(two, x), two); !actual.EqualsAt(expected, expr.DEEPEST) {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Derivative(t *testing.T, e expr.Expr, v string, expected expr.Expr) {
	t.Helper()
	//
	actual, err := Derivative(e, v)
	//
	if err != nil {
		t.Errorf("differentiating %s: %v", e, err)
	} else if !actual.EqualsAt(expected, expr.EXACTLY) {
		t.Errorf("differentiating %s by %s: expected %s, got %s", e, v, expected, actual)
	}
}
