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
package parser

import (
	"math/rand"
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
)

var (
	x = expr.Var("x")
	y = expr.Var("y")
	z = expr.Var("z")
)

func Test_Parse_01(t *testing.T) {
	check_Parse(t, "x + 1", expr.Add(x, expr.Int(1)))
	check_Parse(t, "x - 2*y", expr.Add(x, expr.Multiply(expr.Int(-2), y)))
	check_Parse(t, "  x*y*z ", expr.Multiply(x, y, z))
	check_Parse(t, "(x + 1)*(x - 1)", expr.Multiply(expr.Add(x, expr.Int(1)), expr.Add(x, expr.Int(-1))))
}

func Test_Parse_02(t *testing.T) {
	// Precedence and associativity
	check_Parse(t, "1 + 2*x^2", expr.Add(expr.Int(1), expr.Multiply(expr.Int(2), expr.Pow(x, expr.Int(2)))))
	check_Parse(t, "-x^2", expr.Neg(expr.Pow(x, expr.Int(2))))
	check_Parse(t, "x^y^z", expr.Pow(x, expr.Pow(y, z)))
	check_Parse(t, "x^-1", expr.Pow(x, expr.Int(-1)))
	check_Parse(t, "x - y - z", expr.Add(x, expr.Neg(y), expr.Neg(z)))
	check_Parse(t, "x/y/z", expr.Multiply(x, expr.Pow(y, expr.Int(-1)), expr.Pow(z, expr.Int(-1))))
}

func Test_Parse_03(t *testing.T) {
	// Numbers
	check_Parse(t, "0.25", expr.Rat(1, 4))
	check_Parse(t, "1/3", expr.Rat(1, 3))
	check_Parse(t, "--2", expr.Int(2))
	check_Parse(t, "2*pi", expr.Multiply(expr.Int(2), expr.PI))
	check_Parse(t, "e^x", expr.Pow(expr.E, x))
}

func Test_Parse_04(t *testing.T) {
	// Functions
	check_Parse(t, "sin(x)", expr.Call(expr.SIN, x))
	check_Parse(t, "MAX(x, y + 1)", expr.Call(expr.MAX, x, expr.Add(y, expr.Int(1))))
	check_Parse(t, "sin(x)^2 + cos(x)^2",
		expr.Add(expr.Pow(expr.Call(expr.SIN, x), expr.Int(2)), expr.Pow(expr.Call(expr.COS, x), expr.Int(2))))
	check_Parse(t, "div(x, x)", expr.Call(expr.DIV, x, x))
}

func Test_Parse_Invalid_01(t *testing.T) {
	check_Invalid(t, "")
	check_Invalid(t, "(x + 1")
	check_Invalid(t, "x + 1)")
	check_Invalid(t, "x +")
	check_Invalid(t, "2x")
	check_Invalid(t, "x $ y")
	check_Invalid(t, "1.")
}

func Test_Parse_Invalid_02(t *testing.T) {
	// Unknown functions and wrong arity
	check_Invalid(t, "foo(x)")
	check_Invalid(t, "sin(x, y)")
	check_Invalid(t, "min(x)")
	check_Invalid(t, "sin(x y)")
}

func Test_Rule_01(t *testing.T) {
	rule, errs := ParseRule("a*(b+c) -> a*b + a*c")
	//
	if len(errs) != 0 {
		t.Fatalf("unexpected errors %v", errs)
	}
	//
	a, b, c := expr.Var("a"), expr.Var("b"), expr.Var("c")
	//
	check_Exactly(t, rule.Pattern(), expr.Multiply(a, expr.Add(b, c)))
	check_Exactly(t, rule.Replacement(), expr.Add(expr.Multiply(a, b), expr.Multiply(a, c)))
	//
	if _, errs := ParseRule("a*(b+c)"); len(errs) == 0 {
		t.Errorf("expected missing arrow")
	}
	//
	if _, errs := ParseRule("a -> b -> c"); len(errs) == 0 {
		t.Errorf("expected trailing arrow")
	}
}

func Test_Lisp_01(t *testing.T) {
	check_Lisp(t, "(+ x (* 2 y))", expr.Add(x, expr.Multiply(expr.Int(2), y)))
	check_Lisp(t, "(^ x 1/2)", expr.Sqrt(x))
	check_Lisp(t, "(sin (* pi x))", expr.Call(expr.SIN, expr.Multiply(expr.PI, x)))
	check_Lisp(t, "-3", expr.Int(-3))
	check_Lisp(t, "(* PI E)", expr.Multiply(expr.PI, expr.E))
	//
	for _, input := range []string{"()", "((x) y)", "(^ x)", "(foo x)", "(+ x"} {
		if _, err := ParseLisp(input); err == nil {
			t.Errorf("expected error parsing %s", input)
		}
	}
}

func Test_RoundTrip_01(t *testing.T) {
	half := expr.Rat(1, 2)
	exprs := []expr.Expr{
		expr.Add(x, expr.Multiply(expr.Int(-2), y)),
		expr.Multiply(x, expr.Pow(expr.Multiply(expr.Int(2), y), expr.Int(-1))),
		expr.Multiply(expr.Add(x, expr.Int(-1)), expr.Add(x, expr.Int(1))),
		expr.Pow(expr.Int(-2), x),
		expr.Pow(x, half),
		expr.Pow(x, expr.Rat(-1, 2)),
		expr.Multiply(expr.Rat(-3, 2), x, expr.Pow(y, expr.Int(-1))),
		expr.Pow(expr.Pow(x, half), y),
		expr.Pow(x, expr.Neg(y)),
		expr.Pow(expr.Neg(x), y),
		expr.Add(expr.Call(expr.LN, x), expr.Rat(-1, 3)),
		expr.Call(expr.CLAMP, x, expr.Neg(y), expr.Pow(z, expr.Int(3))),
		expr.Multiply(expr.Int(2), expr.PI, expr.Pow(expr.E, x)),
	}
	//
	for _, e := range exprs {
		check_RoundTrip(t, e)
	}
}

func Test_RoundTrip_02(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	//
	for i := 0; i < 1000; i++ {
		check_RoundTrip(t, randomExpr(rng, 3))
	}
}

func Test_RoundTrip_03(t *testing.T) {
	rng := rand.New(rand.NewSource(2))
	//
	for i := 0; i < 1000; i++ {
		e := randomExpr(rng, 3)
		//
		actual, err := ParseLisp(e.Lisp().String(false))
		//
		if err != nil {
			t.Errorf("parsing %s: %v", e.Lisp().String(false), err)
		} else if !actual.EqualsAt(e, expr.EXACTLY) {
			t.Errorf("lisp round trip of %s gave %s", e, actual)
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Parse(t *testing.T, input string, expected expr.Expr) {
	t.Helper()
	//
	actual, errs := Parse(input)
	//
	if len(errs) != 0 {
		t.Errorf("parsing %q: unexpected errors %v", input, errs)
	} else {
		check_Exactly(t, actual, expected)
	}
}

func check_Invalid(t *testing.T, input string) {
	t.Helper()
	//
	if e, errs := Parse(input); len(errs) == 0 {
		t.Errorf("parsing %q: expected error, got %s", input, e)
	}
}

func check_Exactly(t *testing.T, actual expr.Expr, expected expr.Expr) {
	t.Helper()
	//
	if !actual.EqualsAt(expected, expr.EXACTLY) {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func check_Lisp(t *testing.T, input string, expected expr.Expr) {
	t.Helper()
	//
	actual, err := ParseLisp(input)
	//
	if err != nil {
		t.Errorf("parsing %q: %v", input, err)
	} else {
		check_Exactly(t, actual, expected)
	}
}

func check_RoundTrip(t *testing.T, e expr.Expr) {
	t.Helper()
	//
	text := e.String()
	actual, errs := Parse(text)
	//
	if len(errs) != 0 {
		t.Errorf("parsing %q: unexpected errors %v", text, errs)
	} else if !actual.EqualsAt(e, expr.ATOMIC) {
		t.Errorf("round trip of %q gave %s", text, actual)
	}
}

var (
	variables = []expr.Expr{x, y, z}
	functions = []expr.FunctionId{expr.SIN, expr.COS, expr.LN, expr.SQRT, expr.EXP, expr.ABS, expr.SQ}
)

// Generate a random expression over + - * / ^ and a selection of functions.
func randomExpr(rng *rand.Rand, depth uint) expr.Expr {
	if depth == 0 || rng.Intn(4) == 0 {
		switch rng.Intn(3) {
		case 0:
			return expr.Rat(rng.Int63n(9)-4, rng.Int63n(3)+1)
		default:
			return variables[rng.Intn(len(variables))]
		}
	}
	//
	lhs, rhs := randomExpr(rng, depth-1), randomExpr(rng, depth-1)
	//
	switch rng.Intn(7) {
	case 0:
		return expr.Add(lhs, rhs)
	case 1:
		return expr.Sub(lhs, rhs)
	case 2:
		return expr.Multiply(lhs, rhs)
	case 3:
		return expr.Div(lhs, rhs)
	case 4:
		return expr.Pow(lhs, expr.Rat(rng.Int63n(7)-3, rng.Int63n(2)+1))
	case 5:
		return expr.Call(expr.MIN, lhs, rhs)
	default:
		return expr.Call(functions[rng.Intn(len(functions))], lhs)
	}
}
