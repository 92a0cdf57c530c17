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
package match

import (
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
)

var (
	a = expr.Var("a")
	b = expr.Var("b")
	c = expr.Var("c")
	x = expr.Var("x")
	y = expr.Var("y")
	z = expr.Var("z")
)

func Test_Match_01(t *testing.T) {
	// Commutative symmetry
	check_Match(t, expr.Add(x, y), expr.Add(a, b),
		bind("a", x, "b", y),
		bind("a", y, "b", x))
	check_Match(t, expr.Multiply(x, y), expr.Multiply(a, b),
		bind("a", x, "b", y),
		bind("a", y, "b", x))
}

func Test_Match_02(t *testing.T) {
	// Associative regrouping.  Every split of {x,y,z} into two non-empty groups,
	// in both slot orders.  The {a=x,b=y+z} and {a=z,b=x+y} cases mirror the
	// {a=y+z,b=x} and {a=x+y,b=z} cases.
	check_Match(t, expr.Add(x, y, z), expr.Add(a, b),
		bind("a", expr.Add(x, y), "b", z),
		bind("a", expr.Add(x, z), "b", y),
		bind("a", expr.Add(y, z), "b", x),
		bind("a", x, "b", expr.Add(y, z)),
		bind("a", y, "b", expr.Add(x, z)),
		bind("a", z, "b", expr.Add(x, y)))
}

func Test_Match_03(t *testing.T) {
	// Fewer arguments than pattern never matches
	check_None(t, expr.Add(x, y), expr.Add(a, b, c))
}

func Test_Match_04(t *testing.T) {
	// Constants match exactly
	check_None(t, x, expr.Int(1))
	check_Unit(t, expr.Int(1), expr.Int(1))
	check_Unit(t, expr.PI, expr.PI)
	check_Match(t, expr.Add(x, expr.Int(1)), expr.Add(a, expr.Int(1)), bind("a", x))
}

func Test_Match_05(t *testing.T) {
	// Variables bind anything
	e := expr.Multiply(x, expr.Add(y, z))
	check_Match(t, e, a, bind("a", e))
}

func Test_Match_06(t *testing.T) {
	check_Match(t, expr.Pow(x, expr.Int(2)), expr.Pow(a, b), bind("a", x, "b", expr.Int(2)))
	check_Match(t, expr.Pow(x, x), expr.Pow(a, a), bind("a", x))
	check_None(t, expr.Pow(x, y), expr.Pow(a, a))
	check_None(t, x, expr.Pow(a, b))
}

func Test_Match_07(t *testing.T) {
	sin := expr.Call(expr.SIN, expr.Add(x, expr.Int(1)))
	//
	check_Match(t, sin, expr.Call(expr.SIN, a), bind("a", expr.Add(x, expr.Int(1))))
	check_None(t, sin, expr.Call(expr.COS, a))
}

func Test_Match_08(t *testing.T) {
	// Functions match positionally, even for commutative operations
	check_Match(t, expr.Call(expr.MIN, x, y), expr.Call(expr.MIN, a, b), bind("a", x, "b", y))
	check_None(t, expr.Call(expr.MIN, x, y), expr.Call(expr.MIN, a, a))
}

func Test_Match_09(t *testing.T) {
	e := expr.Multiply(expr.Add(x, expr.Int(1)), y)
	p := expr.Multiply(a, expr.Add(b, c))
	//
	check_Match(t, e, p,
		bind("a", y, "b", x, "c", expr.Int(1)),
		bind("a", y, "b", expr.Int(1), "c", x))
}

func Test_Match_10(t *testing.T) {
	// Shared variables must agree
	e := expr.Add(expr.Multiply(x, y), expr.Multiply(x, z))
	p := expr.Add(expr.Multiply(a, b), expr.Multiply(a, c))
	//
	check_Match(t, e, p,
		bind("a", x, "b", y, "c", z),
		bind("a", x, "b", z, "c", y))
}

func Test_Match_11(t *testing.T) {
	// Kind mismatch
	check_None(t, expr.Add(x, y), expr.Multiply(a, b))
	check_None(t, expr.Call(expr.SIN, x), expr.Add(a, b))
}

func Test_ResultSet_01(t *testing.T) {
	if !None().IsNone() || Unit().IsNone() {
		t.Errorf("none and unit should be distinct")
	}
	//
	if !Unit().Merge(None()).IsNone() || !None().Merge(Unit()).IsNone() {
		t.Errorf("merging with none should give none")
	}
	//
	if r := Bind("a", x).Merge(Unit()); r.Len() != 1 || !r.Contains(bind("a", x)) {
		t.Errorf("merging with unit should have no effect")
	}
}

func Test_ResultSet_02(t *testing.T) {
	if r := Bind("a", x).Union(Bind("A", x)); r.Len() != 1 {
		t.Errorf("union should remove duplicates, got %s", r)
	}
	//
	if r := Bind("a", x).Merge(Bind("a", y)); !r.IsNone() {
		t.Errorf("conflicting bindings should be discarded, got %s", r)
	}
	//
	if r := Bind("a", x).Merge(Bind("b", y)); r.Len() != 1 || !r.Contains(bind("a", x, "b", y)) {
		t.Errorf("unexpected merge %s", r)
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

// Construct a result from alternating names and expressions.
func bind(items ...any) Result {
	var results = Unit()
	//
	for i := 0; i < len(items); i += 2 {
		results = results.Merge(Bind(items[i].(string), items[i+1].(expr.Expr)))
	}
	//
	return results.Results()[0]
}

func check_Match(t *testing.T, e expr.Expr, pattern expr.Expr, expected ...Result) {
	t.Helper()
	//
	actual := Match(e, pattern)
	//
	if actual.Len() != uint(len(expected)) {
		t.Errorf("matching %s against %s: expected %d results, got %s", e, pattern, len(expected), actual)
		return
	}
	//
	for _, r := range expected {
		if !actual.Contains(r) {
			t.Errorf("matching %s against %s: missing result %s in %s", e, pattern, r, actual)
		}
	}
}

func check_None(t *testing.T, e expr.Expr, pattern expr.Expr) {
	t.Helper()
	//
	if actual := Match(e, pattern); !actual.IsNone() {
		t.Errorf("matching %s against %s: expected none, got %s", e, pattern, actual)
	}
}

func check_Unit(t *testing.T, e expr.Expr, pattern expr.Expr) {
	t.Helper()
	//
	actual := Match(e, pattern)
	//
	if actual.Len() != 1 || actual.Results()[0].Len() != 0 {
		t.Errorf("matching %s against %s: expected unit, got %s", e, pattern, actual)
	}
}
