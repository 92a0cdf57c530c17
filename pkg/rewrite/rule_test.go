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
package rewrite

import (
	"testing"

	"github.com/consensys/go-symbolic/pkg/expr"
)

var (
	a = expr.Var("a")
	b = expr.Var("b")
	c = expr.Var("c")
	d = expr.Var("d")
	x = expr.Var("x")
	y = expr.Var("y")
	z = expr.Var("z")
)

// (a+b)*(c+d) -> a*c + a*d + b*c + b*d
var expandBraces = NewRule(expr.Multiply(expr.Add(a, b), expr.Add(c, d)),
	expr.Add(expr.Multiply(a, c), expr.Multiply(a, d), expr.Multiply(b, c), expr.Multiply(b, d)))

// a*(b+c) -> a*b + a*c
var distribute = NewRule(expr.Multiply(a, expr.Add(b, c)), expr.Add(expr.Multiply(a, b), expr.Multiply(a, c)))

func Test_Rewrite_01(t *testing.T) {
	var (
		x1 = expr.Add(x, expr.Int(1))
		x2 = expr.Add(x, expr.Int(2))
		x3 = expr.Add(x, expr.Int(3))
		e  = expr.Multiply(x1, x2, x3)
	)
	// Each pair of braces is expanded, leaving the third alone
	check_Rewrites(t, expandBraces, e,
		expr.Multiply(expr.Expand(expr.Multiply(x1, x2)), x3),
		expr.Multiply(expr.Expand(expr.Multiply(x1, x3)), x2),
		expr.Multiply(expr.Expand(expr.Multiply(x2, x3)), x1))
	// None reach the cubic in one step
	cubic := expr.Expand(e)
	//
	for _, r := range expandBraces.Apply(e).Collect() {
		if r.EqualsAt(cubic, expr.EXACTLY) {
			t.Errorf("unexpected rewrite to %s", r)
		} else if !r.EqualsAt(cubic, expr.DEEPEST) {
			t.Errorf("rewrite %s not equivalent to %s", r, cubic)
		}
	}
}

func Test_Rewrite_02(t *testing.T) {
	e := expr.Multiply(expr.Add(x, expr.Int(1)), expr.Add(x, expr.Int(2)), expr.Add(x, expr.Int(3)))
	seq := expandBraces.Apply(e)
	// Check restartable
	if seq.Count() != 3 || seq.Count() != 3 || len(seq.Collect()) != 3 {
		t.Errorf("expected 3 rewrites, got %d", seq.Count())
	}
	// Iterators are independent
	lhs, rhs := seq.Iterator(), seq.Iterator()
	//
	if len(lhs.Collect()) != 3 || len(rhs.Collect()) != 3 {
		t.Errorf("iterators not independent")
	}
}

func Test_Rewrite_03(t *testing.T) {
	check_Rewrites(t, expandBraces, expr.Call(expr.SIN, x))
	check_Rewrites(t, expandBraces, expr.Int(1))
	//
	if !expandBraces.Apply(x).IsEmpty() {
		t.Errorf("expected empty sequence")
	}
}

func Test_Rewrite_04(t *testing.T) {
	// Rewriting beneath a function
	e := expr.Call(expr.SIN, expr.Multiply(x, expr.Add(y, z)))
	//
	check_Rewrites(t, distribute, e, expr.Call(expr.SIN, expr.Add(expr.Multiply(x, y), expr.Multiply(x, z))))
}

func Test_Rewrite_05(t *testing.T) {
	// sin(a)^2 + cos(a)^2 -> 1
	two := expr.Int(2)
	rule := NewRule(expr.Add(expr.Pow(expr.Call(expr.SIN, a), two), expr.Pow(expr.Call(expr.COS, a), two)), expr.Int(1))
	e := expr.Add(expr.Pow(expr.Call(expr.SIN, x), two), expr.Pow(expr.Call(expr.COS, x), two), y)
	// Rewrites a subset of the sum
	check_Rewrites(t, rule, e, expr.Add(y, expr.Int(1)))
}

func Test_Rewrite_06(t *testing.T) {
	// a*b + a*c -> a*(b+c)
	rule := NewRule(expr.Add(expr.Multiply(a, b), expr.Multiply(a, c)), expr.Multiply(a, expr.Add(b, c)))
	e := expr.Add(expr.Multiply(x, y), expr.Multiply(x, z), expr.Int(1))
	//
	check_Rewrites(t, rule, e, expr.Add(expr.Multiply(x, expr.Add(y, z)), expr.Int(1)))
}

func Test_Rewrite_07(t *testing.T) {
	// ln(a*b) -> ln(a) + ln(b)
	rule := NewRule(expr.Call(expr.LN, expr.Multiply(a, b)), expr.Add(expr.Call(expr.LN, a), expr.Call(expr.LN, b)))
	e := expr.Call(expr.LN, expr.Multiply(x, y, z))
	//
	check_Rewrites(t, rule, e,
		expr.Add(expr.Call(expr.LN, expr.Multiply(x, y)), expr.Call(expr.LN, z)),
		expr.Add(expr.Call(expr.LN, expr.Multiply(x, z)), expr.Call(expr.LN, y)),
		expr.Add(expr.Call(expr.LN, expr.Multiply(y, z)), expr.Call(expr.LN, x)))
}

func Test_Rewrite_08(t *testing.T) {
	// Rewrites which have no effect are deduplicated
	e := expr.Add(x, y)
	check_Rewrites(t, NewRule(a, a), e, e)
}

func Test_Rewrite_09(t *testing.T) {
	// Rewriting a term recombines with its siblings
	rule := NewRule(expr.Call(expr.SIN, a), a)
	check_Rewrites(t, rule, expr.Add(x, expr.Call(expr.SIN, x)), expr.Multiply(expr.Int(2), x))
}

func Test_Rewrite_10(t *testing.T) {
	// Difference of two squares expands in one step
	e := expr.Multiply(expr.Add(x, expr.Int(1)), expr.Add(x, expr.Int(-1)))
	//
	check_Rewrites(t, expandBraces, e, expr.Add(expr.Multiply(x, x), expr.Int(-1)))
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Rewrites(t *testing.T, rule Rule, e expr.Expr, expected ...expr.Expr) {
	t.Helper()
	//
	actual := rule.Apply(e).Collect()
	//
	if len(actual) != len(expected) {
		t.Errorf("rewriting %s with %s: expected %d rewrites, got %v", e, rule, len(expected), actual)
		return
	}
	//
	for _, exp := range expected {
		found := false
		//
		for _, act := range actual {
			found = found || act.EqualsAt(exp, expr.EXACTLY)
		}
		//
		if !found {
			t.Errorf("rewriting %s with %s: missing rewrite %s in %v", e, rule, exp, actual)
		}
	}
}
