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
package equiv

import (
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/rewrite"
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// Path is a named rewrite rule used to connect the members of an equivalence
// class.  Paths are immutable.  The identity path has no rule, and relates an
// expression only to itself.
type Path struct {
	name string
	rule *rewrite.Rule
	// Indicates every rewrite along this path has the same value as its source.
	preserving bool
}

// NewPath constructs a named path from a given rewrite rule.  Since an
// arbitrary rule need not preserve value (e.g. a*a -> a), such paths are never
// assumed to do so.
func NewPath(name string, rule rewrite.Rule) Path {
	return Path{name, &rule, false}
}

// Construct a builtin path, whose rule is known to preserve value.
func builtin(name string, rule rewrite.Rule) Path {
	return Path{name, &rule, true}
}

// Name returns the name of this path.
func (p Path) Name() string {
	return p.name
}

// PreservesValue checks whether every expression reachable along this path
// has the same value as the expression it was reached from.
func (p Path) PreservesValue() bool {
	return p.preserving
}

// IsIdentity checks whether this is the identity path.
func (p Path) IsIdentity() bool {
	return p.rule == nil
}

// Rule returns the underlying rewrite rule, if this is not the identity path.
func (p Path) Rule() (rewrite.Rule, bool) {
	if p.rule == nil {
		return rewrite.Rule{}, false
	}
	//
	return *p.rule, true
}

// Apply this path to a given expression, producing every expression reachable
// in one step.  The identity path yields the expression itself.
func (p Path) Apply(e expr.Expr) iter.Iterator[expr.Expr] {
	if p.rule == nil {
		return iter.NewArrayIterator([]expr.Expr{e})
	}
	//
	return p.rule.Apply(e).Iterator()
}

func (p Path) String() string {
	if p.rule == nil {
		return p.name
	}
	//
	return p.name + ": " + p.rule.String()
}

// ============================================================================
// Builtin paths
// ============================================================================

var (
	a   = expr.Var("a")
	b   = expr.Var("b")
	c   = expr.Var("c")
	d   = expr.Var("d")
	two = expr.Int(2)
)

// Identity is the trivial path, which is implicitly part of every class.
var Identity = Path{"identity", nil, true}

// ExpandBraces multiplies out a pair of sums: (a+b)*(c+d) -> a*c + a*d + b*c +
// b*d.  Applied to a product of several sums, this expands one pair of them at
// a time.
var ExpandBraces = builtin("expand-braces", rewrite.NewRule(
	expr.Multiply(expr.Add(a, b), expr.Add(c, d)),
	expr.Add(expr.Multiply(a, c), expr.Multiply(a, d), expr.Multiply(b, c), expr.Multiply(b, d))))

// Distribute distributes a product over a sum: a*(b+c) -> a*b + a*c.
var Distribute = builtin("distribute", rewrite.NewRule(
	expr.Multiply(a, expr.Add(b, c)),
	expr.Add(expr.Multiply(a, b), expr.Multiply(a, c))))

// FactorBraces factors a common term from a sum: a*b + a*c -> a*(b+c).
var FactorBraces = builtin("factor-braces", rewrite.NewRule(
	expr.Add(expr.Multiply(a, b), expr.Multiply(a, c)),
	expr.Multiply(a, expr.Add(b, c))))

// Pythagorean applies the identity sin(a)^2 + cos(a)^2 -> 1.
var Pythagorean = builtin("pythagorean", rewrite.NewRule(
	expr.Add(expr.Pow(expr.Call(expr.SIN, a), two), expr.Pow(expr.Call(expr.COS, a), two)),
	expr.Int(1)))

// DoubleAngle expands sin(2*a) -> 2*sin(a)*cos(a).
var DoubleAngle = builtin("double-angle", rewrite.NewRule(
	expr.Call(expr.SIN, expr.Multiply(two, a)),
	expr.Multiply(two, expr.Call(expr.SIN, a), expr.Call(expr.COS, a))))

// ExpandLog splits a logarithm over a product: ln(a*b) -> ln(a) + ln(b).
var ExpandLog = builtin("expand-log", rewrite.NewRule(
	expr.Call(expr.LN, expr.Multiply(a, b)),
	expr.Add(expr.Call(expr.LN, a), expr.Call(expr.LN, b))))

// CombineLog merges a sum of logarithms: ln(a) + ln(b) -> ln(a*b).
var CombineLog = builtin("combine-log", rewrite.NewRule(
	expr.Add(expr.Call(expr.LN, a), expr.Call(expr.LN, b)),
	expr.Call(expr.LN, expr.Multiply(a, b))))

// DistributePower distributes a power over a product: (a*b)^c -> a^c*b^c.
var DistributePower = builtin("distribute-power", rewrite.NewRule(
	expr.Pow(expr.Multiply(a, b), c),
	expr.Multiply(expr.Pow(a, c), expr.Pow(b, c))))

var builtins = []Path{
	Identity, ExpandBraces, Distribute, FactorBraces, Pythagorean, DoubleAngle, ExpandLog, CombineLog, DistributePower,
}

// Builtins returns all builtin paths.
func Builtins() []Path {
	return builtins
}

// LookupPath finds a builtin path by (case insensitive) name.
func LookupPath(name string) (Path, bool) {
	for _, p := range builtins {
		if strings.EqualFold(p.name, name) {
			return p, true
		}
	}
	//
	return Path{}, false
}
