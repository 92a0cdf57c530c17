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
	"slices"
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
)

// Result is a single way in which an expression matches a pattern.  This maps
// each pattern variable (by its lower case name) to the subexpression it was
// bound to.  A result is immutable once constructed.
type Result struct {
	bindings map[string]expr.Expr
}

// Get returns the expression bound to a given pattern variable (if any).
func (p Result) Get(name string) (expr.Expr, bool) {
	e, ok := p.bindings[strings.ToLower(name)]
	return e, ok
}

// Len returns the number of pattern variables bound by this result.
func (p Result) Len() uint {
	return uint(len(p.bindings))
}

// Names returns the pattern variables bound in this result, in sorted order.
func (p Result) Names() []string {
	var names = make([]string, 0, len(p.bindings))
	//
	for name := range p.bindings {
		names = append(names, name)
	}
	//
	slices.Sort(names)
	//
	return names
}

// Bindings returns a copy of the bindings in this result, suitable for use
// with expr.Substitute.
func (p Result) Bindings() map[string]expr.Expr {
	var bindings = make(map[string]expr.Expr, len(p.bindings))
	//
	for k, v := range p.bindings {
		bindings[k] = v
	}
	//
	return bindings
}

// Merge two results together, provided they agree on every variable bound in
// both.  Agreement is determined using exact equality.
func (p Result) Merge(other Result) (Result, bool) {
	if len(p.bindings) == 0 {
		return other, true
	} else if len(other.bindings) == 0 {
		return p, true
	}
	//
	bindings := p.Bindings()
	//
	for k, v := range other.bindings {
		if w, ok := bindings[k]; ok && !w.EqualsAt(v, expr.EXACTLY) {
			return Result{}, false
		}
		//
		bindings[k] = v
	}
	//
	return Result{bindings}, true
}

// Equals implementation for the Hasher interface.  Two results are equal when
// they bind the same variables to exactly equal expressions.
func (p Result) Equals(other Result) bool {
	if len(p.bindings) != len(other.bindings) {
		return false
	}
	//
	for k, v := range p.bindings {
		if w, ok := other.bindings[k]; !ok || !v.EqualsAt(w, expr.EXACTLY) {
			return false
		}
	}
	//
	return true
}

// Hash implementation for the Hasher interface.
func (p Result) Hash() uint64 {
	var hashes = make([]uint64, 0, len(p.bindings))
	//
	for k, v := range p.bindings {
		hashes = append(hashes, hash.Ordered(hash.String(k), v.Hash()))
	}
	//
	return hash.Unordered(0, hashes...)
}

func (p Result) String() string {
	var builder strings.Builder
	//
	builder.WriteString("{")
	//
	for i, name := range p.Names() {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(name)
		builder.WriteString("=")
		builder.WriteString(p.bindings[name].String())
	}
	//
	builder.WriteString("}")
	//
	return builder.String()
}

// ============================================================================
// Result Sets
// ============================================================================

// ResultSet is a set of alternative results arising from matching an
// expression against a pattern.  An empty result set (None) indicates the
// match failed, and is distinct from a result set holding a single result with
// no bindings (Unit), which indicates a match binding no variables.
type ResultSet struct {
	results []Result
}

// None returns the result set indicating a failed match.
func None() ResultSet {
	return ResultSet{nil}
}

// Unit returns the result set indicating a successful match which binds no
// variables.
func Unit() ResultSet {
	return ResultSet{[]Result{{map[string]expr.Expr{}}}}
}

// Bind returns the result set holding exactly one result, which binds a given
// variable to a given expression.
func Bind(name string, e expr.Expr) ResultSet {
	return ResultSet{[]Result{{map[string]expr.Expr{strings.ToLower(name): e}}}}
}

// IsNone checks whether this result set indicates a failed match.
func (p ResultSet) IsNone() bool {
	return len(p.results) == 0
}

// Len returns the number of alternative results in this set.
func (p ResultSet) Len() uint {
	return uint(len(p.results))
}

// Results returns the alternative results in this set, in the order they were
// found.  The returned slice must not be modified.
func (p ResultSet) Results() []Result {
	return p.results
}

// Contains checks whether a given result is in this set.
func (p ResultSet) Contains(result Result) bool {
	for _, r := range p.results {
		if r.Equals(result) {
			return true
		}
	}
	//
	return false
}

// Union combines the alternatives of two result sets, removing duplicates.
func (p ResultSet) Union(other ResultSet) ResultSet {
	if p.IsNone() {
		return other
	} else if other.IsNone() {
		return p
	}
	//
	return distinct(append(slices.Clone(p.results), other.results...))
}

// Merge computes the cross product of two result sets, where every result of
// one is merged with every result of the other.  Combinations which disagree
// on some variable are discarded.  Thus, merging with None always gives None,
// whilst merging with Unit has no effect.
func (p ResultSet) Merge(other ResultSet) ResultSet {
	var results []Result
	//
	for _, l := range p.results {
		for _, r := range other.results {
			if m, ok := l.Merge(r); ok {
				results = append(results, m)
			}
		}
	}
	//
	return distinct(results)
}

func (p ResultSet) String() string {
	if p.IsNone() {
		return "none"
	}
	//
	var items = make([]string, len(p.results))
	//
	for i, r := range p.results {
		items[i] = r.String()
	}
	//
	return "[" + strings.Join(items, ", ") + "]"
}

// Remove duplicate results, whilst retaining the order of first occurrence.
func distinct(results []Result) ResultSet {
	var (
		seen = hash.NewSet[Result](uint(len(results)))
		nres = make([]Result, 0, len(results))
	)
	//
	for _, r := range results {
		if !seen.Insert(r) {
			nres = append(nres, r)
		}
	}
	//
	return ResultSet{nres}
}
