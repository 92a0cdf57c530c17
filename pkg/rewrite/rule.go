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
	"fmt"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/match"
	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// Rule is an immutable rewrite rule, which replaces any subexpression matching
// a pattern with a replacement.  Variables in the replacement are instantiated
// with those bound by the pattern.
type Rule struct {
	pattern     expr.Expr
	replacement expr.Expr
}

// NewRule constructs a new rewrite rule from a given pattern and replacement.
func NewRule(pattern expr.Expr, replacement expr.Expr) Rule {
	return Rule{pattern, replacement}
}

// Pattern returns the pattern of this rule.
func (p Rule) Pattern() expr.Expr {
	return p.pattern
}

// Replacement returns the replacement of this rule.
func (p Rule) Replacement() expr.Expr {
	return p.replacement
}

// Apply this rule to a given expression, producing the sequence of every
// expression obtainable by applying this rule exactly once somewhere within the
// expression.
func (p Rule) Apply(e expr.Expr) Sequence {
	return Sequence{e, p}
}

func (p Rule) String() string {
	return fmt.Sprintf("%s -> %s", p.pattern, p.replacement)
}

// Sequence is the finite sequence of all expressions obtainable from a source
// expression by a single application of a rule.  Sequences are lazy and
// restartable, meaning each iteration recomputes the rewrites and iterations
// share no state.  Duplicates (under exact equality) are removed.
type Sequence struct {
	source expr.Expr
	rule   Rule
}

// Source returns the expression being rewritten.
func (p Sequence) Source() expr.Expr {
	return p.source
}

// Iterator returns a fresh iterator over the rewrites in this sequence.
func (p Sequence) Iterator() iter.Iterator[expr.Expr] {
	var (
		positions = iter.NewArrayIterator(positionsOf(p.source))
		rewrites  = iter.NewFlattenIterator(positions, func(pos position) iter.Iterator[expr.Expr] {
			return iter.NewArrayIterator(p.rewritesAt(pos))
		})
	)
	//
	return iter.NewFilterIterator(rewrites, distinct)
}

// Collect computes all rewrites in this sequence.
func (p Sequence) Collect() []expr.Expr {
	return p.Iterator().Collect()
}

// Count returns the number of rewrites in this sequence.
func (p Sequence) Count() uint {
	return iter.Count[expr.Expr](p.Iterator())
}

// IsEmpty checks whether this sequence contains no rewrites, meaning the rule
// does not apply anywhere within the source expression.
func (p Sequence) IsEmpty() bool {
	return !p.Iterator().HasNext()
}

// Compute all rewrites arising at a given position, with each result being the
// whole tree after rewriting.
func (p Sequence) rewritesAt(pos position) []expr.Expr {
	var results []expr.Expr
	//
	for _, node := range rewriteNode(pos.node, p.rule) {
		results = append(results, replaceAt(p.source, pos.path, node))
	}
	//
	return results
}

// Compute all rewrites of a given node, where the rule is applied at the node
// itself.  For a sum (or product) this includes rewrites of any subset of its
// arguments, where the remaining arguments are left untouched.
func rewriteNode(node expr.Expr, rule Rule) []expr.Expr {
	var nodes []expr.Expr
	// Match whole node
	for _, r := range match.Match(node, rule.pattern).Results() {
		nodes = append(nodes, expr.Substitute(rule.replacement, r.Bindings()))
	}
	// Match subsets of arguments
	if node.Kind() == rule.pattern.Kind() && admitsSubsets(rule.pattern) {
		var (
			args = node.Args()
			k    = len(rule.pattern.Args())
			wrap = rewrapperOf(node)
		)
		//
		for _, subset := range subsetsOf(len(args), k) {
			var inside, outside []expr.Expr
			//
			for i, arg := range args {
				if subset[i] {
					inside = append(inside, arg)
				} else {
					outside = append(outside, arg)
				}
			}
			//
			for _, r := range match.Match(wrap(inside...), rule.pattern).Results() {
				replaced := expr.Substitute(rule.replacement, r.Bindings())
				nodes = append(nodes, wrap(append(outside, replaced)...))
			}
		}
	}
	//
	return nodes
}

// Rewriting subsets of the arguments of a sum (or product) is only permitted
// when no argument of the pattern is a bare variable.  Otherwise, such a
// variable would already absorb any arguments not otherwise matched.
func admitsSubsets(pattern expr.Expr) bool {
	if pattern.Kind() != expr.SUM && pattern.Kind() != expr.PRODUCT {
		return false
	}
	//
	for _, arg := range pattern.Args() {
		if arg.Kind() == expr.VARIABLE {
			return false
		}
	}
	//
	return true
}

func rewrapperOf(node expr.Expr) func(...expr.Expr) expr.Expr {
	if node.Kind() == expr.SUM {
		return expr.Add
	}
	//
	return expr.Multiply
}

// Determine all proper subsets of n items having at least k items.
func subsetsOf(n int, k int) [][]bool {
	var (
		subsets     [][]bool
		enumeration = iter.EnumerateElements(uint(n), []bool{false, true})
	)
	//
	for enumeration.HasNext() {
		subset := enumeration.Next()
		//
		if size := countTrue(subset); size >= k && size < n {
			subsets = append(subsets, subset)
		}
	}
	//
	return subsets
}

func countTrue(items []bool) int {
	var count int
	//
	for _, b := range items {
		if b {
			count++
		}
	}
	//
	return count
}

// Construct a filter which accepts only expressions not seen before.
func distinct() iter.Predicate[expr.Expr] {
	var seen = hash.NewSet[expr.ExactKey](16)
	//
	return func(e expr.Expr) bool {
		return !seen.Insert(expr.ExactKey{Expr: e})
	}
}
