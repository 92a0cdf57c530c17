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
package expr

// MAX_EXPANDED_EXPONENT determines the largest integer power of a sum which is
// expanded by Expand.
const MAX_EXPANDED_EXPONENT = 8

// Expand distributes products over sums throughout an expression, such that
// (for example) (x+1)*(x-1) becomes x^2 - 1.  Small positive integer powers of
// sums are also expanded, such that (x+1)^2 becomes x^2 + 2*x + 1.  This is
// applied bottom up, and the result is rebuilt through the simplifying
// constructors.
func Expand(e Expr) Expr {
	var (
		args    = e.Args()
		nargs   = make([]Expr, len(args))
		changed = false
	)
	//
	for i, arg := range args {
		nargs[i] = Expand(arg)
		changed = changed || nargs[i] != arg
	}
	//
	if changed {
		e = Rebuild(e, nargs)
	}
	//
	switch e := e.(type) {
	case *Product:
		var terms = []Expr{Int(1)}
		//
		for _, factor := range e.factors {
			terms = crossTerms(terms, expandedTerms(factor))
		}
		//
		return Add(terms...)
	case *Power:
		if terms := expandedTerms(e); len(terms) > 1 {
			return Add(terms...)
		}
	}
	//
	return e
}

// Determine the terms arising from a given factor when it is expanded.  For a
// sum, these are simply its terms, whilst for a small integer power of a sum
// these are the terms of the expanded polynomial.  Otherwise, the factor is a
// single term.
func expandedTerms(factor Expr) []Expr {
	switch f := factor.(type) {
	case *Sum:
		return f.terms
	case *Power:
		if s, ok := f.base.(*Sum); ok {
			if n, ok := IsConstant(f.exponent); ok {
				if k, ok := n.Int64(); ok && k >= 2 && k <= MAX_EXPANDED_EXPONENT {
					terms := s.terms
					//
					for i := int64(1); i < k; i++ {
						terms = crossTerms(terms, s.terms)
					}
					//
					return terms
				}
			}
		}
	}
	//
	return []Expr{factor}
}

// Compute the pairwise products of two sets of terms.
func crossTerms(lhs []Expr, rhs []Expr) []Expr {
	var terms = make([]Expr, 0, len(lhs)*len(rhs))
	//
	for _, l := range lhs {
		for _, r := range rhs {
			terms = append(terms, Multiply(l, r))
		}
	}
	//
	return terms
}
