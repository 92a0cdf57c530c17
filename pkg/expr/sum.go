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

import (
	"math/big"
	"slices"

	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
	"github.com/consensys/go-symbolic/pkg/util/source/sexp"
)

// Sum represents the sum of two or more terms.  The terms of a sum are held in
// canonical order, with any rational constant last.  No term is itself a sum,
// and no two terms differ only in their rational coefficient.
type Sum struct {
	terms []Expr
	hash  uint64
}

// Add zero or more expressions together, producing a canonical expression.
// Nested sums are flattened, rational constants are folded together, terms
// which differ only by their rational coefficient are collected together, and
// terms whose coefficient becomes zero are dropped.  Adding nothing yields 0,
// whilst adding exactly one (non-zero) term yields that term.
func Add(terms ...Expr) Expr {
	var (
		constant big.Rat
		bases    = hash.NewMap[ExactKey, *big.Rat](uint(len(terms)))
	)
	//
	for _, term := range flatten[*Sum](terms) {
		if c, ok := IsConstant(term); ok {
			constant.Add(&constant, c.value)
			continue
		}
		// Split out coefficient
		coefficient, base := splitCoefficient(term)
		key := ExactKey{base}
		//
		if existing, ok := bases.Get(key); ok {
			existing.Add(existing, coefficient)
		} else {
			var val big.Rat
			//
			bases.Insert(key, val.Set(coefficient))
		}
	}
	// Reconstruct terms
	var (
		keys   = bases.Keys()
		values = bases.Values()
		nterms = make([]Expr, 0, len(keys)+1)
	)
	//
	for i, key := range keys {
		switch values[i].Sign() {
		case 0:
			// Coefficient cancelled out.
			continue
		default:
			if values[i].Cmp(one) == 0 {
				nterms = append(nterms, key.Expr)
			} else {
				nterms = append(nterms, Multiply(NewConstant(values[i]), key.Expr))
			}
		}
	}
	// Canonical ordering
	slices.SortFunc(nterms, Compare)
	// Constant last
	if constant.Sign() != 0 {
		nterms = append(nterms, NewConstant(&constant))
	}
	//
	switch len(nterms) {
	case 0:
		return Int(0)
	case 1:
		return nterms[0]
	default:
		return newSum(nterms)
	}
}

// Sub subtracts one expression from another.
func Sub(lhs Expr, rhs Expr) Expr {
	return Add(lhs, Neg(rhs))
}

func newSum(terms []Expr) *Sum {
	var hashes = make([]uint64, len(terms))
	//
	for i, t := range terms {
		hashes[i] = t.Hash()
	}
	//
	return &Sum{terms, hash.Unordered(uint64(SUM), hashes...)}
}

// Kind implementation for Expr interface.
func (p *Sum) Kind() Kind { return SUM }

// Args implementation for Expr interface.
func (p *Sum) Args() []Expr { return p.terms }

// Hash implementation for Expr interface.
func (p *Sum) Hash() uint64 { return p.hash }

// Equals implementation for Expr interface.
func (p *Sum) Equals(other Expr) bool { return Equal(p, other, ATOMIC) }

// EqualsAt implementation for Expr interface.
func (p *Sum) EqualsAt(other Expr, level Level) bool { return Equal(p, other, level) }

// Atomic implementation for Expr interface.
func (p *Sum) Atomic() Expr { return p }

// Lisp implementation for Expr interface.
func (p *Sum) Lisp() sexp.SExp {
	return lispOfTerms("+", p.terms)
}

func (p *Sum) String() string {
	return render(p)
}

func (p *Sum) sealed() {}

// Split a term into its rational coefficient and its base.  For example, 2*x*y
// is split into 2 and x*y, whilst x is split into 1 and x.
func splitCoefficient(term Expr) (*big.Rat, Expr) {
	if p, ok := term.(*Product); ok {
		if c, ok := IsConstant(p.factors[0]); ok {
			switch len(p.factors) {
			case 2:
				return c.value, p.factors[1]
			default:
				// NOTE: remaining factors are already in canonical form.
				return c.value, newProduct(p.factors[1:])
			}
		}
	}
	//
	return one, term
}

// Flatten any nested nodes of the given type.
func flatten[T Expr](terms []Expr) []Expr {
	var nterms = make([]Expr, 0, len(terms))
	//
	for _, term := range terms {
		if t, ok := term.(T); ok {
			nterms = append(nterms, t.Args()...)
		} else {
			nterms = append(nterms, term)
		}
	}
	//
	return nterms
}
