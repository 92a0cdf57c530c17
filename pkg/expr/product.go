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

// Product represents the product of two or more factors.  The factors of a
// product are held in canonical order, with any rational coefficient first.  No
// factor is itself a product, and no two factors share the same base.
type Product struct {
	factors []Expr
	hash    uint64
}

// Multiply zero or more expressions together, producing a canonical expression.
// Nested products are flattened, rational constants are folded into a single
// coefficient, and factors sharing the same base are collected together by
// summing their exponents (e.g. x*x^2 gives x^3).  A zero coefficient
// annihilates the product.  Multiplying nothing yields 1, whilst multiplying
// exactly one (non-unit) factor yields that factor.
func Multiply(factors ...Expr) Expr {
	var (
		coefficient big.Rat
		bases       = hash.NewMap[ExactKey, []Expr](uint(len(factors)))
	)
	//
	coefficient.SetInt64(1)
	//
	for _, factor := range flatten[*Product](factors) {
		if c, ok := IsConstant(factor); ok {
			if c.IsZero() {
				return Int(0)
			}
			//
			coefficient.Mul(&coefficient, c.value)
			//
			continue
		}
		// Split out exponent
		base, exponent := splitExponent(factor)
		key := ExactKey{base}
		//
		exponents, _ := bases.Get(key)
		bases.Insert(key, append(exponents, exponent))
	}
	// Reconstruct factors
	var (
		keys     = bases.Keys()
		values   = bases.Values()
		nfactors = make([]Expr, 0, len(keys)+1)
		deferred []Expr
	)
	//
	for i, key := range keys {
		factor := key.Expr
		//
		if len(values[i]) != 1 {
			factor = Pow(key.Expr, Add(values[i]...))
		} else if !exactly(values[i][0], Int(1)) {
			factor = Pow(key.Expr, values[i][0])
		}
		// Check what we got
		if c, ok := IsConstant(factor); ok {
			if c.IsZero() {
				return Int(0)
			}
			// Fold into coefficient
			coefficient.Mul(&coefficient, c.value)
		} else if _, ok := factor.(*Product); ok {
			// Can arise when the exponents of a product sum to an integer.
			deferred = append(deferred, factor)
		} else {
			nfactors = append(nfactors, factor)
		}
	}
	// Reapply for anything deferred
	if len(deferred) > 0 {
		nfactors = append(nfactors, NewConstant(&coefficient))
		return Multiply(append(nfactors, deferred...)...)
	}
	// Canonical ordering
	slices.SortFunc(nfactors, Compare)
	// Coefficient first
	if coefficient.Cmp(one) != 0 {
		nfactors = append([]Expr{NewConstant(&coefficient)}, nfactors...)
	}
	//
	switch len(nfactors) {
	case 0:
		return Int(1)
	case 1:
		return nfactors[0]
	default:
		return newProduct(nfactors)
	}
}

// Neg negates a given expression.
func Neg(e Expr) Expr {
	return Multiply(Int(-1), e)
}

// Div divides one expression by another.
func Div(lhs Expr, rhs Expr) Expr {
	return Multiply(lhs, Pow(rhs, Int(-1)))
}

func newProduct(factors []Expr) *Product {
	var hashes = make([]uint64, len(factors))
	//
	for i, f := range factors {
		hashes[i] = f.Hash()
	}
	//
	return &Product{factors, hash.Unordered(uint64(PRODUCT), hashes...)}
}

// Kind implementation for Expr interface.
func (p *Product) Kind() Kind { return PRODUCT }

// Args implementation for Expr interface.
func (p *Product) Args() []Expr { return p.factors }

// Hash implementation for Expr interface.
func (p *Product) Hash() uint64 { return p.hash }

// Equals implementation for Expr interface.
func (p *Product) Equals(other Expr) bool { return Equal(p, other, ATOMIC) }

// EqualsAt implementation for Expr interface.
func (p *Product) EqualsAt(other Expr, level Level) bool { return Equal(p, other, level) }

// Atomic implementation for Expr interface.
func (p *Product) Atomic() Expr { return p }

// Lisp implementation for Expr interface.
func (p *Product) Lisp() sexp.SExp {
	return lispOfTerms("*", p.factors)
}

func (p *Product) String() string {
	return render(p)
}

func (p *Product) sealed() {}

// Coefficient returns the rational coefficient of this product, which is 1 when
// no explicit coefficient is present.
func (p *Product) Coefficient() *Constant {
	if c, ok := IsConstant(p.factors[0]); ok {
		return c
	}
	//
	return Int(1)
}

// Split a factor into its base and exponent.  For example, x^2 is split into x
// and 2, whilst x is split into x and 1.
func splitExponent(factor Expr) (Expr, Expr) {
	if p, ok := factor.(*Power); ok {
		return p.base, p.exponent
	}
	//
	return factor, Int(1)
}
