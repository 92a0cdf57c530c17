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

	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
	"github.com/consensys/go-symbolic/pkg/util/source/sexp"
)

// MAX_FOLDED_EXPONENT determines the largest (absolute) integer exponent for
// which the power of a rational constant is computed eagerly.
const MAX_FOLDED_EXPONENT int64 = 1024

// Power represents a base raised to an exponent.
type Power struct {
	base     Expr
	exponent Expr
	hash     uint64
}

// Pow raises a base to a given exponent, producing a canonical expression.  The
// following simplifications are applied: x^0 gives 1; x^1 gives x; 1^x gives 1;
// 0^x gives 0 for positive rational x; the integer power of a rational is
// computed directly (unless this would divide by zero); a power of a power is
// merged when the outer exponent is an integer; and the integer power of a
// product is distributed over its factors.
func Pow(base Expr, exponent Expr) Expr {
	if c, ok := IsConstant(exponent); ok {
		if c.IsZero() {
			return Int(1)
		} else if c.IsOne() {
			return base
		}
	}
	//
	if b, ok := IsConstant(base); ok {
		if b.IsOne() {
			return b
		} else if v, ok := powOfConstant(b, exponent); ok {
			return v
		}
	}
	// Integer exponents can be pushed inside powers and products.
	if n, ok := IsConstant(exponent); ok && n.IsInteger() {
		switch b := base.(type) {
		case *Power:
			return Pow(b.base, Multiply(b.exponent, n))
		case *Product:
			factors := make([]Expr, len(b.factors))
			//
			for i, f := range b.factors {
				factors[i] = Pow(f, n)
			}
			//
			return Multiply(factors...)
		}
	}
	//
	return newPower(base, exponent)
}

// Sqrt returns the square root of a given expression.
func Sqrt(e Expr) Expr {
	return Pow(e, Rat(1, 2))
}

// Attempt to compute the power of a rational constant.
func powOfConstant(base *Constant, exponent Expr) (Expr, bool) {
	n, ok := IsConstant(exponent)
	//
	if !ok {
		return nil, false
	} else if base.IsZero() {
		// 0^n is 0 for positive n, but undefined otherwise.
		return Int(0), n.value.Sign() > 0
	} else if k, ok := n.Int64(); ok && k >= -MAX_FOLDED_EXPONENT && k <= MAX_FOLDED_EXPONENT {
		var (
			num = new(big.Int).Set(base.value.Num())
			den = new(big.Int).Set(base.value.Denom())
			abs = big.NewInt(max(k, -k))
			val big.Rat
		)
		//
		num.Exp(num, abs, nil)
		den.Exp(den, abs, nil)
		//
		if k < 0 {
			num, den = den, num
		}
		// NOTE: SetFrac normalises the sign into the numerator.
		return NewConstant(val.SetFrac(num, den)), true
	}
	//
	return nil, false
}

func newPower(base Expr, exponent Expr) *Power {
	return &Power{base, exponent, hash.Ordered(uint64(POWER), base.Hash(), exponent.Hash())}
}

// Kind implementation for Expr interface.
func (p *Power) Kind() Kind { return POWER }

// Args implementation for Expr interface.
func (p *Power) Args() []Expr { return []Expr{p.base, p.exponent} }

// Hash implementation for Expr interface.
func (p *Power) Hash() uint64 { return p.hash }

// Equals implementation for Expr interface.
func (p *Power) Equals(other Expr) bool { return Equal(p, other, ATOMIC) }

// EqualsAt implementation for Expr interface.
func (p *Power) EqualsAt(other Expr, level Level) bool { return Equal(p, other, level) }

// Atomic implementation for Expr interface.
func (p *Power) Atomic() Expr { return p }

// Lisp implementation for Expr interface.
func (p *Power) Lisp() sexp.SExp {
	return lispOfTerms("^", []Expr{p.base, p.exponent})
}

func (p *Power) String() string {
	return render(p)
}

func (p *Power) sealed() {}

// Base returns the base of this power.
func (p *Power) Base() Expr {
	return p.base
}

// Exponent returns the exponent of this power.
func (p *Power) Exponent() Expr {
	return p.exponent
}
