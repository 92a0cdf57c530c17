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
	"math"
	"math/big"

	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
	"github.com/consensys/go-symbolic/pkg/util/source/sexp"
)

// PI is the named real constant pi.
var PI = newNamedConstant("pi", math.Pi)

// E is the named real constant e (Euler's number).
var E = newNamedConstant("e", math.E)

var one = big.NewRat(1, 1)

// Constant represents either an exact rational, held in lowest terms, or a
// named real constant (such as pi) which carries a rational approximation of
// its value.  Named constants are never folded with other constants.
type Constant struct {
	value *big.Rat
	name  string
	hash  uint64
}

// NewConstant constructs an exact rational constant.  The given value is copied.
func NewConstant(value *big.Rat) *Constant {
	var val big.Rat
	// NOTE: big.Rat is always normalised.
	val.Set(value)
	//
	return &Constant{&val, "", hash.Ordered(uint64(CONSTANT), hash.String(val.RatString()))}
}

// Int constructs a constant representing a given integer.
func Int(n int64) *Constant {
	return NewConstant(big.NewRat(n, 1))
}

// Rat constructs a constant representing the fraction num/den, which is
// reduced to lowest terms.  This panics if den is zero.
func Rat(num int64, den int64) *Constant {
	return NewConstant(big.NewRat(num, den))
}

func newNamedConstant(name string, approx float64) *Constant {
	var val big.Rat
	//
	val.SetFloat64(approx)
	//
	return &Constant{&val, name, hash.Ordered(uint64(CONSTANT), hash.String(name), 1)}
}

// Kind implementation for Expr interface.
func (p *Constant) Kind() Kind { return CONSTANT }

// Args implementation for Expr interface.
func (p *Constant) Args() []Expr { return nil }

// Hash implementation for Expr interface.
func (p *Constant) Hash() uint64 { return p.hash }

// Equals implementation for Expr interface.
func (p *Constant) Equals(other Expr) bool { return Equal(p, other, ATOMIC) }

// EqualsAt implementation for Expr interface.
func (p *Constant) EqualsAt(other Expr, level Level) bool { return Equal(p, other, level) }

// Atomic implementation for Expr interface.
func (p *Constant) Atomic() Expr { return p }

// Lisp implementation for Expr interface.
func (p *Constant) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.String())
}

func (p *Constant) String() string {
	if p.name != "" {
		return p.name
	}
	//
	return p.value.RatString()
}

func (p *Constant) sealed() {}

// Value returns the value of this constant.  For a named constant, this is a
// rational approximation of its true value.  The returned value must not be
// modified.
func (p *Constant) Value() *big.Rat {
	return p.value
}

// Name returns the name of this constant, or the empty string if it is not a
// named constant.
func (p *Constant) Name() string {
	return p.name
}

// IsNamed checks whether this is a named real constant (such as pi).
func (p *Constant) IsNamed() bool {
	return p.name != ""
}

// IsZero checks whether this is the exact rational constant 0.
func (p *Constant) IsZero() bool {
	return p.name == "" && p.value.Sign() == 0
}

// IsOne checks whether this is the exact rational constant 1.
func (p *Constant) IsOne() bool {
	return p.name == "" && p.value.Cmp(one) == 0
}

// IsInteger checks whether this is an exact integer constant.
func (p *Constant) IsInteger() bool {
	return p.name == "" && p.value.IsInt()
}

// IsNegative checks whether this is an exact rational constant below zero.
func (p *Constant) IsNegative() bool {
	return p.name == "" && p.value.Sign() < 0
}

// Int64 returns the value of this constant as a 64bit integer, provided it is
// an exact integer which fits.
func (p *Constant) Int64() (int64, bool) {
	if p.IsInteger() && p.value.Num().IsInt64() {
		return p.value.Num().Int64(), true
	}
	//
	return 0, false
}
