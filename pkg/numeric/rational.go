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
package numeric

import (
	"fmt"
	"math/big"
)

// MAX_RATIONAL_EXPONENT bounds the magnitude of integer exponents evaluated
// exactly, since the size of the result grows linearly with the exponent.
const MAX_RATIONAL_EXPONENT = 1 << 16

// Rational is the exact arbitrary precision backend.  Only operations with
// exact rational results are supported, hence transcendental functions and
// non-integer powers report ErrUnsupported.
type Rational struct{}

// Name of this backend.
func (p Rational) Name() string {
	return "rational"
}

// FromRat returns (a copy of) the given rational.
func (p Rational) FromRat(value *big.Rat) (*big.Rat, error) {
	return new(big.Rat).Set(value), nil
}

// Named constants are irrational, hence unsupported.
func (p Rational) Named(name string) (*big.Rat, error) {
	return nil, fmt.Errorf("%w: irrational constant %s", ErrUnsupported, name)
}

// Apply a primitive operation.
func (p Rational) Apply(op Op, args ...*big.Rat) (*big.Rat, error) {
	switch op {
	case ADD:
		return new(big.Rat).Add(args[0], args[1]), nil
	case MUL:
		return new(big.Rat).Mul(args[0], args[1]), nil
	case POW:
		return powRat(args[0], args[1])
	case LN:
		if args[0].Sign() <= 0 {
			return nil, fmt.Errorf("%w: ln(%s)", ErrDomain, args[0].RatString())
		} else if args[0].IsInt() && args[0].Num().IsInt64() && args[0].Num().Int64() == 1 {
			return new(big.Rat), nil
		}
	case ABS:
		return new(big.Rat).Abs(args[0]), nil
	case SIGN:
		return big.NewRat(int64(args[0].Sign()), 1), nil
	case MIN:
		if args[0].Cmp(args[1]) <= 0 {
			return args[0], nil
		}
		//
		return args[1], nil
	case MAX:
		if args[0].Cmp(args[1]) >= 0 {
			return args[0], nil
		}
		//
		return args[1], nil
	case SELECT:
		if args[0].Sign() != 0 {
			return args[1], nil
		}
		//
		return args[2], nil
	}
	//
	return nil, fmt.Errorf("%w: %s over rationals", ErrUnsupported, op)
}

// Equal checks whether two rationals are identical.
func (p Rational) Equal(lhs *big.Rat, rhs *big.Rat) bool {
	return lhs.Cmp(rhs) == 0
}

// Format a rational as either an integer or a fraction.
func (p Rational) Format(value *big.Rat) string {
	return value.RatString()
}

func powRat(base *big.Rat, exponent *big.Rat) (*big.Rat, error) {
	if !exponent.IsInt() || !exponent.Num().IsInt64() {
		return nil, fmt.Errorf("%w: non-integer exponent %s", ErrUnsupported, exponent.RatString())
	}
	//
	n := exponent.Num().Int64()
	//
	switch {
	case n > MAX_RATIONAL_EXPONENT || n < -MAX_RATIONAL_EXPONENT:
		return nil, fmt.Errorf("%w: exponent %d too large", ErrUnsupported, n)
	case n < 0 && base.Sign() == 0:
		return nil, ErrDivisionByZero
	}
	//
	var (
		k   = big.NewInt(abs(n))
		num = new(big.Int).Exp(base.Num(), k, nil)
		den = new(big.Int).Exp(base.Denom(), k, nil)
	)
	//
	if n < 0 {
		num, den = den, num
	}
	//
	return new(big.Rat).SetFrac(num, den), nil
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	//
	return n
}
