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

	"github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
)

// FieldElement is an element of the BLS12-377 scalar field.
type FieldElement = fr.Element

// Field is the prime field backend, where values are elements of the BLS12-377
// scalar field.  Evaluation is exact, hence it can be used to compare
// polynomial expressions at random points.  Operations relying on an ordering
// (abs, sign, min, max) or on real analysis (sin, ln, etc) are unsupported.
type Field struct{}

// Name of this backend.
func (p Field) Name() string {
	return "field"
}

// FromRat maps a rational n/d to n * d^-1.
func (p Field) FromRat(value *big.Rat) (FieldElement, error) {
	var num, den FieldElement
	//
	num.SetBigInt(value.Num())
	den.SetBigInt(value.Denom())
	//
	if den.IsZero() {
		return num, fmt.Errorf("%w: denominator %s is a multiple of the modulus", ErrDivisionByZero, value.Denom())
	}
	//
	den.Inverse(&den)
	//
	return *num.Mul(&num, &den), nil
}

// Named constants are irrational, hence unsupported.
func (p Field) Named(name string) (FieldElement, error) {
	return FieldElement{}, fmt.Errorf("%w: irrational constant %s", ErrUnsupported, name)
}

// Apply a primitive operation.
func (p Field) Apply(op Op, args ...FieldElement) (FieldElement, error) {
	var res FieldElement
	//
	switch op {
	case ADD:
		return *res.Add(&args[0], &args[1]), nil
	case MUL:
		return *res.Mul(&args[0], &args[1]), nil
	case POW:
		return powField(args[0], args[1])
	case SELECT:
		if !args[0].IsZero() {
			return args[1], nil
		}
		//
		return args[2], nil
	}
	//
	return res, fmt.Errorf("%w: %s over a prime field", ErrUnsupported, op)
}

// Equal checks whether two field elements are identical.
func (p Field) Equal(lhs FieldElement, rhs FieldElement) bool {
	return lhs.Equal(&rhs)
}

// Format a field element in decimal.
func (p Field) Format(value FieldElement) string {
	return value.String()
}

// Random returns a uniformly random field element.
func (p Field) Random() (FieldElement, error) {
	var res FieldElement
	//
	if _, err := res.SetRandom(); err != nil {
		return res, err
	}
	//
	return res, nil
}

// Exponents are field elements, hence the original integer is recovered by
// interpreting elements close to the modulus as negative.  Only exponents whose
// magnitude fits within 63 bits are supported.
func powField(base FieldElement, exponent FieldElement) (FieldElement, error) {
	var (
		res FieldElement
		k   = exponent.BigInt(new(big.Int))
		neg = new(big.Int).Sub(fr.Modulus(), k)
	)
	//
	switch {
	case k.IsInt64():
		return *res.Exp(base, k), nil
	case neg.IsInt64():
		if base.IsZero() {
			return res, ErrDivisionByZero
		}
		//
		res.Inverse(&base)
		//
		return *res.Exp(res, neg), nil
	default:
		return res, fmt.Errorf("%w: non-integer exponent %s", ErrUnsupported, exponent.String())
	}
}
