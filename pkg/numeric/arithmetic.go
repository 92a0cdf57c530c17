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
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrDivisionByZero signals an attempt to invert zero.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrDomain signals an operand outside the domain of an operation, such as
	// the logarithm of a non-positive number.
	ErrDomain = errors.New("argument outside domain")
	// ErrUnsupported signals an operation which a backend cannot compute
	// exactly, such as sin over the rationals.
	ErrUnsupported = errors.New("unsupported operation")
)

// Arithmetic abstracts a numeric backend over values of type T.  Backends are
// stateless, and values are never mutated once returned.
type Arithmetic[T any] interface {
	// Name of this backend (e.g. "float").
	Name() string
	// FromRat converts an exact rational into a value of this backend.
	FromRat(value *big.Rat) (T, error)
	// Named returns the value of a named constant (e.g. "pi").
	Named(name string) (T, error)
	// Apply a primitive operation to the given operands.  The number of
	// operands must match the arity of the operation.
	Apply(op Op, args ...T) (T, error)
	// Equal checks whether two values are identical.
	Equal(lhs T, rhs T) bool
	// Format a value as a string.
	Format(value T) string
}

// Parse a value for a given backend from its textual form, which can be an
// integer ("12"), a fraction ("1/3") or a decimal ("0.25").
func Parse[T any](arith Arithmetic[T], text string) (T, error) {
	var empty T
	//
	value, ok := new(big.Rat).SetString(text)
	if !ok {
		return empty, fmt.Errorf("invalid number %q", text)
	}
	//
	return arith.FromRat(value)
}

// Lookup a backend by name ("float", "rational" or "field").  This allows
// callers to select a backend at runtime, and then dispatch on its value type.
func Lookup(name string) (Backend, error) {
	switch name {
	case "float":
		return Backend{name, Float{}, nil, nil}, nil
	case "rational":
		return Backend{name, nil, Rational{}, nil}, nil
	case "field":
		return Backend{name, nil, nil, Field{}}, nil
	default:
		return Backend{}, fmt.Errorf("unknown numeric backend %q (expected float, rational or field)", name)
	}
}

// Backend is a tagged union of the available arithmetic backends, where
// exactly one is non-nil.
type Backend struct {
	name     string
	float    Arithmetic[float64]
	rational Arithmetic[*big.Rat]
	field    Arithmetic[FieldElement]
}

// Name of the selected backend.
func (p Backend) Name() string {
	return p.name
}

// Float returns the float backend, if selected.
func (p Backend) Float() (Arithmetic[float64], bool) {
	return p.float, p.float != nil
}

// Rational returns the rational backend, if selected.
func (p Backend) Rational() (Arithmetic[*big.Rat], bool) {
	return p.rational, p.rational != nil
}

// Field returns the prime field backend, if selected.
func (p Backend) Field() (Arithmetic[FieldElement], bool) {
	return p.field, p.field != nil
}
