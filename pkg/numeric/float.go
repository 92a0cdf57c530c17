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
	"math"
	"math/big"
	"strconv"

	"github.com/consensys/go-symbolic/pkg/expr"
)

// Float is the IEEE 754 double precision backend.  Domain errors follow IEEE
// semantics, producing infinities and NaNs rather than errors.
type Float struct{}

// Name of this backend.
func (p Float) Name() string {
	return "float"
}

// FromRat returns the nearest float to the given rational.
func (p Float) FromRat(value *big.Rat) (float64, error) {
	f, _ := value.Float64()
	return f, nil
}

// Named returns the value of a named constant.
func (p Float) Named(name string) (float64, error) {
	switch name {
	case expr.PI.Name():
		return math.Pi, nil
	case expr.E.Name():
		return math.E, nil
	default:
		return 0, fmt.Errorf("%w: constant %s", ErrUnsupported, name)
	}
}

// Apply a primitive operation.
//
//nolint:revive
func (p Float) Apply(op Op, args ...float64) (float64, error) {
	switch op {
	case ADD:
		return args[0] + args[1], nil
	case MUL:
		return args[0] * args[1], nil
	case POW:
		return math.Pow(args[0], args[1]), nil
	case SIN:
		return math.Sin(args[0]), nil
	case COS:
		return math.Cos(args[0]), nil
	case TAN:
		return math.Tan(args[0]), nil
	case ASIN:
		return math.Asin(args[0]), nil
	case ACOS:
		return math.Acos(args[0]), nil
	case ATAN:
		return math.Atan(args[0]), nil
	case SINH:
		return math.Sinh(args[0]), nil
	case COSH:
		return math.Cosh(args[0]), nil
	case TANH:
		return math.Tanh(args[0]), nil
	case LN:
		return math.Log(args[0]), nil
	case ABS:
		return math.Abs(args[0]), nil
	case SIGN:
		switch {
		case args[0] < 0:
			return -1, nil
		case args[0] > 0:
			return 1, nil
		default:
			return 0, nil
		}
	case MIN:
		return math.Min(args[0], args[1]), nil
	case MAX:
		return math.Max(args[0], args[1]), nil
	case SELECT:
		if args[0] != 0 {
			return args[1], nil
		}
		//
		return args[2], nil
	}
	//
	return 0, fmt.Errorf("%w: %s", ErrUnsupported, op)
}

// Equal checks whether two floats are identical.
func (p Float) Equal(lhs float64, rhs float64) bool {
	return lhs == rhs
}

// Format a float in its shortest exact representation.
func (p Float) Format(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}
