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

import "github.com/consensys/go-symbolic/pkg/expr"

// Op identifies a primitive numeric operation supported by every arithmetic
// backend.  Operations have a fixed arity.
type Op uint8

const (
	// ADD computes x+y.
	ADD Op = iota
	// MUL computes x*y.
	MUL
	// POW computes x^y.
	POW
	// SIN computes sin(x).
	SIN
	// COS computes cos(x).
	COS
	// TAN computes tan(x).
	TAN
	// ASIN computes asin(x).
	ASIN
	// ACOS computes acos(x).
	ACOS
	// ATAN computes atan(x).
	ATAN
	// SINH computes sinh(x).
	SINH
	// COSH computes cosh(x).
	COSH
	// TANH computes tanh(x).
	TANH
	// LN computes the natural logarithm of x.
	LN
	// ABS computes |x|.
	ABS
	// SIGN computes -1, 0 or 1 according to the sign of x.
	SIGN
	// MIN computes the smaller of x and y.
	MIN
	// MAX computes the larger of x and y.
	MAX
	// SELECT computes y if x is non-zero, otherwise z.
	SELECT
)

var opNames = []string{
	"add", "mul", "pow", "sin", "cos", "tan", "asin", "acos", "atan", "sinh", "cosh", "tanh", "ln",
	"abs", "sign", "min", "max", "select",
}

// Arity returns the number of operands consumed by this operation.
func (op Op) Arity() uint {
	switch op {
	case ADD, MUL, POW, MIN, MAX:
		return 2
	case SELECT:
		return 3
	default:
		return 1
	}
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	//
	return "???"
}

// OpOf determines the primitive operation corresponding to a given function
// identity, if one exists.  Derived identities (e.g. sqrt) have no direct
// operation, and must instead be evaluated via their atomic form.
func OpOf(id expr.FunctionId) (Op, bool) {
	switch id {
	case expr.SIN:
		return SIN, true
	case expr.COS:
		return COS, true
	case expr.TAN:
		return TAN, true
	case expr.ASIN:
		return ASIN, true
	case expr.ACOS:
		return ACOS, true
	case expr.ATAN:
		return ATAN, true
	case expr.SINH:
		return SINH, true
	case expr.COSH:
		return COSH, true
	case expr.TANH:
		return TANH, true
	case expr.LN:
		return LN, true
	case expr.ABS:
		return ABS, true
	case expr.SIGN:
		return SIGN, true
	case expr.MIN:
		return MIN, true
	case expr.MAX:
		return MAX, true
	case expr.SELECT:
		return SELECT, true
	default:
		return 0, false
	}
}
