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
	"strings"
)

// Precedence levels used for rendering, where a higher level binds more
// tightly.
const (
	precSum     = 1
	precProduct = 2
	precNeg     = 3
	precPower   = 4
	precAtom    = 5
)

// Render an expression in infix form using the minimum number of brackets.
// The rendering can be parsed back into an (exactly) equal expression.
func render(e Expr) string {
	text, _ := renderWithPrecedence(e)
	return text
}

// Render an expression, whilst also returning the precedence of its outermost
// operator.
func renderWithPrecedence(e Expr) (string, int) {
	switch e := e.(type) {
	case *Constant:
		switch {
		case e.IsNegative():
			return e.String(), precNeg
		case e.IsNamed() || e.IsInteger():
			return e.String(), precAtom
		default:
			return e.String(), precProduct
		}
	case *Variable, *Function:
		return e.String(), precAtom
	case *Sum:
		return renderSum(e), precSum
	case *Product:
		return renderProduct(e)
	case *Power:
		return renderPower(e), precPower
	default:
		panic("unreachable")
	}
}

func renderSum(e *Sum) string {
	var builder strings.Builder
	//
	for i, term := range e.terms {
		switch {
		case i == 0:
			builder.WriteString(bracket(term, precSum))
		case isNegativeTerm(term):
			builder.WriteString(" - ")
			builder.WriteString(bracket(Neg(term), precProduct))
		default:
			builder.WriteString(" + ")
			builder.WriteString(bracket(term, precProduct))
		}
	}
	//
	return builder.String()
}

func renderProduct(e *Product) (string, int) {
	var (
		coefficient = e.Coefficient()
		numerator   []string
		denominator []string
		negative    = coefficient.IsNegative()
		num         = coefficient.value.Num()
		den         = coefficient.value.Denom()
	)
	// Rational coefficient is split across numerator and denominator.
	if abs := new(big.Int).Abs(num); !isUnit(abs) {
		numerator = append(numerator, abs.String())
	}
	//
	if !isUnit(den) {
		denominator = append(denominator, den.String())
	}
	//
	for _, factor := range e.factors {
		if _, ok := IsConstant(factor); ok {
			continue
		} else if base, ok := reciprocalOf(factor); ok {
			denominator = append(denominator, bracket(base, precPower))
		} else {
			numerator = append(numerator, bracket(factor, precPower))
		}
	}
	//
	var text string
	//
	switch {
	case len(numerator) == 0:
		text = "1"
	default:
		text = strings.Join(numerator, "*")
	}
	//
	switch len(denominator) {
	case 0:
	case 1:
		text = text + "/" + denominator[0]
	default:
		text = text + "/(" + strings.Join(denominator, "*") + ")"
	}
	//
	if negative {
		return "-" + text, precNeg
	}
	//
	return text, precProduct
}

func renderPower(e *Power) string {
	var (
		base     = bracket(e.base, precAtom)
		exponent string
	)
	//
	switch x := e.exponent.(type) {
	case *Variable, *Function:
		exponent = x.String()
	case *Constant:
		if x.IsNamed() || (x.IsInteger() && !x.IsNegative()) {
			exponent = x.String()
		} else {
			exponent = "(" + x.String() + ")"
		}
	default:
		exponent = "(" + x.String() + ")"
	}
	//
	return base + "^" + exponent
}

// Render a given expression, adding brackets if its precedence is below that
// required.
func bracket(e Expr, required int) string {
	text, prec := renderWithPrecedence(e)
	//
	if prec < required {
		return "(" + text + ")"
	}
	//
	return text
}

// Check whether a term of a sum should be rendered as a subtraction.
func isNegativeTerm(term Expr) bool {
	switch t := term.(type) {
	case *Constant:
		return t.IsNegative()
	case *Product:
		return t.Coefficient().IsNegative()
	}
	//
	return false
}

// Check whether a factor is the reciprocal of some other expression (i.e. has
// a negative rational exponent) and, if so, return that expression.
func reciprocalOf(factor Expr) (Expr, bool) {
	if p, ok := factor.(*Power); ok {
		if n, ok := IsConstant(p.exponent); ok && n.IsNegative() {
			var neg big.Rat
			//
			return Pow(p.base, NewConstant(neg.Neg(n.value))), true
		}
	}
	//
	return nil, false
}

func isUnit(n *big.Int) bool {
	return n.IsInt64() && n.Int64() == 1
}
