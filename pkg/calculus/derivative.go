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
package calculus

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
)

// ErrNotDifferentiable signals a function with neither a derivative rule nor
// an atomic form.
var ErrNotDifferentiable = errors.New("no derivative")

// Derivative computes the derivative of an expression with respect to a given
// variable.  Functions are differentiated using their own derivative rule
// where one exists (applying the chain rule) and, otherwise, via their atomic
// form.  The result is simplified only by the canonical constructors.
func Derivative(e expr.Expr, variable string) (expr.Expr, error) {
	return derivative(e, strings.ToLower(variable))
}

func derivative(e expr.Expr, v string) (expr.Expr, error) {
	// Short circuit constant subtrees
	if !expr.DependsOn(e, v) {
		return expr.Int(0), nil
	}
	//
	switch e := e.(type) {
	case *expr.Variable:
		return expr.Int(1), nil
	case *expr.Sum:
		terms, err := derivatives(e.Args(), v)
		if err != nil {
			return nil, err
		}
		//
		return expr.Add(terms...), nil
	case *expr.Product:
		return productRule(e.Args(), v)
	case *expr.Power:
		return powerRule(e.Base(), e.Exponent(), v)
	case *expr.Function:
		rule := e.Identity().Derivative()
		//
		if rule == nil && e.Identity().IsPrimitive() {
			return nil, fmt.Errorf("%w: %s", ErrNotDifferentiable, e.Identity().Name())
		} else if rule == nil {
			return derivative(e.Atomic(), v)
		}
		//
		dargs, err := derivatives(e.Args(), v)
		if err != nil {
			return nil, err
		}
		//
		return rule(e.Args(), dargs), nil
	default:
		panic("unreachable")
	}
}

func derivatives(args []expr.Expr, v string) ([]expr.Expr, error) {
	var (
		dargs = make([]expr.Expr, len(args))
		err   error
	)
	//
	for i, arg := range args {
		if dargs[i], err = derivative(arg, v); err != nil {
			return nil, err
		}
	}
	//
	return dargs, nil
}

// (f*g)' = f'*g + f*g'
func productRule(factors []expr.Expr, v string) (expr.Expr, error) {
	var terms = make([]expr.Expr, len(factors))
	//
	for i, factor := range factors {
		dfactor, err := derivative(factor, v)
		if err != nil {
			return nil, err
		}
		//
		others := make([]expr.Expr, 0, len(factors))
		others = append(others, factors[:i]...)
		others = append(others, factors[i+1:]...)
		//
		terms[i] = expr.Multiply(append(others, dfactor)...)
	}
	//
	return expr.Add(terms...), nil
}

// (f^n)' = n*f^(n-1)*f' when n is constant, otherwise
// (f^g)' = f^g * (g'*ln(f) + g*f'/f).
func powerRule(base expr.Expr, exponent expr.Expr, v string) (expr.Expr, error) {
	dbase, err := derivative(base, v)
	if err != nil {
		return nil, err
	}
	//
	if !expr.DependsOn(exponent, v) {
		return expr.Multiply(exponent, expr.Pow(base, expr.Sub(exponent, expr.Int(1))), dbase), nil
	}
	//
	dexponent, err := derivative(exponent, v)
	if err != nil {
		return nil, err
	} else if base.EqualsAt(expr.E, expr.EXACTLY) {
		// (e^g)' = e^g * g'
		return expr.Multiply(expr.Pow(base, exponent), dexponent), nil
	}
	//
	inner := expr.Add(
		expr.Multiply(dexponent, expr.Call(expr.LN, base)),
		expr.Multiply(exponent, dbase, expr.Pow(base, expr.Int(-1))))
	//
	return expr.Multiply(expr.Pow(base, exponent), inner), nil
}
