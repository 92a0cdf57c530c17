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
package parser

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/source"
	"github.com/consensys/go-symbolic/pkg/util/source/sexp"
)

// ParseLisp parses an expression written as an S-expression, such as
// "(+ x (* 2 y))".  This is the form produced by Lisp().
func ParseLisp(input string) (expr.Expr, error) {
	srcfile := source.NewStringFile("lisp", input)
	//
	s, err := sexp.Parse(srcfile)
	if err != nil {
		return nil, err
	}
	//
	return translateLisp(s)
}

func translateLisp(s sexp.SExp) (expr.Expr, error) {
	if symbol := s.AsSymbol(); symbol != nil {
		return translateSymbol(symbol.Value), nil
	}
	//
	list := s.AsList()
	//
	if list.Len() == 0 {
		return nil, fmt.Errorf("empty list")
	} else if list.Head() == "" {
		return nil, fmt.Errorf("expected operator in %s", list.String(false))
	}
	//
	args := make([]expr.Expr, list.Len()-1)
	//
	for i := range args {
		var err error
		//
		if args[i], err = translateLisp(list.Get(i + 1)); err != nil {
			return nil, err
		}
	}
	//
	switch list.Head() {
	case "+":
		return expr.Add(args...), nil
	case "*":
		return expr.Multiply(args...), nil
	case "^":
		if len(args) != 2 {
			return nil, fmt.Errorf("power expects 2 arguments, found %d", len(args))
		}
		//
		return expr.Pow(args[0], args[1]), nil
	default:
		return expr.CallByName(list.Head(), args...)
	}
}

func translateSymbol(symbol string) expr.Expr {
	if value, ok := new(big.Rat).SetString(symbol); ok {
		return expr.NewConstant(value)
	}
	//
	switch strings.ToLower(symbol) {
	case expr.PI.Name():
		return expr.PI
	case expr.E.Name():
		return expr.E
	}
	//
	return expr.Var(symbol)
}
