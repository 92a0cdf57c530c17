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
	"fmt"
	"strings"

	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
)

// FunctionId is an opaque handle identifying a registered function identity.
type FunctionId uint16

// Primitive function identities, which have no defining template.
const (
	SIN FunctionId = iota
	COS
	TAN
	ASIN
	ACOS
	ATAN
	SINH
	COSH
	TANH
	LN
	ABS
	SIGN
	MIN
	MAX
	SELECT
	// Derived function identities, which are defined in terms of others.
	DIV
	SUB
	NEG
	SQRT
	EXP
	LOG
	COT
	SEC
	CSC
	COTH
	SECH
	CSCH
	SQ
	CLAMP
)

// Derivative computes the derivative of a function application, given its
// arguments along with the derivative of each argument (with respect to the
// variable of differentiation).
type Derivative func(args []Expr, dargs []Expr) Expr

// Identity is an immutable registry entry describing a named function.
type Identity struct {
	name string
	// Parameter names, in declaration order.
	params []string
	// Distinguishes identities of the same arity when hashing.
	seed uint64
	// Defining expression written over the parameters (nil for primitives).
	template Expr
	// Symbolic differentiation rule (optional).
	derivative Derivative
}

// Name returns the display name of this identity.
func (p *Identity) Name() string { return p.name }

// Arity returns the number of parameters declared by this identity.
func (p *Identity) Arity() uint { return uint(len(p.params)) }

// Params returns the parameter names declared by this identity.
func (p *Identity) Params() []string { return p.params }

// Seed returns the hash seed of this identity.
func (p *Identity) Seed() uint64 { return p.seed }

// Template returns the defining expression of this identity, or nil if it is
// primitive.
func (p *Identity) Template() Expr { return p.template }

// IsPrimitive checks whether this identity has no defining template.
func (p *Identity) IsPrimitive() bool { return p.template == nil }

// Derivative returns the differentiation rule of this identity, or nil if it
// has none.
func (p *Identity) Derivative() Derivative { return p.derivative }

// Identity returns the registry entry for a given function identity.
func (id FunctionId) Identity() *Identity {
	return identities[id]
}

func (id FunctionId) String() string {
	if int(id) < len(identities) {
		return identities[id].name
	}
	//
	return fmt.Sprintf("function(%d)", id)
}

// LookupFunction finds the function identity with a given (case-insensitive)
// name.
func LookupFunction(name string) (FunctionId, bool) {
	id, ok := identityIndex[strings.ToLower(name)]
	return id, ok
}

// Functions returns all registered function identities, in registration order.
func Functions() []FunctionId {
	ids := make([]FunctionId, len(identities))
	//
	for i := range ids {
		ids[i] = FunctionId(i)
	}
	//
	return ids
}

// ============================================================================
// Registry
// ============================================================================

// NOTE: populated once (by init) and read-only thereafter.
var (
	identities    []*Identity
	identityIndex = make(map[string]FunctionId)
)

func register(id FunctionId, name string, params []string, template Expr, derivative Derivative) {
	if int(id) != len(identities) {
		panic(fmt.Sprintf("function %s registered out of order", name))
	}
	//
	identities = append(identities, &Identity{name, params, hash.String(name), template, derivative})
	identityIndex[name] = id
}

//nolint:funlen
func init() {
	var (
		x, y  = Var("x"), Var("y")
		unary = []string{"x"}
	)
	// Trigonometric
	register(SIN, "sin", unary, nil, func(a, d []Expr) Expr {
		return Multiply(Call(COS, a[0]), d[0])
	})
	register(COS, "cos", unary, nil, func(a, d []Expr) Expr {
		return Neg(Multiply(Call(SIN, a[0]), d[0]))
	})
	register(TAN, "tan", unary, nil, func(a, d []Expr) Expr {
		return Multiply(d[0], Pow(Call(COS, a[0]), Int(-2)))
	})
	register(ASIN, "asin", unary, nil, func(a, d []Expr) Expr {
		return Multiply(d[0], Pow(Sub(Int(1), Pow(a[0], Int(2))), Rat(-1, 2)))
	})
	register(ACOS, "acos", unary, nil, func(a, d []Expr) Expr {
		return Neg(Multiply(d[0], Pow(Sub(Int(1), Pow(a[0], Int(2))), Rat(-1, 2))))
	})
	register(ATAN, "atan", unary, nil, func(a, d []Expr) Expr {
		return Div(d[0], Add(Int(1), Pow(a[0], Int(2))))
	})
	// Hyperbolic
	register(SINH, "sinh", unary, nil, func(a, d []Expr) Expr {
		return Multiply(Call(COSH, a[0]), d[0])
	})
	register(COSH, "cosh", unary, nil, func(a, d []Expr) Expr {
		return Multiply(Call(SINH, a[0]), d[0])
	})
	register(TANH, "tanh", unary, nil, func(a, d []Expr) Expr {
		return Multiply(d[0], Pow(Call(COSH, a[0]), Int(-2)))
	})
	// Miscellaneous
	register(LN, "ln", unary, nil, func(a, d []Expr) Expr {
		return Div(d[0], a[0])
	})
	register(ABS, "abs", unary, nil, func(a, d []Expr) Expr {
		return Multiply(Call(SIGN, a[0]), d[0])
	})
	register(SIGN, "sign", unary, nil, func(a, d []Expr) Expr {
		return Int(0)
	})
	register(MIN, "min", []string{"x", "y"}, nil, func(a, d []Expr) Expr {
		// Select derivative of x when x < y
		return Call(SELECT, Call(MAX, Call(SIGN, Sub(a[1], a[0])), Int(0)), d[0], d[1])
	})
	register(MAX, "max", []string{"x", "y"}, nil, func(a, d []Expr) Expr {
		// Select derivative of x when x > y
		return Call(SELECT, Call(MAX, Call(SIGN, Sub(a[0], a[1])), Int(0)), d[0], d[1])
	})
	register(SELECT, "select", []string{"c", "x", "y"}, nil, func(a, d []Expr) Expr {
		return Call(SELECT, a[0], d[1], d[2])
	})
	// Derived
	register(DIV, "div", []string{"x", "y"}, Div(x, y), nil)
	register(SUB, "sub", []string{"x", "y"}, Sub(x, y), nil)
	register(NEG, "neg", unary, Neg(x), nil)
	register(SQRT, "sqrt", unary, Sqrt(x), func(a, d []Expr) Expr {
		return Div(d[0], Multiply(Int(2), Call(SQRT, a[0])))
	})
	register(EXP, "exp", unary, Pow(E, x), func(a, d []Expr) Expr {
		return Multiply(Call(EXP, a[0]), d[0])
	})
	register(LOG, "log", []string{"b", "x"}, Div(Call(LN, x), Call(LN, Var("b"))), nil)
	register(COT, "cot", unary, Div(Call(COS, x), Call(SIN, x)), nil)
	register(SEC, "sec", unary, Pow(Call(COS, x), Int(-1)), nil)
	register(CSC, "csc", unary, Pow(Call(SIN, x), Int(-1)), nil)
	register(COTH, "coth", unary, Div(Call(COSH, x), Call(SINH, x)), nil)
	register(SECH, "sech", unary, Pow(Call(COSH, x), Int(-1)), nil)
	register(CSCH, "csch", unary, Pow(Call(SINH, x), Int(-1)), nil)
	register(SQ, "sq", unary, Pow(x, Int(2)), nil)
	register(CLAMP, "clamp", []string{"x", "lo", "hi"}, Call(MAX, Var("lo"), Call(MIN, x, Var("hi"))), nil)
}
