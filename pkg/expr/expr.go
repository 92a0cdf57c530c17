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

	"github.com/consensys/go-symbolic/pkg/util/source/sexp"
)

// Kind identifies the node kind of a given expression.
type Kind uint8

const (
	// CONSTANT identifies an exact rational, or a named real (e.g. pi).
	CONSTANT Kind = iota
	// VARIABLE identifies a (case-insensitive) named variable.
	VARIABLE
	// FUNCTION identifies the application of a registered function identity.
	FUNCTION
	// POWER identifies a base raised to an exponent.
	POWER
	// PRODUCT identifies the product of two or more factors.
	PRODUCT
	// SUM identifies the sum of two or more terms.
	SUM
)

func (k Kind) String() string {
	switch k {
	case CONSTANT:
		return "constant"
	case VARIABLE:
		return "variable"
	case FUNCTION:
		return "function"
	case POWER:
		return "power"
	case PRODUCT:
		return "product"
	case SUM:
		return "sum"
	}
	//
	return fmt.Sprintf("kind(%d)", k)
}

// Expr represents an immutable node in an expression tree.  Expressions can
// only be constructed through the factories of this package, such as Add,
// Multiply and Pow, which ensure every tree is kept in canonical form.  As
// such, an expression is never modified after construction and subtrees can be
// freely shared between trees.
type Expr interface {
	// Kind returns the node kind of this expression.
	Kind() Kind
	// Args returns the immediate children of this expression, which are empty
	// for leaves.  The returned slice must not be modified.
	Args() []Expr
	// Hash returns a hashcode which is consistent with EXACTLY equality.
	Hash() uint64
	// Equals checks whether this expression is equal to another under ATOMIC
	// equality.
	Equals(other Expr) bool
	// EqualsAt checks whether this expression is equal to another under a
	// given level of equality.
	EqualsAt(other Expr, level Level) bool
	// Atomic returns the expansion of this node in terms of primitive
	// operations.  This only affects functions with a defining template,
	// and is not applied recursively.
	Atomic() Expr
	// Lisp returns an S-Expression representation of this expression.
	Lisp() sexp.SExp
	// String returns an infix representation of this expression.
	String() string
	// Ensure expressions cannot be constructed outside this package.
	sealed()
}

// ExactKey wraps an expression so that it can be used as a key within hash
// sets and maps, where keys are compared using EXACTLY equality.
type ExactKey struct {
	Expr Expr
}

// Equals implementation for the Hasher interface.
func (p ExactKey) Equals(other ExactKey) bool {
	return exactly(p.Expr, other.Expr)
}

// Hash implementation for the Hasher interface.
func (p ExactKey) Hash() uint64 {
	return p.Expr.Hash()
}

func (p ExactKey) String() string {
	return p.Expr.String()
}

// Rebuild constructs an expression of the same shape as a given expression, but
// with different children.  This goes through the simplifying constructors
// and, hence, the result may have a different shape altogether.  The number of
// children must match for powers and functions.
func Rebuild(e Expr, args []Expr) Expr {
	switch e := e.(type) {
	case *Constant, *Variable:
		return e
	case *Sum:
		return Add(args...)
	case *Product:
		return Multiply(args...)
	case *Power:
		return Pow(args[0], args[1])
	case *Function:
		return Call(e.id, args...)
	default:
		panic("unreachable")
	}
}

// IsConstant checks whether a given expression is an exact rational constant
// (i.e. not a named real), and returns it if so.
func IsConstant(e Expr) (*Constant, bool) {
	if c, ok := e.(*Constant); ok && !c.IsNamed() {
		return c, true
	}
	//
	return nil, false
}

// Size returns the number of nodes in a given expression tree.
func Size(e Expr) uint {
	var n uint = 1
	//
	for _, arg := range e.Args() {
		n += Size(arg)
	}
	//
	return n
}

func lispOfTerms(op string, args []Expr) sexp.SExp {
	var list = make([]sexp.SExp, len(args)+1)
	//
	list[0] = sexp.NewSymbol(op)
	//
	for i, arg := range args {
		list[i+1] = arg.Lisp()
	}
	//
	return sexp.NewList(list)
}
