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
	"github.com/consensys/go-symbolic/pkg/util/source/sexp"
)

// ArityError is returned when a function is applied to the wrong number of
// arguments.
type ArityError struct {
	// Name of function being applied
	Name string
	// Number of parameters declared by function
	Expected int
	// Number of arguments given
	Actual int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("function %s expects %d argument(s), got %d", e.Name, e.Expected, e.Actual)
}

// UnknownFunctionError is returned when applying a function name which is not
// registered.
type UnknownFunctionError struct {
	Name string
}

func (e *UnknownFunctionError) Error() string {
	return fmt.Sprintf("unknown function %s", e.Name)
}

// Function represents the application of a registered function identity to a
// given (ordered) list of arguments.
type Function struct {
	id   FunctionId
	args []Expr
	hash uint64
}

// NewFunction applies a given function identity to some arguments, returning an
// ArityError when the number of arguments does not match the identity's
// declared parameters.
func NewFunction(id FunctionId, args ...Expr) (*Function, error) {
	identity := id.Identity()
	//
	if len(args) != len(identity.params) {
		return nil, &ArityError{identity.name, len(identity.params), len(args)}
	}
	//
	return newFunction(id, identity.seed, args), nil
}

// CallByName applies the function identity with the given name (which is
// case-insensitive) to some arguments.
func CallByName(name string, args ...Expr) (*Function, error) {
	if id, ok := LookupFunction(name); ok {
		return NewFunction(id, args...)
	}
	//
	return nil, &UnknownFunctionError{name}
}

// Call applies a given function identity to some arguments, panicking if the
// number of arguments is incorrect.  This is intended for use where the arity
// is known statically.
func Call(id FunctionId, args ...Expr) *Function {
	fn, err := NewFunction(id, args...)
	//
	if err != nil {
		panic(err.Error())
	}
	//
	return fn
}

func newFunction(id FunctionId, seed uint64, args []Expr) *Function {
	var hashes = make([]uint64, len(args))
	//
	for i, arg := range args {
		hashes[i] = arg.Hash()
	}
	//
	return &Function{id, args, hash.Ordered(uint64(FUNCTION)^seed, hashes...)}
}

// Kind implementation for Expr interface.
func (p *Function) Kind() Kind { return FUNCTION }

// Args implementation for Expr interface.
func (p *Function) Args() []Expr { return p.args }

// Hash implementation for Expr interface.
func (p *Function) Hash() uint64 { return p.hash }

// Equals implementation for Expr interface.
func (p *Function) Equals(other Expr) bool { return Equal(p, other, ATOMIC) }

// EqualsAt implementation for Expr interface.
func (p *Function) EqualsAt(other Expr, level Level) bool { return Equal(p, other, level) }

// Atomic implementation for Expr interface.  For a function identity with a
// defining template, this substitutes the arguments of this node into the
// template.  Otherwise, the node is itself returned.
func (p *Function) Atomic() Expr {
	var identity = p.id.Identity()
	//
	if identity.template == nil {
		return p
	}
	//
	bindings := make(map[string]Expr, len(p.args))
	//
	for i, param := range identity.params {
		bindings[param] = p.args[i]
	}
	//
	return Substitute(identity.template, bindings)
}

// Lisp implementation for Expr interface.
func (p *Function) Lisp() sexp.SExp {
	return lispOfTerms(p.id.Identity().name, p.args)
}

func (p *Function) String() string {
	var builder strings.Builder
	//
	builder.WriteString(p.id.Identity().name)
	builder.WriteString("(")
	//
	for i, arg := range p.args {
		if i != 0 {
			builder.WriteString(", ")
		}
		//
		builder.WriteString(arg.String())
	}
	//
	builder.WriteString(")")
	//
	return builder.String()
}

func (p *Function) sealed() {}

// Id returns the identity of the function being applied.
func (p *Function) Id() FunctionId {
	return p.id
}

// Identity returns the registry entry for the function being applied.
func (p *Function) Identity() *Identity {
	return p.id.Identity()
}
