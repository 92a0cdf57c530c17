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

// Variable represents a named variable.  Variable names are case-insensitive,
// though the name as originally given is retained for display.
type Variable struct {
	name string
	key  string
	hash uint64
}

// Var constructs a variable with a given name.  This panics if the name is
// reserved for a named constant (e.g. "pi"), since such a variable could not
// be written down and read back.
func Var(name string) *Variable {
	key := strings.ToLower(name)
	//
	if IsReserved(key) {
		panic(fmt.Sprintf("variable name %q is reserved", name))
	}
	//
	return &Variable{name, key, hash.Ordered(uint64(VARIABLE), hash.String(key))}
}

// Kind implementation for Expr interface.
func (p *Variable) Kind() Kind { return VARIABLE }

// Args implementation for Expr interface.
func (p *Variable) Args() []Expr { return nil }

// Hash implementation for Expr interface.
func (p *Variable) Hash() uint64 { return p.hash }

// Equals implementation for Expr interface.
func (p *Variable) Equals(other Expr) bool { return Equal(p, other, ATOMIC) }

// EqualsAt implementation for Expr interface.
func (p *Variable) EqualsAt(other Expr, level Level) bool { return Equal(p, other, level) }

// Atomic implementation for Expr interface.
func (p *Variable) Atomic() Expr { return p }

// Lisp implementation for Expr interface.
func (p *Variable) Lisp() sexp.SExp {
	return sexp.NewSymbol(p.name)
}

func (p *Variable) String() string {
	return p.name
}

func (p *Variable) sealed() {}

// Name returns the name of this variable, as originally given.
func (p *Variable) Name() string {
	return p.name
}

// Key returns the normalised (i.e. lower case) name of this variable, by which
// variables are compared.
func (p *Variable) Key() string {
	return p.key
}

// IsReserved checks whether a given name (of any case) denotes a named constant,
// and hence cannot be used as a variable name.
func IsReserved(name string) bool {
	key := strings.ToLower(name)
	//
	return key == PI.name || key == E.name
}
