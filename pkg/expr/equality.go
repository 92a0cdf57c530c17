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

import "fmt"

// Level determines the strictness with which two expressions are compared.
// Levels are different lenses rather than a single order, though each is an
// equivalence relation in its own right.
type Level uint8

const (
	// EXACTLY compares expressions node-by-node, where the terms of a sum (or
	// factors of a product) are compared as multisets.  Functions are compared
	// by identity and arguments, and are never expanded.
	EXACTLY Level = iota
	// ATOMIC compares expressions after replacing a top-level function with
	// its defining template.
	ATOMIC
	// DEEP compares expressions after replacing every function throughout the
	// tree with its defining template.
	DEEP
	// DEEPEST compares expressions after repeatedly applying deep expansion
	// and polynomial expansion until a fixed point is reached.
	DEEPEST
)

// MAX_DEEPEST_ITERATIONS bounds the number of rounds of expansion applied by
// the DEEPEST level before giving up on reaching a fixed point.
const MAX_DEEPEST_ITERATIONS = 64

func (l Level) String() string {
	switch l {
	case EXACTLY:
		return "exactly"
	case ATOMIC:
		return "atomic"
	case DEEP:
		return "deep"
	case DEEPEST:
		return "deepest"
	}
	//
	return fmt.Sprintf("level(%d)", l)
}

// ParseLevel converts a (lower case) level name into a level.
func ParseLevel(name string) (Level, error) {
	for _, l := range []Level{EXACTLY, ATOMIC, DEEP, DEEPEST} {
		if l.String() == name {
			return l, nil
		}
	}
	//
	return 0, fmt.Errorf("unknown equality level %q", name)
}

// Equal checks whether two expressions are equal under a given level.
func Equal(lhs Expr, rhs Expr, level Level) bool {
	switch level {
	case EXACTLY:
		return exactly(lhs, rhs)
	case ATOMIC:
		return exactly(lhs.Atomic(), rhs.Atomic())
	case DEEP:
		return exactly(Deep(lhs), Deep(rhs))
	case DEEPEST:
		return exactly(Deepest(lhs), Deepest(rhs))
	default:
		panic(fmt.Sprintf("unknown equality level %d", level))
	}
}

// Deep replaces every function throughout an expression which has a defining
// template with that template (with arguments substituted in), until no such
// function remains.  The result is rebuilt through the simplifying
// constructors.
func Deep(e Expr) Expr {
	var (
		args    = e.Args()
		nargs   = make([]Expr, len(args))
		changed = false
	)
	//
	for i, arg := range args {
		nargs[i] = Deep(arg)
		changed = changed || nargs[i] != arg
	}
	//
	if changed {
		e = Rebuild(e, nargs)
	}
	// Expand function (if applicable)
	if f, ok := e.(*Function); ok && f.id.Identity().template != nil {
		return Deep(f.Atomic())
	}
	//
	return e
}

// Deepest repeatedly applies deep expansion and polynomial expansion to an
// expression until a fixed point is reached (or an iteration limit is hit).
func Deepest(e Expr) Expr {
	for i := 0; i < MAX_DEEPEST_ITERATIONS; i++ {
		next := Expand(Deep(e))
		//
		if exactly(next, e) {
			return next
		}
		//
		e = next
	}
	//
	return e
}

// Check whether two expressions are exactly equal.
func exactly(lhs Expr, rhs Expr) bool {
	if lhs == rhs {
		return true
	} else if lhs.Hash() != rhs.Hash() || lhs.Kind() != rhs.Kind() {
		return false
	}
	//
	switch l := lhs.(type) {
	case *Constant:
		r := rhs.(*Constant)
		//
		if l.IsNamed() || r.IsNamed() {
			return l.name == r.name
		}
		//
		return l.value.Cmp(r.value) == 0
	case *Variable:
		return l.key == rhs.(*Variable).key
	case *Function:
		r := rhs.(*Function)
		return l.id == r.id && exactlyOrdered(l.args, r.args)
	case *Power:
		r := rhs.(*Power)
		return exactly(l.base, r.base) && exactly(l.exponent, r.exponent)
	case *Sum, *Product:
		return exactlyUnordered(lhs.Args(), rhs.Args())
	default:
		panic("unreachable")
	}
}

func exactlyOrdered(lhs []Expr, rhs []Expr) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	for i := range lhs {
		if !exactly(lhs[i], rhs[i]) {
			return false
		}
	}
	//
	return true
}

// Multiset comparison.
func exactlyUnordered(lhs []Expr, rhs []Expr) bool {
	if len(lhs) != len(rhs) {
		return false
	}
	//
	var used = make([]bool, len(rhs))
	//
outer:
	for _, l := range lhs {
		for j, r := range rhs {
			if !used[j] && exactly(l, r) {
				used[j] = true
				continue outer
			}
		}
		//
		return false
	}
	//
	return true
}
