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
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"
)

// Substitute replaces every variable in an expression which has a binding with
// its bound expression.  Bindings are keyed by (lower case) variable name, and
// are applied simultaneously.  The result is rebuilt through the simplifying
// constructors, whilst unaffected subtrees are shared with the original.
func Substitute(e Expr, bindings map[string]Expr) Expr {
	switch e := e.(type) {
	case *Constant:
		return e
	case *Variable:
		if b, ok := bindings[e.key]; ok {
			return b
		}
		//
		return e
	default:
		var (
			args    = e.Args()
			nargs   = make([]Expr, len(args))
			changed = false
		)
		//
		for i, arg := range args {
			nargs[i] = Substitute(arg, bindings)
			changed = changed || nargs[i] != arg
		}
		//
		if !changed {
			return e
		}
		//
		return Rebuild(e, nargs)
	}
}

// Bind constructs a binding of the given name, suitable for Substitute.
func Bind(name string, e Expr) map[string]Expr {
	return map[string]Expr{strings.ToLower(name): e}
}

// Variables returns the (lower case) names of all variables used within an
// expression, in sorted order.
func Variables(e Expr) []string {
	var vars = set.New[string](8)
	//
	collectVariables(e, vars)
	//
	names := vars.Slice()
	slices.Sort(names)
	//
	return names
}

// DependsOn checks whether an expression uses a given variable.
func DependsOn(e Expr, name string) bool {
	var vars = set.New[string](8)
	//
	collectVariables(e, vars)
	//
	return vars.Contains(strings.ToLower(name))
}

func collectVariables(e Expr, vars *set.Set[string]) {
	if v, ok := e.(*Variable); ok {
		vars.Insert(v.key)
		return
	}
	//
	for _, arg := range e.Args() {
		collectVariables(arg, vars)
	}
}
