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
	"cmp"
	"strings"
)

// Compare provides a total order over expressions which is consistent with
// EXACTLY equality.  That is, Compare(a,b)==0 if and only if a and b are
// exactly equal.  Expressions are ordered first by kind, then by content.
// This order determines the canonical arrangement of terms within sums and
// factors within products.
func Compare(lhs Expr, rhs Expr) int {
	if c := cmp.Compare(lhs.Kind(), rhs.Kind()); c != 0 {
		return c
	}
	//
	switch l := lhs.(type) {
	case *Constant:
		return compareConstants(l, rhs.(*Constant))
	case *Variable:
		return strings.Compare(l.key, rhs.(*Variable).key)
	case *Function:
		r := rhs.(*Function)
		//
		if c := cmp.Compare(l.id, r.id); c != 0 {
			return c
		}
		//
		return compareArgs(l.args, r.args)
	default:
		return compareArgs(lhs.Args(), rhs.Args())
	}
}

// Exact rationals come before named constants.
func compareConstants(lhs *Constant, rhs *Constant) int {
	switch {
	case lhs.IsNamed() && rhs.IsNamed():
		return strings.Compare(lhs.name, rhs.name)
	case lhs.IsNamed():
		return 1
	case rhs.IsNamed():
		return -1
	default:
		return lhs.value.Cmp(rhs.value)
	}
}

// Lexicographic comparison, where a shorter prefix comes first.
func compareArgs(lhs []Expr, rhs []Expr) int {
	for i := 0; i < len(lhs) && i < len(rhs); i++ {
		if c := Compare(lhs[i], rhs[i]); c != 0 {
			return c
		}
	}
	//
	return cmp.Compare(len(lhs), len(rhs))
}
