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
package match

import (
	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/util/collection/iter"
)

// Match determines every way in which a given expression matches a given
// pattern.  A pattern is an ordinary expression, where each variable acts as a
// capture slot.  The rules are:
//
// A variable binds the whole expression.  A constant only matches an exactly
// equal constant.  A power matches a power, component by component.  A
// function matches an application of the same identity, argument by argument.
// Finally, a sum (resp. product) matches a sum (resp. product) with at least
// as many arguments, where the arguments of the expression are partitioned in
// every possible way across the arguments of the pattern.  Each group in a
// partition is rewrapped as a sum (resp. product) before being matched.
//
// The result is None if the expression does not match.  Observe that the
// number of partitions grows exponentially with the number of arguments.
func Match(e expr.Expr, pattern expr.Expr) ResultSet {
	switch p := pattern.(type) {
	case *expr.Variable:
		return Bind(p.Key(), e)
	case *expr.Constant:
		if e.EqualsAt(p, expr.EXACTLY) {
			return Unit()
		}
	case *expr.Power:
		if f, ok := e.(*expr.Power); ok {
			return matchOrdered(f.Args(), p.Args())
		}
	case *expr.Function:
		if f, ok := e.(*expr.Function); ok && f.Id() == p.Id() {
			return matchOrdered(f.Args(), p.Args())
		}
	case *expr.Sum:
		if s, ok := e.(*expr.Sum); ok {
			return matchUnordered(s.Args(), p.Args(), expr.Add)
		}
	case *expr.Product:
		if s, ok := e.(*expr.Product); ok {
			return matchUnordered(s.Args(), p.Args(), expr.Multiply)
		}
	}
	// Mismatch
	return None()
}

// Match arguments positionally.
func matchOrdered(args []expr.Expr, patterns []expr.Expr) ResultSet {
	var results = Unit()
	//
	for i := 0; i < len(patterns) && !results.IsNone(); i++ {
		results = results.Merge(Match(args[i], patterns[i]))
	}
	//
	return results
}

// Match arguments by partitioning them across the patterns in every possible
// way.
func matchUnordered(args []expr.Expr, patterns []expr.Expr, wrap func(...expr.Expr) expr.Expr) ResultSet {
	var (
		results     = None()
		n           = uint(len(args))
		k           = uint(len(patterns))
		assignments = iter.EnumerateSurjections(n, k)
	)
	//
	for assignments.HasNext() {
		var (
			assignment = assignments.Next()
			groups     = make([][]expr.Expr, k)
			ith        = Unit()
		)
		//
		for i, slot := range assignment {
			groups[slot] = append(groups[slot], args[i])
		}
		//
		for j := uint(0); j < k && !ith.IsNone(); j++ {
			ith = ith.Merge(Match(wrap(groups[j]...), patterns[j]))
		}
		//
		results = results.Union(ith)
	}
	//
	return results
}
