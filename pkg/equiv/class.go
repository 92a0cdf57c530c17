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
package equiv

import (
	"context"
	"errors"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/numeric"
	"github.com/consensys/go-symbolic/pkg/util/collection/hash"
	log "github.com/sirupsen/logrus"
)

// UNBOUNDED indicates a search which continues until the frontier is exhausted.
const UNBOUNDED = -1

// Class represents the equivalence class of expressions connected by zero or
// more applications of a fixed set of paths.  Classes are immutable.
type Class struct {
	paths    []Path
	maxDepth int
	samples  uint
}

// Option configures a class.
type Option func(*Class)

// WithPaths sets the paths connecting members of the class.  The identity path
// is always included.
func WithPaths(paths ...Path) Option {
	return func(c *Class) {
		c.paths = append(c.paths, paths...)
	}
}

// WithMaxDepth bounds the number of rewrite steps explored, where UNBOUNDED
// (the default) searches until no new expressions are found.  Observe that an
// unbounded search need not terminate when paths can grow expressions without
// bound.
func WithMaxDepth(depth int) Option {
	return func(c *Class) {
		c.maxDepth = depth
	}
}

// WithFingerprint enables a quick rejection test, which evaluates both
// endpoints at a number of random points over a prime field.  When every path
// preserves value, endpoints which differ at any point cannot be connected.
// The test is skipped if any path does not preserve value, and endpoints which
// cannot be evaluated over a field are always searched.
func WithFingerprint(samples uint) Option {
	return func(c *Class) {
		c.samples = samples
	}
}

// NewClass constructs a class from the given options.
func NewClass(options ...Option) *Class {
	class := &Class{nil, UNBOUNDED, 0}
	//
	for _, option := range options {
		option(class)
	}
	//
	return class
}

// Paths returns the (non-identity) paths of this class.
func (p *Class) Paths() []Path {
	var paths []Path
	//
	for _, path := range p.paths {
		if !path.IsIdentity() {
			paths = append(paths, path)
		}
	}
	//
	return paths
}

// MaxDepth returns the search depth bound of this class.
func (p *Class) MaxDepth() int {
	return p.maxDepth
}

// Contains checks whether two expressions are members of this class, meaning
// end is reachable from start.
func (p *Class) Contains(start expr.Expr, end expr.Expr) bool {
	// Cannot fail without cancellation
	found, _ := p.ContainsContext(context.Background(), start, end)
	//
	return found
}

// ContainsContext checks whether two expressions are members of this class,
// checking for cancellation between each step of the search.  The search is
// breadth first, with visited expressions deduplicated under exact equality.
func (p *Class) ContainsContext(ctx context.Context, start expr.Expr, end expr.Expr) (bool, error) {
	var (
		visited  = hash.NewSet[expr.ExactKey](64)
		frontier = []expr.Expr{start}
		paths    = p.Paths()
		target   = expr.ExactKey{Expr: end}
	)
	//
	if start.EqualsAt(end, expr.EXACTLY) {
		return true, nil
	} else if p.fingerprinted() && p.distinguishable(start, end) {
		log.Debugf("endpoints %s and %s distinguished by fingerprint", start, end)
		return false, nil
	}
	//
	visited.Insert(expr.ExactKey{Expr: start})
	//
	for depth := 0; len(frontier) > 0 && (p.maxDepth < 0 || depth < p.maxDepth); depth++ {
		var next []expr.Expr
		//
		if err := ctx.Err(); err != nil {
			return false, err
		}
		//
		log.Debugf("equivalence search depth %d (frontier %d, visited %d)", depth, len(frontier), visited.Size())
		//
		for _, e := range frontier {
			for _, path := range paths {
				for it := path.Apply(e); it.HasNext(); {
					key := expr.ExactKey{Expr: it.Next()}
					//
					if key.Equals(target) {
						return true, nil
					} else if !visited.Insert(key) {
						next = append(next, key.Expr)
					}
				}
			}
		}
		//
		frontier = next
	}
	//
	log.Debugf("equivalence search exhausted (visited %d, max bucket %d)", visited.Size(), visited.MaxBucket())
	//
	return false, nil
}

// Check whether the fingerprint test is both enabled and sound for the paths of
// this class.
func (p *Class) fingerprinted() bool {
	if p.samples == 0 {
		return false
	}
	//
	for _, path := range p.paths {
		if !path.PreservesValue() {
			return false
		}
	}
	//
	return true
}

// Check whether two expressions evaluate differently at some random point.
func (p *Class) distinguishable(lhs expr.Expr, rhs expr.Expr) bool {
	var (
		arith numeric.Field
		names = append(expr.Variables(lhs), expr.Variables(rhs)...)
	)
	//
	for i := uint(0); i < p.samples; i++ {
		var env = make(numeric.Environment[numeric.FieldElement])
		//
		for _, name := range names {
			v, err := arith.Random()
			if err != nil {
				return false
			}
			//
			env[name] = v
		}
		//
		l, lerr := numeric.Eval(lhs, numeric.Arithmetic[numeric.FieldElement](arith), env)
		r, rerr := numeric.Eval(rhs, numeric.Arithmetic[numeric.FieldElement](arith), env)
		// Division by zero at one point says nothing about others
		if errors.Is(lerr, numeric.ErrDivisionByZero) || errors.Is(rerr, numeric.ErrDivisionByZero) {
			continue
		} else if lerr != nil || rerr != nil {
			return false
		} else if !arith.Equal(l, r) {
			return true
		}
	}
	//
	return false
}
