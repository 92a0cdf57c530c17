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
package hash

import (
	"fmt"
	"strings"
)

// A reasonably simple hashset implementation which permits collisions.  Observe
// that, for example, hashicorp's go-set is *not* a suitable replacement here,
// since that does not handle collisions.  Specifically, it assumes the hash
// function always uniquely identifies the data in question.  Expression hashes
// are not unique, hence this is not an assumption which can be made here.

// Set defines a generic set implementation backed by a map.  This is a true
// hashtable in that collisions are handle gracefully using buckets, rather than
// simply discarding them.  Additionally, the set remembers the order in which
// items were first inserted, such that iteration is deterministic.
type Set[T Hasher[T]] struct {
	// buckets maps hashcodes to *buckets* of items.
	buckets map[uint64]bucket[T]
	// items in order of insertion
	items []T
}

// NewSet creates a new HashSet with a given underlying capacity.
func NewSet[T Hasher[T]](size uint) *Set[T] {
	buckets := make(map[uint64]bucket[T], size)
	return &Set[T]{buckets, make([]T, 0, size)}
}

// Size returns the number of unique items stored in this HashSet.
func (p *Set[T]) Size() uint {
	return uint(len(p.items))
}

// MaxBucket returns the size of the largest bucket.
func (p *Set[T]) MaxBucket() uint {
	m := uint(0)
	for _, b := range p.buckets {
		m = max(m, uint(len(b.items)))
	}

	return m
}

// Insert a new item into this set, returning true if it was already contained
// and false otherwise.
func (p *Set[T]) Insert(item T) bool {
	// Compute item's hashcode
	hash := item.Hash()
	// Lookup existing bucket
	b := p.buckets[hash]
	// Check whether present already
	if b.contains(item) {
		return true
	}
	// Insert new item
	b.items = append(b.items, item)
	p.buckets[hash] = b
	p.items = append(p.items, item)
	// Done
	return false
}

// Contains checks whether the given item is contained within this set, or not.
func (p *Set[T]) Contains(item T) bool {
	if b, ok := p.buckets[item.Hash()]; ok {
		return b.contains(item)
	}

	return false
}

func (p *Set[T]) String() string {
	var r strings.Builder
	// Write opening brace
	r.WriteString("{")
	// Iterate all items
	for i, item := range p.items {
		if i != 0 {
			r.WriteString(",")
		}

		r.WriteString(fmt.Sprintf("%s", any(item)))
	}
	// Write closing brace
	r.WriteString("}")
	// Done
	return r.String()
}

// ============================================================================
// Bucket
// ============================================================================

type bucket[T Hasher[T]] struct {
	items []T
}

// Check whether this bucket contains a given item, or not.
func (b *bucket[T]) contains(item T) bool {
	for _, i := range b.items {
		if item.Equals(i) {
			return true
		}
	}

	return false
}
