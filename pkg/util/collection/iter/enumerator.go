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
package iter

// EnumerateElements returns an enumerator which enumerates all arrays of size n
// over the given set of elements.  For example, if n==2 and elems contained two
// elements A and B, then this will return [[A,A],[B,A][A,B],[B,B]].
func EnumerateElements[E any](n uint, elems []E) Enumerator[[]E] {
	var counters []uint
	// An empty set of elements admits no arrays (unless n==0).
	if len(elems) > 0 || n == 0 {
		counters = make([]uint, n)
	}
	//
	return &enumerator[E]{counters, elems}
}

// EnumerateSurjections returns an enumerator over all assignments of n items to
// k buckets, such that every bucket receives at least one item.  Each
// assignment is an array of size n whose ith entry identifies the bucket of the
// ith item.  For example, n==3 and k==2 yields six assignments, starting with
// [1,0,0], [0,1,0] and [1,1,0].
func EnumerateSurjections(n uint, k uint) Enumerator[[]uint] {
	buckets := make([]uint, k)
	for i := range buckets {
		buckets[i] = uint(i)
	}
	//
	return &surjectionEnumerator{EnumerateElements(n, buckets), k, nil}
}

type enumerator[E any] struct {
	counters []uint
	elements []E
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *enumerator[E]) HasNext() bool {
	return p.counters != nil
}

// Next returns the next item, and advance the iterator.
func (p *enumerator[E]) Next() []E {
	rs := make([]E, len(p.counters))
	// Copy over elements
	for i := 0; i < len(rs); i++ {
		rs[i] = p.elements[p.counters[i]]
	}
	//
	carry := true
	// Increment counters
	for i := 0; carry && i < len(p.counters); i++ {
		ithp1 := p.counters[i] + 1
		// Check for overflow
		if ithp1 != uint(len(p.elements)) {
			p.counters[i] = ithp1
			carry = false
		} else {
			p.counters[i] = 0
		}
	}
	// Check whether finished
	if carry {
		// Yes, signal end of enumeration
		p.counters = nil
	}
	//
	return rs
}

type surjectionEnumerator struct {
	enumerator Enumerator[[]uint]
	buckets    uint
	// Lookahead
	next []uint
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *surjectionEnumerator) HasNext() bool {
	for p.next == nil && p.enumerator.HasNext() {
		if ith := p.enumerator.Next(); isSurjective(ith, p.buckets) {
			p.next = ith
		}
	}
	//
	return p.next != nil
}

// Next returns the next item, and advance the iterator.
func (p *surjectionEnumerator) Next() []uint {
	if !p.HasNext() {
		panic("enumerator out-of-bounds")
	}
	//
	next := p.next
	p.next = nil
	//
	return next
}

// Check every bucket in [0..k) is hit at least once.
func isSurjective(assignment []uint, k uint) bool {
	var hit = make([]bool, k)
	//
	count := uint(0)
	//
	for _, b := range assignment {
		if !hit[b] {
			hit[b] = true
			count++
		}
	}
	//
	return count == k
}
