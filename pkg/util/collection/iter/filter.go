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

// filterIterator retains only those items of an underlying iterator which are
// accepted by a filter.  The filter is constructed afresh for every clone, such
// that stateful filters (e.g. those removing duplicates) are never shared.
type filterIterator[T any] struct {
	iter    Iterator[T]
	factory func() Predicate[T]
	filter  Predicate[T]
	// Lookahead item (when available)
	next    T
	hasNext bool
}

// NewFilterIterator constructs an iterator which retains only those items
// accepted by the predicate returned from the given factory.  The factory is
// called once per iterator (and once per clone).
func NewFilterIterator[T any](iter Iterator[T], factory func() Predicate[T]) Iterator[T] {
	var empty T
	return &filterIterator[T]{iter, factory, factory(), empty, false}
}

// HasNext checks whether or not there are any items remaining to visit.
func (p *filterIterator[T]) HasNext() bool {
	for !p.hasNext && p.iter.HasNext() {
		item := p.iter.Next()
		//
		if p.filter(item) {
			p.next, p.hasNext = item, true
		}
	}
	//
	return p.hasNext
}

// Next returns the next item, and advance the iterator.
func (p *filterIterator[T]) Next() T {
	var empty T
	// Ensure lookahead
	if !p.HasNext() {
		panic("iterator out-of-bounds")
	}
	//
	item := p.next
	p.next, p.hasNext = empty, false
	//
	return item
}

// Clone creates a copy of this iterator at the given cursor position.  Observe
// that the cloned filter starts from a fresh state, hence for stateful filters
// a clone is only equivalent to the original before iteration began.
func (p *filterIterator[T]) Clone() Iterator[T] {
	return &filterIterator[T]{p.iter.Clone(), p.factory, p.factory(), p.next, p.hasNext}
}

// Collect allocates a new array containing all items of this iterator.
func (p *filterIterator[T]) Collect() []T {
	return Collect[T](p)
}

// Count returns the number of items left in the iterator
func (p *filterIterator[T]) Count() uint {
	return Count[T](p.Clone())
}
