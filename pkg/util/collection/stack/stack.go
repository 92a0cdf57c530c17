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
package stack

// Stack is a last-in first-out collection with a fixed capacity, determined at
// construction.  The backing array is allocated once and never grows, such that
// a stack can be reused across many evaluations without further allocation.
type Stack[T any] struct {
	items []T
	top   uint
}

// NewStack constructs a new (empty) stack with the given capacity.
func NewStack[T any](capacity uint) *Stack[T] {
	return &Stack[T]{make([]T, capacity), 0}
}

// Cap returns the maximum number of items this stack can hold.
func (p *Stack[T]) Cap() uint {
	return uint(len(p.items))
}

// Len returns the number of items currently on the stack.
func (p *Stack[T]) Len() uint {
	return p.top
}

// IsEmpty checks whether or not the stack is empty.
func (p *Stack[T]) IsEmpty() bool {
	return p.top == 0
}

// Push an item onto the stack.  This panics if the stack is already full.
func (p *Stack[T]) Push(item T) {
	if p.top == uint(len(p.items)) {
		panic("stack overflow")
	}
	//
	p.items[p.top] = item
	p.top++
}

// Peek returns the item at the given depth from the top of the stack, where a
// depth of 0 identifies the topmost item.
func (p *Stack[T]) Peek(depth uint) T {
	if depth >= p.top {
		panic("stack underflow")
	}
	//
	return p.items[p.top-depth-1]
}

// Pop removes and returns the topmost item.  This panics if the stack is empty.
func (p *Stack[T]) Pop() T {
	var empty T
	//
	if p.top == 0 {
		panic("stack underflow")
	}
	//
	p.top--
	item := p.items[p.top]
	p.items[p.top] = empty
	//
	return item
}

// Reset discards all items on the stack, retaining its capacity.
func (p *Stack[T]) Reset() {
	var empty T
	//
	for i := uint(0); i < p.top; i++ {
		p.items[i] = empty
	}
	//
	p.top = 0
}
