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

// Map defines a generic map implementation backed by a map of buckets.  As for
// Set, collisions are handled gracefully and keys are retained in the order
// they were first inserted.
type Map[K Hasher[K], V any] struct {
	// buckets maps hashcodes to the indices of matching keys.
	buckets map[uint64][]uint
	keys    []K
	values  []V
}

// NewMap creates a new HashMap with a given underlying capacity.
func NewMap[K Hasher[K], V any](size uint) *Map[K, V] {
	return &Map[K, V]{make(map[uint64][]uint, size), make([]K, 0, size), make([]V, 0, size)}
}

// Size returns the number of unique keys stored in this HashMap.
func (p *Map[K, V]) Size() uint {
	return uint(len(p.keys))
}

// Keys returns the keys of this map in the order they were first inserted.
// The returned slice must not be modified.
func (p *Map[K, V]) Keys() []K {
	return p.keys
}

// Values returns the values of this map, such that the ith value is associated
// with the ith key.  The returned slice must not be modified.
func (p *Map[K, V]) Values() []V {
	return p.values
}

// Insert a new key-value pair into this map, returning true if the key was
// already contained (in which case its value is replaced) and false otherwise.
func (p *Map[K, V]) Insert(key K, value V) bool {
	hash := key.Hash()
	//
	if i, ok := p.find(hash, key); ok {
		p.values[i] = value
		return true
	}
	// Append new entry
	p.buckets[hash] = append(p.buckets[hash], uint(len(p.keys)))
	p.keys = append(p.keys, key)
	p.values = append(p.values, value)
	// Key not present
	return false
}

// ContainsKey checks whether the given key is contained within this map, or not.
func (p *Map[K, V]) ContainsKey(key K) bool {
	_, ok := p.find(key.Hash(), key)
	return ok
}

// Get the value associated with a given key, or return false otherwise.
func (p *Map[K, V]) Get(key K) (V, bool) {
	var empty V
	//
	if i, ok := p.find(key.Hash(), key); ok {
		return p.values[i], true
	}
	//
	return empty, false
}

func (p *Map[K, V]) find(hash uint64, key K) (uint, bool) {
	for _, i := range p.buckets[hash] {
		if key.Equals(p.keys[i]) {
			return i, true
		}
	}
	//
	return 0, false
}
