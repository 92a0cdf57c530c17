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
	"hash/fnv"
)

// Hasher provides a generic definition of a hashing function suitable for use
// within the hashset.  This is similar to the Hasher interface provided in
// go-set, except that it additionally includes equality.  Implementations must
// ensure that items which are equal produce identical hashcodes.
type Hasher[T any] interface {
	// Check whether two items are equal (or not).
	Equals(T) bool
	// Return a suitable hashcode.
	Hash() uint64
}

const (
	offset64 uint64 = 14695981039346656037
	prime64  uint64 = 1099511628211
)

// String computes the FNV1a hash of a given string.
func String(s string) uint64 {
	hash := fnv.New64a()
	// Never fails
	_, _ = hash.Write([]byte(s))
	// Done
	return hash.Sum64()
}

// Ordered combines a seed with zero or more hashcodes such that the order in
// which they are given is significant.  That is, swapping two hashcodes will
// (typically) produce a different result.
func Ordered(seed uint64, hashes ...uint64) uint64 {
	// FNV1a over the hashcodes themselves
	hash := offset64 ^ seed
	//
	for _, h := range hashes {
		hash ^= h
		hash *= prime64
	}
	//
	return hash
}

// Unordered combines a seed with zero or more hashcodes such that the result is
// independent of the order in which they are given.  This is suitable for
// multiset-valued items, where two permutations of the same elements must
// produce the same hashcode.
func Unordered(seed uint64, hashes ...uint64) uint64 {
	hash := seed
	// Addition is commutative, but each element is first mixed so that simple
	// cancellations (e.g. h ^ h) do not collapse distinct multisets.
	for _, h := range hashes {
		hash += mix(h)
	}
	//
	return mix(hash)
}

// Mix the bits of a given hashcode (splitmix64 finaliser).
func mix(h uint64) uint64 {
	h ^= h >> 30
	h *= 0xbf58476d1ce4e5b9
	h ^= h >> 27
	h *= 0x94d049bb133111eb
	h ^= h >> 31
	//
	return h
}
