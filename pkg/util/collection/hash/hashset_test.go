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
	"math/rand"
	"sort"
	"testing"
)

func Test_HashSet_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashSet(t, items)
}

func Test_HashSet_02(t *testing.T) {
	items := randomUints(10, 32)
	check_HashSet(t, items)
}

func Test_HashSet_03(t *testing.T) {
	items := randomUints(100, 32)
	check_HashSet(t, items)
}

func Test_HashSet_04(t *testing.T) {
	items := randomUints(1000, 32)
	check_HashSet(t, items)
}

func Test_HashSet_05(t *testing.T) {
	items := randomUints(10000, 32)
	check_HashSet(t, items)
}

func Test_HashSet_06(t *testing.T) {
	set := NewSet[testKey](0)
	// Check insertion order retained
	for _, i := range []uint{5, 3, 5, 1, 3} {
		set.Insert(testKey{i})
	}
	//
	if s := set.String(); s != "{5,3,1}" {
		t.Errorf("unexpected set %s", s)
	}
}

func Test_HashMap_01(t *testing.T) {
	items := []uint{1, 2, 3, 4, 3, 2, 1}
	check_HashMap(t, items)
}

func Test_HashMap_02(t *testing.T) {
	items := randomUints(1000, 64)
	check_HashMap(t, items)
}

func Test_Unordered_01(t *testing.T) {
	a, b, c := String("a"), String("b"), String("c")
	//
	if Unordered(0, a, b, c) != Unordered(0, c, a, b) {
		t.Errorf("unordered hash depends on order")
	}

	if Unordered(0, a, a) == Unordered(0, b, b) {
		t.Errorf("unordered hash collapses repeated elements")
	}
}

func Test_Ordered_01(t *testing.T) {
	a, b := String("a"), String("b")
	//
	if Ordered(0, a, b) == Ordered(0, b, a) {
		t.Errorf("ordered hash ignores order")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_HashSet(t *testing.T, items []uint) {
	set := NewSet[testKey](0)
	dups := uint(0)
	// Insert items
	for _, item := range items {
		if set.Insert(testKey{item}) {
			// Duplicate item inserted
			dups++
		}
	}
	//
	count := countUnique(items)
	// Sanity check number of unique items
	if set.Size() != count {
		t.Errorf("expected %d unique items, got %d: %s", count, set.Size(), set.String())
	}
	// Sanity check duplicates calculation
	if count+dups != uint(len(items)) {
		t.Errorf("incorrect number of duplicates %d: %s", dups, set.String())
	}
	// Sanity check containership
	for _, ith := range items {
		if !set.Contains(testKey{ith}) {
			t.Errorf("missing item %d: %s", ith, set.String())
		}
	}
}

func check_HashMap(t *testing.T, items []uint) {
	m := NewMap[testKey, uint](0)
	// Insert items mapping each to its double
	for _, item := range items {
		m.Insert(testKey{item}, 2*item)
	}
	//
	if count := countUnique(items); m.Size() != count {
		t.Errorf("expected %d unique keys, got %d", count, m.Size())
	}
	//
	for _, ith := range items {
		if v, ok := m.Get(testKey{ith}); !ok || v != 2*ith {
			t.Errorf("incorrect value for key %d", ith)
		}
	}
	//
	if m.ContainsKey(testKey{1 << 40}) {
		t.Errorf("unexpected key")
	}
}

func countUnique(items []uint) uint {
	sorted := make([]uint, len(items))
	copy(sorted, items)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i] < sorted[j]
	})
	//
	count := uint(0)
	// Count unique items
	for i := 0; i < len(sorted); i++ {
		if i == 0 || sorted[i-1] != sorted[i] {
			count++
		}
	}
	//
	return count
}

func randomUints(n uint, bits uint) []uint {
	items := make([]uint, n)
	//
	for i := range items {
		items[i] = uint(rand.Uint64() >> (64 - bits))
	}
	//
	return items
}

// A simple wrapper around a uint.  This is deliberately broken to ensure a
// relatively limited spread of hash values.  This helps to ensure that we get
// some collisions.
type testKey struct {
	value uint
}

func (p testKey) Equals(other testKey) bool {
	return p.value == other.value
}

// Hash generates a 64-bit hashcode from the underlying value.
func (p testKey) Hash() uint64 {
	// This is a deliberate act to limit the quality of this hash function.
	return uint64(p.value % 16)
}

func (p testKey) String() string {
	return fmt.Sprintf("%d", p.value)
}
