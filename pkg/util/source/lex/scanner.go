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
package lex

import (
	"cmp"
)

// Scanner is a function which determines how many items at the start of a
// given sequence it accepts.  A return of zero indicates the scanner did not
// match.
type Scanner[T any] func(items []T) uint

// Or combines zero or more scanners such that the resulting scanner succeeds if
// any of them succeeds.  Scanners are tried in order, and the first success
// wins.
func Or[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		for _, scanner := range scanners {
			if n := scanner(items); n > 0 {
				return n
			}
		}
		// fail
		return 0
	}
}

// Unit accepts a given sequence of items, in the order given.
func Unit[T comparable](chars ...T) Scanner[T] {
	return func(items []T) uint {
		if len(items) < len(chars) {
			return 0
		}
		//
		for i, c := range chars {
			if items[i] != c {
				return 0
			}
		}
		//
		return uint(len(chars))
	}
}

// String accepts exactly the characters of a given string.
func String(s string) Scanner[rune] {
	return Unit([]rune(s)...)
}

// Within accepts any single item within a given (inclusive) range.
func Within[T cmp.Ordered](lowest T, highest T) Scanner[T] {
	return func(items []T) uint {
		if len(items) > 0 && lowest <= items[0] && items[0] <= highest {
			return 1
		}
		// fail
		return 0
	}
}

// Many matches one or more consecutive occurrences of a given scanner.
func Many[T any](scanner Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var index uint
		//
		for index < uint(len(items)) {
			n := scanner(items[index:])
			if n == 0 {
				break
			}
			//
			index += n
		}
		//
		return index
	}
}

// Sequence matches a series of scanners, one after another.  Each scanner
// starts where the previous one finished, and all must succeed.
func Sequence[T any](scanners ...Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		var index uint
		//
		for _, scanner := range scanners {
			n := scanner(items[index:])
			if n == 0 {
				return 0
			}
			//
			index += n
		}
		//
		return index
	}
}

// Optionally matches a scanner followed, if possible, by a suffix.  The
// resulting scanner succeeds whenever the first scanner does.
func Optionally[T any](scanner Scanner[T], suffix Scanner[T]) Scanner[T] {
	return func(items []T) uint {
		n := scanner(items)
		//
		if n == 0 {
			return 0
		} else if m := suffix(items[n:]); m > 0 {
			return n + m
		}
		//
		return n
	}
}

// Eof matches the end of the input stream.
func Eof[T any]() Scanner[T] {
	return func(items []T) uint {
		if len(items) == 0 {
			return 1
		}
		//
		return 0
	}
}
