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
package sexp

import (
	"testing"

	"github.com/consensys/go-symbolic/pkg/util/source"
)

func Test_SExp_01(t *testing.T) {
	check_SExp(t, "x", "x")
}

func Test_SExp_02(t *testing.T) {
	check_SExp(t, "(+ x 1)", "(+ x 1)")
}

func Test_SExp_03(t *testing.T) {
	check_SExp(t, " ( *  (sin x)\n (^ y 2) ) ", "(* (sin x) (^ y 2))")
}

func Test_SExp_04(t *testing.T) {
	check_SExp(t, "; comment\n(f ())", "(f ())")
}

func Test_SExp_Invalid_01(t *testing.T) {
	check_SExpError(t, "(+ x 1")
}

func Test_SExp_Invalid_02(t *testing.T) {
	check_SExpError(t, ")")
}

func Test_SExp_Invalid_03(t *testing.T) {
	check_SExpError(t, "(x) y")
}

func Test_SExp_Invalid_04(t *testing.T) {
	check_SExpError(t, "  ")
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_SExp(t *testing.T, input string, expected string) {
	term, err := Parse(source.NewStringFile("test", input))
	//
	if err != nil {
		t.Errorf("unexpected error parsing \"%s\": %s", input, err.Message())
	} else if actual := term.String(true); actual != expected {
		t.Errorf("expected %s, got %s", expected, actual)
	}
}

func check_SExpError(t *testing.T, input string) {
	if _, err := Parse(source.NewStringFile("test", input)); err == nil {
		t.Errorf("expected error parsing \"%s\"", input)
	}
}
