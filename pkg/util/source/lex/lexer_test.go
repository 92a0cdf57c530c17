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
	"slices"
	"testing"
)

const (
	END_OF uint = iota
	WHITESPACE
	NUMBER
	IDENTIFIER
	PLUS
)

var digit = Within('0', '9')

var rules = []LexRule[rune]{
	Rule(Many(Or(Unit(' '), Unit('\t'))), WHITESPACE),
	Rule(Optionally(Many(digit), Sequence(Unit('.'), Many(digit))), NUMBER),
	Rule(Sequence(Or(Within('a', 'z'), Within('A', 'Z')), Many(Or(Within('a', 'z'), digit))), IDENTIFIER),
	Rule(Or(Within('a', 'z'), Within('A', 'Z')), IDENTIFIER),
	Rule(Unit('+'), PLUS),
	Rule(Eof[rune](), END_OF),
}

func Test_Lexer_01(t *testing.T) {
	check_Lexer(t, "", END_OF)
}

func Test_Lexer_02(t *testing.T) {
	check_Lexer(t, "123", NUMBER, END_OF)
}

func Test_Lexer_03(t *testing.T) {
	check_Lexer(t, "1.5 + x1", NUMBER, WHITESPACE, PLUS, WHITESPACE, IDENTIFIER, END_OF)
}

func Test_Lexer_04(t *testing.T) {
	check_Lexer(t, "x+y", IDENTIFIER, PLUS, IDENTIFIER, END_OF)
}

func Test_Lexer_05(t *testing.T) {
	// Lexing stops at the first unrecognised character
	lexer := NewLexer([]rune("x ? y"), rules...)
	tokens := lexer.Collect()
	//
	if len(tokens) != 2 || lexer.Remaining() != 3 {
		t.Errorf("unexpected lexing (%d tokens, %d remaining)", len(tokens), lexer.Remaining())
	}
}

func Test_Lexer_06(t *testing.T) {
	// Trailing dot is not part of a number
	lexer := NewLexer([]rune("12."), rules...)
	tokens := lexer.Collect()
	//
	if len(tokens) != 1 || tokens[0].Span.Length() != 2 {
		t.Errorf("unexpected lexing of trailing dot")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Lexer(t *testing.T, input string, expected ...uint) {
	var (
		lexer  = NewLexer([]rune(input), rules...)
		actual []uint
	)
	//
	for _, token := range lexer.Collect() {
		actual = append(actual, token.Kind)
	}
	//
	if !slices.Equal(actual, expected) {
		t.Errorf("expected %v, got %v", expected, actual)
	}
}
