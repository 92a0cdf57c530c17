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
	"unicode"

	"github.com/consensys/go-symbolic/pkg/util/source"
)

// Parse a given source file into exactly one S-expression, or return an error
// if the file is malformed.
func Parse(srcfile *source.File) (SExp, *source.SyntaxError) {
	p := &parser{srcfile, srcfile.Contents(), 0}
	// Parse the input
	term, err := p.parse()
	//
	if err != nil {
		return nil, err
	} else if term == nil {
		return nil, p.error("unexpected end-of-file")
	}
	// Sanity check everything was parsed
	if p.skipWhiteSpace(); p.index != len(p.text) {
		return nil, p.error("unexpected remainder")
	}
	// Done
	return term, nil
}

// parser represents a parser in the process of parsing a given string into an
// S-expression.
type parser struct {
	srcfile *source.File
	text    []rune
	index   int
}

// Parse the next S-Expression, returning nil at the end-of-file.
func (p *parser) parse() (SExp, *source.SyntaxError) {
	p.skipWhiteSpace()
	//
	if p.index == len(p.text) {
		return nil, nil
	}
	//
	switch p.text[p.index] {
	case ')':
		return nil, p.error("unexpected end-of-list")
	case '(':
		var elements []SExp
		// Consume opening brace
		p.index++
		//
		for {
			p.skipWhiteSpace()
			//
			if p.index == len(p.text) {
				return nil, p.error("unexpected end-of-file")
			} else if p.text[p.index] == ')' {
				p.index++
				return &List{elements}, nil
			}
			//
			element, err := p.parse()
			if err != nil {
				return nil, err
			}
			//
			elements = append(elements, element)
		}
	default:
		start := p.index
		//
		for p.index < len(p.text) && !isDelimiter(p.text[p.index]) {
			p.index++
		}
		//
		return &Symbol{string(p.text[start:p.index])}, nil
	}
}

// skipWhiteSpace skips over any whitespace, including comments.
func (p *parser) skipWhiteSpace() {
	for p.index < len(p.text) {
		if c := p.text[p.index]; c == ';' {
			// Skip comment
			for p.index < len(p.text) && p.text[p.index] != '\n' {
				p.index++
			}
		} else if unicode.IsSpace(c) {
			p.index++
		} else {
			return
		}
	}
}

// Construct a parser error at the current position in the input stream.
func (p *parser) error(msg string) *source.SyntaxError {
	span := source.NewSpan(p.index, min(p.index+1, len(p.text)))
	return p.srcfile.SyntaxError(span, msg)
}
