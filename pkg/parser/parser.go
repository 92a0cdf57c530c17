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
package parser

import (
	"math/big"
	"slices"
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/rewrite"
	"github.com/consensys/go-symbolic/pkg/util/source"
	"github.com/consensys/go-symbolic/pkg/util/source/lex"
)

// END_OF signals "end of file"
const END_OF uint = 0

// WHITESPACE signals whitespace
const WHITESPACE uint = 1

// LBRACE signals "("
const LBRACE uint = 2

// RBRACE signals ")"
const RBRACE uint = 3

// COMMA signals ","
const COMMA uint = 4

// NUMBER signals a (decimal) number
const NUMBER uint = 5

// IDENTIFIER signals a variable, function or named constant
const IDENTIFIER uint = 6

// ADD signals "+"
const ADD uint = 7

// SUB signals "-"
const SUB uint = 8

// MUL signals "*"
const MUL uint = 9

// DIV signals "/"
const DIV uint = 10

// POW signals "^"
const POW uint = 11

// RIGHTARROW signals "->"
const RIGHTARROW uint = 12

// Rule for describing whitespace
var whitespace lex.Scanner[rune] = lex.Many(lex.Or(lex.Unit(' '), lex.Unit('\t'), lex.Unit('\n'), lex.Unit('\r')))

var digits lex.Scanner[rune] = lex.Many(lex.Within('0', '9'))

// Rule for describing numbers, such as "12" or "0.25"
var number lex.Scanner[rune] = lex.Optionally(digits, lex.Sequence(lex.Unit('.'), digits))

var identifierStart lex.Scanner[rune] = lex.Or(
	lex.Unit('_'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z'))

var identifierRest lex.Scanner[rune] = lex.Many(lex.Or(
	lex.Unit('_'),
	lex.Within('0', '9'),
	lex.Within('a', 'z'),
	lex.Within('A', 'Z')))

// Rule for describing identifiers
var identifier lex.Scanner[rune] = lex.Optionally(identifierStart, identifierRest)

// lexing rules
var rules []lex.LexRule[rune] = []lex.LexRule[rune]{
	lex.Rule(lex.Unit('('), LBRACE),
	lex.Rule(lex.Unit(')'), RBRACE),
	lex.Rule(lex.Unit(','), COMMA),
	lex.Rule(lex.Unit('+'), ADD),
	lex.Rule(lex.String("->"), RIGHTARROW),
	lex.Rule(lex.Unit('-'), SUB),
	lex.Rule(lex.Unit('*'), MUL),
	lex.Rule(lex.Unit('/'), DIV),
	lex.Rule(lex.Unit('^'), POW),
	lex.Rule(whitespace, WHITESPACE),
	lex.Rule(number, NUMBER),
	lex.Rule(identifier, IDENTIFIER),
	lex.Rule(lex.Eof[rune](), END_OF),
}

// Parse a given string into an expression using conventional infix notation.
// The operators are "+", "-", "*", "/" and "^" (which is right associative),
// along with unary negation.  Identifiers followed by arguments are calls to
// registered functions, whilst "pi" and "e" are named constants.  All other
// identifiers are variables.
func Parse(input string) (expr.Expr, []source.SyntaxError) {
	parser, errs := newParser(input)
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	e, errs := parser.parseExpr()
	// Check all parsed
	if len(errs) == 0 && !parser.follows(END_OF) {
		return nil, parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	//
	return e, errs
}

// ParseRule parses a rewrite rule of the form "pattern -> replacement".
func ParseRule(input string) (rewrite.Rule, []source.SyntaxError) {
	var empty rewrite.Rule
	//
	parser, errs := newParser(input)
	if len(errs) != 0 {
		return empty, errs
	}
	//
	pattern, errs := parser.parseExpr()
	if len(errs) != 0 {
		return empty, errs
	} else if !parser.match(RIGHTARROW) {
		return empty, parser.syntaxErrors(parser.lookahead(), "expected '->'")
	}
	//
	replacement, errs := parser.parseExpr()
	if len(errs) != 0 {
		return empty, errs
	} else if !parser.follows(END_OF) {
		return empty, parser.syntaxErrors(parser.lookahead(), "unexpected token")
	}
	//
	return rewrite.NewRule(pattern, replacement), nil
}

// Parser is a recursive descent parser over a stream of tokens.
type Parser struct {
	srcfile *source.File
	tokens  []lex.Token
	// Position within the tokens
	index int
}

func newParser(input string) (*Parser, []source.SyntaxError) {
	var (
		srcfile = source.NewStringFile("expr", input)
		lexer   = lex.NewLexer(srcfile.Contents(), rules...)
		// Lex as many tokens as possible
		tokens = lexer.Collect()
	)
	// Check whether anything was left (if so this is an error)
	if lexer.Remaining() != 0 {
		start, end := lexer.Index(), lexer.Index()+lexer.Remaining()
		err := srcfile.SyntaxError(source.NewSpan(int(start), int(end)), "unknown text encountered")
		//
		return nil, []source.SyntaxError{*err}
	}
	// Remove any whitespace
	tokens = slices.DeleteFunc(tokens, func(t lex.Token) bool { return t.Kind == WHITESPACE })
	//
	return &Parser{srcfile, tokens, 0}, nil
}

// expr := term (('+' | '-') term)*
func (p *Parser) parseExpr() (expr.Expr, []source.SyntaxError) {
	lhs, errs := p.parseTerm()
	terms := []expr.Expr{lhs}
	//
	for len(errs) == 0 && p.follows(ADD, SUB) {
		var (
			op  = p.expect(p.lookahead().Kind)
			rhs expr.Expr
		)
		//
		if rhs, errs = p.parseTerm(); len(errs) == 0 && op.Kind == SUB {
			rhs = expr.Neg(rhs)
		}
		//
		terms = append(terms, rhs)
	}
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return expr.Add(terms...), nil
}

// term := unary (('*' | '/') unary)*
func (p *Parser) parseTerm() (expr.Expr, []source.SyntaxError) {
	lhs, errs := p.parseUnary()
	factors := []expr.Expr{lhs}
	//
	for len(errs) == 0 && p.follows(MUL, DIV) {
		var (
			op  = p.expect(p.lookahead().Kind)
			rhs expr.Expr
		)
		//
		if rhs, errs = p.parseUnary(); len(errs) == 0 && op.Kind == DIV {
			rhs = expr.Pow(rhs, expr.Int(-1))
		}
		//
		factors = append(factors, rhs)
	}
	//
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return expr.Multiply(factors...), nil
}

// unary := '-' unary | power
func (p *Parser) parseUnary() (expr.Expr, []source.SyntaxError) {
	if p.match(SUB) {
		e, errs := p.parseUnary()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		return expr.Neg(e), nil
	}
	//
	return p.parsePower()
}

// power := atom ('^' unary)?
func (p *Parser) parsePower() (expr.Expr, []source.SyntaxError) {
	base, errs := p.parseAtom()
	//
	if len(errs) != 0 || !p.match(POW) {
		return base, errs
	}
	//
	exponent, errs := p.parseUnary()
	if len(errs) != 0 {
		return nil, errs
	}
	//
	return expr.Pow(base, exponent), nil
}

func (p *Parser) parseAtom() (expr.Expr, []source.SyntaxError) {
	token := p.lookahead()
	//
	switch token.Kind {
	case LBRACE:
		return p.parseBracketedExpr()
	case NUMBER:
		return p.parseNumber()
	case IDENTIFIER:
		return p.parseIdentifier()
	case END_OF:
		return nil, p.syntaxErrors(token, "unexpected end of input")
	}
	//
	return nil, p.syntaxErrors(token, "unknown expression")
}

func (p *Parser) parseBracketedExpr() (expr.Expr, []source.SyntaxError) {
	p.expect(LBRACE)
	//
	e, errs := p.parseExpr()
	//
	if len(errs) == 0 && !p.match(RBRACE) {
		return nil, p.syntaxErrors(p.lookahead(), "expected ')'")
	}
	//
	return e, errs
}

func (p *Parser) parseNumber() (expr.Expr, []source.SyntaxError) {
	token := p.expect(NUMBER)
	//
	value, ok := new(big.Rat).SetString(p.string(token))
	if !ok {
		return nil, p.syntaxErrors(token, "invalid number")
	}
	//
	return expr.NewConstant(value), nil
}

func (p *Parser) parseIdentifier() (expr.Expr, []source.SyntaxError) {
	var (
		token = p.expect(IDENTIFIER)
		name  = p.string(token)
	)
	//
	if p.follows(LBRACE) {
		return p.parseCall(token, name)
	}
	//
	switch strings.ToLower(name) {
	case expr.PI.Name():
		return expr.PI, nil
	case expr.E.Name():
		return expr.E, nil
	}
	//
	return expr.Var(name), nil
}

// call := IDENTIFIER '(' (expr (',' expr)*)? ')'
func (p *Parser) parseCall(token lex.Token, name string) (expr.Expr, []source.SyntaxError) {
	var args []expr.Expr
	//
	p.expect(LBRACE)
	//
	for !p.match(RBRACE) {
		if len(args) != 0 && !p.match(COMMA) {
			return nil, p.syntaxErrors(p.lookahead(), "expected ',' or ')'")
		}
		//
		arg, errs := p.parseExpr()
		if len(errs) != 0 {
			return nil, errs
		}
		//
		args = append(args, arg)
	}
	//
	fn, err := expr.CallByName(name, args...)
	if err != nil {
		return nil, p.syntaxErrors(token, err.Error())
	}
	//
	return fn, nil
}

// Get the text representing the given token as a string.
func (p *Parser) string(token lex.Token) string {
	return p.srcfile.Text(token.Span)
}

// Follows checks whether one of the given token kinds is next.
func (p *Parser) follows(options ...uint) bool {
	return slices.Contains(options, p.lookahead().Kind)
}

// Lookahead returns the next token.  This must exist because EOF is always
// appended at the end of the token stream.
func (p *Parser) lookahead() lex.Token {
	return p.tokens[p.index]
}

func (p *Parser) expect(kind uint) lex.Token {
	if p.lookahead().Kind != kind {
		panic("internal failure")
	}
	//
	token := p.tokens[p.index]
	p.index++
	//
	return token
}

func (p *Parser) match(kind uint) bool {
	if p.lookahead().Kind == kind {
		p.index++
		return true
	}
	//
	return false
}

func (p *Parser) syntaxErrors(token lex.Token, msg string) []source.SyntaxError {
	return []source.SyntaxError{*p.srcfile.SyntaxError(token.Span, msg)}
}
