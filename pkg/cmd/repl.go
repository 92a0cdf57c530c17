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
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/consensys/go-symbolic/pkg/calculus"
	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/numeric"
	"github.com/consensys/go-symbolic/pkg/parser"
	"github.com/consensys/go-symbolic/pkg/util/termio"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var replCmd = &cobra.Command{
	Use:   "repl [flags]",
	Short: "interactively simplify, rewrite and evaluate expressions.",
	Long: `Start an interactive session.  Each line is either an expression,
	which is simplified and becomes the current expression, a rule
	"pattern -> replacement", which is applied to the current expression,
	or a command (type :help for a list).`,
	Run: func(cmd *cobra.Command, args []string) {
		console, err := termio.NewConsole("> ")
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
		//
		repl := &Repl{console, GetLevel(cmd), nil, make(map[string]expr.Expr)}
		//
		err = repl.Run()
		// Restore terminal before reporting anything
		if rerr := console.Restore(); rerr != nil {
			log.Error(rerr)
		}
		//
		if err != nil {
			log.Error(err)
			os.Exit(1)
		}
	},
}

// Repl holds the state of an interactive session.
type Repl struct {
	console *termio.Console
	level   expr.Level
	// Most recent expression (if any)
	current expr.Expr
	// Definitions substituted into every expression entered
	definitions map[string]expr.Expr
}

// Run reads and processes lines until the input is exhausted, or the session
// is explicitly ended.
func (p *Repl) Run() error {
	for {
		line, err := p.console.ReadLine()
		//
		if termio.IsEndOfInput(err) {
			return nil
		} else if err != nil {
			return err
		}
		//
		line = strings.TrimSpace(line)
		//
		switch {
		case line == "":
			continue
		case line == ":quit" || line == ":q":
			return nil
		case strings.HasPrefix(line, ":"):
			err = p.command(line[1:])
		case strings.Contains(line, "->"):
			err = p.rewrite(line)
		default:
			err = p.simplify(line)
		}
		//
		if err != nil {
			p.printf("error: %v\n", err)
		}
	}
}

func (p *Repl) command(line string) error {
	name, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)
	//
	switch name {
	case "help":
		p.printf("expression           simplify expression and make it current\n")
		p.printf("pattern -> rule      print all rewrites of current expression\n")
		p.printf(":let name = expr     define name for use in later expressions\n")
		p.printf(":level name          set level (exactly, atomic, deep, deepest)\n")
		p.printf(":expand              expand current expression\n")
		p.printf(":diff var            differentiate current expression\n")
		p.printf(":eval x=1 y=2 ...    evaluate current expression\n")
		p.printf(":lisp                print current expression as S-expression\n")
		p.printf(":quit                end session\n")
		//
		return nil
	case "level":
		level, err := expr.ParseLevel(strings.ToLower(rest))
		if err != nil {
			return err
		}
		//
		p.level = level
		//
		return nil
	case "let":
		return p.define(rest)
	}
	//
	if p.current == nil {
		return fmt.Errorf("no current expression")
	}
	//
	switch name {
	case "expand":
		return p.update(expr.Expand(p.current))
	case "diff":
		e, err := calculus.Derivative(p.current, rest)
		if err != nil {
			return err
		}
		//
		return p.update(simplify(e, p.level))
	case "eval":
		return p.eval(strings.Fields(rest))
	case "lisp":
		p.printf("%s\n", p.current.Lisp().String(false))
		return nil
	}
	//
	return fmt.Errorf("unknown command :%s (type :help for a list)", name)
}

func (p *Repl) define(text string) error {
	name, body, ok := strings.Cut(text, "=")
	//
	if !ok || !isIdentifier(strings.TrimSpace(name)) {
		return fmt.Errorf("expected \":let name = expression\"")
	}
	//
	if expr.IsReserved(strings.TrimSpace(name)) {
		return fmt.Errorf("cannot redefine constant %s", strings.TrimSpace(name))
	}
	//
	e, err := p.parse(body)
	if err != nil {
		return err
	}
	//
	p.definitions[strings.ToLower(strings.TrimSpace(name))] = e
	//
	return nil
}

func (p *Repl) simplify(text string) error {
	e, err := p.parse(text)
	if err != nil {
		return err
	}
	//
	return p.update(simplify(e, p.level))
}

func (p *Repl) rewrite(text string) error {
	if p.current == nil {
		return fmt.Errorf("no current expression")
	}
	//
	rule, errs := parser.ParseRule(text)
	if len(errs) > 0 {
		return &errs[0]
	}
	//
	rewrites := rule.Apply(p.current).Collect()
	//
	for i, e := range rewrites {
		p.printf("[%d] %s\n", i, e)
	}
	//
	if len(rewrites) == 0 {
		p.printf("no rewrites\n")
	} else if len(rewrites) == 1 {
		p.current = rewrites[0]
	}
	//
	return nil
}

func (p *Repl) eval(bindings []string) error {
	var arith numeric.Float
	//
	env, err := readBindings[float64](arith, bindings)
	if err != nil {
		return err
	}
	//
	value, err := numeric.Eval[float64](p.current, arith, env)
	if err != nil {
		return err
	}
	//
	p.printf("%s\n", arith.Format(value))
	//
	return nil
}

func (p *Repl) update(e expr.Expr) error {
	p.current = e
	p.printf("%s\n", e)
	//
	return nil
}

// Parse an expression, and substitute in any definitions.
func (p *Repl) parse(text string) (expr.Expr, error) {
	e, errs := parser.Parse(strings.TrimSpace(text))
	if len(errs) > 0 {
		return nil, &errs[0]
	}
	//
	return expr.Substitute(e, p.definitions), nil
}

func (p *Repl) printf(format string, args ...any) {
	if err := p.console.Printf(format, args...); err != nil {
		log.Error(err)
	}
}

func isIdentifier(name string) bool {
	if name == "" {
		return false
	}
	//
	for i, c := range name {
		letter := c == '_' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
		//
		if !letter && (i == 0 || c < '0' || c > '9') {
			return false
		}
	}
	//
	return true
}

func init() {
	rootCmd.AddCommand(replCmd)
}
