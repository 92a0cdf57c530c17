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
package vm

import (
	"errors"
	"fmt"
	"strings"

	"github.com/consensys/go-symbolic/pkg/expr"
	"github.com/consensys/go-symbolic/pkg/numeric"
	log "github.com/sirupsen/logrus"
)

// ErrUnsupported signals a function identity which can be neither executed
// directly nor expanded into an atomic form.
var ErrUnsupported = errors.New("unsupported operation")

// Opcode identifies the kind of an instruction.
type Opcode uint8

const (
	// LOAD_CONSTANT pushes a constant from the constant pool.
	LOAD_CONSTANT Opcode = iota
	// LOAD_VARIABLE pushes the current value of a variable cell.
	LOAD_VARIABLE
	// APPLY pops the operands of a primitive operation, and pushes its result.
	APPLY
)

// Instruction is a single bytecode instruction.  The operand is an index into
// the constant pool (for LOAD_CONSTANT), or a variable slot (for
// LOAD_VARIABLE).  The operation is only meaningful for APPLY.
type Instruction struct {
	Opcode  Opcode
	Op      numeric.Op
	Operand uint
}

// Delta returns the change in stack depth resulting from executing this
// instruction.
func (p Instruction) Delta() int {
	if p.Opcode == APPLY {
		return 1 - int(p.Op.Arity())
	}
	//
	return 1
}

// Bytecode is the compiled form of an expression, independent of any
// particular numeric backend.  Instructions execute left to right over a stack
// whose maximum depth is determined at compile time.
type Bytecode struct {
	code      []Instruction
	constants []*expr.Constant
	variables []string
	maxStack  uint
}

// Compile an expression into bytecode.  Nodes are emitted in post-order, such
// that the operands of each operation are on the stack when it executes.  Sums
// and products are emitted as a chain of binary operations.  Functions without
// a primitive operation are compiled via their atomic form.
func Compile(e expr.Expr) (*Bytecode, error) {
	var (
		compiler = compiler{
			constants: make(map[string]uint),
			slots:     make(map[string]uint),
		}
		variables = expr.Variables(e)
	)
	// Allocate slots in sorted order
	for i, v := range variables {
		compiler.slots[v] = uint(i)
	}
	//
	if err := compiler.compile(e); err != nil {
		return nil, err
	}
	//
	bytecode := &Bytecode{compiler.code, compiler.pool, variables, maxStackOf(compiler.code)}
	//
	log.Debugf("compiled %d instructions (%d constants, %d variables, stack %d)", len(bytecode.code),
		len(bytecode.constants), len(variables), bytecode.maxStack)
	//
	return bytecode, nil
}

// Instructions returns the instructions of this bytecode.
func (p *Bytecode) Instructions() []Instruction {
	return p.code
}

// Constants returns the constant pool of this bytecode.
func (p *Bytecode) Constants() []*expr.Constant {
	return p.constants
}

// Variables returns the variable names, indexed by slot.
func (p *Bytecode) Variables() []string {
	return p.variables
}

// MaxStack returns the maximum stack depth reached during execution.
func (p *Bytecode) MaxStack() uint {
	return p.maxStack
}

// Len returns the number of instructions.
func (p *Bytecode) Len() uint {
	return uint(len(p.code))
}

// Disassemble a single instruction.
func (p *Bytecode) Disassemble(insn Instruction) string {
	switch insn.Opcode {
	case LOAD_CONSTANT:
		return fmt.Sprintf("const %s", p.constants[insn.Operand])
	case LOAD_VARIABLE:
		return fmt.Sprintf("load %s", p.variables[insn.Operand])
	default:
		return insn.Op.String()
	}
}

// String returns a listing of the instructions, along with the stack depth
// after each has executed.
func (p *Bytecode) String() string {
	var (
		builder strings.Builder
		depth   int
	)
	//
	for i, insn := range p.code {
		depth += insn.Delta()
		builder.WriteString(fmt.Sprintf("%04d  [%d]  %s\n", i, depth, p.Disassemble(insn)))
	}
	//
	return builder.String()
}

// Simulate the stack depth across a sequence of instructions, returning the
// maximum reached.
func maxStackOf(code []Instruction) uint {
	var depth, deepest int
	//
	for _, insn := range code {
		depth += insn.Delta()
		//
		if depth > deepest {
			deepest = depth
		}
	}
	//
	return uint(deepest)
}

// ============================================================================
// Compiler
// ============================================================================

type compiler struct {
	code []Instruction
	pool []*expr.Constant
	// Maps constant strings to their pool index
	constants map[string]uint
	// Maps variable names to their slot
	slots map[string]uint
}

func (p *compiler) compile(e expr.Expr) error {
	switch e := e.(type) {
	case *expr.Constant:
		p.emit(LOAD_CONSTANT, 0, p.constantIndex(e))
	case *expr.Variable:
		p.emit(LOAD_VARIABLE, 0, p.slots[e.Key()])
	case *expr.Sum:
		return p.compileChain(e.Args(), numeric.ADD)
	case *expr.Product:
		return p.compileChain(e.Args(), numeric.MUL)
	case *expr.Power:
		return p.compileChain(e.Args(), numeric.POW)
	case *expr.Function:
		if op, ok := numeric.OpOf(e.Id()); ok {
			for _, arg := range e.Args() {
				if err := p.compile(arg); err != nil {
					return err
				}
			}
			//
			p.emit(APPLY, op, 0)
		} else if e.Identity().IsPrimitive() {
			return fmt.Errorf("%w: %s", ErrUnsupported, e.Identity().Name())
		} else {
			return p.compile(e.Atomic())
		}
	default:
		panic("unreachable")
	}
	//
	return nil
}

func (p *compiler) compileChain(args []expr.Expr, op numeric.Op) error {
	for i, arg := range args {
		if err := p.compile(arg); err != nil {
			return err
		}
		//
		if i > 0 {
			p.emit(APPLY, op, 0)
		}
	}
	//
	return nil
}

func (p *compiler) emit(opcode Opcode, op numeric.Op, operand uint) {
	p.code = append(p.code, Instruction{opcode, op, operand})
}

func (p *compiler) constantIndex(c *expr.Constant) uint {
	key := c.String()
	//
	if index, ok := p.constants[key]; ok {
		return index
	}
	//
	index := uint(len(p.pool))
	p.constants[key] = index
	p.pool = append(p.pool, c)
	//
	return index
}
