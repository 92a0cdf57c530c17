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
	"fmt"

	"github.com/consensys/go-symbolic/pkg/numeric"
	"github.com/consensys/go-symbolic/pkg/util/collection/stack"
	"go.uber.org/multierr"
)

// UnboundVariableError signals a variable cell which has not been assigned a
// value prior to evaluation.
type UnboundVariableError = numeric.UnboundVariableError

// Cell holds the current value of a variable.  Cells are updated by the caller
// between evaluations.
type Cell[T any] struct {
	name  string
	value T
	bound bool
}

// Name of the variable held in this cell.
func (p *Cell[T]) Name() string {
	return p.name
}

// Get the current value of this cell.
func (p *Cell[T]) Get() T {
	return p.value
}

// Set the current value of this cell.
func (p *Cell[T]) Set(value T) {
	p.value, p.bound = value, true
}

// IsBound checks whether this cell has been assigned a value.
func (p *Cell[T]) IsBound() bool {
	return p.bound
}

// Program is bytecode instantiated for a specific numeric backend, with its
// constants converted and one cell allocated per variable.  A program can be
// evaluated many times without recompiling.  Evaluations of the same program
// from different goroutines must each supply their own stack, and must not
// update cells concurrently.
type Program[T any] struct {
	code      *Bytecode
	arith     numeric.Arithmetic[T]
	constants []T
	cells     []Cell[T]
}

// NewProgram instantiates bytecode for a given backend.  This fails if any
// constant cannot be represented in the backend (e.g. pi over the rationals).
func NewProgram[T any](code *Bytecode, arith numeric.Arithmetic[T]) (*Program[T], error) {
	var (
		constants = make([]T, len(code.constants))
		cells     = make([]Cell[T], len(code.variables))
		err       error
	)
	//
	for i, c := range code.constants {
		if c.IsNamed() {
			constants[i], err = arith.Named(c.Name())
		} else {
			constants[i], err = arith.FromRat(c.Value())
		}
		//
		if err != nil {
			return nil, err
		}
	}
	//
	for i, name := range code.variables {
		cells[i].name = name
	}
	//
	return &Program[T]{code, arith, constants, cells}, nil
}

// Bytecode returns the bytecode underlying this program.
func (p *Program[T]) Bytecode() *Bytecode {
	return p.code
}

// Cells returns the variable cells, indexed by slot.
func (p *Program[T]) Cells() []Cell[T] {
	return p.cells
}

// Cell returns the cell of a given (lower case) variable, if it exists.
func (p *Program[T]) Cell(name string) (*Cell[T], bool) {
	for i := range p.cells {
		if p.cells[i].name == name {
			return &p.cells[i], true
		}
	}
	//
	return nil, false
}

// Bind assigns values to every variable cell with a matching name.  Bindings
// for variables not used in this program are ignored.
func (p *Program[T]) Bind(env numeric.Environment[T]) {
	for i := range p.cells {
		if value, ok := env[p.cells[i].name]; ok {
			p.cells[i].Set(value)
		}
	}
}

// NewStack allocates a stack sufficient for evaluating this program.
func (p *Program[T]) NewStack() *stack.Stack[T] {
	return stack.NewStack[T](p.code.maxStack)
}

// Evaluate this program using the current cell values, allocating a fresh
// stack.
func (p *Program[T]) Evaluate() (T, error) {
	return p.EvaluateOn(p.NewStack())
}

// EvaluateOn evaluates this program using the current cell values and a given
// stack, whose capacity must be at least MaxStack().  Any unbound variables
// are reported together, before execution begins.
func (p *Program[T]) EvaluateOn(stack *stack.Stack[T]) (T, error) {
	var (
		empty T
		err   error
	)
	//
	for i := range p.cells {
		if !p.cells[i].bound {
			err = multierr.Append(err, &UnboundVariableError{Name: p.cells[i].name})
		}
	}
	//
	if err != nil {
		return empty, err
	} else if stack.Cap() < p.code.maxStack {
		return empty, fmt.Errorf("stack capacity %d below required %d", stack.Cap(), p.code.maxStack)
	}
	//
	stack.Reset()
	//
	return p.execute(stack)
}

func (p *Program[T]) execute(stack *stack.Stack[T]) (T, error) {
	var (
		empty    T
		operands [3]T
	)
	//
	for _, insn := range p.code.code {
		switch insn.Opcode {
		case LOAD_CONSTANT:
			stack.Push(p.constants[insn.Operand])
		case LOAD_VARIABLE:
			stack.Push(p.cells[insn.Operand].value)
		case APPLY:
			arity := insn.Op.Arity()
			// Operands are popped in reverse order
			for i := arity; i > 0; i-- {
				operands[i-1] = stack.Pop()
			}
			//
			result, err := p.arith.Apply(insn.Op, operands[:arity]...)
			if err != nil {
				return empty, err
			}
			//
			stack.Push(result)
		default:
			panic("unknown opcode")
		}
	}
	//
	return stack.Pop(), nil
}
