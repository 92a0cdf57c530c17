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
package termio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Console provides a simple line-oriented interface for interactive sessions.
// When standard input is a terminal, this is placed into raw mode and line
// editing (including history) is provided by the underlying terminal.
// Otherwise, lines are read directly from standard input.
type Console struct {
	// File descriptor for input.
	fd int
	// Underlying terminal (when interactive)
	xterm *term.Terminal
	// Stores original state of terminal so this can be restored.
	state *term.State
	// Fallback line reader (when not interactive)
	scanner *bufio.Scanner
}

// NewConsole constructs a new console with a given prompt.
func NewConsole(prompt string) (*Console, error) {
	fd := int(os.Stdin.Fd())
	//
	if !term.IsTerminal(fd) {
		return &Console{fd, nil, nil, bufio.NewScanner(os.Stdin)}, nil
	}
	// Move terminal into raw mode
	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	// Construct "screen"
	screen := struct {
		io.Reader
		io.Writer
	}{os.Stdin, os.Stdout}
	//
	return &Console{fd, term.NewTerminal(screen, prompt), state, nil}, nil
}

// IsInteractive determines whether this console is attached to a terminal.
func (c *Console) IsInteractive() bool {
	return c.xterm != nil
}

// ReadLine reads the next line of input.  This returns io.EOF when the input
// is exhausted (e.g. Ctrl-D was pressed).
func (c *Console) ReadLine() (string, error) {
	if c.xterm != nil {
		return c.xterm.ReadLine()
	} else if c.scanner.Scan() {
		return c.scanner.Text(), nil
	} else if err := c.scanner.Err(); err != nil {
		return "", err
	}
	//
	return "", io.EOF
}

// Printf writes formatted output to the console.  In raw mode, line endings
// are translated by the underlying terminal.
func (c *Console) Printf(format string, args ...any) error {
	var (
		text = fmt.Sprintf(format, args...)
		err  error
	)
	//
	if c.xterm != nil {
		_, err = c.xterm.Write([]byte(text))
	} else {
		_, err = os.Stdout.WriteString(text)
	}
	//
	return err
}

// Restore the terminal to its original state.
func (c *Console) Restore() error {
	if c.state == nil {
		return nil
	}
	//
	return term.Restore(c.fd, c.state)
}

// IsEndOfInput determines whether a given error returned from ReadLine signals
// the end of input.
func IsEndOfInput(err error) bool {
	return errors.Is(err, io.EOF)
}
