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
package expr

import (
	"errors"
	"slices"
	"testing"
)

var (
	x = Var("x")
	y = Var("y")
	z = Var("z")
)

// ============================================================================
// Canonical construction
// ============================================================================

func Test_Canonical_01(t *testing.T) {
	check_Exactly(t, Add(), Int(0))
	check_Exactly(t, Multiply(), Int(1))
}

func Test_Canonical_02(t *testing.T) {
	for _, e := range sampleExprs() {
		check_Exactly(t, Add(e), e)
		check_Exactly(t, Multiply(e), e)
	}
}

func Test_Canonical_03(t *testing.T) {
	check_Exactly(t, Add(x, x), Multiply(Int(2), x))
	check_Exactly(t, Add(x, Neg(x)), Int(0))
	check_Exactly(t, Add(Multiply(Int(2), x), Multiply(Int(3), x)), Multiply(Int(5), x))
}

func Test_Canonical_04(t *testing.T) {
	check_Exactly(t, Add(Multiply(Int(2), x, y), Multiply(Int(3), y, x)), Multiply(Int(5), x, y))
	check_Exactly(t, Add(Int(1), x, Int(2)), Add(x, Int(3)))
	check_Exactly(t, Add(Add(x, y), z), Add(x, Add(y, z)))
}

func Test_Canonical_05(t *testing.T) {
	check_Exactly(t, Multiply(x, x), Pow(x, Int(2)))
	check_Exactly(t, Multiply(x, Pow(x, Int(-1))), Int(1))
	check_Exactly(t, Multiply(Sqrt(x), Sqrt(x)), x)
	check_Exactly(t, Multiply(Int(0), x, y), Int(0))
	check_Exactly(t, Multiply(Int(2), Rat(1, 2), x), x)
}

func Test_Canonical_06(t *testing.T) {
	xy := Sqrt(Multiply(x, y))
	check_Exactly(t, Multiply(xy, xy), Multiply(x, y))
}

func Test_Canonical_07(t *testing.T) {
	check_Exactly(t, Pow(Int(2), Int(10)), Int(1024))
	check_Exactly(t, Pow(Int(2), Int(-2)), Rat(1, 4))
	check_Exactly(t, Pow(Rat(-2, 3), Int(3)), Rat(-8, 27))
	check_Exactly(t, Pow(x, Int(0)), Int(1))
	check_Exactly(t, Pow(x, Int(1)), x)
	check_Exactly(t, Pow(Int(1), x), Int(1))
	check_Exactly(t, Pow(Int(0), Int(3)), Int(0))
}

func Test_Canonical_08(t *testing.T) {
	check_Exactly(t, Pow(Pow(x, Int(2)), Int(3)), Pow(x, Int(6)))
	check_Exactly(t, Pow(Multiply(Int(2), x), Int(2)), Multiply(Int(4), Pow(x, Int(2))))
	// Division by zero is retained symbolically
	if e := Pow(Int(0), Int(-1)); e.Kind() != POWER {
		t.Errorf("expected power, got %s", e.Kind())
	}
}

func Test_Canonical_09(t *testing.T) {
	// Named constants are never folded.
	check_Exactly(t, Add(PI, PI), Multiply(Int(2), PI))
	check_Exactly(t, Multiply(E, E), Pow(E, Int(2)))
	//
	if e := Add(PI, Int(1)); e.Kind() != SUM {
		t.Errorf("expected sum, got %s", e.Kind())
	}
}

func Test_Canonical_10(t *testing.T) {
	// Variables are case-insensitive
	check_Exactly(t, Add(Var("X"), x), Multiply(Int(2), x))
	check_Exactly(t, Var("Foo"), Var("fOO"))
}

// ============================================================================
// Equality
// ============================================================================

func Test_Equality_01(t *testing.T) {
	f := Call(DIV, x, x)
	//
	check_Equal(t, f, Int(1), EXACTLY, false)
	check_Equal(t, f, Int(1), ATOMIC, true)
	check_Equal(t, f, Int(1), DEEP, true)
	check_Equal(t, f, Int(1), DEEPEST, true)
	//
	if !f.Equals(Int(1)) {
		t.Errorf("expected default equality to be atomic")
	}
}

func Test_Equality_02(t *testing.T) {
	// Functions nested inside are only expanded from DEEP.
	lhs := Add(Call(COT, x), Int(1))
	rhs := Add(Div(Call(COS, x), Call(SIN, x)), Int(1))
	//
	check_Equal(t, lhs, rhs, EXACTLY, false)
	check_Equal(t, lhs, rhs, ATOMIC, false)
	check_Equal(t, lhs, rhs, DEEP, true)
}

func Test_Equality_03(t *testing.T) {
	lhs := Multiply(Add(x, Int(1)), Add(x, Int(-1)))
	rhs := Sub(Pow(x, Int(2)), Int(1))
	//
	check_Equal(t, lhs, rhs, EXACTLY, false)
	check_Equal(t, lhs, rhs, DEEP, false)
	check_Equal(t, lhs, rhs, DEEPEST, true)
}

func Test_Equality_04(t *testing.T) {
	// Functions compare by identity, even where they agree atomically.
	check_Equal(t, Call(SUB, x, y), Call(DIV, x, y), EXACTLY, false)
	check_Equal(t, Call(SUB, x, y), Sub(x, y), ATOMIC, true)
	check_Equal(t, Call(MIN, x, y), Call(MIN, y, x), EXACTLY, false)
}

func Test_Equality_05(t *testing.T) {
	check_Equal(t, PI, Int(3), EXACTLY, false)
	check_Equal(t, PI, PI, EXACTLY, true)
	check_Equal(t, Call(EXP, Int(1)), E, ATOMIC, true)
}

// ============================================================================
// Hashing & Ordering
// ============================================================================

func Test_Hash_01(t *testing.T) {
	var exprs = sampleExprs()
	//
	for _, e := range exprs {
		// Rebuilding from scratch gives same hash
		r := Rebuild(e, e.Args())
		//
		if e.Hash() != r.Hash() {
			t.Errorf("inconsistent hash for %s", e)
		}
	}
}

func Test_Hash_02(t *testing.T) {
	if Call(SIN, x).Hash() == Call(COS, x).Hash() {
		t.Errorf("identities of same arity should hash differently")
	}
	//
	if Pow(x, y).Hash() == Pow(y, x).Hash() {
		t.Errorf("power should hash in order")
	}
}

func Test_Compare_01(t *testing.T) {
	var exprs = sampleExprs()
	//
	for _, l := range exprs {
		for _, r := range exprs {
			c := Compare(l, r)
			//
			if (c == 0) != Equal(l, r, EXACTLY) {
				t.Errorf("inconsistent ordering for %s and %s", l, r)
			} else if c != -Compare(r, l) {
				t.Errorf("asymmetric ordering for %s and %s", l, r)
			}
		}
	}
}

// ============================================================================
// Functions
// ============================================================================

func Test_Function_01(t *testing.T) {
	var arity *ArityError
	//
	if _, err := NewFunction(SIN, x, y); !errors.As(err, &arity) {
		t.Errorf("expected arity error, got %v", err)
	} else if arity.Expected != 1 || arity.Actual != 2 {
		t.Errorf("unexpected arity error %s", arity)
	}
}

func Test_Function_02(t *testing.T) {
	var unknown *UnknownFunctionError
	//
	if _, err := CallByName("frobnicate", x); !errors.As(err, &unknown) {
		t.Errorf("expected unknown function error, got %v", err)
	}
	//
	if f, err := CallByName("SIN", x); err != nil || f.Id() != SIN {
		t.Errorf("expected sin, got %v", err)
	}
}

func Test_Function_03(t *testing.T) {
	check_Exactly(t, Call(SQ, Add(x, y)).Atomic(), Pow(Add(x, y), Int(2)))
	check_Exactly(t, Call(CLAMP, x, Int(0), Int(1)).Atomic(), Call(MAX, Int(0), Call(MIN, x, Int(1))))
	check_Exactly(t, Call(LOG, Int(2), x).Atomic(), Div(Call(LN, x), Call(LN, Int(2))))
	// Primitives expand to themselves
	check_Exactly(t, Call(SIN, x).Atomic(), Call(SIN, x))
}

func Test_Function_04(t *testing.T) {
	for _, id := range Functions() {
		identity := id.Identity()
		//
		if found, ok := LookupFunction(identity.Name()); !ok || found != id {
			t.Errorf("function %s not found", identity.Name())
		} else if identity.IsPrimitive() && identity.Derivative() == nil {
			t.Errorf("primitive function %s has no derivative", identity.Name())
		}
	}
}

// ============================================================================
// Expansion & Substitution
// ============================================================================

func Test_Expand_01(t *testing.T) {
	check_Exactly(t, Expand(Multiply(Add(x, Int(1)), Add(x, Int(-1)))), Sub(Pow(x, Int(2)), Int(1)))
}

func Test_Expand_02(t *testing.T) {
	expected := Add(Pow(x, Int(2)), Multiply(Int(2), x), Int(1))
	check_Exactly(t, Expand(Pow(Add(x, Int(1)), Int(2))), expected)
}

func Test_Expand_03(t *testing.T) {
	// Expansion happens beneath functions
	check_Exactly(t, Expand(Call(SIN, Multiply(x, Add(y, z)))), Call(SIN, Add(Multiply(x, y), Multiply(x, z))))
}

func Test_Substitute_01(t *testing.T) {
	e := Add(Pow(x, Int(2)), y)
	//
	check_Exactly(t, Substitute(e, Bind("X", Int(3))), Add(y, Int(9)))
	check_Exactly(t, Substitute(e, map[string]Expr{"x": y, "y": x}), Add(Pow(y, Int(2)), x))
}

func Test_Variables_01(t *testing.T) {
	vars := Variables(Add(Call(SIN, Var("B")), Multiply(Var("a"), Var("b"))))
	//
	if !slices.Equal(vars, []string{"a", "b"}) {
		t.Errorf("unexpected variables %v", vars)
	}
	//
	if !DependsOn(Call(SIN, x), "X") || DependsOn(Call(SIN, x), "y") {
		t.Errorf("unexpected dependency")
	}
}

// ============================================================================
// Rendering
// ============================================================================

func Test_String_01(t *testing.T) {
	check_String(t, Add(x, Int(1)), "x + 1")
	check_String(t, Sub(x, Multiply(Int(2), y)), "x - 2*y")
	check_String(t, Neg(x), "-x")
	check_String(t, Sub(Pow(x, Int(2)), Int(1)), "x^2 - 1")
}

func Test_String_02(t *testing.T) {
	check_String(t, Div(x, y), "x/y")
	check_String(t, Multiply(Rat(1, 2), x), "x/2")
	check_String(t, Div(x, Multiply(Int(2), y)), "x/(2*y)")
	check_String(t, Div(x, Add(y, Int(1))), "x/(y + 1)")
	check_String(t, Rat(3, 2), "3/2")
}

func Test_String_03(t *testing.T) {
	check_String(t, Multiply(Add(x, Int(1)), Add(x, Int(-1))), "(x - 1)*(x + 1)")
	check_String(t, Pow(Add(x, Int(1)), y), "(x + 1)^y")
	check_String(t, Pow(x, Rat(1, 2)), "x^(1/2)")
	check_String(t, Pow(Int(-2), x), "(-2)^x")
}

func Test_String_04(t *testing.T) {
	check_String(t, Call(SIN, x), "sin(x)")
	check_String(t, Call(MIN, x, Add(y, Int(1))), "min(x, y + 1)")
	check_String(t, Multiply(Int(2), PI), "2*pi")
	check_String(t, Pow(E, x), "e^x")
}

func Test_Lisp_01(t *testing.T) {
	check_Lisp(t, Add(x, Int(1)), "(+ x 1)")
	check_Lisp(t, Multiply(Int(2), Call(SIN, x)), "(* 2 (sin x))")
	check_Lisp(t, Pow(x, Rat(1, 2)), "(^ x 1/2)")
}

func Test_Var_01(t *testing.T) {
	// Names of named constants cannot be variables, since they would read
	// back as the constants themselves.
	for _, name := range []string{"pi", "e", "PI", "E"} {
		check_Reserved(t, name)
	}
	//
	if IsReserved("x") || IsReserved("exp") || IsReserved("pix") {
		t.Errorf("unexpected reserved name")
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func sampleExprs() []Expr {
	return []Expr{
		Int(0), Int(1), Int(-3), Rat(3, 4), PI, E,
		x, y, Var("X"),
		Add(x, y), Add(x, Int(1)), Add(x, Int(-1)), Add(Multiply(Int(2), x), y, Int(5)),
		Multiply(x, y), Multiply(Int(2), x), Multiply(Add(x, Int(1)), y),
		Pow(x, Int(2)), Pow(x, y), Pow(y, x), Sqrt(Add(x, y)),
		Call(SIN, x), Call(COS, x), Call(MIN, x, y), Call(MIN, y, x), Call(DIV, x, x),
		Call(SELECT, x, y, Int(1)),
	}
}

func check_Exactly(t *testing.T, actual Expr, expected Expr) {
	t.Helper()
	//
	if !Equal(actual, expected, EXACTLY) {
		t.Errorf("expected %s, got %s", expected, actual)
	} else if actual.Hash() != expected.Hash() {
		t.Errorf("inconsistent hash for %s", expected)
	}
}

func check_Equal(t *testing.T, lhs Expr, rhs Expr, level Level, expected bool) {
	t.Helper()
	//
	if actual := lhs.EqualsAt(rhs, level); actual != expected {
		t.Errorf("expected %s == %s at %s to be %t", lhs, rhs, level, expected)
	}
	// Check symmetric
	if actual := rhs.EqualsAt(lhs, level); actual != expected {
		t.Errorf("expected %s == %s at %s to be %t", rhs, lhs, level, expected)
	}
}

func check_String(t *testing.T, e Expr, expected string) {
	t.Helper()
	//
	if actual := e.String(); actual != expected {
		t.Errorf("expected \"%s\", got \"%s\"", expected, actual)
	}
}

func check_Lisp(t *testing.T, e Expr, expected string) {
	t.Helper()
	//
	if actual := e.Lisp().String(false); actual != expected {
		t.Errorf("expected \"%s\", got \"%s\"", expected, actual)
	}
}

func check_Reserved(t *testing.T, name string) {
	t.Helper()
	//
	defer func() {
		if recover() == nil {
			t.Errorf("expected Var(%q) to panic", name)
		}
	}()
	//
	if !IsReserved(name) {
		t.Errorf("expected %q to be reserved", name)
	}
	//
	Var(name)
}
