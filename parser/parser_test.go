/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"testing"
)

func TestSimpleFormulaParsing(t *testing.T) {

	// Test constant terminals

	if err := testAST("true", `
true
`[1:]); err != nil {
		t.Error(err)
		return
	}

	if err := testAST("false", `
false
`[1:]); err != nil {
		t.Error(err)
		return
	}

	if err := testAST("X", `
recvar: X
`[1:]); err != nil {
		t.Error(err)
		return
	}

	if err := testAST("plate", `
action: plate
`[1:]); err != nil {
		t.Error(err)
		return
	}

	if err := testAST("(true&&false)", `
and
  true
  false
`[1:]); err != nil {
		t.Error(err)
		return
	}

	if err := testAST("(true||!false)", `
or
  true
  not
    false
`[1:]); err != nil {
		t.Error(err)
		return
	}
}

func TestModalFormulaParsing(t *testing.T) {

	if err := testAST("<a>true", `
diamond: a
  true
`[1:]); err != nil {
		t.Error(err)
		return
	}

	if err := testAST("[send_message](false||true)", `
box: send_message
  or
    false
    true
`[1:]); err != nil {
		t.Error(err)
		return
	}

	// Modalities bind tighter than boolean operators

	if err := testAST("(<a>true&&[b]false)", `
and
  diamond: a
    true
  box: b
    false
`[1:]); err != nil {
		t.Error(err)
		return
	}
}

func TestFixpointFormulaParsing(t *testing.T) {

	if err := testAST("mu X.(<a>X||<b>X)", `
mu
  recvar: X
  or
    diamond: a
      recvar: X
    diamond: b
      recvar: X
`[1:]); err != nil {
		t.Error(err)
		return
	}

	// The fixpoint keyword may be directly followed by its variable and
	// binders may be nested directly

	if err := testAST("nuY.muX.(<a>X||<a>Y)", `
nu
  recvar: Y
  mu
    recvar: X
    or
      diamond: a
        recvar: X
      diamond: a
        recvar: Y
`[1:]); err != nil {
		t.Error(err)
		return
	}
}

func TestBinderBodyBinding(t *testing.T) {

	// A binder body is a single formula - binary operators bind the binders
	// themselves unless the body is bracketed

	if err := testAST("(mu X.<a>X&&nu Y.[b]Y)", `
and
  mu
    recvar: X
    diamond: a
      recvar: X
  nu
    recvar: Y
    box: b
      recvar: Y
`[1:]); err != nil {
		t.Error(err)
		return
	}
}

func TestParserErrors(t *testing.T) {

	if _, err := Parse("test", "(true&&"); err == nil ||
		err.Error() != "Parse error in test: Unexpected end" {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := Parse("test", "mu true.X"); err == nil ||
		err.Error() != "Parse error in test: Unexpected term (true) (Line:1 Pos:4)" {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := Parse("test", "&&true"); err == nil ||
		err.Error() != `Parse error in test: Term cannot start an expression ("&&") (Line:1 Pos:1)` {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := Parse("test", "true false"); err == nil ||
		err.Error() != "Parse error in test: Unexpected end (extra token id:16 (<FALSE>)) (Line:1 Pos:6)" {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := Parse("test", "mu X.X9"); err == nil ||
		err.Error() != "Parse error in test: Lexical error (Cannot parse term 'X9') (Line:1 Pos:6)" {
		t.Error("Unexpected result:", err)
		return
	}
}

/*
testAST parses an input and compares the result against an expected AST string.
*/
func testAST(input string, expectedAST string) error {

	ast, err := Parse("test", input)
	if err != nil {
		return err
	}

	if res := ast.String(); res != expectedAST {
		return fmt.Errorf("Unexpected AST result:\n%v", res)
	}

	return nil
}

func TestASTNodeEquals(t *testing.T) {

	ast1, _ := Parse("test", "(true&&false)")
	ast2, _ := Parse("test", "(true&&false)")
	ast3, _ := Parse("test", "(true||false)")
	ast4, _ := Parse("test", "(true&&<a>false)")

	if ok, msg := ast1.Equals(ast2, false); !ok {
		t.Error("ASTs should be equal:", msg)
		return
	}

	if ok, _ := ast1.Equals(ast3, false); ok {
		t.Error("ASTs should not be equal")
		return
	}

	if ok, _ := ast1.Equals(ast4, false); ok {
		t.Error("ASTs should not be equal")
		return
	}
}
