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

func TestNextAndPeek(t *testing.T) {
	buf := NewLABuffer(Lex("test", "(true&&false)"), 3)

	if token, _ := buf.Peek(0); token.ID != TokenLPAREN {
		t.Error("Unexpected token:", token)
		return
	}

	if token, _ := buf.Peek(1); token.ID != TokenTRUE {
		t.Error("Unexpected token:", token)
		return
	}

	if token, more := buf.Next(); token.ID != TokenLPAREN || !more {
		t.Error("Unexpected token:", token)
		return
	}

	// Drain the buffer

	for token, more := buf.Next(); token.ID != TokenEOF; token, more = buf.Next() {
		if !more {
			t.Error("Unexpected end of buffer")
			return
		}
	}

	if token, more := buf.Next(); token.ID != TokenEOF || more {
		t.Error("Buffer must keep returning EOF:", token, more)
		return
	}
}

func TestBasicTokenLexing(t *testing.T) {

	// Test normal expression

	input := "mu X.(<a>X||nu Y.[b]Y)"

	expectedOutput := `[<MU> "X" "." "(" <a> "X" "||" <NU> "Y" "." [b] "Y" ")" EOF]`

	if res := fmt.Sprint(LexToList("test", input)); res != expectedOutput {
		t.Error("Unexpected lexer result:\n", res)
		return
	}

	// Fixpoint keywords may be directly followed by their variable

	input = "muX.!(false)"

	if res := LexToList("test", input); res[0].ID != TokenMU || res[1].ID != TokenRECVAR ||
		res[1].Val != "X" || res[2].ID != TokenDOT || res[3].ID != TokenNOT {
		t.Error("Unexpected lexer result:", res)
		return
	}
}

func TestModalOperatorLexing(t *testing.T) {

	input := "<send_message>true"

	res := LexToList("test", input)

	if res[0].ID != TokenDIAMOND || res[0].Val != "send_message" {
		t.Error("Unexpected lexer result:", res)
		return
	}

	input = "[plate_ready]false"

	res = LexToList("test", input)

	if res[0].ID != TokenBOX || res[0].Val != "plate_ready" {
		t.Error("Unexpected lexer result:", res)
		return
	}

	// Unclosed brackets are lexical errors

	res = LexToList("test", "<abc true")

	if res[0].ID != TokenError ||
		res[0].Val != "Unexpected end while reading modal operator (unclosed bracket)" {
		t.Error("Unexpected lexer result:", res)
		return
	}

	// Invalid action labels are lexical errors

	res = LexToList("test", "<aBc>true")

	if res[0].ID != TokenError ||
		res[0].Val != "Invalid action label 'aBc' in modal operator" {
		t.Error("Unexpected lexer result:", res)
		return
	}
}

func TestErrorTokenLexing(t *testing.T) {

	res := LexToList("test", "mu X.X1")

	if res[3].ID != TokenError || res[3].Val != "Cannot parse term 'X1'" {
		t.Error("Unexpected lexer result:", res)
		return
	}

	if res[3].PosString() != "Line 1, Pos 6" {
		t.Error("Unexpected position:", res[3].PosString())
		return
	}
}

func TestTokenStringRepresentations(t *testing.T) {

	res := LexToList("test", "true <a>")

	if res[0].String() != `<TRUE>` {
		t.Error("Unexpected token string:", res[0])
		return
	}

	if res[1].String() != `<a>` {
		t.Error("Unexpected token string:", res[1])
		return
	}

	if res[2].String() != "EOF" {
		t.Error("Unexpected token string:", res[2])
		return
	}

	if ok, msg := res[0].Equals(res[1], false); ok || msg == "" {
		t.Error("Tokens should differ:", msg)
		return
	}

	if ok, _ := res[0].Equals(res[0], true); !ok {
		t.Error("Token should equal itself")
		return
	}
}
