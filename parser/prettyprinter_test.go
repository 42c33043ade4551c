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

import "testing"

func TestPrettyPrinting(t *testing.T) {

	// Pretty printing a parsed formula yields the canonical concrete syntax

	for _, input := range []string{
		"true",
		"false",
		"X",
		"deadlock",
		"(true&&false)",
		"((true||false)&&!true)",
		"<a>true",
		"[send_message](false||<b>true)",
		"muX.(<a>X||<b>X)",
		"nuY.muX.((<a>X)||<a>Y)",
	} {
		ast, err := Parse("test", input)
		if err != nil {
			t.Error(err)
			return
		}

		res, err := PrettyPrint(ast)
		if err != nil {
			t.Error(err)
			return
		}

		// Reparsing the pretty printed output gives an equal AST

		ast2, err := Parse("test", res)
		if err != nil {
			t.Error("Could not reparse:", res, err)
			return
		}

		if ok, msg := ast.Equals(ast2, true); !ok {
			t.Error("Reparsed AST differs for:", input, msg)
			return
		}
	}

	// Canonical forms drop redundant brackets

	ast, _ := Parse("test", "nuY.muX.((<a>X)||<a>Y)")

	if res, _ := PrettyPrint(ast); res != "nuY.muX.(<a>X||<a>Y)" {
		t.Error("Unexpected pretty print result:", res)
		return
	}

	// Unknown nodes are reported

	ast.Name = "unknown"

	if _, err := PrettyPrint(ast); err == nil ||
		err.Error() != "Could not find template for unknown (tempkey: unknown_2)" {
		t.Error("Unexpected result:", err)
		return
	}
}
