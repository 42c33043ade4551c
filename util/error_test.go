/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package util

import (
	"testing"

	"devt.de/krotik/mucal/parser"
)

func TestRuntimeError(t *testing.T) {

	ast, err := parser.Parse("test", "mu X.(Y||<a>X)")
	if err != nil {
		t.Error(err)
		return
	}

	// The recursion variable Y is the first child of the or expression

	recvar := ast.Children[1].Children[0]

	if recvar.Name != parser.NodeRECVAR || recvar.Token.Val != "Y" {
		t.Error("Unexpected node:", recvar)
		return
	}

	err = NewRuntimeError("test", ErrVariableNotFound, "Y", recvar)

	if err.Error() != "MUCAL error in test: Variable not found (Y) (Line:1 Pos:7)" {
		t.Error("Unexpected result:", err)
		return
	}

	if re := err.(*RuntimeError); re.Type != ErrVariableNotFound || re.Node != recvar {
		t.Error("Unexpected error fields:", re)
		return
	}

	// Errors on nodes without tokens have no position information

	err = NewRuntimeError("test", ErrInvalidConstruct, "strange",
		&parser.ASTNode{Name: "strange"})

	if err.Error() != "MUCAL error in test: Invalid construct (strange)" {
		t.Error("Unexpected result:", err)
		return
	}
}
