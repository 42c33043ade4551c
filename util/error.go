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
	"errors"
	"fmt"

	"devt.de/krotik/mucal/parser"
)

/*
Evaluation related error types.
*/
var (
	ErrRuntimeError     = errors.New("Runtime error")
	ErrInvalidConstruct = errors.New("Invalid construct")

	// ErrVariableNotFound is returned when a recursion variable is evaluated
	// without a binding in the evaluation environment

	ErrVariableNotFound = errors.New("Variable not found")

	// ErrNotConverged indicates an implementation bug - a fixpoint iteration
	// exceeded its safety bound

	ErrNotConverged = errors.New("Fixpoint iteration did not converge")
)

/*
RuntimeError is an evaluation related error.
*/
type RuntimeError struct {
	Source string          // Name of the source which was given to the parser
	Type   error           // Error type (to be used for equal checks)
	Detail string          // Details of this error
	Node   *parser.ASTNode // AST Node where the error occurred
	Line   int             // Line of the error
	Pos    int             // Position of the error
}

/*
NewRuntimeError creates a new RuntimeError object.
*/
func NewRuntimeError(source string, t error, d string, node *parser.ASTNode) error {
	if node.Token != nil {
		return &RuntimeError{source, t, d, node, node.Token.Lline, node.Token.Lpos}
	}
	return &RuntimeError{source, t, d, node, 0, 0}
}

/*
Error returns a human-readable string representation of this error.
*/
func (re *RuntimeError) Error() string {
	ret := fmt.Sprintf("MUCAL error in %s: %v (%v)", re.Source, re.Type, re.Detail)

	if re.Line != 0 {

		// Add line if available

		ret = fmt.Sprintf("%s (Line:%d Pos:%d)", ret, re.Line, re.Pos)
	}

	return ret
}
