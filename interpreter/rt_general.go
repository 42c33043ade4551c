/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package interpreter

import (
	"fmt"

	"devt.de/krotik/common/errorutil"
	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
	"devt.de/krotik/mucal/util"
)

// Base Runtime
// ============

/*
baseRuntime models a base runtime component which provides the essential
fields and functions.
*/
type baseRuntime struct {
	erp       *RuntimeProvider // Runtime provider
	node      *parser.ASTNode  // AST node which this runtime component is servicing
	validated bool
}

/*
Validate this node and all its child nodes.
*/
func (rt *baseRuntime) Validate() error {
	rt.validated = true

	// Validate all children

	for _, child := range rt.node.Children {
		if err := child.Runtime.Validate(); err != nil {
			return err
		}
	}

	return nil
}

/*
Eval evaluates this runtime component.
*/
func (rt *baseRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {

	errorutil.AssertTrue(rt.validated,
		"Runtime component has not been validated - please call Validate() before Eval()")

	return nil, nil
}

/*
newBaseRuntime returns a new instance of baseRuntime.
*/
func newBaseRuntime(erp *RuntimeProvider, node *parser.ASTNode) *baseRuntime {
	return &baseRuntime{erp, node, false}
}

// Not Implemented Runtime
// =======================

/*
invalidRuntime is a special runtime for not implemented constructs.
*/
type invalidRuntime struct {
	*baseRuntime
}

/*
invalidRuntimeInst returns a new runtime component instance.
*/
func invalidRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &invalidRuntime{newBaseRuntime(erp, node)}
}

/*
Validate this node and all its child nodes.
*/
func (rt *invalidRuntime) Validate() error {
	err := rt.baseRuntime.Validate()
	if err == nil {
		err = rt.erp.NewRuntimeError(util.ErrInvalidConstruct,
			fmt.Sprintf("Unknown node: %s", rt.node.Name), rt.node)
	}
	return err
}

/*
Eval evaluates this runtime component.
*/
func (rt *invalidRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)
	if err == nil {
		err = rt.erp.NewRuntimeError(util.ErrInvalidConstruct,
			fmt.Sprintf("Unknown node: %s", rt.node.Name), rt.node)
	}
	return nil, err
}

// General Operator Runtime
// ========================

/*
operatorRuntime is a general operator operation. Used for embedding.
*/
type operatorRuntime struct {
	*baseRuntime
}

/*
setOp executes a set operation on the results of the two child formulas.
*/
func (rt *operatorRuntime) setOp(op func(*model.StateSet, *model.StateSet) *model.StateSet,
	vs parser.Scope) (*model.StateSet, error) {

	var res *model.StateSet

	errorutil.AssertTrue(len(rt.node.Children) == 2,
		fmt.Sprint("Operation requires 2 operands", rt.node))

	res1, err := rt.node.Children[0].Runtime.Eval(vs)
	if err == nil {
		var res2 *model.StateSet

		if res2, err = rt.node.Children[1].Runtime.Eval(vs); err == nil {
			res = op(res1, res2)
		}
	}

	return res, err
}
