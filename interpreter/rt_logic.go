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

	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
	"devt.de/krotik/mucal/util"
)

// Constant Terminal Runtimes
// ==========================

/*
trueRuntime is the runtime for the constant truth formula.
*/
type trueRuntime struct {
	*baseRuntime
}

/*
trueRuntimeInst returns a new runtime component instance.
*/
func trueRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &trueRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component.
*/
func (rt *trueRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return rt.erp.Kripke.States.Clone(), err
}

/*
falseRuntime is the runtime for the constant falsehood formula.
*/
type falseRuntime struct {
	*baseRuntime
}

/*
falseRuntimeInst returns a new runtime component instance.
*/
func falseRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &falseRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component.
*/
func (rt *falseRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	return model.NewStateSet(), err
}

// Value Runtimes
// ==============

/*
recvarRuntime is the runtime for recursion variable occurrences.
*/
type recvarRuntime struct {
	*baseRuntime
}

/*
recvarRuntimeInst returns a new runtime component instance.
*/
func recvarRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &recvarRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component by looking up the current approximation
of the recursion variable in the evaluation environment.
*/
func (rt *recvarRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res, ok := vs.GetValue(rt.node.Token.Val)

	if !ok {
		return nil, rt.erp.NewRuntimeError(util.ErrVariableNotFound,
			fmt.Sprintf("%v", rt.node.Token.Val), rt.node)
	}

	return res, nil
}

/*
actionRuntime is the runtime for action labels used as state predicates. The
label function of the Kripke structure is not populated - an action formula
holds at no state.
*/
type actionRuntime struct {
	*baseRuntime
}

/*
actionRuntimeInst returns a new runtime component instance.
*/
func actionRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &actionRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component.
*/
func (rt *actionRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	rt.erp.Logger.LogDebug(fmt.Sprintf(
		"Action %v is used as a state predicate - state labels are not supported",
		rt.node.Token.Val))

	return model.NewStateSet(), err
}

// Boolean Operator Runtimes
// =========================

/*
notOpRuntime is the runtime for negation - the complement against all states
of the structure.
*/
type notOpRuntime struct {
	*baseRuntime
}

/*
notOpRuntimeInst returns a new runtime component instance.
*/
func notOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &notOpRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component.
*/
func (rt *notOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	res, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	return rt.erp.Kripke.States.Difference(res), nil
}

type andOpRuntime struct {
	*operatorRuntime
}

/*
andOpRuntimeInst returns a new runtime component instance.
*/
func andOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &andOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluates this runtime component.
*/
func (rt *andOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	var res *model.StateSet

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {

		res, err = rt.setOp(func(s1 *model.StateSet, s2 *model.StateSet) *model.StateSet {
			return s1.Intersect(s2)
		}, vs)
	}

	return res, err
}

type orOpRuntime struct {
	*operatorRuntime
}

/*
orOpRuntimeInst returns a new runtime component instance.
*/
func orOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &orOpRuntime{&operatorRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluates this runtime component.
*/
func (rt *orOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	var res *model.StateSet

	_, err := rt.baseRuntime.Eval(vs)

	if err == nil {

		res, err = rt.setOp(func(s1 *model.StateSet, s2 *model.StateSet) *model.StateSet {
			return s1.Union(s2)
		}, vs)
	}

	return res, err
}
