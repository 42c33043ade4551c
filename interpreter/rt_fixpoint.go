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
	"devt.de/krotik/mucal/analysis"
	"devt.de/krotik/mucal/config"
	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
	"devt.de/krotik/mucal/util"
)

// Fixpoint Runtime
// ================

/*
fixpointRuntime models the common runtime functionality of fixpoint binders.
Used for embedding.
*/
type fixpointRuntime struct {
	*baseRuntime
}

/*
variable returns the recursion variable which is bound by this binder.
*/
func (rt *fixpointRuntime) variable() string {
	errorutil.AssertTrue(len(rt.node.Children) == 2,
		fmt.Sprint("Fixpoint binder requires a variable and a body", rt.node))

	return rt.node.Children[0].Token.Val
}

/*
resetOpenBinders re-seeds the variables of all fixpoint binders of a given
polarity within this binder - including this binder itself - whose formulas
contain free recursion variables. Binders without free variables do not
depend on the surrounding iteration context and keep their approximation.
*/
func (rt *fixpointRuntime) resetOpenBinders(vs parser.Scope, binderName string,
	seed func() *model.StateSet) {

	binders := rt.erp.binders

	nodes := append([]*parser.ASTNode{rt.node}, binders.Children(rt.node)...)

	for _, node := range nodes {
		if node.Name == binderName && len(binders.FreeVariables(node)) > 0 {
			vs.SetValue(node.Children[0].Token.Val, seed())
		}
	}
}

/*
iterate performs the fixpoint iteration for this binder starting from the
current approximation of its variable until the approximation stabilises.
The iteration is guarded by a safety bound - a converging iteration needs at
most one round per state of the structure plus one round which confirms
stability.
*/
func (rt *fixpointRuntime) iterate(vs parser.Scope) (*model.StateSet, error) {
	variable := rt.variable()
	body := rt.node.Children[1].Runtime

	bound := config.Int(config.FixpointSafetyFactor) * (rt.erp.Kripke.States.Count() + 1)

	for i := 0; ; i++ {

		if i > bound {
			return nil, rt.erp.NewRuntimeError(util.ErrNotConverged,
				fmt.Sprintf("Binder for %v exceeded %v iterations", variable, bound),
				rt.node)
		}

		old, ok := vs.GetValue(variable)

		errorutil.AssertTrue(ok,
			fmt.Sprint("Fixpoint variable has no initial value", rt.node))

		next, err := body.Eval(vs)
		if err != nil {
			return nil, err
		}

		vs.SetValue(variable, next)

		if next.Equals(old) {
			util.LogConvergence(rt.erp.Logger, rt.node, i+1, next.Count())

			return next, nil
		}
	}
}

// Least Fixpoint Runtime
// ======================

/*
muOpRuntime is the runtime for least fixpoint binders.
*/
type muOpRuntime struct {
	*fixpointRuntime
}

/*
muOpRuntimeInst returns a new runtime component instance.
*/
func muOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &muOpRuntime{&fixpointRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluates this runtime component. The naive strategy restarts the
iteration from the empty set on every entry. The Emerson-Lei strategy keeps
the current approximation unless a surrounding greatest fixpoint binder has
iterated - in that case all dependent least fixpoint approximations within
this binder are invalid and are re-seeded.
*/
func (rt *muOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	variable := rt.variable()

	if rt.erp.Optimized {

		if rt.erp.binders.Binding(rt.node).Kind == analysis.BoundByNu {
			rt.resetOpenBinders(vs, parser.NodeMU, func() *model.StateSet {
				return model.NewStateSet()
			})
		}

		if _, ok := vs.GetValue(variable); !ok {
			vs.SetValue(variable, model.NewStateSet())
		}

	} else {

		vs.SetValue(variable, model.NewStateSet())
	}

	return rt.iterate(vs)
}

// Greatest Fixpoint Runtime
// =========================

/*
nuOpRuntime is the runtime for greatest fixpoint binders.
*/
type nuOpRuntime struct {
	*fixpointRuntime
}

/*
nuOpRuntimeInst returns a new runtime component instance.
*/
func nuOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &nuOpRuntime{&fixpointRuntime{newBaseRuntime(erp, node)}}
}

/*
Eval evaluates this runtime component. Symmetric to the least fixpoint case -
the naive strategy restarts from the full state set, the Emerson-Lei strategy
re-seeds dependent greatest fixpoint approximations when a surrounding least
fixpoint binder has iterated.
*/
func (rt *nuOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	variable := rt.variable()

	if rt.erp.Optimized {

		if rt.erp.binders.Binding(rt.node).Kind == analysis.BoundByMu {
			rt.resetOpenBinders(vs, parser.NodeNU, func() *model.StateSet {
				return rt.erp.Kripke.States.Clone()
			})
		}

		if _, ok := vs.GetValue(variable); !ok {
			vs.SetValue(variable, rt.erp.Kripke.States.Clone())
		}

	} else {

		vs.SetValue(variable, rt.erp.Kripke.States.Clone())
	}

	return rt.iterate(vs)
}
