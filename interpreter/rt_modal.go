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
	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
)

// Modal Operator Runtimes
// =======================

/*
diamondOpRuntime is the runtime for the diamond modality <a>. A state
satisfies <a>f if at least one of its a-successors satisfies f. This is
computed directly from the successor map - it is the De Morgan dual of the
box modality.
*/
type diamondOpRuntime struct {
	*baseRuntime
}

/*
diamondOpRuntimeInst returns a new runtime component instance.
*/
func diamondOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &diamondOpRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component.
*/
func (rt *diamondOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	states, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	k := rt.erp.Kripke
	label := rt.node.Token.Val

	res := model.NewStateSet()

	k.States.Each(func(s uint64) {
		witness := false

		k.Successors(s, label).Each(func(t uint64) {
			if states.Contains(t) {
				witness = true
			}
		})

		if witness {
			res.Insert(s)
		}
	})

	return res, nil
}

/*
boxOpRuntime is the runtime for the box modality [a]. A state satisfies [a]f
if all of its a-successors satisfy f - states without a-successors satisfy
[a]f vacuously.
*/
type boxOpRuntime struct {
	*baseRuntime
}

/*
boxOpRuntimeInst returns a new runtime component instance.
*/
func boxOpRuntimeInst(erp *RuntimeProvider, node *parser.ASTNode) parser.Runtime {
	return &boxOpRuntime{newBaseRuntime(erp, node)}
}

/*
Eval evaluates this runtime component.
*/
func (rt *boxOpRuntime) Eval(vs parser.Scope) (*model.StateSet, error) {
	_, err := rt.baseRuntime.Eval(vs)

	if err != nil {
		return nil, err
	}

	states, err := rt.node.Children[0].Runtime.Eval(vs)
	if err != nil {
		return nil, err
	}

	k := rt.erp.Kripke
	label := rt.node.Token.Val

	res := model.NewStateSet()

	k.States.Each(func(s uint64) {
		insert := true

		k.Successors(s, label).Each(func(t uint64) {
			if !states.Contains(t) {
				insert = false
			}
		})

		if insert {
			res.Insert(s)
		}
	})

	return res, nil
}
