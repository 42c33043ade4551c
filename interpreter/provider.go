/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

/*
Package interpreter contains the evaluators of the MUCAL model checker. A
runtime provider decorates a parsed mu-calculus formula with runtime
components which evaluate the formula against a Kripke structure.

Two evaluation strategies are available: the naive strategy re-initialises a
fixpoint variable to its lattice extreme on every entry of its binder, the
Emerson-Lei strategy keeps fixpoint approximations between iterations and only
re-initialises where a surrounding binder of opposite polarity invalidates
them.
*/
package interpreter

import (
	"devt.de/krotik/mucal/analysis"
	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
	"devt.de/krotik/mucal/scope"
	"devt.de/krotik/mucal/util"
)

/*
muRuntimeNew is used to instantiate MUCAL runtime components.
*/
type muRuntimeNew func(*RuntimeProvider, *parser.ASTNode) parser.Runtime

/*
providerMap contains the mapping of AST nodes to runtime components for
mu-calculus ASTs.
*/
var providerMap = map[string]muRuntimeNew{

	parser.NodeEOF: invalidRuntimeInst,

	// Constant terminals

	parser.NodeTRUE:  trueRuntimeInst,
	parser.NodeFALSE: falseRuntimeInst,

	// Value tokens

	parser.NodeRECVAR: recvarRuntimeInst,
	parser.NodeACTION: actionRuntimeInst,

	// Boolean operators

	parser.NodeAND: andOpRuntimeInst,
	parser.NodeOR:  orOpRuntimeInst,
	parser.NodeNOT: notOpRuntimeInst,

	// Modal operators

	parser.NodeDIAMOND: diamondOpRuntimeInst,
	parser.NodeBOX:     boxOpRuntimeInst,

	// Fixpoint binders

	parser.NodeMU: muOpRuntimeInst,
	parser.NodeNU: nuOpRuntimeInst,
}

/*
RuntimeProvider is the factory object producing runtime objects for
mu-calculus ASTs. A provider is bound to one Kripke structure and one
evaluation strategy.
*/
type RuntimeProvider struct {
	Name      string              // Name to identify the input
	Kripke    *model.Kripke       // Structure the formula is evaluated against
	Logger    util.Logger         // Logger object for log messages
	Optimized bool                // Flag if the Emerson-Lei strategy is used
	binders   *analysis.BinderMap // Binder analysis of the current evaluation
}

/*
NewNaiveRuntimeProvider returns a new instance of a runtime provider which
uses the naive evaluation strategy.
*/
func NewNaiveRuntimeProvider(name string, k *model.Kripke, logger util.Logger) *RuntimeProvider {
	return newRuntimeProvider(name, k, logger, false)
}

/*
NewEmersonLeiRuntimeProvider returns a new instance of a runtime provider
which uses the Emerson-Lei evaluation strategy.
*/
func NewEmersonLeiRuntimeProvider(name string, k *model.Kripke, logger util.Logger) *RuntimeProvider {
	return newRuntimeProvider(name, k, logger, true)
}

/*
newRuntimeProvider creates a new runtime provider instance.
*/
func newRuntimeProvider(name string, k *model.Kripke, logger util.Logger, optimized bool) *RuntimeProvider {

	if logger == nil {

		// By default we just have a memory logger

		logger = util.NewMemoryLogger(100)
	}

	return &RuntimeProvider{name, k, logger, optimized, nil}
}

/*
Runtime returns a runtime component for a given ASTNode.
*/
func (erp *RuntimeProvider) Runtime(node *parser.ASTNode) parser.Runtime {

	if instFunc, ok := providerMap[node.Name]; ok {
		return instFunc(erp, node)
	}

	return invalidRuntimeInst(erp, node)
}

/*
NewRuntimeError creates a new RuntimeError object.
*/
func (erp *RuntimeProvider) NewRuntimeError(t error, d string, node *parser.ASTNode) error {
	return util.NewRuntimeError(erp.Name, t, d, node)
}

/*
Evaluate evaluates a formula which was parsed with this provider and returns
the set of states at which the formula holds. The evaluation environment is
created fresh and discarded afterwards.
*/
func (erp *RuntimeProvider) Evaluate(ast *parser.ASTNode) (*model.StateSet, error) {

	if err := ast.Runtime.Validate(); err != nil {
		return nil, err
	}

	vs := scope.NewScope(scope.EnvironmentScope)

	if erp.Optimized {

		// Compute the binder analysis once per evaluation and seed every
		// bound variable with its lattice extreme

		erp.binders = analysis.NewBinderMap(ast)

		erp.seedVariables(ast, vs)
	}

	return ast.Runtime.Eval(vs)
}

/*
seedVariables initialises every bound recursion variable of a formula - least
fixpoint variables with the empty set, greatest fixpoint variables with the
full state set.
*/
func (erp *RuntimeProvider) seedVariables(ast *parser.ASTNode, vs parser.Scope) {

	nodes := append([]*parser.ASTNode{ast}, erp.binders.Children(ast)...)

	for _, node := range nodes {
		if node.Name == parser.NodeMU {
			vs.SetValue(node.Children[0].Token.Val, model.NewStateSet())
		} else if node.Name == parser.NodeNU {
			vs.SetValue(node.Children[0].Token.Val, erp.Kripke.States.Clone())
		}
	}
}

// Convenience functions
// =====================

/*
EvaluateNaive parses a formula and evaluates it against a given Kripke
structure using the naive strategy.
*/
func EvaluateNaive(name string, formula string, k *model.Kripke, logger util.Logger) (*model.StateSet, error) {
	return evaluate(NewNaiveRuntimeProvider(name, k, logger), formula)
}

/*
EvaluateEmersonLei parses a formula and evaluates it against a given Kripke
structure using the Emerson-Lei strategy.
*/
func EvaluateEmersonLei(name string, formula string, k *model.Kripke, logger util.Logger) (*model.StateSet, error) {
	return evaluate(NewEmersonLeiRuntimeProvider(name, k, logger), formula)
}

/*
evaluate parses a formula with a given provider and evaluates it.
*/
func evaluate(erp *RuntimeProvider, formula string) (*model.StateSet, error) {

	ast, err := parser.ParseWithRuntime(erp.Name, formula, erp)
	if err != nil {
		return nil, err
	}

	return erp.Evaluate(ast)
}
