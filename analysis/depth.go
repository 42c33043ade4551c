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
Package analysis contains structural analyses over mu-calculus formulas: the
depth measures which report formula complexity and the binder analysis which
drives the Emerson-Lei evaluator.
*/
package analysis

import "devt.de/krotik/mucal/parser"

/*
Children returns all strict sub-nodes of a formula node at any depth. The
bound variable children of fixpoint binders are included - they are formula
nodes like any other.
*/
func Children(node *parser.ASTNode) []*parser.ASTNode {
	var res []*parser.ASTNode

	for _, child := range node.Children {
		res = append(res, child)
		res = append(res, Children(child)...)
	}

	return res
}

/*
NestingDepth returns the number of fixpoint binders on the longest root-to-leaf
path of a formula.
*/
func NestingDepth(node *parser.ASTNode) int {

	switch node.Name {

	case parser.NodeNOT, parser.NodeDIAMOND, parser.NodeBOX:
		return NestingDepth(node.Children[0])

	case parser.NodeAND, parser.NodeOR:
		return max(NestingDepth(node.Children[0]), NestingDepth(node.Children[1]))

	case parser.NodeMU, parser.NodeNU:
		return 1 + NestingDepth(node.Children[1])
	}

	return 0
}

/*
AlternationDepth returns the maximal length of a chain of strictly alternating
fixpoint binders in sub-formulas of a formula.
*/
func AlternationDepth(node *parser.ASTNode) int {

	switch node.Name {

	case parser.NodeNOT, parser.NodeDIAMOND, parser.NodeBOX:
		return AlternationDepth(node.Children[0])

	case parser.NodeAND, parser.NodeOR:
		return max(AlternationDepth(node.Children[0]), AlternationDepth(node.Children[1]))

	case parser.NodeMU, parser.NodeNU:
		m := 0

		for _, child := range Children(node) {
			if child.Name == oppositeBinder(node.Name) {
				if contender := AlternationDepth(child); contender > m {
					m = contender
				}
			}
		}

		return 1 + m
	}

	return 0
}

/*
DependentAlternationDepth returns the alternation depth of a formula counting
only alternating binders which are tied to the outer binder - an inner binder
of opposite polarity counts only if it contains an occurrence of the outer
binder's recursion variable.
*/
func DependentAlternationDepth(node *parser.ASTNode) int {

	switch node.Name {

	case parser.NodeNOT, parser.NodeDIAMOND, parser.NodeBOX:
		return DependentAlternationDepth(node.Children[0])

	case parser.NodeAND, parser.NodeOR:
		return max(DependentAlternationDepth(node.Children[0]),
			DependentAlternationDepth(node.Children[1]))

	case parser.NodeMU, parser.NodeNU:
		m := 0
		variable := node.Children[0].Token.Val

		for _, child := range Children(node) {
			if child.Name == oppositeBinder(node.Name) && occursIn(child, variable) {
				if contender := DependentAlternationDepth(child); contender > m {
					m = contender
				}
			}
		}

		return 1 + m
	}

	return 0
}

/*
occursIn checks if a recursion variable occurs in a strict sub-node of a
formula node. Binding positions of other binders never match because of
alpha-uniqueness.
*/
func occursIn(node *parser.ASTNode, variable string) bool {
	for _, child := range Children(node) {
		if child.Name == parser.NodeRECVAR && child.Token.Val == variable {
			return true
		}
	}
	return false
}

/*
oppositeBinder returns the binder node name of the opposite polarity.
*/
func oppositeBinder(name string) string {
	if name == parser.NodeMU {
		return parser.NodeNU
	}
	return parser.NodeMU
}

/*
max returns the larger of two numbers.
*/
func max(a int, b int) int {
	if a > b {
		return a
	}
	return b
}
