/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package analysis

import "devt.de/krotik/mucal/parser"

/*
BindingKind represents the kind of the nearest enclosing fixpoint binder of a
formula node.
*/
type BindingKind int

/*
Available binding kinds
*/
const (
	Unbound   BindingKind = iota // No enclosing fixpoint binder
	BoundByMu                    // Nearest enclosing binder is a least fixpoint
	BoundByNu                    // Nearest enclosing binder is a greatest fixpoint
)

/*
Binding models the binding relation of a single formula node.
*/
type Binding struct {
	Kind   BindingKind     // Kind of the nearest enclosing binder
	Binder *parser.ASTNode // The binder node (nil if unbound)
}

/*
BinderMap maps every node of a formula to its nearest enclosing fixpoint
binder. The map is keyed by node identity - it is computed once per top level
evaluation and read-only thereafter.
*/
type BinderMap struct {
	root     *parser.ASTNode
	bindings map[*parser.ASTNode]Binding
	children map[*parser.ASTNode][]*parser.ASTNode
	freevars map[*parser.ASTNode]map[string]bool
}

/*
NewBinderMap computes the binder map for a given formula.
*/
func NewBinderMap(root *parser.ASTNode) *BinderMap {
	bm := &BinderMap{
		root,
		make(map[*parser.ASTNode]Binding),
		make(map[*parser.ASTNode][]*parser.ASTNode),
		make(map[*parser.ASTNode]map[string]bool),
	}

	bm.visit(root, Binding{Unbound, nil})

	return bm
}

/*
visit records the inherited binding for a node and recurses with the binding
which applies to its children.
*/
func (bm *BinderMap) visit(node *parser.ASTNode, inherited Binding) {
	bm.bindings[node] = inherited

	childBinding := inherited

	if node.Name == parser.NodeMU {
		childBinding = Binding{BoundByMu, node}
	} else if node.Name == parser.NodeNU {
		childBinding = Binding{BoundByNu, node}
	}

	for _, child := range node.Children {
		bm.visit(child, childBinding)
	}
}

/*
Binding returns the binding relation of a given formula node.
*/
func (bm *BinderMap) Binding(node *parser.ASTNode) Binding {
	return bm.bindings[node]
}

/*
Children returns all strict sub-nodes of a given formula node. Results are
memoised.
*/
func (bm *BinderMap) Children(node *parser.ASTNode) []*parser.ASTNode {
	res, ok := bm.children[node]

	if !ok {
		res = Children(node)
		bm.children[node] = res
	}

	return res
}

/*
FreeVariables returns the names of all recursion variables which occur in a
given formula but are not bound by a binder within it. Results are memoised.
*/
func (bm *BinderMap) FreeVariables(node *parser.ASTNode) map[string]bool {
	res, ok := bm.freevars[node]

	if ok {
		return res
	}

	res = make(map[string]bool)

	switch node.Name {

	case parser.NodeRECVAR:
		res[node.Token.Val] = true

	case parser.NodeMU, parser.NodeNU:
		for name := range bm.FreeVariables(node.Children[1]) {
			res[name] = true
		}
		delete(res, node.Children[0].Token.Val)

	default:
		for _, child := range node.Children {
			for name := range bm.FreeVariables(child) {
				res[name] = true
			}
		}
	}

	bm.freevars[node] = res

	return res
}
