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

import (
	"testing"

	"devt.de/krotik/mucal/parser"
)

/*
mustParse parses a formula for testing.
*/
func mustParse(t *testing.T, input string) *parser.ASTNode {
	ast, err := parser.Parse("test", input)
	if err != nil {
		t.Fatal(err)
	}
	return ast
}

func TestChildren(t *testing.T) {
	ast := mustParse(t, "mu X.(<a>X||true)")

	// Strict sub-nodes: recvar X (binding), or, diamond, recvar X, true

	if res := Children(ast); len(res) != 5 {
		t.Error("Unexpected children:", res)
		return
	}

	if res := Children(ast.Children[0]); len(res) != 0 {
		t.Error("Unexpected children of a binding variable:", res)
		return
	}
}

func TestNestingDepth(t *testing.T) {

	for _, test := range []struct {
		formula string
		depth   int
	}{
		{"true", 0},
		{"<a>!X", 0},
		{"mu X.<a>X", 1},
		{"(mu X.<a>X&&nu Y.[b]Y)", 1},
		{"nu Y.mu X.(<a>X||<a>Y)", 2},
		{"mu X.nu Y.mu Z.((<a>X||<b>Y)||<c>Z)", 3},
	} {
		if res := NestingDepth(mustParse(t, test.formula)); res != test.depth {
			t.Error("Unexpected nesting depth:", test.formula, res)
			return
		}
	}
}

func TestAlternationDepth(t *testing.T) {

	for _, test := range []struct {
		formula string
		depth   int
	}{
		{"false", 0},
		{"mu X.<a>X", 1},

		// Same polarity nesting does not alternate

		{"mu X.mu Z.(<a>X||<b>Z)", 1},

		// Alternation is counted over nested opposite binders

		{"nu Y.mu X.(<a>X||<a>Y)", 2},
		{"nu Y.mu X.(<a>X||<b>X)", 2},
		{"mu X.nu Y.mu Z.((<a>X||<b>Y)||<c>Z)", 3},

		// Parallel binders do not alternate

		{"(mu X.<a>X&&nu Y.[b]Y)", 1},
	} {
		if res := AlternationDepth(mustParse(t, test.formula)); res != test.depth {
			t.Error("Unexpected alternation depth:", test.formula, res)
			return
		}
	}
}

func TestDependentAlternationDepth(t *testing.T) {

	for _, test := range []struct {
		formula string
		depth   int
	}{
		{"true", 0},
		{"mu X.<a>X", 1},

		// The inner binder depends on the outer variable

		{"nu Y.mu X.(<a>X||<a>Y)", 2},

		// The inner binder does not use the outer variable

		{"nu Y.mu X.(<a>X||<b>X)", 1},
		{"mu X.nu Y.mu Z.((<a>X||<b>Y)||<c>Z)", 3},
		{"mu X.nu Y.mu Z.(<b>Y||<c>Z)", 1},
	} {
		if res := DependentAlternationDepth(mustParse(t, test.formula)); res != test.depth {
			t.Error("Unexpected dependent alternation depth:", test.formula, res)
			return
		}
	}
}

func TestDepthMonotonicity(t *testing.T) {

	// dad <= ad <= nd must hold for all formulas

	for _, formula := range []string{
		"true",
		"mu X.<a>X",
		"nu Y.mu X.(<a>X||<a>Y)",
		"nu Y.mu X.(<a>X||<b>X)",
		"mu X.nu Y.mu Z.((<a>X||<b>Y)||<c>Z)",
		"(mu X.<a>X&&nu Y.[b]Y)",
		"[a](mu X.(<b>true||<a>X))",
	} {
		ast := mustParse(t, formula)

		nd := NestingDepth(ast)
		ad := AlternationDepth(ast)
		dad := DependentAlternationDepth(ast)

		if dad > ad || ad > nd {
			t.Error("Depth monotonicity violated:", formula, nd, ad, dad)
			return
		}
	}
}
