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

import "testing"

func TestModalOperatorsOnSink(t *testing.T) {

	// Two state sink - state 1 has no successors

	k := testKripke(0, [3]interface{}{0, "a", 1})

	assertEval(t, k, "<a>true", "{0}")
	assertEval(t, k, "[a]false", "{1}")
	assertEval(t, k, "[a]true", "{0, 1}")
	assertEval(t, k, "<a>false", "{}")

	// The diamond and box modalities are De Morgan duals

	assertEval(t, k, "!<a>true", "{1}")
	assertEval(t, k, "[a]!true", "{1}")
	assertEval(t, k, "!<a>!false", "{1}")
}

func TestModalOperatorsOnComponents(t *testing.T) {

	// Two disjoint cycle components and one isolated state

	k := testKripke(0,
		[3]interface{}{0, "a", 0},
		[3]interface{}{1, "b", 1},
	)
	k.States.Insert(2)

	assertEval(t, k, "<a>true", "{0}")
	assertEval(t, k, "<b>true", "{1}")
	assertEval(t, k, "(<a>true&&<b>true)", "{}")
	assertEval(t, k, "(!<a>true&&!<b>true)", "{2}")
}

func TestEmptyActionModalities(t *testing.T) {
	k := testKripke(0,
		[3]interface{}{0, "a", 1},
		[3]interface{}{1, "a", 2},
	)

	// No transition carries label c - the diamond is empty and the box is full

	assertEval(t, k, "<c>true", "{}")
	assertEval(t, k, "<c>false", "{}")
	assertEval(t, k, "[c]true", "{0, 1, 2}")
	assertEval(t, k, "[c]false", "{0, 1, 2}")
}

func TestModalChains(t *testing.T) {

	// Line graph 0 -a-> 1 -a-> 2

	k := testKripke(0,
		[3]interface{}{0, "a", 1},
		[3]interface{}{1, "a", 2},
	)

	assertEval(t, k, "<a><a>true", "{0}")
	assertEval(t, k, "[a]<a>true", "{0, 2}")
	assertEval(t, k, "[a][a][a]false", "{0, 1, 2}")
	assertEval(t, k, "<a><a><a>true", "{}")
}
