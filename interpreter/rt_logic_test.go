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
	"strings"
	"testing"

	"devt.de/krotik/mucal/util"
)

func TestConstantFormulas(t *testing.T) {
	k := testKripke(0,
		[3]interface{}{0, "a", 1},
		[3]interface{}{1, "a", 2},
	)

	assertEval(t, k, "true", "{0, 1, 2}")
	assertEval(t, k, "false", "{}")
	assertEval(t, k, "!true", "{}")
	assertEval(t, k, "!false", "{0, 1, 2}")
	assertEval(t, k, "!!true", "{0, 1, 2}")
}

func TestBooleanOperators(t *testing.T) {
	k := testKripke(0,
		[3]interface{}{0, "a", 1},
		[3]interface{}{1, "b", 2},
	)

	// <a>true holds at 0, <b>true holds at 1

	assertEval(t, k, "(<a>true&&<b>true)", "{}")
	assertEval(t, k, "(<a>true||<b>true)", "{0, 1}")
	assertEval(t, k, "(!<a>true&&!<b>true)", "{2}")
	assertEval(t, k, "((<a>true||<b>true)&&!<b>true)", "{0}")
}

func TestActionPredicate(t *testing.T) {
	k := testKripke(0, [3]interface{}{0, "a", 1})

	// The label function is not populated - an action formula holds nowhere

	assertEval(t, k, "deadlock", "{}")
	assertEval(t, k, "!plate", "{0, 1}")

	// Using an action as a state predicate is reported on debug level

	logger := util.NewMemoryLogger(10)

	if _, err := EvaluateNaive("test", "deadlock", k, logger); err != nil {
		t.Error(err)
		return
	}

	if !strings.Contains(logger.String(), "debug: Action deadlock is used as a state predicate") {
		t.Error("Unexpected log:", logger.String())
		return
	}
}

func TestUnboundVariableErrors(t *testing.T) {
	k := testKripke(0, [3]interface{}{0, "a", 1})

	if _, err := unitTestEval(k, "X"); err == nil ||
		err.Error() != "MUCAL error in test: Variable not found (X) (Line:1 Pos:1)" {
		t.Error("Unexpected result:", err)
		return
	}

	if _, err := unitTestEval(k, "mu X.(Y||<a>X)"); err == nil ||
		err.Error() != "MUCAL error in test: Variable not found (Y) (Line:1 Pos:7)" {
		t.Error("Unexpected result:", err)
		return
	}
}
