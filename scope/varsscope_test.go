/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package scope

import (
	"testing"

	"devt.de/krotik/mucal/model"
)

func TestVarsScope(t *testing.T) {
	vs := NewScope(EnvironmentScope)

	if vs.Name() != EnvironmentScope {
		t.Error("Unexpected name:", vs.Name())
		return
	}

	if _, ok := vs.GetValue("X"); ok {
		t.Error("Unexpected value for X")
		return
	}

	ss1 := model.NewStateSet()
	ss1.Insert(0)
	ss1.Insert(2)

	ss2 := model.NewStateSet()
	ss2.Insert(1)

	vs.SetValue("X", ss1)
	vs.SetValue("Y", ss2)

	if val, ok := vs.GetValue("X"); !ok || val.String() != "{0, 2}" {
		t.Error("Unexpected value:", val)
		return
	}

	// Values are overwritten in place

	vs.SetValue("X", ss2)

	if val, ok := vs.GetValue("X"); !ok || val.String() != "{1}" {
		t.Error("Unexpected value:", val)
		return
	}

	if vs.String() != `environment {
    X (1) : {1}
    Y (1) : {1}
}` {
		t.Error("Unexpected string representation:", vs)
		return
	}

	vs.Clear()

	if _, ok := vs.GetValue("X"); ok {
		t.Error("Unexpected value for X after clear")
		return
	}
}
