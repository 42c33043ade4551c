/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package main

import (
	"fmt"
	"os"

	"devt.de/krotik/mucal/cli/tool"
)

func main() {

	interpreter := tool.NewCLIInterpreter()

	if err := interpreter.Interpret(true); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
