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
Package scope contains the evaluation environment implementation for the MUCAL
model checker. The environment maps recursion variable names to state sets and
is owned by a single evaluator invocation.
*/
package scope

import (
	"bytes"
	"fmt"
	"sync"

	"devt.de/krotik/common/sortutil"
	"devt.de/krotik/mucal/model"
	"devt.de/krotik/mucal/parser"
)

/*
EnvironmentScope is the name of the top level evaluation environment.
*/
const EnvironmentScope = "environment"

/*
varsScope models an evaluation environment for recursion variables.
*/
type varsScope struct {
	name    string                     // Name of the environment
	storage map[string]*model.StateSet // Storage for recursion variable values
	lock    *sync.RWMutex              // Lock for this environment
}

/*
NewScope creates a new evaluation environment.
*/
func NewScope(name string) parser.Scope {
	return &varsScope{name, make(map[string]*model.StateSet), &sync.RWMutex{}}
}

/*
Name returns the name of this environment.
*/
func (s *varsScope) Name() string {
	return s.name
}

/*
Clear clears this environment of all stored values.
*/
func (s *varsScope) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.storage = make(map[string]*model.StateSet)
}

/*
SetValue sets a new value for a recursion variable.
*/
func (s *varsScope) SetValue(varName string, varValue *model.StateSet) {
	s.lock.Lock()
	defer s.lock.Unlock()

	s.storage[varName] = varValue
}

/*
GetValue gets the current value of a recursion variable.
*/
func (s *varsScope) GetValue(varName string) (*model.StateSet, bool) {
	s.lock.RLock()
	defer s.lock.RUnlock()

	val, ok := s.storage[varName]

	return val, ok
}

/*
String returns a string representation of this environment.
*/
func (s *varsScope) String() string {
	s.lock.RLock()
	defer s.lock.RUnlock()

	var buf bytes.Buffer

	names := make([]interface{}, 0, len(s.storage))
	for name := range s.storage {
		names = append(names, name)
	}
	sortutil.InterfaceStrings(names)

	buf.WriteString(fmt.Sprintf("%v {\n", s.name))
	for _, name := range names {
		buf.WriteString(fmt.Sprintf("    %v (%v) : %v\n", name,
			s.storage[name.(string)].Count(), s.storage[name.(string)]))
	}
	buf.WriteString("}")

	return buf.String()
}
