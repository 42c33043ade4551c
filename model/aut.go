/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package model

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

/*
autHeaderPattern is the pattern of the Aldebaran header line.
*/
var autHeaderPattern = regexp.MustCompile(`^des\s*\(\s*([0-9]+)\s*,\s*([0-9]+)\s*,\s*([0-9]+)\s*\)$`)

/*
autEdgePattern is the pattern of an Aldebaran transition line with a quoted
label. Quoted labels may contain separator characters.
*/
var autEdgePattern = regexp.MustCompile(`^\(\s*([0-9]+)\s*,\s*"([A-Za-z0-9 ,.()_]+)"\s*,\s*([0-9]+)\s*\)$`)

/*
autPlainEdgePattern is the pattern of a transition line with an unquoted
label.
*/
var autPlainEdgePattern = regexp.MustCompile(`^\(\s*([0-9]+)\s*,\s*([A-Za-z0-9 .()_]+?)\s*,\s*([0-9]+)\s*\)$`)

/*
AutHeader models the header line of an AUT file.
*/
type AutHeader struct {
	FirstState      uint64 // Identifier of the initial state
	NrOfTransitions int    // Declared number of transitions
	NrOfStates      int    // Declared number of states
}

/*
AutEdge models a single labelled transition of an AUT file.
*/
type AutEdge struct {
	StartState uint64 // Source state of the transition
	Label      string // Action label
	EndState   uint64 // Target state of the transition
}

/*
AutFile models a parsed AUT file.
*/
type AutFile struct {
	Header AutHeader
	Edges  []AutEdge
}

/*
AutParserError is an AUT file parsing related error.
*/
type AutParserError struct {
	Source string // Name of the input which was parsed
	Line   int    // Line of the error
	Detail string // Details of this error
}

/*
Error returns a human-readable string representation of this error.
*/
func (ae *AutParserError) Error() string {
	return fmt.Sprintf("AUT parse error in %v (Line %v): %v", ae.Source, ae.Line, ae.Detail)
}

/*
ParseAut parses the contents of an Aldebaran (AUT) file. The input must
consist of a header line 'des (first_state, nr_of_transitions, nr_of_states)'
followed by one '(start,"label",end)' line per transition. Blank lines are
ignored.
*/
func ParseAut(name string, input string) (*AutFile, error) {
	var header *AutHeader
	var edges []AutEdge

	for i, line := range strings.Split(input, "\n") {
		line = strings.TrimSpace(line)

		if line == "" {
			continue
		}

		if header == nil {

			// The first non-empty line must be the header

			m := autHeaderPattern.FindStringSubmatch(line)
			if m == nil {
				return nil, &AutParserError{name, i + 1, fmt.Sprintf("Invalid header: %v", line)}
			}

			first, _ := strconv.ParseUint(m[1], 10, 64)
			transitions, _ := strconv.Atoi(m[2])
			states, _ := strconv.Atoi(m[3])

			header = &AutHeader{first, transitions, states}
			continue
		}

		m := autEdgePattern.FindStringSubmatch(line)
		if m == nil {
			m = autPlainEdgePattern.FindStringSubmatch(line)
		}
		if m == nil {
			return nil, &AutParserError{name, i + 1, fmt.Sprintf("Invalid transition: %v", line)}
		}

		start, _ := strconv.ParseUint(m[1], 10, 64)
		end, _ := strconv.ParseUint(m[3], 10, 64)

		edges = append(edges, AutEdge{start, m[2], end})
	}

	if header == nil {
		return nil, &AutParserError{name, 1, "Missing header"}
	}

	return &AutFile{*header, edges}, nil
}

/*
ToKripke builds a Kripke structure from this AUT file. The first state
becomes a known and initial state and every transition inserts both of its
endpoints.
*/
func (af *AutFile) ToKripke() *Kripke {
	k := NewKripke()

	k.AddInitState(af.Header.FirstState)

	for _, edge := range af.Edges {
		k.AddTransition(edge.StartState, edge.Label, edge.EndState)
	}

	return k
}
