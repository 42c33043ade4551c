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
Package model contains the data model for the MUCAL model checker: dense
state sets, Kripke structures and the Aldebaran (AUT) file format.
*/
package model

import (
	"bytes"
	"fmt"
	"math/bits"
)

/*
wordSize is the number of states stored per bitset word.
*/
const wordSize = 64

/*
StateSet models a set of state identifiers as a dense bitset. State
identifiers are non-negative integers which are assigned during Kripke
structure construction. The zero value is not usable - use NewStateSet.
*/
type StateSet struct {
	words []uint64
}

/*
NewStateSet creates a new empty state set.
*/
func NewStateSet() *StateSet {
	return &StateSet{nil}
}

/*
NewStateSetWithCapacity creates a new empty state set which can hold states
up to the given identifier without growing.
*/
func NewStateSetWithCapacity(maxState uint64) *StateSet {
	return &StateSet{make([]uint64, int(maxState/wordSize)+1)}
}

/*
ensure grows the word storage so the given state can be stored.
*/
func (ss *StateSet) ensure(state uint64) {
	for int(state/wordSize) >= len(ss.words) {
		ss.words = append(ss.words, 0)
	}
}

/*
Insert inserts a state into this set.
*/
func (ss *StateSet) Insert(state uint64) {
	ss.ensure(state)
	ss.words[state/wordSize] |= 1 << (state % wordSize)
}

/*
Remove removes a state from this set.
*/
func (ss *StateSet) Remove(state uint64) {
	if int(state/wordSize) < len(ss.words) {
		ss.words[state/wordSize] &^= 1 << (state % wordSize)
	}
}

/*
Contains checks if a state is in this set.
*/
func (ss *StateSet) Contains(state uint64) bool {
	if int(state/wordSize) >= len(ss.words) {
		return false
	}
	return ss.words[state/wordSize]&(1<<(state%wordSize)) != 0
}

/*
Count returns the number of states in this set.
*/
func (ss *StateSet) Count() int {
	count := 0
	for _, w := range ss.words {
		count += bits.OnesCount64(w)
	}
	return count
}

/*
Clone returns a copy of this set.
*/
func (ss *StateSet) Clone() *StateSet {
	words := make([]uint64, len(ss.words))
	copy(words, ss.words)
	return &StateSet{words}
}

/*
Union returns a new set containing all states of this set and the other set.
*/
func (ss *StateSet) Union(other *StateSet) *StateSet {
	var res *StateSet

	if len(ss.words) >= len(other.words) {
		res = ss.Clone()
		for i, w := range other.words {
			res.words[i] |= w
		}
	} else {
		res = other.Clone()
		for i, w := range ss.words {
			res.words[i] |= w
		}
	}

	return res
}

/*
Intersect returns a new set containing the states which are in this set and
in the other set.
*/
func (ss *StateSet) Intersect(other *StateSet) *StateSet {
	size := len(ss.words)
	if len(other.words) < size {
		size = len(other.words)
	}

	res := &StateSet{make([]uint64, size)}
	for i := 0; i < size; i++ {
		res.words[i] = ss.words[i] & other.words[i]
	}

	return res
}

/*
Difference returns a new set containing the states of this set which are not
in the other set.
*/
func (ss *StateSet) Difference(other *StateSet) *StateSet {
	res := ss.Clone()
	size := len(res.words)

	for i, w := range other.words {
		if i >= size {
			break
		}
		res.words[i] &^= w
	}

	return res
}

/*
Equals checks if this set contains exactly the states of the other set.
Differing capacities are ignored.
*/
func (ss *StateSet) Equals(other *StateSet) bool {
	long, short := ss.words, other.words
	if len(short) > len(long) {
		long, short = short, long
	}

	for i, w := range short {
		if long[i] != w {
			return false
		}
	}
	for _, w := range long[len(short):] {
		if w != 0 {
			return false
		}
	}

	return true
}

/*
Each calls the given visitor function for every state in this set in
ascending order.
*/
func (ss *StateSet) Each(visit func(state uint64)) {
	for i, w := range ss.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			visit(uint64(i*wordSize + b))
			w &= w - 1
		}
	}
}

/*
ToSlice returns the states of this set as a sorted slice.
*/
func (ss *StateSet) ToSlice() []uint64 {
	res := make([]uint64, 0, ss.Count())
	ss.Each(func(state uint64) {
		res = append(res, state)
	})
	return res
}

/*
String returns a string representation of this set.
*/
func (ss *StateSet) String() string {
	var buf bytes.Buffer

	buf.WriteString("{")
	first := true
	ss.Each(func(state uint64) {
		if !first {
			buf.WriteString(", ")
		}
		first = false
		buf.WriteString(fmt.Sprint(state))
	})
	buf.WriteString("}")

	return buf.String()
}
