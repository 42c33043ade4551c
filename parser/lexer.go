/*
 * MUCAL
 *
 * Copyright 2020 Matthias Ladkau. All rights reserved.
 *
 * This Source Code Form is subject to the terms of the MIT
 * License, If a copy of the MIT License was not distributed with this
 * file, You can obtain one at https://opensource.org/licenses/MIT.
 */

package parser

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

/*
ActionPattern is the pattern of action labels.
*/
var ActionPattern = regexp.MustCompile("^[a-z_]+$")

/*
RecvarPattern is the pattern of recursion variables.
*/
var RecvarPattern = regexp.MustCompile("^[A-Z]$")

/*
fixpointPattern matches a fixpoint keyword directly followed by its recursion
variable (e.g. 'muX').
*/
var fixpointPattern = regexp.MustCompile("^(mu|nu)([A-Z])$")

/*
LexToken represents a token which is returned by the lexer.
*/
type LexToken struct {
	ID         LexTokenID // Token kind
	Pos        int        // Starting position (in bytes)
	Val        string     // Token value
	Identifier bool       // Flag if the value is an identifier (action or recursion variable)
	Lsource    string     // Input source label (e.g. filename)
	Lline      int        // Line in the input this token appears
	Lpos       int        // Position in the input line this token appears
}

/*
Equals checks if this LexToken equals another LexToken. Returns also a message
describing what is the found difference.
*/
func (t LexToken) Equals(other LexToken, ignorePosition bool) (bool, string) {
	var res = true
	var msg = ""

	if t.ID != other.ID {
		res = false
		msg += fmt.Sprintf("ID is different %v vs %v\n", t.ID, other.ID)
	}

	if !ignorePosition && t.Pos != other.Pos {
		res = false
		msg += fmt.Sprintf("Pos is different %v vs %v\n", t.Pos, other.Pos)
	}

	if t.Val != other.Val {
		res = false
		msg += fmt.Sprintf("Val is different %v vs %v\n", t.Val, other.Val)
	}

	if t.Identifier != other.Identifier {
		res = false
		msg += fmt.Sprintf("Identifier is different %v vs %v\n", t.Identifier, other.Identifier)
	}

	if !ignorePosition && t.Lline != other.Lline {
		res = false
		msg += fmt.Sprintf("Lline is different %v vs %v\n", t.Lline, other.Lline)
	}

	if !ignorePosition && t.Lpos != other.Lpos {
		res = false
		msg += fmt.Sprintf("Lpos is different %v vs %v\n", t.Lpos, other.Lpos)
	}

	if msg != "" {
		msg = fmt.Sprintf("%v%v\nvs\n%v", msg, t, other)
	}

	return res, msg
}

/*
PosString returns the position of this token in the original input as a string.
*/
func (t LexToken) PosString() string {
	return fmt.Sprintf("Line %v, Pos %v", t.Lline, t.Lpos)
}

/*
String returns a string representation of a token.
*/
func (t LexToken) String() string {

	switch {

	case t.ID == TokenEOF:
		return "EOF"

	case t.ID == TokenError:
		return fmt.Sprintf("Error: %s (%s)", t.Val, t.PosString())

	case t.ID == TokenDIAMOND:
		return fmt.Sprintf("<%s>", t.Val)

	case t.ID == TokenBOX:
		return fmt.Sprintf("[%s]", t.Val)

	case t.ID > TOKENodeKEYWORDS:
		return fmt.Sprintf("<%s>", strings.ToUpper(t.Val))
	}

	return fmt.Sprintf("%q", t.Val)
}

/*
KeywordMap is a map of keywords - these require spaces or symbols between them
*/
var KeywordMap = map[string]LexTokenID{
	"true":  TokenTRUE,
	"false": TokenFALSE,
	"mu":    TokenMU,
	"nu":    TokenNU,
}

/*
SymbolMap is a map of special symbols which will always be unique - these will
separate unquoted strings. Symbols can be maximal 2 characters long.
*/
var SymbolMap = map[string]LexTokenID{
	"(":  TokenLPAREN,
	")":  TokenRPAREN,
	".":  TokenDOT,
	";":  TokenSEMICOLON,
	"&&": TokenAND,
	"||": TokenOR,
	"!":  TokenNOT,
}

// Lexer
// =====

/*
RuneEOF is a special rune which represents the end of the input
*/
const RuneEOF = -1

/*
Function which represents the current state of the lexer and returns the next state
*/
type lexFunc func(*lexer) lexFunc

/*
Lexer data structure
*/
type lexer struct {
	name   string        // Name to identify the input
	input  string        // Input string of the lexer
	pos    int           // Current rune pointer
	line   int           // Current line pointer
	lastnl int           // Last newline position
	width  int           // Width of last rune
	start  int           // Start position of the current read token
	tokens chan LexToken // Channel for lexer output
}

/*
Lex lexes a given input. Returns a channel which contains tokens.
*/
func Lex(name string, input string) chan LexToken {
	l := &lexer{name, input, 0, 0, 0, 0, 0, make(chan LexToken)}
	go l.run()
	return l.tokens
}

/*
LexToList lexes a given input. Returns a list of tokens.
*/
func LexToList(name string, input string) []LexToken {
	var tokens []LexToken

	for t := range Lex(name, input) {
		tokens = append(tokens, t)
	}

	return tokens
}

/*
Main loop of the lexer.
*/
func (l *lexer) run() {

	if skipWhiteSpace(l) {
		for state := lexToken; state != nil; {
			state = state(l)

			if !skipWhiteSpace(l) {
				break
			}
		}
	}

	close(l.tokens)
}

/*
next returns the next rune in the input and advances the current rune pointer
if peek is 0. If peek is >0 then the nth character is returned without advancing
the rune pointer.
*/
func (l *lexer) next(peek int) rune {

	// Check if we reached the end

	if int(l.pos) >= len(l.input) {
		return RuneEOF
	}

	// Decode the next rune

	pos := l.pos
	if peek > 0 {
		pos += peek - 1
	}

	r, w := utf8.DecodeRuneInString(l.input[pos:])

	if peek == 0 {
		l.width = w
		l.pos += l.width
	}

	return r
}

/*
backup sets the pointer one rune back. Can only be called once per next call.
*/
func (l *lexer) backup(width int) {
	if width == 0 {
		width = l.width
	}
	l.pos -= width
}

/*
startNew starts a new token.
*/
func (l *lexer) startNew() {
	l.start = l.pos
}

/*
emitToken passes a token back to the client.
*/
func (l *lexer) emitToken(t LexTokenID) {
	if t == TokenEOF {
		l.emitTokenAndValue(t, "", false)
		return
	}

	if l.tokens != nil {
		l.tokens <- LexToken{t, l.start, l.input[l.start:l.pos], false, l.name,
			l.line + 1, l.start - l.lastnl + 1}
	}
}

/*
emitTokenAndValue passes a token with a given value back to the client.
*/
func (l *lexer) emitTokenAndValue(t LexTokenID, val string, identifier bool) {
	if l.tokens != nil {
		l.tokens <- LexToken{t, l.start, val, identifier, l.name, l.line + 1,
			l.start - l.lastnl + 1}
	}
}

/*
emitError passes an error token back to the client.
*/
func (l *lexer) emitError(msg string) {
	if l.tokens != nil {
		l.tokens <- LexToken{TokenError, l.start, msg, false, l.name, l.line + 1,
			l.start - l.lastnl + 1}
	}
}

// Helper functions
// ================

/*
skipWhiteSpace skips any number of whitespace characters. Returns false if the
lexer reaches EOF while skipping whitespaces.
*/
func skipWhiteSpace(l *lexer) bool {
	r := l.next(0)

	for unicode.IsSpace(r) || unicode.IsControl(r) || r == RuneEOF {
		if r == '\n' {
			l.line++
			l.lastnl = l.pos
		}
		r = l.next(0)

		if r == RuneEOF {
			l.emitToken(TokenEOF)
			return false
		}
	}

	l.backup(0)
	return true
}

/*
lexTextBlock lexes a block of text without whitespaces. Stops at all one or
two letter symbol tokens and at modal operator brackets.
*/
func lexTextBlock(l *lexer) {

	r := l.next(0)

	// Check if we start with a known symbol

	nr := l.next(1)
	if _, ok := SymbolMap[string(r)+string(nr)]; ok {
		l.next(0)
		return
	}

	if _, ok := SymbolMap[string(r)]; ok {
		return
	}

	for !unicode.IsSpace(r) && !unicode.IsControl(r) && r != RuneEOF {

		// Check if we find a symbol or a modal bracket in the block

		if _, ok := SymbolMap[string(r)]; ok {
			l.backup(0)
			return
		}

		if r == '<' || r == '[' {
			l.backup(0)
			return
		}

		nr := l.next(1)
		if _, ok := SymbolMap[string(r)+string(nr)]; ok {
			l.backup(0)
			return
		}

		r = l.next(0)
	}

	if r != RuneEOF {
		l.backup(0)
	}
}

// State functions
// ===============

/*
lexToken is the main entry function for the lexer.
*/
func lexToken(l *lexer) lexFunc {

	// Check for modal operator brackets

	n1 := l.next(1)

	if n1 == '<' {
		return lexModal('>', TokenDIAMOND)
	}

	if n1 == '[' {
		return lexModal(']', TokenBOX)
	}

	// Lex a block of text and emit any found tokens

	l.startNew()
	lexTextBlock(l)

	keywordCandidate := l.input[l.start:l.pos]

	// Check for a keyword or a symbol

	token, ok := KeywordMap[keywordCandidate]

	if !ok {
		token, ok = SymbolMap[keywordCandidate]
	}

	if ok {
		l.emitToken(token)
		return lexToken
	}

	// Check for a fixpoint keyword directly followed by its variable

	if m := fixpointPattern.FindStringSubmatch(keywordCandidate); m != nil {
		l.emitTokenAndValue(KeywordMap[m[1]], m[1], false)
		l.start += len(m[1])
		l.emitTokenAndValue(TokenRECVAR, m[2], true)
		return lexToken
	}

	// Check for a recursion variable or an action label

	if RecvarPattern.MatchString(keywordCandidate) {
		l.emitTokenAndValue(TokenRECVAR, keywordCandidate, true)
		return lexToken
	}

	if ActionPattern.MatchString(keywordCandidate) {
		l.emitTokenAndValue(TokenACTION, keywordCandidate, true)
		return lexToken
	}

	l.emitError(fmt.Sprintf("Cannot parse term '%v'", keywordCandidate))
	return nil
}

/*
lexModal produces a state function which lexes a modal operator - an action
label enclosed in angle or square brackets. The emitted token carries the
action label as its value.
*/
func lexModal(endRune rune, id LexTokenID) lexFunc {
	return func(l *lexer) lexFunc {

		l.startNew()
		l.next(0) // Skip over the opening bracket

		labelStart := l.pos

		r := l.next(0)
		for r != endRune {
			if r == RuneEOF || unicode.IsSpace(r) {
				l.emitError("Unexpected end while reading modal operator (unclosed bracket)")
				return nil
			}
			r = l.next(0)
		}

		label := l.input[labelStart : l.pos-1]

		if !ActionPattern.MatchString(label) {
			l.emitError(fmt.Sprintf("Invalid action label '%v' in modal operator", label))
			return nil
		}

		l.emitTokenAndValue(id, label, false)

		return lexToken
	}
}
