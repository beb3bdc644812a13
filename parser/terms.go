// Copyright 2019 eBay Inc.
// Primary authors: Simon Fell, Diego Ongaro,
//                  Raymond Kroeker, and Sathish Kandasamy.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// https://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package parser

import (
	"fmt"
	"strconv"
)

// Term is a parsed but unresolved term. Prefixed names aren't expanded and
// literals keep their lexical form until the term is resolved against a set of
// prefixes.
type Term interface {
	fmt.Stringer
	isTerm()
}

// Entity is an absolute IRI, e.g. <http://example.com/alice>.
type Entity struct {
	Value string
}

// QName is a prefixed name, e.g. rdfs:label.
type QName struct {
	Prefix string
	Local  string
}

// BlankNode is a labeled blank node, e.g. _:b0.
type BlankNode struct {
	Label string
}

// Variable is a wildcard in a pattern, e.g. ?s.
type Variable struct {
	Name string
}

// LiteralString is a quoted string with an optional language tag or datatype,
// e.g. "chat"@fr or "5"^^xsd:integer.
type LiteralString struct {
	Value string
	Lang  string
	// Datatype is nil, an *Entity or a *QName.
	Datatype Term
}

// LiteralNumber is an unquoted number. Its lexical form decides its datatype:
// xsd:integer, xsd:decimal, or xsd:double when there's an exponent.
type LiteralNumber struct {
	Lexical  string
	Decimal  bool
	Exponent bool
}

// LiteralBool is an unquoted true or false.
type LiteralBool struct {
	Value bool
}

func (*Entity) isTerm()        {}
func (*QName) isTerm()         {}
func (*BlankNode) isTerm()     {}
func (*Variable) isTerm()      {}
func (*LiteralString) isTerm() {}
func (*LiteralNumber) isTerm() {}
func (*LiteralBool) isTerm()   {}

func (e *Entity) String() string {
	return "<" + e.Value + ">"
}

func (q *QName) String() string {
	return q.Prefix + ":" + q.Local
}

func (b *BlankNode) String() string {
	return "_:" + b.Label
}

func (v *Variable) String() string {
	return "?" + v.Name
}

func (l *LiteralString) String() string {
	s := strconv.Quote(l.Value)
	switch {
	case l.Lang != "":
		return s + "@" + l.Lang
	case l.Datatype != nil:
		return s + "^^" + l.Datatype.String()
	}
	return s
}

func (l *LiteralNumber) String() string {
	return l.Lexical
}

func (l *LiteralBool) String() string {
	return strconv.FormatBool(l.Value)
}

// Line is a single parsed line: either a statement or pattern, or a prefix
// declaration.
type Line struct {
	Subject   Term
	Predicate Term
	Object    Term
	// Graph is nil when the line has only 3 terms.
	Graph Term
}

// prefixDecl is the result of parsing an '@prefix p: <iri> .' line.
type prefixDecl struct {
	name string
	iri  string
}
