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

// Package rdf defines the RDF terms and statements that the inference engine
// operates on.
package rdf

import (
	"fmt"
	"strconv"
	"strings"
)

// Kind identifies which sort of RDF term a Term holds.
type Kind uint8

// These are the possible values of Kind.
const (
	// KindNone is the Kind of the zero Term. In a Pattern it matches any term,
	// as a statement's Graph it means the default graph.
	KindNone Kind = iota
	KindIRI
	KindBlank
	KindLiteral
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindIRI:
		return "iri"
	case KindBlank:
		return "blank"
	case KindLiteral:
		return "literal"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// Term is a single RDF term: an IRI, a blank node or a literal. Terms are
// plain values; two Terms are the same term exactly when they are ==, so a
// Term can be used as a map key.
type Term struct {
	Kind Kind
	// The IRI, the blank node label, or the lexical form of the literal.
	Value string
	// The datatype IRI of a typed literal. Empty for other terms.
	Datatype string
	// The language tag of a language tagged literal. Empty for other terms.
	Lang string
}

// IRI returns an IRI term.
func IRI(iri string) Term {
	return Term{Kind: KindIRI, Value: iri}
}

// Blank returns a blank node term with the given label.
func Blank(label string) Term {
	return Term{Kind: KindBlank, Value: label}
}

// Literal returns a plain literal term.
func Literal(lexical string) Term {
	return Term{Kind: KindLiteral, Value: lexical}
}

// TypedLiteral returns a literal term with the datatype IRI 'datatype'.
func TypedLiteral(lexical, datatype string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Datatype: datatype}
}

// LangLiteral returns a literal term tagged with the language 'lang'.
func LangLiteral(lexical, lang string) Term {
	return Term{Kind: KindLiteral, Value: lexical, Lang: lang}
}

// IsZero returns true if t is the zero Term.
func (t Term) IsZero() bool {
	return t.Kind == KindNone
}

// IsIRI returns true if t is an IRI.
func (t Term) IsIRI() bool {
	return t.Kind == KindIRI
}

// IsBlank returns true if t is a blank node.
func (t Term) IsBlank() bool {
	return t.Kind == KindBlank
}

// IsLiteral returns true if t is a literal.
func (t Term) IsLiteral() bool {
	return t.Kind == KindLiteral
}

// IsResource returns true if t identifies a resource, that is it's an IRI or
// a blank node. Only resources may be the subject of a statement.
func (t Term) IsResource() bool {
	return t.Kind == KindIRI || t.Kind == KindBlank
}

// splitIRI returns the index in the IRI at which the local name starts. The
// local name follows the last '#', or failing that the last '/' or ':'.
func splitIRI(iri string) int {
	if i := strings.LastIndexByte(iri, '#'); i >= 0 {
		return i + 1
	}
	if i := strings.LastIndexByte(iri, '/'); i >= 0 {
		return i + 1
	}
	if i := strings.LastIndexByte(iri, ':'); i >= 0 {
		return i + 1
	}
	return 0
}

// Namespace returns the namespace part of an IRI term, e.g.
// "http://www.w3.org/1999/02/22-rdf-syntax-ns#" for rdf:type. It returns ""
// for other kinds of terms.
func (t Term) Namespace() string {
	if t.Kind != KindIRI {
		return ""
	}
	return t.Value[:splitIRI(t.Value)]
}

// LocalName returns the local name part of an IRI term, e.g. "type" for
// rdf:type. It returns "" for other kinds of terms.
func (t Term) LocalName() string {
	if t.Kind != KindIRI {
		return ""
	}
	return t.Value[splitIRI(t.Value):]
}

// String returns t in N-Triples syntax.
func (t Term) String() string {
	switch t.Kind {
	case KindNone:
		return "*"
	case KindIRI:
		return "<" + t.Value + ">"
	case KindBlank:
		return "_:" + t.Value
	case KindLiteral:
		s := strconv.Quote(t.Value)
		switch {
		case t.Lang != "":
			return s + "@" + t.Lang
		case t.Datatype != "":
			return s + "^^<" + t.Datatype + ">"
		}
		return s
	default:
		return fmt.Sprintf("Term{%v %q}", t.Kind, t.Value)
	}
}

// Compare returns -1, 0 or +1 depending on whether t sorts before, the same
// as or after other. Terms are ordered by Kind, then Value, then Datatype, then
// Lang.
func (t Term) Compare(other Term) int {
	switch {
	case t.Kind < other.Kind:
		return -1
	case t.Kind > other.Kind:
		return 1
	}
	if c := strings.Compare(t.Value, other.Value); c != 0 {
		return c
	}
	if c := strings.Compare(t.Datatype, other.Datatype); c != 0 {
		return c
	}
	return strings.Compare(t.Lang, other.Lang)
}

// Less returns true if t sorts before other.
func (t Term) Less(other Term) bool {
	return t.Compare(other) < 0
}
