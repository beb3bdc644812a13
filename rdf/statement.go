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

package rdf

import (
	"errors"
	"fmt"
	"strings"
)

// Statement is an RDF triple, optionally tagged with the named graph it
// belongs to. A zero Graph means the default graph.
type Statement struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// Triple returns a Statement in the default graph.
func Triple(subject, predicate, object Term) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: object}
}

// Quad returns a Statement in the named graph 'graph'.
func Quad(subject, predicate, object, graph Term) Statement {
	return Statement{Subject: subject, Predicate: predicate, Object: object, Graph: graph}
}

// These errors are returned by Statement.Validate.
var (
	ErrInvalidSubject   = errors.New("rdf: statement subject must be an IRI or blank node")
	ErrInvalidPredicate = errors.New("rdf: statement predicate must be an IRI")
	ErrInvalidObject    = errors.New("rdf: statement object is missing")
	ErrInvalidGraph     = errors.New("rdf: statement graph must be an IRI or blank node")
)

// Validate checks that st is a well formed statement: the subject is a
// resource, the predicate is an IRI, the object is set and the graph, if set,
// is a resource.
func (st Statement) Validate() error {
	switch {
	case !st.Subject.IsResource():
		return fmt.Errorf("%w: %v", ErrInvalidSubject, st)
	case !st.Predicate.IsIRI():
		return fmt.Errorf("%w: %v", ErrInvalidPredicate, st)
	case st.Object.IsZero():
		return fmt.Errorf("%w: %v", ErrInvalidObject, st)
	case !st.Graph.IsZero() && !st.Graph.IsResource():
		return fmt.Errorf("%w: %v", ErrInvalidGraph, st)
	}
	return nil
}

// String returns the statement in N-Quads syntax, without the trailing '.'.
func (st Statement) String() string {
	var b strings.Builder
	b.WriteString(st.Subject.String())
	b.WriteByte(' ')
	b.WriteString(st.Predicate.String())
	b.WriteByte(' ')
	b.WriteString(st.Object.String())
	if !st.Graph.IsZero() {
		b.WriteByte(' ')
		b.WriteString(st.Graph.String())
	}
	return b.String()
}

// Compare returns -1, 0 or +1 depending on whether st sorts before, the same
// as or after other. Statements are ordered by Subject, Predicate, Object then
// Graph.
func (st Statement) Compare(other Statement) int {
	if c := st.Subject.Compare(other.Subject); c != 0 {
		return c
	}
	if c := st.Predicate.Compare(other.Predicate); c != 0 {
		return c
	}
	if c := st.Object.Compare(other.Object); c != 0 {
		return c
	}
	return st.Graph.Compare(other.Graph)
}

// Less returns true if st sorts before other.
func (st Statement) Less(other Statement) bool {
	return st.Compare(other) < 0
}

// Pattern describes a set of statements. A zero Term in any position matches
// every term in that position, so the zero Pattern matches all statements.
type Pattern struct {
	Subject   Term
	Predicate Term
	Object    Term
	Graph     Term
}

// Matches returns true if st is described by the pattern.
func (p Pattern) Matches(st Statement) bool {
	match := func(want, got Term) bool {
		return want.IsZero() || want == got
	}
	return match(p.Subject, st.Subject) &&
		match(p.Predicate, st.Predicate) &&
		match(p.Object, st.Object) &&
		match(p.Graph, st.Graph)
}

func (p Pattern) String() string {
	return Statement(p).String()
}
