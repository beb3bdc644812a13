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

package infer

import (
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store/index"
	"github.com/ebay/rdfs/vocab"
)

// IsSchema returns true if the statement contributes to the closure tables:
// it uses subClassOf, subPropertyOf, domain, or range as the predicate, or it
// types its subject as a Property.
func IsSchema(st rdf.Statement) bool {
	switch st.Predicate {
	case vocab.SubClassOf, vocab.SubPropertyOf, vocab.Domain, vocab.Range:
		return true
	case vocab.Type:
		return st.Object == vocab.Property
	}
	return false
}

// Schema accumulates schema statements, ignoring duplicates. It is not safe
// for concurrent use.
type Schema struct {
	statements *index.Index
}

// NewSchema returns an empty Schema.
func NewSchema() *Schema {
	return &Schema{statements: index.New()}
}

// Collect adds the statement to the schema if IsSchema is true for it. It
// returns true if the statement was added and wasn't already in the schema.
// The graph is not significant to the schema.
func (s *Schema) Collect(st rdf.Statement) bool {
	if !IsSchema(st) {
		return false
	}
	st.Graph = rdf.Term{}
	return s.statements.Add(st)
}

// Reset removes all the statements from the schema.
func (s *Schema) Reset() {
	s.statements.Clear()
}

// Len returns the number of statements collected.
func (s *Schema) Len() int {
	return s.statements.Len()
}

// Statements returns the collected statements in SPO order.
func (s *Schema) Statements() []rdf.Statement {
	return s.statements.Statements()
}

// Build computes the closure tables for the collected statements.
func (s *Schema) Build() *Closures {
	return BuildClosures(s.Statements())
}
