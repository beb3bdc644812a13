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

// Package infer implements RDFS entailment. It has two halves.
//
// The closure builder takes the schema statements (the built-in axioms plus any
// user schema) and computes four read-only tables: the superclasses of each
// class, the superproperties of each property, and the classes implied by each
// property's range and domain. Every table is reflexive and transitively
// closed, and the range and domain tables are closed over both the property and
// class tables.
//
// For example, given
//
// [Cat] -subClassOf-> [Animal] -subClassOf-> [Thing]
//
// the class table maps Cat to {Animal, Cat, Thing}.
//
// The entailment engine takes one statement and those tables, and derives
// everything the statement implies under the RDFS rules, feeding each newly
// derived statement back through the same rules. Asserting
//
// [felix] -type-> [Cat]
//
// derives
//
// [felix] -type-> [Animal]
//
// [felix] -type-> [Thing]
//
// Derived statements that already exist are not derived again, so the result
// of applying the engine to a set of statements doesn't depend on their order.
package infer
