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
	"github.com/ebay/rdfs/vocab"
)

// Target receives the statements an Engine produces.
type Target interface {
	// AddExplicit stores the asserted statement itself.
	AddExplicit(st rdf.Statement) error
	// AddInferred records a derived statement. It returns false if the
	// statement was already present, either explicitly or as a derived
	// statement, in which case the engine won't derive anything further from
	// it.
	AddInferred(st rdf.Statement) (bool, error)
}

// Engine applies the RDFS rules to individual statements using a fixed set of
// closure tables.
type Engine struct {
	// Closures must not be nil.
	Closures *Closures
	// ResourceTyping types every subject and resource object as a Resource,
	// and makes every instance of Class a subclass of Resource.
	ResourceTyping bool
}

// Entail derives the statements that 'st' entails and sends them to
// target.AddInferred. Each statement that target reports as new is entailed in
// turn. If storeOriginal is set, 'st' itself is sent to target.AddExplicit
// along the way; it should be false when 'st' is already stored. Entail
// returns the new statements in the order they were derived.
//
// The rules are applied in this order:
//  1. with ResourceTyping, (s type Resource) and, if o is a resource,
//     (o type Resource);
//  2. if p is a container membership property (rdf:_1, rdf:_2, ...),
//     (s member o) and the statements that declare p as one;
//  3. store 'st' if storeOriginal;
//  4. if p is type, (s type C) for every superclass C of o;
//  5. (s q o) for every superproperty q of p;
//  6. if o is a resource, (o type C) for every C in the range of p;
//  7. (s type C) for every C in the domain of p;
//  8. (s type Resource) if 4 or 7 typed s, and (o type Resource) if 6 typed o.
func (e *Engine) Entail(st rdf.Statement, target Target, storeOriginal bool) ([]rdf.Statement, error) {
	c := cascade{engine: e, target: target}
	err := c.entail(st, storeOriginal)
	return c.out, err
}

// Derive records 'st' itself as a derived statement with target.AddInferred
// and, if it's new, entails it as Entail does with storeOriginal unset. It
// returns 'st' followed by the new statements, or nothing if 'st' was already
// present.
func (e *Engine) Derive(st rdf.Statement, target Target) ([]rdf.Statement, error) {
	c := cascade{engine: e, target: target}
	err := c.infer(st)
	return c.out, err
}

// cascade holds the state of one call to Entail.
type cascade struct {
	engine *Engine
	target Target
	// The new statements, in the order they were derived.
	out []rdf.Statement
}

// infer records a derived statement and, if it's new, entails it in turn.
// Statements that can't exist, such as one whose predicate is a literal
// because of an unusual schema, are dropped.
func (c *cascade) infer(st rdf.Statement) error {
	if st.Validate() != nil {
		return nil
	}
	added, err := c.target.AddInferred(st)
	if err != nil || !added {
		return err
	}
	c.out = append(c.out, st)
	return c.entail(st, false)
}

// inferType derives (t type class) and, with ResourceTyping, (t subClassOf
// Resource) when class is Class.
func (c *cascade) inferType(t, class rdf.Term, graph rdf.Term) error {
	if c.engine.ResourceTyping && class == vocab.Class {
		if err := c.infer(rdf.Quad(t, vocab.SubClassOf, vocab.Resource, graph)); err != nil {
			return err
		}
	}
	return c.infer(rdf.Quad(t, vocab.Type, class, graph))
}

func (c *cascade) entail(st rdf.Statement, storeOriginal bool) error {
	s, p, o, g := st.Subject, st.Predicate, st.Object, st.Graph
	closures := c.engine.Closures
	inferAll := func(stmts ...rdf.Statement) error {
		for _, st := range stmts {
			if err := c.infer(st); err != nil {
				return err
			}
		}
		return nil
	}
	subjectTyped := false
	objectTyped := false

	// 1
	if c.engine.ResourceTyping {
		if err := c.infer(rdf.Quad(s, vocab.Type, vocab.Resource, g)); err != nil {
			return err
		}
		if o.IsResource() {
			if err := c.infer(rdf.Quad(o, vocab.Type, vocab.Resource, g)); err != nil {
				return err
			}
		}
	}
	// 2
	if _, ok := vocab.ContainerIndex(p); ok {
		err := inferAll(
			rdf.Quad(s, vocab.Member, o, g),
			rdf.Quad(p, vocab.Type, vocab.Resource, g),
			rdf.Quad(p, vocab.Type, vocab.ContainerMembershipProperty, g),
			rdf.Quad(p, vocab.Type, vocab.Property, g),
			rdf.Quad(p, vocab.SubPropertyOf, p, g),
			rdf.Quad(p, vocab.SubPropertyOf, vocab.Member, g),
		)
		if err != nil {
			return err
		}
	}
	// 3
	if storeOriginal {
		if err := c.target.AddExplicit(st); err != nil {
			return err
		}
	}
	// 4
	if p == vocab.Type {
		for _, class := range closures.Classes.Lookup(o) {
			subjectTyped = true
			if err := c.inferType(s, class, g); err != nil {
				return err
			}
		}
	}
	// 5
	for _, q := range closures.Properties.Lookup(p) {
		if err := c.infer(rdf.Quad(s, q, o, g)); err != nil {
			return err
		}
	}
	// 6
	if o.IsResource() {
		for _, class := range closures.Ranges.Lookup(p) {
			objectTyped = true
			if err := c.inferType(o, class, g); err != nil {
				return err
			}
		}
	}
	// 7
	for _, class := range closures.Domains.Lookup(p) {
		subjectTyped = true
		if err := c.inferType(s, class, g); err != nil {
			return err
		}
	}
	// 8
	if subjectTyped {
		if err := c.infer(rdf.Quad(s, vocab.Type, vocab.Resource, g)); err != nil {
			return err
		}
	}
	if objectTyped {
		return c.infer(rdf.Quad(o, vocab.Type, vocab.Resource, g))
	}
	return nil
}
