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

// termSet is a mutable set of terms.
type termSet map[rdf.Term]struct{}

// relation is the mutable form of a Closure used while building.
type relation map[rdf.Term]termSet

// register ensures 'k' is a key in the relation and returns its set.
func (r relation) register(k rdf.Term) termSet {
	set, exists := r[k]
	if !exists {
		set = make(termSet)
		r[k] = set
	}
	return set
}

// add registers 'k' and adds 'v' to its set.
func (r relation) add(k, v rdf.Term) {
	r.register(k)[v] = struct{}{}
}

// reflexive adds each key to its own set.
func (r relation) reflexive() {
	for k, set := range r {
		set[k] = struct{}{}
	}
}

// size returns the total number of terms across all the sets.
func (r relation) size() int {
	n := 0
	for _, set := range r {
		n += len(set)
	}
	return n
}

// keys returns the keys of the relation, so that the relation can be modified
// while iterating over them.
func (r relation) keys() []rdf.Term {
	keys := make([]rdf.Term, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	return keys
}

// members returns the terms in the set for 'k'.
func (r relation) members(k rdf.Term) []rdf.Term {
	set := r[k]
	res := make([]rdf.Term, 0, len(set))
	for t := range set {
		res = append(res, t)
	}
	return res
}

// transitivePass unions into every set the sets of each of its members, and
// returns the total element count afterwards.
func (r relation) transitivePass() int {
	for _, a := range r.keys() {
		set := r[a]
		for _, b := range r.members(a) {
			for c := range r[b] {
				set[c] = struct{}{}
			}
		}
	}
	return r.size()
}

// expandPass is one round of range or domain propagation: each property's set
// gains the sets of its superproperties, then the superclasses of every class
// in it. It returns the total element count afterwards.
func (r relation) expandPass(properties, classes relation) int {
	for _, p := range r.keys() {
		set := r[p]
		for q := range properties[p] {
			for c := range r[q] {
				set[c] = struct{}{}
			}
		}
		for _, c := range r.members(p) {
			for d := range classes[c] {
				set[d] = struct{}{}
			}
		}
	}
	return r.size()
}

// fixpoint calls pass until the element count it returns stops changing, and
// returns the number of passes made. Every pass only adds terms that already
// appear in the relations, so the count is bounded and this terminates.
func fixpoint(pass func() int) int {
	passes := 0
	prev := -1
	for {
		n := pass()
		passes++
		if n == prev {
			return passes
		}
		prev = n
	}
}

// BuildClosures computes the four closure tables from the given schema
// statements. Statements that aren't schema-shaped are ignored. The result
// doesn't depend on the order of the statements.
func BuildClosures(statements []rdf.Statement) *Closures {
	classes := make(relation)
	properties := make(relation)
	ranges := make(relation)
	domains := make(relation)
	for _, st := range statements {
		switch {
		case st.Predicate == vocab.SubClassOf:
			classes.add(st.Subject, st.Object)
			classes.register(st.Object)
		case st.Predicate == vocab.SubPropertyOf:
			properties.add(st.Subject, st.Object)
			properties.register(st.Object)
		case st.Predicate == vocab.Type && st.Object == vocab.Property:
			properties.register(st.Subject)
		case st.Predicate == vocab.Range:
			ranges.add(st.Subject, st.Object)
		case st.Predicate == vocab.Domain:
			domains.add(st.Subject, st.Object)
		}
	}
	// Every property needs range and domain entries, and every range or domain
	// target needs a class entry so that it can be expanded.
	for p := range properties {
		ranges.register(p)
		domains.register(p)
	}
	for _, r := range []relation{ranges, domains} {
		for _, set := range r {
			for c := range set {
				classes.register(c)
			}
		}
	}
	classes.reflexive()
	properties.reflexive()
	fixpoint(classes.transitivePass)
	fixpoint(properties.transitivePass)
	fixpoint(func() int { return ranges.expandPass(properties, classes) })
	fixpoint(func() int { return domains.expandPass(properties, classes) })
	return &Closures{
		Classes:    newClosure(classes),
		Properties: newClosure(properties),
		Ranges:     newClosure(ranges),
		Domains:    newClosure(domains),
	}
}
