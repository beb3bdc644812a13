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
	"sort"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/vocab"
)

// A Closure maps each key to a set of terms. Closures are immutable once built
// and safe for concurrent use.
type Closure struct {
	// sets[k] is the set of terms for key k.
	sets map[rdf.Term]map[rdf.Term]struct{}
	// sorted[k] holds the same terms as sets[k], in rdf.Term order.
	sorted map[rdf.Term][]rdf.Term
	// The keys of sets, in rdf.Term order.
	keys []rdf.Term
	// The total number of terms across all the sets.
	size int
}

// newClosure freezes the relation into a Closure.
func newClosure(r relation) *Closure {
	c := &Closure{
		sets:   make(map[rdf.Term]map[rdf.Term]struct{}, len(r)),
		sorted: make(map[rdf.Term][]rdf.Term, len(r)),
		keys:   make([]rdf.Term, 0, len(r)),
	}
	for k, set := range r {
		frozen := make(map[rdf.Term]struct{}, len(set))
		list := make([]rdf.Term, 0, len(set))
		for t := range set {
			frozen[t] = struct{}{}
			list = append(list, t)
		}
		sortTerms(list)
		c.sets[k] = frozen
		c.sorted[k] = list
		c.keys = append(c.keys, k)
		c.size += len(list)
	}
	sortTerms(c.keys)
	return c
}

func sortTerms(terms []rdf.Term) {
	sort.Slice(terms, func(i, j int) bool {
		return terms[i].Less(terms[j])
	})
}

// Lookup returns the set of terms for key 't' in rdf.Term order. It returns
// nil if 't' is not a key. The caller must not modify the returned slice.
func (c *Closure) Lookup(t rdf.Term) []rdf.Term {
	if c == nil {
		return nil
	}
	return c.sorted[t]
}

// Has returns true if 't' is a key, even one with an empty set.
func (c *Closure) Has(t rdf.Term) bool {
	if c == nil {
		return false
	}
	_, exists := c.sets[t]
	return exists
}

// Contains returns true if 'b' is in the set for key 'a'.
func (c *Closure) Contains(a, b rdf.Term) bool {
	if c == nil {
		return false
	}
	_, exists := c.sets[a][b]
	return exists
}

// Keys returns the keys in rdf.Term order. The caller must not modify the
// returned slice.
func (c *Closure) Keys() []rdf.Term {
	if c == nil {
		return nil
	}
	return c.keys
}

// Len returns the total number of terms across all the sets.
func (c *Closure) Len() int {
	if c == nil {
		return 0
	}
	return c.size
}

// Closures are the four tables the entailment engine works from.
type Closures struct {
	// Classes maps each class to its superclasses, including itself.
	Classes *Closure
	// Properties maps each property to its superproperties, including itself.
	Properties *Closure
	// Ranges maps each property to the classes its objects are implied to be
	// instances of.
	Ranges *Closure
	// Domains maps each property to the classes its subjects are implied to be
	// instances of.
	Domains *Closure
}

// Statements returns the class and property tables written out as statements:
// (A, subClassOf, B) for every B in Classes[A] and (P, subPropertyOf, Q) for
// every Q in Properties[P]. The statements are in the default graph and in
// table order.
func (c *Closures) Statements() []rdf.Statement {
	res := make([]rdf.Statement, 0, c.Classes.Len()+c.Properties.Len())
	for _, a := range c.Classes.Keys() {
		if !a.IsResource() {
			continue
		}
		for _, b := range c.Classes.Lookup(a) {
			res = append(res, rdf.Triple(a, vocab.SubClassOf, b))
		}
	}
	for _, p := range c.Properties.Keys() {
		if !p.IsResource() {
			continue
		}
		for _, q := range c.Properties.Lookup(p) {
			res = append(res, rdf.Triple(p, vocab.SubPropertyOf, q))
		}
	}
	return res
}
