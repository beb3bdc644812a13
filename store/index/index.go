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

// Package index provides an ordered, in-memory set of statements that can be
// searched by pattern.
package index

import (
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/google/btree"
)

// Index is a set of statements kept in two orders: subject, predicate, object,
// graph (SPO) and predicate, object, subject, graph (POS). Patterns with a
// bound subject are answered from the SPO order, patterns with an unbound
// subject but a bound predicate from the POS order, and everything else by
// scanning. It is not safe for concurrent use.
type Index struct {
	// Each item in spo has type spoItem.
	spo *btree.BTree
	// Each item in pos has type posItem.
	pos *btree.BTree
}

// spoItem values are stored in the spo btree.
type spoItem rdf.Statement

// Less is needed to order the btree.
func (item spoItem) Less(other btree.Item) bool {
	return rdf.Statement(item).Less(rdf.Statement(other.(spoItem)))
}

// posItem values are stored in the pos btree.
type posItem rdf.Statement

// Less is needed to order the btree.
func (item posItem) Less(other btree.Item) bool {
	a, b := rdf.Statement(item), rdf.Statement(other.(posItem))
	if c := a.Predicate.Compare(b.Predicate); c != 0 {
		return c < 0
	}
	if c := a.Object.Compare(b.Object); c != 0 {
		return c < 0
	}
	if c := a.Subject.Compare(b.Subject); c != 0 {
		return c < 0
	}
	return a.Graph.Less(b.Graph)
}

// New returns a new empty Index.
func New() *Index {
	return &Index{
		spo: btree.New(16),
		pos: btree.New(16),
	}
}

// Add inserts the statement into the index. It returns true if the statement
// was added, or false if the index already held it.
func (x *Index) Add(st rdf.Statement) bool {
	if x.spo.ReplaceOrInsert(spoItem(st)) != nil {
		return false
	}
	x.pos.ReplaceOrInsert(posItem(st))
	return true
}

// Delete removes the statement from the index. It returns true if the index
// held the statement.
func (x *Index) Delete(st rdf.Statement) bool {
	if x.spo.Delete(spoItem(st)) == nil {
		return false
	}
	x.pos.Delete(posItem(st))
	return true
}

// Contains returns true if the index holds the statement.
func (x *Index) Contains(st rdf.Statement) bool {
	return x.spo.Has(spoItem(st))
}

// Len returns the number of statements in the index.
func (x *Index) Len() int {
	return x.spo.Len()
}

// Clear removes all the statements from the index.
func (x *Index) Clear() {
	x.spo.Clear(false)
	x.pos.Clear(false)
}

// Match calls emit with every statement matching 'pattern', in SPO order when
// the subject is bound and in POS order otherwise. It stops and returns the
// first error from emit, except that store.ErrHalt stops the enumeration
// without an error.
func (x *Index) Match(pattern rdf.Pattern, emit func(rdf.Statement) error) error {
	var err error
	visit := func(st rdf.Statement) bool {
		if !pattern.Matches(st) {
			return true
		}
		err = emit(st)
		return err == nil
	}
	switch {
	case !pattern.Subject.IsZero():
		pivot := rdf.Statement{Subject: pattern.Subject, Predicate: pattern.Predicate}
		x.spo.AscendGreaterOrEqual(spoItem(pivot), func(i btree.Item) bool {
			st := rdf.Statement(i.(spoItem))
			if st.Subject != pattern.Subject {
				return false
			}
			if !pattern.Predicate.IsZero() && st.Predicate != pattern.Predicate {
				return false
			}
			return visit(st)
		})
	case !pattern.Predicate.IsZero():
		pivot := rdf.Statement{Predicate: pattern.Predicate, Object: pattern.Object}
		x.pos.AscendGreaterOrEqual(posItem(pivot), func(i btree.Item) bool {
			st := rdf.Statement(i.(posItem))
			if st.Predicate != pattern.Predicate {
				return false
			}
			if !pattern.Object.IsZero() && st.Object != pattern.Object {
				return false
			}
			return visit(st)
		})
	default:
		x.spo.Ascend(func(i btree.Item) bool {
			return visit(rdf.Statement(i.(spoItem)))
		})
	}
	if err == store.ErrHalt {
		return nil
	}
	return err
}

// Statements returns all the statements in the index in SPO order.
func (x *Index) Statements() []rdf.Statement {
	res := make([]rdf.Statement, 0, x.Len())
	x.spo.Ascend(func(i btree.Item) bool {
		res = append(res, rdf.Statement(i.(spoItem)))
		return true
	})
	return res
}
