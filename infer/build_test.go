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
	"testing"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ex(name string) rdf.Term {
	return rdf.IRI("http://example.com/" + name)
}

func subClassOf(a, b string) rdf.Statement {
	return rdf.Triple(ex(a), vocab.SubClassOf, ex(b))
}

func subPropertyOf(p, q string) rdf.Statement {
	return rdf.Triple(ex(p), vocab.SubPropertyOf, ex(q))
}

func Test_ClassClosureChain(t *testing.T) {
	c := BuildClosures([]rdf.Statement{
		subClassOf("Cat", "Animal"),
		subClassOf("Animal", "Thing"),
	})
	assert.Equal(t, []rdf.Term{ex("Animal"), ex("Cat"), ex("Thing")}, c.Classes.Lookup(ex("Cat")))
	assert.Equal(t, []rdf.Term{ex("Animal"), ex("Thing")}, c.Classes.Lookup(ex("Animal")))
	assert.Equal(t, []rdf.Term{ex("Thing")}, c.Classes.Lookup(ex("Thing")))
	assert.Equal(t, []rdf.Term{ex("Animal"), ex("Cat"), ex("Thing")}, c.Classes.Keys())
	assert.Equal(t, 6, c.Classes.Len())
	assert.True(t, c.Classes.Contains(ex("Cat"), ex("Thing")))
	assert.False(t, c.Classes.Contains(ex("Thing"), ex("Cat")))
	assert.False(t, c.Classes.Has(ex("Dog")))
	assert.Nil(t, c.Classes.Lookup(ex("Dog")))
}

func Test_ClosureCycle(t *testing.T) {
	c := BuildClosures([]rdf.Statement{
		subClassOf("A", "B"),
		subClassOf("B", "C"),
		subClassOf("C", "A"),
	})
	all := []rdf.Term{ex("A"), ex("B"), ex("C")}
	for _, k := range all {
		assert.Equal(t, all, c.Classes.Lookup(k))
	}
}

// assertClosed checks that every key of c is in its own set and that the sets
// are transitively closed.
func assertClosed(t *testing.T, c *Closure) {
	for _, a := range c.Keys() {
		assert.True(t, c.Contains(a, a), "%v should be reflexive", a)
		for _, b := range c.Lookup(a) {
			for _, x := range c.Lookup(b) {
				assert.True(t, c.Contains(a, x), "%v -> %v -> %v not closed", a, b, x)
			}
		}
	}
}

func Test_AxiomClosuresAreClosed(t *testing.T) {
	axioms, err := vocab.Axioms()
	require.NoError(t, err)
	c := BuildClosures(append(axioms,
		subClassOf("Cat", "Animal"),
		subClassOf("Animal", "Thing"),
		subPropertyOf("hasParent", "hasRelative"),
	))
	assertClosed(t, c.Classes)
	assertClosed(t, c.Properties)
	assert.True(t, c.Classes.Contains(vocab.ContainerMembershipProperty, vocab.Property))
	assert.True(t, c.Properties.Contains(vocab.IsDefinedBy, vocab.SeeAlso))
	assert.True(t, c.Ranges.Contains(vocab.Type, vocab.Class))
	assert.True(t, c.Ranges.Contains(vocab.Type, vocab.Resource))
	assert.True(t, c.Domains.Contains(vocab.SubClassOf, vocab.Class))
}

func Test_TypedPropertyRegistered(t *testing.T) {
	c := BuildClosures([]rdf.Statement{
		rdf.Triple(ex("name"), vocab.Type, vocab.Property),
	})
	assert.Equal(t, []rdf.Term{ex("name")}, c.Properties.Lookup(ex("name")))
	assert.True(t, c.Ranges.Has(ex("name")))
	assert.Empty(t, c.Ranges.Lookup(ex("name")))
	assert.True(t, c.Domains.Has(ex("name")))
}

func Test_RangeDomainClosure(t *testing.T) {
	c := BuildClosures([]rdf.Statement{
		subPropertyOf("hasParent", "hasRelative"),
		rdf.Triple(ex("hasRelative"), vocab.Range, ex("Person")),
		rdf.Triple(ex("hasRelative"), vocab.Domain, ex("Person")),
		rdf.Triple(ex("hasParent"), vocab.Domain, ex("Child")),
		subClassOf("Person", "Agent"),
	})
	assert.Equal(t, []rdf.Term{ex("Agent"), ex("Person")}, c.Ranges.Lookup(ex("hasParent")))
	assert.Equal(t, []rdf.Term{ex("Agent"), ex("Person")}, c.Ranges.Lookup(ex("hasRelative")))
	assert.Equal(t, []rdf.Term{ex("Agent"), ex("Child"), ex("Person")}, c.Domains.Lookup(ex("hasParent")))
	assert.Equal(t, []rdf.Term{ex("Agent"), ex("Person")}, c.Domains.Lookup(ex("hasRelative")))
	// range and domain targets get class entries
	assert.Equal(t, []rdf.Term{ex("Child")}, c.Classes.Lookup(ex("Child")))
	assert.True(t, c.Classes.Has(ex("Person")))
}

func Test_BuildOrderIndependent(t *testing.T) {
	stmts := []rdf.Statement{
		subClassOf("Cat", "Animal"),
		subClassOf("Animal", "Thing"),
		subPropertyOf("hasParent", "hasRelative"),
		rdf.Triple(ex("hasRelative"), vocab.Range, ex("Animal")),
		rdf.Triple(ex("owns"), vocab.Type, vocab.Property),
	}
	exp := BuildClosures(stmts).Statements()
	reversed := make([]rdf.Statement, len(stmts))
	for i, st := range stmts {
		reversed[len(stmts)-1-i] = st
	}
	assert.Equal(t, exp, BuildClosures(reversed).Statements())
}

func Test_ClosuresStatements(t *testing.T) {
	c := BuildClosures([]rdf.Statement{
		subClassOf("Cat", "Animal"),
		subPropertyOf("hasParent", "hasRelative"),
	})
	assert.Equal(t, []rdf.Statement{
		subClassOf("Animal", "Animal"),
		subClassOf("Cat", "Animal"),
		subClassOf("Cat", "Cat"),
		subPropertyOf("hasParent", "hasParent"),
		subPropertyOf("hasParent", "hasRelative"),
		subPropertyOf("hasRelative", "hasRelative"),
	}, c.Statements())
}

func Test_Fixpoint(t *testing.T) {
	counts := []int{3, 5, 6, 6, 7}
	i := 0
	passes := fixpoint(func() int {
		n := counts[i]
		i++
		return n
	})
	assert.Equal(t, 4, passes)
}

func Test_NilClosure(t *testing.T) {
	var c *Closure
	assert.Nil(t, c.Lookup(ex("A")))
	assert.False(t, c.Has(ex("A")))
	assert.False(t, c.Contains(ex("A"), ex("A")))
	assert.Equal(t, 0, c.Len())
	assert.Nil(t, c.Keys())
}

func Test_Schema(t *testing.T) {
	s := NewSchema()
	assert.True(t, s.Collect(subClassOf("Cat", "Animal")))
	assert.False(t, s.Collect(subClassOf("Cat", "Animal")))
	assert.False(t, s.Collect(rdf.Quad(ex("Cat"), vocab.SubClassOf, ex("Animal"), ex("g"))),
		"graph should not matter")
	assert.True(t, s.Collect(rdf.Triple(ex("name"), vocab.Type, vocab.Property)))
	assert.True(t, s.Collect(rdf.Triple(ex("name"), vocab.Range, vocab.Literal)))
	assert.True(t, s.Collect(rdf.Triple(ex("name"), vocab.Domain, ex("Animal"))))
	assert.True(t, s.Collect(subPropertyOf("nick", "name")))
	assert.False(t, s.Collect(rdf.Triple(ex("felix"), vocab.Type, ex("Cat"))))
	assert.False(t, s.Collect(rdf.Triple(ex("felix"), ex("name"), rdf.Literal("Felix"))))
	assert.Equal(t, 5, s.Len())
	c := s.Build()
	assert.True(t, c.Classes.Contains(ex("Cat"), ex("Animal")))
	assert.True(t, c.Properties.Contains(ex("nick"), ex("name")))
	assert.Len(t, s.Statements(), 5)
	s.Reset()
	assert.Equal(t, 0, s.Len())
}
