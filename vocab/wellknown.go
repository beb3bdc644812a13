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

// Package vocab defines the well known RDF and RDFS vocabulary and the axiom
// statements that are needed to bootstrap RDFS inference.
package vocab

import (
	"strconv"

	"github.com/ebay/rdfs/rdf"
)

const (
	// RDFNamespace is the namespace IRI of the RDF vocabulary.
	RDFNamespace = "http://www.w3.org/1999/02/22-rdf-syntax-ns#"
	// RDFSNamespace is the namespace IRI of the RDF Schema vocabulary.
	RDFSNamespace = "http://www.w3.org/2000/01/rdf-schema#"
	// XSDNamespace is the namespace IRI of the XML Schema datatypes.
	XSDNamespace = "http://www.w3.org/2001/XMLSchema#"
	// OWLNamespace is the namespace IRI of the OWL vocabulary. It's only used
	// for parsing prefixed names, no OWL entailment is performed.
	OWLNamespace = "http://www.w3.org/2002/07/owl#"
)

// Terms from the RDF vocabulary.
var (
	Type        = rdf.IRI(RDFNamespace + "type")
	Property    = rdf.IRI(RDFNamespace + "Property")
	Statement   = rdf.IRI(RDFNamespace + "Statement")
	Subject     = rdf.IRI(RDFNamespace + "subject")
	Predicate   = rdf.IRI(RDFNamespace + "predicate")
	Object      = rdf.IRI(RDFNamespace + "object")
	List        = rdf.IRI(RDFNamespace + "List")
	First       = rdf.IRI(RDFNamespace + "first")
	Rest        = rdf.IRI(RDFNamespace + "rest")
	Nil         = rdf.IRI(RDFNamespace + "nil")
	Value       = rdf.IRI(RDFNamespace + "value")
	Alt         = rdf.IRI(RDFNamespace + "Alt")
	Bag         = rdf.IRI(RDFNamespace + "Bag")
	Seq         = rdf.IRI(RDFNamespace + "Seq")
	XMLLiteral  = rdf.IRI(RDFNamespace + "XMLLiteral")
	LangString  = rdf.IRI(RDFNamespace + "langString")
	HTMLLiteral = rdf.IRI(RDFNamespace + "HTML")
)

// Terms from the RDF Schema vocabulary.
var (
	Resource                    = rdf.IRI(RDFSNamespace + "Resource")
	Class                       = rdf.IRI(RDFSNamespace + "Class")
	SubClassOf                  = rdf.IRI(RDFSNamespace + "subClassOf")
	SubPropertyOf               = rdf.IRI(RDFSNamespace + "subPropertyOf")
	Domain                      = rdf.IRI(RDFSNamespace + "domain")
	Range                       = rdf.IRI(RDFSNamespace + "range")
	Literal                     = rdf.IRI(RDFSNamespace + "Literal")
	Datatype                    = rdf.IRI(RDFSNamespace + "Datatype")
	Container                   = rdf.IRI(RDFSNamespace + "Container")
	ContainerMembershipProperty = rdf.IRI(RDFSNamespace + "ContainerMembershipProperty")
	Member                      = rdf.IRI(RDFSNamespace + "member")
	Label                       = rdf.IRI(RDFSNamespace + "label")
	Comment                     = rdf.IRI(RDFSNamespace + "comment")
	SeeAlso                     = rdf.IRI(RDFSNamespace + "seeAlso")
	IsDefinedBy                 = rdf.IRI(RDFSNamespace + "isDefinedBy")
)

// ContainerIndex returns the index of a container membership property. A
// container membership property is an IRI in the RDF namespace whose local
// name is '_' followed by a positive decimal integer, e.g. rdf:_3 has index 3.
// For any other term, including rdf:_0, rdf:_-1 and rdf:_abc, it returns
// false; these are ordinary properties and not an error. Indexes above
// math.MaxInt32 are not membership properties either.
func ContainerIndex(p rdf.Term) (int, bool) {
	if p.Namespace() != RDFNamespace {
		return 0, false
	}
	local := p.LocalName()
	if len(local) < 2 || local[0] != '_' {
		return 0, false
	}
	n, err := strconv.ParseInt(local[1:], 10, 32)
	if err != nil || n < 1 {
		return 0, false
	}
	return int(n), true
}

// ContainerMember returns the container membership property rdf:_n.
func ContainerMember(n int) rdf.Term {
	return rdf.IRI(RDFNamespace + "_" + strconv.Itoa(n))
}

// Prefixes maps the well known prefixes to their namespace IRIs.
func Prefixes() map[string]string {
	return map[string]string{
		"rdf":  RDFNamespace,
		"rdfs": RDFSNamespace,
		"xsd":  XSDNamespace,
		"owl":  OWLNamespace,
	}
}
