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

// Package parser parses statements and statement patterns written one per line
// as whitespace separated terms.
//
// Each line has a subject, predicate and object, and optionally a graph,
// separated by spaces or tabs and optionally terminated with a '.'. Terms may
// be IRIs in angle brackets, prefixed names, blank nodes, quoted strings with an
// optional language tag or datatype, bare numbers, true and false, and in
// patterns, variables. Blank lines and lines starting with '#' are ignored, and
// '@prefix name: <iri> .' lines declare additional prefixes.
//
//	@prefix ex: <http://example.com/> .
//	ex:Cat    rdfs:subClassOf    ex:Animal
//	ex:felix  rdf:type           ex:Cat         <http://example.com/graph1> .
//	ex:felix  rdfs:label         "Felix"@en
//	ex:felix  ex:age             4
package parser

import (
	"fmt"
	"strings"

	"github.com/ebay/rdfs/rdf"
	p "github.com/vektah/goparsify"
)

const (
	xsdInteger = "http://www.w3.org/2001/XMLSchema#integer"
	xsdDecimal = "http://www.w3.org/2001/XMLSchema#decimal"
	xsdDouble  = "http://www.w3.org/2001/XMLSchema#double"
	xsdBoolean = "http://www.w3.org/2001/XMLSchema#boolean"
)

// ParseLines parses each non blank, non comment line of 'input' into a Line.
// Prefix declarations are applied to 'prefixes', which is updated in place
// and may be nil. Terms are not resolved.
func ParseLines(input string, prefixes map[string]string) ([]*Line, error) {
	var lines []*Line
	for i, text := range strings.Split(input, "\n") {
		text = strings.TrimSpace(text)
		if text == "" || text[0] == '#' {
			continue
		}
		if strings.HasPrefix(text, "@prefix") {
			res, err := p.Run(prefix, text)
			if err != nil {
				return nil, fmt.Errorf("parser: line %d: invalid prefix declaration: %v", i+1, err)
			}
			if prefixes != nil {
				decl := res.(*prefixDecl)
				prefixes[decl.name] = decl.iri
			}
			continue
		}
		res, err := p.Run(line, text)
		if err != nil {
			return nil, fmt.Errorf("parser: line %d: %v", i+1, err)
		}
		lines = append(lines, res.(*Line))
	}
	return lines, nil
}

// ParseStatements parses 'input' into statements, expanding prefixed names
// using 'prefixes' and any '@prefix' declarations in the input. Variables are
// not allowed, and each statement must be valid according to
// rdf.Statement.Validate.
func ParseStatements(input string, prefixes map[string]string) ([]rdf.Statement, error) {
	prefixes = copyPrefixes(prefixes)
	lines, err := ParseLines(input, prefixes)
	if err != nil {
		return nil, err
	}
	statements := make([]rdf.Statement, 0, len(lines))
	for i, line := range lines {
		terms, err := resolveLine(line, prefixes)
		if err != nil {
			return nil, fmt.Errorf("parser: statement %d: %v", i+1, err)
		}
		for _, term := range terms {
			if term.isVar {
				return nil, fmt.Errorf("parser: statement %d: variables aren't allowed in statements: %v",
					i+1, line)
			}
		}
		st := rdf.Quad(terms[0].term, terms[1].term, terms[2].term, terms[3].term)
		if err := st.Validate(); err != nil {
			return nil, fmt.Errorf("parser: statement %d: %v", i+1, err)
		}
		statements = append(statements, st)
	}
	return statements, nil
}

// ParsePattern parses a single line into a pattern. Variables become wildcards.
// A pattern with 3 terms matches statements in any graph.
func ParsePattern(input string, prefixes map[string]string) (rdf.Pattern, error) {
	prefixes = copyPrefixes(prefixes)
	lines, err := ParseLines(input, prefixes)
	if err != nil {
		return rdf.Pattern{}, err
	}
	if len(lines) != 1 {
		return rdf.Pattern{}, fmt.Errorf("parser: expecting exactly 1 pattern, got %d", len(lines))
	}
	terms, err := resolveLine(lines[0], prefixes)
	if err != nil {
		return rdf.Pattern{}, fmt.Errorf("parser: pattern: %v", err)
	}
	return rdf.Pattern{
		Subject:   terms[0].term,
		Predicate: terms[1].term,
		Object:    terms[2].term,
		Graph:     terms[3].term,
	}, nil
}

func copyPrefixes(prefixes map[string]string) map[string]string {
	res := make(map[string]string, len(prefixes))
	for k, v := range prefixes {
		res[k] = v
	}
	return res
}

// resolvedTerm is the result of resolving a parsed Term. Variables resolve to
// the zero rdf.Term with isVar set.
type resolvedTerm struct {
	term  rdf.Term
	isVar bool
}

// resolveLine resolves the 4 terms of line, a missing graph resolves to the
// zero Term.
func resolveLine(line *Line, prefixes map[string]string) ([4]resolvedTerm, error) {
	var res [4]resolvedTerm
	for i, term := range []Term{line.Subject, line.Predicate, line.Object, line.Graph} {
		if term == nil {
			continue
		}
		if v, ok := term.(*Variable); ok {
			if v.Name == "" {
				return res, fmt.Errorf("empty variable name")
			}
			res[i].isVar = true
			continue
		}
		t, err := Resolve(term, prefixes)
		if err != nil {
			return res, err
		}
		res[i].term = t
	}
	return res, nil
}

// Resolve converts a parsed term into an rdf.Term, expanding prefixed names
// using 'prefixes'. Variables can't be resolved.
func Resolve(term Term, prefixes map[string]string) (rdf.Term, error) {
	switch t := term.(type) {
	case *Entity:
		return rdf.IRI(t.Value), nil
	case *QName:
		ns, found := prefixes[t.Prefix]
		if !found {
			return rdf.Term{}, fmt.Errorf("undeclared prefix '%s' in %v", t.Prefix, t)
		}
		return rdf.IRI(ns + t.Local), nil
	case *BlankNode:
		return rdf.Blank(t.Label), nil
	case *LiteralString:
		switch {
		case t.Lang != "":
			return rdf.LangLiteral(t.Value, t.Lang), nil
		case t.Datatype != nil:
			dt, err := Resolve(t.Datatype, prefixes)
			if err != nil {
				return rdf.Term{}, err
			}
			return rdf.TypedLiteral(t.Value, dt.Value), nil
		}
		return rdf.Literal(t.Value), nil
	case *LiteralNumber:
		switch {
		case t.Exponent:
			return rdf.TypedLiteral(t.Lexical, xsdDouble), nil
		case t.Decimal:
			return rdf.TypedLiteral(t.Lexical, xsdDecimal), nil
		}
		return rdf.TypedLiteral(t.Lexical, xsdInteger), nil
	case *LiteralBool:
		return rdf.TypedLiteral(t.String(), xsdBoolean), nil
	default:
		return rdf.Term{}, fmt.Errorf("unable to resolve term %v (%T)", term, term)
	}
}
