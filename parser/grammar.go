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

package parser

import (
	"strings"

	p "github.com/vektah/goparsify"
)

var (
	// line is the parser function for a single statement or pattern line of 3
	// or 4 terms, optionally terminated with a '.'.
	line p.Parser
	// prefix is the parser function for an '@prefix' declaration line.
	prefix p.Parser
)

func init() {
	// If you need to debug what the parser is doing, you can enable goparsify's
	// built in debug support by building with -tags debug. See
	// https://github.com/vektah/goparsify#debugging-parsers

	iri := iriParser().Map(func(n *p.Result) { // <http://example.com/a>
		n.Result = &Entity{Value: n.Token}
	})
	qname := qnameParser().Map(func(n *p.Result) { // rdfs:label
		idx := strings.IndexByte(n.Token, ':')
		n.Result = &QName{Prefix: n.Token[:idx], Local: n.Token[idx+1:]}
	})
	blank := nameParser("_:", "blank node").Map(func(n *p.Result) { // _:b0
		n.Result = &BlankNode{Label: n.Token}
	})
	variable := nameParser("?", "variable").Map(func(n *p.Result) { // ?s
		n.Result = &Variable{Name: n.Token}
	})
	lang := langTagParser()                                   // @en || @en-GB
	datatype := p.Seq("^^", p.Any(iri, qname)).Map(child(1)) // ^^xsd:integer || ^^<http://...>
	literalString := p.Seq(p.StringLit(`"`), p.Maybe(p.Any(lang, datatype))).Map(literalString)
	literalNumber := numberParser()                                       // 42 || -1.5 || 6.02e23
	literalBool := p.Any(p.Exact("true"), p.Exact("false")).Map(literalBool) // true || false

	term := p.Any(iri, blank, variable, literalString, literalNumber, qname, literalBool)
	line = p.Seq(term, term, term, p.Maybe(term), p.Maybe(".")).Map(statementLine)

	prefixName := p.Seq(p.Chars("A-Za-z0-9_\\-", 0), ":").Map(func(n *p.Result) {
		n.Token = n.Child[0].Token
	})
	prefix = p.Seq("@prefix", prefixName, iri, p.Maybe(".")).Map(func(n *p.Result) {
		n.Result = &prefixDecl{name: n.Child[1].Token, iri: n.Child[2].Result.(*Entity).Value}
	})
}

// iriParser parses an absolute IRI enclosed in angle brackets. The Token of the
// result is the IRI without the brackets.
func iriParser() p.Parser {
	return p.NewParser("IRI", func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		in := ps.Get()
		if len(in) == 0 || in[0] != '<' {
			ps.ErrorHere("<")
			return
		}
		end := strings.IndexByte(in[1:], '>')
		if end <= 0 || strings.ContainsAny(in[1:end+1], " \t\r\n\"<") {
			ps.ErrorHere("IRI")
			return
		}
		node.Token = in[1 : end+1]
		ps.Advance(end + 2)
	})
}

// isNameChar returns true for the characters allowed in prefixes, local names,
// blank node labels and variable names.
func isNameChar(c byte) bool {
	switch {
	case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		return true
	case c == '_', c == '-', c == '%', c == '.':
		return true
	}
	return false
}

// scanName returns the length of the run of name characters at the start of
// s. Names may contain '.' but can't end with one, so that a line terminated
// with " ." isn't confused with a name.
func scanName(s string) int {
	n := 0
	for n < len(s) && isNameChar(s[n]) {
		n++
	}
	for n > 0 && s[n-1] == '.' {
		n--
	}
	return n
}

// qnameParser parses a prefixed name such as rdfs:subClassOf. The prefix may
// be empty but the local name may not. The Token of the result is the full
// prefixed name.
func qnameParser() p.Parser {
	return p.NewParser("prefixed name", func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		in := ps.Get()
		prefixLen := scanName(in)
		if prefixLen >= len(in) || in[prefixLen] != ':' {
			ps.ErrorHere("prefixed name")
			return
		}
		localLen := scanName(in[prefixLen+1:])
		if localLen == 0 {
			ps.ErrorHere("prefixed name")
			return
		}
		total := prefixLen + 1 + localLen
		node.Token = in[:total]
		ps.Advance(total)
	})
}

// nameParser parses 'marker' followed by a name, as used for blank nodes and
// variables. The Token of the result is the name without the marker.
func nameParser(marker, description string) p.Parser {
	return p.NewParser(description, func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		in := ps.Get()
		if !strings.HasPrefix(in, marker) {
			ps.ErrorHere(description)
			return
		}
		n := scanName(in[len(marker):])
		if n == 0 {
			ps.ErrorHere(description)
			return
		}
		node.Token = in[len(marker) : len(marker)+n]
		ps.Advance(len(marker) + n)
	})
}

// langTagParser parses a language tag such as @en or @en-GB directly after a
// string literal. The Token of the result is the tag without the '@'.
func langTagParser() p.Parser {
	return p.NewParser("language tag", func(ps *p.State, node *p.Result) {
		in := ps.Get()
		if len(in) < 2 || in[0] != '@' {
			ps.ErrorHere("@")
			return
		}
		n := 1
		for n < len(in) && (isNameChar(in[n]) && in[n] != '.' && in[n] != '%') {
			n++
		}
		if n == 1 {
			ps.ErrorHere("language tag")
			return
		}
		node.Token = in[1:n]
		node.Result = node.Token
		ps.Advance(n)
	})
}

// numberParser parses an unquoted integer, decimal or double, keeping its
// lexical form.
func numberParser() p.Parser {
	return p.NewParser("number", func(ps *p.State, node *p.Result) {
		ps.WS(ps)
		in := ps.Get()
		pos := 0
		digits := func() int {
			start := pos
			for pos < len(in) && in[pos] >= '0' && in[pos] <= '9' {
				pos++
			}
			return pos - start
		}
		if pos < len(in) && (in[pos] == '-' || in[pos] == '+') {
			pos++
		}
		res := LiteralNumber{}
		intDigits := digits()
		if pos+1 < len(in) && in[pos] == '.' && in[pos+1] >= '0' && in[pos+1] <= '9' {
			pos++
			digits()
			res.Decimal = true
		}
		if intDigits == 0 && !res.Decimal {
			ps.ErrorHere("number")
			return
		}
		if pos < len(in) && (in[pos] == 'e' || in[pos] == 'E') {
			mark := pos
			pos++
			if pos < len(in) && (in[pos] == '-' || in[pos] == '+') {
				pos++
			}
			if digits() == 0 {
				pos = mark
			} else {
				res.Exponent = true
			}
		}
		// a number must not run straight into a name, e.g. 3rd
		if pos < len(in) && (isNameChar(in[pos]) || in[pos] == ':') && in[pos] != '.' {
			ps.ErrorHere("number")
			return
		}
		res.Lexical = in[:pos]
		node.Token = res.Lexical
		node.Result = &res
		ps.Advance(pos)
	})
}

func child(idx int) func(*p.Result) {
	return func(n *p.Result) {
		n.Result = n.Child[idx].Result
	}
}

func literalString(n *p.Result) {
	res := LiteralString{Value: n.Child[0].Token}
	switch t := n.Child[1].Result.(type) {
	case nil:
	case string:
		res.Lang = t
	case Term:
		res.Datatype = t
	}
	n.Result = &res
}

func literalBool(n *p.Result) {
	n.Result = &LiteralBool{Value: n.Token == "true"}
}

func statementLine(n *p.Result) {
	res := Line{
		Subject:   n.Child[0].Result.(Term),
		Predicate: n.Child[1].Result.(Term),
		Object:    n.Child[2].Result.(Term),
	}
	if g, ok := n.Child[3].Result.(Term); ok {
		res.Graph = g
	}
	n.Result = &res
}
