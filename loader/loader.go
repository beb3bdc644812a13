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

// Package loader reads statements from documents in the supported formats.
package loader

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cayleygraph/quad"
	"github.com/cayleygraph/quad/nquads"
	"github.com/ebay/rdfs/parser"
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/util/parallel"
	"github.com/ebay/rdfs/vocab"
	log "github.com/sirupsen/logrus"
)

// Format identifies a document format.
type Format string

// Supported formats.
const (
	// TSV is the line format of the parser package.
	TSV Format = "tsv"
	// NQuads is W3C N-Quads.
	NQuads Format = "nquads"
	// NTriples is W3C N-Triples, which is N-Quads without graph labels.
	NTriples Format = "ntriples"
)

// ParseFormat returns the Format named 's'.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case TSV, NQuads, NTriples:
		return f, nil
	}
	return "", fmt.Errorf("loader: unknown format %q, expecting %q, %q, or %q",
		s, TSV, NQuads, NTriples)
}

// FormatOf returns the Format for the file name's extension: .tsv, .nq, or
// .nt.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tsv":
		return TSV, nil
	case ".nq":
		return NQuads, nil
	case ".nt":
		return NTriples, nil
	}
	return "", fmt.Errorf("loader: can't infer the format of %v from its extension", path)
}

// Load reads all the statements from 'r'.
func Load(r io.Reader, format Format) ([]rdf.Statement, error) {
	switch format {
	case TSV:
		input, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		return parser.ParseStatements(string(input), vocab.Prefixes())
	case NQuads, NTriples:
		return loadQuads(r, format)
	}
	return nil, fmt.Errorf("loader: unknown format %q", format)
}

func loadQuads(r io.Reader, format Format) ([]rdf.Statement, error) {
	reader := nquads.NewReader(r, false)
	var res []rdf.Statement
	for i := 1; ; i++ {
		q, err := reader.ReadQuad()
		if err == io.EOF {
			return res, nil
		}
		if err != nil {
			return nil, fmt.Errorf("loader: statement %d: %v", i, err)
		}
		if format == NTriples && q.Label != nil {
			return nil, fmt.Errorf("loader: statement %d: graph labels aren't allowed in N-Triples", i)
		}
		st, err := fromQuad(q)
		if err != nil {
			return nil, fmt.Errorf("loader: statement %d: %w", i, err)
		}
		res = append(res, st)
	}
}

// fromQuad converts a parsed quad to a valid Statement.
func fromQuad(q quad.Quad) (rdf.Statement, error) {
	var terms [4]rdf.Term
	for i, v := range []quad.Value{q.Subject, q.Predicate, q.Object, q.Label} {
		t, err := fromValue(v)
		if err != nil {
			return rdf.Statement{}, err
		}
		terms[i] = t
	}
	st := rdf.Quad(terms[0], terms[1], terms[2], terms[3])
	return st, st.Validate()
}

// fromValue converts a quad value to a Term. A nil value is the zero Term.
func fromValue(v quad.Value) (rdf.Term, error) {
	switch v := v.(type) {
	case nil:
		return rdf.Term{}, nil
	case quad.IRI:
		return rdf.IRI(string(v)), nil
	case quad.BNode:
		return rdf.Blank(string(v)), nil
	case quad.String:
		return rdf.Literal(string(v)), nil
	case quad.LangString:
		return rdf.LangLiteral(string(v.Value), v.Lang), nil
	case quad.TypedString:
		return rdf.TypedLiteral(string(v.Value), string(v.Type)), nil
	case quad.TypedStringer:
		ts := v.TypedString()
		return rdf.TypedLiteral(string(ts.Value), string(ts.Type)), nil
	}
	return rdf.Term{}, fmt.Errorf("unsupported value %v (%T)", v, v)
}

// LoadFile reads all the statements from the file at 'path'. If format is
// empty, it's inferred from the file's extension.
func LoadFile(path string, format Format) ([]rdf.Statement, error) {
	if format == "" {
		var err error
		format, err = FormatOf(path)
		if err != nil {
			return nil, err
		}
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	stmts, err := Load(f, format)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", path, err)
	}
	log.WithFields(log.Fields{
		"path":       path,
		"format":     format,
		"statements": len(stmts),
	}).Debug("Loaded file")
	return stmts, nil
}

// LoadFiles reads the files concurrently and returns their statements
// concatenated in the order of 'paths'. If format is empty, each file's format
// is inferred from its extension.
func LoadFiles(ctx context.Context, paths []string, format Format) ([]rdf.Statement, error) {
	results := make([][]rdf.Statement, len(paths))
	err := parallel.InvokeN(ctx, len(paths), func(ctx context.Context, i int) error {
		stmts, err := LoadFile(paths[i], format)
		results[i] = stmts
		return err
	})
	if err != nil {
		return nil, err
	}
	var res []rdf.Statement
	for _, stmts := range results {
		res = append(res, stmts...)
	}
	return res, nil
}
