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

package loader

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/vocab"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ex(name string) rdf.Term {
	return rdf.IRI("http://example.com/" + name)
}

func Test_ParseFormat(t *testing.T) {
	for _, s := range []string{"tsv", "NQuads", "ntriples"} {
		_, err := ParseFormat(s)
		assert.NoError(t, err, s)
	}
	_, err := ParseFormat("turtle")
	assert.EqualError(t, err, `loader: unknown format "turtle", expecting "tsv", "nquads", or "ntriples"`)
}

func Test_FormatOf(t *testing.T) {
	tests := []struct {
		path string
		exp  Format
	}{
		{"data/schema.tsv", TSV},
		{"data.nq", NQuads},
		{"DATA.NT", NTriples},
	}
	for _, test := range tests {
		f, err := FormatOf(test.path)
		assert.NoError(t, err)
		assert.Equal(t, test.exp, f, test.path)
	}
	_, err := FormatOf("data.ttl")
	assert.Error(t, err)
}

func Test_LoadTSV(t *testing.T) {
	input := `
# pets
@prefix ex: <http://example.com/> .
ex:Cat   rdfs:subClassOf  ex:Animal
ex:felix rdf:type         ex:Cat     ex:g1 .
ex:felix rdfs:label       "Felix"@en
`
	stmts, err := Load(strings.NewReader(input), TSV)
	require.NoError(t, err)
	assert.Equal(t, []rdf.Statement{
		rdf.Triple(ex("Cat"), vocab.SubClassOf, ex("Animal")),
		rdf.Quad(ex("felix"), vocab.Type, ex("Cat"), ex("g1")),
		rdf.Triple(ex("felix"), vocab.Label, rdf.LangLiteral("Felix", "en")),
	}, stmts)

	_, err = Load(strings.NewReader(`"felix" rdf:type ex:Cat`), TSV)
	assert.Error(t, err)
}

func Test_LoadNQuads(t *testing.T) {
	input := `<http://example.com/felix> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.com/Cat> <http://example.com/g1> .
_:b1 <http://www.w3.org/2000/01/rdf-schema#label> "Felix"@en .
<http://example.com/felix> <http://example.com/nick> "Fee" .
<http://example.com/felix> <http://example.com/code> "x1"^^<http://example.com/Code> .
`
	stmts, err := Load(strings.NewReader(input), NQuads)
	require.NoError(t, err)
	assert.Equal(t, []rdf.Statement{
		rdf.Quad(ex("felix"), vocab.Type, ex("Cat"), ex("g1")),
		rdf.Triple(rdf.Blank("b1"), vocab.Label, rdf.LangLiteral("Felix", "en")),
		rdf.Triple(ex("felix"), ex("nick"), rdf.Literal("Fee")),
		rdf.Triple(ex("felix"), ex("code"), rdf.TypedLiteral("x1", "http://example.com/Code")),
	}, stmts)

	_, err = Load(strings.NewReader(input), NTriples)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "statement 1")
	}
	_, err = Load(strings.NewReader("<http://example.com/felix> .\n"), NQuads)
	assert.Error(t, err)
}

func Test_LoadUnknownFormat(t *testing.T) {
	_, err := Load(strings.NewReader(""), Format("turtle"))
	assert.Error(t, err)
}

func Test_LoadFiles(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "schema.tsv")
	data := filepath.Join(dir, "data.nt")
	require.NoError(t, os.WriteFile(schema, []byte("<http://example.com/Cat> rdfs:subClassOf <http://example.com/Animal>\n"), 0644))
	require.NoError(t, os.WriteFile(data, []byte("<http://example.com/felix> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.com/Cat> .\n"), 0644))

	stmts, err := LoadFiles(context.Background(), []string{schema, data}, "")
	require.NoError(t, err)
	assert.Equal(t, []rdf.Statement{
		rdf.Triple(ex("Cat"), vocab.SubClassOf, ex("Animal")),
		rdf.Triple(ex("felix"), vocab.Type, ex("Cat")),
	}, stmts)

	_, err = LoadFiles(context.Background(), []string{schema, filepath.Join(dir, "missing.nt")}, "")
	assert.Error(t, err)
	stmts, err = LoadFile(data, TSV)
	require.NoError(t, err, "a single N-Triples line is also valid TSV")
	assert.Equal(t, []rdf.Statement{rdf.Triple(ex("felix"), vocab.Type, ex("Cat"))}, stmts)

	bad := filepath.Join(dir, "bad.nt")
	require.NoError(t, os.WriteFile(bad, []byte("\"felix\" <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://example.com/Cat> .\n"), 0644))
	_, err = LoadFile(bad, TSV)
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), bad)
	}
}
