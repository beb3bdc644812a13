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

package badgerstore

import (
	"bytes"
	"testing"

	"github.com/ebay/rdfs/rdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testStatement = rdf.Quad(
	rdf.IRI("http://example.com/felix"),
	rdf.IRI("http://example.com/name"),
	rdf.LangLiteral("Felix", "en"),
	rdf.IRI("http://example.com/graph"),
)

func Benchmark_MakeSPO(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = statementKey(testStatement, encodingSPO)
	}
}

func Benchmark_ParsePOS(b *testing.B) {
	key := statementKey(testStatement, encodingPOS)
	for i := 0; i < b.N; i++ {
		_, err := parseKey(key)
		assert.NoError(b, err)
	}
}

func Test_KeyRoundTrip(t *testing.T) {
	for _, enc := range []keyEncoding{encodingSPO, encodingPOS} {
		t.Run(enc.String(), func(t *testing.T) {
			key := statementKey(testStatement, enc)
			st, err := parseKey(key)
			require.NoError(t, err)
			assert.Equal(t, testStatement, st)
		})
	}
}

func Test_ParseKeyErrors(t *testing.T) {
	_, err := parseKey([]byte("xyz"))
	assert.Error(t, err)
	key := statementKey(testStatement, encodingSPO)
	_, err = parseKey(key[:len(key)-2])
	assert.Error(t, err)
}

func Test_ScanPrefix(t *testing.T) {
	s, p, o := testStatement.Subject, testStatement.Predicate, testStatement.Object
	tests := []struct {
		name    string
		pattern rdf.Pattern
		expEnc  keyEncoding
	}{
		{"all", rdf.Pattern{}, encodingSPO},
		{"s", rdf.Pattern{Subject: s}, encodingSPO},
		{"sp", rdf.Pattern{Subject: s, Predicate: p}, encodingSPO},
		{"spo", rdf.Pattern{Subject: s, Predicate: p, Object: o}, encodingSPO},
		{"so", rdf.Pattern{Subject: s, Object: o}, encodingSPO},
		{"p", rdf.Pattern{Predicate: p}, encodingPOS},
		{"po", rdf.Pattern{Predicate: p, Object: o}, encodingPOS},
		{"o", rdf.Pattern{Object: o}, encodingSPO},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			enc, prefix := scanPrefix(test.pattern)
			assert.Equal(t, test.expEnc, enc)
			key := statementKey(testStatement, enc)
			assert.True(t, bytes.HasPrefix(key, prefix),
				"key %q should start with %q", key, prefix)
		})
	}
}
