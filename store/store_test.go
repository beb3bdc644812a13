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

package store_test

import (
	"context"
	"testing"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/ebay/rdfs/store/memstore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Contains(t *testing.T) {
	ctx := context.Background()
	felix := rdf.IRI("http://example.com/felix")
	typ := rdf.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	cat := rdf.IRI("http://example.com/Cat")
	g1 := rdf.IRI("http://example.com/g1")
	s := memstore.New(rdf.Quad(felix, typ, cat, g1))

	found, err := store.Contains(ctx, s, rdf.Quad(felix, typ, cat, g1))
	require.NoError(t, err)
	assert.True(t, found)
	found, err = store.Contains(ctx, s, rdf.Triple(felix, typ, cat))
	require.NoError(t, err)
	assert.False(t, found, "the default graph statement isn't stored")

	require.NoError(t, s.Close())
	_, err = store.Contains(ctx, s, rdf.Triple(felix, typ, cat))
	assert.Equal(t, store.ErrClosed, err)
}

func Test_ReadAll(t *testing.T) {
	ctx := context.Background()
	a := rdf.Triple(rdf.IRI("http://example.com/a"), rdf.IRI("http://example.com/p"), rdf.Literal("1"))
	b := rdf.Triple(rdf.IRI("http://example.com/b"), rdf.IRI("http://example.com/p"), rdf.Literal("2"))
	s := memstore.New(b, a)
	all, err := store.ReadAll(ctx, s, rdf.Pattern{})
	require.NoError(t, err)
	assert.Equal(t, []rdf.Statement{a, b}, all)
	some, err := store.ReadAll(ctx, s, rdf.Pattern{Subject: a.Subject})
	require.NoError(t, err)
	assert.Equal(t, []rdf.Statement{a}, some)
}
