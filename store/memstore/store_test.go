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

package memstore

import (
	"context"
	"testing"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	felix   = rdf.IRI("http://example.com/felix")
	rdfType = rdf.IRI("http://www.w3.org/1999/02/22-rdf-syntax-ns#type")
	cat     = rdf.IRI("http://example.com/Cat")
	dog     = rdf.IRI("http://example.com/Dog")
)

func Test_AddOutsideTransaction(t *testing.T) {
	ctx := context.Background()
	s := New()
	st := rdf.Triple(felix, rdfType, cat)
	require.NoError(t, s.Add(ctx, st))
	require.NoError(t, s.Add(ctx, st))
	size, err := s.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, size)
	assert.Equal(t, []rdf.Statement{st}, s.Committed())
}

func Test_AddInvalid(t *testing.T) {
	s := New()
	err := s.Add(context.Background(), rdf.Triple(rdf.Literal("x"), rdfType, cat))
	assert.ErrorIs(t, err, rdf.ErrInvalidSubject)
}

func Test_Transaction(t *testing.T) {
	ctx := context.Background()
	s := New(rdf.Triple(felix, rdfType, cat))
	assert.Equal(t, store.ErrNoTransaction, s.Commit(ctx))
	assert.Equal(t, store.ErrNoTransaction, s.Rollback(ctx))
	require.NoError(t, s.Begin(ctx))
	assert.Equal(t, store.ErrTransactionActive, s.Begin(ctx))

	st := rdf.Triple(felix, rdfType, dog)
	require.NoError(t, s.Add(ctx, st))
	found, err := store.Contains(ctx, s, st)
	require.NoError(t, err)
	assert.True(t, found, "pending writes should be visible")
	assert.Len(t, s.Committed(), 1)

	require.NoError(t, s.Rollback(ctx))
	found, err = store.Contains(ctx, s, st)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, s.Begin(ctx))
	require.NoError(t, s.Add(ctx, st))
	require.NoError(t, s.Commit(ctx))
	assert.Len(t, s.Committed(), 2)
	size, err := s.Size(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, size)
}

func Test_Statements(t *testing.T) {
	ctx := context.Background()
	s := New(
		rdf.Triple(felix, rdfType, cat),
		rdf.Triple(felix, rdfType, dog),
		rdf.Triple(cat, rdfType, dog),
	)
	res, err := store.ReadAll(ctx, s, rdf.Pattern{Subject: felix})
	require.NoError(t, err)
	assert.Len(t, res, 2)
	res, err = store.ReadAll(ctx, s, rdf.Pattern{Object: dog})
	require.NoError(t, err)
	assert.Len(t, res, 2)

	calls := 0
	err = s.Statements(ctx, rdf.Pattern{}, func(rdf.Statement) error {
		calls++
		return store.ErrHalt
	})
	assert.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func Test_Close(t *testing.T) {
	ctx := context.Background()
	s := New()
	require.NoError(t, s.Begin(ctx))
	assert.True(t, s.IsOpen())
	assert.NoError(t, s.Close())
	assert.False(t, s.IsOpen())
	assert.NoError(t, s.Close())
	assert.Equal(t, store.ErrClosed, s.Begin(ctx))
	assert.Equal(t, store.ErrClosed, s.Add(ctx, rdf.Triple(felix, rdfType, cat)))
	_, err := s.Size(ctx)
	assert.Equal(t, store.ErrClosed, err)
	err = s.Statements(ctx, rdf.Pattern{}, func(rdf.Statement) error { return nil })
	assert.Equal(t, store.ErrClosed, err)
}
