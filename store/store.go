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

// Package store defines the interface to the statement store that holds the
// explicitly asserted statements. The inference engine reads and writes
// statements only through this interface.
package store

import (
	"context"
	"errors"

	"github.com/ebay/rdfs/rdf"
)

// These errors are returned by Store implementations.
var (
	// ErrClosed is returned by operations on a closed store.
	ErrClosed = errors.New("store: store is closed")
	// ErrNoTransaction is returned by Commit and Rollback when no transaction is
	// active.
	ErrNoTransaction = errors.New("store: no active transaction")
	// ErrTransactionActive is returned by Begin when a transaction is already
	// active.
	ErrTransactionActive = errors.New("store: transaction already active")
)

// ErrHalt may be returned by a Statements callback to stop enumeration but not
// return an error.
var ErrHalt = errors.New("store: no need to continue enumerating")

// Store is a single writable connection to a statement store. It is not safe
// for concurrent use.
type Store interface {
	// Begin starts a transaction. Statements added during the transaction are
	// visible to this connection immediately, and to others once committed.
	Begin(ctx context.Context) error
	// Commit makes the statements added in the current transaction durable.
	Commit(ctx context.Context) error
	// Rollback discards the statements added in the current transaction.
	Rollback(ctx context.Context) error
	// Statements calls emit with every statement matching 'pattern'. The emit
	// function should normally return nil to continue enumerating, or it can
	// return any error to stop immediately. Except for ErrHalt, such errors will
	// be returned from Statements. If emit returns ErrHalt, Statements will stop
	// immediately and return nil.
	Statements(ctx context.Context, pattern rdf.Pattern, emit func(rdf.Statement) error) error
	// Add stores the statement. Adding a statement that's already stored is a
	// no-op. Outside of a transaction the statement is committed immediately.
	Add(ctx context.Context, st rdf.Statement) error
	// Size returns the number of stored statements, including those added in
	// the current transaction.
	Size(ctx context.Context) (int, error)
	// IsOpen returns false once the store has been closed.
	IsOpen() bool
	// Close releases the store's resources. Any active transaction is rolled
	// back.
	Close() error
}

// Contains returns true if the store holds exactly the statement 'st'.
func Contains(ctx context.Context, s Store, st rdf.Statement) (bool, error) {
	found := false
	err := s.Statements(ctx, rdf.Pattern(st), func(got rdf.Statement) error {
		// a pattern with no graph matches every graph
		if got == st {
			found = true
			return ErrHalt
		}
		return nil
	})
	return found, err
}

// ReadAll returns all the statements in the store that match 'pattern'.
func ReadAll(ctx context.Context, s Store, pattern rdf.Pattern) ([]rdf.Statement, error) {
	var res []rdf.Statement
	err := s.Statements(ctx, pattern, func(st rdf.Statement) error {
		res = append(res, st)
		return nil
	})
	return res, err
}
