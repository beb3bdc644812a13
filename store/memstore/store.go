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

// Package memstore contains an in-process, in-memory implementation of
// store.Store. It is used by tests and by the command-line tool when no
// persistent store is configured.
package memstore

import (
	"context"
	"sync"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/ebay/rdfs/store/index"
	log "github.com/sirupsen/logrus"
)

// Store is an in-memory implementation of store.Store. Writes made during a
// transaction are visible to readers of the same Store immediately, are
// applied on Commit, and are discarded on Rollback. Writes made outside a
// transaction are applied immediately. Store is safe for concurrent access.
type Store struct {
	// lock protects the fields in locked.
	lock   sync.Mutex
	locked struct {
		// Statements that have been committed.
		committed *index.Index
		// Statements added in the current transaction that are not in
		// committed. Empty outside a transaction.
		pending *index.Index
		// True between Begin and Commit or Rollback.
		inTxn bool
		// True once Close has been called.
		closed bool
	}
}

// Store implements store.Store.
var _ store.Store = (*Store)(nil)

// New constructs an empty Store, then adds the given statements to it.
func New(statements ...rdf.Statement) *Store {
	s := new(Store)
	s.locked.committed = index.New()
	s.locked.pending = index.New()
	for _, st := range statements {
		s.locked.committed.Add(st)
	}
	return s
}

// Begin implements the method declared in store.Store.
func (s *Store) Begin(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.locked.closed {
		return store.ErrClosed
	}
	if s.locked.inTxn {
		return store.ErrTransactionActive
	}
	s.locked.inTxn = true
	return nil
}

// Commit implements the method declared in store.Store.
func (s *Store) Commit(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.locked.closed {
		return store.ErrClosed
	}
	if !s.locked.inTxn {
		return store.ErrNoTransaction
	}
	count := s.locked.pending.Len()
	for _, st := range s.locked.pending.Statements() {
		s.locked.committed.Add(st)
	}
	s.locked.pending.Clear()
	s.locked.inTxn = false
	log.WithFields(log.Fields{
		"added": count,
		"size":  s.locked.committed.Len(),
	}).Debug("memstore: committed transaction")
	return nil
}

// Rollback implements the method declared in store.Store.
func (s *Store) Rollback(ctx context.Context) error {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.locked.closed {
		return store.ErrClosed
	}
	if !s.locked.inTxn {
		return store.ErrNoTransaction
	}
	log.WithFields(log.Fields{
		"discarded": s.locked.pending.Len(),
	}).Debug("memstore: rolled back transaction")
	s.locked.pending.Clear()
	s.locked.inTxn = false
	return nil
}

// Statements implements the method declared in store.Store. The matching
// statements are collected before emit is first called, so emit may call back
// into the Store.
func (s *Store) Statements(ctx context.Context, pattern rdf.Pattern, emit func(rdf.Statement) error) error {
	matches, err := s.match(pattern)
	if err != nil {
		return err
	}
	for _, st := range matches {
		if err := ctx.Err(); err != nil {
			return err
		}
		err := emit(st)
		if err == store.ErrHalt {
			return nil
		}
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *Store) match(pattern rdf.Pattern) ([]rdf.Statement, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.locked.closed {
		return nil, store.ErrClosed
	}
	var res []rdf.Statement
	collect := func(st rdf.Statement) error {
		res = append(res, st)
		return nil
	}
	s.locked.committed.Match(pattern, collect)
	s.locked.pending.Match(pattern, collect)
	return res, nil
}

// Add implements the method declared in store.Store.
func (s *Store) Add(ctx context.Context, st rdf.Statement) error {
	if err := st.Validate(); err != nil {
		return err
	}
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.locked.closed {
		return store.ErrClosed
	}
	if s.locked.committed.Contains(st) {
		return nil
	}
	if s.locked.inTxn {
		s.locked.pending.Add(st)
	} else {
		s.locked.committed.Add(st)
	}
	return nil
}

// Size implements the method declared in store.Store.
func (s *Store) Size(ctx context.Context) (int, error) {
	s.lock.Lock()
	defer s.lock.Unlock()
	if s.locked.closed {
		return 0, store.ErrClosed
	}
	return s.locked.committed.Len() + s.locked.pending.Len(), nil
}

// IsOpen implements the method declared in store.Store.
func (s *Store) IsOpen() bool {
	s.lock.Lock()
	defer s.lock.Unlock()
	return !s.locked.closed
}

// Close implements the method declared in store.Store. Any pending
// transaction is discarded. Closing a closed Store has no effect.
func (s *Store) Close() error {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.locked.pending.Clear()
	s.locked.inTxn = false
	s.locked.closed = true
	return nil
}

// Committed returns a copy of the committed statements in SPO order.
func (s *Store) Committed() []rdf.Statement {
	s.lock.Lock()
	defer s.lock.Unlock()
	return s.locked.committed.Statements()
}
