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

// Package badgerstore implements store.Store on top of a Badger key-value
// database. Each statement is written under two keys, one in the SPO space and
// one in the POS space, and the values are empty.
package badgerstore

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	log "github.com/sirupsen/logrus"
)

// Config describes how to open the database.
type Config struct {
	// Path is the directory for the database files. It is required unless
	// InMemory is set, and is created if needed.
	Path string
	// InMemory keeps the database in memory only. Useful for testing.
	InMemory bool
	// SyncWrites makes every commit durable before it returns.
	SyncWrites bool
}

// DefaultConfig returns the configuration for a persistent database at 'path'.
func DefaultConfig(path string) Config {
	return Config{
		Path:       path,
		SyncWrites: true,
	}
}

// InMemoryConfig returns the configuration for a database that is discarded
// when closed.
func InMemoryConfig() Config {
	return Config{
		InMemory: true,
	}
}

// Store is a store.Store backed by Badger. Like all store.Store
// implementations, it is a single connection and is not safe for concurrent
// use.
type Store struct {
	db  *badger.DB
	cfg Config
	// The current read-write transaction, or nil outside a transaction.
	txn *badger.Txn
}

// Store implements store.Store.
var _ store.Store = (*Store)(nil)

// Open opens (or creates) the database described by cfg.
func Open(cfg Config) (*Store, error) {
	var opts badger.Options
	if cfg.InMemory {
		opts = badger.DefaultOptions("").WithInMemory(true)
	} else {
		if cfg.Path == "" {
			return nil, errors.New("badgerstore: path is required for a persistent database")
		}
		if err := os.MkdirAll(cfg.Path, 0750); err != nil {
			return nil, fmt.Errorf("badgerstore: unable to create directory %s: %w", cfg.Path, err)
		}
		opts = badger.DefaultOptions(cfg.Path)
	}
	opts = opts.WithSyncWrites(cfg.SyncWrites).
		WithNumVersionsToKeep(1).
		WithLogger(badgerLogger{log.WithField("component", "badger")})
	db, err := badger.Open(opts)
	if err != nil {
		return nil, fmt.Errorf("badgerstore: unable to open database: %w", err)
	}
	log.WithFields(log.Fields{
		"path":     cfg.Path,
		"inMemory": cfg.InMemory,
	}).Info("badgerstore: opened database")
	return &Store{db: db, cfg: cfg}, nil
}

// badgerLogger routes Badger's own logging to logrus. Badger is chatty at
// info level, so that is demoted to debug.
type badgerLogger struct {
	*log.Entry
}

func (l badgerLogger) Infof(format string, args ...interface{}) {
	l.Entry.Debugf(format, args...)
}

// Begin implements the method declared in store.Store.
func (s *Store) Begin(ctx context.Context) error {
	if !s.IsOpen() {
		return store.ErrClosed
	}
	if s.txn != nil {
		return store.ErrTransactionActive
	}
	s.txn = s.db.NewTransaction(true)
	return nil
}

// Commit implements the method declared in store.Store.
func (s *Store) Commit(ctx context.Context) error {
	if !s.IsOpen() {
		return store.ErrClosed
	}
	if s.txn == nil {
		return store.ErrNoTransaction
	}
	txn := s.txn
	s.txn = nil
	if err := txn.Commit(); err != nil {
		return fmt.Errorf("badgerstore: commit failed: %w", err)
	}
	return nil
}

// Rollback implements the method declared in store.Store.
func (s *Store) Rollback(ctx context.Context) error {
	if !s.IsOpen() {
		return store.ErrClosed
	}
	if s.txn == nil {
		return store.ErrNoTransaction
	}
	s.txn.Discard()
	s.txn = nil
	return nil
}

// view runs fn in the current transaction, or in a new read-only transaction
// if there isn't one. Iterators on the current transaction see its pending
// writes.
func (s *Store) view(fn func(txn *badger.Txn) error) error {
	if s.txn != nil {
		return fn(s.txn)
	}
	return s.db.View(fn)
}

// Statements implements the method declared in store.Store. The matching
// statements are collected and the iterator closed before emit is first
// called, since Badger allows only one iterator at a time on a read-write
// transaction.
func (s *Store) Statements(ctx context.Context, pattern rdf.Pattern, emit func(rdf.Statement) error) error {
	if !s.IsOpen() {
		return store.ErrClosed
	}
	_, prefix := scanPrefix(pattern)
	var matches []rdf.Statement
	err := s.view(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefix
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			st, err := parseKey(it.Item().Key())
			if err != nil {
				return err
			}
			if pattern.Matches(st) {
				matches = append(matches, st)
			}
		}
		return nil
	})
	if err != nil {
		return err
	}
	for _, st := range matches {
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

// Add implements the method declared in store.Store.
func (s *Store) Add(ctx context.Context, st rdf.Statement) error {
	if err := st.Validate(); err != nil {
		return err
	}
	if !s.IsOpen() {
		return store.ErrClosed
	}
	write := func(txn *badger.Txn) error {
		for _, enc := range []keyEncoding{encodingSPO, encodingPOS} {
			if err := txn.Set(statementKey(st, enc), nil); err != nil {
				return err
			}
		}
		return nil
	}
	var err error
	if s.txn != nil {
		err = write(s.txn)
	} else {
		err = s.db.Update(write)
	}
	if err != nil {
		return fmt.Errorf("badgerstore: unable to add %v: %w", st, err)
	}
	return nil
}

// Size implements the method declared in store.Store. It counts the keys in
// the SPO space.
func (s *Store) Size(ctx context.Context) (int, error) {
	if !s.IsOpen() {
		return 0, store.ErrClosed
	}
	count := 0
	err := s.view(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		opts.Prefix = prefixSPOBytes
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefixSPOBytes); it.ValidForPrefix(prefixSPOBytes); it.Next() {
			count++
		}
		return ctx.Err()
	})
	return count, err
}

// IsOpen implements the method declared in store.Store.
func (s *Store) IsOpen() bool {
	return !s.db.IsClosed()
}

// Close implements the method declared in store.Store.
func (s *Store) Close() error {
	if !s.IsOpen() {
		return nil
	}
	if s.txn != nil {
		s.txn.Discard()
		s.txn = nil
	}
	return s.db.Close()
}
