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

// Package session maintains the RDFS closure of a statement store. A Session
// wraps one writable connection to the store, runs every asserted statement
// through the entailment engine, and keeps the derived statements alongside
// the explicit ones so that reads see the closed graph.
//
// The derived statements are never edited one at a time. When they may have
// become stale, for example after a rollback or a schema change, they are
// cleared and the session becomes Dirty; the next read that needs them
// recomputes them from the explicit statements.
package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ebay/rdfs/infer"
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/ebay/rdfs/store/index"
	"github.com/ebay/rdfs/vocab"
	"github.com/google/uuid"
	opentracing "github.com/opentracing/opentracing-go"
	log "github.com/sirupsen/logrus"
)

var (
	// ErrUnsupported is returned by operations that would need to retract
	// individual derived statements, and by namespace operations.
	ErrUnsupported = errors.New("session: unsupported operation")
	// ErrSchemaLoaded is returned by LoadSchema once a schema has been loaded
	// or a statement has been asserted.
	ErrSchemaLoaded = errors.New("session: schema must be loaded once, before any statement is asserted")
	// ErrClosed is returned when using a closed session.
	ErrClosed = errors.New("session: session is closed")
)

// evaluateChunkSize is the number of statements sent in each chunk by
// Evaluate.
const evaluateChunkSize = 64

// Options are fixed when a session is created.
type Options struct {
	// ResourceTyping makes every subject and resource object an instance of
	// Resource, and every instance of Class a subclass of Resource.
	ResourceTyping bool
	// Schema, if set, selects external-schema mode: every statement in it is
	// loaded as the schema by New, and schema statements later asserted to
	// the session don't change the closures. If nil, the session is in
	// self-schema mode unless ExternalSchema is set.
	Schema store.Store
	// ExternalSchema selects external-schema mode without a schema at
	// creation. LoadSchema must then be called before any statement is
	// asserted.
	ExternalSchema bool
	// Logger receives the session's log entries. If nil, the logrus standard
	// logger is used.
	Logger log.FieldLogger
}

// Session is not safe for concurrent use.
type Session struct {
	id   string
	data store.Store
	opts Options
	// True in external-schema mode.
	external bool
	log      *log.Entry
	// The axiom statements, parsed once.
	axioms []rdf.Statement
	// The schema statements the closures are built from, including the axioms.
	schema   *infer.Schema
	closures *infer.Closures
	engine   infer.Engine
	// The derived statements. They never include explicit statements.
	derived *index.Index
	state   State
	// Set once LoadSchema succeeds or a statement is asserted.
	schemaLocked bool
	closed       bool
}

// New creates a session over the explicit statements in 'data'. The session
// takes ownership of 'data' and closes it in Close. In external-schema mode
// with opts.Schema set, New reads the entire schema store (which remains owned
// by the caller), stores its statements in 'data', and computes their
// entailments before returning. Any error loading the axioms or the schema is
// returned and no session is created.
func New(ctx context.Context, data store.Store, opts Options) (*Session, error) {
	axioms, err := vocab.Axioms()
	if err != nil {
		return nil, fmt.Errorf("session: unable to load axioms: %w", err)
	}
	s := &Session{
		id:       uuid.NewString(),
		data:     data,
		opts:     opts,
		external: opts.Schema != nil || opts.ExternalSchema,
		axioms:   axioms,
		schema:   infer.NewSchema(),
		derived:  index.New(),
		state:    Dirty,
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.StandardLogger()
	}
	s.log = logger.WithFields(log.Fields{
		"session": s.id,
		"mode":    s.Mode(),
	})
	for _, st := range axioms {
		s.schema.Collect(st)
	}
	s.setClosures(s.schema.Build())
	metrics.sessionsCreated.WithLabelValues(s.Mode()).Inc()
	if opts.Schema != nil {
		if err := s.loadSchema(ctx, opts.Schema); err != nil {
			return nil, err
		}
	}
	s.log.WithFields(log.Fields{
		"resourceTyping": opts.ResourceTyping,
		"axioms":         len(axioms),
		"state":          s.state,
	}).Info("Created inference session")
	return s, nil
}

// ID returns a unique identifier for the session, used in its log entries.
func (s *Session) ID() string {
	return s.id
}

// Mode returns "external" in external-schema mode or "self" in self-schema
// mode.
func (s *Session) Mode() string {
	if s.external {
		return "external"
	}
	return "self"
}

// State returns whether the derived statements are up to date.
func (s *Session) State() State {
	return s.state
}

// Closures returns the closure tables the session is currently using. They
// may be stale while the session is Dirty.
func (s *Session) Closures() *infer.Closures {
	return s.closures
}

func (s *Session) setClosures(closures *infer.Closures) {
	s.closures = closures
	s.engine = infer.Engine{
		Closures:       closures,
		ResourceTyping: s.opts.ResourceTyping,
	}
	metrics.schemaStatements.Set(float64(s.schema.Len()))
}

// LoadSchema reads every statement in 'source' as the session's schema,
// stores those statements as explicit statements, and brings the derived
// statements up to date. It's only available in external-schema mode, and
// only once, before any statement is asserted. The caller keeps ownership of
// 'source'.
func (s *Session) LoadSchema(ctx context.Context, source store.Store) error {
	if s.closed {
		return ErrClosed
	}
	if !s.external {
		return ErrUnsupported
	}
	if s.schemaLocked {
		return ErrSchemaLoaded
	}
	return s.loadSchema(ctx, source)
}

func (s *Session) loadSchema(ctx context.Context, source store.Store) error {
	span, ctx := opentracing.StartSpanFromContext(ctx, "load schema")
	defer span.Finish()
	stmts, err := store.ReadAll(ctx, source, rdf.Pattern{})
	if err != nil {
		return fmt.Errorf("session: unable to read schema: %w", err)
	}
	span.SetTag("statements", len(stmts))
	for _, st := range stmts {
		if err := st.Validate(); err != nil {
			return fmt.Errorf("session: invalid schema statement %v: %w", st, err)
		}
		s.schema.Collect(st)
	}
	s.setClosures(s.schema.Build())
	if err := s.data.Begin(ctx); err != nil {
		return fmt.Errorf("session: unable to store schema: %w", err)
	}
	for _, st := range stmts {
		if err := s.data.Add(ctx, st); err != nil {
			s.data.Rollback(ctx)
			return fmt.Errorf("session: unable to store schema: %w", err)
		}
	}
	if err := s.data.Commit(ctx); err != nil {
		return fmt.Errorf("session: unable to store schema: %w", err)
	}
	s.schemaLocked = true
	s.log.WithFields(log.Fields{
		"statements":       len(stmts),
		"schemaStatements": s.schema.Len(),
		"classes":          len(s.closures.Classes.Keys()),
		"properties":       len(s.closures.Properties.Keys()),
	}).Info("Loaded schema")
	return s.rebuild(ctx)
}

// Assert stores the statement (subject, predicate, object, graph) and derives
// what it entails. A zero graph means the default graph. The subject must be
// an IRI or blank node and the predicate an IRI.
//
// In self-schema mode, asserting a new schema statement doesn't derive
// anything; it clears the derived statements instead, so that they're
// recomputed with the new schema on the next read.
//
// If storing the statement or deriving from it fails, the derived statements
// are discarded and the session becomes Dirty.
func (s *Session) Assert(ctx context.Context, subject, predicate, object, graph rdf.Term) error {
	return s.AssertStatement(ctx, rdf.Quad(subject, predicate, object, graph))
}

// AssertStatement is like Assert but takes a Statement.
func (s *Session) AssertStatement(ctx context.Context, st rdf.Statement) error {
	if err := st.Validate(); err != nil {
		return fmt.Errorf("session: cannot assert %v: %w", st, err)
	}
	if s.closed {
		return ErrClosed
	}
	s.schemaLocked = true
	metrics.asserted.Inc()
	if !s.external && s.schema.Collect(st) {
		// The rebuild rescans the schema from the store, so a failed Add
		// leaves nothing behind in the collector.
		s.ClearDerived()
		if err := s.data.Add(ctx, st); err != nil {
			return err
		}
		s.log.WithField("statement", st).Debug("Asserted new schema statement")
		return nil
	}
	t := &target{ctx: ctx, session: s}
	_, err := s.engine.Entail(st, t, true)
	metrics.derived.Add(float64(t.added))
	if err != nil {
		// Part of the cascade may have run without the statement being
		// stored.
		s.log.WithError(err).WithField("statement", st).Warn("Failed to assert statement")
		s.ClearDerived()
	}
	return err
}

// ClearDerived discards the derived statements. They'll be recomputed on the
// next read or Flush.
func (s *Session) ClearDerived() {
	s.derived.Clear()
	if s.state != Dirty {
		s.log.Debug("Cleared derived statements")
	}
	s.state = Dirty
}

// Flush brings the derived statements up to date if the session is Dirty.
func (s *Session) Flush(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	if s.state == Dirty {
		return s.rebuild(ctx)
	}
	return nil
}

// rebuild recomputes the derived statements from the explicit statements. In
// self-schema mode it first rebuilds the closures from the axioms and the
// explicit schema statements. If it fails, the derived statements are
// discarded and the session stays Dirty.
func (s *Session) rebuild(ctx context.Context) (err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "rebuild derived statements")
	defer span.Finish()
	start := time.Now()
	s.state = Rebuilding
	s.derived.Clear()
	t := &target{ctx: ctx, session: s, explicit: index.New()}
	defer func() {
		metrics.derived.Add(float64(t.added))
		if err != nil {
			span.SetTag("error", true)
			metrics.rebuildFailures.Inc()
			s.derived.Clear()
			s.state = Dirty
			s.log.WithError(err).Warn("Failed to rebuild derived statements")
			return
		}
		s.state = Clean
	}()

	err = s.data.Statements(ctx, rdf.Pattern{}, func(st rdf.Statement) error {
		t.explicit.Add(st)
		return nil
	})
	if err != nil {
		return fmt.Errorf("session: unable to read explicit statements: %w", err)
	}
	explicit := t.explicit.Statements()
	if !s.external {
		s.schema.Reset()
		for _, st := range s.axioms {
			s.schema.Collect(st)
		}
		for _, st := range explicit {
			s.schema.Collect(st)
		}
		s.setClosures(s.schema.Build())
	}
	for _, st := range s.axioms {
		if _, err := s.engine.Derive(st, t); err != nil {
			return err
		}
	}
	for _, st := range s.closures.Statements() {
		if _, err := s.engine.Derive(st, t); err != nil {
			return err
		}
	}
	for _, st := range explicit {
		if _, err := s.engine.Entail(st, t, false); err != nil {
			return err
		}
	}
	elapsed := time.Since(start)
	metrics.rebuilds.Inc()
	metrics.rebuildSeconds.Observe(elapsed.Seconds())
	metrics.derivedStatements.Set(float64(s.derived.Len()))
	span.SetTag("explicit", len(explicit))
	span.SetTag("derived", s.derived.Len())
	s.log.WithFields(log.Fields{
		"explicit":         len(explicit),
		"derived":          s.derived.Len(),
		"schemaStatements": s.schema.Len(),
		"elapsed":          elapsed,
	}).Info("Rebuilt derived statements")
	return nil
}

// Statements calls emit with every statement matching 'pattern': first the
// explicit statements, then, if includeInferred is set, the derived statements
// that aren't also explicit. If the session is Dirty and includeInferred is
// set, the derived statements are rebuilt first. The emit function may return
// store.ErrHalt to stop early without an error.
func (s *Session) Statements(ctx context.Context, pattern rdf.Pattern, includeInferred bool,
	emit func(rdf.Statement) error) error {
	if s.closed {
		return ErrClosed
	}
	if includeInferred {
		if err := s.Flush(ctx); err != nil {
			return err
		}
	}
	halted := false
	var seen map[rdf.Statement]struct{}
	if includeInferred {
		seen = make(map[rdf.Statement]struct{})
	}
	err := s.data.Statements(ctx, pattern, func(st rdf.Statement) error {
		if seen != nil {
			seen[st] = struct{}{}
		}
		err := emit(st)
		if err == store.ErrHalt {
			halted = true
		}
		return err
	})
	if err != nil || halted || !includeInferred {
		return err
	}
	return s.derived.Match(pattern, func(st rdf.Statement) error {
		if _, dup := seen[st]; dup {
			return nil
		}
		return emit(st)
	})
}

// Evaluate sends chunks of the statements matching 'pattern', explicit and
// derived, to resCh. It closes resCh before returning, whether or not it
// returns an error.
func (s *Session) Evaluate(ctx context.Context, pattern rdf.Pattern, resCh chan<- []rdf.Statement) error {
	defer close(resCh)
	sink := rdf.NewStatementSink(func(chunk []rdf.Statement) error {
		select {
		case resCh <- chunk:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}, evaluateChunkSize)
	if err := s.Statements(ctx, pattern, true, sink.Write); err != nil {
		return err
	}
	return sink.Flush()
}

// Size returns the number of explicit statements, plus the number of derived
// statements if includeInferred is set.
func (s *Session) Size(ctx context.Context, includeInferred bool) (int, error) {
	if s.closed {
		return 0, ErrClosed
	}
	if includeInferred {
		if err := s.Flush(ctx); err != nil {
			return 0, err
		}
	}
	n, err := s.data.Size(ctx)
	if err != nil {
		return 0, err
	}
	if includeInferred {
		n += s.derived.Len()
	}
	return n, nil
}

// IsOpen returns true until the session or its store is closed.
func (s *Session) IsOpen() bool {
	return !s.closed && s.data.IsOpen()
}

// Begin starts a transaction on the store.
func (s *Session) Begin(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	return s.data.Begin(ctx)
}

// Commit brings the derived statements up to date, then commits the store's
// transaction.
func (s *Session) Commit(ctx context.Context) error {
	if err := s.Flush(ctx); err != nil {
		return err
	}
	return s.data.Commit(ctx)
}

// Rollback discards the store's transaction. The derived statements may have
// come from the discarded statements, so they are cleared too.
func (s *Session) Rollback(ctx context.Context) error {
	if s.closed {
		return ErrClosed
	}
	err := s.data.Rollback(ctx)
	s.ClearDerived()
	return err
}

// Close discards the derived statements and closes the store. Closing a
// closed session has no effect.
func (s *Session) Close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	s.derived.Clear()
	s.log.Debug("Closed inference session")
	return s.data.Close()
}

// Remove always returns ErrUnsupported: removing an explicit statement would
// require retracting what it derived.
func (s *Session) Remove(ctx context.Context, pattern rdf.Pattern) error {
	return ErrUnsupported
}

// RemoveInferred always returns ErrUnsupported. Use ClearDerived instead.
func (s *Session) RemoveInferred(ctx context.Context, pattern rdf.Pattern) error {
	return ErrUnsupported
}

// SetNamespace always returns ErrUnsupported.
func (s *Session) SetNamespace(prefix, name string) error {
	return ErrUnsupported
}

// RemoveNamespace always returns ErrUnsupported.
func (s *Session) RemoveNamespace(prefix string) error {
	return ErrUnsupported
}
