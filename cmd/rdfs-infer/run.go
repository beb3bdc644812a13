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

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/ebay/rdfs/config"
	"github.com/ebay/rdfs/infer"
	"github.com/ebay/rdfs/loader"
	"github.com/ebay/rdfs/parser"
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/session"
	"github.com/ebay/rdfs/store"
	"github.com/ebay/rdfs/store/badgerstore"
	"github.com/ebay/rdfs/store/index"
	"github.com/ebay/rdfs/store/memstore"
	"github.com/ebay/rdfs/util/errors"
	"github.com/ebay/rdfs/util/graphviz"
	"github.com/ebay/rdfs/util/parallel"
	"github.com/ebay/rdfs/vocab"
	log "github.com/sirupsen/logrus"
)

// A command runs against a session holding the loaded files and writes its
// results to 'out'.
type command func(ctx context.Context, sess *session.Session, out io.Writer) error

// buildConfig loads the config file, if any, then applies the command-line
// flags over it.
func buildConfig(options *options) (*config.Config, error) {
	cfg := new(config.Config)
	if options.ConfigFile != "" {
		var err error
		cfg, err = config.Load(options.ConfigFile)
		if err != nil {
			return nil, err
		}
	}
	if options.SchemaFile != "" {
		cfg.SchemaFile = options.SchemaFile
	}
	if options.ResourceTyping {
		cfg.ResourceTyping = true
	}
	if options.Format != "" {
		cfg.DataFormat = options.Format
	}
	if options.StorePath != "" {
		cfg.Store = &config.Store{Type: config.BadgerStore, Path: options.StorePath}
	}
	if options.MetricsAddress != "" {
		cfg.MetricsAddress = options.MetricsAddress
	}
	if options.Debug {
		cfg.Debug = true
	}
	if cfg.DataFormat != "" {
		if _, err := loader.ParseFormat(cfg.DataFormat); err != nil {
			return nil, err
		}
	}
	return cfg, cfg.Validate()
}

// openStore returns the explicit statement store described by 'cfg'.
func openStore(cfg *config.Store) (store.Store, error) {
	if cfg == nil || cfg.Type == config.MemoryStore {
		return memstore.New(), nil
	}
	bcfg := badgerstore.DefaultConfig(cfg.Path)
	bcfg.SyncWrites = cfg.SyncWrites
	return badgerstore.Open(bcfg)
}

// run creates a session as configured, asserts the statements in 'files' to
// it, and then runs 'cmd'.
func run(ctx context.Context, cfg *config.Config, files []string, cmd command, out io.Writer) (err error) {
	var format loader.Format
	if cfg.DataFormat != "" {
		format, err = loader.ParseFormat(cfg.DataFormat)
		if err != nil {
			return err
		}
	}
	data, err := openStore(cfg.Store)
	if err != nil {
		return err
	}
	opts := session.Options{ResourceTyping: cfg.ResourceTyping}
	if cfg.SchemaFile != "" {
		schema, err := loader.LoadFile(cfg.SchemaFile, "")
		if err != nil {
			return errors.Any(err, data.Close())
		}
		schemaStore := memstore.New(schema...)
		defer schemaStore.Close()
		opts.Schema = schemaStore
	}
	sess, err := session.New(ctx, data, opts)
	if err != nil {
		return errors.Any(err, data.Close())
	}
	defer func() {
		err = errors.Any(err, sess.Close())
	}()
	statements, err := loader.LoadFiles(ctx, files, format)
	if err != nil {
		return err
	}
	if err := assertAll(ctx, sess, statements); err != nil {
		return err
	}
	return cmd(ctx, sess, out)
}

// assertAll asserts the statements in a single transaction.
func assertAll(ctx context.Context, sess *session.Session, statements []rdf.Statement) error {
	if err := sess.Begin(ctx); err != nil {
		return err
	}
	for _, st := range statements {
		if err := sess.AssertStatement(ctx, st); err != nil {
			return errors.Any(err, sess.Rollback(ctx))
		}
	}
	if err := sess.Commit(ctx); err != nil {
		return err
	}
	log.Info(fmtr.Sprintf("Asserted %d statements", len(statements)))
	return nil
}

// inferCommand prints the closed graph, or only the derived part of it.
func inferCommand(onlyDerived bool) command {
	return func(ctx context.Context, sess *session.Session, out io.Writer) error {
		var explicit *index.Index
		if onlyDerived {
			explicit = index.New()
			err := sess.Statements(ctx, rdf.Pattern{}, false, func(st rdf.Statement) error {
				explicit.Add(st)
				return nil
			})
			if err != nil {
				return err
			}
		}
		w := bufio.NewWriter(out)
		count := 0
		err := sess.Statements(ctx, rdf.Pattern{}, true, func(st rdf.Statement) error {
			if explicit != nil && explicit.Contains(st) {
				return nil
			}
			count++
			_, err := fmt.Fprintf(w, "%v .\n", st)
			return err
		})
		if err != nil {
			return err
		}
		log.Info(fmtr.Sprintf("Printed %d statements", count))
		return w.Flush()
	}
}

// queryCommand prints the statements of the closed graph that match the
// pattern.
func queryCommand(patternText string) command {
	return func(ctx context.Context, sess *session.Session, out io.Writer) error {
		pattern, err := parser.ParsePattern(patternText, vocab.Prefixes())
		if err != nil {
			return err
		}
		resCh := make(chan []rdf.Statement, 4)
		var evalErr error
		wait := parallel.Go(func() {
			evalErr = sess.Evaluate(ctx, pattern, resCh)
		})
		w := bufio.NewWriter(out)
		count := 0
		var writeErr error
		for chunk := range resCh {
			for _, st := range chunk {
				count++
				if writeErr == nil {
					_, writeErr = fmt.Fprintf(w, "%v .\n", st)
				}
			}
		}
		wait()
		if err := errors.Any(evalErr, writeErr); err != nil {
			return err
		}
		fmtr.Fprintf(w, "\n%d results.\n", count)
		return w.Flush()
	}
}

// closuresCommand prints the four closure tables. If graphFile is set, it also
// draws the class closure there.
func closuresCommand(graphFile string) command {
	return func(ctx context.Context, sess *session.Session, out io.Writer) error {
		if err := sess.Flush(ctx); err != nil {
			return err
		}
		closures := sess.Closures()
		tables := []struct {
			name    string
			closure *infer.Closure
		}{
			{"Classes", closures.Classes},
			{"Properties", closures.Properties},
			{"Ranges", closures.Ranges},
			{"Domains", closures.Domains},
		}
		w := bufio.NewWriter(out)
		for _, table := range tables {
			keys := table.closure.Keys()
			fmtr.Fprintf(w, "%s: %d keys, %d entries\n", table.name, len(keys), table.closure.Len())
			for _, key := range keys {
				values := table.closure.Lookup(key)
				strs := make([]string, len(values))
				for i, v := range values {
					strs[i] = v.String()
				}
				fmt.Fprintf(w, "  %v\t%s\n", key, strings.Join(strs, " "))
			}
			fmt.Fprintln(w)
		}
		if err := w.Flush(); err != nil {
			return err
		}
		if graphFile == "" {
			return nil
		}
		log.Infof("Writing class hierarchy to %v", graphFile)
		return graphviz.Create(graphFile, closures.Classes.Graphviz, graphviz.Options{})
	}
}
