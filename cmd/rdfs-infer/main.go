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

// Command rdfs-infer computes the RDFS closure of statement files.
package main

import (
	"context"
	"net/http"
	"os"

	docopt "github.com/docopt/docopt-go"
	"github.com/ebay/rdfs/util/debuglog"
	"github.com/ebay/rdfs/util/profiling"
	opentracing "github.com/opentracing/opentracing-go"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var fmtr = message.NewPrinter(language.English)

const usage = `rdfs-infer computes RDFS entailments for statement files.

Usage:
  rdfs-infer [options] infer [--only-derived] FILE...
  rdfs-infer [options] query PATTERN FILE...
  rdfs-infer [options] closures [--graph=FILE] FILE...

Options:
  --cfg=FILE             Load configuration from this JSON or YAML file.
  --schema=FILE          Load the schema from this file instead of from the data.
  --resource-typing      Type every resource as rdfs:Resource.
  --format=FORMAT        Format of the data files: tsv, nquads, or ntriples.
                         Inferred from each file's extension if not set.
  --store=DIR            Keep explicit statements in a badger database in DIR.
  --metrics=HOST         Serve Prometheus metrics on this host:port.
  --cpuprofile=FILE      Write a CPU profile to this file.
  --debug                Enable debug logging.
  --only-derived         Print only the derived statements.
  --graph=FILE           Also draw the class hierarchy to this .dot, .svg,
                         .png, or .pdf file.

Examples:
  # Print the closed graph of a schema and its instances.
  rdfs-infer infer pets.tsv

  # Find everything felix is an instance of.
  rdfs-infer query "<http://example.com/felix> rdf:type ?class" pets.tsv

  # Print the class, property, range, and domain closures, and draw the
  # class hierarchy.
  rdfs-infer --schema=schema.tsv closures --graph=classes.svg data.nq
`

type options struct {
	ConfigFile     string   `docopt:"--cfg"`
	SchemaFile     string   `docopt:"--schema"`
	ResourceTyping bool     `docopt:"--resource-typing"`
	Format         string   `docopt:"--format"`
	StorePath      string   `docopt:"--store"`
	MetricsAddress string   `docopt:"--metrics"`
	CPUProfile     string   `docopt:"--cpuprofile"`
	Debug          bool     `docopt:"--debug"`
	Files          []string `docopt:"FILE"`

	// Infer
	Infer       bool `docopt:"infer"`
	OnlyDerived bool `docopt:"--only-derived"`

	// Query
	Query   bool   `docopt:"query"`
	Pattern string `docopt:"PATTERN"`

	// Closures
	Closures  bool   `docopt:"closures"`
	GraphFile string `docopt:"--graph"`
}

func parseArgs() *options {
	opts, err := docopt.ParseDoc(usage)
	if err != nil {
		log.Fatalf("Error parsing command-line arguments: %v", err)
	}
	var options options
	err = opts.Bind(&options)
	if err != nil {
		log.Fatalf("Error binding command-line arguments: %v\nfrom: %+v", err, opts)
	}
	return &options
}

func main() {
	os.Exit(runMain(parseArgs()))
}

// runMain runs the command and returns the process exit code. Deferred calls
// complete before it returns.
func runMain(options *options) int {
	cfg, err := buildConfig(options)
	if err != nil {
		log.Errorf("Error loading configuration: %v", err)
		return 2
	}
	debuglog.Configure(debuglog.Options{Debug: cfg.Debug})
	if options.CPUProfile != "" {
		stop, err := profiling.StartCPUProfile(options.CPUProfile)
		if err != nil {
			log.WithError(err).Warn("Unable to start CPU profile")
		} else {
			defer func() {
				if err := stop(); err != nil {
					log.WithError(err).Warn("Unable to write CPU profile")
				}
			}()
		}
	}
	if cfg.MetricsAddress != "" {
		startHTTPServer(cfg.MetricsAddress)
	}
	span, ctx := opentracing.StartSpanFromContext(context.Background(), "rdfs-infer run")
	defer span.Finish()

	var cmd command
	switch {
	case options.Infer:
		cmd = inferCommand(options.OnlyDerived)
	case options.Query:
		cmd = queryCommand(options.Pattern)
	case options.Closures:
		cmd = closuresCommand(options.GraphFile)
	default:
		log.Errorf("command not implemented")
		return 2
	}
	if err := run(ctx, cfg, options.Files, cmd, os.Stdout); err != nil {
		span.SetTag("error", true)
		log.Errorf("Error: %v", err)
		return 1
	}
	return 0
}

func startHTTPServer(address string) {
	http.Handle("/metrics", promhttp.Handler())
	log.Infof("Starting HTTP server for metrics on %v", address)
	go func() {
		err := http.ListenAndServe(address, nil)
		if err != nil {
			log.WithError(err).Panic("Failed to start HTTP server for Prometheus endpoint")
		}
	}()
}
