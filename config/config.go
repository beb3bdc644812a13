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

// Package config defines the configuration file of the rdfs-infer command and
// how it's read and written.
package config

import "fmt"

// Config is the top-level configuration.
type Config struct {
	// ResourceTyping types every subject and resource object as rdfs:Resource.
	ResourceTyping bool `json:"resourceTyping,omitempty" yaml:"resourceTyping,omitempty"`
	// SchemaFile, if set, is loaded as an external schema. Otherwise, schema
	// statements are taken from the data.
	SchemaFile string `json:"schemaFile,omitempty" yaml:"schemaFile,omitempty"`
	// DataFormat is the format of the data files: "tsv", "nquads", or
	// "ntriples". If empty, it's inferred from each file's extension.
	DataFormat string `json:"dataFormat,omitempty" yaml:"dataFormat,omitempty"`
	// Store selects where explicit statements are kept. If nil, they're kept
	// in memory.
	Store *Store `json:"store,omitempty" yaml:"store,omitempty"`
	// MetricsAddress, if set, is the host:port to serve Prometheus metrics on.
	MetricsAddress string `json:"metricsAddress,omitempty" yaml:"metricsAddress,omitempty"`
	// Debug enables debug logging.
	Debug bool `json:"debug,omitempty" yaml:"debug,omitempty"`
}

// Store types.
const (
	MemoryStore = "memory"
	BadgerStore = "badger"
)

// Store describes the explicit statement store.
type Store struct {
	// Type is "memory" or "badger".
	Type string `json:"type" yaml:"type"`
	// Path is the database directory, required for the badger type.
	Path string `json:"path,omitempty" yaml:"path,omitempty"`
	// SyncWrites makes every badger commit durable before it returns.
	SyncWrites bool `json:"syncWrites,omitempty" yaml:"syncWrites,omitempty"`
}

// Validate returns an error if the configuration can't be used.
func (cfg *Config) Validate() error {
	if cfg.Store == nil {
		return nil
	}
	switch cfg.Store.Type {
	case MemoryStore:
		return nil
	case BadgerStore:
		if cfg.Store.Path == "" {
			return fmt.Errorf("store.path is required for store type %q", BadgerStore)
		}
		return nil
	default:
		return fmt.Errorf("unknown store type %q, expecting %q or %q",
			cfg.Store.Type, MemoryStore, BadgerStore)
	}
}
