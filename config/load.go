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

package config

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ebay/rdfs/util/errors"
	"gopkg.in/yaml.v3"
)

// isYAML returns true if the filename has a YAML extension. Other files are
// JSON.
func isYAML(filename string) bool {
	switch filepath.Ext(filename) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// decoder is implemented by both json.Decoder and yaml.Decoder.
type decoder interface {
	Decode(v interface{}) error
}

// Load parses the configuration from the given JSON or YAML file. Unknown
// fields are errors. Upon success, it returns a non-nil, valid configuration.
// Otherwise, it returns an error, which already includes the filename.
func Load(filename string) (*Config, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reader := bufio.NewReader(f)
	var dec decoder
	format := "JSON"
	more := func() bool { return false }
	if isYAML(filename) {
		format = "YAML"
		yamlDecoder := yaml.NewDecoder(reader)
		yamlDecoder.KnownFields(true)
		dec = yamlDecoder
		more = func() bool {
			var extra interface{}
			return yamlDecoder.Decode(&extra) != io.EOF
		}
	} else {
		jsonDecoder := json.NewDecoder(reader)
		jsonDecoder.DisallowUnknownFields()
		dec = jsonDecoder
		more = jsonDecoder.More
	}
	cfg := new(Config)
	// This **Config double-pointer appears to be required to detect an invalid
	// input of "null". See Test_Load/file_contains_null test.
	err = dec.Decode(&cfg)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s value in %v: %v", format, filename, err)
	}
	if cfg == nil {
		return nil, fmt.Errorf("loading %v resulted in nil config", filename)
	}
	if more() {
		return nil, fmt.Errorf("found unexpected data after config in %v", filename)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config in %v: %v", filename, err)
	}
	return cfg, nil
}

// Write marshalls the configuration to the given file, as YAML if the filename
// has a YAML extension and as JSON otherwise. It truncates the file if it
// already exists. It returns nil upon success. Otherwise, it returns an error,
// which already includes the filename.
func Write(cfg *Config, filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()
	writer := bufio.NewWriter(f)
	if isYAML(filename) {
		encoder := yaml.NewEncoder(writer)
		encoder.SetIndent(2)
		err = errors.Any(
			encoder.Encode(cfg),
			encoder.Close(),
			writer.Flush(),
			f.Close(),
		)
	} else {
		encoder := json.NewEncoder(writer)
		encoder.SetIndent("", "\t")
		err = errors.Any(
			encoder.Encode(cfg),
			writer.Flush(),
			f.Close(),
		)
	}
	if err != nil {
		return fmt.Errorf("failed to write %v: %v", filename, err)
	}
	return nil
}
