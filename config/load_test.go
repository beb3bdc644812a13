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
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_Load(t *testing.T) {
	dir := t.TempDir()
	write := func(name, contents string) string {
		filename := filepath.Join(dir, name)
		require.NoError(t, os.WriteFile(filename, []byte(contents), 0644))
		return filename
	}

	t.Run("file not found", func(t *testing.T) {
		_, err := Load(filepath.Join(dir, "404.json"))
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), "404.json")
		}
	})

	t.Run("file contains garbage", func(t *testing.T) {
		_, err := Load(write("garbage.json", "koala"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^error decoding JSON value in .*/garbage\.json: `, err.Error())
		}
	})

	t.Run("file contains null", func(t *testing.T) {
		_, err := Load(write("null.json", "null"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^loading .*/null\.json resulted in nil config$`, err.Error())
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Load(write("unknown.json", `{
			"roflcopter": true
		}`))
		if assert.Error(t, err) {
			assert.Regexp(t, `^error decoding JSON value in .*/unknown\.json: `, err.Error())
		}
	})

	t.Run("more", func(t *testing.T) {
		_, err := Load(write("more.json", "{}{}"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^found unexpected data after config in .*/more\.json$`, err.Error())
		}
	})

	t.Run("invalid store", func(t *testing.T) {
		_, err := Load(write("badger.json", `{"store": {"type": "badger"}}`))
		if assert.Error(t, err) {
			assert.Regexp(t, `^invalid config in .*/badger\.json: store\.path is required`, err.Error())
		}
		_, err = Load(write("mongo.json", `{"store": {"type": "mongo"}}`))
		if assert.Error(t, err) {
			assert.Contains(t, err.Error(), `unknown store type "mongo"`)
		}
	})

	t.Run("ok", func(t *testing.T) {
		cfg, err := Load(write("ok.json", `{
			"resourceTyping": true,
			"schemaFile": "schema.tsv",
			"store": {"type": "badger", "path": "/tmp/db"}
		}`))
		if assert.NoError(t, err) {
			assert.True(t, cfg.ResourceTyping)
			assert.Equal(t, "schema.tsv", cfg.SchemaFile)
			assert.Equal(t, &Store{Type: BadgerStore, Path: "/tmp/db"}, cfg.Store)
		}
	})

	t.Run("yaml ok", func(t *testing.T) {
		cfg, err := Load(write("ok.yaml", `
resourceTyping: true
dataFormat: nquads
metricsAddress: localhost:9090
store:
  type: memory
`))
		if assert.NoError(t, err) {
			assert.True(t, cfg.ResourceTyping)
			assert.Equal(t, "nquads", cfg.DataFormat)
			assert.Equal(t, "localhost:9090", cfg.MetricsAddress)
			assert.Equal(t, MemoryStore, cfg.Store.Type)
		}
	})

	t.Run("yaml unknown field", func(t *testing.T) {
		_, err := Load(write("unknown.yml", "roflcopter: true\n"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^error decoding YAML value in .*/unknown\.yml: `, err.Error())
		}
	})

	t.Run("yaml more", func(t *testing.T) {
		_, err := Load(write("more.yaml", "debug: true\n---\ndebug: false\n"))
		if assert.Error(t, err) {
			assert.Regexp(t, `^found unexpected data after config in .*/more\.yaml$`, err.Error())
		}
	})
}

func Test_Write(t *testing.T) {
	dir := t.TempDir()

	// Happy path, in both formats.
	cfg := &Config{
		ResourceTyping: true,
		Store:          &Store{Type: BadgerStore, Path: "db"},
	}
	for _, name := range []string{"ok.json", "ok.yaml"} {
		filename := filepath.Join(dir, name)
		require.NoError(t, Write(cfg, filename))
		read, err := Load(filename)
		require.NoError(t, err)
		assert.Equal(t, cfg, read)
	}

	// Simulate an error from encoder.Encode().
	marshalJSONErr = errors.New("ants in pants")
	err := Write(&Config{Store: &Store{}}, filepath.Join(dir, "ants.json"))
	marshalJSONErr = nil
	if assert.Error(t, err) {
		assert.Regexp(t, `^failed to write .*/ants\.json: .*ants in pants`,
			err.Error())
	}

	// Errors from os.Create already include the filename.
	err = os.MkdirAll(filepath.Join(dir, "subdir"), 0755)
	require.NoError(t, err)
	err = Write(&Config{}, filepath.Join(dir, "subdir"))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "subdir")
	}
}

// Controls the returned error of Store.MarshalJSON.
var marshalJSONErr error

// This is a custom marshaller for Store (used only in unit tests). It normally
// encodes itself successfully, but if 'marshalJSONErr' is non-nil, it returns
// this error instead.
func (s Store) MarshalJSON() ([]byte, error) {
	if marshalJSONErr != nil {
		return nil, marshalJSONErr
	}
	return json.Marshal(struct {
		Type       string `json:"type"`
		Path       string `json:"path,omitempty"`
		SyncWrites bool   `json:"syncWrites,omitempty"`
	}{
		Type:       s.Type,
		Path:       s.Path,
		SyncWrites: s.SyncWrites,
	})
}
