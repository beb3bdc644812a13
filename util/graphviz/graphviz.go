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

// Package graphviz writes diagrams from dot input.
package graphviz

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Filetype is the file format of the output.
type Filetype int

// Supported Filetypes.
const (
	// DOT is the Graphviz input itself; writing it doesn't need the dot
	// program.
	DOT Filetype = iota + 1
	PDF
	PNG
	SVG
)

var filetypeFlags = map[Filetype]string{
	PDF: "-Tpdf",
	PNG: "-Tpng",
	SVG: "-Tsvg",
}

// FiletypeOf returns the Filetype for the file name's extension.
func FiletypeOf(filename string) (Filetype, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".dot", ".gv":
		return DOT, nil
	case ".pdf":
		return PDF, nil
	case ".png":
		return PNG, nil
	case ".svg":
		return SVG, nil
	}
	return 0, fmt.Errorf("could not determine filetype from filename: %v", filename)
}

// Options to Create.
type Options struct {
	// Unless provided, Create will attempt to autodetect this from the filename.
	Filetype Filetype
}

// Create writes a file from a Graphviz spec. Except for the DOT filetype, it
// invokes the "dot" program. 'generate' should write the Graphviz spec into the
// given writer; it may safely ignore errors from the writer.
func Create(filename string, generate func(io.Writer), options Options) error {
	if options.Filetype == 0 {
		ft, err := FiletypeOf(filename)
		if err != nil {
			return err
		}
		options.Filetype = ft
	}
	if options.Filetype != DOT && filetypeFlags[options.Filetype] == "" {
		return fmt.Errorf("unknown filetype: %v", options.Filetype)
	}
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if options.Filetype == DOT {
		generate(file)
		return file.Sync()
	}
	cmd := exec.Command("dot", filetypeFlags[options.Filetype])
	cmd.Stdout = file
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return err
	}
	go func() {
		defer stdin.Close()
		generate(stdin)
	}()
	var errOut strings.Builder
	cmd.Stderr = &errOut
	err = cmd.Run()
	if err != nil {
		return fmt.Errorf("error executing dot: %v. Stderr: %v", err, errOut.String())
	}
	return nil
}

// Quote returns 's' as a dot double-quoted string.
func Quote(s string) string {
	return `"` + strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s) + `"`
}
