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

package vocab

import (
	_ "embed" // for go:embed of axioms.tsv
	"fmt"

	"github.com/ebay/rdfs/parser"
	"github.com/ebay/rdfs/rdf"
)

// axiomsTSV holds the RDF and RDFS axiomatic statements in the parser's TSV
// statement format.
//
//go:embed axioms.tsv
var axiomsTSV string

// Axioms returns the RDF and RDFS axiomatic statements: the class hierarchy of
// the built in classes, and the domain, range and subproperty declarations of
// the built in properties. These are always loaded as schema ahead of any user
// schema. A failure to parse them is returned as an error; the caller owns the
// returned slice.
func Axioms() ([]rdf.Statement, error) {
	statements, err := parser.ParseStatements(axiomsTSV, Prefixes())
	if err != nil {
		return nil, fmt.Errorf("vocab: unable to parse axioms: %v", err)
	}
	return statements, nil
}
