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

package infer

import (
	"fmt"
	"io"

	"github.com/ebay/rdfs/util/graphviz"
)

// Graphviz writes the closure as a dot digraph with an edge from each key to
// each other term in its set. Errors from the writer are ignored.
func (c *Closure) Graphviz(w io.Writer) {
	fmt.Fprintln(w, "digraph {")
	fmt.Fprintln(w, "\trankdir=BT;")
	fmt.Fprintln(w, "\tnode [shape=box];")
	for _, k := range c.Keys() {
		from := graphviz.Quote(k.String())
		fmt.Fprintf(w, "\t%s;\n", from)
		for _, v := range c.Lookup(k) {
			if v != k {
				fmt.Fprintf(w, "\t%s -> %s;\n", from, graphviz.Quote(v.String()))
			}
		}
	}
	fmt.Fprintln(w, "}")
}
