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

package badgerstore

import (
	"bytes"
	"fmt"

	"github.com/ebay/rdfs/rdf"
)

var (
	prefixPOSBytes = []byte("p")
	prefixSPOBytes = []byte("s")
)

// keyEncoding identifies one of the two orders that statements are written in.
type keyEncoding int

const (
	// [prefix_SPO][subject][predicate][object][graph]
	encodingSPO keyEncoding = iota
	// [prefix_POS][predicate][object][subject][graph]
	encodingPOS
)

// String returns a short name for the encoding.
func (enc keyEncoding) String() string {
	switch enc {
	case encodingSPO:
		return "SPO"
	case encodingPOS:
		return "POS"
	}
	return fmt.Sprintf("keyEncoding(%d)", int(enc))
}

// statementKey returns the full key for the statement in the given encoding.
// Every statement is written under both encodings.
func statementKey(st rdf.Statement, enc keyEncoding) []byte {
	var b []byte
	switch enc {
	case encodingSPO:
		b = append(b, prefixSPOBytes...)
		b = rdf.AppendTerm(b, st.Subject)
		b = rdf.AppendTerm(b, st.Predicate)
		b = rdf.AppendTerm(b, st.Object)
	case encodingPOS:
		b = append(b, prefixPOSBytes...)
		b = rdf.AppendTerm(b, st.Predicate)
		b = rdf.AppendTerm(b, st.Object)
		b = rdf.AppendTerm(b, st.Subject)
	default:
		panic(fmt.Sprintf("Unexpected keyEncoding in statementKey: %d", enc))
	}
	return rdf.AppendTerm(b, st.Graph)
}

// scanPrefix returns the key encoding and the longest key prefix that can be
// used to find the statements matching 'pattern'. Statements under the prefix
// may still not match the pattern and need to be filtered.
func scanPrefix(pattern rdf.Pattern) (keyEncoding, []byte) {
	switch {
	case !pattern.Subject.IsZero():
		b := append([]byte(nil), prefixSPOBytes...)
		b = rdf.AppendTerm(b, pattern.Subject)
		if pattern.Predicate.IsZero() {
			return encodingSPO, b
		}
		b = rdf.AppendTerm(b, pattern.Predicate)
		if pattern.Object.IsZero() {
			return encodingSPO, b
		}
		return encodingSPO, rdf.AppendTerm(b, pattern.Object)

	case !pattern.Predicate.IsZero():
		b := append([]byte(nil), prefixPOSBytes...)
		b = rdf.AppendTerm(b, pattern.Predicate)
		if pattern.Object.IsZero() {
			return encodingPOS, b
		}
		return encodingPOS, rdf.AppendTerm(b, pattern.Object)

	default:
		return encodingSPO, append([]byte(nil), prefixSPOBytes...)
	}
}

// parseKey decodes a key written by statementKey.
func parseKey(key []byte) (rdf.Statement, error) {
	var enc keyEncoding
	switch {
	case bytes.HasPrefix(key, prefixSPOBytes):
		enc = encodingSPO
	case bytes.HasPrefix(key, prefixPOSBytes):
		enc = encodingPOS
	default:
		return rdf.Statement{}, fmt.Errorf("badgerstore: unexpected key prefix in %q", key)
	}
	terms, err := rdf.DecodeTerms(key[1:], 4)
	if err != nil {
		return rdf.Statement{}, fmt.Errorf("badgerstore: unable to parse %v key: %w", enc, err)
	}
	if enc == encodingSPO {
		return rdf.Quad(terms[0], terms[1], terms[2], terms[3]), nil
	}
	return rdf.Quad(terms[2], terms[0], terms[1], terms[3]), nil
}
