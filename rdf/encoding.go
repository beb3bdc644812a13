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

package rdf

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// ErrCorruptEncoding is returned when decoding bytes that weren't produced by
// AppendTerm.
var ErrCorruptEncoding = errors.New("rdf: corrupt term encoding")

// AppendTerm appends a binary encoding of t to b and returns the extended
// slice. The encoding is [kind_1][len(value)_uvarint][value] followed by the
// datatype and language in the same length prefixed form. A given Term always
// encodes to the same bytes and the encoding is self delimiting, so encoded
// terms can be concatenated to build keys.
func AppendTerm(b []byte, t Term) []byte {
	b = append(b, byte(t.Kind))
	appendString := func(s string) {
		b = binary.AppendUvarint(b, uint64(len(s)))
		b = append(b, s...)
	}
	appendString(t.Value)
	appendString(t.Datatype)
	appendString(t.Lang)
	return b
}

// DecodeTerm decodes a single term from the start of b, as written by
// AppendTerm. It returns the term and the remaining bytes.
func DecodeTerm(b []byte) (Term, []byte, error) {
	if len(b) == 0 {
		return Term{}, nil, fmt.Errorf("%w: empty input", ErrCorruptEncoding)
	}
	t := Term{Kind: Kind(b[0])}
	if t.Kind > KindLiteral {
		return Term{}, nil, fmt.Errorf("%w: unknown kind %d", ErrCorruptEncoding, b[0])
	}
	b = b[1:]
	readString := func() (string, error) {
		n, size := binary.Uvarint(b)
		if size <= 0 || uint64(len(b)-size) < n {
			return "", fmt.Errorf("%w: bad length", ErrCorruptEncoding)
		}
		s := string(b[size : size+int(n)])
		b = b[size+int(n):]
		return s, nil
	}
	var err error
	if t.Value, err = readString(); err != nil {
		return Term{}, nil, err
	}
	if t.Datatype, err = readString(); err != nil {
		return Term{}, nil, err
	}
	if t.Lang, err = readString(); err != nil {
		return Term{}, nil, err
	}
	return t, b, nil
}

// DecodeTerms decodes exactly 'n' consecutive terms from b, returning an error
// if b holds fewer terms or has bytes left over.
func DecodeTerms(b []byte, n int) ([]Term, error) {
	terms := make([]Term, n)
	for i := range terms {
		var err error
		terms[i], b, err = DecodeTerm(b)
		if err != nil {
			return nil, err
		}
	}
	if len(b) != 0 {
		return nil, fmt.Errorf("%w: %d trailing bytes", ErrCorruptEncoding, len(b))
	}
	return terms, nil
}
