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

// ChunkReadyCallback will be called when the StatementSink has a chunk of
// statements ready to pass along.
type ChunkReadyCallback func([]Statement) error

// StatementSink accumulates statements and sends them to the destination in
// large chunks.
type StatementSink struct {
	// Chunks are sent here.
	dest ChunkReadyCallback
	// The next chunk to send.
	res []Statement
	// When the chunk is considered full and should be flushed.
	flushAtSize int
}

// NewStatementSink constructs a new StatementSink, once 'flushAtSize' items
// have been accumulated the readyCallback function will be called with the new
// chunk.
func NewStatementSink(readyCallback ChunkReadyCallback, flushAtSize int) *StatementSink {
	if flushAtSize < 1 {
		flushAtSize = 1
	}
	return &StatementSink{
		dest:        readyCallback,
		flushAtSize: flushAtSize,
	}
}

// Write accumulates the statement to send to the destination. It may also
// flush a chunk of statements. Write returns nil on success, or an error if
// flushing failed.
func (b *StatementSink) Write(st Statement) error {
	b.res = append(b.res, st)
	if len(b.res) == b.flushAtSize {
		return b.Flush()
	}
	return nil
}

// Flush sends a chunk of statements to the destination, if needed. It returns
// nil on success, or an error if sending the chunk failed.
func (b *StatementSink) Flush() error {
	if len(b.res) == 0 {
		return nil
	}
	err := b.dest(b.res)
	b.res = nil
	return err
}
