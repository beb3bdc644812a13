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
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

const chunkSize = 200

type chunkCollector struct {
	chunks [][]Statement
}

func (c *chunkCollector) send(chunk []Statement) error {
	c.chunks = append(c.chunks, chunk)
	return nil
}

func numbered(i int) Statement {
	return Triple(IRI(fmt.Sprintf("http://example.com/s%d", i)), IRI("http://example.com/p"), Literal("o"))
}

func Test_StatementSink_emptyFlush(t *testing.T) {
	assert := assert.New(t)
	c := new(chunkCollector)
	sink := NewStatementSink(c.send, chunkSize)
	assert.NoError(sink.Flush())
	assert.Len(c.chunks, 0)
}

func Test_StatementSink_chunks(t *testing.T) {
	assert := assert.New(t)
	c := new(chunkCollector)
	sink := NewStatementSink(c.send, chunkSize)
	for i := 0; i < chunkSize*2-1; i++ {
		assert.NoError(sink.Write(numbered(i)))
	}
	assert.Len(c.chunks, 1)
	assert.NoError(sink.Write(numbered(chunkSize*2 - 1)))
	assert.Len(c.chunks, 2)
	assert.NoError(sink.Flush())
	assert.Len(c.chunks, 2)
	assert.NoError(sink.Write(numbered(chunkSize * 2)))
	assert.NoError(sink.Flush())
	if assert.Len(c.chunks, 3) {
		assert.Len(c.chunks[0], chunkSize)
		assert.Len(c.chunks[1], chunkSize)
		assert.Len(c.chunks[2], 1)
		i := 0
		for _, chunk := range c.chunks {
			for _, st := range chunk {
				assert.Equal(numbered(i), st)
				i++
			}
		}
	}
}

func Test_StatementSink_error(t *testing.T) {
	sink := NewStatementSink(func([]Statement) error {
		return fmt.Errorf("closed")
	}, 0)
	assert.EqualError(t, sink.Write(numbered(1)), "closed")
}
