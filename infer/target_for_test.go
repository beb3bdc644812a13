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
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store/index"
)

// memTarget is a Target that keeps explicit and derived statements in memory.
type memTarget struct {
	explicit *index.Index
	derived  *index.Index
	// If not nil, AddInferred returns this error.
	inferredErr error
}

func newMemTarget() *memTarget {
	return &memTarget{
		explicit: index.New(),
		derived:  index.New(),
	}
}

func (t *memTarget) AddExplicit(st rdf.Statement) error {
	t.explicit.Add(st)
	t.derived.Delete(st)
	return nil
}

func (t *memTarget) AddInferred(st rdf.Statement) (bool, error) {
	if t.inferredErr != nil {
		return false, t.inferredErr
	}
	if t.explicit.Contains(st) {
		return false, nil
	}
	return t.derived.Add(st), nil
}
