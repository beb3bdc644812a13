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

package session

import (
	"context"

	"github.com/ebay/rdfs/infer"
	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/ebay/rdfs/store/index"
)

// target connects the entailment engine to the session's explicit store and
// derived set.
type target struct {
	ctx     context.Context
	session *Session
	// If not nil, holds every explicit statement, so that the store needn't be
	// asked. Used during rebuilds.
	explicit *index.Index
	// The number of statements added to the derived set.
	added int
}

// target implements infer.Target.
var _ infer.Target = (*target)(nil)

func (t *target) AddExplicit(st rdf.Statement) error {
	if err := t.session.data.Add(t.ctx, st); err != nil {
		return err
	}
	if t.explicit != nil {
		t.explicit.Add(st)
	}
	// A statement is either explicit or derived, never both.
	t.session.derived.Delete(st)
	return nil
}

func (t *target) AddInferred(st rdf.Statement) (bool, error) {
	if t.session.derived.Contains(st) {
		return false, nil
	}
	var isExplicit bool
	if t.explicit != nil {
		isExplicit = t.explicit.Contains(st)
	} else {
		var err error
		isExplicit, err = store.Contains(t.ctx, t.session.data, st)
		if err != nil {
			return false, err
		}
	}
	if isExplicit {
		return false, nil
	}
	t.session.derived.Add(st)
	t.added++
	return true, nil
}
