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
	"errors"

	"github.com/ebay/rdfs/rdf"
	"github.com/ebay/rdfs/store"
	"github.com/ebay/rdfs/store/memstore"
)

var errAddFailed = errors.New("add failed")

// failingStore is a memstore.Store whose Add returns errAddFailed while
// failAdd is set.
type failingStore struct {
	*memstore.Store
	failAdd bool
}

var _ store.Store = (*failingStore)(nil)

func (s *failingStore) Add(ctx context.Context, st rdf.Statement) error {
	if s.failAdd {
		return errAddFailed
	}
	return s.Store.Add(ctx, st)
}
