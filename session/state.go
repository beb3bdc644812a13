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

import "fmt"

// State describes whether a session's derived statements are up to date.
type State int

const (
	// Clean means the derived statements are consistent with the explicit
	// statements.
	Clean State = iota
	// Dirty means the derived statements have been cleared and will be
	// recomputed before the next read that needs them.
	Dirty
	// Rebuilding is the transient state while the derived statements are
	// recomputed.
	Rebuilding
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case Clean:
		return "Clean"
	case Dirty:
		return "Dirty"
	case Rebuilding:
		return "Rebuilding"
	}
	return fmt.Sprintf("State(%d)", int(s))
}
