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

// Package profiling writes pprof CPU profiles.
package profiling

import (
	"os"
	"runtime/pprof"

	log "github.com/sirupsen/logrus"
)

// StartCPUProfile starts writing a CPU profile to the named file. The returned
// stop function ends the profile and closes the file. Only one profile can run
// at a time; starting a second one returns an error.
func StartCPUProfile(filename string) (stop func() error, err error) {
	f, err := os.Create(filename)
	if err != nil {
		return nil, err
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, err
	}
	log.Infof("Started CPU profile to %s", filename)
	return func() error {
		pprof.StopCPUProfile()
		err := f.Close()
		log.Infof("Completed CPU profile to %s", filename)
		return err
	}, nil
}
