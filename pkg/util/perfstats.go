// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and memory consumed by some phase of work, such as
// an equivalence search or a batch of evaluations.
type PerfStats struct {
	// Starting time
	startTime time.Time
	// Starting total memory allocation
	startMem uint64
	// Starting number of gc events
	startGc uint32
}

// NewPerfStats takes a snapshot of the current time and memory allocation.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.TotalAlloc, m.NumGC}
}

// Elapsed returns the time since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.startTime)
}

// Log reports (at debug level) the time taken and memory allocated since this
// snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	alloc := float64(m.TotalAlloc-p.startMem) / 1024 / 1024
	gcs := m.NumGC - p.startGc
	//
	log.Debugf("%s took %s allocating %0.2f Mb (%v GC events)", prefix, p.Elapsed(), alloc, gcs)
}

// LogRate reports (at debug level) the average time taken per operation, given
// the number of operations completed since this snapshot was taken.
func (p *PerfStats) LogRate(prefix string, n uint) {
	if n == 0 {
		p.Log(prefix)
		return
	}
	//
	per := p.Elapsed() / time.Duration(n)
	//
	log.Debugf("%s took %s for %d operations (%s each)", prefix, p.Elapsed(), n, per)
}
