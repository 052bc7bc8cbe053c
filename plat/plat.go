// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package plat holds the platform glue unrelated to queue correctness:
// thread-to-CPU affinity and timestamp formatting. Platform-specific
// implementations are selected at build time via build tags; unsupported
// platforms return an error rather than silently succeeding.
package plat

import (
	"fmt"
	"time"
)

// PinCurrentThread locks the calling goroutine to its OS thread and
// pins that thread to the given logical CPU. The goroutine stays locked
// on success so the affinity cannot migrate away with the scheduler.
func PinCurrentThread(cpu int) error {
	if cpu < 0 {
		return fmt.Errorf("plat: invalid cpu index %d", cpu)
	}
	return pinCurrentThread(cpu)
}

// PinCurrentThreadToCurrentCPU pins the calling thread to whichever CPU
// it is running on right now, returning that CPU. Useful to stop a hot
// loop from migrating once it is warmed up.
func PinCurrentThreadToCurrentCPU() (int, error) {
	return pinCurrentThreadToCurrentCPU()
}

// Timestamp returns the current wall-clock time formatted for log
// lines, with millisecond precision.
func Timestamp() string {
	return time.Now().Format("2006-01-02 15:04:05.000")
}
