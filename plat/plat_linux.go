// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package plat

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/unix"
)

func pinCurrentThread(cpu int) error {
	runtime.LockOSThread()

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return fmt.Errorf("plat: sched_setaffinity cpu %d: %w", cpu, err)
	}
	return nil
}

func pinCurrentThreadToCurrentCPU() (int, error) {
	runtime.LockOSThread()

	cpu, _, err := unix.Getcpu()
	if err != nil {
		runtime.UnlockOSThread()
		return 0, fmt.Errorf("plat: getcpu: %w", err)
	}

	var set unix.CPUSet
	set.Zero()
	set.Set(cpu)
	if err := unix.SchedSetaffinity(0, &set); err != nil {
		runtime.UnlockOSThread()
		return 0, fmt.Errorf("plat: sched_setaffinity cpu %d: %w", cpu, err)
	}
	return cpu, nil
}
