// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build windows

package plat

import (
	"fmt"
	"runtime"
	"syscall"
)

var (
	kernel32                      = syscall.NewLazyDLL("kernel32.dll")
	procGetCurrentThread          = kernel32.NewProc("GetCurrentThread")
	procSetThreadAffinityMask     = kernel32.NewProc("SetThreadAffinityMask")
	procGetCurrentProcessorNumber = kernel32.NewProc("GetCurrentProcessorNumber")
)

func pinCurrentThread(cpu int) error {
	runtime.LockOSThread()

	hThread, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << cpu
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		runtime.UnlockOSThread()
		return fmt.Errorf("plat: SetThreadAffinityMask cpu %d: %w", cpu, err)
	}
	return nil
}

func pinCurrentThreadToCurrentCPU() (int, error) {
	runtime.LockOSThread()

	cpu, _, _ := procGetCurrentProcessorNumber.Call()

	hThread, _, _ := procGetCurrentThread.Call()
	mask := uintptr(1) << cpu
	ret, _, err := procSetThreadAffinityMask.Call(hThread, mask)
	if ret == 0 {
		runtime.UnlockOSThread()
		return 0, fmt.Errorf("plat: SetThreadAffinityMask cpu %d: %w", cpu, err)
	}
	return int(cpu), nil
}
