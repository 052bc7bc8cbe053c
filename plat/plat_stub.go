// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux && !windows

package plat

import "errors"

var errUnsupported = errors.New("plat: thread affinity not supported on this platform")

func pinCurrentThread(cpu int) error {
	return errUnsupported
}

func pinCurrentThreadToCurrentCPU() (int, error) {
	return 0, errUnsupported
}
