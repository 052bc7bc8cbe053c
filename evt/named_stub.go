// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package evt

import "time"

// namedSem stub for platforms without a cross-process backend.
// Open fails with ErrNotSupported, so the methods are unreachable.
type namedSem struct{}

func openNamedSem(name string) (*namedSem, error) {
	return nil, ErrNotSupported
}

func (s *namedSem) post() error { return ErrNotSupported }

func (s *namedSem) tryWait() error { return ErrNotSupported }

func (s *namedSem) wait(timeout time.Duration) error { return ErrNotSupported }

func (s *namedSem) close() {}
