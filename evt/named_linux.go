// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package evt

import (
	"fmt"
	"os"
	"sync/atomic"
	"time"
	"unsafe"

	"code.hybscloud.com/spin"
	"golang.org/x/sys/unix"
)

// namedSem is the Linux backend: a 4-byte counter in a /dev/shm file,
// mapped shared into every participating process. Posts are atomic
// increments plus a futex wake; waits block on the futex while the
// counter reads zero.
//
// The futex ops deliberately omit FUTEX_PRIVATE_FLAG — waiters may live
// in other processes.
type namedSem struct {
	file *os.File
	mem  []byte
	word *uint32
}

const semBytes = 4

func openNamedSem(name string) (*namedSem, error) {
	path := "/dev/shm/" + name

	f, err := os.OpenFile(path, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("evt: open %s: %w", path, err)
	}
	if err := f.Truncate(semBytes); err != nil {
		f.Close()
		return nil, fmt.Errorf("evt: resize %s: %w", path, err)
	}

	mem, err := unix.Mmap(int(f.Fd()), 0, semBytes,
		unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("evt: mmap %s: %w", path, err)
	}

	return &namedSem{
		file: f,
		mem:  mem,
		word: (*uint32)(unsafe.Pointer(&mem[0])),
	}, nil
}

func (s *namedSem) post() error {
	atomic.AddUint32(s.word, 1)
	return futexWake(s.word, 1)
}

func (s *namedSem) tryWait() error {
	sw := spin.Wait{}
	for {
		c := atomic.LoadUint32(s.word)
		if c == 0 {
			return ErrWouldBlock
		}
		if atomic.CompareAndSwapUint32(s.word, c, c-1) {
			return nil
		}
		sw.Once()
	}
}

func (s *namedSem) wait(timeout time.Duration) error {
	var deadline time.Time
	if timeout > 0 {
		deadline = time.Now().Add(timeout)
	}

	for {
		err := s.tryWait()
		if err == nil || !IsWouldBlock(err) {
			return err
		}

		var ts *unix.Timespec
		if timeout > 0 {
			rem := time.Until(deadline)
			if rem <= 0 {
				return ErrTimeout
			}
			t := unix.NsecToTimespec(rem.Nanoseconds())
			ts = &t
		}
		if err := futexWait(s.word, 0, ts); err != nil {
			return err
		}
	}
}

func (s *namedSem) close() {
	unix.Munmap(s.mem)
	s.file.Close()
	s.mem = nil
	s.word = nil
}

// futexWait blocks while *addr == val, until woken, a timeout, or a
// spurious wakeup; the caller re-checks the condition either way.
func futexWait(addr *uint32, val uint32, ts *unix.Timespec) error {
	// Re-check atomically before the syscall to close the lost-wake
	// window between the caller's snapshot and futex entry.
	if atomic.LoadUint32(addr) != val {
		return nil
	}

	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(unix.FUTEX_WAIT),
		uintptr(val),
		uintptr(unsafe.Pointer(ts)),
		0, 0,
	)
	switch errno {
	case 0, unix.EAGAIN, unix.EINTR:
		return nil
	case unix.ETIMEDOUT:
		return ErrTimeout
	default:
		return fmt.Errorf("evt: futex wait: %w", errno)
	}
}

func futexWake(addr *uint32, n uint32) error {
	_, _, errno := unix.Syscall6(
		unix.SYS_FUTEX,
		uintptr(unsafe.Pointer(addr)),
		uintptr(unix.FUTEX_WAKE),
		uintptr(n),
		0, 0, 0,
	)
	if errno != 0 {
		return fmt.Errorf("evt: futex wake: %w", errno)
	}
	return nil
}
