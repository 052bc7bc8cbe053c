// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package plat_test

import (
	"runtime"
	"testing"
	"time"

	"github.com/houseofmoo/mootils/plat"
)

func TestTimestampFormat(t *testing.T) {
	ts := plat.Timestamp()
	parsed, err := time.ParseInLocation("2006-01-02 15:04:05.000", ts, time.Local)
	if err != nil {
		t.Fatalf("Timestamp %q does not parse: %v", ts, err)
	}
	if d := time.Since(parsed); d < -time.Second || d > time.Minute {
		t.Fatalf("Timestamp %q too far from now (delta %v)", ts, d)
	}
}

func TestPinCurrentThread(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "windows":
	default:
		if err := plat.PinCurrentThread(0); err == nil {
			t.Fatal("PinCurrentThread on unsupported platform: got nil error")
		}
		return
	}

	done := make(chan error, 1)
	go func() {
		err := plat.PinCurrentThread(0)
		if err == nil {
			runtime.UnlockOSThread()
		}
		done <- err
	}()
	if err := <-done; err != nil {
		// Restricted environments (containers with a pinned cpuset)
		// can refuse affinity changes.
		t.Skipf("PinCurrentThread: %v", err)
	}
}

func TestPinCurrentThreadToCurrentCPU(t *testing.T) {
	switch runtime.GOOS {
	case "linux", "windows":
	default:
		if _, err := plat.PinCurrentThreadToCurrentCPU(); err == nil {
			t.Fatal("expected error on unsupported platform")
		}
		return
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		cpu, err := plat.PinCurrentThreadToCurrentCPU()
		if err != nil {
			t.Logf("skipping assertion, pin refused: %v", err)
			return
		}
		defer runtime.UnlockOSThread()
		if cpu < 0 || cpu >= runtime.NumCPU()*8 {
			t.Errorf("implausible CPU index %d", cpu)
		}
	}()
	<-done
}

func TestPinRejectsNegativeCPU(t *testing.T) {
	if err := plat.PinCurrentThread(-1); err == nil {
		t.Fatal("PinCurrentThread(-1): got nil error")
	}
}
