// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build linux

package sock

import (
	"fmt"
	"net"

	"golang.org/x/sys/unix"
)

// applyMulticastOpts sets TTL and loopback on the joined socket.
func applyMulticastOpts(conn *net.UDPConn, cfg MulticastConfig) error {
	raw, err := conn.SyscallConn()
	if err != nil {
		return fmt.Errorf("sock: raw conn: %w", err)
	}

	loop := 0
	if cfg.Loopback {
		loop = 1
	}

	var opErr error
	err = raw.Control(func(fd uintptr) {
		if e := unix.SetsockoptInt(int(fd), unix.IPPROTO_IP, unix.IP_MULTICAST_TTL, cfg.TTL); e != nil {
			opErr = fmt.Errorf("sock: set multicast ttl: %w", e)
			return
		}
		if e := unix.SetsockoptInt(int(fd), unix.IPPROTO_IP, unix.IP_MULTICAST_LOOP, loop); e != nil {
			opErr = fmt.Errorf("sock: set multicast loopback: %w", e)
		}
	})
	if err != nil {
		return fmt.Errorf("sock: control: %w", err)
	}
	return opErr
}
