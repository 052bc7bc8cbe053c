// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build !linux

package sock

import "net"

// applyMulticastOpts is a no-op where the raw sockopt path is not
// wired; the OS defaults (TTL 1, loopback on) apply.
func applyMulticastOpts(conn *net.UDPConn, cfg MulticastConfig) error {
	return nil
}
