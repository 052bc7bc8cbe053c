// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sock

import (
	"fmt"
	"net"

	"code.hybscloud.com/atomix"
)

// MulticastConfig configures a UDP multicast socket. Zero fields take
// the defaults below.
type MulticastConfig struct {
	GroupIP  string // multicast group, default "239.255.0.1" (admin scope)
	Port     uint16 // default 30001
	TTL      int    // default 1: stay on the local subnet
	Loopback bool   // deliver own sends back to this host
}

func (c MulticastConfig) withDefaults() MulticastConfig {
	if c.GroupIP == "" {
		c.GroupIP = "239.255.0.1"
	}
	if c.Port == 0 {
		c.Port = 30001
	}
	if c.TTL == 0 {
		c.TTL = 1
	}
	return c
}

// UDPMulticast is a socket joined to one multicast group, usable for
// both sending to and receiving from the group.
type UDPMulticast struct {
	conn  *net.UDPConn
	group *net.UDPAddr
	open  atomix.Bool
}

// OpenMulticast opens a UDP socket and joins the configured group.
func OpenMulticast(cfg MulticastConfig) (*UDPMulticast, error) {
	cfg = cfg.withDefaults()

	ip := net.ParseIP(cfg.GroupIP)
	if ip == nil || !ip.IsMulticast() {
		return nil, fmt.Errorf("%w: %q", ErrNotMulticast, cfg.GroupIP)
	}
	group := &net.UDPAddr{IP: ip, Port: int(cfg.Port)}

	conn, err := net.ListenMulticastUDP("udp4", nil, group)
	if err != nil {
		return nil, fmt.Errorf("sock: join %s: %w", group, err)
	}
	if err := applyMulticastOpts(conn, cfg); err != nil {
		conn.Close()
		return nil, err
	}

	u := &UDPMulticast{conn: conn, group: group}
	u.open.Store(true)
	return u, nil
}

// IsOpen reports whether the socket is open and joined.
func (u *UDPMulticast) IsOpen() bool {
	return u.open.Load()
}

// Send broadcasts p to the group as one datagram.
func (u *UDPMulticast) Send(p []byte) (int, error) {
	if !u.open.Load() {
		return 0, ErrNotOpen
	}
	n, err := u.conn.WriteToUDP(p, u.group)
	if err != nil {
		return n, fmt.Errorf("sock: send broadcast: %w", err)
	}
	return n, nil
}

// Recv blocks for the next datagram from the group, reading up to
// len(p) bytes. RequestStop breaks a blocked Recv.
func (u *UDPMulticast) Recv(p []byte) (int, error) {
	if !u.open.Load() {
		return 0, ErrNotOpen
	}
	n, _, err := u.conn.ReadFromUDP(p)
	if err != nil {
		return n, fmt.Errorf("sock: recv broadcast: %w", err)
	}
	return n, nil
}

// RequestStop closes the socket, breaking any blocked Recv. Idempotent.
func (u *UDPMulticast) RequestStop() {
	if !u.open.Load() {
		return
	}
	u.open.Store(false)
	u.conn.Close()
}

// Close is RequestStop; both names exist because callers stopping a
// receive loop read better with RequestStop.
func (u *UDPMulticast) Close() {
	u.RequestStop()
}
