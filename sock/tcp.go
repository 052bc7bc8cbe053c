// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sock

import (
	"fmt"
	"io"
	"net"
	"strconv"
	"sync"

	"code.hybscloud.com/atomix"
)

// TCPClient wraps one connected TCP stream.
//
// Sends are serialized by a mutex: to prevent any chance of a send
// being interrupted and data arriving at the destination interleaved,
// only one goroutine writes at a time. Receives are not locked — only
// one goroutine is expected to read a socket's incoming stream.
type TCPClient struct {
	sendMu    sync.Mutex
	conn      net.Conn
	connected atomix.Bool
}

// DialTCP connects to ip:port and returns the connected client.
func DialTCP(ip string, port uint16) (*TCPClient, error) {
	conn, err := net.Dial("tcp", net.JoinHostPort(ip, strconv.Itoa(int(port))))
	if err != nil {
		return nil, fmt.Errorf("sock: dial %s:%d: %w", ip, port, err)
	}
	return adopt(conn), nil
}

// adopt wraps an established connection, e.g. one handed out by Accept.
func adopt(conn net.Conn) *TCPClient {
	c := &TCPClient{conn: conn}
	c.connected.Store(true)
	return c
}

// Connected reports whether the client holds a live connection.
func (c *TCPClient) Connected() bool {
	return c.connected.Load()
}

// Send writes p in full. Concurrent Sends are serialized; the bytes of
// two frames never interleave on the wire.
func (c *TCPClient) Send(p []byte) error {
	c.sendMu.Lock()
	defer c.sendMu.Unlock()

	if !c.connected.Load() {
		return ErrNotConnected
	}
	if _, err := c.conn.Write(p); err != nil {
		return fmt.Errorf("sock: send: %w", err)
	}
	return nil
}

// Recv reads up to len(p) bytes, returning the count read. Blocks until
// data arrives, the peer closes, or RequestStop breaks the read.
func (c *TCPClient) Recv(p []byte) (int, error) {
	if !c.connected.Load() {
		return 0, ErrNotConnected
	}
	n, err := c.conn.Read(p)
	if err != nil {
		return n, fmt.Errorf("sock: recv: %w", err)
	}
	return n, nil
}

// RecvAll reads exactly len(p) bytes.
func (c *TCPClient) RecvAll(p []byte) error {
	if !c.connected.Load() {
		return ErrNotConnected
	}
	if _, err := io.ReadFull(c.conn, p); err != nil {
		return fmt.Errorf("sock: recv all: %w", err)
	}
	return nil
}

// RemoteAddr returns the peer address, or nil when not connected.
func (c *TCPClient) RemoteAddr() net.Addr {
	if !c.connected.Load() {
		return nil
	}
	return c.conn.RemoteAddr()
}

// Disconnect closes the connection, breaking any blocked Recv.
// Idempotent.
func (c *TCPClient) Disconnect() {
	if !c.connected.Load() {
		return
	}
	c.connected.Store(false)
	c.conn.Close()
}

// RequestStop is Disconnect under the name the rest of the module uses
// for "break the blocking call".
func (c *TCPClient) RequestStop() {
	c.Disconnect()
}

// TCPServer wraps a listening TCP socket.
type TCPServer struct {
	ln      net.Listener
	serving atomix.Bool
}

// ListenTCP binds and listens on ip:port. Use "0.0.0.0" to accept on
// all interfaces.
func ListenTCP(ip string, port uint16) (*TCPServer, error) {
	ln, err := net.Listen("tcp", net.JoinHostPort(ip, strconv.Itoa(int(port))))
	if err != nil {
		return nil, fmt.Errorf("sock: listen %s:%d: %w", ip, port, err)
	}
	s := &TCPServer{ln: ln}
	s.serving.Store(true)
	return s, nil
}

// Serving reports whether the listener is accepting connections.
func (s *TCPServer) Serving() bool {
	return s.serving.Load()
}

// Addr returns the bound listener address, or nil after RequestStop.
func (s *TCPServer) Addr() net.Addr {
	if !s.serving.Load() {
		return nil
	}
	return s.ln.Addr()
}

// Accept blocks for the next inbound connection and returns it wrapped
// as a TCPClient. RequestStop breaks a blocked Accept.
func (s *TCPServer) Accept() (*TCPClient, error) {
	if !s.serving.Load() {
		return nil, ErrNotConnected
	}
	conn, err := s.ln.Accept()
	if err != nil {
		return nil, fmt.Errorf("sock: accept: %w", err)
	}
	return adopt(conn), nil
}

// RequestStop closes the listener, breaking any blocked Accept.
// Idempotent.
func (s *TCPServer) RequestStop() {
	if !s.serving.Load() {
		return
	}
	s.serving.Store(false)
	s.ln.Close()
}
