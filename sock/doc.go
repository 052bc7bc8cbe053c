// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package sock provides thin, ownership-explicit wrappers over TCP and
// UDP multicast sockets.
//
// The wrappers add exactly two behaviors to the underlying net types:
// sends on a TCPClient are serialized so a frame written by one
// goroutine can never interleave with another's, and every socket has a
// RequestStop that breaks a blocked receive by closing the handle.
// Everything else — timeouts, retries, framing — belongs to the caller.
package sock
