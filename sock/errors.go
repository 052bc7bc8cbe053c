// ©House of Moo 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package sock

import "errors"

// ErrNotConnected indicates an operation on a TCP client that is not
// connected (never connected, or after Disconnect).
var ErrNotConnected = errors.New("sock: not connected")

// ErrNotOpen indicates an operation on a multicast socket that is not
// open (never opened, or after Close).
var ErrNotOpen = errors.New("sock: socket not open")

// ErrNotMulticast indicates the configured group address is not a
// multicast address.
var ErrNotMulticast = errors.New("sock: group address is not multicast")
