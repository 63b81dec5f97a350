// Package rcon implements the client side of the Source RCON protocol:
// a single persistent TCP connection carrying an authentication
// handshake followed by synchronous command/response exchanges.
//
// A Session moves through an explicit state machine:
//
//	Disconnected → Connecting → Authenticating → Ready → Closed
//	                   ↓              ↓            ↓
//	                   └─────────→ Broken ←────────┘
//
// Broken is absorbing: after any I/O, framing, or timeout failure the
// stream position is untrustworthy and the caller must Close and dial a
// new session. Reconnect and retry policy belongs to the caller.
package rcon
