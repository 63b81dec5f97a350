// Package protocol owns the Source RCON wire contract.
//
// Ownership boundary:
// - packet layout and type codes
// - encode/decode primitives with size limits
// - wire-level error values
package protocol
