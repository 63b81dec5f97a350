package protocol

import "errors"

var (
	ErrPacketTooSmall   = errors.New("protocol: declared packet size below wrapper minimum")
	ErrPacketTooLarge   = errors.New("protocol: declared packet size above limit")
	ErrBadTerminator    = errors.New("protocol: packet not terminated by two NUL bytes")
	ErrBodyEncoding     = errors.New("protocol: body not representable on the wire")
	ErrConnectionClosed = errors.New("protocol: connection closed mid-packet")
)
