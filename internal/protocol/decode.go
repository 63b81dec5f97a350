package protocol

import (
	"encoding/binary"
	"errors"
	"io"
	"strings"
)

// Decode reads one packet from r. The transport only guarantees byte
// stream semantics, so the size prefix is read first and the remainder
// is accumulated with io.ReadFull, which loops over short reads. The
// declared size is bounded by limits before any allocation.
//
// Body bytes that are not valid UTF-8 are replaced with U+FFFD rather
// than failing; some servers emit raw bytes in command output.
func Decode(r io.Reader, limits Limits) (Packet, error) {
	var head [4]byte
	if _, err := io.ReadFull(r, head[:]); err != nil {
		return Packet{}, closedOr(err)
	}
	size := int32(binary.LittleEndian.Uint32(head[:]))
	if size < WrapperSize {
		return Packet{}, ErrPacketTooSmall
	}
	if size > limits.MaxPacketBytes {
		return Packet{}, ErrPacketTooLarge
	}

	payload := make([]byte, size)
	if _, err := io.ReadFull(r, payload); err != nil {
		return Packet{}, closedOr(err)
	}
	if payload[size-2] != 0 || payload[size-1] != 0 {
		return Packet{}, ErrBadTerminator
	}

	return Packet{
		ID:   int32(binary.LittleEndian.Uint32(payload[0:4])),
		Type: int32(binary.LittleEndian.Uint32(payload[4:8])),
		Body: strings.ToValidUTF8(string(payload[8:size-2]), "�"),
	}, nil
}

func closedOr(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return ErrConnectionClosed
	}
	return err
}
