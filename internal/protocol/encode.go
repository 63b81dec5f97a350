package protocol

import (
	"encoding/binary"
	"io"
	"strings"
	"unicode/utf8"
)

// Encode writes p to w in RCON wire format: little-endian size, id and
// type, the UTF-8 body, then two NUL bytes. The whole packet image is
// assembled first and handed to a single Write call so a packet never
// reaches the stream partially framed.
func Encode(w io.Writer, p Packet, limits Limits) error {
	if strings.IndexByte(p.Body, 0) >= 0 || !utf8.ValidString(p.Body) {
		return ErrBodyEncoding
	}
	if len(p.Body) > int(limits.MaxPacketBytes)-WrapperSize {
		return ErrPacketTooLarge
	}
	size := int32(len(p.Body) + WrapperSize)

	buf := make([]byte, 0, 4+size)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(size))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.ID))
	buf = binary.LittleEndian.AppendUint32(buf, uint32(p.Type))
	buf = append(buf, p.Body...)
	buf = append(buf, 0, 0)

	_, err := w.Write(buf)
	return err
}
