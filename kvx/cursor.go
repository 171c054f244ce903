package kvx

import (
	"encoding/binary"
	"io"
)

// cursor reads little-endian words from a byte slice and remembers where it
// is, so failures can report the offending offset.
type cursor struct {
	data []byte
	pos  int
}

func newCursor(b []byte) *cursor { return &cursor{data: b} }

func (c *cursor) remaining() int { return len(c.data) - c.pos }

func (c *cursor) u32() (uint32, error) {
	if c.remaining() < 4 {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint32(c.data[c.pos:])
	c.pos += 4
	return v, nil
}

func (c *cursor) u16() (uint16, error) {
	if c.remaining() < 2 {
		return 0, io.ErrUnexpectedEOF
	}
	v := binary.LittleEndian.Uint16(c.data[c.pos:])
	c.pos += 2
	return v, nil
}

// bytes returns the next n bytes without copying.
func (c *cursor) bytes(n int) ([]byte, error) {
	if n < 0 || c.remaining() < n {
		return nil, io.ErrUnexpectedEOF
	}
	b := c.data[c.pos : c.pos+n]
	c.pos += n
	return b, nil
}
