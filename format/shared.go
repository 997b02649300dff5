package format

import (
	"bytes"
	"io"
)

// readAll drains r and strips all trailing '\r' and '\n' bytes; graph6/sparse6
// files are small enough to read whole rather than stream.
func readAll(r io.Reader) ([]byte, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	data = bytes.TrimRight(data, "\r\n")
	return data, nil
}

// decodeN reads the graph6/sparse6 vertex-count prefix of data: a single
// byte gives n directly for n<=62; a marker
// byte greater than 62 signals that the next three bytes encode n as
// ((b0-63)<<12) | ((b1-63)<<6) | (b2-63). It returns n and the remaining,
// unconsumed bytes.
func decodeN(data []byte) (n int, rest []byte, err error) {
	if len(data) < 1 {
		return 0, nil, ErrMalformedInput
	}
	if data[0] < 63 {
		return 0, nil, ErrMalformedInput
	}

	marker := int(data[0]) - 63
	if marker <= 62 {
		return marker, data[1:], nil
	}

	if len(data) < 4 {
		return 0, nil, ErrMalformedInput
	}
	for _, b := range data[1:4] {
		if b < 63 {
			return 0, nil, ErrMalformedInput
		}
	}
	b0 := int(data[1]) - 63
	b1 := int(data[2]) - 63
	b2 := int(data[3]) - 63
	n = (b0 << 12) | (b1 << 6) | b2
	return n, data[4:], nil
}

// unpackSixBitStream expands graph6's 6-bits-per-byte packing (byte-63,
// most significant bit first) into a flat stream of 0/1 values.
func unpackSixBitStream(data []byte) []byte {
	bits := make([]byte, 0, len(data)*6)
	for _, b := range data {
		v := int(b) - 63
		for shift := 5; shift >= 0; shift-- {
			bits = append(bits, byte((v>>uint(shift))&1))
		}
	}
	return bits
}
