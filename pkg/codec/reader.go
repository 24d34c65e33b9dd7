package codec

import (
	"bytes"
	"encoding/binary"
)

// Reader decodes primitives from an in-memory buffer
type Reader struct {
	data   []byte
	offset int
}

// NewReader creates a reader positioned at the start of data
func NewReader(data []byte) *Reader {
	return &Reader{data: data}
}

// Offset returns the current read position
func (r *Reader) Offset() int {
	return r.offset
}

// Remaining returns the number of unread bytes
func (r *Reader) Remaining() int {
	return len(r.data) - r.offset
}

// Rest consumes and returns a copy of every unread byte
func (r *Reader) Rest() []byte {
	rest := append([]byte{}, r.data[r.offset:]...)
	r.offset = len(r.data)
	return rest
}

func (r *Reader) take(n int) ([]byte, error) {
	if n > r.Remaining() {
		return nil, &TruncatedError{Offset: r.offset, Wanted: n, Available: r.Remaining()}
	}
	b := r.data[r.offset : r.offset+n]
	r.offset += n
	return b, nil
}

// Bytes reads a fixed-size raw region
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.take(n)
	if err != nil {
		return nil, err
	}
	return append([]byte{}, b...), nil
}

// PeekUint8 returns the next byte without consuming it
func (r *Reader) PeekUint8() (uint8, error) {
	if r.Remaining() < 1 {
		return 0, &TruncatedError{Offset: r.offset, Wanted: 1, Available: 0}
	}
	return r.data[r.offset], nil
}

func (r *Reader) Uint8() (uint8, error) {
	b, err := r.take(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *Reader) Uint16() (uint16, error) {
	b, err := r.take(2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

func (r *Reader) Uint32() (uint32, error) {
	b, err := r.take(4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// String reads a one-byte length followed by that many raw bytes.
// The content is not required to be valid UTF-8.
func (r *Reader) String() ([]byte, error) {
	n, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	return r.Bytes(int(n))
}

func (r *Reader) Uint8List() ([]uint8, error) {
	count, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	values := make([]uint8, 0, count)
	for range int(count) {
		v, err := r.Uint8()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (r *Reader) Uint32List() ([]uint32, error) {
	count, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	values := make([]uint32, 0, count)
	for range int(count) {
		v, err := r.Uint32()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

func (r *Reader) StringList() ([][]byte, error) {
	count, err := r.Uint8()
	if err != nil {
		return nil, err
	}
	values := make([][]byte, 0, count)
	for range int(count) {
		v, err := r.String()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	return values, nil
}

// ExpectUint8 reads a byte and checks it against its documented constant.
// The observed value is returned either way so callers can store it.
func (r *Reader) ExpectUint8(field string, want uint8) (uint8, error) {
	offset := r.offset
	v, err := r.Uint8()
	if err != nil {
		return 0, err
	}
	if v != want {
		return v, &FormatError{Field: field, Offset: offset, Expected: want, Observed: v}
	}
	return v, nil
}

func (r *Reader) ExpectUint32(field string, want uint32) (uint32, error) {
	offset := r.offset
	v, err := r.Uint32()
	if err != nil {
		return 0, err
	}
	if v != want {
		return v, &FormatError{Field: field, Offset: offset, Expected: want, Observed: v}
	}
	return v, nil
}

// ExpectString reads a string that must repeat a value decoded earlier
func (r *Reader) ExpectString(field string, want []byte) ([]byte, error) {
	offset := r.offset
	v, err := r.String()
	if err != nil {
		return nil, err
	}
	if !bytes.Equal(v, want) {
		return v, &FormatError{Field: field, Offset: offset, Expected: want, Observed: v}
	}
	return v, nil
}
