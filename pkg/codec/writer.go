package codec

import (
	"encoding/binary"
	"fmt"
)

// MaxCount is the largest length or element count a one-byte prefix can carry
const MaxCount = 0xff

// Writer encodes primitives into an in-memory buffer.
// The first error sticks: later calls are no-ops and Err reports it.
type Writer struct {
	buf []byte
	err error
}

// NewWriter creates an empty writer with the given capacity hint
func NewWriter(size int) *Writer {
	return &Writer{buf: make([]byte, 0, size)}
}

// Bytes returns the encoded buffer
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far
func (w *Writer) Len() int {
	return len(w.buf)
}

// Err returns the first error encountered while writing
func (w *Writer) Err() error {
	return w.err
}

func (w *Writer) count(field string, n int) bool {
	if w.err != nil {
		return false
	}
	if n > MaxCount {
		w.err = &FormatError{
			Field:    field,
			Offset:   len(w.buf),
			Expected: fmt.Sprintf("at most %d", MaxCount),
			Observed: n,
		}
		return false
	}
	w.buf = append(w.buf, byte(n))
	return true
}

func (w *Writer) PutUint8(v uint8) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, v)
}

func (w *Writer) PutUint16(v uint16) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint16(w.buf, v)
}

func (w *Writer) PutUint32(v uint32) {
	if w.err != nil {
		return
	}
	w.buf = binary.LittleEndian.AppendUint32(w.buf, v)
}

// PutBytes writes a raw region with no length prefix
func (w *Writer) PutBytes(b []byte) {
	if w.err != nil {
		return
	}
	w.buf = append(w.buf, b...)
}

// PutString writes a one-byte length followed by the raw bytes
func (w *Writer) PutString(s []byte) {
	if !w.count("string length", len(s)) {
		return
	}
	w.buf = append(w.buf, s...)
}

func (w *Writer) PutUint8List(values []uint8) {
	if !w.count("uint8 list count", len(values)) {
		return
	}
	w.buf = append(w.buf, values...)
}

func (w *Writer) PutUint32List(values []uint32) {
	if !w.count("uint32 list count", len(values)) {
		return
	}
	for _, v := range values {
		w.PutUint32(v)
	}
}

func (w *Writer) PutStringList(values [][]byte) {
	if !w.count("string list count", len(values)) {
		return
	}
	for _, v := range values {
		w.PutString(v)
	}
}

// PutCount writes a one-byte element count for a list whose elements the
// caller encodes itself.
func (w *Writer) PutCount(field string, n int) {
	w.count(field, n)
}
