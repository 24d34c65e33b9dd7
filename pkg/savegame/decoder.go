package savegame

import (
	"github.com/pkg/errors"

	"github.com/swhkit/swhedit/pkg/codec"
)

// decoder wraps a codec.Reader with a sticky error so long field sequences
// read straight through. Once a read fails every later read returns a zero
// value and err keeps the first failure.
type decoder struct {
	r   *codec.Reader
	err error
}

func newDecoder(data []byte) *decoder {
	return &decoder{r: codec.NewReader(data)}
}

func (d *decoder) fail(err error) {
	if d.err == nil {
		d.err = err
	}
}

// wrapf adds context to the current error, if any
func (d *decoder) wrapf(format string, args ...interface{}) {
	if d.err != nil {
		d.err = errors.Wrapf(d.err, format, args...)
	}
}

func (d *decoder) offset() int {
	return d.r.Offset()
}

func (d *decoder) u8() uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.Uint8()
	d.fail(err)
	return v
}

func (d *decoder) u16() uint16 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.Uint16()
	d.fail(err)
	return v
}

func (d *decoder) u32() uint32 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.Uint32()
	d.fail(err)
	return v
}

func (d *decoder) raw6() (out [6]byte) {
	if d.err != nil {
		return out
	}
	b, err := d.r.Bytes(len(out))
	d.fail(err)
	copy(out[:], b)
	return out
}

func (d *decoder) str() string {
	if d.err != nil {
		return ""
	}
	b, err := d.r.String()
	d.fail(err)
	return string(b)
}

func (d *decoder) u8s() []uint8 {
	if d.err != nil {
		return nil
	}
	v, err := d.r.Uint8List()
	d.fail(err)
	return v
}

func (d *decoder) u32s() []uint32 {
	if d.err != nil {
		return nil
	}
	v, err := d.r.Uint32List()
	d.fail(err)
	return v
}

func (d *decoder) strs() []string {
	if d.err != nil {
		return nil
	}
	v, err := d.r.StringList()
	d.fail(err)
	if v == nil {
		return nil
	}
	out := make([]string, len(v))
	for i, s := range v {
		out[i] = string(s)
	}
	return out
}

func (d *decoder) expect8(field string, want uint8) uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ExpectUint8(field, want)
	d.fail(err)
	return v
}

func (d *decoder) expect32(field string, want uint32) uint32 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.ExpectUint32(field, want)
	d.fail(err)
	return v
}

func (d *decoder) expectStr(field, want string) string {
	if d.err != nil {
		return ""
	}
	v, err := d.r.ExpectString(field, []byte(want))
	d.fail(err)
	return string(v)
}

func (d *decoder) peek8() uint8 {
	if d.err != nil {
		return 0
	}
	v, err := d.r.PeekUint8()
	d.fail(err)
	return v
}

func (d *decoder) rest() []byte {
	if d.err != nil {
		return nil
	}
	return d.r.Rest()
}

// duplicate records a repeated collection key
func (d *decoder) duplicate(field string, offset int, key interface{}) {
	d.fail(&codec.FormatError{
		Field:    field,
		Offset:   offset,
		Expected: "unique key",
		Observed: key,
	})
}

// encoder mirrors decoder on top of a codec.Writer, which is already sticky
type encoder struct {
	*codec.Writer
}

func newEncoder(size int) *encoder {
	return &encoder{codec.NewWriter(size)}
}

func (e *encoder) str(s string) {
	e.PutString([]byte(s))
}

func (e *encoder) strs(field string, values []string) {
	e.PutCount(field, len(values))
	for _, s := range values {
		e.str(s)
	}
}
