package backup

import (
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"time"
)

// recordHeaderSize is CRC32(4) + PathSize(4) + DataSize(4) + Timestamp(8)
const recordHeaderSize = 20

// Record is one archived savegame: the path it was read from and its bytes
type Record struct {
	CRC32     uint32 // CRC32 over everything after this field
	PathSize  uint32
	DataSize  uint32
	Timestamp uint64 // Unix nanoseconds when archived
	Path      []byte
	Data      []byte
}

// NewRecord creates a record stamped with the current time
func NewRecord(path string, data []byte) *Record {
	return &Record{
		PathSize:  uint32(len(path)),
		DataSize:  uint32(len(data)),
		Timestamp: uint64(time.Now().UnixNano()),
		Path:      []byte(path),
		Data:      data,
	}
}

// Encode serializes a record
// Format: [CRC32(4)][PathSize(4)][DataSize(4)][Timestamp(8)][Path][Data]
func (r *Record) Encode() []byte {
	r.CRC32 = r.calculateCRC32()

	buf := make([]byte, r.Size())
	binary.LittleEndian.PutUint32(buf[0:], r.CRC32)
	binary.LittleEndian.PutUint32(buf[4:], r.PathSize)
	binary.LittleEndian.PutUint32(buf[8:], r.DataSize)
	binary.LittleEndian.PutUint64(buf[12:], r.Timestamp)
	copy(buf[recordHeaderSize:], r.Path)
	copy(buf[recordHeaderSize+len(r.Path):], r.Data)

	return buf
}

// DecodeRecord deserializes a record without validating it
func DecodeRecord(data []byte) (*Record, error) {
	if len(data) < recordHeaderSize {
		return nil, fmt.Errorf("data too short for record header: %d bytes", len(data))
	}

	r := &Record{
		CRC32:     binary.LittleEndian.Uint32(data[0:4]),
		PathSize:  binary.LittleEndian.Uint32(data[4:8]),
		DataSize:  binary.LittleEndian.Uint32(data[8:12]),
		Timestamp: binary.LittleEndian.Uint64(data[12:20]),
	}
	need := uint64(recordHeaderSize) + uint64(r.PathSize) + uint64(r.DataSize)
	if uint64(len(data)) < need {
		return nil, fmt.Errorf("data too short for path/data sizes: %d < %d", len(data), need)
	}

	pathEnd := recordHeaderSize + int(r.PathSize)
	r.Path = data[recordHeaderSize:pathEnd]
	r.Data = data[pathEnd : pathEnd+int(r.DataSize)]

	return r, nil
}

// Validate checks the integrity of a record using CRC32
func (r *Record) Validate() error {
	if sum := r.calculateCRC32(); r.CRC32 != sum {
		return fmt.Errorf("%w: CRC32 mismatch: %08x != %08x", ErrCorruption, r.CRC32, sum)
	}
	return nil
}

// Size returns the total size of the record when encoded
func (r *Record) Size() int {
	return recordHeaderSize + len(r.Path) + len(r.Data)
}

// Time returns the archive timestamp
func (r *Record) Time() time.Time {
	return time.Unix(0, int64(r.Timestamp))
}

func (r *Record) calculateCRC32() uint32 {
	var header [16]byte
	binary.LittleEndian.PutUint32(header[0:], r.PathSize)
	binary.LittleEndian.PutUint32(header[4:], r.DataSize)
	binary.LittleEndian.PutUint64(header[8:], r.Timestamp)

	crc := crc32.NewIEEE()
	crc.Write(header[:])
	crc.Write(r.Path)
	crc.Write(r.Data)
	return crc.Sum32()
}
