package backup

import (
	"bytes"
	"encoding/binary"
	"errors"
	"testing"
)

func TestRecord_EncodeDecodeRoundTrip(t *testing.T) {
	testCases := []struct {
		name string
		path string
		data []byte
	}{
		{
			name: "typical save",
			path: "/home/player/.local/share/swh/savegame.dat",
			data: []byte{0x01, 0xde, 0xad, 0xbe, 0xef, 0x03, 0x00},
		},
		{
			name: "empty path",
			path: "",
			data: []byte("bytes"),
		},
		{
			name: "empty data",
			path: "save.dat",
			data: []byte{},
		},
		{
			name: "large save",
			path: "save.dat",
			data: bytes.Repeat([]byte{0xa5}, 64*1024),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			encoded := NewRecord(tc.path, tc.data).Encode()

			record, err := DecodeRecord(encoded)
			if err != nil {
				t.Fatalf("DecodeRecord failed: %v", err)
			}
			if err := record.Validate(); err != nil {
				t.Fatalf("Validate failed: %v", err)
			}
			if string(record.Path) != tc.path {
				t.Errorf("path mismatch: got %q, want %q", record.Path, tc.path)
			}
			if !bytes.Equal(record.Data, tc.data) {
				t.Errorf("data mismatch: got %d bytes, want %d", len(record.Data), len(tc.data))
			}
			if record.Size() != len(encoded) {
				t.Errorf("Size() = %d, encoded length %d", record.Size(), len(encoded))
			}
		})
	}
}

func TestRecord_HeaderLayout(t *testing.T) {
	r := NewRecord("ab", []byte{1, 2, 3})
	r.Timestamp = 0x0102030405060708
	encoded := r.Encode()

	if got := binary.LittleEndian.Uint32(encoded[4:8]); got != 2 {
		t.Errorf("path size: got %d", got)
	}
	if got := binary.LittleEndian.Uint32(encoded[8:12]); got != 3 {
		t.Errorf("data size: got %d", got)
	}
	if got := binary.LittleEndian.Uint64(encoded[12:20]); got != 0x0102030405060708 {
		t.Errorf("timestamp: got %x", got)
	}
	if string(encoded[20:22]) != "ab" {
		t.Errorf("path bytes: got %q", encoded[20:22])
	}
}

func TestRecord_DetectsCorruption(t *testing.T) {
	encoded := NewRecord("save.dat", []byte("savegame body")).Encode()

	// Flip a bit inside the data
	encoded[len(encoded)-1] ^= 0x01

	record, err := DecodeRecord(encoded)
	if err != nil {
		t.Fatalf("DecodeRecord failed: %v", err)
	}
	if err := record.Validate(); !errors.Is(err, ErrCorruption) {
		t.Fatalf("expected ErrCorruption, got %v", err)
	}
}

func TestDecodeRecord_Short(t *testing.T) {
	if _, err := DecodeRecord(make([]byte, recordHeaderSize-1)); err == nil {
		t.Error("expected error for short header")
	}

	encoded := NewRecord("save.dat", []byte("body")).Encode()
	if _, err := DecodeRecord(encoded[:len(encoded)-2]); err == nil {
		t.Error("expected error for truncated data")
	}
}
