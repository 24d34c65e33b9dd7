// Package checksum maintains the CRC32 that guards a savegame.
//
// The checksum is CRC32 (IEEE) over every byte from offset 5 to the end of
// the file, stored little-endian at offsets 1..4, between the 0x01 and 0x03
// marker bytes.
package checksum

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"hash/crc32"
	"os"

	"github.com/natefinch/atomic"

	"github.com/swhkit/swhedit/pkg/codec"
)

const (
	// FieldOffset is where the stored checksum starts
	FieldOffset = 1
	// FieldSize is the width of the stored checksum
	FieldSize = 4
	// PayloadOffset is where the checksummed region starts
	PayloadOffset = FieldOffset + FieldSize
)

func checkLen(b []byte) error {
	if len(b) < PayloadOffset {
		return &codec.TruncatedError{Offset: 0, Wanted: PayloadOffset, Available: len(b)}
	}
	return nil
}

// Compute returns the checksum the buffer should carry
func Compute(b []byte) (uint32, error) {
	if err := checkLen(b); err != nil {
		return 0, err
	}
	return crc32.ChecksumIEEE(b[PayloadOffset:]), nil
}

// Stored returns the checksum the buffer currently carries
func Stored(b []byte) (uint32, error) {
	if err := checkLen(b); err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b[FieldOffset:PayloadOffset]), nil
}

// Verify reports whether the stored checksum matches the payload
func Verify(b []byte) (bool, error) {
	stored, err := Stored(b)
	if err != nil {
		return false, err
	}
	computed, _ := Compute(b)
	return stored == computed, nil
}

// Patch overwrites the stored checksum in place
func Patch(b []byte) error {
	sum, err := Compute(b)
	if err != nil {
		return err
	}
	binary.LittleEndian.PutUint32(b[FieldOffset:PayloadOffset], sum)
	return nil
}

// Recompute returns a copy of b carrying the correct checksum.
// The copy is byte-identical to b when b was already correct.
func Recompute(b []byte) ([]byte, error) {
	out := bytes.Clone(b)
	if err := Patch(out); err != nil {
		return nil, err
	}
	return out, nil
}

// Result describes what FixFile found
type Result struct {
	Stored   uint32
	Computed uint32
	Fixed    bool
}

// FixFile repairs the checksum of the file at path without decoding it.
// The file is only rewritten when the stored checksum was wrong.
func FixFile(path string) (*Result, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read savegame: %w", err)
	}

	stored, err := Stored(data)
	if err != nil {
		return nil, err
	}
	computed, _ := Compute(data)

	result := &Result{Stored: stored, Computed: computed}
	if stored == computed {
		return result, nil
	}

	binary.LittleEndian.PutUint32(data[FieldOffset:PayloadOffset], computed)

	// atomic keeps the existing file's mode
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return nil, fmt.Errorf("failed to write savegame: %w", err)
	}
	result.Fixed = true
	return result, nil
}
