package codec

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three failure classes of a decode/encode attempt.
// Every typed error below matches exactly one of them through errors.Is.
var (
	ErrTruncated = errors.New("truncated input")
	ErrFormat    = errors.New("format violation")
	ErrRoundtrip = errors.New("roundtrip mismatch")
)

// TruncatedError reports a read that ran past the end of the buffer
type TruncatedError struct {
	Offset    int // Offset the read started at
	Wanted    int // Bytes the read needed
	Available int // Bytes left in the buffer
}

func (e *TruncatedError) Error() string {
	return fmt.Sprintf("truncated input at offset 0x%x: wanted %d bytes, %d available",
		e.Offset, e.Wanted, e.Available)
}

func (e *TruncatedError) Is(target error) bool {
	return target == ErrTruncated
}

// FormatError reports an expected-constant field, a self-consistency check or
// a required lookup that did not hold.
type FormatError struct {
	Field    string
	Offset   int
	Expected interface{}
	Observed interface{}
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("format violation in %s at offset 0x%x: expected %s, got %s",
		e.Field, e.Offset, formatValue(e.Expected), formatValue(e.Observed))
}

func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}

// RoundtripError reports the first byte where a re-encoded buffer differs
// from the buffer it was decoded from.
type RoundtripError struct {
	Offset int
	Want   int // Original byte, or -1 past the end of the original
	Got    int // Re-encoded byte, or -1 past the end of the re-encoding
}

func (e *RoundtripError) Error() string {
	return fmt.Sprintf("roundtrip mismatch at offset 0x%x: original %s, re-encoded %s",
		e.Offset, formatByte(e.Want), formatByte(e.Got))
}

func (e *RoundtripError) Is(target error) bool {
	return target == ErrRoundtrip
}

func formatValue(v interface{}) string {
	switch v := v.(type) {
	case []byte:
		return fmt.Sprintf("%q", v)
	case uint8, uint16, uint32:
		return fmt.Sprintf("0x%x", v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

func formatByte(b int) string {
	if b < 0 {
		return "EOF"
	}
	return fmt.Sprintf("0x%02x", b)
}
