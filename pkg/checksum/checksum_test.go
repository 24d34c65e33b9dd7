package checksum

import (
	"encoding/binary"
	"hash/crc32"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swhkit/swhedit/pkg/codec"
)

// sample builds a small buffer with markers and a correct checksum
func sample() []byte {
	b := []byte{0x01, 0, 0, 0, 0, 0x03, 0x14, 'h', 'a', 'r', 'd', 0x00, 0xff}
	binary.LittleEndian.PutUint32(b[1:5], crc32.ChecksumIEEE(b[5:]))
	return b
}

func TestCompute(t *testing.T) {
	b := sample()
	sum, err := Compute(b)
	require.NoError(t, err)
	assert.Equal(t, crc32.ChecksumIEEE(b[5:]), sum)

	// The stored field is outside the checksummed region
	b[2] ^= 0xff
	again, err := Compute(b)
	require.NoError(t, err)
	assert.Equal(t, sum, again)
}

func TestVerify(t *testing.T) {
	b := sample()
	ok, err := Verify(b)
	require.NoError(t, err)
	assert.True(t, ok)

	b[len(b)-1] ^= 0x01
	ok, err = Verify(b)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRecompute_RepairsCorruptedField(t *testing.T) {
	b := sample()
	binary.LittleEndian.PutUint32(b[1:5], 0xdeadbeef)

	fixed, err := Recompute(b)
	require.NoError(t, err)

	stored, err := Stored(fixed)
	require.NoError(t, err)
	computed, err := Compute(fixed)
	require.NoError(t, err)
	assert.Equal(t, computed, stored)

	// Input untouched, only the checksum field differs
	assert.Equal(t, uint32(0xdeadbeef), binary.LittleEndian.Uint32(b[1:5]))
	assert.Equal(t, b[5:], fixed[5:])
	assert.Equal(t, b[0], fixed[0])
}

func TestRecompute_NoOpWhenCorrect(t *testing.T) {
	b := sample()
	fixed, err := Recompute(b)
	require.NoError(t, err)
	assert.Equal(t, b, fixed)
}

func TestShortInput(t *testing.T) {
	for n := 0; n < PayloadOffset; n++ {
		_, err := Compute(make([]byte, n))
		assert.ErrorIs(t, err, codec.ErrTruncated, "length %d", n)
		_, err = Verify(make([]byte, n))
		assert.ErrorIs(t, err, codec.ErrTruncated, "length %d", n)
	}

	// Exactly the header: CRC of an empty payload
	sum, err := Compute([]byte{1, 0, 0, 0, 0})
	require.NoError(t, err)
	assert.Equal(t, uint32(0), sum)
}

func TestFixFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "save.dat")

	good := sample()
	require.NoError(t, os.WriteFile(path, good, 0644))

	result, err := FixFile(path)
	require.NoError(t, err)
	assert.False(t, result.Fixed)
	assert.Equal(t, result.Stored, result.Computed)

	bad := sample()
	binary.LittleEndian.PutUint32(bad[1:5], 0x12345678)
	require.NoError(t, os.WriteFile(path, bad, 0644))

	result, err = FixFile(path)
	require.NoError(t, err)
	assert.True(t, result.Fixed)
	assert.Equal(t, uint32(0x12345678), result.Stored)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, good, data)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestFixFile_Missing(t *testing.T) {
	_, err := FixFile(filepath.Join(t.TempDir(), "nope.dat"))
	assert.Error(t, err)
}
