package cmd

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swhkit/swhedit/pkg/checksum"
)

func breakChecksum(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	binary.LittleEndian.PutUint32(data[checksum.FieldOffset:], 0x12345678)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return data
}

func TestRunFixsum_InPlace(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir)
	broken := breakChecksum(t, path)
	store := &fakeStore{}

	var out bytes.Buffer
	require.NoError(t, runFixsum(&out, path, "", store))
	assert.Contains(t, out.String(), "Checksum in the file itself: 0x12345678\n")
	assert.Contains(t, out.String(), "Wrote corrected checksum\n")
	assert.Equal(t, []string{path}, store.paths)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	ok, err := checksum.Verify(data)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, broken[checksum.PayloadOffset:], data[checksum.PayloadOffset:])
}

func TestRunFixsum_AlreadyCorrect(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir)
	store := &fakeStore{}

	var out bytes.Buffer
	require.NoError(t, runFixsum(&out, path, "", store))
	assert.Contains(t, out.String(), "Checksum is correct, exiting.\n")
	assert.Empty(t, store.paths)
}

func TestRunFixsum_ToOutput(t *testing.T) {
	dir := t.TempDir()
	path := writeSave(t, dir)
	broken := breakChecksum(t, path)
	output := filepath.Join(dir, "fixed.dat")

	var out bytes.Buffer
	require.NoError(t, runFixsum(&out, path, output, nil))

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	ok, _ := checksum.Verify(data)
	assert.True(t, ok)

	// The source keeps its bad checksum
	src, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, broken, src)
}

func TestRunFixsum_TooShort(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiny.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 2}, 0644))

	var out bytes.Buffer
	assert.Error(t, runFixsum(&out, path, "", nil))
}
