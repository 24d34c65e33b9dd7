package savegame

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSave(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "savegame.dat")
	require.NoError(t, os.WriteFile(path, sampleBytes(), 0644))

	sg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "hard", sg.Difficulty)

	out := filepath.Join(dir, "edited.dat")
	_, err = sg.AddItem("goggles")
	require.NoError(t, err)
	require.NoError(t, Save(sg, out))

	edited, err := Load(out)
	require.NoError(t, err)
	assert.Equal(t, 3, edited.Items.Len())

	// Nothing but the output is left behind
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSave_Twice(t *testing.T) {
	dir := t.TempDir()
	sg, err := Decode(sampleBytes())
	require.NoError(t, err)

	a := filepath.Join(dir, "a.dat")
	b := filepath.Join(dir, "b.dat")
	require.NoError(t, Save(sg, a))
	require.NoError(t, Save(sg, b))

	first, err := os.ReadFile(a)
	require.NoError(t, err)
	second, err := os.ReadFile(b)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, sampleBytes(), first)
}

func TestLoad_BadChecksumStillLoads(t *testing.T) {
	data := sampleBytes()
	binary.LittleEndian.PutUint32(data[1:5], 0)

	path := filepath.Join(t.TempDir(), "hand_edited.dat")
	require.NoError(t, os.WriteFile(path, data, 0644))

	sg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), sg.Checksum)
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.dat"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := filepath.Join(dir, "short.dat")
	require.NoError(t, os.WriteFile(path, []byte{1, 0, 0}, 0644))
	_, err = Load(path)
	assert.Error(t, err)
}

func TestSave_ReplacesExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "slot1.dat")
	require.NoError(t, os.WriteFile(path, []byte("old contents"), 0640))

	sg, err := Decode(sampleBytes())
	require.NoError(t, err)
	sg.Water = 1
	require.NoError(t, Save(sg, path))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, uint32(1), got.Water)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")

	if runtime.GOOS != "windows" {
		info, err := os.Stat(path)
		require.NoError(t, err)
		assert.Equal(t, os.FileMode(0640), info.Mode().Perm())
	}
}

func TestSave_UnencodableLeavesFileAlone(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slot1.dat")
	require.NoError(t, os.WriteFile(path, sampleBytes(), 0644))

	sg := sampleSavegame()
	sg.SeenItems = []string{"x"}
	sg.HaveErrantSeenItemsFlag = false
	assert.Error(t, Save(sg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, sampleBytes(), data)
}
