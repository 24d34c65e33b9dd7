package cmd

import (
	"path/filepath"
	"testing"

	"github.com/segmentio/ksuid"
	"github.com/stretchr/testify/require"

	"github.com/swhkit/swhedit/pkg/savegame"
)

// writeSave writes a small valid savegame with two unlocked characters, one
// of them without any XP yet
func writeSave(t *testing.T, dir string) string {
	t.Helper()
	sg := savegame.New()
	sg.Difficulty = "normal"
	sg.Water = 100
	sg.InventorySize = 1

	piper := savegame.NewCharacter("piper")
	piper.Attributes.Set("starting", 0)
	piper.Attributes.Set(savegame.XPAttribute, 500)
	sg.Characters.Set(piper.Name, piper)

	seasnipe := savegame.NewCharacter("seasnipe")
	seasnipe.Attributes.Set("starting", 0)
	sg.Characters.Set(seasnipe.Name, seasnipe)

	sg.UnlockedChars = []string{"piper", "seasnipe"}

	_, err := sg.AddItem("handgun_01")
	require.NoError(t, err)

	path := filepath.Join(dir, "slot1.dat")
	require.NoError(t, savegame.Save(sg, path))
	return path
}

type fakeStore struct {
	paths []string
}

func (f *fakeStore) StoreFile(path string) (ksuid.KSUID, bool, error) {
	f.paths = append(f.paths, path)
	return ksuid.New(), true, nil
}
