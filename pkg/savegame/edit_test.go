package savegame

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHasDLC(t *testing.T) {
	sg := sampleSavegame()
	assert.True(t, sg.HasDLC(1))
	assert.False(t, sg.HasDLC(2))
	assert.Equal(t, "DLC/dlc02", DLCName(2))

	sg.DLC = append(sg.DLC, "DLC/dlc02")
	assert.True(t, sg.HasDLC(2))
}

func TestAddItemAndHat_SharedCounter(t *testing.T) {
	sg := sampleSavegame()
	start := sg.LastItemID

	item, err := sg.AddItem("smg_09")
	require.NoError(t, err)
	assert.Equal(t, start+1, item.ID)

	hat, err := sg.AddHat("crown")
	require.NoError(t, err)
	assert.Equal(t, start+2, hat.ID)

	again, err := sg.AddItem("smg_09")
	require.NoError(t, err)
	assert.Equal(t, start+3, again.ID)
	assert.Equal(t, start+3, sg.LastItemID)

	assert.True(t, sg.Items.Has(item.ID))
	assert.True(t, sg.Items.Has(again.ID))
	assert.True(t, sg.Hats.Has(hat.ID))
	assert.False(t, sg.Items.Has(hat.ID))

	// Seen lists gain a name once
	assert.Equal(t, []string{"handgun_09", "jetpack", "smg_09"}, sg.SeenItems)
	assert.Equal(t, []string{"fez", "crown"}, sg.SeenHats)
}

func TestAddItem_SurvivesRoundTrip(t *testing.T) {
	sg, err := Decode(sampleBytes())
	require.NoError(t, err)

	_, err = sg.AddItem("overheat")
	require.NoError(t, err)
	_, err = sg.AddHat("spinny")
	require.NoError(t, err)

	data, err := Encode(sg)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)

	assert.Equal(t, []string{"handgun_09", "jetpack", "overheat"}, ItemNames(got.Items))
	assert.Equal(t, []string{"fez", "spinny"}, ItemNames(got.Hats))
	assert.Equal(t, uint32(14), got.LastItemID)
}

func TestAddItem_CollectionFull(t *testing.T) {
	sg := New()
	for i := range 255 {
		_, err := sg.AddItem(fmt.Sprintf("item_%d", i))
		require.NoError(t, err)
	}

	_, err := sg.AddItem("one_too_many")
	assert.ErrorIs(t, err, ErrCollectionFull)
	assert.Equal(t, uint32(255), sg.LastItemID)
}

func TestAddItems(t *testing.T) {
	sg := sampleSavegame()
	added, err := sg.AddItems([]string{"jetpack", "jetpack", "goggles"})
	require.NoError(t, err)
	require.Len(t, added, 3)
	assert.Equal(t, 5, sg.Items.Len())
	assert.Equal(t, []string{"handgun_09", "jetpack", "goggles"}, sg.SeenItems)
}

func TestAddAllHats(t *testing.T) {
	sg := sampleSavegame()

	added, present, err := sg.AddAllHats([]string{"fez", "crown", "spinny"})
	require.NoError(t, err)
	assert.Equal(t, 2, added)
	assert.Equal(t, 1, present)
	assert.Equal(t, 3, sg.Hats.Len())

	added, present, err = sg.AddAllHats([]string{"fez", "crown", "spinny"})
	require.NoError(t, err)
	assert.Equal(t, 0, added)
	assert.Equal(t, 3, present)
}

func TestMaxExperience(t *testing.T) {
	sg := sampleSavegame()
	sg.UnlockedChars = append(sg.UnlockedChars, "nobody")

	piper, _ := sg.Character("piper")
	changes := sg.MaxExperience(DefaultMaxXP)

	require.Len(t, changes, 2)
	assert.Equal(t, XPChange{Name: "piper", Before: 1200, HadXP: true, Changed: true}, changes[0])
	assert.Equal(t, XPChange{Name: "wonky", Before: 0, HadXP: false, Changed: true}, changes[1])

	xp, ok := piper.XP()
	assert.True(t, ok)
	assert.Equal(t, DefaultMaxXP, xp)

	// The new attribute goes after the existing ones
	wonky, _ := sg.Character("wonky")
	assert.Equal(t, []string{"starting", XPAttribute}, wonky.Attributes.Keys())

	// Characters already at the target are left alone
	changes = sg.MaxExperience(DefaultMaxXP)
	for _, c := range changes {
		assert.False(t, c.Changed, c.Name)
	}

	// Locked characters are never touched
	npc, _ := sg.Character("barkeep")
	_, ok = npc.XP()
	assert.False(t, ok)
}

func TestMaxExperience_KeepsHigherXP(t *testing.T) {
	sg := sampleSavegame()
	require.NoError(t, sg.SetAttribute("piper", XPAttribute, 25000))

	changes := sg.MaxExperience(DefaultMaxXP)
	assert.False(t, changes[0].Changed)

	piper, _ := sg.Character("piper")
	xp, _ := piper.XP()
	assert.Equal(t, uint32(25000), xp)
}

func TestSetAttribute(t *testing.T) {
	sg := sampleSavegame()
	require.NoError(t, sg.SetAttribute("barkeep", "mood", 3))

	npc, _ := sg.Character("barkeep")
	v, ok := npc.Attributes.Get("mood")
	assert.True(t, ok)
	assert.Equal(t, uint32(3), v)

	err := sg.SetAttribute("ghost", "mood", 1)
	assert.ErrorIs(t, err, ErrUnknownCharacter)
}

func TestEnsureInventoryCapacity(t *testing.T) {
	sg := sampleSavegame()

	prev, changed := sg.EnsureInventoryCapacity()
	assert.False(t, changed)
	assert.Equal(t, uint32(20), prev)

	sg.SetInventorySize(1)
	prev, changed = sg.EnsureInventoryCapacity()
	assert.True(t, changed)
	assert.Equal(t, uint32(1), prev)
	assert.Equal(t, uint32(2), sg.InventorySize)
}

func TestSetWater(t *testing.T) {
	sg := sampleSavegame()
	sg.SetWater(99999)

	data, err := Encode(sg)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, uint32(99999), got.Water)
}

func TestAddItem_OneByteNameOnEmptySeenList(t *testing.T) {
	sg := New()

	_, err := sg.AddItem("x")
	assert.ErrorIs(t, err, ErrUnencodableName)
	assert.Equal(t, 0, sg.Items.Len())
	assert.Equal(t, uint32(0), sg.LastItemID)

	// Once another item is seen first, a one-byte name is fine
	_, err = sg.AddItem("jetpack")
	require.NoError(t, err)
	_, err = sg.AddItem("x")
	require.NoError(t, err)

	data, err := Encode(sg)
	require.NoError(t, err)
	got, err := Decode(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"jetpack", "x"}, got.SeenItems)
}
