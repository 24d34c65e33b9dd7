package savegame

import (
	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/swhkit/swhedit/pkg/ordered"
)

type entries[K comparable, V any] struct {
	Keys   []K
	Values []V
}

// orderedEntries compares ordered maps by their keys and values in order
func orderedEntries[K comparable, V any]() cmp.Option {
	return cmp.Transformer("orderedEntries", func(m *ordered.Map[K, V]) entries[K, V] {
		return entries[K, V]{Keys: m.Keys(), Values: m.Values()}
	})
}

// cmpOpts compares models field by field, ordered maps included
var cmpOpts = []cmp.Option{
	orderedEntries[string, *Character](),
	orderedEntries[string, uint32](),
	orderedEntries[string, *Mission](),
	orderedEntries[string, *Level](),
	orderedEntries[uint32, *Item](),
	orderedEntries[string, *Pickup](),
	orderedEntries[string, []string](),
	cmpopts.EquateEmpty(),
	cmpopts.IgnoreFields(Savegame{}, "Checksum", "RemainingOffset"),
}

func u32p(v uint32) *uint32 { return &v }

// sampleSavegame builds a small but complete model touching every
// collection
func sampleSavegame() *Savegame {
	sg := New()
	sg.Unknown01 = 0x14
	sg.Unknown02 = [6]byte{1, 2, 3, 4, 5, 6}
	sg.Unknown03 = 0xf4
	sg.Unknown04 = [6]byte{0xa, 0xb, 0xc, 0xd, 0xe, 0xf}
	sg.Difficulty = "hard"
	sg.CurrentLoc = 2
	sg.Unknown05 = 3
	sg.Unknown06 = 77
	sg.Unknown07 = 123456
	sg.DLC = []string{"DLC/dlc01"}
	sg.DLC2 = []string{"DLC/dlc01"}
	sg.Unknown10 = 0x0101

	piper := NewCharacter("piper")
	piper.Attributes.Set("starting", 0)
	piper.Attributes.Set(XPAttribute, 1200)
	piper.ID = u32p(3)
	sg.Characters.Set(piper.Name, piper)

	wonky := NewCharacter("wonky")
	wonky.Attributes.Set("starting", 0)
	wonky.ID = u32p(4)
	sg.Characters.Set(wonky.Name, wonky)

	npc := NewCharacter("barkeep")
	npc.OtherName = "barkeep_alt"
	sg.Characters.Set(npc.Name, npc)

	sg.Missions.Set("m01", &Mission{
		Name:      "m01",
		ByteList:  []uint8{1},
		OtherName: "m01",
		Unknown03: 1,
		Objectives: []*Objective{
			{Name: "obj_a", Int01: 5, Int02: 6, IntList: []uint32{9, 10}, Short01: 1, Byte02: 2, Int03: 3, Short02: 4},
			{Name: "obj_b"},
		},
	})
	sg.Missions.Set("m02", &Mission{Name: "m02", ByteList: []uint8{1, 1}, OtherName: "m02"})
	sg.Unknown12 = 7
	sg.Unknown13 = 8

	sg.Levels.Set("l01", &Level{Name: "l01", Unknown01: 1, IntList: []uint32{3}, Unknown04: 100, Unknown05: 200})

	sg.Water = 5000
	sg.TreasureList = []string{"treasure_scrappers"}
	sg.LastItemID = 12

	sg.Equipment = []Equipment{
		{CharacterID: 3, Weapon: 10, Accessory1: 11, Accessory2: 0, Hat: 12},
	}
	sg.ReturnList = []uint32{3}
	sg.UnknownCharList = []uint32{3, 4}
	sg.CharIDOrder = []string{"piper", "wonky"}
	sg.UnlockedChars = []string{"piper", "wonky"}

	sg.Hats.Set(12, &Item{ID: 12, Name: "fez"})
	sg.SeenHats = []string{"fez"}

	sg.Items.Set(10, &Item{ID: 10, Name: "handgun_09"})
	sg.Items.Set(11, &Item{ID: 11, Name: "jetpack"})
	sg.SeenItems = []string{"handgun_09", "jetpack"}

	sg.InventorySize = 20
	sg.NewItems = []uint32{11}
	sg.Tips = []string{"tip_1"}
	sg.Abilities = []string{"dash"}

	loot := NewPickup("loot")
	loot.Locations.Set("room_1", []string{"water_small"})
	loot.Locations.Set("room_2", []string{})
	sg.Pickups.Set(loot.Name, loot)

	sg.Remaining = []byte{0xde, 0xad, 0xbe, 0xef, 0x00, 0x01}
	return sg
}

// sampleBytes encodes sampleSavegame
func sampleBytes() []byte {
	b, err := Encode(sampleSavegame())
	if err != nil {
		panic(err)
	}
	return b
}
