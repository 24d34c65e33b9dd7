package savegame

import (
	"github.com/swhkit/swhedit/pkg/checksum"
	"github.com/swhkit/swhedit/pkg/codec"
)

// Encode serializes the savegame and stamps a fresh checksum.
// The stored Checksum field is not used.
func Encode(sg *Savegame) ([]byte, error) {
	e := newEncoder(4096 + len(sg.Remaining))

	e.PutUint8(sg.Initial01)
	e.PutUint32(0) // patched below
	e.PutUint8(sg.Initial03)

	e.PutUint8(sg.Unknown01)
	e.PutBytes(sg.Unknown02[:])
	e.PutUint8(sg.Initial40)
	e.PutUint8(sg.Unknown03)
	e.PutBytes(sg.Unknown04[:])
	e.PutUint8(sg.Initial40b)

	e.str(sg.Difficulty)
	e.PutUint32(sg.CurrentLoc)
	e.PutUint32(sg.Usually1)
	e.PutUint32(sg.Unknown05)
	e.PutUint32(sg.Unknown06)
	e.PutUint32(sg.Unknown07)
	e.PutUint16(sg.Unknown08)
	e.PutUint32(sg.Unknown09)

	e.strs("dlc", sg.DLC)
	e.strs("dlc2", sg.DLC2)
	e.PutUint16(sg.Unknown10)

	writeCharacters(e, sg.Characters)
	e.PutUint8(sg.Unknown11)
	writeMissions(e, sg.Missions)
	e.PutUint8(sg.Unknown12)
	e.PutUint32(sg.Unknown13)
	writeLevels(e, sg.Levels)
	e.PutUint8(sg.Unknown14)

	e.PutUint32(sg.Water)
	e.strs("treasurelist", sg.TreasureList)
	e.PutUint8(sg.Unknown15)
	e.PutUint32(sg.LastItemID)

	e.PutCount("equipment count", len(sg.Equipment))
	for _, eq := range sg.Equipment {
		e.PutUint8(eq.Flag)
		e.PutUint32(eq.CharacterID)
		e.PutUint32(eq.Weapon)
		e.PutUint32(eq.Accessory1)
		e.PutUint32(eq.Accessory2)
		e.PutUint32(eq.Hat)
	}
	e.PutUint32List(sg.ReturnList)
	e.PutUint32List(sg.UnknownCharList)
	e.PutUint8(sg.Unknown17)

	if err := writeCharIDs(e, sg); err != nil {
		return nil, err
	}

	e.strs("unlocked_chars", sg.UnlockedChars)
	e.PutUint32(sg.Unknown18)
	e.PutUint32List(sg.Unknown19List)
	e.PutUint8(sg.Unknown19)

	writeItems(e, "hats", sg.Hats)
	e.strs("seen_hats", sg.SeenHats)
	e.PutUint32(sg.Unknown20)
	e.PutUint32List(sg.EarlyGameIntList)
	e.PutUint8(sg.Unknown21)

	writeItems(e, "items", sg.Items)
	if err := writeSeenItems(e, sg.SeenItems, sg.HaveErrantSeenItemsFlag); err != nil {
		return nil, err
	}

	e.PutUint32(sg.InventorySize)
	e.PutUint32List(sg.NewItems)
	e.PutUint8(sg.Unknown22)
	e.strs("tips", sg.Tips)
	e.PutUint8(sg.Unknown23)
	e.strs("abilities", sg.Abilities)
	e.PutUint8(sg.Unknown24)
	writePickups(e, sg.Pickups)
	e.PutUint8(sg.Unknown25)

	e.PutBytes(sg.Remaining)

	if err := e.Err(); err != nil {
		return nil, err
	}
	out := e.Bytes()
	if err := checksum.Patch(out); err != nil {
		return nil, err
	}
	return out, nil
}

func writeCharIDs(e *encoder, sg *Savegame) error {
	e.PutCount("char_ids count", len(sg.CharIDOrder))
	for _, name := range sg.CharIDOrder {
		c, ok := sg.Characters.Get(name)
		if !ok || c.ID == nil {
			return &codec.FormatError{
				Field:    "char_ids.name",
				Offset:   e.Len(),
				Expected: "a character with an id",
				Observed: []byte(name),
			}
		}
		e.PutUint32(*c.ID)
		e.str(name)
	}
	return e.Err()
}

// writeSeenItems emits the stray flag byte exactly when it was read. Without
// the flag a one-byte first entry would be read back as the flag, so that
// layout is refused.
func writeSeenItems(e *encoder, seen []string, flag bool) error {
	if !flag && len(seen) > 0 && len(seen[0]) == 1 {
		return &codec.FormatError{
			Field:    "seen_items",
			Offset:   e.Len() + 1,
			Expected: "a first entry longer than one byte",
			Observed: []byte(seen[0]),
		}
	}
	e.PutCount("seen_items count", len(seen))
	if flag {
		e.PutUint8(1)
	}
	for _, s := range seen {
		e.str(s)
	}
	return e.Err()
}
