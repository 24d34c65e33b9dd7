package savegame

import (
	"github.com/pkg/errors"

	"github.com/swhkit/swhedit/pkg/codec"
)

// Magic is the value unknown_09 holds in every known save
const Magic uint32 = 0x0262CFF8

// Decode parses a complete savegame and checks that it re-encodes to the
// same bytes. On failure no model is returned.
//
// A roundtrip failure (codec.ErrRoundtrip) means the file decoded cleanly but
// the codec could not reproduce it: a codec defect, not bad input.
func Decode(data []byte) (*Savegame, error) {
	sg, err := decode(data)
	if err != nil {
		return nil, err
	}
	if err := VerifyRoundtrip(data, sg); err != nil {
		return nil, errors.Wrap(err, "decoded savegame does not re-encode identically")
	}
	return sg, nil
}

func decode(data []byte) (*Savegame, error) {
	d := newDecoder(data)
	sg := &Savegame{}

	sg.Initial01 = d.expect8("initial_01", 1)
	sg.Checksum = d.u32()
	sg.Initial03 = d.expect8("initial_03", 3)

	sg.Unknown01 = d.u8()
	sg.Unknown02 = d.raw6()
	sg.Initial40 = d.u8()
	sg.Unknown03 = d.u8()
	sg.Unknown04 = d.raw6()
	sg.Initial40b = d.u8()

	sg.Difficulty = d.str()
	sg.CurrentLoc = d.u32()
	sg.Usually1 = d.u32()
	sg.Unknown05 = d.u32()
	sg.Unknown06 = d.u32()
	sg.Unknown07 = d.u32()
	sg.Unknown08 = d.u16()
	sg.Unknown09 = d.expect32("unknown_09", Magic)

	sg.DLC = d.strs()
	sg.DLC2 = d.strs()
	sg.Unknown10 = d.u16()

	sg.Characters = readCharacters(d)
	sg.Unknown11 = d.expect8("unknown_11", 0)
	sg.Missions = readMissions(d)
	sg.Unknown12 = d.u8()
	sg.Unknown13 = d.u32()
	sg.Levels = readLevels(d)
	sg.Unknown14 = d.expect8("unknown_14", 0)

	sg.Water = d.u32()
	sg.TreasureList = d.strs()
	sg.Unknown15 = d.u8()
	sg.LastItemID = d.u32()

	sg.Equipment = readEquipment(d)
	sg.ReturnList = d.u32s()
	sg.UnknownCharList = d.u32s()
	sg.Unknown17 = d.expect8("unknown_17", 0)

	sg.CharIDOrder = readCharIDs(d, sg)

	sg.UnlockedChars = d.strs()
	sg.Unknown18 = d.expect32("unknown_18", 0)
	sg.Unknown19List = d.u32s()
	sg.Unknown19 = d.expect8("unknown_19", 0)

	sg.Hats = readItems(d, "hats")
	sg.SeenHats = d.strs()
	sg.Unknown20 = d.expect32("unknown_20", 0)
	sg.EarlyGameIntList = d.u32s()
	sg.Unknown21 = d.expect8("unknown_21", 0)

	sg.Items = readItems(d, "items")
	sg.SeenItems, sg.HaveErrantSeenItemsFlag = readSeenItems(d)

	sg.InventorySize = d.u32()
	sg.NewItems = d.u32s()
	sg.Unknown22 = d.expect8("unknown_22", 0)
	sg.Tips = d.strs()
	sg.Unknown23 = d.expect8("unknown_23", 0)
	sg.Abilities = d.strs()
	sg.Unknown24 = d.expect8("unknown_24", 0)
	sg.Pickups = readPickups(d)
	sg.Unknown25 = d.expect8("unknown_25", 0)

	sg.RemainingOffset = d.offset()
	sg.Remaining = d.rest()

	if d.err != nil {
		return nil, d.err
	}
	return sg, nil
}

func readEquipment(d *decoder) []Equipment {
	count := int(d.u8())
	equipment := make([]Equipment, 0, count)
	for range count {
		equipment = append(equipment, Equipment{
			Flag:        d.u8(),
			CharacterID: d.u32(),
			Weapon:      d.u32(),
			Accessory1:  d.u32(),
			Accessory2:  d.u32(),
			Hat:         d.u32(),
		})
	}
	if d.err != nil {
		return nil
	}
	return equipment
}

// readCharIDs reads (id, name) pairs and assigns each id to the character of
// that name, which must already be known.
func readCharIDs(d *decoder, sg *Savegame) []string {
	count := int(d.u8())
	order := make([]string, 0, count)
	for range count {
		id := d.u32()
		at := d.offset()
		name := d.str()
		if d.err != nil {
			return nil
		}
		c, ok := sg.Characters.Get(name)
		if !ok {
			d.fail(&codec.FormatError{
				Field:    "char_ids.name",
				Offset:   at,
				Expected: "a known character",
				Observed: []byte(name),
			})
			return nil
		}
		c.ID = &id
		order = append(order, name)
	}
	return order
}

// readSeenItems handles a quirk of some saves: a stray 0x01 right after the
// count. A first length byte of exactly 1 is taken to be that flag, and the
// first real entry follows it as an ordinary string.
func readSeenItems(d *decoder) ([]string, bool) {
	count := int(d.u8())
	if count == 0 || d.err != nil {
		return []string{}, false
	}

	flag := false
	if d.peek8() == 1 {
		d.u8()
		flag = true
	}

	seen := make([]string, 0, count)
	for range count {
		seen = append(seen, d.str())
	}
	if d.err != nil {
		return nil, false
	}
	return seen, flag
}
