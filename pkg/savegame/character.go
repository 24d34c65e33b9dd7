package savegame

import (
	"github.com/swhkit/swhedit/pkg/ordered"
)

// XPAttribute is the character attribute that holds experience
const XPAttribute = "upgrades"

func readCharacters(d *decoder) *ordered.Map[string, *Character] {
	count := int(d.u8())
	chars := ordered.New[string, *Character](count)
	for i := range count {
		at := d.offset()
		c := readCharacter(d)
		if d.err != nil {
			d.wrapf("character %d", i)
			return nil
		}
		if chars.Has(c.Name) {
			d.duplicate("characters.name", at, c.Name)
			return nil
		}
		chars.Set(c.Name, c)
	}
	return chars
}

func readCharacter(d *decoder) *Character {
	c := NewCharacter(d.str())
	c.Unknown1 = d.expect8("character.unknown_1", 0)

	n := int(d.u8())
	for range n {
		at := d.offset()
		name := d.str()
		value := d.u32()
		if d.err != nil {
			return nil
		}
		// A repeated attribute would be folded into one entry and change
		// the layout on re-encode
		if c.Attributes.Has(name) {
			d.duplicate("character.attribute", at, name)
			return nil
		}
		c.Attributes.Set(name, value)
	}

	c.OtherName = d.str()
	return c
}

func writeCharacters(e *encoder, chars *ordered.Map[string, *Character]) {
	e.PutCount("characters count", chars.Len())
	chars.Each(func(_ string, c *Character) bool {
		e.str(c.Name)
		e.PutUint8(c.Unknown1)
		e.PutCount("character attribute count", c.Attributes.Len())
		c.Attributes.Each(func(name string, value uint32) bool {
			e.str(name)
			e.PutUint32(value)
			return true
		})
		e.str(c.OtherName)
		return e.Err() == nil
	})
}

// XP returns the character's experience and whether it has any recorded
func (c *Character) XP() (uint32, bool) {
	return c.Attributes.Get(XPAttribute)
}
