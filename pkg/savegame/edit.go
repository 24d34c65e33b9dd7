package savegame

import (
	"fmt"
	"slices"

	"github.com/pkg/errors"

	"github.com/swhkit/swhedit/pkg/codec"
	"github.com/swhkit/swhedit/pkg/ordered"
)

// DefaultMaxXP is the XP at which every ability is unlocked on the next
// level-up
const DefaultMaxXP uint32 = 19999

var (
	ErrUnknownCharacter = errors.New("unknown character")
	ErrCollectionFull   = errors.New("collection is full")
	// ErrUnencodableName is returned for a name the file format cannot
	// represent in that position
	ErrUnencodableName = errors.New("name cannot be encoded")
)

// DLCName returns the DLC list entry for DLC pack n
func DLCName(n int) string {
	return fmt.Sprintf("DLC/dlc%02d", n)
}

// HasDLC reports whether DLC pack n is enabled
func (sg *Savegame) HasDLC(n int) bool {
	return slices.Contains(sg.DLC, DLCName(n))
}

// AddItem puts a new item in the bank and marks it seen
func (sg *Savegame) AddItem(name string) (*Item, error) {
	if len(sg.SeenItems) == 0 && !sg.HaveErrantSeenItemsFlag && len(name) == 1 {
		return nil, errors.Wrapf(ErrUnencodableName, "%q as the first seen item", name)
	}
	item, err := sg.addTo(sg.Items, "items", name)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(sg.SeenItems, name) {
		sg.SeenItems = append(sg.SeenItems, name)
	}
	return item, nil
}

// AddHat puts a new hat in the hat inventory and marks it seen
func (sg *Savegame) AddHat(name string) (*Item, error) {
	item, err := sg.addTo(sg.Hats, "hats", name)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(sg.SeenHats, name) {
		sg.SeenHats = append(sg.SeenHats, name)
	}
	return item, nil
}

// addTo allocates the next id. Hats and items share LastItemID.
func (sg *Savegame) addTo(items *ordered.Map[uint32, *Item], collection, name string) (*Item, error) {
	if items.Len() >= codec.MaxCount {
		return nil, errors.Wrapf(ErrCollectionFull, "%s holds %d entries", collection, items.Len())
	}
	sg.LastItemID++
	item := &Item{ID: sg.LastItemID, Name: name}
	items.Set(item.ID, item)
	return item, nil
}

// AddItems adds every name in order, stopping at the first failure
func (sg *Savegame) AddItems(names []string) ([]*Item, error) {
	added := make([]*Item, 0, len(names))
	for _, name := range names {
		item, err := sg.AddItem(name)
		if err != nil {
			return added, err
		}
		added = append(added, item)
	}
	return added, nil
}

// AddAllHats adds every hat in names that has not been seen yet.
// It returns how many were added and how many were already present.
func (sg *Savegame) AddAllHats(names []string) (added, present int, err error) {
	for _, name := range names {
		if slices.Contains(sg.SeenHats, name) {
			present++
			continue
		}
		if _, err := sg.AddHat(name); err != nil {
			return added, present, err
		}
		added++
	}
	return added, present, nil
}

func (sg *Savegame) SetWater(water uint32) {
	sg.Water = water
}

func (sg *Savegame) SetInventorySize(size uint32) {
	sg.InventorySize = size
}

// EnsureInventoryCapacity raises the inventory size to the number of bank
// items if it is smaller. It returns the previous size and whether it changed.
func (sg *Savegame) EnsureInventoryCapacity() (uint32, bool) {
	prev := sg.InventorySize
	if n := uint32(sg.Items.Len()); prev < n {
		sg.InventorySize = n
		return prev, true
	}
	return prev, false
}

// Character looks up a character by name
func (sg *Savegame) Character(name string) (*Character, bool) {
	return sg.Characters.Get(name)
}

// CharacterByID looks up a character by the id the id pass assigned
func (sg *Savegame) CharacterByID(id uint32) (*Character, bool) {
	var found *Character
	sg.Characters.Each(func(_ string, c *Character) bool {
		if c.ID != nil && *c.ID == id {
			found = c
			return false
		}
		return true
	})
	return found, found != nil
}

// SetAttribute sets a named attribute on a character. A new attribute is
// appended after the existing ones.
func (sg *Savegame) SetAttribute(char, attr string, value uint32) error {
	c, ok := sg.Character(char)
	if !ok {
		return errors.Wrapf(ErrUnknownCharacter, "%q", char)
	}
	if !c.Attributes.Has(attr) && c.Attributes.Len() >= codec.MaxCount {
		return errors.Wrapf(ErrCollectionFull, "%q has %d attributes", char, c.Attributes.Len())
	}
	c.Attributes.Set(attr, value)
	return nil
}

// XPChange reports what MaxExperience did to one character
type XPChange struct {
	Name    string
	Before  uint32
	HadXP   bool // false for NG+ characters with no upgrades attribute yet
	Changed bool
}

// MaxExperience raises every unlocked character's XP to at least target.
// Characters with no XP attribute gain one.
func (sg *Savegame) MaxExperience(target uint32) []XPChange {
	var changes []XPChange
	for _, name := range sg.UnlockedChars {
		c, ok := sg.Character(name)
		if !ok {
			continue
		}
		before, had := c.XP()
		change := XPChange{Name: name, Before: before, HadXP: had}
		if !had || before < target {
			c.Attributes.Set(XPAttribute, target)
			change.Changed = true
		}
		changes = append(changes, change)
	}
	return changes
}
