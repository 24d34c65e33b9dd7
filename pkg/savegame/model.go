package savegame

import (
	"github.com/swhkit/swhedit/pkg/ordered"
)

// Names are kept as Go strings. A string holds arbitrary bytes, so names that
// are not valid UTF-8 still survive a round trip unchanged.

// Savegame is a fully decoded save file.
//
// Fields named UnknownNN hold regions whose meaning is not known. They are
// preserved exactly and never interpreted.
type Savegame struct {
	Initial01  uint8  // always 1
	Checksum   uint32 // as stored in the file; Encode writes a fresh one
	Initial03  uint8  // always 3
	Unknown01  uint8
	Unknown02  [6]byte
	Initial40  uint8 // usually 0x40, 0x41 seen once
	Unknown03  uint8
	Unknown04  [6]byte
	Initial40b uint8 // 0x40, or 0x00 on an early NG+ save

	Difficulty string
	CurrentLoc uint32
	Usually1   uint32
	Unknown05  uint32
	Unknown06  uint32
	Unknown07  uint32
	Unknown08  uint16
	Unknown09  uint32 // always Magic

	DLC       []string
	DLC2      []string
	Unknown10 uint16

	Characters *ordered.Map[string, *Character]
	Unknown11  uint8
	Missions   *ordered.Map[string, *Mission]
	Unknown12  uint8
	Unknown13  uint32
	Levels     *ordered.Map[string, *Level]
	Unknown14  uint8

	Water        uint32
	TreasureList []string
	Unknown15    uint8
	LastItemID   uint32

	Equipment       []Equipment
	ReturnList      []uint32
	UnknownCharList []uint32
	Unknown17       uint8

	// CharIDOrder is the order of the character id assignment pass
	CharIDOrder []string

	UnlockedChars []string
	Unknown18     uint32
	Unknown19List []uint32
	Unknown19     uint8

	Hats             *ordered.Map[uint32, *Item]
	SeenHats         []string
	Unknown20        uint32
	EarlyGameIntList []uint32
	Unknown21        uint8

	Items     *ordered.Map[uint32, *Item]
	SeenItems []string
	// HaveErrantSeenItemsFlag records a stray 0x01 found right after the
	// seen-items count on some saves
	HaveErrantSeenItemsFlag bool

	InventorySize uint32
	NewItems      []uint32
	Unknown22     uint8
	Tips          []string
	Unknown23     uint8
	Abilities     []string
	Unknown24     uint8
	Pickups       *ordered.Map[string, *Pickup]
	Unknown25     uint8

	// Remaining is everything past the last decoded field, kept verbatim
	Remaining []byte
	// RemainingOffset is the file offset Remaining starts at
	RemainingOffset int
}

// Character is a crew member or any other named character the game tracks.
// Playable characters carry "starting" and "upgrades" attributes; upgrades is
// the XP.
type Character struct {
	Name       string
	Unknown1   uint8
	Attributes *ordered.Map[string, uint32]
	OtherName  string
	// ID is assigned by the character id pass later in the file
	ID *uint32
}

// Objective belongs to a mission
type Objective struct {
	Byte01  uint8
	Name    string
	Int01   uint32
	Int02   uint32
	Zero01  uint32
	Zero02  uint32
	Zero03  uint32
	IntList []uint32
	Short01 uint16
	Byte02  uint8
	Int03   uint32
	Short02 uint16
}

type Mission struct {
	Name       string
	ByteList   []uint8
	OtherName  string
	Unknown03  uint8
	Unknown04  uint8
	Objectives []*Objective
}

type Level struct {
	Name      string
	Unknown01 uint8
	IntList   []uint32
	Unknown02 uint8
	Unknown03 uint8
	Unknown04 uint32
	Unknown05 uint32
}

// Item is a bank item or a hat
type Item struct {
	ID   uint32
	Name string
}

// Pickup tracks loot by location
type Pickup struct {
	Name      string
	Unknown01 uint8
	Unknown02 uint8
	Locations *ordered.Map[string, []string]
}

// Equipment is one character's loadout, referring to ids
type Equipment struct {
	Flag        uint8
	CharacterID uint32
	Weapon      uint32
	Accessory1  uint32
	Accessory2  uint32
	Hat         uint32
}

// NewCharacter creates a character with no attributes
func NewCharacter(name string) *Character {
	return &Character{
		Name:       name,
		OtherName:  name,
		Attributes: ordered.New[string, uint32](2),
	}
}

// NewPickup creates a pickup with no locations
func NewPickup(name string) *Pickup {
	return &Pickup{
		Name:      name,
		Locations: ordered.New[string, []string](1),
	}
}

// New creates an empty savegame with the marker bytes and magic set
func New() *Savegame {
	return &Savegame{
		Initial01:  1,
		Initial03:  3,
		Initial40:  0x40,
		Initial40b: 0x40,
		Usually1:   1,
		Unknown09:  Magic,
		Characters: ordered.New[string, *Character](0),
		Missions:   ordered.New[string, *Mission](0),
		Levels:     ordered.New[string, *Level](0),
		Hats:       ordered.New[uint32, *Item](0),
		Items:      ordered.New[uint32, *Item](0),
		Pickups:    ordered.New[string, *Pickup](0),
	}
}
