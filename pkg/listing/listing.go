// Package listing prints a savegame for people.
package listing

import (
	"fmt"
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"github.com/swhkit/swhedit/pkg/savegame"
)

// Verbosity levels
const (
	Summary = 0
	Detail  = 1 // every character, mission, level, hat and seen item
	Hexdump = 2 // plus the start of the undecoded tail
	Dump    = 3 // plus the whole model
)

const (
	hexdumpLines   = 10
	hexdumpPerLine = 32
)

// Print writes a listing of sg to w
func Print(w io.Writer, sg *savegame.Savegame, verbosity int) error {
	p := &printer{w: w}

	if verbosity >= Detail {
		p.section("Total seen characters:", sg.Characters.Keys())
	}

	p.line("Character XP levels:")
	for _, name := range sg.UnlockedChars {
		c, ok := sg.Character(name)
		if !ok {
			continue
		}
		if xp, ok := c.XP(); ok {
			p.line("  * %s: %d", name, xp)
		} else {
			p.line("  * %s: no XP level set", name)
		}
	}
	p.line("")

	if verbosity >= Detail {
		p.section("Mission names:", sg.Missions.Keys())
		p.section("Level names:", sg.Levels.Keys())
	}

	p.line("Water: %d", sg.Water)
	p.line("")

	if verbosity >= Detail {
		p.list("Current hat inventory:", savegame.ItemNames(sg.Hats))
		p.list("Total list of seen hats:", sg.SeenHats)
	}

	p.line("Total inventory size: %d", sg.InventorySize)
	p.list("Current item inventory:", savegame.ItemNames(sg.Items))

	if verbosity >= Detail {
		p.list("Total list of seen items:", sg.SeenItems)
	}

	p.line("Item assignments:")
	for _, eq := range sg.Equipment {
		if c, ok := sg.CharacterByID(eq.CharacterID); ok {
			p.line("  * %s", c.Name)
		} else {
			p.line("  * unknown character id %d", eq.CharacterID)
		}
		for _, slot := range []struct {
			id    uint32
			label string
		}{
			{eq.Weapon, "Weapon"},
			{eq.Accessory1, "Accessory 1"},
			{eq.Accessory2, "Accessory 2"},
		} {
			if item, ok := sg.Items.Get(slot.id); ok {
				p.line("     %s: %s", slot.label, item.Name)
			}
		}
		if hat, ok := sg.Hats.Get(eq.Hat); ok {
			p.line("     Hat: %s", hat.Name)
		}
		p.line("")
	}

	if verbosity >= Detail {
		p.line(`Items marked as "new":`)
		if len(sg.NewItems) == 0 {
			p.line("  (none)")
		}
		for _, id := range sg.NewItems {
			if item, ok := sg.Items.Get(id); ok {
				p.line("  * New item: %s", item.Name)
			} else {
				p.line("  * Unknown new item ID: %d", id)
			}
		}
		p.line("")
	}

	if verbosity >= Hexdump {
		p.write(HexdumpTail(sg.Remaining, sg.RemainingOffset))
	}

	if verbosity >= Dump && p.err == nil {
		cfg := spew.ConfigState{Indent: "  ", DisablePointerAddresses: true, SortKeys: true}
		cfg.Fdump(w, sg)
	}

	return p.err
}

// HexdumpTail renders the first bytes of the undecoded tail, labelled with
// file offsets starting at base
func HexdumpTail(tail []byte, base int) string {
	var sb strings.Builder
	for line := range hexdumpLines {
		start := line * hexdumpPerLine
		if start > len(tail) {
			start = len(tail)
		}
		end := min(start+hexdumpPerLine, len(tail))
		chunk := tail[start:end]

		fmt.Fprintf(&sb, "0x%08X  ", base+line*hexdumpPerLine)
		for i, b := range chunk {
			fmt.Fprintf(&sb, "%02X ", b)
			if i%4 == 3 {
				sb.WriteByte(' ')
			}
		}
		sb.WriteString("| ")
		for _, b := range chunk {
			if b >= 0x20 && b < 0x7f {
				sb.WriteByte(b)
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}

type printer struct {
	w   io.Writer
	err error
}

func (p *printer) write(s string) {
	if p.err != nil {
		return
	}
	_, p.err = io.WriteString(p.w, s)
}

func (p *printer) line(format string, args ...interface{}) {
	p.write(fmt.Sprintf(format, args...) + "\n")
}

// section prints a heading and a bullet per name
func (p *printer) section(heading string, names []string) {
	p.line(heading)
	for _, name := range names {
		p.line("  * %s", name)
	}
	p.line("")
}

// list is section with a placeholder for an empty list
func (p *printer) list(heading string, names []string) {
	if len(names) == 0 {
		p.line(heading)
		p.line("  (none)")
		p.line("")
		return
	}
	p.section(heading, names)
}
