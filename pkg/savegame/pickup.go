package savegame

import (
	"github.com/swhkit/swhedit/pkg/ordered"
)

// Each location of a pickup repeats the pickup's own name, then gives the
// location name and a string list. A zero byte separates locations; there is
// none after the last one.

func readPickups(d *decoder) *ordered.Map[string, *Pickup] {
	count := int(d.u8())
	pickups := ordered.New[string, *Pickup](count)
	for i := range count {
		at := d.offset()
		p := readPickup(d)
		if d.err != nil {
			d.wrapf("pickup %d", i)
			return nil
		}
		if pickups.Has(p.Name) {
			d.duplicate("pickups.name", at, p.Name)
			return nil
		}
		pickups.Set(p.Name, p)
	}
	return pickups
}

func readPickup(d *decoder) *Pickup {
	p := NewPickup(d.str())
	p.Unknown01 = d.expect8("pickup.unknown_01", 0)
	locations := int(d.u8())
	p.Unknown02 = d.expect8("pickup.unknown_02", 0)

	for i := range locations {
		d.expectStr("pickup.location.self_name", p.Name)
		at := d.offset()
		name := d.str()
		entries := d.strs()
		if i != locations-1 {
			d.expect8("pickup.location.separator", 0)
		}
		if d.err != nil {
			d.wrapf("location %d of %q", i, p.Name)
			return nil
		}
		if p.Locations.Has(name) {
			d.duplicate("pickup.location.name", at, name)
			return nil
		}
		p.Locations.Set(name, entries)
	}
	return p
}

func writePickups(e *encoder, pickups *ordered.Map[string, *Pickup]) {
	e.PutCount("pickups count", pickups.Len())
	pickups.Each(func(_ string, p *Pickup) bool {
		writePickup(e, p)
		return e.Err() == nil
	})
}

func writePickup(e *encoder, p *Pickup) {
	e.str(p.Name)
	e.PutUint8(p.Unknown01)
	e.PutCount("pickup location count", p.Locations.Len())
	e.PutUint8(p.Unknown02)

	last := p.Locations.Len() - 1
	i := 0
	p.Locations.Each(func(name string, entries []string) bool {
		e.str(p.Name)
		e.str(name)
		e.strs("pickup location entries", entries)
		if i != last {
			e.PutUint8(0)
		}
		i++
		return true
	})
}
