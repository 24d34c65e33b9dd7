package savegame

import (
	"github.com/swhkit/swhedit/pkg/ordered"
)

func readLevels(d *decoder) *ordered.Map[string, *Level] {
	count := int(d.u8())
	levels := ordered.New[string, *Level](count)
	for i := range count {
		at := d.offset()
		l := &Level{
			Name:      d.str(),
			Unknown01: d.u8(),
			IntList:   d.u32s(),
			Unknown02: d.u8(),
			Unknown03: d.u8(),
			Unknown04: d.u32(),
			Unknown05: d.u32(),
		}
		if d.err != nil {
			d.wrapf("level %d", i)
			return nil
		}
		if levels.Has(l.Name) {
			d.duplicate("levels.name", at, l.Name)
			return nil
		}
		levels.Set(l.Name, l)
	}
	return levels
}

func writeLevels(e *encoder, levels *ordered.Map[string, *Level]) {
	e.PutCount("levels count", levels.Len())
	levels.Each(func(_ string, l *Level) bool {
		e.str(l.Name)
		e.PutUint8(l.Unknown01)
		e.PutUint32List(l.IntList)
		e.PutUint8(l.Unknown02)
		e.PutUint8(l.Unknown03)
		e.PutUint32(l.Unknown04)
		e.PutUint32(l.Unknown05)
		return e.Err() == nil
	})
}
