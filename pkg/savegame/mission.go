package savegame

import (
	"github.com/swhkit/swhedit/pkg/ordered"
)

func readMissions(d *decoder) *ordered.Map[string, *Mission] {
	count := int(d.u8())
	missions := ordered.New[string, *Mission](count)
	for i := range count {
		at := d.offset()
		m := readMission(d)
		if d.err != nil {
			d.wrapf("mission %d", i)
			return nil
		}
		if missions.Has(m.Name) {
			d.duplicate("missions.name", at, m.Name)
			return nil
		}
		missions.Set(m.Name, m)
	}
	return missions
}

func readMission(d *decoder) *Mission {
	m := &Mission{Name: d.str()}
	m.ByteList = d.u8s()
	m.OtherName = d.str()
	m.Unknown03 = d.u8()
	m.Unknown04 = d.u8()

	count := int(d.u8())
	m.Objectives = make([]*Objective, 0, count)
	for i := range count {
		o := readObjective(d)
		if d.err != nil {
			d.wrapf("objective %d of %q", i, m.Name)
			return nil
		}
		m.Objectives = append(m.Objectives, o)
	}
	return m
}

func readObjective(d *decoder) *Objective {
	return &Objective{
		Byte01:  d.expect8("objective.byte_01", 0),
		Name:    d.str(),
		Int01:   d.u32(),
		Int02:   d.u32(),
		Zero01:  d.expect32("objective.zero_01", 0),
		Zero02:  d.expect32("objective.zero_02", 0),
		Zero03:  d.expect32("objective.zero_03", 0),
		IntList: d.u32s(),
		Short01: d.u16(),
		Byte02:  d.u8(),
		Int03:   d.u32(),
		Short02: d.u16(),
	}
}

func writeMissions(e *encoder, missions *ordered.Map[string, *Mission]) {
	e.PutCount("missions count", missions.Len())
	missions.Each(func(_ string, m *Mission) bool {
		e.str(m.Name)
		e.PutUint8List(m.ByteList)
		e.str(m.OtherName)
		e.PutUint8(m.Unknown03)
		e.PutUint8(m.Unknown04)
		e.PutCount("objectives count", len(m.Objectives))
		for _, o := range m.Objectives {
			writeObjective(e, o)
		}
		return e.Err() == nil
	})
}

func writeObjective(e *encoder, o *Objective) {
	e.PutUint8(o.Byte01)
	e.str(o.Name)
	e.PutUint32(o.Int01)
	e.PutUint32(o.Int02)
	e.PutUint32(o.Zero01)
	e.PutUint32(o.Zero02)
	e.PutUint32(o.Zero03)
	e.PutUint32List(o.IntList)
	e.PutUint16(o.Short01)
	e.PutUint8(o.Byte02)
	e.PutUint32(o.Int03)
	e.PutUint16(o.Short02)
}
