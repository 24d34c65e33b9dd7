package savegame

import (
	"github.com/swhkit/swhedit/pkg/ordered"
)

// readItems decodes a hat or bank item collection. collection names it in
// errors ("hats", "items").
func readItems(d *decoder, collection string) *ordered.Map[uint32, *Item] {
	count := int(d.u8())
	items := ordered.New[uint32, *Item](count)
	for i := range count {
		at := d.offset()
		item := &Item{ID: d.u32(), Name: d.str()}
		if d.err != nil {
			d.wrapf("%s entry %d", collection, i)
			return nil
		}
		if items.Has(item.ID) {
			d.duplicate(collection+".id", at, item.ID)
			return nil
		}
		items.Set(item.ID, item)
	}
	return items
}

func writeItems(e *encoder, collection string, items *ordered.Map[uint32, *Item]) {
	e.PutCount(collection+" count", items.Len())
	items.Each(func(_ uint32, item *Item) bool {
		e.PutUint32(item.ID)
		e.str(item.Name)
		return e.Err() == nil
	})
}

// ItemNames returns the names in a collection in file order
func ItemNames(items *ordered.Map[uint32, *Item]) []string {
	names := make([]string, 0, items.Len())
	items.Each(func(_ uint32, item *Item) bool {
		names = append(names, item.Name)
		return true
	})
	return names
}
