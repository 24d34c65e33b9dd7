// Package savegame decodes and encodes SteamWorld Heist savegames.
//
// The file is one fixed sequence of fields. Decode walks it into a Savegame,
// Encode walks the model back out, and every Decode finishes by re-encoding
// and comparing against the input: a model is only returned when it
// reproduces the file byte for byte, apart from the checksum.
//
// # Collections
//
// Characters, missions, levels and pickups are keyed by name, hats and bank
// items by id. All of them are ordered maps because order is wire layout. A
// repeated key fails the decode with a codec.FormatError rather than dropping
// an entry.
//
// # Unknown fields
//
// Much of the format is not understood. Those fields are stored as read and
// written back unchanged. Fields that have only ever been seen holding one
// value are checked on decode but encoded from the stored value.
//
// # Editing
//
// A loaded Savegame is edited in place (AddItem, AddHat, MaxExperience and
// friends) and written with Save, which recomputes the checksum.
package savegame
