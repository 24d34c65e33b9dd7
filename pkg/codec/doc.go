// Package codec provides the primitive binary reads and writes that every
// SteamWorld Heist savegame structure is composed from.
//
// # Primitive Format
//
// All integers are little-endian and fixed width:
//
//	uint8        1 byte
//	uint16       2 bytes
//	uint32       4 bytes
//	string       [Len(1)][Bytes(Len)]
//	uint8 list   [Count(1)][uint8 x Count]
//	uint32 list  [Count(1)][uint32 x Count]
//	string list  [Count(1)][string x Count]
//
// Strings are opaque byte strings. They are never validated or transcoded, so
// a decoded name always re-encodes to the exact bytes it was read from.
//
// # Usage
//
// Decoding reads from a Reader positioned over the whole file:
//
//	r := codec.NewReader(data)
//	marker, err := r.ExpectUint8("initial_01", 1)
//	if err != nil {
//	    return err
//	}
//	name, err := r.String()
//
// Encoding appends to a Writer and checks its sticky error once at the end:
//
//	w := codec.NewWriter(len(data))
//	w.PutUint8(marker)
//	w.PutString(name)
//	if err := w.Err(); err != nil {
//	    return err
//	}
//
// # Error Handling
//
// Three failure classes cover every decode/encode attempt:
//   - ErrTruncated: a read ran past the end of the buffer (*TruncatedError)
//   - ErrFormat: an expected-constant field, a self-consistency check or a
//     required lookup failed (*FormatError, naming the field and both values)
//   - ErrRoundtrip: a re-encoded buffer differs from its source (*RoundtripError)
//
// None of them are recoverable for the current attempt. Use errors.Is with the
// sentinels, or errors.As with the typed errors for offsets and values.
//
// # Thread Safety
//
// Reader and Writer are not safe for concurrent use. Decoding is a single
// synchronous pass over a buffer that is already fully in memory.
package codec
