package savegame

import (
	"github.com/swhkit/swhedit/pkg/checksum"
	"github.com/swhkit/swhedit/pkg/codec"
)

// VerifyRoundtrip re-encodes sg and compares it with original, the bytes it
// was decoded from. The checksum field is never compared: Encode always
// writes a fresh one, and any payload difference changes it too.
//
// The returned *codec.RoundtripError names the first differing payload
// offset. When one buffer is a prefix of the other the offset is the shorter
// length.
func VerifyRoundtrip(original []byte, sg *Savegame) error {
	encoded, err := Encode(sg)
	if err != nil {
		return err
	}

	n := min(len(original), len(encoded))
	for i := range n {
		if i >= checksum.FieldOffset && i < checksum.PayloadOffset {
			continue
		}
		if original[i] != encoded[i] {
			return &codec.RoundtripError{Offset: i, Want: int(original[i]), Got: int(encoded[i])}
		}
	}

	if len(original) != len(encoded) {
		e := &codec.RoundtripError{Offset: n, Want: -1, Got: -1}
		if n < len(original) {
			e.Want = int(original[n])
		} else {
			e.Got = int(encoded[n])
		}
		return e
	}
	return nil
}
