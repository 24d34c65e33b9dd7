package savegame

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/natefinch/atomic"
	"github.com/pkg/errors"

	"github.com/swhkit/swhedit/pkg/checksum"
)

// Load reads and decodes the savegame at path.
// A wrong checksum is logged, not rejected: the file may have been edited by
// hand on purpose.
func Load(path string) (*Savegame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read savegame")
	}

	sg, err := Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load %s", path)
	}

	slog.Debug("loaded savegame",
		"path", path,
		"size", len(data),
		"remaining_offset", sg.RemainingOffset)

	if ok, _ := checksum.Verify(data); !ok {
		computed, _ := checksum.Compute(data)
		slog.Warn("savegame checksum mismatch",
			"path", path,
			"stored", fmt.Sprintf("0x%08x", sg.Checksum),
			"computed", fmt.Sprintf("0x%08x", computed))
	}

	return sg, nil
}

// Save encodes sg and writes it to path. The file is written under a
// temporary name in the same directory and renamed into place, so a failed
// write never leaves a half-written savegame.
func Save(sg *Savegame, path string) error {
	data, err := Encode(sg)
	if err != nil {
		return errors.Wrap(err, "failed to encode savegame")
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return errors.Wrapf(err, "failed to write %s", path)
	}
	return nil
}
