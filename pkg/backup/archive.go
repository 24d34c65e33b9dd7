// Package backup keeps a copy of every savegame before it is overwritten.
//
// Copies live in a pebble database keyed by ksuid, so iteration order is
// archive order. Each value is a CRC-protected Record holding the source path
// and the original bytes.
package backup

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/cockroachdb/pebble"
	"github.com/natefinch/atomic"
	"github.com/segmentio/ksuid"
)

var (
	ErrNotFound   = errors.New("backup not found")
	ErrCorruption = errors.New("backup corruption detected")
)

// Entry describes one archived savegame
type Entry struct {
	ID   ksuid.KSUID
	Path string
	Size int
	Time time.Time
}

// Archive stores savegame backups
type Archive struct {
	db *pebble.DB
}

// Open opens (creating if needed) the archive in dir
func Open(dir string) (*Archive, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("failed to create backup dir: %w", err)
	}
	db, err := pebble.Open(dir, &pebble.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open backup archive: %w", err)
	}
	return &Archive{db: db}, nil
}

// Store archives data as read from path and returns its id
func (a *Archive) Store(path string, data []byte) (ksuid.KSUID, error) {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}

	id := ksuid.New()
	record := NewRecord(path, data)
	if err := a.db.Set(id.Bytes(), record.Encode(), pebble.Sync); err != nil {
		return ksuid.Nil, fmt.Errorf("failed to store backup: %w", err)
	}
	return id, nil
}

// StoreFile archives the current contents of path. A missing file is not an
// error: there is nothing to back up.
func (a *Archive) StoreFile(path string) (ksuid.KSUID, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return ksuid.Nil, false, nil
	}
	if err != nil {
		return ksuid.Nil, false, err
	}
	id, err := a.Store(path, data)
	if err != nil {
		return ksuid.Nil, false, err
	}
	return id, true, nil
}

// Get returns a validated backup
func (a *Archive) Get(id ksuid.KSUID) (*Record, error) {
	value, closer, err := a.db.Get(id.Bytes())
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	// value is only valid until closer.Close()
	data := append([]byte{}, value...)
	if err := closer.Close(); err != nil {
		return nil, err
	}

	record, err := DecodeRecord(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruption, err)
	}
	if err := record.Validate(); err != nil {
		return nil, err
	}
	return record, nil
}

// List returns every backup, oldest first
func (a *Archive) List() ([]Entry, error) {
	iter, err := a.db.NewIter(&pebble.IterOptions{})
	if err != nil {
		return nil, err
	}
	defer iter.Close()

	var entries []Entry
	for iter.First(); iter.Valid(); iter.Next() {
		id, err := ksuid.FromBytes(iter.Key())
		if err != nil {
			return nil, fmt.Errorf("%w: bad key: %v", ErrCorruption, err)
		}
		record, err := DecodeRecord(iter.Value())
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrCorruption, id, err)
		}
		entries = append(entries, Entry{
			ID:   id,
			Path: string(record.Path),
			Size: len(record.Data),
			Time: record.Time(),
		})
	}
	if err := iter.Error(); err != nil {
		return nil, err
	}

	// ksuid only orders to the second
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Time.Before(entries[j].Time)
	})
	return entries, nil
}

// Restore writes a backup to path, or to its original path when path is empty
func (a *Archive) Restore(id ksuid.KSUID, path string) (string, error) {
	record, err := a.Get(id)
	if err != nil {
		return "", err
	}
	if path == "" {
		path = string(record.Path)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(record.Data)); err != nil {
		return "", fmt.Errorf("failed to restore backup: %w", err)
	}
	return path, nil
}

// Delete removes a backup
func (a *Archive) Delete(id ksuid.KSUID) error {
	return a.db.Delete(id.Bytes(), pebble.Sync)
}

// Close closes the archive
func (a *Archive) Close() error {
	return a.db.Close()
}
