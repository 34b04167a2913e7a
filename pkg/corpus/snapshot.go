package corpus

import (
	"bufio"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// SnapshotFileName is the msgpack export of a store.
const SnapshotFileName = "concordance.msgpack"

// snapshotVersion is bumped on any change to Snapshot or Entry.
const snapshotVersion = 1

// Snapshot is the msgpack layout of an exported store.
type Snapshot struct {
	Version int     `msgpack:"v"`
	Tokens  int     `msgpack:"t"`
	Entries []Entry `msgpack:"es"`
}

// WriteSnapshot overwrites path with the msgpack encoding of the store.
func WriteSnapshot(path string, ix *Index, s *Store) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", path, err)
	}
	defer file.Close()

	w := bufio.NewWriter(file)
	snap := Snapshot{Version: snapshotVersion, Tokens: ix.Len(), Entries: s.Entries()}
	if err := msgpack.NewEncoder(w).Encode(&snap); err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", path, err)
	}
	return nil
}

// ReadSnapshot decodes a snapshot written by WriteSnapshot.
func ReadSnapshot(path string) (*Snapshot, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open snapshot %s: %w", path, err)
	}
	defer file.Close()

	var snap Snapshot
	if err := msgpack.NewDecoder(bufio.NewReader(file)).Decode(&snap); err != nil {
		return nil, fmt.Errorf("failed to decode snapshot %s: %w", path, err)
	}
	if snap.Version != snapshotVersion {
		return nil, fmt.Errorf("snapshot %s has version %d, want %d", path, snap.Version, snapshotVersion)
	}
	return &snap, nil
}
