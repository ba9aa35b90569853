package files

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrEncoding is returned when a collection cannot be serialized.
var ErrEncoding = errors.New("failed to encode media collection")

// Entry is one element of the JSON interchange array.
type Entry struct {
	Fullpath string            `json:"fullpath"`
	Type     string            `json:"type"`
	Metadata map[string]string `json:"metadata"`
}

// ReadEntries decodes the JSON array stored at path.
func ReadEntries(path string) ([]Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var entries []Entry
	if err := json.NewDecoder(f).Decode(&entries); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", path, err)
	}
	return entries, nil
}

// WriteEntries encodes entries and writes them to path. The data goes to a
// temporary file in the same directory first and is then renamed into place,
// so a failed write never leaves a truncated collection behind.
func WriteEntries(path string, entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrEncoding, err)
	}

	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".mediashelf-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temporary file in %s: %w", dir, err)
	}
	// Removing after a successful rename is a no-op.
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to move collection to %s: %w", path, err)
	}
	return nil
}
