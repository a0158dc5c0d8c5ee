package library

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Store persists the consumable database as a JSON array on disk.
// A missing file is an empty database; the file is created on first
// write.
type Store struct {
	path string

	mu    sync.Mutex
	items []Item
}

// Open loads the database at path. A nonexistent file yields an empty
// store; malformed JSON is an error naming the path.
func Open(path string) (*Store, error) {
	s := &Store{path: path}
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("reading library %s: %w", path, err)
	}
	if err := json.Unmarshal(raw, &s.items); err != nil {
		return nil, fmt.Errorf("invalid JSON in library %s: %w", path, err)
	}
	return s, nil
}

// Path returns the on-disk location of the database.
func (s *Store) Path() string { return s.path }

// Items returns a copy of all records.
func (s *Store) Items() []Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	items := make([]Item, len(s.items))
	copy(items, s.items)
	return items
}

// Len returns the record count.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Append adds records and persists the database.
func (s *Store) Append(items ...Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, items...)
	return s.save()
}

// ExportTo writes the database to another file, leaving the store's own
// path untouched.
func (s *Store) ExportTo(path string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return writeItems(path, s.items)
}

func (s *Store) save() error {
	return writeItems(s.path, s.items)
}

// writeItems writes atomically via temp file + rename so a failed write
// cannot truncate the database.
func writeItems(path string, items []Item) error {
	if items == nil {
		items = []Item{}
	}
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding library: %w", err)
	}
	data = append(data, '\n')
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("writing library %s: %w", path, err)
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		_ = os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}
