package room

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists rooms as one file per room index under Dir
type Store struct {
	Dir string
}

// NewStore creates a store rooted at dir
func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

// Path returns the file path of a room index
func (s *Store) Path(index Index) string {
	return filepath.Join(s.Dir, fmt.Sprintf("room-%d.bin", index))
}

// Save writes a room's tile grid, creating Dir when missing
func (s *Store) Save(r *Room, index Index) error {
	data, err := r.MarshalBinary()
	if err != nil {
		return fmt.Errorf("encode room %d: %w", index, err)
	}
	if err := os.MkdirAll(s.Dir, 0755); err != nil {
		return fmt.Errorf("create room dir: %w", err)
	}
	if err := os.WriteFile(s.Path(index), data, 0644); err != nil {
		return fmt.Errorf("write room %d: %w", index, err)
	}
	return nil
}

// Load reads a room's tile grid in place
func (s *Store) Load(r *Room, index Index) error {
	data, err := os.ReadFile(s.Path(index))
	if err != nil {
		return fmt.Errorf("read room %d: %w", index, err)
	}
	if err := r.UnmarshalBinary(data); err != nil {
		return fmt.Errorf("decode room %d: %w", index, err)
	}
	return nil
}

// LoadRow loads every room of the row, rooms without a file get the Floor layout
// Returns the first error that is not a missing file
func (s *Store) LoadRow(row *Row) error {
	for i := 0; i < row.Len(); i++ {
		r := row.Room(Index(i))
		err := s.Load(r, Index(i))
		if err == nil {
			continue
		}
		if errors.Is(err, fs.ErrNotExist) {
			Floor(r)
			continue
		}
		return err
	}
	return nil
}
