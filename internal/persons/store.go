package persons

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/biograph/persona-mcp/internal/domain"
)

// StoreVersion is the current schema version of the data file.
const StoreVersion = 1

// storeFile is the on-disk shape of the data file.
type storeFile struct {
	Version int              `json:"version"`
	Persons []*domain.Person `json:"persons"`
}

// Store holds person records in memory and persists them to a single JSON
// document. Records keep insertion order, which search tie-breaking is
// defined over; a name index provides O(1) lookup.
//
// Every mutation saves before returning and rolls itself back when the save
// fails, so memory always mirrors the file.
type Store struct {
	path    string
	mu      sync.RWMutex
	persons []*domain.Person
	index   map[string]int // name -> position in persons
}

// OpenStore reads the data file at path, or starts empty when it does not
// exist yet (first run).
func OpenStore(path string) (*Store, error) {
	s := &Store{
		path:    path,
		persons: make([]*domain.Person, 0),
		index:   make(map[string]int),
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return nil, fmt.Errorf("failed to read data file: %w", err)
	}

	var file storeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse data file: %w", err)
	}
	if file.Version > StoreVersion {
		return nil, fmt.Errorf("data file version %d is newer than supported version %d", file.Version, StoreVersion)
	}

	// Tolerate hand-edited files: drop nameless records, last duplicate wins.
	for _, p := range file.Persons {
		if p == nil || p.Name == "" {
			slog.Warn("Skipping record without a name in data file", "path", path)
			continue
		}
		if at, ok := s.index[p.Name]; ok {
			slog.Warn("Duplicate name in data file, keeping the later record", "name", p.Name)
			s.persons[at] = p
			continue
		}
		s.index[p.Name] = len(s.persons)
		s.persons = append(s.persons, p)
	}

	return s, nil
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Len returns the number of stored records.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.persons)
}

// Has returns true when a record with the given name exists.
func (s *Store) Has(name string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.index[name]
	return ok
}

// Get returns a clone of the named record.
func (s *Store) Get(name string) (*domain.Person, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	at, ok := s.index[name]
	if !ok {
		return nil, false
	}
	return s.persons[at].Clone(), true
}

// Snapshot returns clones of all records in insertion order.
// Every call builds a fresh slice; the caller owns it.
func (s *Store) Snapshot() []*domain.Person {
	s.mu.RLock()
	defer s.mu.RUnlock()
	snapshot := make([]*domain.Person, len(s.persons))
	for i, p := range s.persons {
		snapshot[i] = p.Clone()
	}
	return snapshot
}

// Names returns all record names in insertion order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	names := make([]string, len(s.persons))
	for i, p := range s.persons {
		names[i] = p.Name
	}
	return names
}

// Insert appends a new record and saves.
// Returns ErrPersonExists when the name is taken.
func (s *Store) Insert(p *domain.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.index[p.Name]; ok {
		return fmt.Errorf("%w: %s", ErrPersonExists, p.Name)
	}

	s.index[p.Name] = len(s.persons)
	s.persons = append(s.persons, p.Clone())

	if err := s.saveLocked(); err != nil {
		s.persons = s.persons[:len(s.persons)-1]
		delete(s.index, p.Name)
		return err
	}
	return nil
}

// Replace swaps the named record in place, keeping its position, and saves.
// Returns ErrPersonNotFound when the name is not stored.
func (s *Store) Replace(p *domain.Person) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.index[p.Name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrPersonNotFound, p.Name)
	}

	previous := s.persons[at]
	s.persons[at] = p.Clone()

	if err := s.saveLocked(); err != nil {
		s.persons[at] = previous
		return err
	}
	return nil
}

// Remove deletes the named record and saves, returning a clone of the removed
// record. A failed save restores it at its original position so the snapshot
// order survives.
func (s *Store) Remove(name string) (*domain.Person, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at, ok := s.index[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, name)
	}

	previous := s.persons
	removed := previous[at]

	rest := make([]*domain.Person, 0, len(previous)-1)
	rest = append(rest, previous[:at]...)
	rest = append(rest, previous[at+1:]...)
	s.persons = rest
	s.reindexLocked()

	if err := s.saveLocked(); err != nil {
		s.persons = previous
		s.reindexLocked()
		return nil, err
	}
	return removed.Clone(), nil
}

// reindexLocked rebuilds the name index. Callers must hold the mutex.
func (s *Store) reindexLocked() {
	s.index = make(map[string]int, len(s.persons))
	for i, p := range s.persons {
		s.index[p.Name] = i
	}
}

// saveLocked writes the data file atomically using the write-to-temp + rename
// pattern. Callers must hold the mutex.
func (s *Store) saveLocked() error {
	// Indented JSON keeps the file hand-readable.
	data, err := json.MarshalIndent(storeFile{Version: StoreVersion, Persons: s.persons}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal data file: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create data directory: %w", err)
	}

	tempPath := s.path + ".tmp"
	if err := os.WriteFile(tempPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write data temp file: %w", err)
	}

	if err := os.Rename(tempPath, s.path); err != nil {
		_ = os.Remove(tempPath)
		return fmt.Errorf("failed to rename data file: %w", err)
	}

	return nil
}
