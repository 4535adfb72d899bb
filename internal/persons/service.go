package persons

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/biograph/persona-mcp/internal/config"
	"github.com/biograph/persona-mcp/internal/domain"
	"github.com/biograph/persona-mcp/internal/search"
)

// Service coordinates the record store and the name search engine behind the
// MCP tools.
type Service struct {
	settings *config.PersonsSettings
	store    *Store
	lock     *FileLock
	ready    bool
	mu       sync.RWMutex
}

// NewService creates a new person records service.
func NewService(settings *config.PersonsSettings) (*Service, error) {
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	return &Service{
		settings: settings,
		lock:     NewFileLock(lockPathFor(settings.DataFile)),
	}, nil
}

// Initialize acquires the single-writer lock on the data file and loads it.
// When another process already serves the same file, it waits up to the
// configured lock timeout before giving up.
func (s *Service) Initialize(ctx context.Context) error {
	if err := s.lock.LockWithContext(ctx, s.settings.LockTimeout); err != nil {
		if errors.Is(err, ErrLockTimeout) {
			return fmt.Errorf("data file %s is locked by another process: %w", s.settings.DataFile, err)
		}
		return fmt.Errorf("failed to acquire store lock: %w", err)
	}

	store, err := OpenStore(s.settings.DataFile)
	if err != nil {
		_ = s.lock.Unlock()
		return err
	}

	s.mu.Lock()
	s.store = store
	s.ready = true
	s.mu.Unlock()

	slog.Info("Person store ready", "data_file", s.settings.DataFile, "records", store.Len())
	return nil
}

// IsReady returns true once the store is loaded and the lock is held.
func (s *Service) IsReady() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ready
}

// GetSettings returns the service settings.
func (s *Service) GetSettings() *config.PersonsSettings {
	return s.settings
}

// currentStore returns the loaded store or ErrStoreNotReady.
func (s *Service) currentStore() (*Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.ready || s.store == nil {
		return nil, ErrStoreNotReady
	}
	return s.store, nil
}

// Add validates and stores a new person record.
func (s *Service) Add(args AddPersonArgs) (*domain.Person, error) {
	store, err := s.currentStore()
	if err != nil {
		return nil, err
	}

	args.Name = strings.TrimSpace(args.Name)
	if args.Name == "" {
		return nil, ErrNameRequired
	}
	if store.Has(args.Name) {
		return nil, fmt.Errorf("%w: %s", ErrPersonExists, args.Name)
	}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	birth, err := newBirthTime(args.BirthYear, args.BirthMonth, args.BirthDay, args.BirthHour, args.BirthMinute)
	if err != nil {
		return nil, err
	}

	person := &domain.Person{
		Name:      args.Name,
		Gender:    args.Gender,
		BirthTime: birth,
		Location: domain.Location{
			City:      args.City,
			Latitude:  args.Latitude,
			Longitude: args.Longitude,
		},
		Timezone:  args.Timezone,
		CreatedAt: now(),
	}

	if err := store.Insert(person); err != nil {
		return nil, err
	}

	slog.Info("Person added", "name", person.Name)
	return person, nil
}

// Get returns a clone of the named record along with the current age in
// whole years (computed, never persisted).
func (s *Service) Get(name string) (*domain.Person, int, error) {
	store, err := s.currentStore()
	if err != nil {
		return nil, 0, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, 0, ErrNameRequired
	}

	person, ok := store.Get(name)
	if !ok {
		return nil, 0, fmt.Errorf("%w: %s", ErrPersonNotFound, name)
	}
	return person, ageOf(person.BirthTime), nil
}

// List returns clones of all records in insertion order.
func (s *Service) List() ([]*domain.Person, error) {
	store, err := s.currentStore()
	if err != nil {
		return nil, err
	}
	return store.Snapshot(), nil
}

// Update applies the provided fields to an existing record. Partial birth
// fields merge over the stored values and the merged instant is re-validated.
func (s *Service) Update(args UpdatePersonArgs) (*domain.Person, error) {
	store, err := s.currentStore()
	if err != nil {
		return nil, err
	}

	args.Name = strings.TrimSpace(args.Name)
	if args.Name == "" {
		return nil, ErrNameRequired
	}
	if !args.hasFields() {
		return nil, ErrNoFields
	}
	if err := validateArgs(args); err != nil {
		return nil, err
	}

	person, ok := store.Get(args.Name)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPersonNotFound, args.Name)
	}

	if args.birthChanged() {
		bt := person.BirthTime
		if args.BirthYear != nil {
			bt.Year = *args.BirthYear
		}
		if args.BirthMonth != nil {
			bt.Month = *args.BirthMonth
		}
		if args.BirthDay != nil {
			bt.Day = *args.BirthDay
		}
		if args.BirthHour != nil {
			bt.Hour = *args.BirthHour
		}
		if args.BirthMinute != nil {
			bt.Minute = *args.BirthMinute
		}
		birth, err := newBirthTime(bt.Year, bt.Month, bt.Day, bt.Hour, bt.Minute)
		if err != nil {
			return nil, err
		}
		person.BirthTime = birth
	}

	if args.City != nil {
		person.Location.City = *args.City
	}
	if args.Latitude != nil {
		person.Location.Latitude = *args.Latitude
	}
	if args.Longitude != nil {
		person.Location.Longitude = *args.Longitude
	}
	if args.Gender != nil {
		person.Gender = *args.Gender
	}
	if args.Timezone != nil {
		person.Timezone = *args.Timezone
	}
	person.UpdatedAt = now()

	if err := store.Replace(person); err != nil {
		return nil, err
	}

	slog.Info("Person updated", "name", person.Name)
	return person, nil
}

// Delete removes the named record. A failed save restores it (the store
// guarantees memory mirrors the file).
func (s *Service) Delete(name string) (*domain.Person, error) {
	store, err := s.currentStore()
	if err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	removed, err := store.Remove(name)
	if err != nil {
		return nil, err
	}

	slog.Info("Person deleted", "name", name)
	return removed, nil
}

// SearchMatch pairs a ranked hit with its full record.
type SearchMatch struct {
	Score  int            `json:"score"`
	Rule   search.Rule    `json:"matched_rule"`
	Person *domain.Person `json:"person"`
}

// Search ranks stored names against the query and resolves the top matches
// to full records. A positive limit caps the result count below the
// configured maximum. Search reads a snapshot and never mutates the store.
func (s *Service) Search(query string, limit int) ([]SearchMatch, error) {
	store, err := s.currentStore()
	if err != nil {
		return nil, err
	}

	results, err := search.Search(query, store.Names())
	if err != nil {
		return nil, err
	}

	maxResults := s.settings.MaxResults
	if limit > 0 && limit < maxResults {
		maxResults = limit
	}
	if len(results) > maxResults {
		results = results[:maxResults]
	}

	matches := make([]SearchMatch, 0, len(results))
	for _, r := range results {
		person, ok := store.Get(r.Name)
		if !ok {
			continue
		}
		matches = append(matches, SearchMatch{Score: r.Score, Rule: r.Rule, Person: person})
	}
	return matches, nil
}

// Close releases the data file lock.
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.ready = false
	s.store = nil
	return s.lock.Unlock()
}
