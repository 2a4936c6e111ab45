// Package prefs implements the preference store: UI display settings with
// synchronous setters, persisted to their own durable slot. Preferences
// have no relationship to authentication state.
package prefs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"adminboard/internal/logging"
	"adminboard/internal/models"
	"adminboard/internal/storage"
)

const schemaVersion = 1

// ErrInvalidPreference is returned when a setter receives a value outside
// its closed set.
var ErrInvalidPreference = errors.New("invalid preference value")

type envelope struct {
	SchemaVersion int                `json:"schema_version"`
	Preferences   models.Preferences `json:"preferences"`
}

// Store holds the current display preferences.
type Store struct {
	repo storage.Repository
	log  logging.Logger

	mu  sync.Mutex
	cur models.Preferences
}

// NewStore builds a preference store, restoring persisted preferences or
// falling back to the defaults.
func NewStore(ctx context.Context, repo storage.Repository, log logging.Logger) *Store {
	s := &Store{
		repo: repo,
		log:  log.With("store", "prefs"),
		cur:  models.DefaultPreferences(),
	}
	s.restore(ctx)
	return s
}

// Current returns a copy of the preferences.
func (s *Store) Current() models.Preferences {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cur
}

func (s *Store) SetMode(ctx context.Context, mode models.Mode) error {
	if !mode.Valid() {
		return fmt.Errorf("%w: mode %q", ErrInvalidPreference, mode)
	}
	s.set(ctx, func(p *models.Preferences) { p.Mode = mode })
	return nil
}

func (s *Store) SetColor(ctx context.Context, color models.Color) error {
	if !color.Valid() {
		return fmt.Errorf("%w: color %q", ErrInvalidPreference, color)
	}
	s.set(ctx, func(p *models.Preferences) { p.Color = color })
	return nil
}

func (s *Store) SetContainer(ctx context.Context, container models.Container) error {
	if !container.Valid() {
		return fmt.Errorf("%w: container %q", ErrInvalidPreference, container)
	}
	s.set(ctx, func(p *models.Preferences) { p.Container = container })
	return nil
}

func (s *Store) SetSidebar(ctx context.Context, sidebar models.Sidebar) error {
	if !sidebar.Valid() {
		return fmt.Errorf("%w: sidebar %q", ErrInvalidPreference, sidebar)
	}
	s.set(ctx, func(p *models.Preferences) { p.Sidebar = sidebar })
	return nil
}

func (s *Store) SetBorderRadius(ctx context.Context, radius models.BorderRadius) error {
	if !radius.Valid() {
		return fmt.Errorf("%w: border radius %d", ErrInvalidPreference, radius)
	}
	s.set(ctx, func(p *models.Preferences) { p.BorderRadius = radius })
	return nil
}

// Reset restores the default preferences.
func (s *Store) Reset(ctx context.Context) {
	s.set(ctx, func(p *models.Preferences) { *p = models.DefaultPreferences() })
}

func (s *Store) set(ctx context.Context, mutate func(*models.Preferences)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	mutate(&s.cur)
	s.persistLocked(ctx)
}

// persistLocked is fire-and-forget: write failures are logged, not surfaced.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Preferences: s.cur})
	if err != nil {
		s.log.Error(ctx, "failed to marshal preferences", "error", err)
		return
	}
	if err := s.repo.Set(ctx, storage.SlotPreferences, data); err != nil {
		s.log.Error(ctx, "failed to persist preferences", "error", err)
	}
}

func (s *Store) restore(ctx context.Context) {
	data, err := s.repo.Get(ctx, storage.SlotPreferences)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn(ctx, "failed to read persisted preferences", "error", err)
		}
		return
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.log.Warn(ctx, "discarding corrupt preferences blob", "error", err)
		return
	}
	if env.SchemaVersion != schemaVersion {
		s.log.Warn(ctx, "discarding preferences blob with unknown schema",
			"schema_version", env.SchemaVersion)
		return
	}

	s.mu.Lock()
	s.cur = env.Preferences
	s.mu.Unlock()
}
