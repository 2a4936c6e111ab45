// Package roster implements the directory management store: an in-memory
// list of managed users with simulated-latency CRUD. The roster's identity
// space is independent from the session store and it is not persisted.
package roster

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"adminboard/internal/directory"
	"adminboard/internal/latency"
	"adminboard/internal/logging"
	"adminboard/internal/models"
)

var (
	// ErrEmailExists is returned by Add for a duplicate normalized email.
	ErrEmailExists = errors.New("email already exists")

	// ErrNotFound is returned by Update and Delete for an unknown id.
	ErrNotFound = errors.New("user not found")
)

// AddParams carries the caller-supplied fields for a new roster entry.
// ID and CreatedAt are assigned by the store.
type AddParams struct {
	Email     string
	Name      string
	Role      models.Role
	Status    models.Status
	Avatar    string
	LastLogin *time.Time
}

// Patch is a shallow field merge for Update; nil fields are left unchanged.
type Patch struct {
	Email     *string
	Name      *string
	Role      *models.Role
	Status    *models.Status
	Avatar    *string
	LastLogin *time.Time
}

// Store is the mutable roster.
type Store struct {
	delay latency.Delayer
	log   logging.Logger
	now   func() time.Time

	mu     sync.Mutex
	seeded bool
	users  []models.ManagedUser
}

func NewStore(delay latency.Delayer, log logging.Logger) *Store {
	return &Store{
		delay: delay,
		log:   log.With("store", "roster"),
		now:   time.Now,
	}
}

// seedLocked loads the fixed seed the first time any operation touches the
// roster, so mutations issued before the first fetch run against the seed
// instead of an empty list. Must be called with s.mu held.
func (s *Store) seedLocked(ctx context.Context) {
	if s.seeded {
		return
	}
	s.users = Seed()
	s.seeded = true
	s.log.Info(ctx, "roster seeded", "count", len(s.users))
}

// Fetch returns a copy of the roster. The first operation loads the fixed
// seed; later calls return the current list, mutations included.
func (s *Store) Fetch(ctx context.Context) ([]models.ManagedUser, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked(ctx)
	return copyUsers(s.users), nil
}

// Add appends a new entry, rejecting a duplicate normalized email.
func (s *Store) Add(ctx context.Context, params AddParams) (*models.ManagedUser, error) {
	if !params.Role.Valid() {
		return nil, fmt.Errorf("invalid role %q", params.Role)
	}
	if !params.Status.Valid() {
		return nil, fmt.Errorf("invalid status %q", params.Status)
	}

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked(ctx)

	email := directory.Normalize(params.Email)
	for _, u := range s.users {
		if directory.Normalize(u.Email) == email {
			return nil, ErrEmailExists
		}
	}

	user := models.ManagedUser{
		User: models.User{
			ID:        uuid.NewString(),
			Email:     params.Email,
			Name:      params.Name,
			Role:      params.Role,
			Avatar:    params.Avatar,
			CreatedAt: models.Date(s.now()),
		},
		Status:    params.Status,
		LastLogin: copyTime(params.LastLogin),
	}
	s.users = append(s.users, user)
	s.log.Info(ctx, "roster user added", "id", user.ID, "email", user.Email)

	out := copyUser(user)
	return &out, nil
}

// Update merges the non-nil patch fields into the entry with the given id.
func (s *Store) Update(ctx context.Context, id string, patch Patch) (*models.ManagedUser, error) {
	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked(ctx)

	for i := range s.users {
		if s.users[i].ID != id {
			continue
		}
		u := &s.users[i]
		if patch.Email != nil {
			u.Email = *patch.Email
		}
		if patch.Name != nil {
			u.Name = *patch.Name
		}
		if patch.Role != nil {
			u.Role = *patch.Role
		}
		if patch.Status != nil {
			u.Status = *patch.Status
		}
		if patch.Avatar != nil {
			u.Avatar = *patch.Avatar
		}
		if patch.LastLogin != nil {
			u.LastLogin = copyTime(patch.LastLogin)
		}
		s.log.Info(ctx, "roster user updated", "id", id)
		out := copyUser(*u)
		return &out, nil
	}
	return nil, ErrNotFound
}

// Delete removes the entry with the given id.
func (s *Store) Delete(ctx context.Context, id string) error {
	if err := s.delay.Wait(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked(ctx)

	for i := range s.users {
		if s.users[i].ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			s.log.Info(ctx, "roster user deleted", "id", id)
			return nil
		}
	}
	return ErrNotFound
}

func copyUsers(in []models.ManagedUser) []models.ManagedUser {
	out := make([]models.ManagedUser, len(in))
	for i, u := range in {
		out[i] = copyUser(u)
	}
	return out
}

func copyUser(in models.ManagedUser) models.ManagedUser {
	out := in
	out.LastLogin = copyTime(in.LastLogin)
	return out
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
