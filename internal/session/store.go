// Package session implements the session store: the authentication state of
// the active caller and the login, sign-up, logout and forgot-password
// operations that mutate it. Credentials are validated against an injected
// credential directory; every mutation is persisted to a durable storage
// slot so a restart restores the session.
package session

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"adminboard/internal/directory"
	"adminboard/internal/latency"
	"adminboard/internal/logging"
	"adminboard/internal/models"
	"adminboard/internal/storage"
)

const (
	minPasswordLen = 6

	// schemaVersion tags the persisted blob so future field changes can
	// migrate instead of corrupting restored state.
	schemaVersion = 1
)

// envelope is the durable representation of the session state.
type envelope struct {
	SchemaVersion int            `json:"schema_version"`
	Session       models.Session `json:"session"`
}

// Store holds the current session and its operations.
//
// Each operation reads and writes the session atomically: the mutex covers
// every state transition, and the simulated round trip happens outside it.
// Logout bumps an internal generation counter; an operation whose round
// trip completes after a logout observes the changed generation and is
// rejected with ErrSuperseded instead of silently reinstating a session.
type Store struct {
	dir    directory.Directory
	repo   storage.Repository
	delay  latency.Delayer
	tokens *TokenIssuer
	log    logging.Logger
	now    func() time.Time

	mu  sync.Mutex
	gen uint64
	cur models.Session
}

// NewStore constructs a session store and restores any previously persisted
// session from repo. A missing, corrupt or incompatible blob yields an
// empty session; restore problems are logged, never fatal.
func NewStore(ctx context.Context, dir directory.Directory, repo storage.Repository,
	delay latency.Delayer, tokens *TokenIssuer, log logging.Logger) *Store {

	s := &Store{
		dir:    dir,
		repo:   repo,
		delay:  delay,
		tokens: tokens,
		log:    log.With("store", "session"),
		now:    time.Now,
	}
	s.restore(ctx)
	return s
}

// Current returns a copy of the session state.
func (s *Store) Current() models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copySession(s.cur)
}

// Login validates the credentials against the directory after one simulated
// round trip. On success the session becomes authenticated and the user is
// returned; on failure the session is left untouched and the error is
// ErrInvalidCredentials regardless of which part of the credential was wrong.
func (s *Store) Login(ctx context.Context, email, password string) (*models.User, error) {
	gen := s.generation()

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	entry, ok := s.dir.Lookup(email)
	if !ok || subtle.ConstantTimeCompare([]byte(entry.Password), []byte(password)) != 1 {
		s.log.Info(ctx, "login rejected", "email", directory.Normalize(email))
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(entry.User)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	user := entry.User
	if err := s.apply(ctx, gen, &user, token); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "login successful", "email", user.Email, "role", user.Role)
	return &user, nil
}

// SignUp creates a fresh lowest-privilege user and authenticates the session
// with it. The credential directory is read-only, so the new credential is
// not registered for later logins.
func (s *Store) SignUp(ctx context.Context, email, password, name string) (*models.User, error) {
	gen := s.generation()

	if err := s.delay.Wait(ctx); err != nil {
		return nil, err
	}

	if _, ok := s.dir.Lookup(email); ok {
		return nil, ErrEmailTaken
	}
	if len(password) < minPasswordLen {
		return nil, ErrWeakPassword
	}

	user := models.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		Role:      models.RoleUser,
		CreatedAt: models.Date(s.now()),
	}

	token, err := s.tokens.Issue(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	if err := s.apply(ctx, gen, &user, token); err != nil {
		return nil, err
	}
	s.log.Info(ctx, "sign-up successful", "email", user.Email)
	return &user, nil
}

// Logout clears the session unconditionally and invalidates any in-flight
// operation. Idempotent, synchronous, no error condition.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.cur = models.Session{}
	s.persistLocked(context.Background())
	s.log.Info(context.Background(), "logged out")
}

// ForgotPassword checks that an account exists for the email. No reset
// token is issued and no session state changes; the existence check is the
// whole operation.
func (s *Store) ForgotPassword(ctx context.Context, email string) error {
	if err := s.delay.Wait(ctx); err != nil {
		return err
	}
	if _, ok := s.dir.Lookup(email); !ok {
		return ErrAccountNotFound
	}
	return nil
}

func (s *Store) generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// apply installs an authenticated session if the store generation still
// matches the one snapshotted before the simulated round trip.
func (s *Store) apply(ctx context.Context, gen uint64, user *models.User, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen {
		s.log.Warn(ctx, "stale completion dropped", "email", user.Email)
		return ErrSuperseded
	}

	u := *user
	s.cur = models.Session{User: &u, Token: token, Authenticated: true}
	s.persistLocked(ctx)
	return nil
}

// persistLocked writes the current session to its durable slot. Persistence
// is fire-and-forget: a failed write is logged and never surfaced to the
// caller. Must be called with s.mu held.
func (s *Store) persistLocked(ctx context.Context) {
	data, err := json.Marshal(envelope{SchemaVersion: schemaVersion, Session: s.cur})
	if err != nil {
		s.log.Error(ctx, "failed to marshal session", "error", err)
		return
	}
	if err := s.repo.Set(ctx, storage.SlotSession, data); err != nil {
		s.log.Error(ctx, "failed to persist session", "error", err)
	}
}

// restore loads the persisted session, enforcing the invariant that
// authenticated requires both user and token.
func (s *Store) restore(ctx context.Context) {
	data, err := s.repo.Get(ctx, storage.SlotSession)
	if err != nil {
		if !errors.Is(err, storage.ErrNotFound) {
			s.log.Warn(ctx, "failed to read persisted session", "error", err)
		}
		return
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.log.Warn(ctx, "discarding corrupt session blob", "error", err)
		return
	}
	if env.SchemaVersion != schemaVersion {
		s.log.Warn(ctx, "discarding session blob with unknown schema",
			"schema_version", env.SchemaVersion)
		return
	}
	if env.Session.User == nil || env.Session.Token == "" {
		return
	}

	env.Session.Authenticated = true
	s.mu.Lock()
	s.cur = env.Session
	s.mu.Unlock()
	s.log.Info(ctx, "session restored", "email", env.Session.User.Email)
}

func copySession(in models.Session) models.Session {
	out := in
	if in.User != nil {
		u := *in.User
		out.User = &u
	}
	return out
}
