// Package directory implements the credential directory: the fixed lookup
// table of known email/password/user triples standing in for a real user
// database. The directory is read-only; it is injected into the session
// store so tests can substitute alternate rosters.
package directory

import (
	"strings"
	"time"

	"adminboard/internal/models"
)

// Entry pairs a plaintext password with the user record it unlocks.
// Plaintext is deliberate: there is no real backend and no hashing here.
type Entry struct {
	Password string
	User     models.User
}

// Directory resolves a normalized email to a credential entry.
type Directory interface {
	// Lookup returns the entry for the given email. The email is
	// normalized to lowercase before the lookup.
	Lookup(email string) (Entry, bool)
}

// Static is a Directory backed by a fixed map keyed by lowercase email.
type Static struct {
	entries map[string]Entry
}

// NewStatic builds a Static directory from the given entries. Keys are
// normalized to lowercase; a later duplicate overwrites an earlier one.
func NewStatic(entries []Entry) *Static {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		m[Normalize(e.User.Email)] = e
	}
	return &Static{entries: m}
}

func (s *Static) Lookup(email string) (Entry, bool) {
	e, ok := s.entries[Normalize(email)]
	return e, ok
}

// Normalize canonicalizes an email for directory comparison.
func Normalize(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Demo returns the built-in demo directory: three accounts, one per role.
func Demo() *Static {
	return NewStatic([]Entry{
		{
			Password: "admin123",
			User: models.User{
				ID:        "1",
				Email:     "admin@demo.com",
				Name:      "Admin User",
				Role:      models.RoleAdmin,
				CreatedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			Password: "manager123",
			User: models.User{
				ID:        "2",
				Email:     "manager@demo.com",
				Name:      "Manager User",
				Role:      models.RoleManager,
				CreatedAt: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
			},
		},
		{
			Password: "user123",
			User: models.User{
				ID:        "3",
				Email:     "user@demo.com",
				Name:      "Regular User",
				Role:      models.RoleUser,
				CreatedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	})
}
