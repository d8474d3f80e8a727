package stores

import (
	"slices"
	"sync"

	"github.com/jakechorley/activibe/pkg/core/model"
)

// AuthStore holds the signed-in identity and display preferences.
//
// Logging in is a role switch between two fixed identities; no credentials
// are involved.
type AuthStore struct {
	mu sync.Mutex

	volunteer model.User
	ngo       model.User

	user          *model.User
	authenticated bool
	darkMode      bool
	loading       bool
}

func NewAuthStore(volunteer, ngo model.User) *AuthStore {
	return &AuthStore{
		volunteer: volunteer,
		ngo:       ngo,
	}
}

func (s *AuthStore) LoginAsVolunteer() {
	s.login(s.volunteer)
}

func (s *AuthStore) LoginAsNGO() {
	s.login(s.ngo)
}

func (s *AuthStore) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.authenticated = false
	s.loading = false
}

// ToggleDarkMode flips the theme. It does not depend on who is signed in.
func (s *AuthStore) ToggleDarkMode() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.darkMode = !s.darkMode
}

func (s *AuthStore) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.loading = loading
}

// User returns a copy of the signed-in user, or nil
func (s *AuthStore) User() *model.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return nil
	}
	u := *s.user
	u.Skills = slices.Clone(u.Skills)
	return &u
}

func (s *AuthStore) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.authenticated
}

func (s *AuthStore) DarkMode() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.darkMode
}

func (s *AuthStore) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loading
}

func (s *AuthStore) login(u model.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u
	s.authenticated = true
	s.loading = false
}
