package services

import (
	"errors"
	"fmt"

	"github.com/jakechorley/activibe/pkg/core/model"
)

var (
	ErrNotSignedIn = errors.New("not signed in")
	ErrWrongRole   = errors.New("wrong role")
)

// FormatTimer renders elapsed seconds as HH:MM:SS. Hours are not wrapped.
func FormatTimer(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// RequireRole returns an error unless user is signed in with the given role
func RequireRole(user *model.User, role model.Role) error {
	if user == nil {
		return ErrNotSignedIn
	}
	if user.Role != role {
		return fmt.Errorf("%w: %s only, signed in as %s", ErrWrongRole, role, user.Role)
	}
	return nil
}
