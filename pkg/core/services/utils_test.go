package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/seed"
)

func TestFormatTimer(t *testing.T) {
	tests := []struct {
		seconds int
		want    string
	}{
		{0, "00:00:00"},
		{59, "00:00:59"},
		{60, "00:01:00"},
		{3661, "01:01:01"},
		{10081, "02:48:01"},
		{360000, "100:00:00"},
		{-5, "00:00:00"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatTimer(tt.seconds))
		})
	}
}

func TestRequireRole(t *testing.T) {
	volunteer := seed.Volunteer()
	ngo := seed.NGO()

	assert.ErrorIs(t, RequireRole(nil, model.RoleNGO), ErrNotSignedIn)
	assert.ErrorIs(t, RequireRole(&volunteer, model.RoleNGO), ErrWrongRole)
	assert.ErrorIs(t, RequireRole(&ngo, model.RoleVolunteer), ErrWrongRole)
	assert.NoError(t, RequireRole(&ngo, model.RoleNGO))
	assert.NoError(t, RequireRole(&volunteer, model.RoleVolunteer))
}
