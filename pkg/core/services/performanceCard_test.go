package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/stores"
	"github.com/jakechorley/activibe/pkg/seed"
)

func TestBuildPerformanceCard_Profile(t *testing.T) {
	card := BuildPerformanceCard(seed.Volunteer(), seed.Endorsements(), nil)

	assert.Equal(t, "Arjun Mehta", card.VolunteerName)
	assert.Equal(t, 142, card.TotalActiveHours)
	assert.Equal(t, 8, card.DrivesCompleted)
	assert.Equal(t, 4, card.EndorsementCount)
	assert.Len(t, card.Endorsements, 4)
	assert.Equal(t, []string{"Tech & IT"}, card.EndorsedSkills)
	assert.Equal(t, []string{"Logistics & Ops", "Environment"}, card.OtherSkills)
	assert.Nil(t, card.Session)
}

func TestBuildPerformanceCard_EmptySessionIgnored(t *testing.T) {
	card := BuildPerformanceCard(seed.Volunteer(), nil, &stores.ActiveEventState{TimerSeconds: 10})

	assert.Nil(t, card.Session)
}

func TestPerformanceCard_ShareText(t *testing.T) {
	card := BuildPerformanceCard(seed.Volunteer(), seed.Endorsements(), nil)

	text := card.ShareText()

	require.NotEmpty(t, text)
	assert.Contains(t, text, "Arjun Mehta")
	assert.Contains(t, text, "142 GPS-verified hours")
	assert.Contains(t, text, "4 endorsements")
	assert.Contains(t, text, "8 drives completed")
	assert.Contains(t, text, "#ActiVibe #VerifiedVolunteer")
}

func TestVolunteerProfile(t *testing.T) {
	volunteer := seed.Volunteer()
	ngo := seed.NGO()

	card, err := VolunteerProfile(context.Background(), &volunteer, seed.Endorsements(), zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, volunteer.Name, card.VolunteerName)

	_, err = VolunteerProfile(context.Background(), &ngo, seed.Endorsements(), zap.NewNop())
	assert.ErrorIs(t, err, ErrWrongRole)

	_, err = VolunteerProfile(context.Background(), nil, nil, zap.NewNop())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}
