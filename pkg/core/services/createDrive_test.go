package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
	"github.com/jakechorley/activibe/pkg/seed"
)

func validDriveInput() DriveInput {
	return DriveInput{
		Name:       "  Juhu Beach Cleanup  ",
		Schedule:   "22 June 2025, 7:00 AM – 11:00 AM",
		Location:   "Juhu Beach, Mumbai",
		Spots:      40,
		PostLimit:  3,
		ZoneRadius: 500,
		CauseArea:  "Environment & Climate",
	}
}

func TestCreateDrive_Success(t *testing.T) {
	ngo := seed.NGO()

	preview, err := CreateDrive(context.Background(), &ngo, validDriveInput(), zap.NewNop())
	require.NoError(t, err)

	d := preview.Drive
	assert.Contains(t, d.ID, "drive-")
	assert.Equal(t, "Juhu Beach Cleanup", d.Name)
	assert.Equal(t, seed.NGOID, d.NGOID)
	assert.Equal(t, ngo.Name, d.NGOName)
	assert.Equal(t, 40, d.MaxVolunteers)
	assert.Equal(t, 3, d.PostLimit)
	assert.Equal(t, 500, d.GeofenceRadius)
	assert.Equal(t, model.DriveStatusUpcoming, d.Status)
	assert.Empty(t, preview.Occurrences)
}

func TestCreateDrive_RequiresNGO(t *testing.T) {
	volunteer := seed.Volunteer()

	_, err := CreateDrive(context.Background(), &volunteer, validDriveInput(), zap.NewNop())
	assert.ErrorIs(t, err, ErrWrongRole)

	_, err = CreateDrive(context.Background(), nil, validDriveInput(), zap.NewNop())
	assert.ErrorIs(t, err, ErrNotSignedIn)
}

func TestCreateDrive_Bounds(t *testing.T) {
	ngo := seed.NGO()

	tests := []struct {
		name   string
		modify func(*DriveInput)
	}{
		{"blank name", func(in *DriveInput) { in.Name = "   " }},
		{"missing location", func(in *DriveInput) { in.Location = "" }},
		{"missing schedule", func(in *DriveInput) { in.Schedule = "" }},
		{"too few spots", func(in *DriveInput) { in.Spots = 4 }},
		{"too many spots", func(in *DriveInput) { in.Spots = 501 }},
		{"zero post limit", func(in *DriveInput) { in.PostLimit = 0 }},
		{"post limit above 10", func(in *DriveInput) { in.PostLimit = 11 }},
		{"radius too small", func(in *DriveInput) { in.ZoneRadius = 99 }},
		{"radius too large", func(in *DriveInput) { in.ZoneRadius = 2001 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := validDriveInput()
			tt.modify(&in)

			_, err := CreateDrive(context.Background(), &ngo, in, zap.NewNop())
			require.Error(t, err)
			assert.Contains(t, err.Error(), "drive validation failed")
		})
	}
}

func TestCreateDrive_BoundaryValuesAccepted(t *testing.T) {
	ngo := seed.NGO()
	in := validDriveInput()
	in.Spots = 5
	in.PostLimit = 10
	in.ZoneRadius = 2000

	_, err := CreateDrive(context.Background(), &ngo, in, zap.NewNop())
	assert.NoError(t, err)
}

func TestCreateDrive_Recurring(t *testing.T) {
	ngo := seed.NGO()
	in := validDriveInput()
	in.RRule = "FREQ=WEEKLY;BYDAY=SU"
	in.StartsAt = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	in.OccurrenceCount = 3

	preview, err := CreateDrive(context.Background(), &ngo, in, zap.NewNop())
	require.NoError(t, err)

	require.Len(t, preview.Occurrences, 3)
	assert.Equal(t, "2025-06-15", preview.Occurrences[0].Format("2006-01-02"))
	assert.Equal(t, "2025-06-22", preview.Occurrences[1].Format("2006-01-02"))
	assert.Equal(t, "2025-06-29", preview.Occurrences[2].Format("2006-01-02"))
}

func TestCreateDrive_RecurringNeedsStart(t *testing.T) {
	ngo := seed.NGO()
	in := validDriveInput()
	in.RRule = "FREQ=WEEKLY;BYDAY=SU"

	_, err := CreateDrive(context.Background(), &ngo, in, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start time")
}

func TestCreateDrive_InvalidRRule(t *testing.T) {
	ngo := seed.NGO()
	in := validDriveInput()
	in.RRule = "FREQ=SOMETIMES"
	in.StartsAt = time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)

	_, err := CreateDrive(context.Background(), &ngo, in, zap.NewNop())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid recurrence rule")
}

func TestUpcomingOccurrences_DefaultsAndLimits(t *testing.T) {
	from := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	dates, err := UpcomingOccurrences("FREQ=MONTHLY;BYMONTHDAY=1", from, 0)
	require.NoError(t, err)
	assert.Empty(t, dates)

	dates, err = UpcomingOccurrences("FREQ=MONTHLY;BYMONTHDAY=1", from, 4)
	require.NoError(t, err)
	require.Len(t, dates, 4)
	assert.Equal(t, "2025-09-01", dates[3].Format("2006-01-02"))
}
