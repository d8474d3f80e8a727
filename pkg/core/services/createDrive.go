package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/teambition/rrule-go"
	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
)

const (
	defaultOccurrenceCount = 5
	occurrenceHorizonYears = 2
)

var validate = validator.New()

// DriveInput is the create-drive form as an NGO coordinator fills it in
type DriveInput struct {
	Name        string `validate:"required,max=120"`
	Schedule    string `validate:"required"` // free text, e.g. "15 June 2025, 8:00 AM – 12:00 PM"
	Location    string `validate:"required"`
	Spots       int    `validate:"min=5,max=500"`
	PostLimit   int    `validate:"min=1,max=10"`
	ZoneRadius  int    `validate:"min=100,max=2000"` // metres
	CauseArea   string
	Description string

	// Optional recurrence. StartsAt anchors the rule and is required with it.
	RRule           string
	StartsAt        time.Time
	OccurrenceCount int `validate:"min=0,max=52"`
}

// DrivePreview is the drive that would be published. Nothing is stored.
type DrivePreview struct {
	Drive       model.Drive
	Occurrences []time.Time
}

// CreateDrive validates the form and builds the drive it describes.
// The drive is owned by ngo, which must be an NGO identity.
func CreateDrive(ctx context.Context, ngo *model.User, input DriveInput, logger *zap.Logger) (*DrivePreview, error) {
	if err := RequireRole(ngo, model.RoleNGO); err != nil {
		return nil, err
	}

	input.Name = strings.TrimSpace(input.Name)
	input.Schedule = strings.TrimSpace(input.Schedule)
	input.Location = strings.TrimSpace(input.Location)

	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("drive validation failed: %w", err)
	}

	logger.Debug("Creating drive",
		zap.String("name", input.Name),
		zap.Int("spots", input.Spots),
		zap.Int("post_limit", input.PostLimit),
		zap.Int("zone_radius", input.ZoneRadius))

	var occurrences []time.Time
	if input.RRule != "" {
		if input.StartsAt.IsZero() {
			return nil, fmt.Errorf("drive validation failed: a start time is required with a recurrence rule")
		}
		count := input.OccurrenceCount
		if count == 0 {
			count = defaultOccurrenceCount
		}
		var err error
		occurrences, err = UpcomingOccurrences(input.RRule, input.StartsAt, count)
		if err != nil {
			return nil, err
		}
		logger.Debug("Expanded recurrence",
			zap.String("rrule", input.RRule),
			zap.Int("occurrences", len(occurrences)))
	}

	drive := model.Drive{
		ID:             "drive-" + uuid.New().String(),
		Name:           input.Name,
		NGOID:          ngo.ID,
		NGOName:        ngo.Name,
		NGOLogo:        ngo.AvatarURL,
		Date:           input.Schedule,
		Location:       input.Location,
		GeofenceRadius: input.ZoneRadius,
		MaxVolunteers:  input.Spots,
		PostLimit:      input.PostLimit,
		Status:         model.DriveStatusUpcoming,
		CauseArea:      input.CauseArea,
		Description:    input.Description,
	}

	logger.Info("Drive ready to publish",
		zap.String("drive_id", drive.ID),
		zap.String("ngo_id", drive.NGOID))

	return &DrivePreview{Drive: drive, Occurrences: occurrences}, nil
}

// UpcomingOccurrences expands an RFC 5545 rule anchored at from and returns
// at most n dates within the search horizon
func UpcomingOccurrences(rule string, from time.Time, n int) ([]time.Time, error) {
	if n <= 0 {
		return nil, nil
	}

	r, err := rrule.StrToRRule(rule)
	if err != nil {
		return nil, fmt.Errorf("invalid recurrence rule: %w", err)
	}
	r.DTStart(from)

	occurrences := r.Between(from, from.AddDate(occurrenceHorizonYears, 0, 0), true)
	if len(occurrences) > n {
		occurrences = occurrences[:n]
	}
	return occurrences, nil
}
