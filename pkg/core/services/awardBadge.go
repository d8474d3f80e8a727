package services

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.uber.org/zap"

	"github.com/jakechorley/activibe/pkg/core/model"
)

var (
	ErrUnknownVolunteer    = errors.New("unknown volunteer")
	ErrUnknownBadge        = errors.New("unknown badge")
	ErrBadgeAlreadyAwarded = errors.New("badge already awarded to this volunteer")
	ErrBadgeQuotaReached   = errors.New("badge quota for this drive reached")
)

// BadgeLedger records badges awarded at one drive for as long as the
// coordinator's session lasts
type BadgeLedger struct {
	mu sync.Mutex

	badgeTypes []model.BadgeType
	volunteers []model.AnalyticsVolunteer
	awarded    map[string][]string // volunteer ID -> badge names in award order
	counts     map[string]int      // badge ID -> times awarded
}

func NewBadgeLedger(badgeTypes []model.BadgeType, volunteers []model.AnalyticsVolunteer) *BadgeLedger {
	return &BadgeLedger{
		badgeTypes: slices.Clone(badgeTypes),
		volunteers: slices.Clone(volunteers),
		awarded:    make(map[string][]string),
		counts:     make(map[string]int),
	}
}

// Award gives badgeID to volunteerID. A volunteer holds each badge at most
// once and a badge type cannot be awarded more than its MaxPerDrive.
func (l *BadgeLedger) Award(volunteerID, badgeID string) (model.BadgeType, model.AnalyticsVolunteer, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	vi := slices.IndexFunc(l.volunteers, func(v model.AnalyticsVolunteer) bool { return v.ID == volunteerID })
	if vi < 0 {
		return model.BadgeType{}, model.AnalyticsVolunteer{}, fmt.Errorf("%w: %s", ErrUnknownVolunteer, volunteerID)
	}
	bi := slices.IndexFunc(l.badgeTypes, func(b model.BadgeType) bool { return b.ID == badgeID })
	if bi < 0 {
		return model.BadgeType{}, model.AnalyticsVolunteer{}, fmt.Errorf("%w: %s", ErrUnknownBadge, badgeID)
	}
	vol, badge := l.volunteers[vi], l.badgeTypes[bi]

	if slices.Contains(l.awarded[volunteerID], badge.Name) {
		return badge, vol, fmt.Errorf("%w: %s to %s", ErrBadgeAlreadyAwarded, badge.Name, vol.Name)
	}
	if l.counts[badgeID] >= badge.MaxPerDrive {
		return badge, vol, fmt.Errorf("%w: %s (%d)", ErrBadgeQuotaReached, badge.Name, badge.MaxPerDrive)
	}

	l.awarded[volunteerID] = append(l.awarded[volunteerID], badge.Name)
	l.counts[badgeID]++
	return badge, vol, nil
}

// Awarded returns the badge names given to a volunteer, oldest first
func (l *BadgeLedger) Awarded(volunteerID string) []string {
	l.mu.Lock()
	defer l.mu.Unlock()

	return slices.Clone(l.awarded[volunteerID])
}

// Remaining returns how many more times a badge can be awarded at this drive
func (l *BadgeLedger) Remaining(badgeID string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, b := range l.badgeTypes {
		if b.ID == badgeID {
			return b.MaxPerDrive - l.counts[badgeID]
		}
	}
	return 0
}

func (l *BadgeLedger) BadgeTypes() []model.BadgeType {
	return slices.Clone(l.badgeTypes)
}

func (l *BadgeLedger) Volunteers() []model.AnalyticsVolunteer {
	return slices.Clone(l.volunteers)
}

// BadgeAward describes a badge that was just awarded
type BadgeAward struct {
	Badge           model.BadgeType
	Volunteer       model.AnalyticsVolunteer
	VolunteerBadges []string
}

// AwardBadge lets an NGO coordinator award a badge to a drive volunteer
func AwardBadge(ctx context.Context, ledger *BadgeLedger, coordinator *model.User, volunteerID, badgeID string, logger *zap.Logger) (*BadgeAward, error) {
	if err := RequireRole(coordinator, model.RoleNGO); err != nil {
		return nil, err
	}

	badge, vol, err := ledger.Award(volunteerID, badgeID)
	if err != nil {
		logger.Debug("Badge not awarded",
			zap.String("volunteer_id", volunteerID),
			zap.String("badge_id", badgeID),
			zap.Error(err))
		return nil, err
	}

	logger.Info("Badge awarded",
		zap.String("volunteer_id", vol.ID),
		zap.String("badge", badge.Name),
		zap.String("ngo_id", coordinator.ID))

	return &BadgeAward{
		Badge:           badge,
		Volunteer:       vol,
		VolunteerBadges: ledger.Awarded(vol.ID),
	}, nil
}
